package server

import (
	"net/http"

	auth "bid-marketplace/internal/authService"
	bidding "bid-marketplace/internal/biddingService"
	listing "bid-marketplace/internal/listingService"
	"bid-marketplace/internal/repository"
	authhandler "bid-marketplace/services/auth/handler"
	biddinghandler "bid-marketplace/services/bidding/handler"
	healthhandler "bid-marketplace/services/health/handler"
	listinghandler "bid-marketplace/services/listing/handler"
	"bid-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(authSvc *auth.AuthService, listingSvc *listing.ListingService, biddingSvc *bidding.BiddingService, store repository.MarketStore) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // per-request correlation id
	router.Use(RequestLoggerMiddleware) // custom request logging

	// every route accepts exactly one method; the wrong verb gets the
	// uniform failure envelope instead of gin's default empty body
	router.NoMethod(func(c *gin.Context) {
		utils.JSONError(c, http.StatusMethodNotAllowed, c.Request.Method+" not allowed")
	})
	router.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "route not found")
	})

	authHandler := authhandler.NewAuthHandler(authSvc)
	listingHandler := listinghandler.NewListingHandler(listingSvc)
	biddingHandler := biddinghandler.NewBiddingHandler(biddingSvc)
	healthHandler := healthhandler.NewHealthHandler(store)

	router.POST("/register", authHandler.RegisterHandler)
	router.POST("/login", authHandler.LoginHandler)

	listings := router.Group("/listings")
	{
		listings.POST("", listingHandler.CreateListingHandler)
		listings.GET("", listingHandler.AvailableListingsHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
		bids.GET("", biddingHandler.GetBidsHandler)
	}

	router.GET("/health", healthHandler.CheckStorageHandler)

	return router
}
