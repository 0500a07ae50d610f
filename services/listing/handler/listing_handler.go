package handler

import (
	"context"
	"net/http"

	listing "bid-marketplace/internal/listingService"
	model "bid-marketplace/internal/models"
	"bid-marketplace/services/listing/helpers"
	"bid-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	CreateListing(ctx context.Context, in listing.ListingInput) error
	AvailableListings(ctx context.Context) ([]model.Listing, error)
}

type ListingHandler struct {
	service ListingServiceInterface
}

func NewListingHandler(service ListingServiceInterface) *ListingHandler {
	return &ListingHandler{service: service}
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON")
		utils.Warn("CreateListingHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	in := listing.ListingInput{
		Email:          req.Email,
		ItemName:       req.ItemName,
		HasStartingBid: req.HasStartingBid,
		StartingBid:    req.StartingBid,
	}
	if err := h.service.CreateListing(c.Request.Context(), in); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("CreateListingHandler: listing rejected", map[string]any{
			"item_name": req.ItemName,
			"status":    status,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Item listed successfully")
	utils.Info("CreateListingHandler: item listed", map[string]any{
		"item_name": req.ItemName,
		"email":     req.Email,
	})
}

// AvailableListingsHandler handles GET /listings
func (h *ListingHandler) AvailableListingsHandler(c *gin.Context) {
	listings, err := h.service.AvailableListings(c.Request.Context())
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("AvailableListingsHandler: failed to list listings", map[string]any{"error": err.Error()})
		return
	}

	if len(listings) == 0 {
		utils.JSONData(c, http.StatusOK, []helpers.ListingView{helpers.PlaceholderListing()})
		return
	}

	views := make([]helpers.ListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, helpers.NewListingView(l))
	}
	utils.JSONData(c, http.StatusOK, views)
}
