package main

import (
	"fmt"
	"os"

	auth "bid-marketplace/internal/authService"
	bidding "bid-marketplace/internal/biddingService"
	"bid-marketplace/internal/config"
	"bid-marketplace/internal/credentials"
	listing "bid-marketplace/internal/listingService"
	"bid-marketplace/internal/repository"
	"bid-marketplace/internal/server"
	"bid-marketplace/utils"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}

	store := repository.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.Key, nil)
	creds := credentials.NewService(cfg.JWT.Secret, cfg.JWT.Expiry)

	authSvc := auth.NewAuthService(store, creds)
	listingSvc := listing.NewListingService(store)
	biddingSvc := bidding.NewBiddingService(store)

	router := server.SetupRouter(authSvc, listingSvc, biddingSvc, store)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
