package handler

import (
	"context"
	"net/http"

	model "bid-marketplace/internal/models"
	"bid-marketplace/services/bidding/helpers"
	"bid-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, email, itemName string, amount float64) error
	AllBids(ctx context.Context) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid JSON")
		utils.Warn("PlaceBidHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	if err := h.service.PlaceBid(c.Request.Context(), req.Email, req.Item, req.Amount); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"item":   req.Item,
			"email":  req.Email,
			"amount": req.Amount,
			"status": status,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Bid placed successfully")
	utils.Info("PlaceBidHandler: bid placed", map[string]any{
		"item":   req.Item,
		"email":  req.Email,
		"amount": req.Amount,
	})
}

// GetBidsHandler handles GET /bids
func (h *BiddingHandler) GetBidsHandler(c *gin.Context) {
	bids, err := h.service.AllBids(c.Request.Context())
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("GetBidsHandler: failed to list bids", map[string]any{"error": err.Error()})
		return
	}

	if len(bids) == 0 {
		utils.JSONData(c, http.StatusOK, []helpers.BidView{helpers.PlaceholderBid()})
		return
	}

	views := make([]helpers.BidView, 0, len(bids))
	for _, b := range bids {
		views = append(views, helpers.NewBidView(b))
	}
	utils.JSONData(c, http.StatusOK, views)
}
