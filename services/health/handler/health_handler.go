package handler

import (
	"context"
	"net/http"

	"bid-marketplace/internal/repository"
	"bid-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// StorageChecker is the slice of the record store the health probe needs.
type StorageChecker interface {
	ListBuckets(ctx context.Context) ([]repository.Bucket, error)
}

type HealthHandler struct {
	store StorageChecker
}

func NewHealthHandler(store StorageChecker) *HealthHandler {
	return &HealthHandler{store: store}
}

// CheckStorageHandler handles GET /health; it probes the store's storage API
// so a dead store endpoint or revoked key is visible before traffic hits the
// workflows.
func (h *HealthHandler) CheckStorageHandler(c *gin.Context) {
	buckets, err := h.store.ListBuckets(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		utils.Error("CheckStorageHandler: storage probe failed", map[string]any{"error": err.Error()})
		return
	}

	if buckets == nil {
		buckets = []repository.Bucket{}
	}

	utils.JSONData(c, http.StatusOK, gin.H{
		"status":  "ok",
		"buckets": buckets,
	})
}
