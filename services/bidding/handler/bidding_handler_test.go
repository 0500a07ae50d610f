package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bid-marketplace/internal/marketerrors"
	model "bid-marketplace/internal/models"
	"bid-marketplace/services/bidding/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, router *gin.Engine, method, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case string:
		reqBody = []byte(v)
	case nil:
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func newTestRouter(t *testing.T) (*gin.Engine, *MockBiddingServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockBiddingServiceInterface(ctrl)
	handler := NewBiddingHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", handler.PlaceBidHandler)
	router.GET("/bids", handler.GetBidsHandler)
	return router, mockService
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	router, mockService := newTestRouter(t)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success",
			requestBody: helpers.PlaceBidRequest{Amount: 150, Email: "buyer@example.com", Item: "guitar"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "buyer@example.com", "guitar", 150.0).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "missing_fields",
			requestBody: helpers.PlaceBidRequest{Amount: 0, Email: "buyer@example.com", Item: "guitar"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "buyer@example.com", "guitar", 0.0).
					Return(marketerrors.NewValidation("Missing required fields"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name:        "unknown_item",
			requestBody: helpers.PlaceBidRequest{Amount: 150, Email: "buyer@example.com", Item: "ghost-item"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "buyer@example.com", "ghost-item", 150.0).
					Return(marketerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid item",
		},
		{
			name:        "below_minimum_names_required_amount",
			requestBody: helpers.PlaceBidRequest{Amount: 99, Email: "buyer@example.com", Item: "guitar"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "buyer@example.com", "guitar", 99.0).
					Return(&marketerrors.BidTooLowError{Minimum: 100})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Bid must be at least 100",
		},
		{
			name:           "invalid_json",
			requestBody:    `{not json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON",
		},
		{
			name:        "store_failure",
			requestBody: helpers.PlaceBidRequest{Amount: 150, Email: "buyer@example.com", Item: "guitar"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "buyer@example.com", "guitar", 150.0).
					Return(errors.New("insert failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w, resp := performRequest(t, router, http.MethodPost, "/bids", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedError != "" {
				require.Equal(t, false, resp["success"])
				require.Equal(t, tc.expectedError, resp["error"])
				return
			}

			require.Equal(t, true, resp["success"])
			require.Equal(t, "Bid placed successfully", resp["message"])
		})
	}
}

// Test GetBidsHandler
func TestGetBidsHandler(t *testing.T) {
	router, mockService := newTestRouter(t)

	t.Run("reshapes_stored_bids", func(t *testing.T) {
		mockService.EXPECT().AllBids(gomock.Any()).Return([]model.Bid{
			{ID: 1, Email: "a@example.com", ItemName: "guitar", Amount: 120, Status: model.BidStatusPending},
		}, nil)

		w, resp := performRequest(t, router, http.MethodGet, "/bids", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].([]any)
		require.Len(t, data, 1)

		bid := data[0].(map[string]any)
		require.Equal(t, 1.0, bid["id"])
		require.Equal(t, "a@example.com", bid["email"])
		require.Equal(t, 120.0, bid["amount"])
		require.Equal(t, "Pending", bid["status"])
		// stored item_name is exposed as "name"
		require.Equal(t, "guitar", bid["name"])
		require.NotContains(t, bid, "item_name")
	})

	t.Run("empty_store_returns_placeholder", func(t *testing.T) {
		mockService.EXPECT().AllBids(gomock.Any()).Return(nil, nil)

		w, resp := performRequest(t, router, http.MethodGet, "/bids", nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].([]any)
		require.Len(t, data, 1)

		placeholder := data[0].(map[string]any)
		require.Equal(t, "No bids", placeholder["id"])
		require.Equal(t, 0.0, placeholder["amount"])
		require.Equal(t, "Unknown", placeholder["name"])
		require.Equal(t, "Pending", placeholder["status"])
		require.Equal(t, "Nobids@gmail.com", placeholder["email"])
	})

	t.Run("store_failure", func(t *testing.T) {
		mockService.EXPECT().AllBids(gomock.Any()).Return(nil, errors.New("store unavailable"))

		w, resp := performRequest(t, router, http.MethodGet, "/bids", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, false, resp["success"])
	})
}
