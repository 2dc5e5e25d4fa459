package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-console/internal/auctionerrors"
	"auction-console/internal/listfilter"
	model "auction-console/internal/models"
	"auction-console/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidderServiceInterface(ctrl)
	handler := NewBidderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{ProductID: "p1", Amount: 501, CurrentHighest: 500},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "p1", 501.0, 500.0).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						ProductID: "p1",
						UserID:    "u1",
						Amount:    501,
						Status:    model.BidSuccess,
						Timestamp: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				_, parseErr := uuid.Parse(data["bid_id"].(string))
				require.NoError(t, parseErr)
				require.Equal(t, "p1", data["product_id"])
				require.Equal(t, 501.0, data["amount"])
				require.Equal(t, "success", data["status"])
				require.Equal(t, now.Format(time.RFC3339), data["created_at"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_product_id",
			requestBody:    helpers.PlaceBidRequest{Amount: 50},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "invalid_amount_zero",
			requestBody:    helpers.PlaceBidRequest{ProductID: "p1", Amount: 0},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_amount",
			requestBody:    helpers.PlaceBidRequest{ProductID: "p1", Amount: -10},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_bid_too_low",
			requestBody: helpers.PlaceBidRequest{ProductID: "p2", Amount: 500, CurrentHighest: 500},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "p2", 500.0, 500.0).
					Return(model.Bid{}, fmt.Errorf("service: %w - current highest bid is ₹500", auctionerrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "session_expired",
			requestBody: helpers.PlaceBidRequest{ProductID: "p3", Amount: 10},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "p3", 10.0, 0.0).
					Return(model.Bid{}, auctionerrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "session expired",
		},
		{
			name:        "upstream_rejects",
			requestBody: helpers.PlaceBidRequest{ProductID: "p4", Amount: 10},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "p4", 10.0, 0.0).
					Return(model.Bid{}, &auctionerrors.APIError{Status: http.StatusPaymentRequired, Message: "insufficient balance"})
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedMsg:    "insufficient balance",
		},
		{
			name:        "upstream_down",
			requestBody: helpers.PlaceBidRequest{ProductID: "p5", Amount: 10},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "p5", 10.0, 0.0).
					Return(model.Bid{}, &auctionerrors.APIError{Status: http.StatusServiceUnavailable})
			},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "auction service unavailable",
		},
		{
			name:        "service_generic_error",
			requestBody: helpers.PlaceBidRequest{ProductID: "p6", Amount: 10},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid(gomock.Any(), "p6", 10.0, 0.0).
					Return(model.Bid{}, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/bids", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidderServiceInterface(ctrl)
	handler := NewBidderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auctions", handler.ListAuctionsHandler)

	tests := []struct {
		name           string
		query          string
		mockSetup      func()
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "no_filter",
			query: "",
			mockSetup: func() {
				mockService.EXPECT().Auctions(gomock.Any(), listfilter.Query{Status: listfilter.StatusAll}).
					Return([]model.Auction{{ID: "a1"}, {ID: "a2"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:  "search_and_status",
			query: "?search=vase&status=ACTIVE",
			mockSetup: func() {
				mockService.EXPECT().Auctions(gomock.Any(), listfilter.Query{Search: "vase", Status: listfilter.StatusActive}).
					Return([]model.Auction{{ID: "a3"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:  "nil_slice",
			query: "?status=expired",
			mockSetup: func() {
				mockService.EXPECT().Auctions(gomock.Any(), listfilter.Query{Status: listfilter.StatusExpired}).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "unknown_status",
			query:          "?status=sold",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodGet, "/auctions"+tc.query, nil)
			require.Equal(t, tc.expectedStatus, w.Code)

			if w.Code == http.StatusOK {
				require.EqualValues(t, tc.expectedCount, resp["count"])
				require.Len(t, resp["data"].([]any), tc.expectedCount)
			}
		})
	}
}

// Test TopUpHandler
func TestTopUpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidderServiceInterface(ctrl)
	handler := NewBidderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/wallet/topup", handler.TopUpHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "in_range",
			requestBody: helpers.TopUpRequest{Amount: 100000},
			mockSetup: func() {
				mockService.EXPECT().TopUp(gomock.Any(), 100000.0).Return(model.Wallet{Balance: 100000}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "wallet topped up successfully",
		},
		{
			name:        "out_of_range",
			requestBody: helpers.TopUpRequest{Amount: 100001},
			mockSetup: func() {
				mockService.EXPECT().TopUp(gomock.Any(), 100001.0).
					Return(model.Wallet{}, fmt.Errorf("service: %w", auctionerrors.ErrTopUpOutOfRange))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "top-up amount out of range",
		},
		{
			name:           "missing_amount",
			requestBody:    map[string]any{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			w, resp := doJSON(t, router, http.MethodPost, "/wallet/topup", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestBidderHandler_BidsAndRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidderServiceInterface(ctrl)
	handler := NewBidderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/bids/mine", handler.MyBidsHandler)
	router.POST("/bids/:bid_id/rollback", handler.RollbackBidHandler)

	mockService.EXPECT().MyBids(gomock.Any()).Return([]model.Bid{
		{BidID: "b1", ProductID: "p1", Amount: 20, Status: model.BidSuccess},
		{BidID: "b2", ProductID: "p1", Amount: 10, Status: model.BidRolledBack},
	}, nil)
	w, resp := doJSON(t, router, http.MethodGet, "/bids/mine", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 2, resp["count"])

	mockService.EXPECT().RollbackBidByID(gomock.Any(), "b1").Return(nil)
	w, _ = doJSON(t, router, http.MethodPost, "/bids/b1/rollback", nil)
	require.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().RollbackBidByID(gomock.Any(), "b2").
		Return(fmt.Errorf("service: %w", auctionerrors.ErrBidNotRollbackable))
	w, resp = doJSON(t, router, http.MethodPost, "/bids/b2/rollback", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "bid cannot be rolled back", resp["message"])
}

func TestBidderHandler_WalletAndJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidderServiceInterface(ctrl)
	handler := NewBidderHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/wallet", handler.WalletHandler)
	router.GET("/wallet/transactions", handler.TransactionsHandler)
	router.POST("/auctions/:auction_id/join", handler.JoinAuctionHandler)
	router.GET("/auctions/:auction_id/products", handler.AuctionProductsHandler)

	mockService.EXPECT().Wallet(gomock.Any()).Return(model.Wallet{}, auctionerrors.ErrNotAuthenticated)
	w, resp := doJSON(t, router, http.MethodGet, "/wallet", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "please log in", resp["message"])

	mockService.EXPECT().Transactions(gomock.Any()).Return([]model.Transaction{{ID: "t1"}}, nil)
	w, resp = doJSON(t, router, http.MethodGet, "/wallet/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, resp["count"])

	mockService.EXPECT().JoinAuction(gomock.Any(), "a1").Return(nil)
	w, _ = doJSON(t, router, http.MethodPost, "/auctions/a1/join", nil)
	require.Equal(t, http.StatusOK, w.Code)

	mockService.EXPECT().AuctionProducts(gomock.Any(), "a1", listfilter.Query{Search: "lamp", Status: listfilter.StatusAll}).
		Return([]model.Product{{ID: "p1", Name: "Lamp"}}, nil)
	w, resp = doJSON(t, router, http.MethodGet, "/auctions/a1/products?search=lamp", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, resp["count"])
}
