package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"auction-console/internal/auctionerrors"
	"auction-console/internal/listfilter"
	model "auction-console/internal/models"
	"auction-console/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *MockAdminServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := NewMockAdminServiceInterface(ctrl)
	handler := NewAdminHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/auctions", handler.ListAuctionsHandler)
	router.POST("/admin/auctions", handler.CreateAuctionHandler)
	router.PUT("/admin/auctions/:auction_id", handler.UpdateAuctionHandler)
	router.DELETE("/admin/auctions/:auction_id", handler.DeleteAuctionHandler)
	router.POST("/admin/auctions/:auction_id/settle", handler.SettleAuctionHandler)
	router.GET("/admin/auctions/:auction_id/products", handler.AuctionProductsHandler)
	router.GET("/admin/products/unassigned", handler.UnassignedProductsHandler)
	router.POST("/admin/products", handler.CreateProductHandler)
	router.PUT("/admin/products/:product_id", handler.UpdateProductHandler)
	router.DELETE("/admin/products/:product_id", handler.DeleteProductHandler)
	return router, mockService
}

// Test admin ListAuctionsHandler scopes
func TestAdminListAuctionsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		query          string
		mockSetup      func(m *MockAdminServiceInterface)
		expectedStatus int
	}{
		{
			name:  "default_scope_is_all",
			query: "",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AllAuctions(gomock.Any(), listfilter.Query{Status: listfilter.StatusAll}).
					Return([]model.Auction{{ID: "a1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "mine",
			query: "?scope=mine&status=active",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().MyAuctions(gomock.Any(), listfilter.Query{Status: listfilter.StatusActive}).
					Return([]model.Auction{{ID: "a2"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown_scope",
			query:          "?scope=others",
			mockSetup:      func(m *MockAdminServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "admin_session_missing",
			query: "?scope=all",
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().AllAuctions(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("GET /admin/all_auctions: %w", auctionerrors.ErrNotAuthenticated))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, m := newAdminRouter(t)
			tc.mockSetup(m)

			w, _ := doJSON(t, router, http.MethodGet, "/admin/auctions"+tc.query, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAdminServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "created",
			requestBody: helpers.AuctionRequest{Name: "Summer", ValidUntil: deadline, ProductIDs: []string{"p1"}},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().CreateAuction(gomock.Any(), model.AuctionInput{Name: "Summer", ValidUntil: deadline, ProductIDs: []string{"p1"}}).
					Return(model.Auction{ID: "a1", Name: "Summer", ValidUntil: deadline}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
		},
		{
			name:           "missing_name",
			requestBody:    map[string]any{"valid_until": deadline},
			mockSetup:      func(m *MockAdminServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_deadline",
			requestBody:    map[string]any{"name": "Summer"},
			mockSetup:      func(m *MockAdminServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "upstream_validation",
			requestBody: helpers.AuctionRequest{Name: "Past", ValidUntil: deadline},
			mockSetup: func(m *MockAdminServiceInterface) {
				m.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).
					Return(model.Auction{}, &auctionerrors.APIError{Status: http.StatusUnprocessableEntity, Message: "valid_until in the past"})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "valid_until in the past",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, m := newAdminRouter(t)
			tc.mockSetup(m)

			w, resp := doJSON(t, router, http.MethodPost, "/admin/auctions", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestAdminHandler_AuctionLifecycle(t *testing.T) {
	t.Parallel()

	router, m := newAdminRouter(t)
	deadline := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	m.EXPECT().UpdateAuction(gomock.Any(), "a1", gomock.Any()).Return(model.Auction{ID: "a1", Name: "Renamed"}, nil)
	w, resp := doJSON(t, router, http.MethodPut, "/admin/auctions/a1", helpers.AuctionRequest{Name: "Renamed", ValidUntil: deadline})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Renamed", resp["data"].(map[string]any)["name"])

	m.EXPECT().SettleAuction(gomock.Any(), "a1").Return(model.Settlement{AuctionID: "a1", Message: "settled"}, nil)
	w, _ = doJSON(t, router, http.MethodPost, "/admin/auctions/a1/settle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	m.EXPECT().DeleteAuction(gomock.Any(), "a1").Return(&auctionerrors.APIError{Status: http.StatusNotFound, Message: "auction not found"})
	w, resp = doJSON(t, router, http.MethodDelete, "/admin/auctions/a1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "auction not found", resp["message"])

	m.EXPECT().DeleteAuction(gomock.Any(), "a2").Return(nil)
	w, _ = doJSON(t, router, http.MethodDelete, "/admin/auctions/a2", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminHandler_Products(t *testing.T) {
	t.Parallel()

	router, m := newAdminRouter(t)

	m.EXPECT().UnassignedProducts(gomock.Any(), listfilter.Query{Search: "lamp", Status: listfilter.StatusAll}).
		Return([]model.Product{{ID: "p1", Name: "Lamp"}}, nil)
	w, resp := doJSON(t, router, http.MethodGet, "/admin/products/unassigned?search=lamp", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, resp["count"])

	m.EXPECT().AuctionProducts(gomock.Any(), "a1", gomock.Any()).Return(nil, nil)
	w, resp = doJSON(t, router, http.MethodGet, "/admin/auctions/a1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 0, resp["count"])

	m.EXPECT().CreateProduct(gomock.Any(), model.ProductInput{Name: "Rug", AuctionID: "a1"}).Return(model.Product{ID: "p2", Name: "Rug", AuctionID: "a1"}, nil)
	w, _ = doJSON(t, router, http.MethodPost, "/admin/products", helpers.ProductRequest{Name: "Rug", AuctionID: "a1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/admin/products", map[string]any{"description": "no name"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.EXPECT().UpdateProduct(gomock.Any(), "p2", gomock.Any()).Return(model.Product{ID: "p2", Name: "Persian Rug"}, nil)
	w, _ = doJSON(t, router, http.MethodPut, "/admin/products/p2", helpers.ProductRequest{Name: "Persian Rug"})
	require.Equal(t, http.StatusOK, w.Code)

	m.EXPECT().DeleteProduct(gomock.Any(), "p2").Return(nil)
	w, _ = doJSON(t, router, http.MethodDelete, "/admin/products/p2", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
