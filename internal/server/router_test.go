package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-console/internal/auctionerrors"
	"auction-console/internal/listfilter"
	model "auction-console/internal/models"
	"auction-console/internal/watch"
	handler "auction-console/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type bidderMocks struct {
	*handler.MockAccountService
	*handler.MockBidderServiceInterface
}

type adminMocks struct {
	*handler.MockAccountService
	*handler.MockAdminServiceInterface
}

type routerHarness struct {
	router     *gin.Engine
	bidderAcct *handler.MockAccountService
	bidder     *handler.MockBidderServiceInterface
	adminAcct  *handler.MockAccountService
	admin      *handler.MockAdminServiceInterface
	live       *handler.MockLiveRegistry
}

func newRouterHarness(t *testing.T) *routerHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	h := &routerHarness{
		bidderAcct: handler.NewMockAccountService(ctrl),
		bidder:     handler.NewMockBidderServiceInterface(ctrl),
		adminAcct:  handler.NewMockAccountService(ctrl),
		admin:      handler.NewMockAdminServiceInterface(ctrl),
		live:       handler.NewMockLiveRegistry(ctrl),
	}
	h.router = SetupRouter(Services{
		Bidder: bidderMocks{h.bidderAcct, h.bidder},
		Admin:  adminMocks{h.adminAcct, h.admin},
		Live:   h.live,
	})
	return h
}

func (h *routerHarness) do(method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	h := newRouterHarness(t)
	h.bidder.EXPECT().Auctions(gomock.Any(), listfilter.Query{Status: listfilter.StatusAll}).Return(nil, nil).Times(2)

	w := h.do(http.MethodGet, "/auctions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = h.do(http.MethodGet, "/auctions", "", http.Header{RequestIDHeader: {"req-42"}})
	require.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRoutesDispatchByRole(t *testing.T) {
	t.Parallel()
	h := newRouterHarness(t)

	h.adminAcct.EXPECT().
		Login(gomock.Any(), model.Credentials{Username: "root", Password: "pw"}).
		Return(model.Identity{ID: "a1", Role: model.RoleAdmin}, nil)
	w := h.do(http.MethodPost, "/session/admin/login", `{"username":"root","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	h.admin.EXPECT().
		MyAuctions(gomock.Any(), listfilter.Query{Search: "spring", Status: listfilter.StatusActive}).
		Return([]model.Auction{{ID: "x"}}, nil)
	w = h.do(http.MethodGet, "/admin/auctions?scope=mine&search=spring&status=active", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":"x"`)

	h.bidderAcct.EXPECT().Logout(gomock.Any()).Return(nil)
	h.adminAcct.EXPECT().Logout(gomock.Any()).Return(nil)
	w = h.do(http.MethodPost, "/session/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLiveRoutes(t *testing.T) {
	t.Parallel()
	h := newRouterHarness(t)

	h.live.EXPECT().Get("p9").Return(watch.View{}, auctionerrors.ErrViewNotMounted)
	w := h.do(http.MethodGet, "/live/p9", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	h.live.EXPECT().Get("p1").Return(watch.View{ProductID: "p1", Remaining: "1m 30s"}, nil)
	w = h.do(http.MethodGet, "/live/p1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"remaining":"1m 30s"`)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	h := newRouterHarness(t)

	w := h.do(http.MethodGet, "/bids/everyone", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
