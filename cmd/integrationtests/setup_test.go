package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	admin "auction-console/internal/adminService"
	"auction-console/internal/apiclient"
	bidder "auction-console/internal/bidderService"
	"auction-console/internal/fakeapi"
	model "auction-console/internal/models"
	"auction-console/internal/repository"
	"auction-console/internal/server"
	"auction-console/internal/session"
	"auction-console/internal/watch"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
)

// testEnv wires the console against an in-memory upstream
type testEnv struct {
	router       *gin.Engine
	upstream     *fakeapi.Server
	session      *session.Session
	clock        *clock.Mock
	unauthorized int
}

var epoch = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// SetupTestEnv initializes the router, services and fake upstream for integration testing.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock := clock.NewMock()
	mock.Set(epoch)

	upstream := fakeapi.New(mock)
	ts := httptest.NewServer(upstream.Handler())
	t.Cleanup(ts.Close)

	env := &testEnv{upstream: upstream, clock: mock}
	env.session = session.New(session.NewMemoryStore(), func() { env.unauthorized++ })
	client := apiclient.New(ts.URL, ts.Client(), env.session, mock)

	registry := watch.NewRegistry(context.Background(), client, watch.Options{Clock: mock})
	t.Cleanup(registry.Close)

	env.router = server.SetupRouter(server.Services{
		Bidder: bidder.NewBidderService(client, env.session, mock),
		Admin:  admin.NewAdminService(client, env.session, repository.NewMemoryRepo(), mock),
		Live:   registry,
	})
	return env
}

// SeedCatalog adds an admin, a bidder with balance and one auction holding two products.
func (e *testEnv) SeedCatalog(balance float64) {
	root, _ := e.upstream.SeedAdmin(model.Registration{Name: "Root", Username: "root", Password: "rootpw"})
	e.upstream.SeedUser(model.Registration{Name: "Asha", Username: "asha", Password: "pw"}, balance)

	a := e.upstream.SeedAuction(model.Auction{ID: "a1", Name: "Spring Sale", ValidUntil: epoch.Add(2 * time.Hour)}, root.ID)
	e.upstream.SeedProduct(model.Product{ID: "p1", Name: "Vase", Description: "porcelain", Time: epoch.Add(90 * time.Minute), AuctionID: a.ID})
	e.upstream.SeedProduct(model.Product{ID: "p2", Name: "Rug", Description: "wool", Time: epoch.Add(-time.Minute), AuctionID: a.ID})
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// login signs in through the console and fails the test on error
func (e *testEnv) login(t *testing.T, path, username, password string) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, e.router, http.MethodPost, path, map[string]string{"username": username, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s as %s: status %d: %s", path, username, w.Code, w.Body.String())
	}
}
