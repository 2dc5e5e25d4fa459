// Package fakeapi is an in-memory stand-in for the remote auction API. It backs local
// development (cmd/fakeapi) and the client and integration tests.
package fakeapi

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
)

var (
	errBadCredentials    = errors.New("invalid username or password")
	errConflict          = errors.New("already exists")
	errNotFound          = errors.New("not found")
	errForbidden         = errors.New("forbidden")
	errInsufficientFunds = errors.New("insufficient wallet balance")
)

const grantKey = "grant"

// Server is the fake API
type Server struct {
	book   *book
	clock  clock.Clock
	router *gin.Engine

	mu     sync.Mutex
	hits   map[string]int
	forced map[string]int
}

// New creates a fake API using clk for deadlines and timestamps
func New(clk clock.Clock) *Server {
	if clk == nil {
		clk = clock.New()
	}
	s := &Server{
		book:   newBook(),
		clock:  clk,
		hits:   make(map[string]int),
		forced: make(map[string]int),
	}
	s.router = s.routes()
	return s
}

// Handler exposes the gin engine
func (s *Server) Handler() http.Handler { return s.router }

// SeedUser creates a bidder with a wallet balance and returns a valid token for it
func (s *Server) SeedUser(reg model.Registration, balance float64) (model.Identity, string) {
	id, tok, err := s.book.register(model.RoleUser, reg)
	if err != nil {
		id, tok, _ = s.book.login(model.RoleUser, model.Credentials{Username: reg.Username, Password: reg.Password})
	}
	if balance > 0 {
		s.book.topUp(id.ID, balance, s.clock.Now())
	}
	return id, tok
}

// SeedAdmin creates an admin and returns a valid token for it
func (s *Server) SeedAdmin(reg model.Registration) (model.Identity, string) {
	id, tok, err := s.book.register(model.RoleAdmin, reg)
	if err != nil {
		id, tok, _ = s.book.login(model.RoleAdmin, model.Credentials{Username: reg.Username, Password: reg.Password})
	}
	return id, tok
}

// SeedAuction stores an auction owned by ownerID
func (s *Server) SeedAuction(a model.Auction, ownerID string) model.Auction {
	return s.book.putAuction(a, ownerID)
}

// SeedProduct stores a product, attaching it to its auction when set
func (s *Server) SeedProduct(p model.Product) model.Product {
	return s.book.putProduct(p)
}

// RevokeToken makes later requests with tok fail with 401
func (s *Server) RevokeToken(tok string) { s.book.revoke(tok) }

// Hits returns how many requests reached method+path
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[method+" "+path]
}

// ForceStatus makes every request to method+path answer with status. Zero clears it.
func (s *Server) ForceStatus(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.forced, method+" "+path)
		return
	}
	s.forced[method+" "+path] = status
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.recordHits)

	router.POST("/login", s.login(model.RoleUser))
	router.POST("/register", s.register(model.RoleUser))
	router.POST("/admin/login", s.login(model.RoleAdmin))
	router.POST("/admin/register", s.register(model.RoleAdmin))

	router.GET("/auctions", s.listAuctions)
	router.GET("/auctions/:auction_id/products", s.auctionProducts)
	router.GET("/bids", s.productBids)
	router.GET("/highest-bid", s.highestBid)
	router.GET("/time-left", s.timeLeft)

	users := router.Group("", s.requireRole(model.RoleUser))
	{
		users.POST("/change-password", s.changePassword)
		users.POST("/auctions/register", s.joinAuction)
		users.POST("/bid", s.placeBid)
		users.GET("/user-bids", s.userBids)
		users.POST("/rollback-bid", s.rollbackBid)
		users.GET("/wallet", s.wallet)
		users.POST("/wallet/topup", s.topUp)
		users.GET("/wallet/transactions", s.transactions)
	}

	admins := router.Group("/admin", s.requireRole(model.RoleAdmin))
	{
		admins.POST("/change-password", s.changePassword)
		admins.POST("/auction", s.createAuction)
		admins.PUT("/auction/:auction_id", s.updateAuction)
		admins.DELETE("/auction/:auction_id", s.deleteAuction)
		admins.POST("/auction/:auction_id/settle", s.settleAuction)
		admins.POST("/product", s.createProduct)
		admins.PUT("/product/:product_id", s.updateProduct)
		admins.DELETE("/product/:product_id", s.deleteProduct)
		admins.GET("/all_auctions", s.allAuctions)
		admins.GET("/auctions/my", s.myAuctions)
		admins.GET("/products/unassigned", s.unassignedProducts)
		admins.GET("/auction_products/:auction_id", s.adminAuctionProducts)
	}

	return router
}

func (s *Server) recordHits(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path

	s.mu.Lock()
	s.hits[key]++
	status, forced := s.forced[key]
	s.mu.Unlock()

	if forced {
		fail(c, status, errors.New(http.StatusText(status)))
		return
	}
	c.Next()
}

func (s *Server) requireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		g, ok := s.book.lookup(tok)
		if tok == "" || !ok || g.role != role {
			fail(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			return
		}
		c.Set(grantKey, g)
		c.Next()
	}
}

func grantOf(c *gin.Context) grant {
	g, _ := c.Get(grantKey)
	return g.(grant)
}

// fail writes the error body the real API uses
func fail(c *gin.Context, status int, err error) {
	utils.JSONError(c, status, err, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, errConflict), errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict
	case errors.Is(err, auctionerrors.ErrInvalidBid), errors.Is(err, auctionerrors.ErrBidNotRollbackable),
		errors.Is(err, errInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
