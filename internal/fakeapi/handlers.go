package fakeapi

import (
	"errors"
	"net/http"

	model "auction-console/internal/models"

	"github.com/gin-gonic/gin"
)

type authReply struct {
	Token string          `json:"token"`
	User  *model.Identity `json:"user,omitempty"`
	Admin *model.Identity `json:"admin,omitempty"`
}

func reply(role model.Role, id model.Identity, tok string) authReply {
	if role == model.RoleAdmin {
		return authReply{Token: tok, Admin: &id}
	}
	return authReply{Token: tok, User: &id}
}

func (s *Server) login(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds model.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
		id, tok, err := s.book.login(role, creds)
		if err != nil {
			fail(c, statusFor(err), err)
			return
		}
		c.JSON(http.StatusOK, reply(role, id, tok))
	}
}

func (s *Server) register(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reg model.Registration
		if err := c.ShouldBindJSON(&reg); err != nil || reg.Username == "" || reg.Password == "" {
			fail(c, http.StatusBadRequest, errors.New("username and password are required"))
			return
		}
		id, tok, err := s.book.register(role, reg)
		if err != nil {
			fail(c, statusFor(err), err)
			return
		}
		c.JSON(http.StatusCreated, reply(role, id, tok))
	}
}

func (s *Server) changePassword(c *gin.Context) {
	var change model.PasswordChange
	if err := c.ShouldBindJSON(&change); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := s.book.changePassword(grantOf(c), change); err != nil {
		// a wrong old password is a validation problem, not an expired session
		if errors.Is(err, errBadCredentials) {
			fail(c, http.StatusBadRequest, err)
			return
		}
		fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (s *Server) listAuctions(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.listAuctions(""))
}

func (s *Server) auctionProducts(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if _, ok := s.book.auction(auctionID); !ok {
		fail(c, http.StatusNotFound, errNotFound)
		return
	}
	c.JSON(http.StatusOK, s.book.productsWhere(func(p model.Product) bool { return p.AuctionID == auctionID }))
}

func (s *Server) productBids(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.productBids(c.Query("product_id")))
}

func (s *Server) highestBid(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"highest_bid": s.book.highest(c.Query("product_id"))})
}

func (s *Server) timeLeft(c *gin.Context) {
	p, ok := s.book.product(c.Query("product_id"))
	if !ok {
		fail(c, http.StatusNotFound, errNotFound)
		return
	}
	left := p.Time.Sub(s.clock.Now()).Seconds()
	if left < 0 {
		left = 0
	}
	c.JSON(http.StatusOK, gin.H{"time_left": left})
}

func (s *Server) joinAuction(c *gin.Context) {
	var req struct {
		AuctionID string `json:"auction_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := s.book.join(grantOf(c).id, req.AuctionID); err != nil {
		fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registered"})
}

func (s *Server) placeBid(c *gin.Context) {
	var req struct {
		ProductID string  `json:"product_id" binding:"required"`
		Amount    float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	bid, err := s.book.placeBid(grantOf(c).id, req.ProductID, req.Amount, s.clock.Now())
	if err != nil {
		fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

func (s *Server) userBids(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.userBids(grantOf(c).id))
}

func (s *Server) rollbackBid(c *gin.Context) {
	var req struct {
		BidID string `json:"bid_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := s.book.rollback(grantOf(c).id, req.BidID); err != nil {
		fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bid rolled back"})
}

func (s *Server) wallet(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.wallet(grantOf(c).id))
}

func (s *Server) topUp(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, s.book.topUp(grantOf(c).id, req.Amount, s.clock.Now()))
}

func (s *Server) transactions(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.transactions(grantOf(c).id))
}

func (s *Server) createAuction(c *gin.Context) {
	var in model.AuctionInput
	if err := c.ShouldBindJSON(&in); err != nil || in.Name == "" {
		fail(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	a := s.book.putAuction(model.Auction{Name: in.Name, ValidUntil: in.ValidUntil, ProductIDs: in.ProductIDs}, grantOf(c).id)
	c.JSON(http.StatusCreated, a)
}

func (s *Server) updateAuction(c *gin.Context) {
	id := c.Param("auction_id")
	if _, ok := s.book.auction(id); !ok {
		fail(c, http.StatusNotFound, errNotFound)
		return
	}
	var in model.AuctionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	a := s.book.putAuction(model.Auction{ID: id, Name: in.Name, ValidUntil: in.ValidUntil, ProductIDs: in.ProductIDs}, "")
	c.JSON(http.StatusOK, a)
}

func (s *Server) deleteAuction(c *gin.Context) {
	if !s.book.deleteAuction(c.Param("auction_id")) {
		fail(c, http.StatusNotFound, errNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) settleAuction(c *gin.Context) {
	out, err := s.book.settle(c.Param("auction_id"))
	if err != nil {
		fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createProduct(c *gin.Context) {
	var in model.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil || in.Name == "" {
		fail(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	p := s.book.putProduct(model.Product{Name: in.Name, Description: in.Description, Time: in.Time, AuctionID: in.AuctionID})
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProduct(c *gin.Context) {
	id := c.Param("product_id")
	if _, ok := s.book.product(id); !ok {
		fail(c, http.StatusNotFound, errNotFound)
		return
	}
	var in model.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	p := s.book.putProduct(model.Product{ID: id, Name: in.Name, Description: in.Description, Time: in.Time, AuctionID: in.AuctionID})
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if !s.book.deleteProduct(c.Param("product_id")) {
		fail(c, http.StatusNotFound, errNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) allAuctions(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.listAuctions(""))
}

func (s *Server) myAuctions(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.listAuctions(grantOf(c).id))
}

func (s *Server) unassignedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.book.productsWhere(func(p model.Product) bool { return p.AuctionID == "" }))
}

func (s *Server) adminAuctionProducts(c *gin.Context) {
	s.auctionProducts(c)
}
