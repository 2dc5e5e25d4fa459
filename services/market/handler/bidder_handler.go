package handler

//go:generate mockgen -destination=mock_bidder_service.go -package=handler auction-console/services/market/handler BidderServiceInterface

import (
	"context"
	"net/http"

	"auction-console/internal/listfilter"
	model "auction-console/internal/models"
	"auction-console/services/market/helpers"
	"auction-console/utils"

	"github.com/gin-gonic/gin"
)

type BidderServiceInterface interface {
	Auctions(ctx context.Context, q listfilter.Query) ([]model.Auction, error)
	AuctionProducts(ctx context.Context, auctionID string, q listfilter.Query) ([]model.Product, error)
	JoinAuction(ctx context.Context, auctionID string) error
	PlaceBid(ctx context.Context, productID string, amount, currentHighest float64) (model.Bid, error)
	MyBids(ctx context.Context) ([]model.Bid, error)
	RollbackBidByID(ctx context.Context, bidID string) error
	Wallet(ctx context.Context) (model.Wallet, error)
	Transactions(ctx context.Context) ([]model.Transaction, error)
	TopUp(ctx context.Context, amount float64) (model.Wallet, error)
}

type BidderHandler struct {
	service BidderServiceInterface
}

func NewBidderHandler(service BidderServiceInterface) *BidderHandler {
	return &BidderHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions
func (h *BidderHandler) ListAuctionsHandler(c *gin.Context) {
	q, err := helpers.BindListQuery(c)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}

	auctions, err := h.service.Auctions(c.Request.Context(), q)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"search": q.Search, "status": q.Status})
		return
	}

	utils.JSONList(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(auctions)})
}

// AuctionProductsHandler handles GET /auctions/:auction_id/products
func (h *BidderHandler) AuctionProductsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	q, err := helpers.BindListQuery(c)
	if err != nil {
		helpers.RespondError(c, "AuctionProductsHandler", err, nil)
		return
	}

	products, err := h.service.AuctionProducts(c.Request.Context(), auctionID, q)
	if err != nil {
		helpers.RespondError(c, "AuctionProductsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONList(c, http.StatusOK, products, "products retrieved successfully")
}

// JoinAuctionHandler handles POST /auctions/:auction_id/join
func (h *BidderHandler) JoinAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	if err := h.service.JoinAuction(c.Request.Context(), auctionID); err != nil {
		helpers.RespondError(c, "JoinAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "joined auction successfully")
	helpers.LogSuccess("JoinAuctionHandler", "joined auction", map[string]any{"auction_id": auctionID})
}

// PlaceBidHandler handles POST /bids
func (h *BidderHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.ProductID, req.Amount, req.CurrentHighest)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"product_id":      req.ProductID,
			"amount":          req.Amount,
			"current_highest": req.CurrentHighest,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": req.ProductID,
		"amount":     req.Amount,
	})
}

// MyBidsHandler handles GET /bids/mine
func (h *BidderHandler) MyBidsHandler(c *gin.Context) {
	bids, err := h.service.MyBids(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "MyBidsHandler", err, nil)
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}
	utils.JSONList(c, http.StatusOK, resp, "bids retrieved successfully")
}

// RollbackBidHandler handles POST /bids/:bid_id/rollback
func (h *BidderHandler) RollbackBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	if err := h.service.RollbackBidByID(c.Request.Context(), bidID); err != nil {
		helpers.RespondError(c, "RollbackBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bid_id": bidID}, "bid rolled back successfully")
	helpers.LogSuccess("RollbackBidHandler", "bid rolled back", map[string]any{"bid_id": bidID})
}

// WalletHandler handles GET /wallet
func (h *BidderHandler) WalletHandler(c *gin.Context) {
	w, err := h.service.Wallet(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "WalletHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, w, "wallet retrieved successfully")
}

// TransactionsHandler handles GET /wallet/transactions
func (h *BidderHandler) TransactionsHandler(c *gin.Context) {
	txns, err := h.service.Transactions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "TransactionsHandler", err, nil)
		return
	}
	utils.JSONList(c, http.StatusOK, txns, "transactions retrieved successfully")
}

// TopUpHandler handles POST /wallet/topup
func (h *BidderHandler) TopUpHandler(c *gin.Context) {
	var req helpers.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TopUpHandler", err)
		return
	}

	w, err := h.service.TopUp(c.Request.Context(), req.Amount)
	if err != nil {
		helpers.RespondError(c, "TopUpHandler", err, map[string]any{"amount": req.Amount})
		return
	}

	utils.JSONResponse(c, http.StatusOK, w, "wallet topped up successfully")
	helpers.LogSuccess("TopUpHandler", "wallet topped up", map[string]any{"amount": req.Amount, "balance": w.Balance})
}
