package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	model "auction-console/internal/models"

	"golang.org/x/sync/errgroup"
)

// AuthResponse is returned by the login and register endpoints of both roles
type AuthResponse struct {
	Token string         `json:"token"`
	User  model.Identity `json:"user"`
	Admin model.Identity `json:"admin"`
}

// Identity returns whichever identity the server filled in
func (a AuthResponse) Identity(role model.Role) model.Identity {
	id := a.User
	if (role == model.RoleAdmin && a.Admin.ID != "") || id.ID == "" {
		id = a.Admin
	}
	id.Role = role
	return id
}

type highestBidResponse struct {
	HighestBid float64 `json:"highest_bid"`
}

type timeLeftResponse struct {
	TimeLeft float64 `json:"time_left"`
}

type auctionRef struct {
	AuctionID string `json:"auction_id"`
}

type bidRequest struct {
	ProductID string  `json:"product_id"`
	Amount    float64 `json:"amount"`
}

type bidRef struct {
	BidID string `json:"bid_id"`
}

type topUpRequest struct {
	Amount float64 `json:"amount"`
}

// ===== Auth =====

func (c *Client) Login(ctx context.Context, creds model.Credentials) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/login", nil, userLogin, creds, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, reg model.Registration) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/register", nil, userLogin, reg, &out)
	return out, err
}

func (c *Client) AdminLogin(ctx context.Context, creds model.Credentials) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/admin/login", nil, adminLogin, creds, &out)
	return out, err
}

func (c *Client) AdminRegister(ctx context.Context, reg model.Registration) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/admin/register", nil, adminLogin, reg, &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/change-password", nil, user, change, nil)
}

func (c *Client) AdminChangePassword(ctx context.Context, change model.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/admin/change-password", nil, admin, change, nil)
}

// ===== Auctions and bids =====

func (c *Client) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	var out []model.Auction
	err := c.do(ctx, http.MethodGet, "/auctions", nil, public, nil, &out)
	return out, err
}

func (c *Client) AuctionProducts(ctx context.Context, auctionID string) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/auctions/"+url.PathEscape(auctionID)+"/products", nil, public, nil, &out)
	return out, err
}

func (c *Client) RegisterForAuction(ctx context.Context, auctionID string) error {
	return c.do(ctx, http.MethodPost, "/auctions/register", nil, user, auctionRef{AuctionID: auctionID}, nil)
}

func (c *Client) PlaceBid(ctx context.Context, productID string, amount float64) (model.Bid, error) {
	var out model.Bid
	err := c.do(ctx, http.MethodPost, "/bid", nil, user, bidRequest{ProductID: productID, Amount: amount}, &out)
	return out, err
}

func (c *Client) UserBids(ctx context.Context) ([]model.Bid, error) {
	var out []model.Bid
	err := c.do(ctx, http.MethodGet, "/user-bids", nil, user, nil, &out)
	return out, err
}

func (c *Client) ProductBids(ctx context.Context, productID string) ([]model.Bid, error) {
	var out []model.Bid
	err := c.do(ctx, http.MethodGet, "/bids", productQuery(productID), public, nil, &out)
	return out, err
}

func (c *Client) HighestBid(ctx context.Context, productID string) (float64, error) {
	var out highestBidResponse
	err := c.do(ctx, http.MethodGet, "/highest-bid", productQuery(productID), public, nil, &out)
	return out.HighestBid, err
}

// TimeLeft returns the server's view of the time remaining for a product
func (c *Client) TimeLeft(ctx context.Context, productID string) (time.Duration, error) {
	var out timeLeftResponse
	if err := c.do(ctx, http.MethodGet, "/time-left", productQuery(productID), public, nil, &out); err != nil {
		return 0, err
	}
	if out.TimeLeft <= 0 {
		return 0, nil
	}
	return time.Duration(out.TimeLeft * float64(time.Second)), nil
}

func (c *Client) RollbackBid(ctx context.Context, bidID string) error {
	return c.do(ctx, http.MethodPost, "/rollback-bid", nil, user, bidRef{BidID: bidID}, nil)
}

// LiveSnapshot fetches bids, highest bid and time left together and anchors the deadline at
// the client's now plus the server-reported remaining time.
func (c *Client) LiveSnapshot(ctx context.Context, productID string) (model.LiveSnapshot, error) {
	snap := model.LiveSnapshot{ProductID: productID}
	var left time.Duration

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bids, err := c.ProductBids(gctx, productID)
		snap.Bids = bids
		return err
	})
	g.Go(func() error {
		highest, err := c.HighestBid(gctx, productID)
		snap.HighestBid = highest
		return err
	})
	g.Go(func() error {
		d, err := c.TimeLeft(gctx, productID)
		left = d
		return err
	})
	if err := g.Wait(); err != nil {
		return model.LiveSnapshot{}, fmt.Errorf("live snapshot for %s: %w", productID, err)
	}

	snap.Deadline = c.clock.Now().Add(left)
	return snap, nil
}

// ===== Wallet =====

func (c *Client) Wallet(ctx context.Context) (model.Wallet, error) {
	var out model.Wallet
	err := c.do(ctx, http.MethodGet, "/wallet", nil, user, nil, &out)
	return out, err
}

func (c *Client) TopUp(ctx context.Context, amount float64) (model.Wallet, error) {
	var out model.Wallet
	err := c.do(ctx, http.MethodPost, "/wallet/topup", nil, user, topUpRequest{Amount: amount}, &out)
	return out, err
}

func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	err := c.do(ctx, http.MethodGet, "/wallet/transactions", nil, user, nil, &out)
	return out, err
}

// ===== Admin =====

func (c *Client) CreateAuction(ctx context.Context, in model.AuctionInput) (model.Auction, error) {
	var out model.Auction
	err := c.do(ctx, http.MethodPost, "/admin/auction", nil, admin, in, &out)
	return out, err
}

func (c *Client) UpdateAuction(ctx context.Context, auctionID string, in model.AuctionInput) (model.Auction, error) {
	var out model.Auction
	err := c.do(ctx, http.MethodPut, "/admin/auction/"+url.PathEscape(auctionID), nil, admin, in, &out)
	return out, err
}

func (c *Client) DeleteAuction(ctx context.Context, auctionID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/auction/"+url.PathEscape(auctionID), nil, admin, nil, nil)
}

func (c *Client) SettleAuction(ctx context.Context, auctionID string) (model.Settlement, error) {
	var out model.Settlement
	err := c.do(ctx, http.MethodPost, "/admin/auction/"+url.PathEscape(auctionID)+"/settle", nil, admin, nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, http.MethodPost, "/admin/product", nil, admin, in, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, http.MethodPut, "/admin/product/"+url.PathEscape(productID), nil, admin, in, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/product/"+url.PathEscape(productID), nil, admin, nil, nil)
}

func (c *Client) AllAuctions(ctx context.Context) ([]model.Auction, error) {
	var out []model.Auction
	err := c.do(ctx, http.MethodGet, "/admin/all_auctions", nil, admin, nil, &out)
	return out, err
}

func (c *Client) MyAuctions(ctx context.Context) ([]model.Auction, error) {
	var out []model.Auction
	err := c.do(ctx, http.MethodGet, "/admin/auctions/my", nil, admin, nil, &out)
	return out, err
}

func (c *Client) UnassignedProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/admin/products/unassigned", nil, admin, nil, &out)
	return out, err
}

func (c *Client) AdminAuctionProducts(ctx context.Context, auctionID string) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/admin/auction_products/"+url.PathEscape(auctionID), nil, admin, nil, &out)
	return out, err
}
