package bidder

//go:generate mockgen -destination=mock_market_api.go -package=bidder auction-console/internal/bidderService MarketAPI

import (
	"context"
	"fmt"
	"math"

	"auction-console/internal/apiclient"
	"auction-console/internal/auctionerrors"
	"auction-console/internal/forms"
	"auction-console/internal/listfilter"
	model "auction-console/internal/models"
	"auction-console/internal/session"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
)

// Wallet top-up bounds in rupees
const (
	MinTopUp = 10.0
	MaxTopUp = 100000.0
)

// MarketAPI is the part of the remote API the bidder experience uses
type MarketAPI interface {
	Login(ctx context.Context, creds model.Credentials) (apiclient.AuthResponse, error)
	Register(ctx context.Context, reg model.Registration) (apiclient.AuthResponse, error)
	ChangePassword(ctx context.Context, change model.PasswordChange) error
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	AuctionProducts(ctx context.Context, auctionID string) ([]model.Product, error)
	RegisterForAuction(ctx context.Context, auctionID string) error
	PlaceBid(ctx context.Context, productID string, amount float64) (model.Bid, error)
	UserBids(ctx context.Context) ([]model.Bid, error)
	RollbackBid(ctx context.Context, bidID string) error
	Wallet(ctx context.Context) (model.Wallet, error)
	TopUp(ctx context.Context, amount float64) (model.Wallet, error)
	Transactions(ctx context.Context) ([]model.Transaction, error)
	LiveSnapshot(ctx context.Context, productID string) (model.LiveSnapshot, error)
}

// BidderService carries the client-side rules of the bidder experience. Its checks are UX
// pre-checks; the server stays the source of truth and may still reject a request.
type BidderService struct {
	api     MarketAPI
	session *session.Session
	clock   clock.Clock
}

// NewBidderService creates a new BidderService instance
func NewBidderService(api MarketAPI, sess *session.Session, clk clock.Clock) *BidderService {
	if clk == nil {
		clk = clock.New()
	}
	return &BidderService{api: api, session: sess, clock: clk}
}

// Login authenticates a bidder and stores the session
func (s *BidderService) Login(ctx context.Context, creds model.Credentials) (model.Identity, error) {
	if err := forms.RequireCredentials(creds); err != nil {
		return model.Identity{}, fmt.Errorf("service: %w", err)
	}
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return model.Identity{}, fmt.Errorf("service: login failed for %s: %w", creds.Username, err)
	}
	id := resp.Identity(model.RoleUser)
	if err := s.session.SaveLogin(ctx, model.RoleUser, resp.Token, id); err != nil {
		return model.Identity{}, fmt.Errorf("service: store session: %w", err)
	}
	utils.Info("bidder logged in", map[string]any{"user_id": id.ID, "username": id.Username})
	return id, nil
}

// Register signs a bidder up and stores the session when the server returns a token
func (s *BidderService) Register(ctx context.Context, reg model.Registration) (model.Identity, error) {
	if err := forms.RequireRegistration(reg); err != nil {
		return model.Identity{}, fmt.Errorf("service: %w", err)
	}
	resp, err := s.api.Register(ctx, reg)
	if err != nil {
		return model.Identity{}, fmt.Errorf("service: register %s: %w", reg.Username, err)
	}
	id := resp.Identity(model.RoleUser)
	if resp.Token != "" {
		if err := s.session.SaveLogin(ctx, model.RoleUser, resp.Token, id); err != nil {
			return model.Identity{}, fmt.Errorf("service: store session: %w", err)
		}
	}
	return id, nil
}

// ChangePassword rotates the bidder's password
func (s *BidderService) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	if err := forms.RequirePasswordChange(change); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := s.api.ChangePassword(ctx, change); err != nil {
		return fmt.Errorf("service: change password: %w", err)
	}
	return nil
}

// Logout clears the bidder's stored credentials
func (s *BidderService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx, model.RoleUser)
}

// Auctions fetches public auctions and applies the list filter
func (s *BidderService) Auctions(ctx context.Context, q listfilter.Query) ([]model.Auction, error) {
	auctions, err := s.api.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list auctions: %w", err)
	}
	return listfilter.Filter(auctions, q, s.clock.Now()), nil
}

// AuctionProducts fetches the products of an auction and applies the list filter
func (s *BidderService) AuctionProducts(ctx context.Context, auctionID string, q listfilter.Query) ([]model.Product, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrMissingField)
	}
	products, err := s.api.AuctionProducts(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: products for auction %s: %w", auctionID, err)
	}
	return listfilter.Filter(products, q, s.clock.Now()), nil
}

// JoinAuction registers the bidder for an auction
func (s *BidderService) JoinAuction(ctx context.Context, auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrMissingField)
	}
	if err := s.api.RegisterForAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: join auction %s: %w", auctionID, err)
	}
	return nil
}

// PlaceBid pre-checks the amount against the highest bid the view is showing and then
// submits it. Local "expired" state is deliberately not consulted.
func (s *BidderService) PlaceBid(ctx context.Context, productID string, amount, currentHighest float64) (model.Bid, error) {
	if err := validateBid(productID, amount, currentHighest); err != nil {
		return model.Bid{}, err
	}

	bid, err := s.api.PlaceBid(ctx, productID, amount)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to place bid on product %s: %w", productID, err)
	}
	return bid, nil
}

// validateBid checks input validity before any network call
func validateBid(productID string, amount, currentHighest float64) error {
	if productID == "" {
		return fmt.Errorf("service: %w - missing product ID", auctionerrors.ErrInvalidBid)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.IsNaN(currentHighest) {
		return fmt.Errorf("service: %w - amount is not a number", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	if amount <= currentHighest {
		return fmt.Errorf("service: %w - current highest bid is ₹%s", auctionerrors.ErrBidTooLow, forms.Rupees(currentHighest))
	}
	return nil
}

// RollbackBid cancels a bid that the server reported as successful
func (s *BidderService) RollbackBid(ctx context.Context, bid model.Bid) error {
	if bid.BidID == "" {
		return fmt.Errorf("service: %w - empty bid ID", auctionerrors.ErrMissingField)
	}
	if bid.Status != model.BidSuccess {
		return fmt.Errorf("service: %w - bid %s is %s", auctionerrors.ErrBidNotRollbackable, bid.BidID, bid.Status)
	}
	if err := s.api.RollbackBid(ctx, bid.BidID); err != nil {
		return fmt.Errorf("service: rollback bid %s: %w", bid.BidID, err)
	}
	return nil
}

// RollbackBidByID looks the bid up in the bidder's own bids before rolling it back
func (s *BidderService) RollbackBidByID(ctx context.Context, bidID string) error {
	bids, err := s.MyBids(ctx)
	if err != nil {
		return err
	}
	for _, b := range bids {
		if b.BidID == bidID {
			return s.RollbackBid(ctx, b)
		}
	}
	return fmt.Errorf("service: %w - bid %s not among your bids", auctionerrors.ErrBidNotRollbackable, bidID)
}

// MyBids returns the bidder's bids
func (s *BidderService) MyBids(ctx context.Context) ([]model.Bid, error) {
	bids, err := s.api.UserBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: user bids: %w", err)
	}
	return bids, nil
}

// TopUp adds funds within the allowed bounds
func (s *BidderService) TopUp(ctx context.Context, amount float64) (model.Wallet, error) {
	if math.IsNaN(amount) || amount < MinTopUp || amount > MaxTopUp {
		return model.Wallet{}, fmt.Errorf("service: %w - amount must be between ₹%s and ₹%s",
			auctionerrors.ErrTopUpOutOfRange, forms.Rupees(MinTopUp), forms.Rupees(MaxTopUp))
	}
	w, err := s.api.TopUp(ctx, amount)
	if err != nil {
		return model.Wallet{}, fmt.Errorf("service: top up: %w", err)
	}
	return w, nil
}

// Wallet returns the current balance
func (s *BidderService) Wallet(ctx context.Context) (model.Wallet, error) {
	w, err := s.api.Wallet(ctx)
	if err != nil {
		return model.Wallet{}, fmt.Errorf("service: wallet: %w", err)
	}
	return w, nil
}

// Transactions returns the wallet ledger
func (s *BidderService) Transactions(ctx context.Context) ([]model.Transaction, error) {
	txns, err := s.api.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: transactions: %w", err)
	}
	return txns, nil
}

// Live fetches one authoritative snapshot of a product
func (s *BidderService) Live(ctx context.Context, productID string) (model.LiveSnapshot, error) {
	if productID == "" {
		return model.LiveSnapshot{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrMissingField)
	}
	return s.api.LiveSnapshot(ctx, productID)
}
