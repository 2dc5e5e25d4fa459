package admin

//go:generate mockgen -destination=mock_admin_api.go -package=admin auction-console/internal/adminService AdminAPI

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"auction-console/internal/apiclient"
	"auction-console/internal/auctionerrors"
	"auction-console/internal/forms"
	"auction-console/internal/listfilter"
	model "auction-console/internal/models"
	"auction-console/internal/repository"
	"auction-console/internal/session"
	"auction-console/utils"

	"github.com/benbjohnson/clock"
)

// AdminAPI is the part of the remote API the admin console uses
type AdminAPI interface {
	AdminLogin(ctx context.Context, creds model.Credentials) (apiclient.AuthResponse, error)
	AdminRegister(ctx context.Context, reg model.Registration) (apiclient.AuthResponse, error)
	AdminChangePassword(ctx context.Context, change model.PasswordChange) error
	CreateAuction(ctx context.Context, in model.AuctionInput) (model.Auction, error)
	UpdateAuction(ctx context.Context, auctionID string, in model.AuctionInput) (model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID string) error
	SettleAuction(ctx context.Context, auctionID string) (model.Settlement, error)
	CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, productID string, in model.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	AllAuctions(ctx context.Context) ([]model.Auction, error)
	MyAuctions(ctx context.Context) ([]model.Auction, error)
	UnassignedProducts(ctx context.Context) ([]model.Product, error)
	AdminAuctionProducts(ctx context.Context, auctionID string) ([]model.Product, error)
}

// AdminService drives the admin console. Listings it fetches are kept in the cache so a
// successful delete can drop the row without refetching.
type AdminService struct {
	api     AdminAPI
	session *session.Session
	cache   repository.ListingCache
	clock   clock.Clock
}

// NewAdminService creates a new AdminService instance
func NewAdminService(api AdminAPI, sess *session.Session, cache repository.ListingCache, clk clock.Clock) *AdminService {
	if clk == nil {
		clk = clock.New()
	}
	if cache == nil {
		cache = repository.NewMemoryRepo()
	}
	return &AdminService{api: api, session: sess, cache: cache, clock: clk}
}

// Login authenticates an admin and stores the session
func (s *AdminService) Login(ctx context.Context, creds model.Credentials) (model.Identity, error) {
	if err := forms.RequireCredentials(creds); err != nil {
		return model.Identity{}, fmt.Errorf("service: %w", err)
	}
	resp, err := s.api.AdminLogin(ctx, creds)
	if err != nil {
		return model.Identity{}, fmt.Errorf("service: admin login failed for %s: %w", creds.Username, err)
	}
	id := resp.Identity(model.RoleAdmin)
	if err := s.session.SaveLogin(ctx, model.RoleAdmin, resp.Token, id); err != nil {
		return model.Identity{}, fmt.Errorf("service: store session: %w", err)
	}
	utils.Info("admin logged in", map[string]any{"admin_id": id.ID, "username": id.Username})
	return id, nil
}

// Register signs an admin up and stores the session when the server returns a token
func (s *AdminService) Register(ctx context.Context, reg model.Registration) (model.Identity, error) {
	if err := forms.RequireRegistration(reg); err != nil {
		return model.Identity{}, fmt.Errorf("service: %w", err)
	}
	resp, err := s.api.AdminRegister(ctx, reg)
	if err != nil {
		return model.Identity{}, fmt.Errorf("service: admin register %s: %w", reg.Username, err)
	}
	id := resp.Identity(model.RoleAdmin)
	if resp.Token != "" {
		if err := s.session.SaveLogin(ctx, model.RoleAdmin, resp.Token, id); err != nil {
			return model.Identity{}, fmt.Errorf("service: store session: %w", err)
		}
	}
	return id, nil
}

// ChangePassword rotates the admin's password
func (s *AdminService) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	if err := forms.RequirePasswordChange(change); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := s.api.AdminChangePassword(ctx, change); err != nil {
		return fmt.Errorf("service: change admin password: %w", err)
	}
	return nil
}

// Logout clears the admin's stored credentials
func (s *AdminService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx, model.RoleAdmin)
}

func validateAuction(in model.AuctionInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("service: %w - auction name", auctionerrors.ErrMissingField)
	}
	if in.ValidUntil.IsZero() {
		return fmt.Errorf("service: %w - valid_until", auctionerrors.ErrMissingField)
	}
	return nil
}

func validateProduct(in model.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("service: %w - product name", auctionerrors.ErrMissingField)
	}
	return nil
}

// CreateAuction creates an auction owned by the logged-in admin
func (s *AdminService) CreateAuction(ctx context.Context, in model.AuctionInput) (model.Auction, error) {
	if err := validateAuction(in); err != nil {
		return model.Auction{}, err
	}
	a, err := s.api.CreateAuction(ctx, in)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: create auction: %w", err)
	}
	utils.Info("auction created", map[string]any{"auction_id": a.ID, "name": a.Name})
	return a, nil
}

// UpdateAuction edits an auction
func (s *AdminService) UpdateAuction(ctx context.Context, auctionID string, in model.AuctionInput) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrMissingField)
	}
	if err := validateAuction(in); err != nil {
		return model.Auction{}, err
	}
	a, err := s.api.UpdateAuction(ctx, auctionID, in)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: update auction %s: %w", auctionID, err)
	}
	return a, nil
}

// DeleteAuction deletes an auction and, only once the server confirms, drops it from
// the cached listings
func (s *AdminService) DeleteAuction(ctx context.Context, auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrMissingField)
	}
	if err := s.api.DeleteAuction(ctx, auctionID); err != nil {
		return fmt.Errorf("service: delete auction %s: %w", auctionID, err)
	}
	s.cache.RemoveAuction(auctionID)
	utils.Info("auction deleted", map[string]any{"auction_id": auctionID})
	return nil
}

// SettleAuction asks the server to settle an auction
func (s *AdminService) SettleAuction(ctx context.Context, auctionID string) (model.Settlement, error) {
	if auctionID == "" {
		return model.Settlement{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrMissingField)
	}
	res, err := s.api.SettleAuction(ctx, auctionID)
	if err != nil {
		return model.Settlement{}, fmt.Errorf("service: settle auction %s: %w", auctionID, err)
	}
	utils.Info("auction settled", map[string]any{"auction_id": auctionID, "winners": len(res.Winners)})
	return res, nil
}

// CreateProduct creates a product, optionally attached to an auction
func (s *AdminService) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	if err := validateProduct(in); err != nil {
		return model.Product{}, err
	}
	p, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: create product: %w", err)
	}
	return p, nil
}

// UpdateProduct edits a product
func (s *AdminService) UpdateProduct(ctx context.Context, productID string, in model.ProductInput) (model.Product, error) {
	if productID == "" {
		return model.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrMissingField)
	}
	if err := validateProduct(in); err != nil {
		return model.Product{}, err
	}
	p, err := s.api.UpdateProduct(ctx, productID, in)
	if err != nil {
		return model.Product{}, fmt.Errorf("service: update product %s: %w", productID, err)
	}
	return p, nil
}

// DeleteProduct deletes a product and then drops it from the cached listings
func (s *AdminService) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrMissingField)
	}
	if err := s.api.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("service: delete product %s: %w", productID, err)
	}
	s.cache.RemoveProduct(productID)
	return nil
}

// AllAuctions fetches every auction, refreshes the cache and applies the list filter
func (s *AdminService) AllAuctions(ctx context.Context, q listfilter.Query) ([]model.Auction, error) {
	return s.auctions(ctx, repository.ScopeAllAuctions, s.api.AllAuctions, q)
}

// MyAuctions fetches the admin's own auctions, refreshes the cache and applies the list filter
func (s *AdminService) MyAuctions(ctx context.Context, q listfilter.Query) ([]model.Auction, error) {
	return s.auctions(ctx, repository.ScopeMyAuctions, s.api.MyAuctions, q)
}

func (s *AdminService) auctions(ctx context.Context, scope string, fetch func(context.Context) ([]model.Auction, error), q listfilter.Query) ([]model.Auction, error) {
	list, err := fetch(ctx)
	if err != nil {
		cached, cacheErr := s.cache.Auctions(scope)
		if cacheErr != nil || !servesFromCache(err) {
			return nil, fmt.Errorf("service: %s auctions: %w", scope, err)
		}
		utils.Warn("serving cached auctions", map[string]any{"scope": scope, "error": err.Error()})
		return listfilter.Filter(cached, q, s.clock.Now()), nil
	}
	s.cache.ReplaceAuctions(scope, list)
	return listfilter.Filter(list, q, s.clock.Now()), nil
}

// servesFromCache reports whether a failed fetch may fall back to the last cached listing.
// Only transport failures and 5xx answers do; auth and other API errors reach the user.
func servesFromCache(err error) bool {
	if errors.Is(err, auctionerrors.ErrNotAuthenticated) || errors.Is(err, auctionerrors.ErrUnauthorized) {
		return false
	}
	var apiErr *auctionerrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

// UnassignedProducts lists products not attached to any auction
func (s *AdminService) UnassignedProducts(ctx context.Context, q listfilter.Query) ([]model.Product, error) {
	list, err := s.api.UnassignedProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: unassigned products: %w", err)
	}
	s.cache.ReplaceProducts(repository.ScopeUnassigned, list)
	return listfilter.Filter(list, q, s.clock.Now()), nil
}

// AuctionProducts lists the products of an auction. When the API is unreachable or failing
// the last cached listing is served instead, if there is one.
func (s *AdminService) AuctionProducts(ctx context.Context, auctionID string, q listfilter.Query) ([]model.Product, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrMissingField)
	}
	scope := repository.ScopeAuction(auctionID)
	list, err := s.api.AdminAuctionProducts(ctx, auctionID)
	if err != nil {
		cached, cacheErr := s.cache.Products(scope)
		if cacheErr != nil || !servesFromCache(err) {
			return nil, fmt.Errorf("service: products for auction %s: %w", auctionID, err)
		}
		utils.Warn("serving cached products", map[string]any{"auction_id": auctionID, "error": err.Error()})
		list = cached
	} else {
		s.cache.ReplaceProducts(scope, list)
	}
	return listfilter.Filter(list, q, s.clock.Now()), nil
}
