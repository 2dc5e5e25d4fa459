package repository

import (
	"fmt"
	"sync"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"
)

// Well-known listing scopes
const (
	ScopeAllAuctions = "all"
	ScopeMyAuctions  = "mine"
	ScopeUnassigned  = "unassigned"
)

// ScopeAuction is the product listing scope of one auction
func ScopeAuction(auctionID string) string { return "auction:" + auctionID }

// ListingCache holds the client's read-mostly copies of fetched listings
type ListingCache interface {
	ReplaceAuctions(scope string, auctions []model.Auction)
	Auctions(scope string) ([]model.Auction, error)
	ReplaceProducts(scope string, products []model.Product)
	Products(scope string) ([]model.Product, error)
	RemoveAuction(auctionID string)
	RemoveProduct(productID string)
}

// MemoryRepo is a concurrency-safe in-memory implementation of ListingCache
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string][]model.Auction // key: scope -> value: listing as fetched
	products map[string][]model.Product // key: scope -> value: listing as fetched
}

// NewMemoryRepo creates an empty cache
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string][]model.Auction),
		products: make(map[string][]model.Product),
	}
}

// ReplaceAuctions stores a fresh copy of a fetched auction listing
func (r *MemoryRepo) ReplaceAuctions(scope string, auctions []model.Auction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[scope] = append([]model.Auction{}, auctions...)
}

// Auctions returns a copy of the cached listing
func (r *MemoryRepo) Auctions(scope string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.auctions[scope]
	if !ok {
		return nil, fmt.Errorf("auctions %s: %w", scope, auctionerrors.ErrNotCached)
	}
	return append([]model.Auction{}, list...), nil
}

// ReplaceProducts stores a fresh copy of a fetched product listing
func (r *MemoryRepo) ReplaceProducts(scope string, products []model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[scope] = append([]model.Product{}, products...)
}

// Products returns a copy of the cached listing
func (r *MemoryRepo) Products(scope string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.products[scope]
	if !ok {
		return nil, fmt.Errorf("products %s: %w", scope, auctionerrors.ErrNotCached)
	}
	return append([]model.Product{}, list...), nil
}

// RemoveAuction drops an auction from every cached listing after a successful delete
func (r *MemoryRepo) RemoveAuction(auctionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for scope, list := range r.auctions {
		kept := make([]model.Auction, 0, len(list))
		for _, a := range list {
			if a.ID != auctionID {
				kept = append(kept, a)
			}
		}
		r.auctions[scope] = kept
	}
	delete(r.products, ScopeAuction(auctionID))
}

// RemoveProduct drops a product from every cached listing after a successful delete
func (r *MemoryRepo) RemoveProduct(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for scope, list := range r.products {
		kept := make([]model.Product, 0, len(list))
		for _, p := range list {
			if p.ID != productID {
				kept = append(kept, p)
			}
		}
		r.products[scope] = kept
	}
}
