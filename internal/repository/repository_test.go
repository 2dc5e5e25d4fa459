package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Product
func newProduct(id, auctionID string) model.Product {
	return model.Product{
		ID:          id,
		Name:        fmt.Sprintf("%s name", id),
		Description: fmt.Sprintf("%s description", id),
		Time:        time.Now().Add(time.Hour),
		AuctionID:   auctionID,
	}
}

// Test Replace/Products
func TestMemoryRepo_Products(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	_, err := repo.Products(ScopeUnassigned)
	require.True(t, errors.Is(err, auctionerrors.ErrNotCached))

	listing := []model.Product{newProduct("p1", ""), newProduct("p2", "")}
	repo.ReplaceProducts(ScopeUnassigned, listing)

	got, err := repo.Products(ScopeUnassigned)
	require.NoError(t, err)
	require.Equal(t, listing, got)

	// callers cannot mutate cached state through either slice
	listing[0].Name = "changed"
	got[1].Name = "changed"
	again, err := repo.Products(ScopeUnassigned)
	require.NoError(t, err)
	require.Equal(t, "p1 name", again[0].Name)
	require.Equal(t, "p2 name", again[1].Name)

	repo.ReplaceProducts(ScopeUnassigned, nil)
	again, err = repo.Products(ScopeUnassigned)
	require.NoError(t, err)
	require.Empty(t, again)
}

// Test RemoveProduct
func TestMemoryRepo_RemoveProduct(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	repo.ReplaceProducts(ScopeAuction("a1"), []model.Product{newProduct("p1", "a1"), newProduct("p2", "a1")})
	repo.ReplaceProducts(ScopeUnassigned, []model.Product{newProduct("p3", "")})

	tests := []struct {
		name      string
		productID string
		scope     string
		wantIDs   []string
	}{
		{name: "removes_from_auction_scope", productID: "p1", scope: ScopeAuction("a1"), wantIDs: []string{"p2"}},
		{name: "unknown_product_is_noop", productID: "nope", scope: ScopeUnassigned, wantIDs: []string{"p3"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			repo.RemoveProduct(tc.productID)
			got, err := repo.Products(tc.scope)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			require.Equal(t, tc.wantIDs, ids)
		})
	}
}

// Test RemoveAuction
func TestMemoryRepo_RemoveAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	auctions := []model.Auction{{ID: "a1", Name: "one"}, {ID: "a2", Name: "two"}}
	repo.ReplaceAuctions(ScopeAllAuctions, auctions)
	repo.ReplaceAuctions(ScopeMyAuctions, auctions[:1])
	repo.ReplaceProducts(ScopeAuction("a1"), []model.Product{newProduct("p1", "a1")})

	repo.RemoveAuction("a1")

	all, err := repo.Auctions(ScopeAllAuctions)
	require.NoError(t, err)
	require.Equal(t, []model.Auction{{ID: "a2", Name: "two"}}, all)

	mine, err := repo.Auctions(ScopeMyAuctions)
	require.NoError(t, err)
	require.Empty(t, mine)

	_, err = repo.Products(ScopeAuction("a1"))
	require.ErrorIs(t, err, auctionerrors.ErrNotCached)
}

// concurrency test
func TestMemoryRepo_Concurrent(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		i := i
		go func() {
			defer wg.Done()
			repo.ReplaceProducts(ScopeUnassigned, []model.Product{newProduct(fmt.Sprintf("p%d", i), "")})
		}()
		go func() {
			defer wg.Done()
			repo.RemoveProduct(fmt.Sprintf("p%d", i))
			_, _ = repo.Products(ScopeUnassigned)
		}()
	}
	wg.Wait()

	got, err := repo.Products(ScopeUnassigned)
	require.NoError(t, err)
	require.LessOrEqual(t, len(got), 1)
}
