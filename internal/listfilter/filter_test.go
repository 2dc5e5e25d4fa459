package listfilter

import (
	"errors"
	"testing"
	"time"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Vintage Watch", Description: "Swiss movement", Time: now.Add(time.Hour)},
		{ID: "p2", Name: "Oil Painting", Description: "Landscape, framed", Time: now.Add(-time.Hour)},
		{ID: "p3", Name: "Pocket watch", Description: "Brass case", Time: now},
		{ID: "p4", Name: "Camera", Description: "Film camera with WATCH strap", Time: now.Add(24 * time.Hour)},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// Tests Filter
func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "empty_query_returns_all", query: Query{}, want: []string{"p1", "p2", "p3", "p4"}},
		{name: "explicit_all", query: Query{Status: StatusAll}, want: []string{"p1", "p2", "p3", "p4"}},
		{name: "search_case_insensitive", query: Query{Search: "WaTcH"}, want: []string{"p1", "p3", "p4"}},
		{name: "search_description", query: Query{Search: "landscape"}, want: []string{"p2"}},
		{name: "search_trimmed", query: Query{Search: "  camera "}, want: []string{"p4"}},
		{name: "active_only", query: Query{Status: StatusActive}, want: []string{"p1", "p4"}},
		{name: "expired_includes_deadline_now", query: Query{Status: StatusExpired}, want: []string{"p2", "p3"}},
		{name: "search_and_status", query: Query{Search: "watch", Status: StatusExpired}, want: []string{"p3"}},
		{name: "no_match", query: Query{Search: "sofa"}, want: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ids(Filter(sampleProducts(), tc.query, now)))
		})
	}
}

func TestFilter_IdentityAndIdempotence(t *testing.T) {
	t.Parallel()

	source := sampleProducts()
	original := sampleProducts()

	all := Filter(source, Query{Status: StatusAll}, now)
	require.Equal(t, source, all)

	q := Query{Search: "watch", Status: StatusActive}
	once := Filter(source, q, now)
	twice := Filter(once, q, now)
	require.Equal(t, once, twice)

	// source untouched and result is a distinct slice
	require.Equal(t, original, source)
	if len(all) > 0 {
		all[0].Name = "mutated"
		require.Equal(t, "Vintage Watch", source[0].Name)
	}
}

func TestFilter_StatusReevaluatedAgainstNow(t *testing.T) {
	t.Parallel()

	items := sampleProducts()
	later := now.Add(2 * time.Hour)

	require.Equal(t, []string{"p1", "p4"}, ids(Filter(items, Query{Status: StatusActive}, now)))
	require.Equal(t, []string{"p4"}, ids(Filter(items, Query{Status: StatusActive}, later)))
}

func TestFilter_Auctions(t *testing.T) {
	t.Parallel()

	auctions := []model.Auction{
		{ID: "a1", Name: "Spring Art Sale", ValidUntil: now.Add(time.Hour)},
		{ID: "a2", Name: "Clearance", ValidUntil: now.Add(-time.Minute)},
	}

	got := Filter(auctions, Query{Search: "art", Status: StatusActive}, now)
	require.Len(t, got, 1)
	require.Equal(t, "a1", got[0].ID)

	require.Empty(t, Filter([]model.Auction(nil), Query{}, now))
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]Status{"": StatusAll, "all": StatusAll, " Active ": StatusActive, "EXPIRED": StatusExpired} {
		got, err := ParseStatus(raw)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseStatus("pending")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrInvalidFilter))
}
