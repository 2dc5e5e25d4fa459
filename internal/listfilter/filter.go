package listfilter

import (
	"fmt"
	"strings"
	"time"

	"auction-console/internal/auctionerrors"
)

// Status selects items by their deadline relative to now
type Status string

const (
	StatusAll     Status = "all"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// Listable is anything with searchable text and a deadline
type Listable interface {
	SearchText() []string
	EndsAt() time.Time
}

// Query holds the free-text search and status predicate
type Query struct {
	Search string `form:"search"`
	Status Status `form:"status"`
}

// ParseStatus validates a status coming from user input. Empty means all.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case "", StatusAll:
		return StatusAll, nil
	case StatusActive, StatusExpired:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", auctionerrors.ErrInvalidFilter, raw)
	}
}

// Filter returns the items matching q, evaluated against now. The result is always a new
// slice in source order and items is never modified.
func Filter[T Listable](items []T, q Query, now time.Time) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesStatus(item, q.Status, now) {
			continue
		}
		if needle != "" && !matchesText(item, needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesStatus(item Listable, status Status, now time.Time) bool {
	switch status {
	case StatusActive:
		return now.Before(item.EndsAt())
	case StatusExpired:
		return !now.Before(item.EndsAt())
	default:
		return true
	}
}

func matchesText(item Listable, needle string) bool {
	for _, field := range item.SearchText() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
