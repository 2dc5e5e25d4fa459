package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"

	"github.com/stretchr/testify/require"
)

// failingStore fails every Delete
type failingStore struct {
	*MemoryStore
}

func (f failingStore) Delete(context.Context, ...string) error {
	return errors.New("store offline")
}

func TestSession_LoginRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(NewMemoryStore(), nil)

	_, err := s.Token(ctx, model.RoleUser)
	require.ErrorIs(t, err, auctionerrors.ErrNotAuthenticated)

	user := model.Identity{ID: "u1", Name: "Asha", Username: "asha", MobileNumber: "9999999999"}
	require.NoError(t, s.SaveLogin(ctx, model.RoleUser, "user-tok", user))

	tok, err := s.Token(ctx, model.RoleUser)
	require.NoError(t, err)
	require.Equal(t, "user-tok", tok)

	got, err := s.Identity(ctx, model.RoleUser)
	require.NoError(t, err)
	require.Equal(t, "asha", got.Username)
	require.Equal(t, model.RoleUser, got.Role)

	// admin keys are independent
	_, err = s.Token(ctx, model.RoleAdmin)
	require.ErrorIs(t, err, auctionerrors.ErrNotAuthenticated)

	require.ErrorIs(t, s.SaveLogin(ctx, model.RoleAdmin, "", model.Identity{}), auctionerrors.ErrMissingField)
}

func TestSession_LogoutOnlyClearsRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(NewMemoryStore(), nil)
	require.NoError(t, s.SaveLogin(ctx, model.RoleUser, "user-tok", model.Identity{ID: "u1"}))
	require.NoError(t, s.SaveLogin(ctx, model.RoleAdmin, "admin-tok", model.Identity{ID: "a1"}))

	require.NoError(t, s.Logout(ctx, model.RoleUser))

	_, err := s.Token(ctx, model.RoleUser)
	require.ErrorIs(t, err, auctionerrors.ErrNotAuthenticated)
	_, err = s.Identity(ctx, model.RoleUser)
	require.ErrorIs(t, err, auctionerrors.ErrNotAuthenticated)

	tok, err := s.Token(ctx, model.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "admin-tok", tok)
}

func TestSession_InvalidateClearsAllAndCallsHook(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	var calls atomic.Int32
	s := New(store, func() { calls.Add(1) })

	require.NoError(t, s.SaveLogin(ctx, model.RoleUser, "user-tok", model.Identity{ID: "u1"}))
	require.NoError(t, s.SaveLogin(ctx, model.RoleAdmin, "admin-tok", model.Identity{ID: "a1"}))

	require.NoError(t, s.Invalidate(ctx))
	require.Equal(t, int32(1), calls.Load())

	for _, k := range AllKeys {
		_, err := store.Get(ctx, k)
		require.ErrorIs(t, err, auctionerrors.ErrSessionNotFound, "key %s", k)
	}

	var replaced atomic.Int32
	s.SetOnUnauthorized(func() { replaced.Add(1) })
	require.NoError(t, s.Invalidate(ctx))
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, int32(1), replaced.Load())
}

func TestSession_InvalidateRunsHookOnStoreFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	s := New(failingStore{NewMemoryStore()}, func() { calls.Add(1) })

	require.Error(t, s.Invalidate(context.Background()))
	require.Equal(t, int32(1), calls.Load())
}

func TestSession_CorruptIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyAdmin, "not-json"))

	_, err := New(store, nil).Identity(ctx, model.RoleAdmin)
	require.Error(t, err)
	require.False(t, errors.Is(err, auctionerrors.ErrNotAuthenticated))
}
