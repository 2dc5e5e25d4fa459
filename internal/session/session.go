package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"auction-console/internal/auctionerrors"
	model "auction-console/internal/models"
	"auction-console/utils"
)

// Fixed storage keys shared with the browser client
const (
	KeyToken      = "token"
	KeyAdminToken = "admin_token"
	KeyUser       = "user"
	KeyAdmin      = "admin"
)

// AllKeys lists every key cleared on session teardown
var AllKeys = []string{KeyToken, KeyAdminToken, KeyUser, KeyAdmin}

func keysFor(role model.Role) (tokenKey, identityKey string) {
	if role == model.RoleAdmin {
		return KeyAdminToken, KeyAdmin
	}
	return KeyToken, KeyUser
}

// Session is the explicit session context injected into the API client.
// OnUnauthorized runs after every teardown triggered by a 401.
type Session struct {
	store Store

	mu             sync.RWMutex
	onUnauthorized func()
}

// New creates a Session over store. onUnauthorized may be nil.
func New(store Store, onUnauthorized func()) *Session {
	return &Session{store: store, onUnauthorized: onUnauthorized}
}

// SetOnUnauthorized replaces the teardown hook
func (s *Session) SetOnUnauthorized(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUnauthorized = fn
}

// Token returns the bearer token for role or ErrNotAuthenticated
func (s *Session) Token(ctx context.Context, role model.Role) (string, error) {
	tokenKey, _ := keysFor(role)
	tok, err := s.store.Get(ctx, tokenKey)
	if errors.Is(err, auctionerrors.ErrSessionNotFound) || (err == nil && tok == "") {
		return "", fmt.Errorf("%s session: %w", role, auctionerrors.ErrNotAuthenticated)
	}
	if err != nil {
		return "", fmt.Errorf("%s session: %w", role, err)
	}
	return tok, nil
}

// Identity returns the cached user or admin for role
func (s *Session) Identity(ctx context.Context, role model.Role) (model.Identity, error) {
	_, idKey := keysFor(role)
	raw, err := s.store.Get(ctx, idKey)
	if errors.Is(err, auctionerrors.ErrSessionNotFound) {
		return model.Identity{}, fmt.Errorf("%s identity: %w", role, auctionerrors.ErrNotAuthenticated)
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("%s identity: %w", role, err)
	}
	var id model.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return model.Identity{}, fmt.Errorf("decode %s identity: %w", role, err)
	}
	return id, nil
}

// SaveLogin stores the token and identity returned by a login call
func (s *Session) SaveLogin(ctx context.Context, role model.Role, token string, id model.Identity) error {
	if token == "" {
		return fmt.Errorf("save %s session: %w - empty token", role, auctionerrors.ErrMissingField)
	}
	if id.Role == "" {
		id.Role = role
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode %s identity: %w", role, err)
	}

	tokenKey, idKey := keysFor(role)
	if err := s.store.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("save %s token: %w", role, err)
	}
	if err := s.store.Set(ctx, idKey, string(raw)); err != nil {
		return fmt.Errorf("save %s identity: %w", role, err)
	}
	return nil
}

// Logout removes the keys of one role
func (s *Session) Logout(ctx context.Context, role model.Role) error {
	tokenKey, idKey := keysFor(role)
	if err := s.store.Delete(ctx, tokenKey, idKey); err != nil {
		return fmt.Errorf("logout %s: %w", role, err)
	}
	return nil
}

// Invalidate clears every stored credential and then runs the OnUnauthorized hook.
// The hook runs even when clearing the store fails.
func (s *Session) Invalidate(ctx context.Context) error {
	err := s.store.Delete(ctx, AllKeys...)
	if err != nil {
		utils.Error("session: failed to clear credentials", map[string]any{"error": err.Error()})
		err = fmt.Errorf("invalidate session: %w", err)
	} else {
		utils.Warn("session: credentials cleared after unauthorized response", nil)
	}

	s.mu.RLock()
	hook := s.onUnauthorized
	s.mu.RUnlock()
	if hook != nil {
		hook()
	}
	return err
}
