package session

import (
	"context"
	"encoding/json"
	"sync"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/metrics"
)

const storeName = "session"

// Store holds the signed-in user. Unlike the cart and wishlist stores,
// logout deletes the key outright so a fresh process starts logged out
// rather than rehydrating a null snapshot.
type Store struct {
	mu      sync.Mutex
	user    *User
	kv      kvstore.Store
	log     *logger.Logger
	metrics *metrics.StoreMetrics
}

func NewStore(ctx context.Context, kv kvstore.Store, log *logger.Logger, m *metrics.StoreMetrics) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session store requires a key-value store")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session store requires a logger")
	}

	s := &Store{kv: kv, log: log, metrics: m}
	s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil

	raw, ok, err := s.kv.Get(ctx, kvstore.KeyUser)
	if err != nil {
		s.log.Error(ctx, "session snapshot read failed, starting logged out", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.Email == "" {
		s.log.Warn(ctx, "session snapshot corrupt, starting logged out")
		return
	}
	s.user = &u
}

// Current returns the signed-in user, if any.
func (s *Store) Current(_ context.Context) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Put signs the user in and persists the snapshot.
func (s *Store) Put(ctx context.Context, u User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &u
	s.metrics.IncMutation(storeName, "login")

	raw, err := json.Marshal(u)
	if err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.log.Error(ctx, "session snapshot marshal failed", err)
		return
	}
	if err := s.kv.Set(ctx, kvstore.KeyUser, string(raw)); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.log.Error(ctx, "session snapshot write failed", err)
	}
}

// Clear signs the user out and removes the snapshot.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.metrics.IncMutation(storeName, "logout")

	if err := s.kv.Delete(ctx, kvstore.KeyUser); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.log.Error(ctx, "session snapshot delete failed", err)
	}
}
