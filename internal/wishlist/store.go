package wishlist

import (
	"context"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/metrics"
	"github.com/addisavenue/storefront-backend/pkg/syncutil"
)

const storeName = "wishlist"

// Store holds the live wishlist with write-through persistence. Memory
// is authoritative; see syncutil.Persisted for the failure semantics.
type Store struct {
	state *syncutil.Persisted[[]int]
}

func NewStore(ctx context.Context, kv kvstore.Store, log *logger.Logger, m *metrics.StoreMetrics) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist store requires a key-value store")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist store requires a logger")
	}

	state := syncutil.NewPersisted[[]int](syncutil.PersistedConfig{
		Store:   storeName,
		Key:     kvstore.KeyWishlist,
		KV:      kv,
		Log:     log,
		Metrics: m,
	})
	state.Load(ctx)
	return &Store{state: state}, nil
}

// IDs returns a copy of the saved product ids in insertion order.
func (s *Store) IDs(_ context.Context) []int {
	return clone(s.state.Snapshot())
}

// Add saves the product id. Adding a saved id is a no-op.
func (s *Store) Add(ctx context.Context, productID int) []int {
	return s.state.Mutate(ctx, "add", func(ids []int) []int {
		return Add(ids, productID)
	})
}

// Remove drops the product id.
func (s *Store) Remove(ctx context.Context, productID int) []int {
	return s.state.Mutate(ctx, "remove", func(ids []int) []int {
		return Remove(ids, productID)
	})
}

// Toggle flips membership for the product id.
func (s *Store) Toggle(ctx context.Context, productID int) []int {
	return s.state.Mutate(ctx, "toggle", func(ids []int) []int {
		return Toggle(ids, productID)
	})
}

// Clear empties the wishlist.
func (s *Store) Clear(ctx context.Context) {
	s.state.Mutate(ctx, "clear", func([]int) []int {
		return nil
	})
}

// Contains reports whether the product id is saved.
func (s *Store) Contains(_ context.Context, productID int) bool {
	return Contains(s.state.Snapshot(), productID)
}

// Count is the number of saved ids.
func (s *Store) Count(_ context.Context) int {
	return len(s.state.Snapshot())
}
