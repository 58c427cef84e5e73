package cart

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/metrics"
	"github.com/addisavenue/storefront-backend/pkg/syncutil"
)

const storeName = "cart"

// Store holds the live cart. Memory is authoritative: every mutation
// applies in memory first and then writes the snapshot through to the
// key-value store. A failed write is logged and counted but never rolls
// the in-memory state back.
type Store struct {
	state *syncutil.Persisted[[]Item]
}

func NewStore(ctx context.Context, kv kvstore.Store, log *logger.Logger, m *metrics.StoreMetrics) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store requires a key-value store")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store requires a logger")
	}

	state := syncutil.NewPersisted[[]Item](syncutil.PersistedConfig{
		Store:   storeName,
		Key:     kvstore.KeyCart,
		KV:      kv,
		Log:     log,
		Metrics: m,
	})
	state.Load(ctx)
	return &Store{state: state}, nil
}

// Items returns a copy of the current lines.
func (s *Store) Items(_ context.Context) []Item {
	return clone(s.state.Snapshot())
}

// Add merges the item into the cart and persists the result.
func (s *Store) Add(ctx context.Context, item Item) []Item {
	return s.state.Mutate(ctx, "add", func(items []Item) []Item {
		return Add(items, item)
	})
}

// Remove drops the line for the product and persists the result.
func (s *Store) Remove(ctx context.Context, productID int) []Item {
	return s.state.Mutate(ctx, "remove", func(items []Item) []Item {
		return Remove(items, productID)
	})
}

// SetQuantity updates a line's quantity. Zero or less removes the line.
func (s *Store) SetQuantity(ctx context.Context, productID, quantity int) []Item {
	return s.state.Mutate(ctx, "set_quantity", func(items []Item) []Item {
		return SetQuantity(items, productID, quantity)
	})
}

// Clear empties the cart and persists the empty snapshot.
func (s *Store) Clear(ctx context.Context) {
	s.state.Mutate(ctx, "clear", func([]Item) []Item {
		return nil
	})
}

// Total is the current cart total.
func (s *Store) Total(_ context.Context) decimal.Decimal {
	return Total(s.state.Snapshot())
}

// Count is the current total unit count.
func (s *Store) Count(_ context.Context) int {
	return Count(s.state.Snapshot())
}

// Snapshot serializes the current lines the way they are persisted.
func (s *Store) Snapshot(_ context.Context) (string, error) {
	raw, err := json.Marshal(s.state.Snapshot())
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal cart snapshot")
	}
	return string(raw), nil
}
