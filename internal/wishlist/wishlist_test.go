package wishlist

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

func TestAddIsIdempotent(t *testing.T) {
	ids := Add(nil, 4)
	ids = Add(ids, 4)
	ids = Add(ids, 4)

	if !reflect.DeepEqual(ids, []int{4}) {
		t.Fatalf("ids = %v, want [4]", ids)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	ids := Add(nil, 9)
	ids = Add(ids, 2)
	ids = Add(ids, 5)

	if !reflect.DeepEqual(ids, []int{9, 2, 5}) {
		t.Fatalf("ids = %v, want [9 2 5]", ids)
	}
}

func TestRemoveKeepsRemainingOrder(t *testing.T) {
	ids := []int{9, 2, 5}

	if got := Remove(ids, 2); !reflect.DeepEqual(got, []int{9, 5}) {
		t.Fatalf("ids = %v, want [9 5]", got)
	}
	if got := Remove(ids, 42); !reflect.DeepEqual(got, []int{9, 2, 5}) {
		t.Fatalf("removing absent id changed ids: %v", got)
	}
}

func TestToggleFlipsMembership(t *testing.T) {
	ids := Toggle(nil, 7)
	if !Contains(ids, 7) {
		t.Fatal("expected 7 after first toggle")
	}
	ids = Toggle(ids, 7)
	if Contains(ids, 7) {
		t.Fatal("expected 7 gone after second toggle")
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	ids := []int{1, 2}
	_ = Add(ids, 3)
	_ = Remove(ids, 1)
	_ = Toggle(ids, 2)

	if !reflect.DeepEqual(ids, []int{1, 2}) {
		t.Fatalf("input mutated: %v", ids)
	}
}

func newTestStore(t *testing.T, kv kvstore.Store) *Store {
	t.Helper()
	log := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
	s, err := NewStore(context.Background(), kv, log, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStorePersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	first := newTestStore(t, kv)
	first.Add(ctx, 4)
	first.Add(ctx, 11)

	second := newTestStore(t, kv)
	if got := second.IDs(ctx); !reflect.DeepEqual(got, []int{4, 11}) {
		t.Fatalf("rehydrated ids = %v, want [4 11]", got)
	}
	if !second.Contains(ctx, 11) {
		t.Fatal("expected 11 to be saved")
	}
}

func TestStoreCorruptSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	kv.Seed(kvstore.KeyWishlist, `{"not":"a list"`)

	s := newTestStore(t, kv)
	if got := s.Count(ctx); got != 0 {
		t.Fatalf("count = %d, want 0", got)
	}
}
