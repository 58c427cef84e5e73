package images

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

func newTestStore(t *testing.T, kv kvstore.Store) *Store {
	t.Helper()
	log := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
	s, err := NewStore(context.Background(), kv, log, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestParseSlot(t *testing.T) {
	if _, err := ParseSlot("home-hero"); err != nil {
		t.Fatalf("ParseSlot(home-hero): %v", err)
	}
	if _, err := ParseSlot("banner"); err == nil {
		t.Fatal("expected error for unknown slot")
	}
}

func TestResolveFallbacks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, kvstore.NewMemory())

	cases := []struct {
		slot Slot
		key  string
		want string
	}{
		{SlotHomeHero, "", DefaultHomeHeroURL},
		{SlotAboutHero, "", "/placeholder.svg?height=800&width=1920"},
		{SlotLogo, "", "/placeholder.svg?height=40&width=40"},
		{SlotCategory, "home-living", "/placeholder.svg?height=600&width=400"},
		{SlotProduct, "42", "/placeholder.svg?height=400&width=300"},
	}
	for _, tc := range cases {
		got, err := s.Resolve(ctx, tc.slot, tc.key)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tc.slot, err)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%s, %q) = %q, want %q", tc.slot, tc.key, got, tc.want)
		}
	}
}

func TestKeyedSlotRequiresKey(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, kvstore.NewMemory())

	_, err := s.Resolve(ctx, SlotProduct, "")
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOverrideRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	s := newTestStore(t, kv)

	if err := s.SetOverride(ctx, SlotProduct, "7", "https://cdn.example.com/earbuds.jpg"); err != nil {
		t.Fatalf("SetOverride: %v", err)
	}
	got, err := s.Resolve(ctx, SlotProduct, "7")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "https://cdn.example.com/earbuds.jpg" {
		t.Fatalf("resolved %q", got)
	}

	// Other keys in the same family keep their fallback.
	got, _ = s.Resolve(ctx, SlotProduct, "8")
	if got != SlotProduct.Fallback() {
		t.Fatalf("unrelated key resolved %q", got)
	}

	reloaded := newTestStore(t, kv)
	got, _ = reloaded.Resolve(ctx, SlotProduct, "7")
	if got != "https://cdn.example.com/earbuds.jpg" {
		t.Fatalf("override lost across restart: %q", got)
	}
}

func TestRemoveOverrideRevertsToFallback(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, kvstore.NewMemory())

	if err := s.SetOverride(ctx, SlotAboutHero, "", "https://cdn.example.com/about.jpg"); err != nil {
		t.Fatalf("SetOverride: %v", err)
	}
	if err := s.RemoveOverride(ctx, SlotAboutHero, ""); err != nil {
		t.Fatalf("RemoveOverride: %v", err)
	}

	got, _ := s.Resolve(ctx, SlotAboutHero, "")
	if got != SlotAboutHero.Fallback() {
		t.Fatalf("resolved %q, want fallback", got)
	}
}

func TestHomeHeroSeededOnFirstStart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	newTestStore(t, kv)

	raw, ok, err := kv.Get(ctx, kvstore.KeyHomeHeroImageURL)
	if err != nil || !ok {
		t.Fatalf("expected seeded home hero, ok=%v err=%v", ok, err)
	}
	if raw != DefaultHomeHeroURL {
		t.Fatalf("seeded value = %q", raw)
	}
}

func TestCorruptMapStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	kv.Seed(kvstore.KeyProductImageURLs, "{oops")

	s := newTestStore(t, kv)
	got, _ := s.Resolve(ctx, SlotProduct, "42")
	if got != SlotProduct.Fallback() {
		t.Fatalf("resolved %q, want fallback", got)
	}
}
