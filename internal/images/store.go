package images

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/metrics"
)

const storeName = "images"

// Store resolves image URLs for every slot, layering admin overrides on
// top of the built-in fallbacks. Overrides persist as plain URL strings
// for the single slots and as JSON key-to-URL maps for the keyed ones.
type Store struct {
	mu         sync.Mutex
	homeHero   string
	aboutHero  string
	logo       string
	categories map[string]string
	products   map[string]string

	kv      kvstore.Store
	log     *logger.Logger
	metrics *metrics.StoreMetrics
}

func NewStore(ctx context.Context, kv kvstore.Store, log *logger.Logger, m *metrics.StoreMetrics) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "image store requires a key-value store")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "image store requires a logger")
	}

	s := &Store{
		kv:         kv,
		log:        log,
		metrics:    m,
		categories: map[string]string{},
		products:   map[string]string{},
	}
	s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.homeHero = s.loadURL(ctx, kvstore.KeyHomeHeroImageURL)
	s.aboutHero = s.loadURL(ctx, kvstore.KeyAboutHeroImageURL)
	s.logo = s.loadURL(ctx, kvstore.KeyLogoImageURL)
	s.categories = s.loadMap(ctx, kvstore.KeyCategoryImageURLs)
	s.products = s.loadMap(ctx, kvstore.KeyProductImageURLs)

	// First start seeds the stock banner, so admins see a real entry to
	// replace instead of an empty slot.
	if s.homeHero == "" {
		s.homeHero = DefaultHomeHeroURL
		if err := s.kv.Set(ctx, kvstore.KeyHomeHeroImageURL, DefaultHomeHeroURL); err != nil {
			s.metrics.IncPersistFailure(storeName)
			s.log.Error(ctx, "seeding home hero image failed", err)
		}
	}
}

func (s *Store) loadURL(ctx context.Context, key string) string {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Error(s.log.WithStoreKey(ctx, key), "image url read failed", err)
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(raw)
}

func (s *Store) loadMap(ctx context.Context, key string) map[string]string {
	out := map[string]string{}
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Error(s.log.WithStoreKey(ctx, key), "image map read failed", err)
		return out
	}
	if !ok || raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.Warn(s.log.WithStoreKey(ctx, key), "image map corrupt, starting empty")
		return map[string]string{}
	}
	return out
}

// Resolve returns the URL to serve for the slot. Keyed slots require a
// key; unknown keys fall back rather than erroring so a product page
// always has something to render.
func (s *Store) Resolve(_ context.Context, slot Slot, key string) (string, error) {
	if slot.Keyed() && strings.TrimSpace(key) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image slot requires a key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var override string
	switch slot {
	case SlotHomeHero:
		override = s.homeHero
	case SlotAboutHero:
		override = s.aboutHero
	case SlotLogo:
		override = s.logo
	case SlotCategory:
		override = s.categories[key]
	case SlotProduct:
		override = s.products[key]
	}
	if override != "" {
		return override, nil
	}
	return slot.Fallback(), nil
}

// SetOverride stores an admin-supplied URL for the slot. The URL is kept
// verbatim; only presence is checked.
func (s *Store) SetOverride(ctx context.Context, slot Slot, key, url string) error {
	if url == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image url is required")
	}
	if slot.Keyed() && strings.TrimSpace(key) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image slot requires a key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncMutation(storeName, "set")

	switch slot {
	case SlotHomeHero:
		s.homeHero = url
		s.persistURL(ctx, kvstore.KeyHomeHeroImageURL, url)
	case SlotAboutHero:
		s.aboutHero = url
		s.persistURL(ctx, kvstore.KeyAboutHeroImageURL, url)
	case SlotLogo:
		s.logo = url
		s.persistURL(ctx, kvstore.KeyLogoImageURL, url)
	case SlotCategory:
		s.categories[key] = url
		s.persistMap(ctx, kvstore.KeyCategoryImageURLs, s.categories)
	case SlotProduct:
		s.products[key] = url
		s.persistMap(ctx, kvstore.KeyProductImageURLs, s.products)
	}
	return nil
}

// RemoveOverride reverts the slot to its fallback.
func (s *Store) RemoveOverride(ctx context.Context, slot Slot, key string) error {
	if slot.Keyed() && strings.TrimSpace(key) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image slot requires a key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncMutation(storeName, "remove")

	switch slot {
	case SlotHomeHero:
		s.homeHero = ""
		s.deleteKey(ctx, kvstore.KeyHomeHeroImageURL)
	case SlotAboutHero:
		s.aboutHero = ""
		s.deleteKey(ctx, kvstore.KeyAboutHeroImageURL)
	case SlotLogo:
		s.logo = ""
		s.deleteKey(ctx, kvstore.KeyLogoImageURL)
	case SlotCategory:
		delete(s.categories, key)
		s.persistMap(ctx, kvstore.KeyCategoryImageURLs, s.categories)
	case SlotProduct:
		delete(s.products, key)
		s.persistMap(ctx, kvstore.KeyProductImageURLs, s.products)
	}
	return nil
}

// Overrides lists every stored override, keyed the way admins set them.
func (s *Store) Overrides(_ context.Context) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make(map[string]string, len(s.categories))
	for k, v := range s.categories {
		categories[k] = v
	}
	products := make(map[string]string, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}

	return map[string]any{
		string(SlotHomeHero):  s.homeHero,
		string(SlotAboutHero): s.aboutHero,
		string(SlotLogo):      s.logo,
		string(SlotCategory):  categories,
		string(SlotProduct):   products,
	}
}

func (s *Store) persistURL(ctx context.Context, key, url string) {
	if err := s.kv.Set(ctx, key, url); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.log.Error(s.log.WithStoreKey(ctx, key), "image url write failed", err)
	}
}

func (s *Store) persistMap(ctx context.Context, key string, values map[string]string) {
	raw, err := json.Marshal(values)
	if err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.log.Error(s.log.WithStoreKey(ctx, key), "image map marshal failed", err)
		return
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.log.Error(s.log.WithStoreKey(ctx, key), "image map write failed", err)
	}
}

func (s *Store) deleteKey(ctx context.Context, key string) {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.metrics.IncPersistFailure(storeName)
		s.log.Error(s.log.WithStoreKey(ctx, key), "image url delete failed", err)
	}
}
