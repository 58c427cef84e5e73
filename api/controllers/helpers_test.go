package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/addisavenue/storefront-backend/internal/cart"
	"github.com/addisavenue/storefront-backend/internal/catalog"
	"github.com/addisavenue/storefront-backend/internal/images"
	"github.com/addisavenue/storefront-backend/internal/wishlist"
	"github.com/addisavenue/storefront-backend/pkg/kvstore"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func testCatalog(t *testing.T) catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(catalog.Seed(), nil)
	if err != nil {
		t.Fatalf("catalog.NewService: %v", err)
	}
	return svc
}

func testCartStore(t *testing.T) *cart.Store {
	t.Helper()
	s, err := cart.NewStore(context.Background(), kvstore.NewMemory(), testLogger(), nil)
	if err != nil {
		t.Fatalf("cart.NewStore: %v", err)
	}
	return s
}

func testWishlistStore(t *testing.T) *wishlist.Store {
	t.Helper()
	s, err := wishlist.NewStore(context.Background(), kvstore.NewMemory(), testLogger(), nil)
	if err != nil {
		t.Fatalf("wishlist.NewStore: %v", err)
	}
	return s
}

func testImageStore(t *testing.T) *images.Store {
	t.Helper()
	s, err := images.NewStore(context.Background(), kvstore.NewMemory(), testLogger(), nil)
	if err != nil {
		t.Fatalf("images.NewStore: %v", err)
	}
	return s
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope types.SuccessEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	raw, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
