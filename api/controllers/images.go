package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/addisavenue/storefront-backend/api/responses"
	"github.com/addisavenue/storefront-backend/api/validators"
	"github.com/addisavenue/storefront-backend/internal/images"
	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

// ResolveImage serves the URL for a slot, falling back to the built-in
// placeholder when no override exists.
func ResolveImage(store *images.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "image store unavailable"))
			return
		}

		slot, err := images.ParseSlot(chi.URLParam(r, "slot"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		url, err := store.Resolve(r.Context(), slot, r.URL.Query().Get("key"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"slot": string(slot), "url": url})
	}
}

func ListImageOverrides(store *images.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "image store unavailable"))
			return
		}
		responses.WriteSuccess(w, store.Overrides(r.Context()))
	}
}

// The url is stored as-is: malformed strings are for the admin to get
// right, not for the service to reject.
type setImageRequest struct {
	URL string `json:"url" validate:"required"`
	Key string `json:"key" validate:"omitempty,max=128"`
}

func SetImage(store *images.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "image store unavailable"))
			return
		}

		slot, err := images.ParseSlot(chi.URLParam(r, "slot"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setImageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.SetOverride(r.Context(), slot, payload.Key, payload.URL); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.Overrides(r.Context()))
	}
}

func RemoveImage(store *images.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "image store unavailable"))
			return
		}

		slot, err := images.ParseSlot(chi.URLParam(r, "slot"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.RemoveOverride(r.Context(), slot, r.URL.Query().Get("key")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.Overrides(r.Context()))
	}
}
