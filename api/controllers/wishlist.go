package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/addisavenue/storefront-backend/api/responses"
	"github.com/addisavenue/storefront-backend/api/validators"
	"github.com/addisavenue/storefront-backend/internal/catalog"
	"github.com/addisavenue/storefront-backend/internal/wishlist"
	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

type wishlistView struct {
	IDs      []int             `json:"ids"`
	Products []catalog.Product `json:"products"`
}

// viewWishlist expands saved ids into product records, skipping ids no
// longer present in the catalog.
func viewWishlist(r *http.Request, store *wishlist.Store, catalogSvc catalog.Service) wishlistView {
	ids := store.IDs(r.Context())
	view := wishlistView{IDs: ids, Products: make([]catalog.Product, 0, len(ids))}
	for _, id := range ids {
		if p, err := catalogSvc.Get(r.Context(), id); err == nil {
			view.Products = append(view.Products, p)
		}
	}
	return view
}

func GetWishlist(store *wishlist.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}
		responses.WriteSuccess(w, viewWishlist(r, store, catalogSvc))
	}
}

type addWishlistItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
}

func AddWishlistItem(store *wishlist.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}

		var payload addWishlistItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := catalogSvc.Get(r.Context(), payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Add(r.Context(), payload.ProductID)
		responses.WriteSuccessStatus(w, http.StatusCreated, viewWishlist(r, store, catalogSvc))
	}
}

func RemoveWishlistItem(store *wishlist.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		store.Remove(r.Context(), id)
		responses.WriteSuccess(w, viewWishlist(r, store, catalogSvc))
	}
}

func ClearWishlist(store *wishlist.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}
		store.Clear(r.Context())
		responses.WriteSuccess(w, viewWishlist(r, store, catalogSvc))
	}
}
