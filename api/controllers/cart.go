package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/addisavenue/storefront-backend/api/responses"
	"github.com/addisavenue/storefront-backend/api/validators"
	"github.com/addisavenue/storefront-backend/internal/cart"
	"github.com/addisavenue/storefront-backend/internal/catalog"
	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

type cartView struct {
	Items []cart.Item     `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

func viewCart(r *http.Request, store *cart.Store) cartView {
	items := store.Items(r.Context())
	return cartView{
		Items: items,
		Total: cart.Total(items),
		Count: cart.Count(items),
	}
}

func GetCart(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		responses.WriteSuccess(w, viewCart(r, store))
	}
}

type addCartItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

// AddCartItem snapshots the product into the cart, merging quantities
// when the line already exists.
func AddCartItem(store *cart.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.Get(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quantity := payload.Quantity
		if quantity < 1 {
			quantity = 1
		}
		store.Add(r.Context(), cart.ItemFromProduct(product, quantity))
		responses.WriteSuccessStatus(w, http.StatusCreated, viewCart(r, store))
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets the line quantity; zero or less removes the line.
func UpdateCartItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.SetQuantity(r.Context(), id, payload.Quantity)
		responses.WriteSuccess(w, viewCart(r, store))
	}
}

func RemoveCartItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		store.Remove(r.Context(), id)
		responses.WriteSuccess(w, viewCart(r, store))
	}
}

func ClearCart(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		store.Clear(r.Context())
		responses.WriteSuccess(w, viewCart(r, store))
	}
}
