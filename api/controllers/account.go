package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/addisavenue/storefront-backend/api/responses"
	"github.com/addisavenue/storefront-backend/internal/orders"
	"github.com/addisavenue/storefront-backend/internal/session"
	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/logger"
)

// AccountMe returns the signed-in profile backing the account page.
func AccountMe(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		user, ok := svc.Current(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "not signed in"))
			return
		}
		responses.WriteSuccess(w, user)
	}
}

func AccountOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

func AccountOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		order, err := svc.Get(r.Context(), chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
