package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/addisavenue/storefront-backend/api/responses"
	"github.com/addisavenue/storefront-backend/api/validators"
	"github.com/addisavenue/storefront-backend/internal/catalog"
	"github.com/addisavenue/storefront-backend/pkg/config"
	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/pagination"
)

// ListProducts evaluates the browse query: search, category and price
// filters, sort, then pagination. Omitting the page parameter lands on
// page 1, which is what resets paging whenever the client changes a
// filter.
func ListProducts(svc catalog.Service, cfg config.CatalogConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		q := catalog.DefaultQuery()
		if cfg.PageSize > 0 {
			q.PageSize = cfg.PageSize
		}

		q.WithSearch(r.URL.Query().Get("search"))
		q.WithCategories(validators.ParseQueryCSV(r, "categories"))
		q.WithSort(catalog.ParseSortMode(r.URL.Query().Get("sort")))

		min, err := validators.ParseQueryDecimal(r, "min_price", catalog.DefaultPriceMin)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		max, err := validators.ParseQueryDecimal(r, "max_price", catalog.DefaultPriceMax)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// An inverted range is not rejected; the pipeline yields an
		// empty page for it.
		q.WithPriceRange(min, max)

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<20)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		q.WithPage(page)

		size, err := validators.ParseQueryInt(r, "page_size", q.PageSize, 1, pagination.MaxPageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		q.PageSize = size

		responses.WriteSuccess(w, svc.List(r.Context(), q))
	}
}

func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}
