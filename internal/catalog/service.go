package catalog

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/metrics"
)

// Service serves catalog reads. The backing catalog is immutable, so the
// service is safe for concurrent use without locking.
type Service interface {
	List(ctx context.Context, q Query) Result
	Get(ctx context.Context, id int) (Product, error)
	Categories(ctx context.Context) []Category
}

type service struct {
	catalog Catalog
	metrics *metrics.StoreMetrics
}

func NewService(c Catalog, m *metrics.StoreMetrics) (Service, error) {
	if len(c) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog service requires a non-empty catalog")
	}
	return &service{catalog: c, metrics: m}, nil
}

func (s *service) List(_ context.Context, q Query) Result {
	start := time.Now()
	res := Run(s.catalog, q)
	s.metrics.ObserveQueryDuration(time.Since(start))
	return res
}

func (s *service) Get(_ context.Context, id int) (Product, error) {
	p, ok := s.catalog.FindByID(id)
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	return p, nil
}

func (s *service) Categories(_ context.Context) []Category {
	return Categories
}
