package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
)

// Status is an order's fulfillment state.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusDelivered  Status = "Delivered"
)

// Order is one entry in the account's order history.
type Order struct {
	ID        string          `json:"id"`
	PlacedAt  time.Time       `json:"placed_at"`
	Status    Status          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// Service serves the account's order history. There is no checkout, so
// the history is the fixed sample set the storefront has always shown.
type Service interface {
	List(ctx context.Context) []Order
	Get(ctx context.Context, id string) (Order, error)
}

type service struct {
	orders []Order
}

func NewService() Service {
	return &service{orders: sampleOrders()}
}

func (s *service) List(_ context.Context) []Order {
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *service) Get(_ context.Context, id string) (Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func sampleOrders() []Order {
	return []Order{
		{
			ID:        "ORD-001",
			PlacedAt:  time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
			Status:    StatusDelivered,
			Total:     decimal.RequireFromString("1299.97"),
			ItemCount: 3,
		},
		{
			ID:        "ORD-002",
			PlacedAt:  time.Date(2023, time.April, 15, 0, 0, 0, 0, time.UTC),
			Status:    StatusProcessing,
			Total:     decimal.RequireFromString("899.99"),
			ItemCount: 1,
		},
		{
			ID:        "ORD-003",
			PlacedAt:  time.Date(2023, time.March, 22, 0, 0, 0, 0, time.UTC),
			Status:    StatusDelivered,
			Total:     decimal.RequireFromString("2499.98"),
			ItemCount: 4,
		},
	}
}
