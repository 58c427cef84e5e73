package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
)

func TestListReturnsSampleHistory(t *testing.T) {
	svc := NewService()

	list := svc.List(context.Background())
	if len(list) != 3 {
		t.Fatalf("got %d orders, want 3", len(list))
	}
	if list[0].ID != "ORD-001" || list[2].ID != "ORD-003" {
		t.Fatalf("unexpected order ids: %s, %s", list[0].ID, list[2].ID)
	}
}

func TestGet(t *testing.T) {
	svc := NewService()

	o, err := svc.Get(context.Background(), "ORD-002")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if o.Status != StatusProcessing {
		t.Fatalf("status = %s", o.Status)
	}
	if !o.Total.Equal(decimal.RequireFromString("899.99")) {
		t.Fatalf("total = %s", o.Total)
	}

	_, err = svc.Get(context.Background(), "ORD-999")
	if coded := pkgerrors.As(err); coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
