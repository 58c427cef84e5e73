package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func line(id int, price int64, qty int) Item {
	return Item{ProductID: id, Name: "item", Price: decimal.NewFromInt(price), Quantity: qty}
}

func TestAddMergesQuantitiesForExistingProduct(t *testing.T) {
	items := Add(nil, line(1, 50, 2))
	items = Add(items, line(1, 50, 3))

	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestAddDefaultsNonPositiveQuantityToOne(t *testing.T) {
	items := Add(nil, line(1, 50, 0))
	if items[0].Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", items[0].Quantity)
	}
}

func TestAddKeepsDistinctProductsInInsertionOrder(t *testing.T) {
	items := Add(nil, line(3, 10, 1))
	items = Add(items, line(1, 20, 1))
	items = Add(items, line(2, 30, 1))

	want := []int{3, 1, 2}
	for i, it := range items {
		if it.ProductID != want[i] {
			t.Fatalf("line %d product = %d, want %d", i, it.ProductID, want[i])
		}
	}
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	items := Add(nil, line(1, 50, 2))
	out := Remove(items, 99)
	if len(out) != 1 {
		t.Fatalf("expected one line, got %d", len(out))
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	items := Add(nil, line(1, 50, 2))
	items = Add(items, line(2, 80, 1))

	items = SetQuantity(items, 1, 0)
	if len(items) != 1 || items[0].ProductID != 2 {
		t.Fatalf("lines after zeroing = %+v", items)
	}

	items = SetQuantity(items, 2, -3)
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestTotalAndCount(t *testing.T) {
	items := Add(nil, line(1, 50, 2))
	items = Add(items, line(2, 50, 3))

	if got := Total(items); !got.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("total = %s, want 250", got)
	}
	if got := Count(items); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	items := Add(nil, line(1, 50, 2))

	_ = Add(items, line(1, 50, 3))
	if items[0].Quantity != 2 {
		t.Fatalf("input mutated by Add: quantity = %d", items[0].Quantity)
	}

	_ = SetQuantity(items, 1, 9)
	if items[0].Quantity != 2 {
		t.Fatalf("input mutated by SetQuantity: quantity = %d", items[0].Quantity)
	}
}
