package cart

import (
	"github.com/shopspring/decimal"

	"github.com/addisavenue/storefront-backend/internal/catalog"
)

// Item is one cart line. Quantity is always positive; transitions that
// would leave a non-positive quantity drop the line instead.
type Item struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// ItemFromProduct snapshots the fields the cart keeps from a product.
func ItemFromProduct(p catalog.Product, quantity int) Item {
	return Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}
}

// The transition functions below are pure: they never mutate their input
// slice and always return a fresh one.

// Add appends the item, or merges quantities when a line for the same
// product already exists. Non-positive quantities are treated as 1.
func Add(items []Item, item Item) []Item {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	out := clone(items)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}

// Remove drops the line for the given product. Removing an absent
// product is a no-op.
func Remove(items []Item, productID int) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// SetQuantity replaces the quantity on an existing line. A quantity of
// zero or less removes the line. Absent products are a no-op.
func SetQuantity(items []Item, productID, quantity int) []Item {
	if quantity <= 0 {
		return Remove(items, productID)
	}
	out := clone(items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Total is the sum of price times quantity across all lines.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Count is the total unit count across all lines.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
