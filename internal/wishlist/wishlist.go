package wishlist

// The wishlist is an ordered set of product ids: membership is unique,
// insertion order is preserved. Transitions are pure and never mutate
// their input slice.

// Add appends the id unless it is already present.
func Add(ids []int, productID int) []int {
	if Contains(ids, productID) {
		return clone(ids)
	}
	return append(clone(ids), productID)
}

// Remove drops the id. Removing an absent id is a no-op.
func Remove(ids []int, productID int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id != productID {
			out = append(out, id)
		}
	}
	return out
}

// Toggle adds the id when absent and removes it when present.
func Toggle(ids []int, productID int) []int {
	if Contains(ids, productID) {
		return Remove(ids, productID)
	}
	return Add(ids, productID)
}

// Contains reports membership.
func Contains(ids []int, productID int) bool {
	for _, id := range ids {
		if id == productID {
			return true
		}
	}
	return false
}

func clone(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
