package images

import (
	"fmt"

	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
)

// Slot identifies a customizable image placement.
type Slot string

const (
	SlotHomeHero  Slot = "home-hero"
	SlotAboutHero Slot = "about-hero"
	SlotLogo      Slot = "logo"
	SlotCategory  Slot = "category"
	SlotProduct   Slot = "product"
)

// DefaultHomeHeroURL is the stock banner shown until an admin uploads
// their own. It is also seeded into storage on first start.
const DefaultHomeHeroURL = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/black-friday-sales-sign-neon-light.jpg-xdRJ8e1RUN6okdNUwUAdy1ST8Mqq4b.jpeg"

// ParseSlot maps a raw path segment onto a Slot.
func ParseSlot(raw string) (Slot, error) {
	switch Slot(raw) {
	case SlotHomeHero, SlotAboutHero, SlotLogo, SlotCategory, SlotProduct:
		return Slot(raw), nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown image slot %q", raw))
}

// Keyed reports whether the slot addresses a family of images by key
// (category slug or product id) rather than a single placement.
func (s Slot) Keyed() bool {
	return s == SlotCategory || s == SlotProduct
}

// Fallback is the URL served when no override exists for the slot.
func (s Slot) Fallback() string {
	switch s {
	case SlotHomeHero:
		return DefaultHomeHeroURL
	case SlotAboutHero:
		return "/placeholder.svg?height=800&width=1920"
	case SlotCategory:
		return "/placeholder.svg?height=600&width=400"
	case SlotProduct:
		return "/placeholder.svg?height=400&width=300"
	case SlotLogo:
		return "/placeholder.svg?height=40&width=40"
	}
	return "/placeholder.svg"
}
