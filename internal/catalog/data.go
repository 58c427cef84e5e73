package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func on(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// Seed returns the built-in catalog. Order here is the "featured" order.
func Seed() Catalog {
	return Catalog{
		{
			ID:           1,
			Name:         "Moringa Leaf Powder",
			Category:     "Health & Wellness",
			CategorySlug: "health-wellness",
			Price:        d("450.00"),
			Image:        "/images/products/moringa-leaf-powder.jpg",
			Description:  "Sun-dried moringa leaf powder from the Rift Valley, milled in small batches.",
			Details:      "250g resealable pouch. Stir into juice, smoothies, or stews.",
			CreatedAt:    on(2024, time.March, 12),
			Featured:     true,
		},
		{
			ID:           2,
			Name:         "Wild Honey Jar",
			Category:     "Health & Wellness",
			CategorySlug: "health-wellness",
			Price:        d("780.00"),
			Image:        "/images/products/wild-honey-jar.jpg",
			Description:  "Raw forest honey harvested from traditional hives in the southern highlands.",
			Details:      "500g glass jar. Unfiltered and unheated.",
			CreatedAt:    on(2024, time.January, 28),
			Featured:     true,
		},
		{
			ID:           3,
			Name:         "Herbal Tea Sampler",
			Category:     "Health & Wellness",
			CategorySlug: "health-wellness",
			Price:        d("320.00"),
			Image:        "/images/products/herbal-tea-sampler.jpg",
			Description:  "Four loose-leaf blends of koseret, tena adam, mint, and hibiscus.",
			CreatedAt:    on(2023, time.November, 5),
		},
		{
			ID:           4,
			Name:         "Shea Body Butter",
			Category:     "Beauty & Personal Care",
			CategorySlug: "beauty-personal-care",
			Price:        d("560.00"),
			Image:        "/images/products/shea-body-butter.jpg",
			Description:  "Whipped shea butter with a touch of frankincense oil.",
			Colors: []Color{
				{ID: "unscented", Name: "Unscented"},
				{ID: "frankincense", Name: "Frankincense"},
			},
			CreatedAt: on(2024, time.February, 19),
			Featured:  true,
		},
		{
			ID:           5,
			Name:         "Black Seed Soap Bar",
			Category:     "Beauty & Personal Care",
			CategorySlug: "beauty-personal-care",
			Price:        d("180.00"),
			Image:        "/images/products/black-seed-soap-bar.jpg",
			Description:  "Cold-process soap with black seed oil and shea, cured for six weeks.",
			CreatedAt:    on(2023, time.September, 14),
		},
		{
			ID:           6,
			Name:         "Rosewater Facial Mist",
			Category:     "Beauty & Personal Care",
			CategorySlug: "beauty-personal-care",
			Price:        d("430.00"),
			Image:        "/images/products/rosewater-facial-mist.jpg",
			Description:  "Steam-distilled rosewater in a fine-mist spray bottle.",
			CreatedAt:    on(2024, time.April, 2),
		},
		{
			ID:           7,
			Name:         "Wireless Earbuds",
			Category:     "Electronics & Gadgets",
			CategorySlug: "electronics-gadgets",
			Price:        d("2850.00"),
			Image:        "/images/products/wireless-earbuds.jpg",
			Description:  "Compact true-wireless earbuds with a pocket charging case.",
			Colors: []Color{
				{ID: "black", Name: "Black"},
				{ID: "white", Name: "White"},
				{ID: "blue", Name: "Blue"},
			},
			Details:   "Bluetooth 5.3, 6h playback plus 18h from the case.",
			CreatedAt: on(2024, time.May, 21),
			Featured:  true,
		},
		{
			ID:           8,
			Name:         "Solar Power Bank",
			Category:     "Electronics & Gadgets",
			CategorySlug: "electronics-gadgets",
			Price:        d("1950.00"),
			Image:        "/images/products/solar-power-bank.jpg",
			Description:  "10,000mAh power bank with a fold-out solar panel for trips off the grid.",
			CreatedAt:    on(2023, time.December, 8),
		},
		{
			ID:           9,
			Name:         "Smart LED Bulb Pair",
			Category:     "Electronics & Gadgets",
			CategorySlug: "electronics-gadgets",
			Price:        d("1100.00"),
			Image:        "/images/products/smart-led-bulb-pair.jpg",
			Description:  "Two dimmable warm-white bulbs controlled from a phone app.",
			CreatedAt:    on(2024, time.June, 16),
		},
		{
			ID:           10,
			Name:         "Handwoven Cotton Throw",
			Category:     "Home & Living",
			CategorySlug: "home-living",
			Price:        d("1650.00"),
			Image:        "/images/products/handwoven-cotton-throw.jpg",
			Description:  "Handloomed gabi-style cotton throw with a traditional tibeb border.",
			Colors: []Color{
				{ID: "natural", Name: "Natural"},
				{ID: "indigo", Name: "Indigo"},
			},
			CreatedAt: on(2024, time.February, 3),
			Featured:  true,
		},
		{
			ID:           11,
			Name:         "Clay Coffee Jebena",
			Category:     "Home & Living",
			CategorySlug: "home-living",
			Price:        d("890.00"),
			Image:        "/images/products/clay-coffee-jebena.jpg",
			Description:  "Hand-thrown clay jebena for the traditional coffee ceremony.",
			Details:      "Holds roughly one litre. Season before first use.",
			CreatedAt:    on(2023, time.October, 27),
		},
		{
			ID:           12,
			Name:         "Woven Basket Set",
			Category:     "Home & Living",
			CategorySlug: "home-living",
			Price:        d("1250.00"),
			Image:        "/images/products/woven-basket-set.jpg",
			Description:  "Three nesting mesob-style baskets woven from dyed grass.",
			CreatedAt:    on(2024, time.July, 9),
		},
	}
}
