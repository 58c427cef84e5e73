package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/addisavenue/storefront-backend/pkg/pagination"
)

// SortMode selects the catalog ordering.
type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortNewest    SortMode = "newest"
)

// ParseSortMode maps a raw query value onto a SortMode, falling back to
// featured for anything unrecognized.
func ParseSortMode(raw string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(raw))) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	case SortNewest:
		return SortNewest
	default:
		return SortFeatured
	}
}

// Price range bounds when the caller supplies none.
var (
	DefaultPriceMin = decimal.Zero
	DefaultPriceMax = decimal.NewFromInt(10000)
)

// Query holds one full set of browse parameters. Use the With* setters
// rather than assigning fields directly: every filter change snaps the
// page back to 1 so a narrowed result set never opens on an empty page.
type Query struct {
	Search     string
	Categories []string
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	Sort       SortMode
	Page       int
	PageSize   int
}

// DefaultQuery is the unfiltered first page.
func DefaultQuery() Query {
	return Query{
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
		Sort:     SortFeatured,
		Page:     1,
		PageSize: pagination.DefaultPageSize,
	}
}

func (q *Query) WithSearch(term string) *Query {
	q.Search = strings.TrimSpace(term)
	q.Page = 1
	return q
}

func (q *Query) WithCategories(slugs []string) *Query {
	q.Categories = slugs
	q.Page = 1
	return q
}

func (q *Query) WithPriceRange(min, max decimal.Decimal) *Query {
	q.PriceMin = min
	q.PriceMax = max
	q.Page = 1
	return q
}

func (q *Query) WithSort(mode SortMode) *Query {
	q.Sort = mode
	q.Page = 1
	return q
}

func (q *Query) WithPage(page int) *Query {
	q.Page = pagination.NormalizePage(page)
	return q
}

// Result is one evaluated page of the catalog.
type Result struct {
	Products []Product       `json:"products"`
	Page     pagination.Page `json:"page"`
}

// Run evaluates the query against the catalog: search, then category,
// then price range, then sort, then paginate. The input catalog is never
// mutated; sorting copies the filtered slice first.
func Run(c Catalog, q Query) Result {
	filtered := filter(c, q)
	sorted := sortProducts(filtered, q.Sort)

	params := pagination.Params{Page: q.Page, PageSize: q.PageSize}
	lo, hi := pagination.Bounds(len(sorted), params)

	return Result{
		Products: sorted[lo:hi],
		Page:     pagination.Describe(len(sorted), params),
	}
}

func filter(c Catalog, q Query) []Product {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	cats := categorySet(q.Categories)

	out := make([]Product, 0, len(c))
	for _, p := range c {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if len(cats) > 0 {
			if _, ok := cats[p.CategorySlug]; !ok {
				continue
			}
		}
		if p.Price.LessThan(q.PriceMin) || p.Price.GreaterThan(q.PriceMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func categorySet(slugs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

// sortProducts returns a freshly ordered copy. Every mode is a stable
// sort so equal keys keep their catalog order, which makes price-low and
// price-high exact reversals of each other within distinct prices.
func sortProducts(in []Product, mode SortMode) []Product {
	out := make([]Product, len(in))
	copy(out, in)

	switch mode {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
