package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 6
	// MaxPageSize caps how many rows any page can request.
	MaxPageSize = 48
)

// Params holds page-number pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Page describes the metadata returned alongside a page of results.
type Page struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NormalizePageSize enforces the configured default and maximum sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// NormalizePage clamps the requested page number to at least 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// TotalPages computes the ceiling page count for the given totals.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Bounds returns the [start, end) slice offsets for the requested page.
// An out-of-range page yields an empty interval.
func Bounds(totalItems int, params Params) (int, int) {
	size := NormalizePageSize(params.PageSize)
	page := NormalizePage(params.Page)

	start := (page - 1) * size
	if start >= totalItems {
		return 0, 0
	}
	end := start + size
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// Describe builds the Page metadata for the given totals.
func Describe(totalItems int, params Params) Page {
	size := NormalizePageSize(params.PageSize)
	return Page{
		Page:       NormalizePage(params.Page),
		PageSize:   size,
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, size),
	}
}
