package pagination

import "testing"

func TestNormalizePageSize(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, DefaultPageSize},
		{-3, DefaultPageSize},
		{6, 6},
		{1000, MaxPageSize},
	}
	for _, tc := range cases {
		if got := NormalizePageSize(tc.in); got != tc.want {
			t.Fatalf("NormalizePageSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		items, size, want int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{4, 2, 2},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.items, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.items, tc.size, got, tc.want)
		}
	}
}

func TestBounds(t *testing.T) {
	t.Run("firstPage", func(t *testing.T) {
		start, end := Bounds(10, Params{Page: 1, PageSize: 6})
		if start != 0 || end != 6 {
			t.Fatalf("unexpected bounds [%d, %d)", start, end)
		}
	})

	t.Run("lastPartialPage", func(t *testing.T) {
		start, end := Bounds(10, Params{Page: 2, PageSize: 6})
		if start != 6 || end != 10 {
			t.Fatalf("unexpected bounds [%d, %d)", start, end)
		}
	})

	t.Run("outOfRange", func(t *testing.T) {
		start, end := Bounds(10, Params{Page: 5, PageSize: 6})
		if start != 0 || end != 0 {
			t.Fatalf("expected empty interval, got [%d, %d)", start, end)
		}
	})

	t.Run("pageClampedToOne", func(t *testing.T) {
		start, end := Bounds(10, Params{Page: -1, PageSize: 6})
		if start != 0 || end != 6 {
			t.Fatalf("unexpected bounds [%d, %d)", start, end)
		}
	})
}

func TestDescribe(t *testing.T) {
	page := Describe(13, Params{Page: 2, PageSize: 6})
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", page.TotalPages)
	}
	if page.Page != 2 || page.PageSize != 6 || page.TotalItems != 13 {
		t.Fatalf("unexpected page metadata %+v", page)
	}
}
