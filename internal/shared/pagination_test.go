package shared

import "testing"

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"negative", -3, -1, 1, 10, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"custom limit", 3, 25, 3, 25, 50},
		{"clamped limit", 1, 500, 1, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NormalizePagination(tc.page, tc.limit)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", p.Page, p.Limit, tc.wantPage, tc.wantLimit)
			}
			if p.Offset() != tc.wantOffset {
				t.Errorf("got offset=%d, want %d", p.Offset(), tc.wantOffset)
			}
		})
	}
}

func TestPages(t *testing.T) {
	p := Pagination{Page: 1, Limit: 10}
	cases := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{42, 5},
	}
	for _, tc := range cases {
		if got := p.Pages(tc.total); got != tc.want {
			t.Errorf("Pages(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}
