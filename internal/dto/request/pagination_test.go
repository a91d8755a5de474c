package request

import "testing"

func TestNewPaginatedRequestClamping(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"defaults applied", 0, 0, 1, 10, 0},
		{"negative page", -3, 20, 1, 20, 0},
		{"per_page capped", 2, 500, 2, 100, 100},
		{"in range untouched", 3, 25, 3, 25, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaginatedRequest(tc.page, tc.perPage)
			if p.Page != tc.wantPage || p.PerPage != tc.wantPerPage {
				t.Fatalf("got page=%d per_page=%d, want page=%d per_page=%d",
					p.Page, p.PerPage, tc.wantPage, tc.wantPerPage)
			}
			if got := p.Offset(); got != tc.wantOffset {
				t.Fatalf("Offset() = %d, want %d", got, tc.wantOffset)
			}
			if got := p.Limit(); got != tc.wantPerPage {
				t.Fatalf("Limit() = %d, want %d", got, tc.wantPerPage)
			}
		})
	}
}
