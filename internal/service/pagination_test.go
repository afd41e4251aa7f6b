package service

import "testing"

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		def         int
		wantLimit   int
		wantOffset  int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 25, 25, 0, 1, 25},
		{"first page explicit", 1, 25, 25, 25, 0, 1, 25},
		{"second page", 2, 25, 25, 25, 25, 2, 25},
		{"negative page clamps to one", -3, 10, 25, 10, 0, 1, 10},
		{"zero per page falls back to default", 3, 0, 25, 25, 50, 3, 25},
		{"per page capped at max", 1, 500, 25, 100, 0, 1, 100},
		{"custom default", 1, 0, 50, 50, 0, 1, 50},
		{"deep page", 10, 25, 25, 25, 225, 10, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, page, perPage := normalizePaging(tt.page, tt.perPage, tt.def)
			if limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", limit, tt.wantLimit)
			}
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
			if page != tt.wantPage {
				t.Errorf("page = %d, want %d", page, tt.wantPage)
			}
			if perPage != tt.wantPerPage {
				t.Errorf("perPage = %d, want %d", perPage, tt.wantPerPage)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		perPage        int
		total          int
		wantTotalPages int
	}{
		{"empty table", 1, 25, 0, 0},
		{"exact single page", 1, 25, 25, 1},
		{"one item over", 1, 25, 26, 2},
		{"partial last page", 3, 25, 60, 3},
		{"single item", 1, 25, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildPagination(tt.page, tt.perPage, tt.total)
			if p.Page != tt.page {
				t.Errorf("Page = %d, want %d", p.Page, tt.page)
			}
			if p.PerPage != tt.perPage {
				t.Errorf("PerPage = %d, want %d", p.PerPage, tt.perPage)
			}
			if p.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", p.TotalItems, tt.total)
			}
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
		})
	}
}
