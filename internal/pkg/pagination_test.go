package pkg_test

import (
	"testing"

	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"
)

func TestNewPaginatedResponsePages(t *testing.T) {
	tests := []struct {
		name      string
		dataLen   int
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{name: "exact fit", dataLen: 10, page: 1, limit: 10, total: 20, wantPages: 2},
		{name: "partial last page", dataLen: 5, page: 2, limit: 10, total: 15, wantPages: 2},
		{name: "single record", dataLen: 1, page: 1, limit: 10, total: 1, wantPages: 1},
		{name: "empty set has zero pages", dataLen: 0, page: 1, limit: 10, total: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.dataLen)
			response := pkg.NewPaginatedResponse(data, tt.page, tt.limit, tt.total)

			if response.Pages != tt.wantPages {
				t.Fatalf("expected %d pages, got %d", tt.wantPages, response.Pages)
			}
			if response.Count != tt.dataLen {
				t.Fatalf("expected count %d, got %d", tt.dataLen, response.Count)
			}
			if response.Total != tt.total {
				t.Fatalf("expected total %d, got %d", tt.total, response.Total)
			}
		})
	}
}

func TestNewPaginatedResponseNilData(t *testing.T) {
	response := pkg.NewPaginatedResponse[int](nil, 1, 10, 0)
	if response.Data == nil {
		t.Fatal("data must serialize as an empty array, not null")
	}
}

func TestPaginationParamsOffset(t *testing.T) {
	params := &pkg.PaginationParams{Page: 3, Limit: 10}
	if params.Offset() != 20 {
		t.Fatalf("expected offset 20, got %d", params.Offset())
	}
}

func TestPaginationParamsNormalize(t *testing.T) {
	params := &pkg.PaginationParams{Page: 0, Limit: 0}
	params.Normalize()
	if params.Page != 1 || params.Limit != 10 {
		t.Fatalf("expected defaults 1/10, got %d/%d", params.Page, params.Limit)
	}

	params = &pkg.PaginationParams{Page: 1, Limit: 5000}
	params.Normalize()
	if params.Limit != 100 {
		t.Fatalf("expected limit cap 100, got %d", params.Limit)
	}

	if normalized := pkg.NormalizePagination(nil); normalized.Page != 1 || normalized.Limit != 10 {
		t.Fatalf("expected defaults for nil params, got %+v", normalized)
	}
}
