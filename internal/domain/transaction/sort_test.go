package transaction_test

import (
	"testing"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    transaction.SortDirective
		wantErr bool
	}{
		{name: "empty defaults to newest first", raw: "", want: transaction.SortDirective{Field: "date", Descending: true}},
		{name: "ascending field", raw: "amount", want: transaction.SortDirective{Field: "amount"}},
		{name: "descending field", raw: "-amount", want: transaction.SortDirective{Field: "amount", Descending: true}},
		{name: "title", raw: "title", want: transaction.SortDirective{Field: "title"}},
		{name: "category descending", raw: "-category", want: transaction.SortDirective{Field: "category", Descending: true}},
		{name: "mixed case accepted", raw: "-Date", want: transaction.SortDirective{Field: "date", Descending: true}},
		{name: "unknown field rejected", raw: "balance", wantErr: true},
		{name: "column injection rejected", raw: "date; DROP TABLE transactions", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transaction.ParseSort(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestSortDirectiveOrderBy(t *testing.T) {
	descending := transaction.SortDirective{Field: "date", Descending: true}
	if descending.OrderBy() != "date DESC, created_at DESC, id" {
		t.Fatalf("unexpected order clause: %q", descending.OrderBy())
	}

	ascending := transaction.SortDirective{Field: "amount"}
	if ascending.OrderBy() != "amount ASC, created_at DESC, id" {
		t.Fatalf("unexpected order clause: %q", ascending.OrderBy())
	}
}
