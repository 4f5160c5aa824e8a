package summary_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/summary"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeSummaryRepository struct {
	totalByTypeFn        func(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error)
	expensesByCategoryFn func(ctx context.Context, userID ulid.ULID) ([]summary.CategoryTotal, error)
}

func (f *fakeSummaryRepository) GetTotalByType(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error) {
	if f.totalByTypeFn != nil {
		return f.totalByTypeFn(ctx, userID, transactionType)
	}
	return 0, nil
}

func (f *fakeSummaryRepository) GetExpensesByCategory(ctx context.Context, userID ulid.ULID) ([]summary.CategoryTotal, error) {
	if f.expensesByCategoryFn != nil {
		return f.expensesByCategoryFn(ctx, userID)
	}
	return nil, nil
}

func TestGetSummary(t *testing.T) {
	// owner records: income 1000, expense 200 Food, expense 50 Food
	service := summary.NewService(&fakeSummaryRepository{
		totalByTypeFn: func(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error) {
			if transactionType == transaction.Income {
				return 1000, nil
			}
			return 250, nil
		},
		expensesByCategoryFn: func(ctx context.Context, userID ulid.ULID) ([]summary.CategoryTotal, error) {
			return []summary.CategoryTotal{
				{Category: transaction.CategoryFood, Total: 250},
			}, nil
		},
	})

	result, err := service.GetSummary(context.Background(), pkg.GenerateULID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Income != 1000 {
		t.Fatalf("expected income 1000, got %v", result.Income)
	}
	if result.Expense != 250 {
		t.Fatalf("expected expense 250, got %v", result.Expense)
	}
	if result.Balance != 750 {
		t.Fatalf("expected balance 750, got %v", result.Balance)
	}

	if len(result.CategoryBreakdown) != 1 {
		t.Fatalf("expected a single breakdown entry, got %d", len(result.CategoryBreakdown))
	}
	entry := result.CategoryBreakdown[0]
	if entry.Category != transaction.CategoryFood || entry.Total != 250 {
		t.Fatalf("unexpected breakdown entry: %+v", entry)
	}
}

func TestGetSummaryEmptyRecordSet(t *testing.T) {
	service := summary.NewService(&fakeSummaryRepository{})

	result, err := service.GetSummary(context.Background(), pkg.GenerateULID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Income != 0 || result.Expense != 0 || result.Balance != 0 {
		t.Fatalf("expected zeros for an empty record set, got %+v", result)
	}
	if result.CategoryBreakdown == nil {
		t.Fatal("breakdown must be an empty slice, not nil")
	}
	if len(result.CategoryBreakdown) != 0 {
		t.Fatalf("expected no breakdown entries, got %d", len(result.CategoryBreakdown))
	}
}

func TestGetSummaryBreakdownSumsToExpenseTotal(t *testing.T) {
	breakdown := []summary.CategoryTotal{
		{Category: transaction.CategoryFood, Total: 120},
		{Category: transaction.CategoryTransport, Total: 60},
		{Category: transaction.CategoryUtilities, Total: 20},
	}

	service := summary.NewService(&fakeSummaryRepository{
		totalByTypeFn: func(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error) {
			if transactionType == transaction.Income {
				return 500, nil
			}
			return 200, nil
		},
		expensesByCategoryFn: func(ctx context.Context, userID ulid.ULID) ([]summary.CategoryTotal, error) {
			return breakdown, nil
		},
	})

	result, err := service.GetSummary(context.Background(), pkg.GenerateULID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum float64
	for _, entry := range result.CategoryBreakdown {
		sum += entry.Total
	}
	if sum != result.Expense {
		t.Fatalf("breakdown sum %v does not match expense total %v", sum, result.Expense)
	}
	if result.Balance != result.Income-result.Expense {
		t.Fatalf("balance %v does not match income - expense", result.Balance)
	}
}

func TestGetSummaryStorageErrorFailsWholeOperation(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeSummaryRepository
	}{
		{
			name: "income scan fails",
			repo: &fakeSummaryRepository{
				totalByTypeFn: func(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error) {
					if transactionType == transaction.Income {
						return 0, errors.New("connection reset")
					}
					return 100, nil
				},
			},
		},
		{
			name: "expense scan fails",
			repo: &fakeSummaryRepository{
				totalByTypeFn: func(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error) {
					if transactionType == transaction.Expense {
						return 0, errors.New("connection reset")
					}
					return 100, nil
				},
			},
		},
		{
			name: "breakdown scan fails",
			repo: &fakeSummaryRepository{
				expensesByCategoryFn: func(ctx context.Context, userID ulid.ULID) ([]summary.CategoryTotal, error) {
					return nil, errors.New("connection reset")
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := summary.NewService(tt.repo).GetSummary(context.Background(), pkg.GenerateULID())
			if err == nil {
				t.Fatal("expected the whole operation to fail")
			}
			if result != nil {
				t.Fatal("no partial summary may be returned on failure")
			}
		})
	}
}
