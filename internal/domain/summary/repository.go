package summary

import (
	"context"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	GetTotalByType(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error)
	GetExpensesByCategory(ctx context.Context, userID ulid.ULID) ([]CategoryTotal, error)
}
