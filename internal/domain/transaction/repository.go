package transaction

import (
	"context"

	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID) error
	GetByID(ctx context.Context, transactionID ulid.ULID) (*Transaction, error)
	GetAll(ctx context.Context, userID ulid.ULID, filters *Filters, sort SortDirective, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
}
