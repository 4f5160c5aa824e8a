package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	appErrors "github.com/yuvarajsadam/ExpenseTracker/internal/errors"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) CreateTransaction(ctx context.Context, transaction *Transaction) error {
	if err := validateTransaction(transaction); err != nil {
		return err
	}

	if transaction.Date.IsZero() {
		transaction.Date = time.Now()
	}

	TransactionCreateStruct(transaction)
	if err := s.Repository.Create(ctx, transaction); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// GetAllTransactions lists the caller's transactions under the supplied
// filters, sort directive and pagination. The returned total counts every
// record matching the predicate regardless of the requested page.
func (s *Service) GetAllTransactions(ctx context.Context, userID ulid.ULID, filters *Filters, sort SortDirective, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	filters.Normalize()

	transactions, total, err := s.Repository.GetAll(ctx, userID, filters, sort, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID ulid.ULID, userID ulid.ULID) (*Transaction, error) {
	return s.getOwned(ctx, transactionID, userID)
}

func (s *Service) UpdateTransaction(ctx context.Context, transactionID ulid.ULID, userID ulid.ULID, upd *Update) (*Transaction, error) {
	stored, err := s.getOwned(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		stored.Title = *upd.Title
	}
	if upd.Amount != nil {
		stored.Amount = *upd.Amount
	}
	if upd.Category != nil {
		stored.Category = *upd.Category
	}
	if upd.Date != nil {
		stored.Date = *upd.Date
	}
	if upd.Description != nil {
		stored.Description = *upd.Description
	}
	if upd.Type != nil {
		stored.Type = *upd.Type
	}

	if err := validateTransaction(stored); err != nil {
		return nil, err
	}

	stored.UpdatedAt = pkg.SetTimestamps()
	if err := s.Repository.Update(ctx, stored); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return stored, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID ulid.ULID, userID ulid.ULID) error {
	if _, err := s.getOwned(ctx, transactionID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, transactionID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// getOwned checks existence before ownership: an absent id is always
// NOT_FOUND and a record held by another user is always RESOURCE_NOT_OWNED.
func (s *Service) getOwned(ctx context.Context, transactionID ulid.ULID, userID ulid.ULID) (*Transaction, error) {
	stored, err := s.Repository.GetByID(ctx, transactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrTransactionNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if stored.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return stored, nil
}

func validateTransaction(t *Transaction) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return appErrors.NewValidationError("title", "is required")
	}
	if t.Amount < 0 {
		return appErrors.NewValidationError("amount", "must not be negative")
	}
	if !t.Category.Valid() {
		return appErrors.NewValidationError("category", "is not a recognized category")
	}
	if !t.Type.Valid() {
		return appErrors.NewValidationError("type", "must be income or expense")
	}
	return nil
}

func TransactionCreateStruct(transaction *Transaction) {
	transaction.Id = pkg.GenerateULID()
	now := pkg.SetTimestamps()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
}
