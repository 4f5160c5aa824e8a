package summary

import (
	"context"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{Repository: repository}
}

// GetSummary runs three independent scans over the owner's records: income
// total, expense total and the per-category expense totals. Empty groups sum
// to zero. The scans are not a single snapshot; concurrent writes may be
// observed by some scans and not others.
func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID) (*Summary, error) {
	income, err := s.Repository.GetTotalByType(ctx, userID, transaction.Income)
	if err != nil {
		return nil, err
	}

	expense, err := s.Repository.GetTotalByType(ctx, userID, transaction.Expense)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.Repository.GetExpensesByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if breakdown == nil {
		breakdown = []CategoryTotal{}
	}

	return &Summary{
		Income:            income,
		Expense:           expense,
		Balance:           income - expense,
		CategoryBreakdown: breakdown,
	}, nil
}
