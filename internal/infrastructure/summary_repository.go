package infrastructure

import (
	"context"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/summary"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	appErrors "github.com/yuvarajsadam/ExpenseTracker/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type SummaryRepository struct {
	DB *gorm.DB
}

var _ summary.Repository = (*SummaryRepository)(nil)

func (r *SummaryRepository) GetTotalByType(ctx context.Context, userID ulid.ULID, transactionType transaction.Types) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("user_id = ? AND type = ?", userID.String(), string(transactionType)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *SummaryRepository) GetExpensesByCategory(ctx context.Context, userID ulid.ULID) ([]summary.CategoryTotal, error) {
	type categoryRow struct {
		Category string  `gorm:"column:category"`
		Total    float64 `gorm:"column:total"`
	}

	var rows []categoryRow
	err := r.DB.WithContext(ctx).Table("transactions").
		Select("category, SUM(amount) as total").
		Where("user_id = ? AND type = ?", userID.String(), string(transaction.Expense)).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	breakdown := make([]summary.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, summary.CategoryTotal{
			Category: transaction.Category(row.Category),
			Total:    row.Total,
		})
	}

	return breakdown, nil
}
