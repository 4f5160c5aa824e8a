package infrastructure

import (
	"context"
	"strings"
	"time"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId      string    `gorm:"type:varchar(26);index;not null;column:user_id"`
	Title       string    `gorm:"size:255;not null;column:title"`
	Amount      float64   `gorm:"not null;column:amount"`
	Category    string    `gorm:"size:30;not null;column:category"`
	Date        time.Time `gorm:"not null;column:date"`
	Description string    `gorm:"size:255;column:description"`
	Type        string    `gorm:"size:10;not null;column:type"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`
	UpdatedAt   time.Time `gorm:"not null;column:updated_at"`
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Id:          id,
		UserId:      uid,
		Title:       tdb.Title,
		Amount:      tdb.Amount,
		Category:    transaction.Category(tdb.Category),
		Date:        tdb.Date,
		Description: tdb.Description,
		Type:        transaction.Types(tdb.Type),
		CreatedAt:   tdb.CreatedAt,
		UpdatedAt:   tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:          t.Id.String(),
		UserId:      t.UserId.String(),
		Title:       t.Title,
		Amount:      t.Amount,
		Category:    string(t.Category),
		Date:        t.Date,
		Description: t.Description,
		Type:        string(t.Type),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

// transactionUpdateColumns lists every mutable column. Id and user_id are
// immutable once a transaction is created.
var transactionUpdateColumns = []string{"title", "amount", "category", "date", "description", "type", "updated_at"}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	// Struct-based Updates skips zero-valued fields, which would drop an
	// amount set to 0 or a cleared description. Selecting the columns
	// forces them all to be written.
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ?", tdb.Id).
		Select(transactionUpdateColumns).
		Updates(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID ulid.ULID) error {
	return r.DB.WithContext(ctx).Table("transactions").Where("id = ?", transactionID.String()).Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID ulid.ULID) (*transaction.Transaction, error) {
	tdb, err := query.New[transactionDB](r.DB, "transactions").
		Context(ctx).
		Where("id = ?", transactionID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters *transaction.Filters, sort transaction.SortDirective, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	q := query.New[transactionDB](r.DB, "transactions").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order(sort.OrderBy())

	applyTransactionFilters(q, filters)

	pagination = pkg.NormalizePagination(pagination)
	result, err := query.Paginate(q, query.NewPage(pagination.Page, pagination.Limit), toDomainTransaction)
	if err != nil {
		return nil, 0, err
	}

	return result.Data, result.Total, nil
}

// applyTransactionFilters turns the optional filter value into the query
// predicate. The date range only binds when both bounds are present.
func applyTransactionFilters(q *query.Query[transactionDB], filters *transaction.Filters) {
	if filters == nil {
		return
	}

	if filters.Search != "" {
		q.Where("title ILIKE ?", "%"+escapeLikePattern(filters.Search)+"%")
	}
	if filters.Category != nil {
		q.Where("category = ?", string(*filters.Category))
	}
	if filters.HasDateRange() {
		q.Where("date >= ? AND date <= ?", *filters.StartDate, *filters.EndDate)
	}
}

// escapeLikePattern neutralizes LIKE metacharacters so the search text only
// matches as a literal substring.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
