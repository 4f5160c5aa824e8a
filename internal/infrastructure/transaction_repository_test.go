package infrastructure

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type capturedStatement struct {
	SQL  string
	Vars []interface{}
}

// newDryRunRepository builds a repository over a dry-run connection and hooks
// the update pipeline so tests can inspect the generated statement.
func newDryRunRepository(t *testing.T) (*TransactionRepository, *capturedStatement) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("opening dry-run connection: %v", err)
	}

	captured := &capturedStatement{}
	err = db.Callback().Update().After("gorm:update").Register("capture_update_statement", func(tx *gorm.DB) {
		captured.SQL = tx.Statement.SQL.String()
		captured.Vars = tx.Statement.Vars
	})
	if err != nil {
		t.Fatalf("registering capture callback: %v", err)
	}

	return &TransactionRepository{DB: db}, captured
}

func TestUpdateWritesZeroValuedColumns(t *testing.T) {
	repo, captured := newDryRunRepository(t)

	refunded := &transaction.Transaction{
		Id:          pkg.GenerateULID(),
		UserId:      pkg.GenerateULID(),
		Title:       "Refunded order",
		Amount:      0,
		Category:    transaction.CategoryShopping,
		Date:        time.Now(),
		Description: "",
		Type:        transaction.Expense,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Update(context.Background(), refunded); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	for _, column := range []string{"title", "amount", "category", "description", "type", "updated_at"} {
		if !strings.Contains(captured.SQL, column) {
			t.Errorf("update statement does not set %q: %s", column, captured.SQL)
		}
	}
	if strings.Contains(captured.SQL, "user_id") {
		t.Errorf("update statement must not touch user_id: %s", captured.SQL)
	}

	zeroAmountBound := false
	for _, v := range captured.Vars {
		if amount, ok := v.(float64); ok && amount == 0 {
			zeroAmountBound = true
		}
	}
	if !zeroAmountBound {
		t.Errorf("amount 0 is not bound in the update statement, vars: %v", captured.Vars)
	}
}

func TestEscapeLikePattern(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "coffee", "coffee"},
		{"percent escaped", "50% off", `50\% off`},
		{"underscore escaped", "pay_roll", `pay\_roll`},
		{"backslash escaped", `C:\temp`, `C:\\temp`},
		{"all metacharacters", `\%_`, `\\\%\_`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := escapeLikePattern(tc.input)
			if got != tc.want {
				t.Errorf("escapeLikePattern(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
