package summary

import "github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"

type CategoryTotal struct {
	Category transaction.Category `json:"category"`
	Total    float64              `json:"total"`
}

// Summary is derived from the owner's entire record set, independent of any
// list pagination or filters. CategoryBreakdown covers expense-typed records
// only, largest total first.
type Summary struct {
	Income            float64         `json:"income"`
	Expense           float64         `json:"expense"`
	Balance           float64         `json:"balance"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
}
