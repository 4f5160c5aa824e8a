package transaction

import (
	"fmt"
	"strings"

	appErrors "github.com/yuvarajsadam/ExpenseTracker/internal/errors"
)

var sortableFields = map[string]string{
	"date":     "date",
	"amount":   "amount",
	"title":    "title",
	"category": "category",
}

// SortDirective names one sortable field and a direction.
type SortDirective struct {
	Field      string
	Descending bool
}

func DefaultSort() SortDirective {
	return SortDirective{Field: "date", Descending: true}
}

// ParseSort accepts "field" for ascending and "-field" for descending. An
// empty directive falls back to newest-first; an unrecognized field is
// rejected before it can reach the store.
func ParseSort(raw string) (SortDirective, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSort(), nil
	}

	descending := strings.HasPrefix(raw, "-")
	field := strings.ToLower(strings.TrimPrefix(raw, "-"))

	column, ok := sortableFields[field]
	if !ok {
		return SortDirective{}, appErrors.NewValidationError("sort",
			fmt.Sprintf("must be one of: date, amount, title, category (got %q)", field))
	}

	return SortDirective{Field: column, Descending: descending}, nil
}

// OrderBy renders the directive as an ORDER BY clause. The created_at and id
// tiebreaks keep ties stable across repeated calls.
func (s SortDirective) OrderBy() string {
	direction := "ASC"
	if s.Descending {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s, created_at DESC, id", s.Field, direction)
}
