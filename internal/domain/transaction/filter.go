package transaction

import "time"

// Filters are the optional list constraints. Absent fields mean no constraint;
// active constraints are combined with AND on top of the implicit owner scope.
type Filters struct {
	Search    string
	Category  *Category
	StartDate *time.Time
	EndDate   *time.Time
}

// Normalize drops a start or end date supplied without its pair. The date
// range only applies when both bounds are present; a lone bound is ignored
// rather than treated as an open-ended range.
func (f *Filters) Normalize() {
	if f == nil {
		return
	}
	if f.StartDate == nil || f.EndDate == nil {
		f.StartDate = nil
		f.EndDate = nil
	}
}

func (f *Filters) HasDateRange() bool {
	return f != nil && f.StartDate != nil && f.EndDate != nil
}
