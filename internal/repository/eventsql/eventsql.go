// Package eventsql holds the column mapping shared by the SQL event repositories.
package eventsql

import (
	"fmt"
	"strings"

	"eventsapi/internal/domain"
)

// Columns is the select list shared by the event repositories, in scan order.
const Columns = `id, name, description, begin_enrollment_date_time, close_enrollment_date_time,
	begin_event_date_time, end_event_date_time, location, base_price, max_price,
	limit_of_enrollment, offline, free, event_status`

// sortColumns maps sortable event attributes to their column.
var sortColumns = map[string]string{
	"id":                      "id",
	"name":                    "name",
	"beginEnrollmentDateTime": "begin_enrollment_date_time",
	"closeEnrollmentDateTime": "close_enrollment_date_time",
	"beginEventDateTime":      "begin_event_date_time",
	"endEventDateTime":        "end_event_date_time",
	"basePrice":               "base_price",
	"maxPrice":                "max_price",
	"limitOfEnrollment":       "limit_of_enrollment",
}

// Scanner is implemented by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// OrderBy builds an ORDER BY clause for sort. The id column is appended as a tiebreaker
// so that paging is stable.
func OrderBy(sort []domain.SortField) (string, error) {
	if len(sort) == 0 {
		sort = domain.DefaultSort
	}
	parts := make([]string, 0, len(sort)+1)
	hasID := false
	for _, f := range sort {
		col, ok := sortColumns[f.Field]
		if !ok {
			return "", fmt.Errorf("%w: cannot sort by %q", domain.ErrInvalidInput, f.Field)
		}
		if col == "id" {
			hasID = true
		}
		dir := "ASC"
		if f.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	if !hasID {
		parts = append(parts, "id ASC")
	}
	return "ORDER BY " + strings.Join(parts, ", "), nil
}
