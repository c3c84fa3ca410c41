package helpers

import (
	"database/sql"
	"time"
)

// GetNullDate converts an optional date to sql.NullTime.
func GetNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: DateOf(*t), Valid: true}
}
