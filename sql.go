package authreq

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ReadSQL runs query and maps the result columns to records the same way a
// sheet header is mapped.
func ReadSQL(ctx context.Context, db *sql.DB, query string, opts Options) (*Result, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying attendances: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var data [][]string
	for rows.Next() {
		vals := make([]any, len(header))
		ptrs := make([]any, len(header))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning attendance: %w", err)
		}
		row := make([]string, len(header))
		for i, v := range vals {
			row[i] = sqlString(v)
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ParseRows(header, data, opts)
}

func sqlString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}
