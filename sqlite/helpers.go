package sqlite

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/ncruces/go-sqlite3"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// parseNullRFC3339 is parseRFC3339 for nullable columns.
func parseNullRFC3339(value sql.NullString, fieldName string) (*time.Time, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	t, err := parseRFC3339(value.String, fieldName)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatTime formats t as an RFC3339 UTC timestamp.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// formatNullTime formats an optional timestamp for a nullable column.
func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on
// column, given as "table.column".
func isUniqueViolation(err error, column string) bool {
	return errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) && strings.Contains(err.Error(), column)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
