package repository

import "strings"

// Textual layouts used when rendering DATE and DATETIME columns in query
// results. Both are ISO 8601.
const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02T15:04:05"
)

// placeholders returns n comma-separated "?" markers for use inside an
// IN (...) clause. n must be at least 1.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// stringArgs converts a string slice into the []any shape that
// QueryContext expects for variadic placeholder arguments.
func stringArgs(vals []string) []any {
	out := make([]any, 0, len(vals))
	for _, v := range vals {
		out = append(out, v)
	}
	return out
}
