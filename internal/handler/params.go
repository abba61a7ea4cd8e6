// This file holds the query-parameter helpers shared by the read handlers:
// datetime/date parsing with the accepted ISO layouts, bounded integer
// parsing with defaults, and repeated-parameter lists with fallbacks.
package handler

import (
	"errors"  // errors provides sentinel construction for parse failures
	"strconv" // strconv converts string parameters to numeric types
	"time"    // time holds the parsed boundary values

	"github.com/labstack/echo/v4" // echo defines the request context type
)

// datetimeLayouts are tried in order when parsing a datetime parameter.
// The first two are what the bundled clients send; the others are accepted
// for convenience.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// errMissingParam marks a required parameter that was not supplied.
var errMissingParam = errors.New("missing required parameter")

// parseDateTime parses a required datetime query parameter. An absent or
// malformed value returns an error the caller turns into a 400.
func parseDateTime(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, errMissingParam
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid datetime: " + raw)
}

// parseDate parses a required YYYY-MM-DD query parameter.
func parseDate(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, errMissingParam
	}
	return time.Parse("2006-01-02", raw)
}

// parseLimit parses an optional positive integer parameter, falling back to
// def when absent and flooring the result at 1. A non-numeric value is
// reported as an error.
func parseLimit(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid integer: " + raw)
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}

// typeList collects the repeated occurrences of a query parameter
// (?name=a&name=b) and falls back to def when none were supplied.
func typeList(c echo.Context, name string, def []string) []string {
	vals := c.QueryParams()[name]
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
