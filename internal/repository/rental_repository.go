// This file defines the RentalRepo, which answers the venue queries:
// availability of rental places inside a time window and the list of
// places occupied on a given calendar date.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// PlaceRow is one row of the available-places query.
type PlaceRow struct {
	PlaceID  uint64 `json:"place_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// PlaceUsageRow is one row of the in-use-on-date query. Timestamps are
// rendered as ISO 8601 datetime strings.
type PlaceUsageRow struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// RentalRepo encapsulates the rental place queries.
type RentalRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewRentalRepo constructs a RentalRepo with the provided DB handle.
func NewRentalRepo(db *sql.DB) *RentalRepo {
	return &RentalRepo{db: db}
}

// AvailablePlaces returns rental places with no usage overlapping
// [start, end). Same half-open overlap test as the personnel availability
// query: a usage ending exactly at start, or starting exactly at end, does
// not conflict.
func (r *RentalRepo) AvailablePlaces(ctx context.Context, start, end time.Time) ([]PlaceRow, error) {
	const q = `SELECT place_id, name, address, type, capacity
	           FROM rental_place
	           WHERE place_id NOT IN (
	                 SELECT DISTINCT place_id
	                 FROM rental_usage
	                 WHERE start_time < ? AND end_time > ?)`
	rows, err := r.db.QueryContext(ctx, q, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlaceRow
	for rows.Next() {
		var p PlaceRow
		if err := rows.Scan(&p.PlaceID, &p.Name, &p.Address, &p.Type, &p.Capacity); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// InUseOn returns the distinct (place, usage interval) pairs whose usage
// touches the target calendar date. Only the date component of the usage
// timestamps participates in the comparison; time-of-day is ignored.
func (r *RentalRepo) InUseOn(ctx context.Context, target time.Time) ([]PlaceUsageRow, error) {
	const q = `SELECT DISTINCT rp.name, rp.address, ru.start_time, ru.end_time
	           FROM rental_place rp
	           JOIN rental_usage ru ON rp.place_id = ru.place_id
	           WHERE DATE(ru.start_time) <= ? AND DATE(ru.end_time) >= ?`
	day := target.Format(dateLayout)
	rows, err := r.db.QueryContext(ctx, q, day, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlaceUsageRow
	for rows.Next() {
		var row PlaceUsageRow
		var startTime, endTime time.Time
		if err := rows.Scan(&row.Name, &row.Address, &startTime, &endTime); err != nil {
			return nil, err
		}
		row.StartTime = startTime.Format(datetimeLayout)
		row.EndTime = endTime.Format(datetimeLayout)
		out = append(out, row)
	}
	return out, rows.Err()
}
