// This file defines the ScheduleRepo, which answers the schedule-centric
// queries: activity counts inside a window, music productions with their
// performers and planned release, and the upcoming schedule listing.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// ActivityCountRow is one row of the activity-counts query.
type ActivityCountRow struct {
	TaskName      string `json:"taskname"`
	ActivityCount int64  `json:"activity_count"`
}

// MusicProductionRow is one row of the music-productions query. A
// production with several assigned personnel yields one row per pair.
type MusicProductionRow struct {
	ProductionTitle    string `json:"production_title"`
	PerformerName      string `json:"performer_name"`
	PlanReleaseQuarter int    `json:"plan_release_quarter"`
	PlanReleaseYear    int    `json:"plan_release_year"`
}

// UpcomingRow is one row of the upcoming-schedule query.
type UpcomingRow struct {
	StartDT         string `json:"start_dt"`
	EndDT           string `json:"end_dt"`
	TaskName        string `json:"taskname"`
	Location        string `json:"location"`
	ProductionTitle string `json:"production_title"`
	PersonnelName   string `json:"personnel_name"`
}

// ScheduleRepo encapsulates the schedule and release queries.
type ScheduleRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewScheduleRepo constructs a ScheduleRepo with the provided DB handle.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// ActivityCounts groups schedule entries by task name and counts them,
// most frequent first. An entry is counted only when its interval lies
// fully inside [start, end] -- containment, not overlap, which is a
// different policy from the availability queries.
func (r *ScheduleRepo) ActivityCounts(ctx context.Context, start, end time.Time) ([]ActivityCountRow, error) {
	const q = `SELECT taskname, COUNT(*) AS activity_count
	           FROM production_schedule
	           WHERE start_dt >= ? AND end_dt <= ?
	           GROUP BY taskname
	           ORDER BY activity_count DESC`
	rows, err := r.db.QueryContext(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ActivityCountRow
	for rows.Next() {
		var row ActivityCountRow
		if err := rows.Scan(&row.TaskName, &row.ActivityCount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// MusicProductions lists productions of genre "Music" contracted on or
// after startDate, together with every assigned person and the planned
// release quarter/year, ordered by title then performer name.
func (r *ScheduleRepo) MusicProductions(ctx context.Context, startDate time.Time) ([]MusicProductionRow, error) {
	const q = `SELECT pr.title, p.name, g.plan_release_quarter, g.plan_release_year
	           FROM production pr
	           JOIN general_production g ON pr.production_id = g.production_id
	           JOIN personnel_assignment a ON pr.production_id = a.production_id
	           JOIN personnel p ON a.personnel_id = p.personnel_id
	           WHERE g.genre = 'Music' AND pr.contract_hire_date >= ?
	           ORDER BY pr.title, p.name`
	rows, err := r.db.QueryContext(ctx, q, startDate.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MusicProductionRow
	for rows.Next() {
		var row MusicProductionRow
		if err := rows.Scan(&row.ProductionTitle, &row.PerformerName, &row.PlanReleaseQuarter, &row.PlanReleaseYear); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Upcoming lists schedule entries starting at or after the given instant,
// joined to production title and personnel name, earliest first.
func (r *ScheduleRepo) Upcoming(ctx context.Context, from time.Time) ([]UpcomingRow, error) {
	const q = `SELECT s.start_dt, s.end_dt, s.taskname, s.location, pr.title, p.name
	           FROM production_schedule s
	           JOIN production pr ON s.production_id = pr.production_id
	           JOIN personnel p ON s.personnel_id = p.personnel_id
	           WHERE s.start_dt >= ?
	           ORDER BY s.start_dt`
	rows, err := r.db.QueryContext(ctx, q, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UpcomingRow
	for rows.Next() {
		var row UpcomingRow
		var startDT, endDT time.Time
		if err := rows.Scan(&startDT, &endDT, &row.TaskName, &row.Location, &row.ProductionTitle, &row.PersonnelName); err != nil {
			return nil, err
		}
		row.StartDT = startDT.Format(datetimeLayout)
		row.EndDT = endDT.Format(datetimeLayout)
		out = append(out, row)
	}
	return out, rows.Err()
}
