// Package repository contains data access logic separated from HTTP handlers.
// This file defines the PersonnelRepo, which answers the roster-oriented
// queries: filtering personnel by role type, availability inside a time
// window, and the top/bottom actor rankings by assignment count.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"time"         // time carries the availability window boundaries
)

// PersonnelSummary is the compact personnel projection shared by the
// by-type and availability queries.
type PersonnelSummary struct {
	PersonnelID   uint64 `json:"personnel_id"`
	Name          string `json:"name"`
	PersonnelType string `json:"personnel_type"`
}

// ActorProjectsRow is one row of the top-actors ranking.
type ActorProjectsRow struct {
	Name          string `json:"name"`
	TotalProjects int64  `json:"total_projects"`
}

// ActorJobsRow is one row of the least-jobs ranking. TotalJobs is zero for
// actors with no assignments at all.
type ActorJobsRow struct {
	Name      string `json:"name"`
	TotalJobs int64  `json:"total_jobs"`
}

// PersonnelRepo encapsulates the personnel-centric catalog queries. It
// depends on a sql.DB connection which should be configured elsewhere.
type PersonnelRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewPersonnelRepo constructs a PersonnelRepo with the provided DB handle.
// This function allows dependency injection of the database in tests and
// at startup.
func NewPersonnelRepo(db *sql.DB) *PersonnelRepo {
	return &PersonnelRepo{db: db}
}

// ListByType returns personnel whose personnel_type is in the given set,
// capped at limit rows. Defaults for both parameters are applied by the
// handler; the repository expects a non-empty type list and a limit >= 1.
func (r *PersonnelRepo) ListByType(ctx context.Context, types []string, limit int) ([]PersonnelSummary, error) {
	q := `SELECT personnel_id, name, personnel_type
	      FROM personnel
	      WHERE personnel_type IN (` + placeholders(len(types)) + `)
	      LIMIT ?`
	args := append(stringArgs(types), limit)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PersonnelSummary, 0, limit)
	for rows.Next() {
		var p PersonnelSummary
		if err := rows.Scan(&p.PersonnelID, &p.Name, &p.PersonnelType); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FindAvailable returns personnel of the given types that have no schedule
// entry overlapping [start, end). The overlap test is the half-open
// interval intersection (sched.start < end AND sched.end > start): an entry
// ending exactly at start, or starting exactly at end, does not conflict.
func (r *PersonnelRepo) FindAvailable(ctx context.Context, start, end time.Time, types []string) ([]PersonnelSummary, error) {
	q := `SELECT personnel_id, name, personnel_type
	      FROM personnel
	      WHERE personnel_type IN (` + placeholders(len(types)) + `)
	        AND personnel_id NOT IN (
	              SELECT DISTINCT personnel_id
	              FROM production_schedule
	              WHERE start_dt < ? AND end_dt > ?)`
	args := append(stringArgs(types), end, start)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PersonnelSummary
	for rows.Next() {
		var p PersonnelSummary
		if err := rows.Scan(&p.PersonnelID, &p.Name, &p.PersonnelType); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// TopActorsByProjects ranks actors and actresses by the number of
// productions they are assigned to, highest first, and returns the first n
// rows. The inner join deliberately excludes actors with zero assignments.
func (r *PersonnelRepo) TopActorsByProjects(ctx context.Context, n int) ([]ActorProjectsRow, error) {
	const q = `SELECT p.name, COUNT(a.production_id) AS total_projects
	           FROM personnel p
	           JOIN personnel_assignment a ON p.personnel_id = a.personnel_id
	           WHERE p.personnel_type IN ('Actor', 'Actress')
	           GROUP BY p.name
	           ORDER BY total_projects DESC
	           LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActorProjectsRow, 0, n)
	for rows.Next() {
		var a ActorProjectsRow
		if err := rows.Scan(&a.Name, &a.TotalProjects); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// LeastActorsByJobs ranks the same actor/actress population by assignment
// count ascending. Unlike TopActorsByProjects it uses a left join so that
// actors with no assignments appear with a count of zero.
func (r *PersonnelRepo) LeastActorsByJobs(ctx context.Context, n int) ([]ActorJobsRow, error) {
	const q = `SELECT p.name, COUNT(a.production_id) AS total_jobs
	           FROM personnel p
	           LEFT JOIN personnel_assignment a ON p.personnel_id = a.personnel_id
	           WHERE p.personnel_type IN ('Actor', 'Actress')
	           GROUP BY p.name
	           ORDER BY total_jobs ASC
	           LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActorJobsRow, 0, n)
	for rows.Next() {
		var a ActorJobsRow
		if err := rows.Scan(&a.Name, &a.TotalJobs); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
