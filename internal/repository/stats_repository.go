// This file defines the StatsRepo, which covers the cross-entity listing
// and aggregation queries: the searchable personnel/assignment overview,
// contract-range overlap, the production expense summary, and the
// performer/partner lookups.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// AssignmentRow is one row of the personnel/assignment overview. Personnel
// without any assignment still appear, with ProductionTitle and RoleTitle
// rendered as the literal "N/A".
type AssignmentRow struct {
	PersonnelName   string `json:"personnel_name"`
	PersonnelType   string `json:"personnel_type"`
	ProductionTitle string `json:"production_title"`
	RoleTitle       string `json:"role_title"`
}

// ContractRow is one row of the contract-overlap query. Dates are rendered
// as ISO 8601 date strings.
type ContractRow struct {
	PersonnelID            uint64 `json:"personnel_id"`
	Name                   string `json:"name"`
	PersonnelType          string `json:"personnel_type"`
	ContractHireDate       string `json:"contract_hire_date"`
	ContractExpirationDate string `json:"contract_expiration_date"`
}

// ExpenseSummaryRow is one row of the per-production expense totals.
type ExpenseSummaryRow struct {
	ProductionTitle string  `json:"production_title"`
	TotalExpense    float64 `json:"total_expense"`
}

// PerformerRow is one row of the performer listing.
type PerformerRow struct {
	PerformerName   string `json:"performer_name"`
	PerformanceType string `json:"performance_type"`
	Agency          string `json:"agency"`
}

// PartnerRow is one row of the partners-for-performer lookup.
type PartnerRow struct {
	PartnerName   string `json:"partner_name"`
	ServiceType   string `json:"service_type"`
	PersonnelName string `json:"personnel_name"`
}

// StatsRepo encapsulates the listing and aggregation queries that span
// personnel, productions, performers and partners.
type StatsRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewStatsRepo constructs a StatsRepo with the provided DB handle.
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// ListAssignments returns every personnel row joined (left) to its
// assignments and their productions, ordered by personnel name. When either
// search term is given the result keeps rows matching the personnel name OR
// the production title; the two filters widen each other rather than
// narrowing (deliberate: a single search box feeds both).
func (r *StatsRepo) ListAssignments(ctx context.Context, nameSearch, titleSearch string) ([]AssignmentRow, error) {
	where := []string{}
	args := []any{}
	if nameSearch != "" {
		where = append(where, "p.name LIKE ?")
		args = append(args, "%"+nameSearch+"%")
	}
	if titleSearch != "" {
		where = append(where, "pr.title LIKE ?")
		args = append(args, "%"+titleSearch+"%")
	}

	q := `SELECT p.name, p.personnel_type, pr.title, a.role_title
	      FROM personnel p
	      LEFT JOIN personnel_assignment a ON p.personnel_id = a.personnel_id
	      LEFT JOIN production pr ON a.production_id = pr.production_id`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " OR ")
	}
	q += " ORDER BY p.name"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AssignmentRow
	for rows.Next() {
		var row AssignmentRow
		var title, role sql.NullString
		if err := rows.Scan(&row.PersonnelName, &row.PersonnelType, &title, &role); err != nil {
			return nil, err
		}
		// Outer-join placeholders: unassigned personnel show "N/A".
		row.ProductionTitle = "N/A"
		if title.Valid {
			row.ProductionTitle = title.String
		}
		row.RoleTitle = "N/A"
		if role.Valid {
			row.RoleTitle = role.String
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ContractsOverlapping returns personnel whose [hire, expiration] contract
// interval overlaps the closed query interval [start, end]: a contract
// ending exactly on start, or beginning exactly on end, still counts. The
// optional name filter is AND-combined with the date condition.
func (r *StatsRepo) ContractsOverlapping(ctx context.Context, start, end time.Time, nameSearch string) ([]ContractRow, error) {
	q := `SELECT personnel_id, name, personnel_type, contract_hire_date, contract_expiration_date
	      FROM personnel
	      WHERE contract_hire_date <= ? AND contract_expiration_date >= ?`
	args := []any{end.Format(dateLayout), start.Format(dateLayout)}
	if nameSearch != "" {
		q += " AND name LIKE ?"
		args = append(args, "%"+nameSearch+"%")
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ContractRow
	for rows.Next() {
		var row ContractRow
		var hire, exp time.Time
		if err := rows.Scan(&row.PersonnelID, &row.Name, &row.PersonnelType, &hire, &exp); err != nil {
			return nil, err
		}
		row.ContractHireDate = hire.Format(dateLayout)
		row.ContractExpirationDate = exp.Format(dateLayout)
		out = append(out, row)
	}
	return out, rows.Err()
}

// ExpenseSummary sums expenses per production title, highest total first.
// The left join keeps productions with no expenses; their NULL sum is
// coalesced to 0 so they appear with a total of 0.0 instead of vanishing.
func (r *StatsRepo) ExpenseSummary(ctx context.Context) ([]ExpenseSummaryRow, error) {
	const q = `SELECT pr.title, COALESCE(SUM(e.amount), 0) AS total_expense
	           FROM production pr
	           LEFT JOIN production_expense e ON pr.production_id = e.production_id
	           GROUP BY pr.title
	           ORDER BY total_expense DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExpenseSummaryRow
	for rows.Next() {
		var row ExpenseSummaryRow
		if err := rows.Scan(&row.ProductionTitle, &row.TotalExpense); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListPerformers returns every personnel row that owns a performer
// sub-record, ordered by name. The inner join excludes non-performers.
func (r *StatsRepo) ListPerformers(ctx context.Context) ([]PerformerRow, error) {
	const q = `SELECT p.name, f.performance_type, f.agency
	           FROM personnel p
	           JOIN performer f ON p.personnel_id = f.personnel_id
	           ORDER BY p.name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PerformerRow
	for rows.Next() {
		var row PerformerRow
		if err := rows.Scan(&row.PerformerName, &row.PerformanceType, &row.Agency); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// PartnersForPerformer resolves a performer by exact name and lists all
// partner contracts referencing that person, ordered by partner name. A
// name that does not exist and a name that exists without a performer
// sub-record both yield ErrPerformerNotFound.
func (r *StatsRepo) PartnersForPerformer(ctx context.Context, performerName string) ([]PartnerRow, error) {
	const qID = `SELECT p.personnel_id
	             FROM personnel p
	             JOIN performer f ON p.personnel_id = f.personnel_id
	             WHERE p.name = ?`
	var personnelID uint64
	if err := r.db.QueryRowContext(ctx, qID, performerName).Scan(&personnelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPerformerNotFound
		}
		return nil, err
	}

	const q = `SELECT pp.name, pp.service_type, p.name
	           FROM partner_personnel pp
	           JOIN personnel p ON pp.personnel_id = p.personnel_id
	           WHERE pp.personnel_id = ?
	           ORDER BY pp.name`
	rows, err := r.db.QueryContext(ctx, q, personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PartnerRow
	for rows.Next() {
		var row PartnerRow
		if err := rows.Scan(&row.PartnerName, &row.ServiceType, &row.PersonnelName); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
