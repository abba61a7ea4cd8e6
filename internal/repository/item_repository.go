// This file defines the ItemRepo, the write-side counterpart to the read
// catalog. Items are a standalone generic entity; each mutation is a single
// auto-committed statement against the pool.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agencydesk/backoffice-api/internal/model"
)

// ItemRepo encapsulates all database statements for the items table.
type ItemRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewItemRepo constructs an ItemRepo with the provided DB handle.
func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// List returns all items ordered by id.
func (r *ItemRepo) List(ctx context.Context) ([]model.Item, error) {
	const q = `SELECT id, name, description FROM items ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// GetByID fetches a single item, returning ErrItemNotFound when absent.
func (r *ItemRepo) GetByID(ctx context.Context, id uint64) (*model.Item, error) {
	const q = `SELECT id, name, description FROM items WHERE id = ?`
	var it model.Item
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&it.ID, &it.Name, &it.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

// Create inserts a new item. On success the item's ID field is populated
// with the auto-generated value.
func (r *ItemRepo) Create(ctx context.Context, it *model.Item) error {
	const q = `INSERT INTO items (name, description) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, it.Name, it.Description)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	return nil
}

// UpdateByID overwrites the name and description of an existing item and
// returns the updated record. ErrItemNotFound is returned when the id does
// not exist; the existence check is explicit because an UPDATE that writes
// identical values also reports zero affected rows.
func (r *ItemRepo) UpdateByID(ctx context.Context, id uint64, name, description string) (*model.Item, error) {
	var it model.Item
	const qSel = `SELECT id, name, description FROM items WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, qSel, id).Scan(&it.ID, &it.Name, &it.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	const qUpd = `UPDATE items SET name = ?, description = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, qUpd, name, description, id); err != nil {
		return nil, err
	}
	it.Name = name
	it.Description = description
	return &it, nil
}

// DeleteByID removes an item. ErrItemNotFound is returned when no row was
// deleted.
func (r *ItemRepo) DeleteByID(ctx context.Context, id uint64) error {
	const q = `DELETE FROM items WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SearchByName returns items whose name contains the keyword, ordered by id.
func (r *ItemRepo) SearchByName(ctx context.Context, keyword string) ([]model.Item, error) {
	const q = `SELECT id, name, description FROM items WHERE name LIKE ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, "%"+keyword+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
