package repository

import (
	"context"
	"database/sql"

	"github.com/bayanihan/restaurant-reservation/internal/model"
)

// TableRepo provides read access to the static table inventory.  Rows
// are seeded at startup and never change, so every method is a plain
// read with no transactional variant.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo returns a new TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// ListAll returns every table ordered by capacity then id, the same
// order best-fit assignment considers them.
func (r *TableRepo) ListAll(ctx context.Context) ([]model.Table, error) {
	const q = `SELECT id, table_number, capacity FROM tables ORDER BY capacity, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tables := make([]model.Table, 0, 8)
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Capacity); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

// MaxCapacity returns the seat count of the single largest table, or
// zero when the inventory is empty.  Parties above this can never be
// seated because tables are not combined.
func (r *TableRepo) MaxCapacity(ctx context.Context) (int, error) {
	const q = `SELECT COALESCE(MAX(capacity), 0) FROM tables`
	var max int
	if err := r.db.QueryRowContext(ctx, q).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}
