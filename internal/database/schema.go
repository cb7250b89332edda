package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// Seating window length used by the exclusion constraint.  Must stay in
// step with schedule.SeatingMinutes.
const seatingInterval = "2 hours"

// statements creating the two tables.  The reservations table carries
// the two store-level invariants the application must never be trusted
// to enforce alone: the party-size ceiling and the no-overlap rule for
// active reservations on the same table.  The latter is an exclusion
// constraint over the tsrange a seating occupies, so two transactions
// racing for the same table cannot both commit.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	`CREATE TABLE IF NOT EXISTS tables (
		id SERIAL PRIMARY KEY,
		table_number INT NOT NULL UNIQUE,
		capacity INT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id SERIAL PRIMARY KEY,
		table_id INT REFERENCES tables(id),
		guest_name VARCHAR(100) NOT NULL,
		guest_email VARCHAR(100) NOT NULL,
		guest_phone VARCHAR(20),
		party_size INT NOT NULL CHECK (party_size > 0 AND party_size <= 8),
		reservation_date DATE NOT NULL,
		reservation_time TIME NOT NULL,
		status VARCHAR(20) DEFAULT 'active',
		created_at TIMESTAMP DEFAULT NOW(),
		CONSTRAINT no_overlapping_seatings EXCLUDE USING gist (
			table_id WITH =,
			tsrange(
				reservation_date + reservation_time,
				reservation_date + reservation_time + INTERVAL '` + seatingInterval + `'
			) WITH &&
		) WHERE (status = 'active')
	)`,
}

// Init creates the schema and seeds the table inventory when empty.
// It is idempotent and safe to run on every startup.
func Init(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return seedTables(ctx, db)
}

// seedTables inserts the fixed inventory on first run: six tables, two
// two-tops, two four-tops and two six-tops.
func seedTables(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tables`).Scan(&count); err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count > 0 {
		return nil
	}
	capacities := []int{2, 2, 4, 4, 6, 6}
	for i, seats := range capacities {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO tables (table_number, capacity) VALUES ($1, $2)`,
			i+1, seats,
		); err != nil {
			return fmt.Errorf("seed table %d: %w", i+1, err)
		}
	}
	log.Printf("database: seeded %d tables", len(capacities))
	return nil
}
