package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bayanihan/restaurant-reservation/internal/model"
	"github.com/bayanihan/restaurant-reservation/internal/schedule"
)

// reservationColumns is the scan list shared by every query returning a
// full reservation row.  DATE and TIME columns are formatted in SQL so
// the strings the API exchanges are stable regardless of driver
// representation.
const reservationColumns = `id, table_id, guest_name, guest_email, COALESCE(guest_phone, ''),
	party_size, to_char(reservation_date, 'YYYY-MM-DD'),
	to_char(reservation_time, 'HH24:MI:SS'), status, created_at`

// ReservationRepo provides persistence for reservations.  Reservations
// are only ever created through the availability-checked write path
// (FindSmallestFreeTableTx + CreateTx inside one transaction) and are
// never physically deleted; cancellation flips status.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// errLostRace marks an attempt rejected by the exclusion constraint: a
// concurrent writer committed an overlapping reservation for the chosen
// table after our candidate query ran.
var errLostRace = errors.New("reservation race lost")

// Reserve atomically assigns the best-fit free table for the requested
// window and persists the reservation.  Candidate selection and insert
// run in one transaction with the candidates locked, so two concurrent
// requests for overlapping windows serialize; if a competing insert
// commits first anyway, the exclusion constraint rejects ours.  Losing
// that race does not mean the slot is gone, another qualifying table
// may still be free, so the selection is re-run once before the
// conflict is reported as ErrNoFreeTable.  On success res carries the
// persisted row and the assigned table is returned.
func (r *ReservationRepo) Reserve(ctx context.Context, res *model.Reservation) (model.Table, error) {
	table, err := r.reserveOnce(ctx, res)
	if errors.Is(err, errLostRace) {
		table, err = r.reserveOnce(ctx, res)
		if errors.Is(err, errLostRace) {
			return model.Table{}, ErrNoFreeTable
		}
	}
	return table, err
}

func (r *ReservationRepo) reserveOnce(ctx context.Context, res *model.Reservation) (model.Table, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Table{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	table, err := r.FindSmallestFreeTableTx(ctx, tx, res.PartySize, res.Date, res.Time)
	if err != nil {
		return model.Table{}, err
	}
	res.TableID = table.ID
	if err := r.CreateTx(ctx, tx, res); err != nil {
		if IsOverlapViolation(err) {
			return model.Table{}, errLostRace
		}
		return model.Table{}, err
	}
	if err := tx.Commit(); err != nil {
		if IsOverlapViolation(err) {
			return model.Table{}, errLostRace
		}
		return model.Table{}, err
	}
	committed = true
	return table, nil
}

// ListActiveByDate returns the day's active bookings in the minimal
// shape the availability computation consumes.
func (r *ReservationRepo) ListActiveByDate(ctx context.Context, date string) ([]schedule.Booking, error) {
	const q = `SELECT table_id, to_char(reservation_time, 'HH24:MI:SS')
	           FROM reservations
	           WHERE reservation_date = $1 AND status = 'active'`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]schedule.Booking, 0)
	for rows.Next() {
		var b schedule.Booking
		if err := rows.Scan(&b.TableID, &b.Start); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindSmallestFreeTableTx picks the best-fit table for the requested
// seating window: among tables with capacity >= partySize and no
// active reservation overlapping [time, time+2h) on that date, the one
// with the smallest capacity wins (lowest id breaks ties).  The
// qualifying rows are locked FOR UPDATE so concurrent writers
// serialize on the same candidates; the schema's exclusion constraint
// backstops anything that still slips through.  Returns ErrNoFreeTable
// when no table qualifies.
func (r *ReservationRepo) FindSmallestFreeTableTx(ctx context.Context, tx *sql.Tx, partySize int, date, start string) (model.Table, error) {
	const q = `SELECT id, table_number, capacity FROM tables
	           WHERE capacity >= $1
	           AND id NOT IN (
	               SELECT r.table_id FROM reservations r
	               WHERE r.reservation_date = $2
	               AND r.status = 'active'
	               AND r.reservation_time < ($3::time + INTERVAL '2 hours')
	               AND (r.reservation_time + INTERVAL '2 hours') > $3::time
	           )
	           ORDER BY capacity ASC, id ASC
	           LIMIT 1
	           FOR UPDATE`
	var t model.Table
	err := tx.QueryRowContext(ctx, q, partySize, date, start).Scan(&t.ID, &t.TableNumber, &t.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Table{}, ErrNoFreeTable
	}
	if err != nil {
		return model.Table{}, err
	}
	return t, nil
}

// CreateTx inserts a new active reservation within the scope of an
// existing transaction and populates the record from the persisted row.
// The caller must commit or rollback.  An overlap race lost to a
// concurrent writer surfaces here as an exclusion violation; callers
// detect it with IsOverlapViolation.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations
	           (table_id, guest_name, guest_email, guest_phone, party_size, reservation_date, reservation_time)
	           VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
	           RETURNING ` + reservationColumns
	return tx.QueryRowContext(ctx, q,
		res.TableID, res.GuestName, res.GuestEmail, res.GuestPhone,
		res.PartySize, res.Date, res.Time,
	).Scan(
		&res.ID, &res.TableID, &res.GuestName, &res.GuestEmail, &res.GuestPhone,
		&res.PartySize, &res.Date, &res.Time, &res.Status, &res.CreatedAt,
	)
}

// GetByID fetches a reservation by its numeric id.  sql.ErrNoRows is
// returned when it does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&res.ID, &res.TableID, &res.GuestName, &res.GuestEmail, &res.GuestPhone,
		&res.PartySize, &res.Date, &res.Time, &res.Status, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelByID flips a reservation's status to cancelled and returns the
// updated row.  The flip is idempotent: cancelling an already-cancelled
// reservation succeeds and returns the row unchanged.  sql.ErrNoRows is
// returned for an unknown id.
func (r *ReservationRepo) CancelByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `UPDATE reservations SET status = 'cancelled' WHERE id = $1
	           RETURNING ` + reservationColumns
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&res.ID, &res.TableID, &res.GuestName, &res.GuestEmail, &res.GuestPhone,
		&res.PartySize, &res.Date, &res.Time, &res.Status, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DayReservation is a reservation joined with its table number, as
// shown to the operator on the admin listing.
type DayReservation struct {
	model.Reservation
	TableNumber int `json:"table_number"`
}

// ListByDate returns every reservation for a date, active and
// cancelled, ordered by seating time then creation time.  Used by the
// operator's day view.
func (r *ReservationRepo) ListByDate(ctx context.Context, date string) ([]DayReservation, error) {
	const q = `SELECT r.id, r.table_id, r.guest_name, r.guest_email, COALESCE(r.guest_phone, ''),
	                  r.party_size, to_char(r.reservation_date, 'YYYY-MM-DD'),
	                  to_char(r.reservation_time, 'HH24:MI:SS'), r.status, r.created_at,
	                  t.table_number
	           FROM reservations r
	           JOIN tables t ON t.id = r.table_id
	           WHERE r.reservation_date = $1
	           ORDER BY r.reservation_time, r.created_at`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]DayReservation, 0)
	for rows.Next() {
		var d DayReservation
		if err := rows.Scan(
			&d.ID, &d.TableID, &d.GuestName, &d.GuestEmail, &d.GuestPhone,
			&d.PartySize, &d.Date, &d.Time, &d.Status, &d.CreatedAt,
			&d.TableNumber,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
