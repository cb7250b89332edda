package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihan/restaurant-reservation/internal/model"
	"github.com/bayanihan/restaurant-reservation/internal/repository"
)

const (
	candidatePattern = `SELECT id, table_number, capacity FROM tables`
	insertPattern    = `INSERT INTO reservations`
)

// exclusionErr is the driver error raised when the no_overlapping_seatings
// constraint rejects an insert.
var exclusionErr = &pq.Error{Code: "23P01", Constraint: "no_overlapping_seatings"}

func reservationRequest() *model.Reservation {
	return &model.Reservation{
		GuestName:  "Maria Santos",
		GuestEmail: "maria@example.com",
		PartySize:  4,
		Date:       "2026-09-01",
		Time:       "18:00:00",
	}
}

func candidateRows(id, number, capacity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "table_number", "capacity"}).
		AddRow(id, number, capacity)
}

func insertedRows(id, tableID int, res *model.Reservation) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "table_id", "guest_name", "guest_email", "guest_phone",
		"party_size", "date", "time", "status", "created_at",
	}).AddRow(id, tableID, res.GuestName, res.GuestEmail, "",
		res.PartySize, res.Date, res.Time, model.StatusActive, time.Now())
}

func TestReserveAssignsAndPersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	res := reservationRequest()

	mock.ExpectBegin()
	mock.ExpectQuery(candidatePattern).
		WithArgs(res.PartySize, res.Date, res.Time).
		WillReturnRows(candidateRows(3, 3, 4))
	mock.ExpectQuery(insertPattern).WillReturnRows(insertedRows(7, 3, res))
	mock.ExpectCommit()

	table, err := repository.NewReservationRepo(db).Reserve(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), table.ID)
	assert.Equal(t, uint64(7), res.ID)
	assert.Equal(t, uint64(3), res.TableID)
	assert.Equal(t, model.StatusActive, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRetriesAfterLostRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	res := reservationRequest()

	// First attempt picks table 3, but a concurrent writer commits an
	// overlapping reservation for it first.
	mock.ExpectBegin()
	mock.ExpectQuery(candidatePattern).
		WithArgs(res.PartySize, res.Date, res.Time).
		WillReturnRows(candidateRows(3, 3, 4))
	mock.ExpectQuery(insertPattern).WillReturnError(exclusionErr)
	mock.ExpectRollback()

	// The retry re-runs the selection, which now skips table 3 and
	// seats the party at the other four-top.
	mock.ExpectBegin()
	mock.ExpectQuery(candidatePattern).
		WithArgs(res.PartySize, res.Date, res.Time).
		WillReturnRows(candidateRows(4, 4, 4))
	mock.ExpectQuery(insertPattern).WillReturnRows(insertedRows(8, 4, res))
	mock.ExpectCommit()

	table, err := repository.NewReservationRepo(db).Reserve(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), table.ID)
	assert.Equal(t, uint64(4), res.TableID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSecondLossReportsNoAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	res := reservationRequest()

	for _, tableID := range []int{3, 4} {
		mock.ExpectBegin()
		mock.ExpectQuery(candidatePattern).
			WithArgs(res.PartySize, res.Date, res.Time).
			WillReturnRows(candidateRows(tableID, tableID, 4))
		mock.ExpectQuery(insertPattern).WillReturnError(exclusionErr)
		mock.ExpectRollback()
	}

	_, err = repository.NewReservationRepo(db).Reserve(context.Background(), res)
	assert.ErrorIs(t, err, repository.ErrNoFreeTable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveNoFreeTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	res := reservationRequest()

	// No candidate at all: reported directly, no retry.
	mock.ExpectBegin()
	mock.ExpectQuery(candidatePattern).
		WithArgs(res.PartySize, res.Date, res.Time).
		WillReturnRows(sqlmock.NewRows([]string{"id", "table_number", "capacity"}))
	mock.ExpectRollback()

	_, err = repository.NewReservationRepo(db).Reserve(context.Background(), res)
	assert.ErrorIs(t, err, repository.ErrNoFreeTable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
