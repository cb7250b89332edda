package handler

import (
	"context"
	"time"

	"github.com/bayanihan/restaurant-reservation/internal/model"
	"github.com/bayanihan/restaurant-reservation/internal/repository"
	"github.com/bayanihan/restaurant-reservation/internal/schedule"
)

// TableStore is the slice of the table repository the handlers consume.
type TableStore interface {
	ListAll(ctx context.Context) ([]model.Table, error)
	MaxCapacity(ctx context.Context) (int, error)
}

// ReservationStore is the slice of the reservation repository the
// handlers consume.  Reserve is the single atomic reserve-if-free
// operation; handlers never see the candidate query and the insert as
// separate steps.
type ReservationStore interface {
	Reserve(ctx context.Context, res *model.Reservation) (model.Table, error)
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	CancelByID(ctx context.Context, id uint64) (*model.Reservation, error)
	ListActiveByDate(ctx context.Context, date string) ([]schedule.Booking, error)
	ListByDate(ctx context.Context, date string) ([]repository.DayReservation, error)
}

// validDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
