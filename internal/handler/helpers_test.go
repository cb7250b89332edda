package handler_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bayanihan/restaurant-reservation/internal/model"
	"github.com/bayanihan/restaurant-reservation/internal/repository"
	"github.com/bayanihan/restaurant-reservation/internal/schedule"
)

// fakeTables serves the fixed inventory used across the handler tests:
// two two-tops, two four-tops, two six-tops.
type fakeTables struct {
	tables []model.Table
	err    error
}

func newFakeTables() *fakeTables {
	return &fakeTables{tables: []model.Table{
		{ID: 1, TableNumber: 1, Capacity: 2},
		{ID: 2, TableNumber: 2, Capacity: 2},
		{ID: 3, TableNumber: 3, Capacity: 4},
		{ID: 4, TableNumber: 4, Capacity: 4},
		{ID: 5, TableNumber: 5, Capacity: 6},
		{ID: 6, TableNumber: 6, Capacity: 6},
	}}
}

func (f *fakeTables) ListAll(context.Context) ([]model.Table, error) {
	return f.tables, f.err
}

func (f *fakeTables) MaxCapacity(context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	max := 0
	for _, t := range f.tables {
		if t.Capacity > max {
			max = t.Capacity
		}
	}
	return max, nil
}

// fakeStore is an in-memory ReservationStore.  Reserve runs the same
// best-fit selection over its bookings as the real repository's
// candidate query, so assignment behavior is exercised end to end.
type fakeStore struct {
	reserveErr error
	tables     []model.Table
	nextID     uint64
	reserved   []*model.Reservation
	byID       map[uint64]*model.Reservation
	bookings   []schedule.Booking
	day        []repository.DayReservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables: newFakeTables().tables,
		nextID: 1,
		byID:   map[uint64]*model.Reservation{},
	}
}

func (f *fakeStore) Reserve(_ context.Context, res *model.Reservation) (model.Table, error) {
	if f.reserveErr != nil {
		return model.Table{}, f.reserveErr
	}
	table, ok := schedule.BestFit(f.tables, f.bookings, res.PartySize, res.Time)
	if !ok {
		return model.Table{}, repository.ErrNoFreeTable
	}
	res.ID = f.nextID
	f.nextID++
	res.TableID = table.ID
	res.Status = model.StatusActive
	f.reserved = append(f.reserved, res)
	f.byID[res.ID] = res
	f.bookings = append(f.bookings, schedule.Booking{TableID: table.ID, Start: res.Time})
	return table, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uint64) (*model.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return res, nil
}

func (f *fakeStore) CancelByID(_ context.Context, id uint64) (*model.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	res.Status = model.StatusCancelled
	return res, nil
}

func (f *fakeStore) ListActiveByDate(context.Context, string) ([]schedule.Booking, error) {
	return f.bookings, nil
}

func (f *fakeStore) ListByDate(context.Context, string) ([]repository.DayReservation, error) {
	return f.day, nil
}

// fakeNotifier records sent confirmations and can be told to fail.
type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) SendConfirmation(_ model.Reservation, confirmation string) error {
	f.sent = append(f.sent, confirmation)
	return f.err
}

// request builds an Echo context around a recorded request.
func request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
