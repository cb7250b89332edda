package model

import "time"

// Reservation status values.  A reservation is created active and may
// only ever transition to cancelled; cancelled rows are kept for
// history and excluded from overlap checks.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Reservation records a guest's booking of a single table for a fixed
// two-hour seating window.  The table is assigned once at creation and
// never reassigned.  Date and Time are kept as the textual forms the
// API exchanges ("2006-01-02" and "15:04:05"); the repository formats
// the underlying DATE/TIME columns accordingly when scanning.
//
// Fields:
//  ID         – primary key identifier.
//  TableID    – table assigned at creation.
//  GuestName  – name of the booking guest.
//  GuestEmail – contact email, used for the confirmation message.
//  GuestPhone – optional contact phone.
//  PartySize  – number of guests (1..8, also checked by the schema).
//  Date       – reservation date, YYYY-MM-DD.
//  Time       – seating start time, HH:MM:SS.
//  Status     – "active" or "cancelled".
//  CreatedAt  – creation timestamp.
type Reservation struct {
	ID         uint64    `json:"id"`               // reservations.id
	TableID    uint64    `json:"table_id"`         // reservations.table_id
	GuestName  string    `json:"guest_name"`       // reservations.guest_name
	GuestEmail string    `json:"guest_email"`      // reservations.guest_email
	GuestPhone string    `json:"guest_phone"`      // reservations.guest_phone
	PartySize  int       `json:"party_size"`       // reservations.party_size
	Date       string    `json:"reservation_date"` // reservations.reservation_date
	Time       string    `json:"reservation_time"` // reservations.reservation_time
	Status     string    `json:"status"`           // reservations.status
	CreatedAt  time.Time `json:"created_at"`       // reservations.created_at
}
