package queue

// ReservationConfirmedEvent is published when a reservation is
// successfully created.  It carries enough information for downstream
// consumers to log, notify, or feed analytics without querying the
// primary database.
type ReservationConfirmedEvent struct {
	ReservationID      uint64 `json:"reservation_id"`
	ConfirmationNumber string `json:"confirmation_number"`
	GuestName          string `json:"guest_name"`
	GuestEmail         string `json:"guest_email"`
	PartySize          int    `json:"party_size"`
	Date               string `json:"reservation_date"`
	Time               string `json:"reservation_time"`
	TableNumber        int    `json:"table_number"`
	ConfirmedAt        string `json:"confirmed_at"`
}
