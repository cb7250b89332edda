package model

// Table describes a physical dining table in the restaurant.  The
// inventory is small and static: rows are seeded once at startup and
// never modified afterwards.  Capacity is the number of guests the
// table seats; parties are never split across tables.
//
// Fields:
//  ID          – primary key identifier.
//  TableNumber – human-facing table number, unique per restaurant.
//  Capacity    – number of seats at the table.
type Table struct {
	ID          uint64 `json:"id"`           // tables.id
	TableNumber int    `json:"table_number"` // tables.table_number
	Capacity    int    `json:"capacity"`     // tables.capacity
}
