// Package repository implements data access over PostgreSQL.  Sentinel
// errors defined here let handlers distinguish failure scenarios
// without inspecting driver internals; database-level constraint trips
// are translated by the helpers below.
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNoFreeTable is returned when no table of sufficient capacity is
// free for the requested seating window.  Handlers translate this into
// an HTTP 409 response.
var ErrNoFreeTable = errors.New("no free table for the requested slot")

// IsOverlapViolation reports whether err is the reservations table's
// exclusion constraint rejecting an overlapping seating.  This is the
// backstop for the race where two requests pick the same table before
// either insert commits; the loser's insert fails here.
func IsOverlapViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "exclusion_violation"
}

// IsCheckViolation reports whether err is a CHECK constraint failure,
// e.g. a party size outside the schema ceiling slipping past request
// validation.
func IsCheckViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "check_violation"
}
