// Package schedule implements the restaurant's seating calendar: the
// fixed half-hour slot grid between opening and closing hours, the
// two-hour seating window every reservation occupies, and the overlap
// and availability rules built on top of them.  Everything here is
// pure computation; persistence lives in the repository layer.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bayanihan/restaurant-reservation/internal/model"
)

const (
	// OpenHour and CloseHour bound the bookable day.  Slots start on
	// the half hour from OpenHour up to but excluding CloseHour.
	OpenHour  = 17
	CloseHour = 22

	// SlotIntervalMinutes is the granularity of the slot grid.
	SlotIntervalMinutes = 30

	// SeatingMinutes is the fixed length of the half-open window
	// [start, start+2h) a party occupies a table.
	SeatingMinutes = 120

	// MaxPartySize is the ceiling enforced by the reservations schema
	// CHECK constraint.  Requests above it are rejected before any
	// table lookup.
	MaxPartySize = 8
)

// Slots returns the day's bookable start times in ascending order,
// formatted HH:MM:SS.  With the default hours this yields ten slots,
// 17:00:00 through 21:30:00.
func Slots() []string {
	slots := make([]string, 0, (CloseHour-OpenHour)*60/SlotIntervalMinutes)
	for m := OpenHour * 60; m < CloseHour*60; m += SlotIntervalMinutes {
		slots = append(slots, minutesToTime(m))
	}
	return slots
}

// NormalizeTime widens an "HH:MM" input to "HH:MM:SS" and validates the
// result.  Full-precision input passes through unchanged.  An error is
// returned for anything that does not parse as a time of day.
func NormalizeTime(s string) (string, error) {
	t := strings.TrimSpace(s)
	switch strings.Count(t, ":") {
	case 1:
		t += ":00"
	case 2:
		// already HH:MM:SS
	default:
		return "", fmt.Errorf("invalid time %q", s)
	}
	if _, err := ParseMinutes(t); err != nil {
		return "", err
	}
	return t, nil
}

// ParseMinutes converts an "HH:MM:SS" string to minutes past midnight.
// Seconds must be zero padded but are ignored; the slot grid never uses
// sub-minute precision.
func ParseMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}
	if s, err := strconv.Atoi(parts[2]); err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("invalid second in %q", t)
	}
	return h*60 + m, nil
}

// Overlaps reports whether two seating windows starting at the given
// minutes collide.  Windows are half-open, so a seating ending exactly
// when another begins does not overlap.
func Overlaps(aStart, bStart int) bool {
	return aStart < bStart+SeatingMinutes && aStart+SeatingMinutes > bStart
}

// Booking is the minimal view of an active reservation the availability
// computation needs: which table is taken and when its window starts.
type Booking struct {
	TableID uint64
	Start   string // HH:MM:SS
}

// BestFit picks the table a party is assigned for a seating starting at
// start: the smallest table that fits the party and has no overlapping
// booking, with the lowest id breaking capacity ties.  The repository's
// candidate query implements the same rule in SQL; this is the
// reference form, testable without a database.  ok is false when no
// table qualifies.
func BestFit(tables []model.Table, bookings []Booking, partySize int, start string) (best model.Table, ok bool) {
	startMin, err := ParseMinutes(start)
	if err != nil {
		return model.Table{}, false
	}
	taken := bookedStarts(bookings)
	for _, t := range tables {
		if t.Capacity < partySize {
			continue
		}
		free := true
		for _, b := range taken[t.ID] {
			if Overlaps(b, startMin) {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		if !ok || t.Capacity < best.Capacity || (t.Capacity == best.Capacity && t.ID < best.ID) {
			best, ok = t, true
		}
	}
	return best, ok
}

// AvailableSlots returns the subset of the day's slot grid for which at
// least one table with capacity >= partySize has no overlapping booking.
// The result is ordered ascending; an empty slice means the day is
// fully booked for that party size or no table is big enough.  Which
// table would actually be assigned is decided later, at write time.
func AvailableSlots(tables []model.Table, bookings []Booking, partySize int) []string {
	taken := bookedStarts(bookings)
	available := make([]string, 0)
	for m := OpenHour * 60; m < CloseHour*60; m += SlotIntervalMinutes {
		if slotHasFreeTable(tables, taken, partySize, m) {
			available = append(available, minutesToTime(m))
		}
	}
	return available
}

func slotHasFreeTable(tables []model.Table, taken map[uint64][]int, partySize, slotStart int) bool {
	for _, t := range tables {
		if t.Capacity < partySize {
			continue
		}
		free := true
		for _, start := range taken[t.ID] {
			if Overlaps(start, slotStart) {
				free = false
				break
			}
		}
		if free {
			return true
		}
	}
	return false
}

// bookedStarts pre-parses booking start times, grouped by table.
// Unparseable starts are skipped; they cannot come from the store.
func bookedStarts(bookings []Booking) map[uint64][]int {
	taken := make(map[uint64][]int, len(bookings))
	for _, b := range bookings {
		start, err := ParseMinutes(b.Start)
		if err != nil {
			continue
		}
		taken[b.TableID] = append(taken[b.TableID], start)
	}
	return taken
}

func minutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d:00", m/60, m%60)
}
