// Package utils provides small helpers shared across handlers: the
// public confirmation-number codec and admin token signing.
package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ConfirmationPrefix tags every confirmation number so guests can tell
// it apart from a raw reservation id.
const ConfirmationPrefix = "RES"

// ErrBadConfirmation is returned when a string that claims to be a
// confirmation number (it carries the prefix) does not decode.
var ErrBadConfirmation = errors.New("invalid confirmation number")

// ErrBadReference is returned when a reservation reference is neither a
// positive integer nor a confirmation number.
var ErrBadReference = errors.New("invalid reservation reference")

// EncodeConfirmation derives the public confirmation number from a
// reservation id: the prefix followed by the id zero padded to six
// digits.  Ids past 999999 simply grow wider; the encoding stays
// reversible either way.
func EncodeConfirmation(id uint64) string {
	return fmt.Sprintf("%s%06d", ConfirmationPrefix, id)
}

// DecodeConfirmation reverses EncodeConfirmation.  The input must be
// the prefix followed by six or more digits; anything else fails with
// ErrBadConfirmation.
func DecodeConfirmation(code string) (uint64, error) {
	digits, ok := strings.CutPrefix(code, ConfirmationPrefix)
	if !ok || len(digits) < 6 {
		return 0, ErrBadConfirmation
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, ErrBadConfirmation
		}
	}
	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrBadConfirmation
	}
	return id, nil
}

// ParseReservationRef resolves a path parameter that may be either a
// raw numeric id or a confirmation number.  The rule is strict: a value
// starting with the prefix must be a well-formed confirmation number,
// everything else must be all digits.  This removes the ambiguity of
// treating a malformed code as an id.
func ParseReservationRef(raw string) (uint64, error) {
	if strings.HasPrefix(raw, ConfirmationPrefix) {
		return DecodeConfirmation(raw)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrBadReference
	}
	return id, nil
}
