package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihan/restaurant-reservation/internal/utils"
)

func TestConfirmationRoundTrip(t *testing.T) {
	code := utils.EncodeConfirmation(42)
	assert.Equal(t, "RES000042", code)

	id, err := utils.DecodeConfirmation(code)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestEncodeConfirmationWideIDs(t *testing.T) {
	code := utils.EncodeConfirmation(1234567)
	assert.Equal(t, "RES1234567", code)

	id, err := utils.DecodeConfirmation(code)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234567), id)
}

func TestDecodeConfirmationRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"RES", "RES42", "RESabcdef", "RES00004x", "res000042", "000042", "RES000000"} {
		_, err := utils.DecodeConfirmation(bad)
		assert.ErrorIs(t, err, utils.ErrBadConfirmation, "input %q", bad)
	}
}

func TestParseReservationRef(t *testing.T) {
	id, err := utils.ParseReservationRef("42")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	id, err = utils.ParseReservationRef("RES000042")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	// A prefixed value must be a valid code; it never falls back to the
	// numeric path.
	_, err = utils.ParseReservationRef("RES42")
	assert.ErrorIs(t, err, utils.ErrBadConfirmation)

	for _, bad := range []string{"", "0", "-3", "abc", "42abc"} {
		_, err := utils.ParseReservationRef(bad)
		assert.ErrorIs(t, err, utils.ErrBadReference, "input %q", bad)
	}
}
