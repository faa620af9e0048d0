package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- ValidationError ----------

func TestInvalid_NilStaysNil(t *testing.T) {
	require.NoError(t, Invalid(nil))
}

func TestInvalid_MatchesSentinelAndUnwraps(t *testing.T) {
	inner := errors.New("title: cannot be blank.")
	err := Invalid(inner)

	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, inner)
	require.Equal(t, "title: cannot be blank.", err.Error())

	var ve *ValidationError
	require.ErrorAs(t, fmt.Errorf("submit: %w", err), &ve)
	require.Same(t, inner, ve.Err)
}

func TestInvalidMessage(t *testing.T) {
	err := InvalidMessage("select an author or enter a new name")
	require.ErrorIs(t, err, ErrValidation)
	require.NotErrorIs(t, err, ErrInvalidToken)
	require.EqualError(t, err, "select an author or enter a new name")
}
