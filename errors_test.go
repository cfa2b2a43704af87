package cron

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorMessageNamesFieldAndText(t *testing.T) {
	pe := &ParseError{Kind: ErrOutOfRange, Field: FieldHour, Text: "99"}
	msg := pe.Error()
	assert.Contains(t, msg, "hour")
	assert.Contains(t, msg, "99")
	assert.Contains(t, msg, ErrOutOfRange.String())
}

func TestParseErrorKindStringCoversEveryVariant(t *testing.T) {
	kinds := []ParseErrorKind{
		ErrScheduleTooLong,
		ErrFieldCountMismatch,
		ErrEmptyField,
		ErrBadNumber,
		ErrOutOfRange,
		ErrBadRangeOrder,
		ErrStepZero,
		ErrStepTooLarge,
		ErrTooManyAtoms,
		ErrTrailingGarbage,
	}
	seen := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		s := k.String()
		require.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate String() value %q", s)
		seen[s] = true
	}
}

func TestParseScheduleReturnsConcreteParseError(t *testing.T) {
	_, err := ParseSchedule("bogus * * * * * *")
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrBadNumber, pe.Kind)
}

func TestDestroyRequestedSentinelIsComparable(t *testing.T) {
	ctx := NewContext()
	mustAdd(t, ctx, "0 * * * * * *", func(any, Instant) { ctx.Destroy() })
	ctx.ExecuteAt(Instant{Sec: 1739788200, Nsec: 0})

	_, err := ctx.Add("0 * * * * * *", func(any, Instant) {}, nil)
	require.ErrorIs(t, err, ErrDestroyRequested)
}
