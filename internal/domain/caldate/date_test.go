//go:build unit

package caldate_test

import (
	"testing"
	"time"

	"bakery-orders/internal/domain/caldate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	late := time.Date(2025, 6, 5, 23, 30, 0, 0, saoPaulo)

	tests := []struct {
		name  string
		input any
		want  caldate.Date
		errIs error
	}{
		{name: "canonical string", input: "2025-06-05", want: "2025-06-05"},
		{name: "canonical with spaces", input: "  2025-06-05 ", want: "2025-06-05"},
		{name: "DD/MM/YYYY", input: "05/06/2025", want: "2025-06-05"},
		{name: "D/M/YYYY", input: "5/6/2025", want: "2025-06-05"},
		{name: "RFC3339 keeps written day", input: "2025-06-05T23:30:00-03:00", want: "2025-06-05"},
		{name: "UTC timestamp", input: "2025-06-05T10:00:00.000Z", want: "2025-06-05"},
		{name: "local timestamp", input: "2025-06-05T10:00:00", want: "2025-06-05"},
		{name: "time.Time uses its location", input: late, want: "2025-06-05"},
		{name: "*time.Time", input: &late, want: "2025-06-05"},
		{name: "Date", input: caldate.Date("2025-06-05"), want: "2025-06-05"},
		{name: "empty string", input: "", errIs: caldate.ErrAmbiguousDate},
		{name: "free text", input: "next friday", errIs: caldate.ErrAmbiguousDate},
		{name: "MM/DD overflow", input: "06/13/2025", errIs: caldate.ErrAmbiguousDate},
		{name: "31 February", input: "31/02/2025", errIs: caldate.ErrAmbiguousDate},
		{name: "invalid canonical", input: "2025-13-01", errIs: caldate.ErrAmbiguousDate},
		{name: "nil time pointer", input: (*time.Time)(nil), errIs: caldate.ErrAmbiguousDate},
		{name: "zero time", input: time.Time{}, errIs: caldate.ErrAmbiguousDate},
		{name: "unsupported type", input: 20250605, errIs: caldate.ErrAmbiguousDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := caldate.Normalize(tt.input)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []any{
		"2025-06-05",
		"5/6/2025",
		"2025-06-05T23:30:00-03:00",
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
	}

	for _, in := range inputs {
		once, err := caldate.Normalize(in)
		require.NoError(t, err)
		twice, err := caldate.Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %v", in)
	}
}

func TestDate(t *testing.T) {
	d := caldate.MustNormalize("2025-06-30")

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 6, d.Month())
	assert.Equal(t, 5, d.MonthIndex())
	assert.Equal(t, 30, d.Day())
	assert.True(t, d.InMonth(2025, 5))
	assert.False(t, d.InMonth(2025, 6))
	assert.Equal(t, caldate.Date("2025-07-01"), d.AddDays(1))
	assert.Equal(t, caldate.Date("2025-05-31"), d.AddDays(-30))
	assert.True(t, caldate.Date("2025-06-01").Before(d))
	assert.True(t, d.After("2025-06-01"))
	assert.Equal(t, 0, d.Compare("2025-06-30"))

	assert.Panics(t, func() { caldate.MustNormalize("garbage") })
}
