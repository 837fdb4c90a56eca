package timerule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday_KnownDates(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		day      int
		expected int
	}{
		{"2025-03-10 is a Monday", 2025, time.March, 10, 1},
		{"2025-06-02 is a Monday", 2025, time.June, 2, 1},
		{"2025-01-05 is a Sunday", 2025, time.January, 5, 0},
		{"2025-03-15 is a Saturday", 2025, time.March, 15, 6},
		{"2024-02-29 leap day is a Thursday", 2024, time.February, 29, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Weekday(tt.year, tt.month, tt.day))
		})
	}
}

func TestWeekday_RangeOverYear(t *testing.T) {
	// Every date of 2025 must produce an index in [0,6], advancing by one
	// modulo 7 each day.
	d := time.Date(2025, time.January, 1, 0, 0, 0, 0, RefZone)
	prev := Weekday(d.Year(), d.Month(), d.Day())
	for i := 0; i < 365; i++ {
		d = d.AddDate(0, 0, 1)
		wd := Weekday(d.Year(), d.Month(), d.Day())
		require.GreaterOrEqual(t, wd, 0)
		require.LessOrEqual(t, wd, 6)
		require.Equal(t, (prev+1)%7, wd, "weekday must advance by one on %s", d.Format("2006-01-02"))
		prev = wd
	}
}

func TestWeekdayOfWire_IndependentOfCallerOffset(t *testing.T) {
	// The same business midnight expressed from caller zones UTC-11..UTC+14
	// must resolve to the same weekday. 2025-03-10T00:00+07:00 is the instant
	// under test.
	ref := time.Date(2025, time.March, 10, 0, 0, 0, 0, RefZone)
	for offset := -11; offset <= 14; offset++ {
		zone := time.FixedZone(fmt.Sprintf("UTC%+d", offset), offset*3600)
		wire := ref.In(zone).Format(time.RFC3339)
		wd, ok := WeekdayOfWire(wire)
		require.True(t, ok, "offset %+d", offset)
		assert.Equal(t, 1, wd, "offset %+d rendered %s", offset, wire)
	}
}

func TestParseWireDate_ZTimestampShiftsToReferenceZone(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedDate string
		expectedWd   int
	}{
		{"UTC evening is next business day", "2025-03-09T17:00:00Z", "2025-03-10", 1},
		{"just before the boundary stays on same day", "2025-03-09T16:59:59Z", "2025-03-09", 0},
		{"explicit +07:00 offset passes through", "2025-06-02T08:30:00+07:00", "2025-06-02", 1},
		{"bare calendar date", "2025-06-02", "2025-06-02", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseWireDate(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.expectedDate, DateString(parsed))
			assert.Equal(t, tt.expectedWd, int(parsed.Weekday()))
		})
	}
}

func TestParseWireDate_MalformedIsAbsentNotNow(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2025-13-40", "10/03/2025", "2025-03-10T99:00:00Z"} {
		t.Run(input, func(t *testing.T) {
			parsed, ok := ParseWireDate(input)
			assert.False(t, ok)
			assert.True(t, parsed.IsZero(), "malformed input must yield the zero sentinel")
		})
	}
}

func TestToWireTimestamp_RoundTrip(t *testing.T) {
	tests := []struct {
		y        int
		m        time.Month
		d        int
		h, mi    int
		s, ms    int
		rendered string
	}{
		{2025, time.June, 2, 0, 0, 0, 0, "2025-06-02T00:00:00.000+07:00"},
		{2025, time.March, 10, 23, 59, 59, 999, "2025-03-10T23:59:59.999+07:00"},
		{2024, time.February, 29, 12, 30, 0, 250, "2024-02-29T12:30:00.250+07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.rendered, func(t *testing.T) {
			wire := ToWireTimestamp(tt.y, tt.m, tt.d, tt.h, tt.mi, tt.s, tt.ms)
			assert.Equal(t, tt.rendered, wire)

			parsed, ok := ParseWireDate(wire)
			require.True(t, ok)
			assert.Equal(t, tt.y, parsed.Year())
			assert.Equal(t, tt.m, parsed.Month())
			assert.Equal(t, tt.d, parsed.Day())
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	date, wd, err := NormalizeDate("2025-06-01T17:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", date)
	assert.Equal(t, 1, wd)

	_, _, err = NormalizeDate("02.06.2025")
	assert.Error(t, err)
}
