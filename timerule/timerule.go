// Package timerule converts between calendar dates and weekday indexes in the
// business reference timezone, and canonicalizes timestamps for the wire.
//
// All branches operate on UTC+7 wall clocks. Weekdays are always evaluated in
// that zone so a manager's browser in another timezone can never derive a
// different weekday for the same business date.
package timerule

import (
	"fmt"
	"time"
)

// RefOffsetHours is the fixed reference offset east of UTC.
const RefOffsetHours = 7

// RefZone is the fixed reference timezone all business dates live in.
var RefZone = time.FixedZone("UTC+7", RefOffsetHours*3600)

const (
	dateLayout = "2006-01-02"
	wireLayout = "2006-01-02T15:04:05.000-07:00"
)

// Weekday returns the day of week (0=Sunday..6=Saturday) of the given
// calendar date. The computation is purely on date components, so the
// caller's local timezone cannot influence the result.
func Weekday(year int, month time.Month, day int) int {
	return int(time.Date(year, month, day, 0, 0, 0, 0, RefZone).Weekday())
}

// WeekdayOfWire parses a wire date and returns its reference-zone weekday.
// ok is false for malformed input.
func WeekdayOfWire(s string) (weekday int, ok bool) {
	t, ok := ParseWireDate(s)
	if !ok {
		return 0, false
	}
	return int(t.Weekday()), true
}

// ToWireTimestamp renders the given reference-zone wall clock as a timestamp
// carrying an explicit +07:00 offset. A receiver parsing it recovers the same
// calendar date the caller displayed, instead of reinterpreting a local
// midnight as UTC and sliding the date by one day.
func ToWireTimestamp(year int, month time.Month, day, hour, minute, second, millisecond int) string {
	t := time.Date(year, month, day, hour, minute, second, millisecond*int(time.Millisecond), RefZone)
	return t.Format(wireLayout)
}

// ParseWireDate parses a wire date value into a reference-zone time. Accepted
// forms: a bare calendar date ("2025-03-10"), an RFC 3339 timestamp with an
// explicit offset, or a UTC "Z" timestamp. UTC instants are re-expressed in
// the reference zone so that date-only comparisons against business dates
// stay correct.
//
// ok is false for malformed input. Callers must treat the false case as
// "absent" and never substitute the current time.
func ParseWireDate(s string) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.ParseInLocation(dateLayout, s, RefZone); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.In(RefZone), true
	}
	if ts, err := time.Parse(wireLayout, s); err == nil {
		return ts.In(RefZone), true
	}
	return time.Time{}, false
}

// DateString renders t as the canonical YYYY-MM-DD business date in the
// reference zone.
func DateString(t time.Time) string {
	return t.In(RefZone).Format(dateLayout)
}

// ValidWeekDate reports whether wd is a legal weekday index.
func ValidWeekDate(wd int) bool {
	return wd >= 0 && wd <= 6
}

// NormalizeDate canonicalizes any accepted wire date form to YYYY-MM-DD and
// returns its weekday, failing on malformed input.
func NormalizeDate(s string) (date string, weekday int, err error) {
	t, ok := ParseWireDate(s)
	if !ok {
		return "", 0, fmt.Errorf("malformed date %q", s)
	}
	return t.Format(dateLayout), int(t.Weekday()), nil
}
