package journey

import (
	"fmt"
	"time"
)

// TimestampLayout is the provider's yyyyMMdd'T'HHmmss pattern.
const TimestampLayout = "20060102T150405"

// Journey is one scheduled trip. It is immutable once built.
type Journey struct {
	duration          int64
	departureDateTime string
	arrivalDateTime   string
}

// List is an ordered sequence of journeys in source document order.
type List []Journey

// New builds a Journey from its raw fields. The timestamps are not checked
// here; Parse validates them before calling New.
func New(duration int64, departureDateTime, arrivalDateTime string) Journey {
	return Journey{
		duration:          duration,
		departureDateTime: departureDateTime,
		arrivalDateTime:   arrivalDateTime,
	}
}

// Duration returns the trip duration in seconds.
func (j Journey) Duration() int64 {
	return j.duration
}

// DepartureDateTime returns the raw departure timestamp.
func (j Journey) DepartureDateTime() string {
	return j.departureDateTime
}

// ArrivalDateTime returns the raw arrival timestamp.
func (j Journey) ArrivalDateTime() string {
	return j.arrivalDateTime
}

// Departure parses the departure timestamp in the local time zone.
func (j Journey) Departure() (time.Time, error) {
	return ParseTimestamp(j.departureDateTime)
}

// Arrival parses the arrival timestamp in the local time zone.
func (j Journey) Arrival() (time.Time, error) {
	return ParseTimestamp(j.arrivalDateTime)
}

func (j Journey) String() string {
	return fmt.Sprintf("Journey(duration=%d, departure='%s', arrival='%s')",
		j.duration, displayTimestamp(j.departureDateTime), displayTimestamp(j.arrivalDateTime))
}

// ParseTimestamp parses s with TimestampLayout in time.Local.
func ParseTimestamp(s string) (time.Time, error) {
	// time.Parse accepts fractional seconds the layout does not mention.
	if len(s) != len(TimestampLayout) {
		return time.Time{}, fmt.Errorf("timestamp %q does not match %s", s, TimestampLayout)
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q does not match %s: %w", s, TimestampLayout, err)
	}
	return t, nil
}

func displayTimestamp(s string) string {
	t, err := ParseTimestamp(s)
	if err != nil {
		return s
	}
	return t.Format(time.RFC3339)
}
