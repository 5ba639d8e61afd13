// Package availability implements the booking-window engine: calendar-day
// expansion, busy-date derivation from external calendar events, clash
// detection and price computation. Everything here is pure — inputs in,
// results out — so the caller can recompute from scratch on every change.
package availability

import "time"

const dayFormat = "2006-01-02"

// Date is a single calendar day with no time-of-day component. Its canonical
// form is the "YYYY-MM-DD" string; two dates are equal iff those match.
// The zero value is not a usable date, construct via ParseDate or DateOf.
type Date struct {
	t time.Time
}

// ParseDate parses a canonical "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// DateOf truncates t to the calendar day it falls on, dropping the
// time-of-day. Day arithmetic on the result is immune to DST drift because
// every Date is pinned to UTC midnight.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string     { return d.t.Format(dayFormat) }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Time exposes the underlying instant (UTC midnight of the day).
func (d Date) Time() time.Time { return d.t }

// DaysBetween returns the whole-day distance from a to b, negative when b
// precedes a.
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t) / (24 * time.Hour))
}

// ExpandRange lists every day touched by the interval [start, end], both
// endpoints inclusive, in ascending order. An inverted range yields nil;
// callers are expected to validate order first, this is the defensive
// fallback.
func ExpandRange(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}
	out := make([]Date, 0, DaysBetween(start, end)+1)
	for cur := start; !cur.After(end); cur = cur.AddDays(1) {
		out = append(out, cur)
	}
	return out
}
