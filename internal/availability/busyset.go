package availability

import (
	"sort"
	"time"
)

// EventTime is one bound of an external calendar event. Exactly one of Date
// or DateTime is set: all-day events carry a bare "YYYY-MM-DD", timed events
// a timestamp. This mirrors the calendar provider's wire shape.
type EventTime struct {
	Date     string
	DateTime time.Time
}

func (et EventTime) day() (Date, bool) {
	if et.Date != "" {
		d, err := ParseDate(et.Date)
		if err != nil {
			return Date{}, false
		}
		return d, true
	}
	if !et.DateTime.IsZero() {
		return DateOf(et.DateTime), true
	}
	return Date{}, false
}

// BusyEvent is an externally-sourced busy interval for a listing's calendar.
type BusyEvent struct {
	ID      string
	Summary string
	Start   EventTime
	End     EventTime
}

// BusySet is the set of calendar days considered unavailable, keyed by
// canonical date string for O(1) membership tests. It is derived data:
// rebuilt fresh whenever the event list changes, never patched in place.
type BusySet map[string]struct{}

// DeriveBusyDates unions the days covered by every event.
//
// The provider states an all-day event's end one day past the last busy day,
// so a date-only end bound is exclusive and gets pulled back a day before
// expansion. Timed events cover every day they touch, end inclusive. The
// asymmetry is the provider's own convention and is preserved as observed.
// Events whose bounds fail to normalize, or invert after adjustment, cover
// no days. The result is independent of event order.
func DeriveBusyDates(events []BusyEvent) BusySet {
	busy := make(BusySet)
	for _, e := range events {
		start, ok := e.Start.day()
		if !ok {
			continue
		}
		end, ok := e.End.day()
		if !ok {
			continue
		}
		if e.End.Date != "" {
			end = end.AddDays(-1)
		}
		for _, d := range ExpandRange(start, end) {
			busy[d.String()] = struct{}{}
		}
	}
	return busy
}

// Contains reports whether the day is busy.
func (s BusySet) Contains(d Date) bool {
	_, ok := s[d.String()]
	return ok
}

// Strings returns the busy days as sorted canonical strings, for display.
func (s BusySet) Strings() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
