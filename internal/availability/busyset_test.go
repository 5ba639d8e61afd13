package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBusyDates_AllDayExclusiveEnd(t *testing.T) {
	// The provider states the all-day end one day past the last busy day.
	events := []BusyEvent{
		{
			ID:    "evt-1",
			Start: EventTime{Date: "2025-06-01"},
			End:   EventTime{Date: "2025-06-04"},
		},
	}

	busy := DeriveBusyDates(events)

	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03"}, busy.Strings())
	assert.False(t, busy.Contains(mustDate(t, "2025-06-04")))
}

func TestDeriveBusyDates_TimedSameDayInclusive(t *testing.T) {
	at := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	events := []BusyEvent{
		{
			ID:    "evt-2",
			Start: EventTime{DateTime: at},
			End:   EventTime{DateTime: at},
		},
	}

	busy := DeriveBusyDates(events)

	assert.Equal(t, []string{"2025-06-10"}, busy.Strings())
}

func TestDeriveBusyDates_TimedSpanningDays(t *testing.T) {
	events := []BusyEvent{
		{
			Start: EventTime{DateTime: time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)},
			End:   EventTime{DateTime: time.Date(2025, 6, 12, 2, 0, 0, 0, time.UTC)},
		},
	}

	busy := DeriveBusyDates(events)

	assert.Equal(t, []string{"2025-06-10", "2025-06-11", "2025-06-12"}, busy.Strings())
}

func TestDeriveBusyDates_OrderIndependent(t *testing.T) {
	a := BusyEvent{Start: EventTime{Date: "2025-06-01"}, End: EventTime{Date: "2025-06-03"}}
	b := BusyEvent{Start: EventTime{DateTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}, End: EventTime{DateTime: time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)}}
	c := BusyEvent{Start: EventTime{Date: "2025-06-20"}, End: EventTime{Date: "2025-06-21"}}

	fwd := DeriveBusyDates([]BusyEvent{a, b, c})
	rev := DeriveBusyDates([]BusyEvent{c, b, a})

	assert.Equal(t, fwd.Strings(), rev.Strings())
}

func TestDeriveBusyDates_OverlapsCollapse(t *testing.T) {
	events := []BusyEvent{
		{Start: EventTime{Date: "2025-06-01"}, End: EventTime{Date: "2025-06-03"}},
		{Start: EventTime{Date: "2025-06-02"}, End: EventTime{Date: "2025-06-04"}},
	}

	busy := DeriveBusyDates(events)

	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03"}, busy.Strings())
}

func TestDeriveBusyDates_EmptyAndMalformed(t *testing.T) {
	assert.Empty(t, DeriveBusyDates(nil).Strings())

	events := []BusyEvent{
		{}, // no bounds at all
		{Start: EventTime{Date: "not-a-date"}, End: EventTime{Date: "2025-06-04"}},
		// single-day all-day event stated with equal bounds inverts after the
		// exclusive-end pullback and covers nothing
		{Start: EventTime{Date: "2025-06-05"}, End: EventTime{Date: "2025-06-05"}},
	}

	assert.Empty(t, DeriveBusyDates(events).Strings())
}
