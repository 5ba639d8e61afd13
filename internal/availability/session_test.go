package availability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	busy := DeriveBusyDates([]BusyEvent{
		{Start: EventTime{Date: "2025-08-10"}, End: EventTime{Date: "2025-08-11"}},
	})
	return NewSession(PriceTerm{UnitPrice: 200, Unit: UnitDay}, busy)
}

func TestSession_EmptyForm(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, StateEmpty, s.State())
	assert.Equal(t, "Please select start and end dates.", s.FormMessage())
	assert.False(t, s.BeginSubmit())
}

func TestSession_CleanWindowGoesStraightToPriceComputed(t *testing.T) {
	s := newTestSession(t)

	s.SetDates(mustDate(t, "2025-08-01"), mustDate(t, "2025-08-03"), 2)

	assert.Equal(t, StatePriceComputed, s.State())
	assert.Equal(t, 400.0, s.TotalPrice())
	assert.Empty(t, s.FormMessage())
	assert.Empty(t, s.AvailabilityWarning())
	assert.True(t, s.BeginSubmit())
	assert.Equal(t, StateSubmitting, s.State())
}

func TestSession_ClashRequiresConfirmation(t *testing.T) {
	s := newTestSession(t)

	s.SetDates(mustDate(t, "2025-08-09"), mustDate(t, "2025-08-11"), 2)

	assert.Equal(t, StateClashWarned, s.State())
	assert.Contains(t, s.AvailabilityWarning(), "2025-08-10")
	assert.Equal(t, 400.0, s.TotalPrice())

	// Declining is simply not confirming: submit stays blocked, nothing moves.
	assert.False(t, s.BeginSubmit())
	assert.Equal(t, StateClashWarned, s.State())

	s.ConfirmClash()
	require.True(t, s.BeginSubmit())
	assert.Equal(t, StateSubmitting, s.State())
}

func TestSession_InvalidWindowBlocksSubmit(t *testing.T) {
	s := newTestSession(t)

	s.SetDates(mustDate(t, "2025-08-11"), mustDate(t, "2025-08-09"), 1)

	assert.Equal(t, StatePriceComputed, s.State())
	assert.Equal(t, "End date cannot be before start date.", s.FormMessage())
	assert.False(t, s.BeginSubmit())
}

func TestSession_DateEditResetsProgress(t *testing.T) {
	s := newTestSession(t)

	s.SetDates(mustDate(t, "2025-08-09"), mustDate(t, "2025-08-11"), 2)
	s.ConfirmClash()

	// Editing dates resets forward progress, including the confirmation.
	s.SetDates(mustDate(t, "2025-08-10"), mustDate(t, "2025-08-11"), 2)
	assert.Equal(t, StateClashWarned, s.State())
	assert.False(t, s.BeginSubmit())
}

func TestSession_FinishOutcomes(t *testing.T) {
	s := newTestSession(t)
	s.SetDates(mustDate(t, "2025-08-01"), mustDate(t, "2025-08-03"), 2)
	require.True(t, s.BeginSubmit())

	s.Finish(nil)
	assert.Equal(t, StateConfirmed, s.State())

	s = newTestSession(t)
	s.SetDates(mustDate(t, "2025-08-01"), mustDate(t, "2025-08-03"), 2)
	require.True(t, s.BeginSubmit())

	s.Finish(errors.New("backend rejected"))
	assert.Equal(t, StateFailed, s.State())
}

func TestSession_LateBusyFetchRecomputes(t *testing.T) {
	// While the calendar fetch is pending the busy set is empty: assume
	// available rather than blocking the form.
	s := NewSession(PriceTerm{UnitPrice: 200, Unit: UnitDay}, nil)
	s.SetDates(mustDate(t, "2025-08-09"), mustDate(t, "2025-08-11"), 2)
	assert.Equal(t, StatePriceComputed, s.State())

	s.SetBusyEvents([]BusyEvent{
		{Start: EventTime{Date: "2025-08-10"}, End: EventTime{Date: "2025-08-11"}},
	})

	assert.Equal(t, StateClashWarned, s.State())
	assert.Equal(t, []string{"2025-08-10"}, s.BusyDateStrings())
}
