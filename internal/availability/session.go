package availability

import "strings"

// SessionState is the booking-form progression:
//
//	Empty → DatesSelected → PriceComputed → (ClashWarned) → Submitting → Confirmed | Failed
//
// Editing dates from any state drops back to the recompute path.
type SessionState string

const (
	StateEmpty         SessionState = "empty"
	StateDatesSelected SessionState = "dates_selected"
	StatePriceComputed SessionState = "price_computed"
	StateClashWarned   SessionState = "clash_warned"
	StateSubmitting    SessionState = "submitting"
	StateConfirmed     SessionState = "confirmed"
	StateFailed        SessionState = "failed"
)

// Session drives one booking form: it owns the current window, the derived
// pricing and clash results, and the clash-confirmation gate. A session is
// owned by exactly one interaction flow and is not safe for concurrent use.
type Session struct {
	term           PriceTerm
	busy           BusySet
	window         Window
	state          SessionState
	pricing        PricingResult
	clash          ClashResult
	clashConfirmed bool
}

// NewSession starts an empty form for a listing's price term. busy may be
// nil while the calendar fetch is pending; an absent busy set means "assume
// available" rather than blocking the form.
func NewSession(term PriceTerm, busy BusySet) *Session {
	return &Session{term: term, busy: busy, state: StateEmpty}
}

// SetBusyEvents replaces the busy set (e.g. once the calendar fetch lands)
// and re-derives the current window's results against it.
func (s *Session) SetBusyEvents(events []BusyEvent) {
	s.busy = DeriveBusyDates(events)
	if s.state != StateEmpty {
		s.recompute()
	}
}

// SetDates installs a new window and recomputes everything from scratch.
// Any forward progress, including a given clash confirmation, is reset.
func (s *Session) SetDates(start, end Date, numGuests int) {
	s.window = Window{Start: start, End: end, NumGuests: numGuests}
	s.clashConfirmed = false
	s.recompute()
}

// recompute is a full re-derivation from current inputs; derived state is
// never patched incrementally, so rapid repeated edits stay consistent.
func (s *Session) recompute() {
	s.state = StateDatesSelected
	s.pricing = ComputePrice(s.window, s.term)
	s.clash = CheckClash(s.window, s.busy)
	s.state = StatePriceComputed
	if s.clash.HasClash {
		s.state = StateClashWarned
	}
}

// ConfirmClash records the user's explicit go-ahead over a warned clash.
// Declining is simply not calling this; nothing else changes.
func (s *Session) ConfirmClash() {
	if s.state == StateClashWarned {
		s.clashConfirmed = true
	}
}

// BeginSubmit moves the form to Submitting when the window prices valid and
// any clash has been confirmed. It reports false, leaving state untouched,
// when submission is blocked — a blocked submit is a form condition, not an
// error.
func (s *Session) BeginSubmit() bool {
	if s.state != StatePriceComputed && s.state != StateClashWarned {
		return false
	}
	if !s.pricing.Valid {
		return false
	}
	if s.clash.HasClash && !s.clashConfirmed {
		return false
	}
	s.state = StateSubmitting
	return true
}

// Finish records the outcome of the external booking-creation call.
func (s *Session) Finish(err error) {
	if s.state != StateSubmitting {
		return
	}
	if err != nil {
		s.state = StateFailed
		return
	}
	s.state = StateConfirmed
}

func (s *Session) State() SessionState    { return s.state }
func (s *Session) Window() Window         { return s.window }
func (s *Session) Pricing() PricingResult { return s.pricing }
func (s *Session) Clash() ClashResult     { return s.clash }
func (s *Session) TotalPrice() float64    { return s.pricing.TotalPrice }

// BusyDateStrings exposes the busy days as sorted canonical strings for
// display and membership testing in the form layer.
func (s *Session) BusyDateStrings() []string { return s.busy.Strings() }

// FormMessage is the user-facing validation text; empty when the form is
// submittable.
func (s *Session) FormMessage() string {
	switch {
	case s.state == StateEmpty:
		return "Please select start and end dates."
	case s.pricing.Reason == ReasonEndBeforeStart:
		return "End date cannot be before start date."
	case !s.pricing.Valid:
		return "Please ensure dates are valid for price calculation."
	}
	return ""
}

// AvailabilityWarning is the advisory clash text; empty when there is none.
func (s *Session) AvailabilityWarning() string {
	if !s.clash.HasClash {
		return ""
	}
	days := make([]string, 0, len(s.clash.ClashingDates))
	for _, d := range s.clash.ClashingDates {
		days = append(days, d.String())
	}
	return "Warning: the following date(s) in your selection are busy: " + strings.Join(days, ", ")
}
