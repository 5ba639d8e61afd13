package availability

import "math"

// UnitDay is the billing unit under which a same-day window still counts as
// a bookable single-day stay.
const UnitDay = "day"

// Machine-readable invalidity reasons, surfaced to users by the form layer.
const (
	ReasonEndBeforeStart = "end before start"
	ReasonInvalidDates   = "ensure dates are valid"
)

// Window is a proposed booking: a date range (both ends inclusive) and a
// guest count. Created per user interaction and discarded.
type Window struct {
	Start     Date
	End       Date
	NumGuests int
}

// PriceTerm is a listing's pricing rule, immutable for the duration of one
// computation.
type PriceTerm struct {
	UnitPrice float64
	Unit      string
}

// PricingResult is the outcome of ComputePrice. Valid gates submission;
// Reason is set only when Valid is false.
type PricingResult struct {
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
	Valid      bool    `json:"valid"`
	Reason     string  `json:"reason,omitempty"`
}

// ComputePrice prices the window against the term using calendar-day
// arithmetic, never wall-clock hours.
//
// A same-day window under the "day" unit is a single-day booking charged at
// one unit price; Nights reports 1 so the count matches the charge. A
// same-day window under any other unit is invalid.
func ComputePrice(w Window, term PriceTerm) PricingResult {
	switch {
	case w.End.Before(w.Start):
		return PricingResult{Reason: ReasonEndBeforeStart}

	case w.End.Equal(w.Start) && term.Unit == UnitDay:
		return PricingResult{Nights: 1, TotalPrice: round2(term.UnitPrice), Valid: true}

	case w.End.After(w.Start):
		nights := DaysBetween(w.Start, w.End)
		total := round2(float64(nights) * term.UnitPrice)
		if total <= 0 {
			return PricingResult{Nights: nights, Reason: ReasonInvalidDates}
		}
		return PricingResult{Nights: nights, TotalPrice: total, Valid: true}

	default:
		return PricingResult{Reason: ReasonInvalidDates}
	}
}

// ClashResult reports the overlap between a window and the busy set.
type ClashResult struct {
	HasClash      bool
	ClashingDates []Date
}

// CheckClash tests every day of the window against the busy set and collects
// the matches in ascending order. The window expands inclusive on both ends:
// it names literal stay nights, not provider event bounds, so the
// exclusive-end adjustment of DeriveBusyDates does not apply here.
//
// A clash is advisory, not blocking — calendar data may be stale, or the
// overlap intentional. The caller decides whether to proceed.
func CheckClash(w Window, busy BusySet) ClashResult {
	var clashing []Date
	for _, d := range ExpandRange(w.Start, w.End) {
		if busy.Contains(d) {
			clashing = append(clashing, d)
		}
	}
	return ClashResult{HasClash: len(clashing) > 0, ClashingDates: clashing}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
