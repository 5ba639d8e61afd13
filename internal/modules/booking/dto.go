package booking

type CreateBookingRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	NumGuests int    `json:"num_guests" binding:"required,min=1"`

	// ConfirmClash is the explicit user go-ahead when the quote warned about
	// busy days. Without it a clashing request is rejected, with it the
	// booking proceeds (calendar data may be stale, or the overlap
	// intentional).
	ConfirmClash bool `json:"confirm_clash"`
}

// QuoteResponse mirrors what the booking form needs to render: price,
// validation text, the advisory clash warning and the busy days themselves.
type QuoteResponse struct {
	ListingID           int64    `json:"listing_id"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	Nights              int      `json:"nights"`
	TotalPrice          float64  `json:"total_price"`
	Valid               bool     `json:"valid"`
	FormMessage         string   `json:"form_message,omitempty"`
	HasClash            bool     `json:"has_clash"`
	ClashingDates       []string `json:"clashing_dates,omitempty"`
	AvailabilityWarning string   `json:"availability_warning,omitempty"`
	BusyDates           []string `json:"busy_dates,omitempty"`
}
