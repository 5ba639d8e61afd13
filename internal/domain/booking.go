package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking covers the stay [StartDate, EndDate], both days inclusive. The
// date columns hold canonical "YYYY-MM-DD" strings so they compare and sort
// as calendar days with no timezone component.
type Booking struct {
	ID         int64         `json:"id"`
	ListingID  int64         `json:"listing_id"`
	UserID     int64         `json:"user_id"`
	StartDate  string        `json:"start_date" gorm:"type:date"`
	EndDate    string        `json:"end_date" gorm:"type:date"`
	TotalPrice float64       `json:"total_price"`
	NumGuests  int           `json:"num_guests"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}

func (Booking) TableName() string { return "bookings" }
