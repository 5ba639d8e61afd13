package domain

import "time"

type ListingType string

const (
	ListingYacht      ListingType = "yacht"
	ListingJetski     ListingType = "jetski"
	ListingExperience ListingType = "experience"
)

func ValidListingTypes() []ListingType {
	return []ListingType{ListingYacht, ListingJetski, ListingExperience}
}

// Listing is a bookable offer. PricePerUnit is the billing unit ("day" gives
// single-day bookings their special pricing); GoogleCalendarID points at the
// external calendar that holds the listing's busy events, empty when the
// owner has not connected one.
type Listing struct {
	ID               int64       `json:"id"`
	OwnerID          int64       `json:"owner_id"`
	Name             string      `json:"name" validate:"required"`
	Type             ListingType `json:"type"`
	Description      string      `json:"description"`
	Price            float64     `json:"price" validate:"gte=0"`
	PricePerUnit     string      `json:"price_per_unit"`
	Location         string      `json:"location"`
	ImageURL         string      `json:"image_url,omitempty"`
	Available        bool        `json:"available"`
	GoogleCalendarID string      `json:"google_calendar_id,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func (Listing) TableName() string { return "listings" }
