package catalog

type CreateListingRequest struct {
	Name             string  `json:"name" validate:"required,min=2"`
	Type             string  `json:"type" validate:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	PricePerUnit     string  `json:"price_per_unit"`
	Location         string  `json:"location"`
	ImageURL         string  `json:"image_url" validate:"omitempty,url"`
	GoogleCalendarID string  `json:"google_calendar_id"`
}

// UpdateListingRequest is a full replacement of the listing's editable
// fields.
type UpdateListingRequest struct {
	Name             string  `json:"name" validate:"required,min=2"`
	Type             string  `json:"type" validate:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	PricePerUnit     string  `json:"price_per_unit"`
	Location         string  `json:"location"`
	ImageURL         string  `json:"image_url" validate:"omitempty,url"`
	Available        bool    `json:"available"`
	GoogleCalendarID string  `json:"google_calendar_id"`
}
