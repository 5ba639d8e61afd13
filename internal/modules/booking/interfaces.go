package booking

import (
	"context"

	"batoo/internal/availability"
	"batoo/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetByListingIDs(ctx context.Context, listingIDs []int64) ([]domain.Booking, error)
}

type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

// CalendarClient is the external calendar collaborator. Both calls are
// best-effort from the booking flow's point of view: a failed fetch means an
// empty busy set, a failed insert never fails the booking.
type CalendarClient interface {
	ListBusyEvents(ctx context.Context, calendarID string) ([]availability.BusyEvent, error)
	CreateBookingEvent(ctx context.Context, calendarID, summary, description, location string, start, end availability.Date) (string, error)
}
