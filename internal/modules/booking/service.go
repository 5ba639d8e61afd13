package booking

import (
	"context"
	"errors"
	"fmt"
	"log"

	"batoo/internal/availability"
	"batoo/internal/domain"
	"batoo/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings BookingRepository
	listings ListingRepository
	cal      CalendarClient
}

// NewService wires the booking flow. cal may be nil when the calendar
// integration is disabled; every listing is then assumed available.
func NewService(bookings BookingRepository, listings ListingRepository, cal CalendarClient) *Service {
	return &Service{bookings: bookings, listings: listings, cal: cal}
}

// Quote prices a window against a listing and reports busy-date clashes. It
// never persists anything, so it is safe to call on every date edit.
func (s *Service) Quote(ctx context.Context, listingID int64, startDate, endDate string, numGuests int) (*QuoteResponse, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	start, end, err := parseWindow(startDate, endDate)
	if err != nil {
		return nil, ErrValidation
	}

	sess := availability.NewSession(priceTerm(l), s.busySetFor(ctx, l))
	sess.SetDates(start, end, numGuests)

	pricing := sess.Pricing()
	clash := sess.Clash()

	resp := &QuoteResponse{
		ListingID:           l.ID,
		StartDate:           start.String(),
		EndDate:             end.String(),
		Nights:              pricing.Nights,
		TotalPrice:          pricing.TotalPrice,
		Valid:               pricing.Valid,
		FormMessage:         sess.FormMessage(),
		HasClash:            clash.HasClash,
		AvailabilityWarning: sess.AvailabilityWarning(),
		BusyDates:           sess.BusyDateStrings(),
	}
	for _, d := range clash.ClashingDates {
		resp.ClashingDates = append(resp.ClashingDates, d.String())
	}
	return resp, nil
}

// CreateBooking runs the full submission flow: price the window, gate on the
// clash confirmation, persist the booking as confirmed and record it back to
// the listing's calendar.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	l, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !l.Available {
		return nil, ErrUnavailable
	}

	start, end, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}

	sess := availability.NewSession(priceTerm(l), s.busySetFor(ctx, l))
	sess.SetDates(start, end, req.NumGuests)

	if sess.Clash().HasClash {
		if !req.ConfirmClash {
			return nil, ErrClashUnconfirmed
		}
		sess.ConfirmClash()
	}
	if !sess.BeginSubmit() {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		ListingID:  l.ID,
		UserID:     userID,
		StartDate:  start.String(),
		EndDate:    end.String(),
		TotalPrice: sess.TotalPrice(),
		NumGuests:  req.NumGuests,
		Status:     domain.BookingConfirmed,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		sess.Finish(err)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, ErrOverlap
		}
		return nil, err
	}
	sess.Finish(nil)

	s.recordOnCalendar(ctx, l, b, start, end)

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetByUser(ctx, userID)
}

// GetOwnerBookings returns the bookings made against any of the owner's
// listings.
func (s *Service) GetOwnerBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	ids, err := s.listings.IDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.bookings.GetByListingIDs(ctx, ids)
}

// busySetFor fetches the listing's calendar and derives its busy days. Any
// failure degrades to an empty set: stale availability data must not block
// quoting or booking.
func (s *Service) busySetFor(ctx context.Context, l *domain.Listing) availability.BusySet {
	if s.cal == nil {
		return availability.BusySet{}
	}
	events, err := s.cal.ListBusyEvents(ctx, l.GoogleCalendarID)
	if err != nil {
		log.Printf("calendar fetch failed for listing %d: %v; assuming available", l.ID, err)
		return availability.BusySet{}
	}
	return availability.DeriveBusyDates(events)
}

// recordOnCalendar writes the confirmed booking back as an all-day event.
// Best-effort: the booking stands even if the calendar write fails.
func (s *Service) recordOnCalendar(ctx context.Context, l *domain.Listing, b *domain.Booking, start, end availability.Date) {
	if s.cal == nil {
		return
	}
	summary := fmt.Sprintf("Booking for %s", l.Name)
	description := fmt.Sprintf("Guests: %d. Booking ID: %d.", b.NumGuests, b.ID)
	if _, err := s.cal.CreateBookingEvent(ctx, l.GoogleCalendarID, summary, description, l.Location, start, end); err != nil {
		log.Printf("calendar record failed for booking %d: %v", b.ID, err)
	}
}

func parseWindow(startDate, endDate string) (availability.Date, availability.Date, error) {
	start, err := availability.ParseDate(startDate)
	if err != nil {
		return availability.Date{}, availability.Date{}, err
	}
	end, err := availability.ParseDate(endDate)
	if err != nil {
		return availability.Date{}, availability.Date{}, err
	}
	return start, end, nil
}

func priceTerm(l *domain.Listing) availability.PriceTerm {
	return availability.PriceTerm{UnitPrice: l.Price, Unit: l.PricePerUnit}
}
