package booking

import (
	"context"
	"errors"
	"testing"

	"batoo/internal/availability"
	"batoo/internal/domain"
	"batoo/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByListingIDs(ctx context.Context, listingIDs []int64) ([]domain.Booking, error) {
	args := m.Called(ctx, listingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockCalendarClient struct {
	mock.Mock
}

func (m *MockCalendarClient) ListBusyEvents(ctx context.Context, calendarID string) ([]availability.BusyEvent, error) {
	args := m.Called(ctx, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.BusyEvent), args.Error(1)
}

func (m *MockCalendarClient) CreateBookingEvent(ctx context.Context, calendarID, summary, description, location string, start, end availability.Date) (string, error) {
	args := m.Called(ctx, calendarID, summary, description, location, start, end)
	return args.String(0), args.Error(1)
}

func yachtListing() *domain.Listing {
	return &domain.Listing{
		ID:               7,
		OwnerID:          1,
		Name:             "Sunset Pearl",
		Type:             domain.ListingYacht,
		Price:            200,
		PricePerUnit:     "day",
		Location:         "Marina Bay",
		Available:        true,
		GoogleCalendarID: "cal-7",
	}
}

// One all-day event 2025-08-10 .. 2025-08-11 exclusive: exactly 2025-08-10 busy.
func busyAug10() []availability.BusyEvent {
	return []availability.BusyEvent{
		{
			ID:      "evt-1",
			Summary: "Charter",
			Start:   availability.EventTime{Date: "2025-08-10"},
			End:     availability.EventTime{Date: "2025-08-11"},
		},
	}
}

func TestService_Quote_WithClash(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)
	mockCal := new(MockCalendarClient)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(yachtListing(), nil)
	mockCal.On("ListBusyEvents", mock.Anything, "cal-7").Return(busyAug10(), nil)

	service := NewService(mockBookings, mockListings, mockCal)

	quote, err := service.Quote(context.Background(), 7, "2025-08-09", "2025-08-11", 4)

	assert.NoError(t, err)
	assert.True(t, quote.Valid)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 400.0, quote.TotalPrice)
	assert.True(t, quote.HasClash)
	assert.Equal(t, []string{"2025-08-10"}, quote.ClashingDates)
	assert.Contains(t, quote.AvailabilityWarning, "2025-08-10")
	assert.Equal(t, []string{"2025-08-10"}, quote.BusyDates)
}

func TestService_Quote_ListingNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	mockListings.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

	service := NewService(mockBookings, mockListings, nil)

	_, err := service.Quote(context.Background(), 42, "2025-08-09", "2025-08-11", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Quote_EndBeforeStart(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(yachtListing(), nil)

	service := NewService(mockBookings, mockListings, nil)

	quote, err := service.Quote(context.Background(), 7, "2025-08-11", "2025-08-09", 2)

	assert.NoError(t, err)
	assert.False(t, quote.Valid)
	assert.Equal(t, "End date cannot be before start date.", quote.FormMessage)
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)
	mockCal := new(MockCalendarClient)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(yachtListing(), nil)
	mockCal.On("ListBusyEvents", mock.Anything, "cal-7").Return([]availability.BusyEvent{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockCal.On("CreateBookingEvent", mock.Anything, "cal-7", "Booking for Sunset Pearl", mock.Anything, "Marina Bay", mock.Anything, mock.Anything).
		Return("https://calendar.example/evt", nil)

	service := NewService(mockBookings, mockListings, mockCal)

	req := CreateBookingRequest{
		ListingID: 7,
		StartDate: "2025-08-09",
		EndDate:   "2025-08-11",
		NumGuests: 4,
	}
	b, err := service.CreateBooking(context.Background(), 55, req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 400.0, b.TotalPrice)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, "2025-08-09", b.StartDate)
	assert.Equal(t, "2025-08-11", b.EndDate)
	mockCal.AssertExpectations(t)
}

func TestService_CreateBooking_ClashRequiresConfirmation(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)
	mockCal := new(MockCalendarClient)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(yachtListing(), nil)
	mockCal.On("ListBusyEvents", mock.Anything, "cal-7").Return(busyAug10(), nil)

	service := NewService(mockBookings, mockListings, mockCal)

	req := CreateBookingRequest{
		ListingID: 7,
		StartDate: "2025-08-09",
		EndDate:   "2025-08-11",
		NumGuests: 4,
	}
	_, err := service.CreateBooking(context.Background(), 55, req)

	assert.ErrorIs(t, err, ErrClashUnconfirmed)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_ConfirmedClashProceeds(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)
	mockCal := new(MockCalendarClient)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(yachtListing(), nil)
	mockCal.On("ListBusyEvents", mock.Anything, "cal-7").Return(busyAug10(), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockCal.On("CreateBookingEvent", mock.Anything, "cal-7", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://calendar.example/evt", nil)

	service := NewService(mockBookings, mockListings, mockCal)

	req := CreateBookingRequest{
		ListingID:    7,
		StartDate:    "2025-08-09",
		EndDate:      "2025-08-11",
		NumGuests:    4,
		ConfirmClash: true,
	}
	b, err := service.CreateBooking(context.Background(), 55, req)

	assert.NoError(t, err)
	assert.Equal(t, 400.0, b.TotalPrice)
}

func TestService_CreateBooking_EndBeforeStart(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(yachtListing(), nil)

	service := NewService(mockBookings, mockListings, nil)

	req := CreateBookingRequest{
		ListingID: 7,
		StartDate: "2025-08-11",
		EndDate:   "2025-08-09",
		NumGuests: 2,
	}
	_, err := service.CreateBooking(context.Background(), 55, req)

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_ListingUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	l := yachtListing()
	l.Available = false
	mockListings.On("GetByID", mock.Anything, int64(7)).Return(l, nil)

	service := NewService(mockBookings, mockListings, nil)

	req := CreateBookingRequest{
		ListingID: 7,
		StartDate: "2025-08-09",
		EndDate:   "2025-08-11",
		NumGuests: 2,
	}
	_, err := service.CreateBooking(context.Background(), 55, req)
	assert.ErrorIs(t, err, ErrUnavailable)
}

// Calendar fetch failure must degrade to "assume available", never block.
func TestService_CreateBooking_CalendarFetchFails(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)
	mockCal := new(MockCalendarClient)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(yachtListing(), nil)
	mockCal.On("ListBusyEvents", mock.Anything, "cal-7").Return(nil, errors.New("calendar unreachable"))
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockCal.On("CreateBookingEvent", mock.Anything, "cal-7", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("calendar unreachable"))

	service := NewService(mockBookings, mockListings, mockCal)

	req := CreateBookingRequest{
		ListingID: 7,
		StartDate: "2025-08-09",
		EndDate:   "2025-08-11",
		NumGuests: 4,
	}
	b, err := service.CreateBooking(context.Background(), 55, req)

	assert.NoError(t, err)
	assert.Equal(t, 400.0, b.TotalPrice)
}

func TestService_GetOwnerBookings(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	mockListings.On("IDsByOwner", mock.Anything, int64(1)).Return([]int64{7, 8}, nil)
	mockBookings.On("GetByListingIDs", mock.Anything, []int64{7, 8}).Return([]domain.Booking{
		{ID: 1, ListingID: 7}, {ID: 2, ListingID: 8},
	}, nil)

	service := NewService(mockBookings, mockListings, nil)

	bookings, err := service.GetOwnerBookings(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestService_GetOwnerBookings_NoListings(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockListings := new(MockListingRepository)

	mockListings.On("IDsByOwner", mock.Anything, int64(9)).Return([]int64{}, nil)
	mockBookings.On("GetByListingIDs", mock.Anything, []int64{}).Return([]domain.Booking{}, nil)

	service := NewService(mockBookings, mockListings, nil)

	bookings, err := service.GetOwnerBookings(context.Background(), 9)

	assert.NoError(t, err)
	assert.Empty(t, bookings)
}
