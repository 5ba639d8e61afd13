package review

import (
	"context"
	"testing"

	"batoo/internal/domain"
	"batoo/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	if r != nil && args.Error(0) == nil {
		r.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Summary(ctx context.Context, listingID int64) (float64, int64, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockListingReader struct {
	mock.Mock
}

func (m *MockListingReader) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(7)).Return(&domain.Listing{ID: 7}, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReviews, mockListings)

	r, err := service.Create(context.Background(), 55, 7, CreateReviewRequest{Rating: 5, Comment: "Great trip"})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), r.ID)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, int64(55), r.UserID)
}

func TestService_Create_InvalidRating(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockListingReader))

	_, err := service.Create(context.Background(), 55, 7, CreateReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = service.Create(context.Background(), 55, 7, CreateReviewRequest{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestService_Create_ListingNotFound(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockListings := new(MockListingReader)

	mockListings.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(mockReviews, mockListings)

	_, err := service.Create(context.Background(), 55, 404, CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, ErrListingNotFound)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetSummary_RoundsAverage(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockListings := new(MockListingReader)

	mockReviews.On("Summary", mock.Anything, int64(7)).Return(4.333333, int64(3), nil)

	service := NewService(mockReviews, mockListings)

	summary, err := service.GetSummary(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 4.3, summary.AverageRating)
	assert.Equal(t, int64(3), summary.ReviewCount)
}

func TestService_GetSummary_NoReviews(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockListings := new(MockListingReader)

	mockReviews.On("Summary", mock.Anything, int64(7)).Return(0.0, int64(0), nil)

	service := NewService(mockReviews, mockListings)

	summary, err := service.GetSummary(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.AverageRating)
	assert.Equal(t, int64(0), summary.ReviewCount)
}
