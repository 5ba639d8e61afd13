package review

import (
	"context"
	"errors"
	"math"

	"batoo/internal/domain"
	"batoo/internal/repository"
)

type Service struct {
	reviews  ReviewRepository
	listings ListingReader
}

func NewService(reviews ReviewRepository, listings ListingReader) *Service {
	return &Service{reviews: reviews, listings: listings}
}

func (s *Service) Create(ctx context.Context, userID, listingID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	r := &domain.Review{
		ListingID: listingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return s.reviews.GetByListing(ctx, listingID)
}

// GetSummary returns the average rating (rounded to one decimal place) and
// count for a listing. A listing without reviews summarizes to zero values.
func (s *Service) GetSummary(ctx context.Context, listingID int64) (*Summary, error) {
	avg, count, err := s.reviews.Summary(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		ListingID:     listingID,
		AverageRating: math.Round(avg*10) / 10,
		ReviewCount:   count,
	}, nil
}
