package review

import (
	"context"

	"batoo/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByListing(ctx context.Context, listingID int64) ([]domain.Review, error)
	Summary(ctx context.Context, listingID int64) (avg float64, count int64, err error)
}

type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
