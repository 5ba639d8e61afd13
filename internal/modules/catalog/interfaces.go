package catalog

import (
	"context"

	"batoo/internal/domain"
)

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	Update(ctx context.Context, l *domain.Listing) (bool, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Listing, error)
	Search(ctx context.Context, term string, limit, offset int) ([]domain.Listing, error)
}
