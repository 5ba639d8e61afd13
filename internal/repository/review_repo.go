package repository

import (
	"context"

	"batoo/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) GetByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// Summary returns the average rating and review count for a listing; a
// listing with no reviews averages zero.
func (r *ReviewRepository) Summary(ctx context.Context, listingID int64) (avg float64, count int64, err error) {
	row := struct {
		Avg   float64
		Count int64
	}{}
	err = r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS count").
		Where("listing_id = ?", listingID).
		Scan(&row).Error
	return row.Avg, row.Count, err
}
