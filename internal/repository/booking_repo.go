package repository

import (
	"context"
	"errors"

	"batoo/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Preload("Listing").First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetByListingIDs returns bookings across a set of listings, newest first.
// The owner view feeds this with IDsByOwner.
func (r *BookingRepository) GetByListingIDs(ctx context.Context, listingIDs []int64) ([]domain.Booking, error) {
	if len(listingIDs) == 0 {
		return []domain.Booking{}, nil
	}
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Where("listing_id IN ?", listingIDs).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
