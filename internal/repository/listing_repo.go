package repository

import (
	"context"
	"errors"
	"strings"

	"batoo/internal/domain"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// Update persists changes to an owner's listing. The owner_id predicate is
// the write-side ownership check: updating someone else's listing matches
// zero rows.
func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("id = ? AND owner_id = ?", l.ID, l.OwnerID).
		Updates(map[string]any{
			"name":               l.Name,
			"type":               l.Type,
			"description":        l.Description,
			"price":              l.Price,
			"price_per_unit":     l.PricePerUnit,
			"location":           l.Location,
			"image_url":          l.ImageURL,
			"available":          l.Available,
			"google_calendar_id": l.GoogleCalendarID,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Listing{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.WithContext(ctx).First(&l, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

// IDsByOwner returns just the listing IDs for an owner; the owner-bookings
// view filters bookings through this list.
func (r *ListingRepository) IDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

// Search matches the term against name or description, case-insensitively.
// LOWER/LIKE keeps the query portable between postgres and sqlite.
func (r *ListingRepository) Search(ctx context.Context, term string, limit, offset int) ([]domain.Listing, error) {
	var listings []domain.Listing
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	return listings, err
}
