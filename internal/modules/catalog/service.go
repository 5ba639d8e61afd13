package catalog

import (
	"context"
	"errors"
	"fmt"

	"batoo/internal/availability"
	"batoo/internal/domain"
	"batoo/internal/pkg/validator"
	"batoo/internal/repository"
)

type Service struct {
	listings ListingRepository
}

func NewService(listings ListingRepository) *Service {
	return &Service{listings: listings}
}

// Search lists the catalog, optionally filtered by a free-text term matched
// against name and description. An empty term returns everything.
func (s *Service) Search(ctx context.Context, term string, limit, offset int) ([]domain.Listing, error) {
	return s.listings.Search(ctx, term, limit, offset)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *Service) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	return s.listings.GetByOwner(ctx, ownerID)
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateListingRequest) (*domain.Listing, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}
	if err := checkType(req.Type); err != nil {
		return nil, err
	}

	l := &domain.Listing{
		OwnerID:          ownerID,
		Name:             req.Name,
		Type:             domain.ListingType(req.Type),
		Description:      req.Description,
		Price:            req.Price,
		PricePerUnit:     unitOrDefault(req.PricePerUnit),
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		Available:        true,
		GoogleCalendarID: req.GoogleCalendarID,
	}
	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, ownerID, listingID int64, req UpdateListingRequest) (*domain.Listing, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, validationError(errs)
	}
	if err := checkType(req.Type); err != nil {
		return nil, err
	}

	l := &domain.Listing{
		ID:               listingID,
		OwnerID:          ownerID,
		Name:             req.Name,
		Type:             domain.ListingType(req.Type),
		Description:      req.Description,
		Price:            req.Price,
		PricePerUnit:     unitOrDefault(req.PricePerUnit),
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		Available:        req.Available,
		GoogleCalendarID: req.GoogleCalendarID,
	}

	updated, err := s.listings.Update(ctx, l)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Zero rows matched: either the listing does not exist or it belongs
		// to someone else. Resolve which for a precise error.
		if _, err := s.listings.GetByID(ctx, listingID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, ErrForbidden
	}

	return s.GetByID(ctx, listingID)
}

func (s *Service) Delete(ctx context.Context, ownerID, listingID int64) error {
	deleted, err := s.listings.Delete(ctx, listingID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		if _, err := s.listings.GetByID(ctx, listingID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return ErrForbidden
	}
	return nil
}

func checkType(t string) error {
	for _, valid := range domain.ValidListingTypes() {
		if domain.ListingType(t) == valid {
			return nil
		}
	}
	return ErrInvalidType
}

// unitOrDefault keeps the billing unit meaningful: without an explicit unit a
// listing prices per day, which is also what grants same-day bookings.
func unitOrDefault(unit string) string {
	if unit == "" {
		return availability.UnitDay
	}
	return unit
}

// ValidationError carries the per-field messages from the struct validator.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func validationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}
