// Package zone manages shipping zones: owner-scoped price rules covering one
// or more named regions.
package zone

import (
	"context"
	"errors"
	"strings"

	"shiprate/internal/models"
	"shiprate/internal/repositories"
	"shiprate/internal/utils/pagination"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("zone not found")
	ErrNameRequired     = errors.New("name is required")
	ErrRegionsRequired  = errors.New("at least one region is required")
	ErrNegativePrice    = errors.New("price must be zero or greater")
	ErrPartialSurcharge = errors.New("weight_threshold and price_per_g must be set together")
	ErrRegionAssigned   = errors.New("region already assigned")
)

type Service struct {
	zones repositories.ZoneRepository
}

func NewService(zones repositories.ZoneRepository) *Service {
	return &Service{zones: zones}
}

// Create validates and stores a new zone. Every requested region must be
// uncovered by the caller's other zones: one rule per region per user.
func (s *Service) Create(ctx context.Context, userID string, data models.CreateZone) (*models.Zone, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(userID, "", data.Regions); err != nil {
		return nil, err
	}

	zone := &models.Zone{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            data.Name,
		Regions:         data.Regions,
		Price:           data.Price,
		WeightThreshold: data.WeightThreshold,
		PricePerGram:    data.PricePerGram,
	}
	if err := s.zones.Create(zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// Update applies the client-mutable fields to a loaded, owned zone. Identity
// and creation time are preserved.
func (s *Service) Update(ctx context.Context, userID, id string, data models.CreateZone) (*models.Zone, error) {
	zone, err := s.zones.GetOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, ErrNotFound
	}

	if err := validate(data); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(userID, id, data.Regions); err != nil {
		return nil, err
	}

	zone.Name = data.Name
	zone.Regions = data.Regions
	zone.Price = data.Price
	zone.WeightThreshold = data.WeightThreshold
	zone.PricePerGram = data.PricePerGram
	if err := s.zones.Update(zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*models.Zone, error) {
	zone, err := s.zones.GetOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, ErrNotFound
	}
	return zone, nil
}

func (s *Service) List(ctx context.Context, userID string, p *pagination.Pagination) ([]models.Zone, error) {
	return s.zones.ListPaginated(userID, p)
}

// Delete removes an owned zone. Deleting a zone never cascades to methods
// that restrict to it; their orphaned ids simply stop matching at quote time.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.zones.Delete(userID, id)
}

func validate(data models.CreateZone) error {
	if strings.TrimSpace(data.Name) == "" {
		return ErrNameRequired
	}
	if len(data.Regions) == 0 {
		return ErrRegionsRequired
	}
	if data.Price < 0 {
		return ErrNegativePrice
	}
	if (data.WeightThreshold == nil) != (data.PricePerGram == nil) {
		return ErrPartialSurcharge
	}
	return nil
}

// checkOverlap rejects regions already covered by another of the user's
// zones. excludeID skips the zone being updated.
func (s *Service) checkOverlap(userID, excludeID string, regions models.StringList) error {
	existing, err := s.zones.ListByUser(userID)
	if err != nil {
		return err
	}
	for _, z := range existing {
		if z.ID == excludeID {
			continue
		}
		if z.Regions.Overlaps(regions) {
			return ErrRegionAssigned
		}
	}
	return nil
}
