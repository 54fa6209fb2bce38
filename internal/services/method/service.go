// Package method manages shipping methods: percentage fee modifiers
// optionally restricted to a subset of the owner's zones.
package method

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
	ErrNotFound           = errors.New("method not found")
	ErrNotOwned           = errors.New("method not owned by user")
	ErrTitleRequired      = errors.New("title is required")
	ErrNegativePercentage = errors.New("cost_percentage must be zero or greater")
	ErrInvalidRegion      = errors.New("invalid region")
)

type Service struct {
	methods repositories.MethodRepository
	zones   repositories.ZoneRepository
}

func NewService(methods repositories.MethodRepository, zones repositories.ZoneRepository) *Service {
	return &Service{methods: methods, zones: zones}
}

// Create validates and stores a new method. Every entry in Regions must be
// the id of a zone the caller owns. Titles are not required to be unique;
// by-title lookups resolve to the oldest match.
func (s *Service) Create(ctx context.Context, userID string, data models.CreateMethod) (*models.Method, error) {
	if err := s.validate(userID, data); err != nil {
		return nil, err
	}

	method := &models.Method{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          data.Title,
		CostPercentage: data.CostPercentage,
		Regions:        data.Regions,
	}
	if err := s.methods.Create(method); err != nil {
		return nil, err
	}
	return method, nil
}

// Update applies the client-mutable fields to a loaded method after an
// ownership check.
func (s *Service) Update(ctx context.Context, userID, id string, data models.CreateMethod) (*models.Method, error) {
	method, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(userID, data); err != nil {
		return nil, err
	}

	method.Title = data.Title
	method.CostPercentage = data.CostPercentage
	method.Regions = data.Regions
	if err := s.methods.Update(method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*models.Method, error) {
	return s.getOwned(userID, id)
}

func (s *Service) List(ctx context.Context, userID string, p *pagination.Pagination) ([]models.Method, error) {
	return s.methods.ListPaginated(userID, p)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(userID, id); err != nil {
		return err
	}
	return s.methods.Delete(userID, id)
}

func (s *Service) getOwned(userID, id string) (*models.Method, error) {
	method, err := s.methods.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrNotFound
	}
	if method.UserID != userID {
		return nil, ErrNotOwned
	}
	return method, nil
}

func (s *Service) validate(userID string, data models.CreateMethod) error {
	if strings.TrimSpace(data.Title) == "" {
		return ErrTitleRequired
	}
	if data.CostPercentage < 0 {
		return ErrNegativePercentage
	}
	if len(data.Regions) == 0 {
		return nil
	}

	zones, err := s.zones.ListByUser(userID)
	if err != nil {
		return err
	}
	owned := make(map[string]bool, len(zones))
	for _, z := range zones {
		owned[z.ID] = true
	}
	for _, id := range data.Regions {
		if !owned[id] {
			return ErrInvalidRegion
		}
	}
	return nil
}
