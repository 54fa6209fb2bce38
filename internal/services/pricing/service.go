// Package pricing computes shipping quotes. It is stateless: every
// calculation is an independent sequence of store reads followed by pure
// arithmetic, with the settings read possibly triggering a self-heal write.
package pricing

import (
	"context"
	"sort"

	"shiprate/internal/models"
)

type Service struct {
	zones    ZoneStore
	methods  MethodStore
	settings SettingsSource
}

func NewService(zones ZoneStore, methods MethodStore, settings SettingsSource) *Service {
	return &Service{
		zones:    zones,
		methods:  methods,
		settings: settings,
	}
}

// CalculatePrice computes a quote for shipping a parcel of the given weight
// (grams) to a region, optionally through a method referenced by id or exact
// title. Every failure is a *ValidationError; checks run in a fixed order and
// the first failure wins.
func (s *Service) CalculatePrice(ctx context.Context, userID, region string, weight int, method string) (*models.PriceQuote, error) {
	if weight < 0 {
		return nil, ErrNegativeWeight
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !settings.AvailableRegions.Contains(region) {
		return nil, ErrRegionUnavailable
	}

	zones, err := s.zones.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	zone := cheapestMatch(zones, region)
	if zone == nil {
		return nil, ErrNoMatchingZone
	}

	basePrice := zone.Price
	if zone.HasSurcharge() && weight > *zone.WeightThreshold {
		basePrice += float64(weight-*zone.WeightThreshold) * *zone.PricePerGram
	}

	var resolved *models.Method
	if method != "" {
		resolved, err = s.resolveMethod(userID, region, zone.ID, method)
		if err != nil {
			return nil, err
		}
	}

	costPercentage := 0.0
	if resolved != nil {
		costPercentage = resolved.CostPercentage
	}
	methodFee := basePrice * costPercentage / 100
	finalPrice := basePrice + methodFee

	// Each amount is rounded from its raw value, not derived from the
	// other rounded amounts.
	quote := &models.PriceQuote{
		ZoneID:         zone.ID,
		ZoneName:       zone.Name,
		Region:         region,
		ZoneRegions:    zone.Regions,
		Weight:         weight,
		BasePrice:      roundPrice(basePrice, settings.Currency),
		CostPercentage: costPercentage,
		MethodFee:      roundPrice(methodFee, settings.Currency),
		FinalPrice:     roundPrice(finalPrice, settings.Currency),
		Currency:       settings.Currency,
	}
	quote.FiatPrice = quote.FinalPrice
	if resolved != nil {
		quote.MethodID = &resolved.ID
		quote.MethodTitle = &resolved.Title
	}
	return quote, nil
}

// AvailableRegions bundles the user's offered regions with their methods and
// zones, for storefronts rendering shipping options.
func (s *Service) AvailableRegions(ctx context.Context, userID string) (*models.AvailableRegionsResponse, error) {
	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	methods, err := s.methods.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	zones, err := s.zones.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &models.AvailableRegionsResponse{
		AvailableRegions: settings.AvailableRegions,
		Methods:          methods,
		Regions:          zones,
	}, nil
}

// cheapestMatch returns the matching zone with the lowest price. Ties are
// broken by creation time, then id, so selection is deterministic regardless
// of store return order.
func cheapestMatch(zones []models.Zone, region string) *models.Zone {
	var matching []models.Zone
	for _, z := range zones {
		if z.Regions.Contains(region) {
			matching = append(matching, z)
		}
	}
	if len(matching) == 0 {
		return nil
	}

	sort.Slice(matching, func(i, j int) bool {
		a, b := matching[i], matching[j]
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return &matching[0]
}

// resolveMethod tries the reference as a method id first, then as an exact
// title scoped to the user. A method owned by someone else is reported as
// missing, not forbidden, so callers cannot probe for foreign methods.
// A non-empty restriction list is satisfied by the selected zone's id or the
// requested region name; once the referenced zone is gone the method simply
// stops applying.
func (s *Service) resolveMethod(userID, region, zoneID, ref string) (*models.Method, error) {
	method, err := s.methods.GetByID(ref)
	if err != nil {
		return nil, err
	}
	if method == nil {
		method, err = s.methods.GetByTitle(userID, ref)
		if err != nil {
			return nil, err
		}
	}
	if method == nil || method.UserID != userID {
		return nil, ErrMethodNotFound
	}
	if len(method.Regions) > 0 && !method.Regions.Contains(zoneID) && !method.Regions.Contains(region) {
		return nil, ErrMethodRegionMismatch
	}
	return method, nil
}
