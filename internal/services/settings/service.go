// Package settings resolves per-user extension settings, creating them with
// defaults on first read and repairing empty region lists.
package settings

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	"shiprate/internal/models"
	"shiprate/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCurrencyRequired = errors.New("currency is required")
	ErrInvalidAPIKey    = errors.New("invalid api key")
)

// Cache is the subset of the cache service the settings service relies on.
type Cache interface {
	GetSettings(ctx context.Context, userID string) (*models.ExtensionSettings, error)
	CacheSettings(ctx context.Context, settings *models.ExtensionSettings) error
	InvalidateSettings(ctx context.Context, userID string) error
}

type Service struct {
	store repositories.SettingsRepository
	cache Cache
}

// NewService creates a settings service. The cache is optional.
func NewService(store repositories.SettingsRepository, cache Cache) *Service {
	return &Service{store: store, cache: cache}
}

// GetOrCreate returns the user's settings, creating them with defaults on
// first access. A stored record with an empty region list is repaired to the
// default list and persisted. Concurrent create/repair writes converge to the
// same value, so the race is left unguarded.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*models.ExtensionSettings, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSettings(ctx, userID)
		if err != nil {
			log.Printf("settings cache read failed for %s: %v", userID, err)
		} else if cached != nil && len(cached.AvailableRegions) > 0 {
			return cached, nil
		}
	}

	settings, err := s.loadOrCreate(userID)
	if err != nil {
		return nil, err
	}

	s.cacheSettings(ctx, settings)
	return settings, nil
}

// loadOrCreate reads settings from the store, creating or repairing them as
// needed. It never consults the cache, so the returned record carries the
// API key hash.
func (s *Service) loadOrCreate(userID string) (*models.ExtensionSettings, error) {
	settings, err := s.store.Get(userID)
	if err != nil {
		return nil, err
	}

	switch {
	case settings == nil:
		settings = models.NewExtensionSettings(userID)
		if err := s.store.Create(settings); err != nil {
			return nil, err
		}
	case len(settings.AvailableRegions) == 0:
		regions := make(models.StringList, len(models.DefaultAvailableRegions))
		copy(regions, models.DefaultAvailableRegions)
		settings.AvailableRegions = regions
		if err := s.store.Update(settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// Update upserts the user's currency and region list.
func (s *Service) Update(ctx context.Context, userID string, data models.UpdateSettings) (*models.ExtensionSettings, error) {
	if strings.TrimSpace(data.Currency) == "" {
		return nil, ErrCurrencyRequired
	}

	settings, err := s.store.Get(userID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = models.NewExtensionSettings(userID)
		settings.Currency = data.Currency
		settings.AvailableRegions = data.AvailableRegions
		if err := s.store.Create(settings); err != nil {
			return nil, err
		}
	} else {
		settings.Currency = data.Currency
		settings.AvailableRegions = data.AvailableRegions
		if err := s.store.Update(settings); err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, userID)
	return settings, nil
}

// GenerateAPIKey issues a new storefront API key for the user and stores its
// bcrypt hash. The plaintext key is returned exactly once; generating a new
// key revokes the previous one.
func (s *Service) GenerateAPIKey(ctx context.Context, userID string) (string, error) {
	settings, err := s.loadOrCreate(userID)
	if err != nil {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	secret := hex.EncodeToString(raw)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	settings.APIKeyHash = string(hash)
	if err := s.store.Update(settings); err != nil {
		return "", err
	}
	s.invalidate(ctx, userID)

	return userID + "." + secret, nil
}

// VerifyAPIKey checks a storefront API key of the form "<userID>.<secret>"
// and returns the owning user id. The hash is read from the store, never the
// cache.
func (s *Service) VerifyAPIKey(ctx context.Context, key string) (string, error) {
	userID, secret, found := strings.Cut(key, ".")
	if !found || userID == "" || secret == "" {
		return "", ErrInvalidAPIKey
	}

	settings, err := s.store.Get(userID)
	if err != nil {
		return "", err
	}
	if settings == nil || settings.APIKeyHash == "" {
		return "", ErrInvalidAPIKey
	}

	if err := bcrypt.CompareHashAndPassword([]byte(settings.APIKeyHash), []byte(secret)); err != nil {
		return "", ErrInvalidAPIKey
	}
	return userID, nil
}

func (s *Service) cacheSettings(ctx context.Context, settings *models.ExtensionSettings) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheSettings(ctx, settings); err != nil {
		log.Printf("settings cache write failed for %s: %v", settings.UserID, err)
	}
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSettings(ctx, userID); err != nil {
		log.Printf("settings cache invalidation failed for %s: %v", userID, err)
	}
}
