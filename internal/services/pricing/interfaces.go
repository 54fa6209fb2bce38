package pricing

import (
	"context"

	"shiprate/internal/models"
)

// ZoneStore supplies the caller's zone records. Lookups that miss return
// (nil, nil).
type ZoneStore interface {
	ListByUser(userID string) ([]models.Zone, error)
}

// MethodStore resolves methods by id or by owner-scoped title.
type MethodStore interface {
	GetByID(id string) (*models.Method, error)
	GetByTitle(userID, title string) (*models.Method, error)
	ListByUser(userID string) ([]models.Method, error)
}

// SettingsSource yields the user's settings, creating or repairing them as a
// side effect of the read.
type SettingsSource interface {
	GetOrCreate(ctx context.Context, userID string) (*models.ExtensionSettings, error)
}
