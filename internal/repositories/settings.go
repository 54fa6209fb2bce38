package repositories

import (
	"errors"

	"shiprate/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository provides access to per-user extension settings.
// Get returns (nil, nil) when no record exists.
type SettingsRepository interface {
	Get(userID string) (*models.ExtensionSettings, error)
	Create(settings *models.ExtensionSettings) error
	Update(settings *models.ExtensionSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(userID string) (*models.ExtensionSettings, error) {
	var settings models.ExtensionSettings
	err := r.db.Where("id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Create(settings *models.ExtensionSettings) error {
	return r.db.Create(settings).Error
}

func (r *settingsRepository) Update(settings *models.ExtensionSettings) error {
	return r.db.Save(settings).Error
}
