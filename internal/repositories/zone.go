package repositories

import (
	"errors"

	"shiprate/internal/models"
	"shiprate/internal/utils/pagination"

	"gorm.io/gorm"
)

// ZoneRepository provides access to shipping zone records. Lookups that miss
// return (nil, nil); callers decide whether absence is an error.
type ZoneRepository interface {
	Create(zone *models.Zone) error
	GetOwned(userID, id string) (*models.Zone, error)
	ListByUser(userID string) ([]models.Zone, error)
	ListPaginated(userID string, p *pagination.Pagination) ([]models.Zone, error)
	Update(zone *models.Zone) error
	Delete(userID, id string) error
}

var zoneSortColumns = map[string]bool{
	"name":             true,
	"price":            true,
	"weight_threshold": true,
	"price_per_g":      true,
	"created_at":       true,
	"updated_at":       true,
}

type zoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) ZoneRepository {
	return &zoneRepository{db: db}
}

func (r *zoneRepository) Create(zone *models.Zone) error {
	return r.db.Create(zone).Error
}

func (r *zoneRepository) GetOwned(userID, id string) (*models.Zone, error) {
	var zone models.Zone
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&zone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepository) ListByUser(userID string) ([]models.Zone, error) {
	var zones []models.Zone
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&zones).Error
	return zones, err
}

func (r *zoneRepository) ListPaginated(userID string, p *pagination.Pagination) ([]models.Zone, error) {
	query := r.db.Model(&models.Zone{}).Where("user_id = ?", userID)
	if p.Search != "" {
		query = query.Where("name ILIKE ?", "%"+p.Search+"%")
	}

	if err := query.Count(&p.Total).Error; err != nil {
		return nil, err
	}

	var zones []models.Zone
	err := query.Order(p.Order(zoneSortColumns)).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&zones).Error
	return zones, err
}

func (r *zoneRepository) Update(zone *models.Zone) error {
	return r.db.Save(zone).Error
}

func (r *zoneRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Zone{}).Error
}
