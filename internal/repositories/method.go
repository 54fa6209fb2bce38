package repositories

import (
	"errors"

	"shiprate/internal/models"
	"shiprate/internal/utils/pagination"

	"gorm.io/gorm"
)

// MethodRepository provides access to shipping method records. Lookups that
// miss return (nil, nil).
type MethodRepository interface {
	Create(method *models.Method) error
	GetByID(id string) (*models.Method, error)
	GetByTitle(userID, title string) (*models.Method, error)
	ListByUser(userID string) ([]models.Method, error)
	ListPaginated(userID string, p *pagination.Pagination) ([]models.Method, error)
	Update(method *models.Method) error
	Delete(userID, id string) error
}

var methodSortColumns = map[string]bool{
	"title":           true,
	"cost_percentage": true,
	"created_at":      true,
	"updated_at":      true,
}

type methodRepository struct {
	db *gorm.DB
}

func NewMethodRepository(db *gorm.DB) MethodRepository {
	return &methodRepository{db: db}
}

func (r *methodRepository) Create(method *models.Method) error {
	return r.db.Create(method).Error
}

func (r *methodRepository) GetByID(id string) (*models.Method, error) {
	var method models.Method
	err := r.db.Where("id = ?", id).First(&method).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &method, nil
}

// GetByTitle returns the oldest method with the given title for the user.
// Titles are not unique, so first-match by creation order keeps by-title
// resolution stable across calls.
func (r *methodRepository) GetByTitle(userID, title string) (*models.Method, error) {
	var method models.Method
	err := r.db.Where("user_id = ? AND title = ?", userID, title).
		Order("created_at ASC, id ASC").
		First(&method).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *methodRepository) ListByUser(userID string) ([]models.Method, error) {
	var methods []models.Method
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&methods).Error
	return methods, err
}

func (r *methodRepository) ListPaginated(userID string, p *pagination.Pagination) ([]models.Method, error) {
	query := r.db.Model(&models.Method{}).Where("user_id = ?", userID)
	if p.Search != "" {
		query = query.Where("title ILIKE ?", "%"+p.Search+"%")
	}

	if err := query.Count(&p.Total).Error; err != nil {
		return nil, err
	}

	var methods []models.Method
	err := query.Order(p.Order(methodSortColumns)).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&methods).Error
	return methods, err
}

func (r *methodRepository) Update(method *models.Method) error {
	return r.db.Save(method).Error
}

func (r *methodRepository) Delete(userID, id string) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Method{}).Error
}
