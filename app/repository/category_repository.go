package repository

import (
	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListAll returns every category ordered by name. Inactive categories are
// included on purpose: the frontend decides how to render them, and filtering
// here would silently change the published wire contract.
func (r *categoryRepository) ListAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("nombre ASC").Find(&categories).Error

	return categories, err
}

// GetByID retrieves a category by its ID, active or not.
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}

	return &category, nil
}
