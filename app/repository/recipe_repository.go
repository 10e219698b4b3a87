package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
)

// recipeRepository implements the RecipeRepository interface
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository instance
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// joined returns the base query for reading recipes: active rows only, with
// the category name resolved in the same statement so listing never issues a
// per-row lookup.
func (r *recipeRepository) joined() *gorm.DB {
	return r.db.Model(&models.Recipe{}).
		Select("recetas.*, categorias.nombre AS categoria_nombre").
		Joins("LEFT JOIN categorias ON categorias.id = recetas.categoria_id").
		Where("recetas.activo = ?", true)
}

// ListAll returns all active recipes, newest first. A non-empty search term
// filters by case-insensitive substring match on title or ingredients.
func (r *recipeRepository) ListAll(searchTerm string) ([]models.Recipe, error) {
	query := r.joined()

	if searchTerm != "" {
		pattern := "%" + strings.ToLower(searchTerm) + "%"
		query = query.Where("LOWER(recetas.titulo) LIKE ? OR LOWER(recetas.ingredientes) LIKE ?", pattern, pattern)
	}

	var recipes []models.Recipe
	err := query.Order("recetas.created_at DESC").Find(&recipes).Error

	return recipes, err
}

// GetByID retrieves a single active recipe by id with its category name.
// Soft-deleted recipes (activo=false) are never returned.
func (r *recipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.joined().Where("recetas.id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Create validates the input and persists a new recipe row. Nothing is
// written when validation fails. A categoria_id that does not reference an
// existing category surfaces as a foreign-key error from the database.
func (r *recipeRepository) Create(input *models.RecipeCreate) (uint, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	recipe := input.ToRecipe()
	if err := r.db.Create(recipe).Error; err != nil {
		return 0, err
	}

	return recipe.ID, nil
}
