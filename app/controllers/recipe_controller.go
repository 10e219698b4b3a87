package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
	"github.com/delishare/delishare-backend/app/repository"
)

// RecipeController serves the /recetas routes: category browsing plus recipe
// listing, search, detail and creation.
type RecipeController struct {
	categories repository.CategoryRepository
	recipes    repository.RecipeRepository
}

// NewRecipeController creates a recipe controller on the given repositories.
func NewRecipeController(categories repository.CategoryRepository, recipes repository.RecipeRepository) *RecipeController {
	return &RecipeController{categories: categories, recipes: recipes}
}

// HandleListCategories returns all categories ordered by name.
func (ctrl *RecipeController) HandleListCategories(c *fiber.Ctx) error {
	categories, err := ctrl.categories.ListAll()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(categories)
}

// HandleGetCategory returns a single category by id.
func (ctrl *RecipeController) HandleGetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusNotFound, "Categoría no encontrada.")
	}

	category, err := ctrl.categories.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "Categoría no encontrada.")
		}
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(category)
}

// HandleListRecipes returns all active recipes, optionally filtered by the
// `search` query parameter (substring match on title or ingredients).
func (ctrl *RecipeController) HandleListRecipes(c *fiber.Ctx) error {
	recipes, err := ctrl.recipes.ListAll(c.Query("search"))
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(recipes)
}

// HandleGetRecipe returns a single active recipe by id.
func (ctrl *RecipeController) HandleGetRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusNotFound, "Receta no encontrada.")
	}

	recipe, err := ctrl.recipes.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "Receta no encontrada.")
		}
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(recipe)
}

// HandleCreateRecipe validates the posted recipe and persists it. Validation
// failures never reach the database.
func (ctrl *RecipeController) HandleCreateRecipe(c *fiber.Ctx) error {
	var input models.RecipeCreate
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	id, err := ctrl.recipes.Create(&input)
	if err != nil {
		if isValidationError(err) {
			return respondError(c, fiber.StatusBadRequest, msgInvalidInput)
		}
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Receta creada exitosamente",
		"id":      id,
	})
}
