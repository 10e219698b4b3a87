package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
)

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Icon: models.DefaultCategoryIcon}
	require.NoError(t, db.Create(category).Error)
	return category
}

func TestHandleListCategories(t *testing.T) {
	app, db := newTestApp(t)

	seedCategory(t, db, "Postres")
	seedCategory(t, db, "Bebidas")

	resp := doRequest(t, app, http.MethodGet, "/recetas/categorias", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	categories := decodeList(t, resp)
	require.Len(t, categories, 2)
	assert.Equal(t, "Bebidas", categories[0]["nombre"])
	assert.Equal(t, "Postres", categories[1]["nombre"])
}

func TestHandleGetCategory(t *testing.T) {
	app, db := newTestApp(t)

	category := seedCategory(t, db, "Sopas")

	t.Run("found", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/recetas/categorias/%d", category.ID), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, "Sopas", body["nombre"])
	})

	t.Run("not found", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/recetas/categorias/9999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Categoría no encontrada.", body["error"])
	})
}

func recipeBody(categoryID uint) map[string]interface{} {
	return map[string]interface{}{
		"titulo":             "Pollo al horno",
		"ingredientes":       "pollo, papas, romero",
		"instrucciones":      "Hornear 90 minutos a 180 grados.",
		"tiempo_preparacion": 90,
		"porciones":          4,
		"categoria_id":       categoryID,
	}
}

func TestHandleCreateRecipe(t *testing.T) {
	app, db := newTestApp(t)
	category := seedCategory(t, db, "Carnes")

	t.Run("creates and returns the new id", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/recetas/", recipeBody(category.ID))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Receta creada exitosamente", body["message"])
		assert.NotZero(t, body["id"])
	})

	t.Run("out-of-range servings are rejected before persisting", func(t *testing.T) {
		input := recipeBody(category.ID)
		input["porciones"] = 21

		var before int64
		require.NoError(t, db.Model(&models.Recipe{}).Count(&before).Error)

		resp := doRequest(t, app, http.MethodPost, "/recetas/", input)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, false, body["success"])

		var after int64
		require.NoError(t, db.Model(&models.Recipe{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		input := recipeBody(category.ID)
		delete(input, "ingredientes")

		resp := doRequest(t, app, http.MethodPost, "/recetas/", input)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestHandleGetRecipe(t *testing.T) {
	app, db := newTestApp(t)
	category := seedCategory(t, db, "Carnes")

	created := doRequest(t, app, http.MethodPost, "/recetas/", recipeBody(category.ID))
	require.Equal(t, http.StatusCreated, created.StatusCode)
	id := decodeMap(t, created)["id"].(float64)

	t.Run("returns the recipe with its category name", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/recetas/%d", int(id)), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, "Pollo al horno", body["titulo"])
		assert.Equal(t, "Carnes", body["categoria_nombre"])
		assert.Equal(t, true, body["activo"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/recetas/9999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeMap(t, resp)
		assert.Equal(t, "Receta no encontrada.", body["error"])
	})

	t.Run("soft-deleted recipe is 404", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", uint(id)).Update("activo", false).Error)

		resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/recetas/%d", int(id)), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()

		// restore for the remaining tests
		require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", uint(id)).Update("activo", true).Error)
	})
}

func TestHandleListRecipes(t *testing.T) {
	app, db := newTestApp(t)
	category := seedCategory(t, db, "Carnes")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedRecipe(t, db, "Pollo al horno", "pollo, papas", &category.ID, base)
	seedRecipe(t, db, "Ensalada", "lechuga, tomate", &category.ID, base.Add(time.Hour))

	t.Run("lists newest first with category names", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/recetas/", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		recipes := decodeList(t, resp)
		require.Len(t, recipes, 2)
		assert.Equal(t, "Ensalada", recipes[0]["titulo"])
		assert.Equal(t, "Pollo al horno", recipes[1]["titulo"])
		assert.Equal(t, "Carnes", recipes[0]["categoria_nombre"])
	})

	t.Run("filters by the search query parameter", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/recetas/?search=poll", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		recipes := decodeList(t, resp)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Pollo al horno", recipes[0]["titulo"])
	})
}

func seedRecipe(t *testing.T, db *gorm.DB, title, ingredients string, categoryID *uint, createdAt time.Time) {
	t.Helper()
	recipe := &models.Recipe{
		Title:           title,
		Ingredients:     ingredients,
		Instructions:    "Cocinar.",
		PrepTimeMinutes: 30,
		Servings:        2,
		CategoryID:      categoryID,
		Active:          true,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(recipe).Error)
}
