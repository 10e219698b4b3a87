package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Recipe{},
		&models.User{},
		&models.SubscriptionPlan{},
	)
	require.NoError(t, err)

	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string, active bool) *models.Category {
	category := &models.Category{
		Name: name,
		Icon: models.DefaultCategoryIcon,
	}
	require.NoError(t, db.Create(category).Error)
	// The activo column carries a database default, so false must be set
	// explicitly after the insert.
	if !active {
		require.NoError(t, db.Model(category).Update("activo", false).Error)
		category.Active = false
	} else {
		category.Active = true
	}
	return category
}

func createTestRecipe(t *testing.T, db *gorm.DB, title, ingredients string, categoryID *uint, active bool, createdAt time.Time) *models.Recipe {
	recipe := &models.Recipe{
		Title:           title,
		Ingredients:     ingredients,
		Instructions:    "Mezclar y cocinar.",
		PrepTimeMinutes: 30,
		Servings:        4,
		Difficulty:      models.DefaultDifficulty,
		CategoryID:      categoryID,
		Author:          models.DefaultAuthor,
		Active:          true,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(recipe).Error)
	if !active {
		require.NoError(t, db.Model(recipe).Update("activo", false).Error)
		recipe.Active = false
	}
	return recipe
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{
		Name:             "Usuario de Prueba",
		Email:            email,
		PasswordHash:     "$2a$10$irrelevant.for.this.test.hash.value.0000000000000000000",
		SubscriptionType: models.SubscriptionFree,
		Active:           true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPlan(t *testing.T, db *gorm.DB, name string, price float64, durationDays int, active bool) *models.SubscriptionPlan {
	plan := &models.SubscriptionPlan{
		Name:         name,
		Price:        price,
		DurationDays: durationDays,
		Active:       true,
	}
	require.NoError(t, db.Create(plan).Error)
	if !active {
		require.NoError(t, db.Model(plan).Update("activo", false).Error)
		plan.Active = false
	}
	return plan
}
