package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
)

// CategoryRepository defines the database operations for recipe categories.
type CategoryRepository interface {
	ListAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
}

// RecipeRepository defines the database operations for recipes.
type RecipeRepository interface {
	ListAll(searchTerm string) ([]models.Recipe, error)
	GetByID(id uint) (*models.Recipe, error)
	Create(input *models.RecipeCreate) (uint, error)
}

// UserRepository defines the database operations for user accounts. GetByEmail
// returns the internal representation including the password hash; callers
// must not serialize it.
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(input *models.UserCreate, passwordHash string) (*models.User, error)
	UpdateLastLogin(id uint, at time.Time) error
}

// SubscriptionRepository defines the database operations for subscription
// plans and user subscriptions.
type SubscriptionRepository interface {
	ListPlans() ([]models.SubscriptionPlan, error)
	Subscribe(userID uint, planName string) (time.Time, error)
}

// Repositories holds one instance of every repository, all bound to the same
// database handle. Handlers receive this struct at construction instead of
// reaching for process-global state.
type Repositories struct {
	Category     CategoryRepository
	Recipe       RecipeRepository
	User         UserRepository
	Subscription SubscriptionRepository
}

// NewRepositories creates all repositories on top of the given handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Category:     NewCategoryRepository(db),
		Recipe:       NewRecipeRepository(db),
		User:         NewUserRepository(db),
		Subscription: NewSubscriptionRepository(db),
	}
}
