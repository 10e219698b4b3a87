package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByEmail retrieves a user by exact email match. The returned row carries
// the password hash; it exists for the auth flow only.
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Create inserts a new user with the given password hash. Every other column
// takes its schema default: free subscription, active, zeroed counters. The
// returned row includes the server-generated id and timestamps.
func (r *userRepository) Create(input *models.UserCreate, passwordHash string) (*models.User, error) {
	user := &models.User{
		Name:             input.Name,
		Email:            input.Email,
		PasswordHash:     passwordHash,
		SubscriptionType: models.SubscriptionFree,
		Active:           true,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateLastLogin stamps the ultimo_login column after a successful login.
func (r *userRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("ultimo_login", at).Error
}
