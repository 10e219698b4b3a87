package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// ListPlans returns all active subscription plans, cheapest first.
func (r *subscriptionRepository) ListPlans() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.Where("activo = ?", true).Order("precio ASC").Find(&plans).Error

	return plans, err
}

// Subscribe switches the user to the named plan and returns the new expiry
// date. The expiry is computed from the plan's duracion_dias column, never
// from the plan name. Lookup and update run in one transaction so a failed
// plan resolution leaves the user row untouched.
func (r *subscriptionRepository) Subscribe(userID uint, planName string) (time.Time, error) {
	var expiry time.Time

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var plan models.SubscriptionPlan
		if err := tx.Where("nombre = ?", planName).First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &InvalidPlanError{Plan: planName}
			}
			return err
		}

		today := truncateToDay(time.Now())
		expiry = today.AddDate(0, 0, plan.DurationDays)

		return tx.Model(&user).Updates(map[string]interface{}{
			"tipo_suscripcion":  models.SubscriptionPremium,
			"fecha_suscripcion": today,
			"fecha_vencimiento": expiry,
		}).Error
	})
	if err != nil {
		return time.Time{}, err
	}

	return expiry, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
