package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/delishare/delishare-backend/app/repository"
)

// SubscriptionController serves the /suscripcion routes: plan listing and
// subscribing a user to a plan.
type SubscriptionController struct {
	subscriptions repository.SubscriptionRepository
}

// NewSubscriptionController creates a subscription controller on the given
// repository.
func NewSubscriptionController(subscriptions repository.SubscriptionRepository) *SubscriptionController {
	return &SubscriptionController{subscriptions: subscriptions}
}

// HandleListPlans returns all active subscription plans ordered by price.
func (ctrl *SubscriptionController) HandleListPlans(c *fiber.Ctx) error {
	plans, err := ctrl.subscriptions.ListPlans()
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	return c.JSON(plans)
}

// subscribeRequest is the expected subscribe body.
type subscribeRequest struct {
	UserID uint   `json:"usuario_id"`
	Plan   string `json:"plan"`
}

// HandleSubscribe activates the named plan for the user. A missing user is a
// not-found condition; an unknown plan name is a validation failure.
func (ctrl *SubscriptionController) HandleSubscribe(c *fiber.Ctx) error {
	var input subscribeRequest
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if input.UserID == 0 || input.Plan == "" {
		return respondError(c, fiber.StatusBadRequest, msgInvalidInput)
	}

	expiry, err := ctrl.subscriptions.Subscribe(input.UserID, input.Plan)
	if err != nil {
		var planErr *repository.InvalidPlanError
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return respondError(c, fiber.StatusNotFound, "Usuario no encontrado.")
		case errors.As(err, &planErr):
			return respondError(c, fiber.StatusBadRequest, "Error de validación: "+planErr.Error())
		default:
			return respondError(c, fiber.StatusInternalServerError, msgInternalError)
		}
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"message":           "Suscripción activada exitosamente",
		"plan":              input.Plan,
		"fecha_vencimiento": expiry.Format("2006-01-02"),
	})
}
