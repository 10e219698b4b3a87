package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delishare/delishare-backend/app/repository"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter registers every route group on the app, with all handlers
// bound to the given repositories.
func InstallRouter(app *fiber.App, repos *repository.Repositories) {
	setup(app, NewApiRouter(repos))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
