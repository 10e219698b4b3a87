package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/delishare/delishare-backend/app/controllers"
	"github.com/delishare/delishare-backend/app/repository"
)

type ApiRouter struct {
	repos *repository.Repositories
}

func NewApiRouter(repos *repository.Repositories) *ApiRouter {
	return &ApiRouter{repos: repos}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	recipeCtrl := controllers.NewRecipeController(h.repos.Category, h.repos.Recipe)
	authCtrl := controllers.NewAuthController(h.repos.User)
	subCtrl := controllers.NewSubscriptionController(h.repos.Subscription)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bienvenido a la API de Delishare"})
	})

	recetas := app.Group("/recetas")
	// The static /categorias routes must come before the /:id wildcard.
	recetas.Get("/categorias", recipeCtrl.HandleListCategories)
	recetas.Get("/categorias/:id", recipeCtrl.HandleGetCategory)
	recetas.Get("/", recipeCtrl.HandleListRecipes)
	recetas.Post("/", recipeCtrl.HandleCreateRecipe)
	recetas.Get("/:id", recipeCtrl.HandleGetRecipe)

	auth := app.Group("/auth")
	auth.Post("/register", authCtrl.HandleRegister)
	auth.Post("/login", authCtrl.HandleLogin)

	suscripcion := app.Group("/suscripcion")
	suscripcion.Get("/planes", subCtrl.HandleListPlans)
	suscripcion.Post("/subscribe", subCtrl.HandleSubscribe)
}
