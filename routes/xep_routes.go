package routes

import (
	"billxe-app/config"
	"billxe-app/controllers"
	"billxe-app/middleware"
	"billxe-app/repositories"

	"github.com/gofiber/fiber/v2"
)

func SetupXepRoutes(app *fiber.App, repo *repositories.Repo) {
	xepController := controllers.NewXepController(repo)

	api := app.Group(config.MAIN_ROUTES+"/xep", middleware.AuthMiddleware)

	api.Post("/", xepController.Create)
}
