package routes

import (
	"billxe-app/config"
	"billxe-app/controllers"
	"billxe-app/middleware"
	"billxe-app/repositories"

	"github.com/gofiber/fiber/v2"
)

func SetupXeRoutes(app *fiber.App, repo *repositories.Repo) {
	xeController := controllers.NewXeController(repo)

	api := app.Group(config.MAIN_ROUTES+"/xe", middleware.AuthMiddleware)

	api.Post("/", xeController.Create)
	api.Get("/", xeController.GetPage)
	api.Get("/:id", xeController.View)

	init := app.Group(config.MAIN_ROUTES+"/init", middleware.AuthMiddleware)
	init.Post("/", xeController.EnsureSchema)
}
