package routes

import (
	"billxe-app/config"
	"billxe-app/controllers"
	"billxe-app/middleware"
	"billxe-app/repositories"

	"github.com/gofiber/fiber/v2"
)

func SetupBillRoutes(app *fiber.App, repo *repositories.Repo) {
	billController := controllers.NewBillController(repo)

	api := app.Group(config.MAIN_ROUTES+"/bills", middleware.AuthMiddleware)

	api.Get("/", billController.GetPage)
	api.Get("/unassigned", billController.GetUnassigned)
	api.Post("/unassigned/send", billController.SendUnassignedReport)
}
