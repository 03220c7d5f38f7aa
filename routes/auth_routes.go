package routes

import (
	"billxe-app/config"
	"billxe-app/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authController := controllers.NewAuthController()

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
}
