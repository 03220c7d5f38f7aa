package main

import (
	"fmt"
	"log"

	"billxe-app/config"
	"billxe-app/controllers/idgen"
	"billxe-app/repositories"
	"billxe-app/routes"
	"billxe-app/store"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()
	config.InitLogger()
	idgen.Init()

	app := fiber.New()

	// Mở backend bảng tính theo cấu hình
	ss, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to open store (%s): %v", config.StoreDriver, err)
	}

	repo, err := repositories.NewRepo(ss)
	if err != nil {
		log.Fatalf("Failed to bind worksheets: %v", err)
	}

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app)
	routes.SetupXeRoutes(app, repo)
	routes.SetupXepRoutes(app, repo)
	routes.SetupBillRoutes(app, repo)

	port := config.APP_PORT
	fmt.Println("🚚 BillXe server đang chạy ở port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
