package main

import (
	"fmt"
	"log"

	"gudang-app/config"
	"gudang-app/controllers/idgen"
	"gudang-app/database"
	"gudang-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupSparepartRoutes(app, db)
	routes.SetupCategoryRoutes(app, db)
	routes.SetupSupplierRoutes(app, db)
	routes.SetupEmployeeRoutes(app, db)
	routes.SetupEquipmentRoutes(app, db)
	routes.SetupStockInRoutes(app, db)
	routes.SetupStockOutRoutes(app, db)
	routes.SetupStockOpnameRoutes(app, db)
	routes.SetupAttendanceRoutes(app, db)
	routes.SetupPettyCashRoutes(app, db)
	routes.SetupActivityLogRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
