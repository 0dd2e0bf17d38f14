package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockOpnameRoutes(app *fiber.App, db *gorm.DB) {
	stockOpnameController := controllers.NewStockOpnameController(db)

	api := app.Group(config.MAIN_ROUTES+"/stock-opnames", middleware.AuthMiddleware)

	api.Post("/", middleware.RequireRole("admin"), stockOpnameController.CreateStockOpname)
	api.Get("/", stockOpnameController.GetAllStockOpname)
	api.Get("/:id", stockOpnameController.GetStockOpnameByID)
}
