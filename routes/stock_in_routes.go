package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockInRoutes(app *fiber.App, db *gorm.DB) {
	stockInController := controllers.NewStockInController(db)

	api := app.Group(config.MAIN_ROUTES+"/stock-ins", middleware.AuthMiddleware)

	api.Post("/", stockInController.CreateStockIn)
	api.Get("/", stockInController.GetAllStockIn)
	api.Get("/:id", stockInController.GetStockInByID)
}
