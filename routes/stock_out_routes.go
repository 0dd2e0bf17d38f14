package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockOutRoutes(app *fiber.App, db *gorm.DB) {
	stockOutController := controllers.NewStockOutController(db)

	api := app.Group(config.MAIN_ROUTES+"/stock-outs", middleware.AuthMiddleware)

	// Keputusan approve/reject hanya untuk admin
	api.Put("/:id/approve", middleware.RequireRole("admin"), stockOutController.ApproveStockOut)
	api.Put("/:id/reject", middleware.RequireRole("admin"), stockOutController.RejectStockOut)
	api.Post("/", stockOutController.CreateStockOut)
	api.Get("/", stockOutController.GetAllStockOut)
	api.Get("/:id", stockOutController.GetStockOutByID)
	api.Delete("/:id", stockOutController.DeleteStockOut)
}
