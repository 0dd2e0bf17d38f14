package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEquipmentRoutes(app *fiber.App, db *gorm.DB) {
	equipmentController := controllers.NewEquipmentController(db)

	api := app.Group(config.MAIN_ROUTES+"/equipments", middleware.AuthMiddleware)

	api.Post("/", equipmentController.CreateEquipment)
	api.Get("/", equipmentController.GetAllEquipments)
	api.Get("/:id", equipmentController.GetEquipmentByID)
	api.Put("/:id", equipmentController.UpdateEquipment)
	api.Delete("/:id", middleware.RequireRole("admin"), equipmentController.DeleteEquipment)
}
