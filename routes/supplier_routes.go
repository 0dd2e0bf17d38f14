package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplierRoutes(app *fiber.App, db *gorm.DB) {
	supplierController := controllers.NewSupplierController(db)

	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)

	api.Post("/", supplierController.CreateSupplier)
	api.Get("/", supplierController.GetAllSuppliers)
	api.Get("/:id", supplierController.GetSupplierByID)
	api.Put("/:id", supplierController.UpdateSupplier)
	api.Delete("/:id", middleware.RequireRole("admin"), supplierController.DeleteSupplier)
}
