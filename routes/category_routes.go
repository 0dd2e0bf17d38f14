package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	categoryController := controllers.NewCategoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/categories", middleware.AuthMiddleware)

	api.Post("/", categoryController.CreateCategory)
	api.Get("/", categoryController.GetAllCategories)
	api.Get("/:id", categoryController.GetCategoryByID)
	api.Put("/:id", categoryController.UpdateCategory)
	api.Delete("/:id", middleware.RequireRole("admin"), categoryController.DeleteCategory)
}
