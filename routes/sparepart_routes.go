package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSparepartRoutes(app *fiber.App, db *gorm.DB) {
	sparepartController := controllers.NewSparepartController(db)

	api := app.Group(config.MAIN_ROUTES+"/spareparts", middleware.AuthMiddleware)

	api.Post("/upload-excel", sparepartController.CreateSparepartFromExcel)
	api.Post("/export", sparepartController.ExportSpareparts)
	api.Get("/:id/references", sparepartController.GetReferences)
	api.Get("/:id/stock-card", sparepartController.GetStockCard)
	api.Post("/", sparepartController.CreateSparepart)
	api.Get("/", sparepartController.GetAllSpareparts)
	api.Get("/:id", sparepartController.GetSparepartByID)
	api.Put("/:id", sparepartController.UpdateSparepart)
	api.Delete("/:id", middleware.RequireRole("admin"), sparepartController.DeleteSparepart)
}
