package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPettyCashRoutes(app *fiber.App, db *gorm.DB) {
	pettyCashController := controllers.NewPettyCashController(db)

	api := app.Group(config.MAIN_ROUTES+"/petty-cash", middleware.AuthMiddleware)

	api.Post("/", pettyCashController.CreatePettyCash)
	api.Get("/summary", pettyCashController.GetPettyCashSummary)
	api.Get("/", pettyCashController.GetAllPettyCash)
}
