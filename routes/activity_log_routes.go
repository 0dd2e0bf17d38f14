package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupActivityLogRoutes(app *fiber.App, db *gorm.DB) {
	activityLogController := controllers.NewActivityLogController(db)

	api := app.Group(config.MAIN_ROUTES+"/activity-logs", middleware.AuthMiddleware)

	api.Get("/", activityLogController.GetAllActivityLogs)
}
