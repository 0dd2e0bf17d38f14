package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceController := controllers.NewAttendanceController(db)

	api := app.Group(config.MAIN_ROUTES+"/attendances", middleware.AuthMiddleware)

	api.Post("/bulk", attendanceController.BulkCreateAttendance)
	api.Get("/", attendanceController.GetAttendanceByDate)
}
