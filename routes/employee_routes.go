package routes

import (
	"gudang-app/config"
	"gudang-app/controllers"
	"gudang-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	employeeController := controllers.NewEmployeeController(db)

	api := app.Group(config.MAIN_ROUTES+"/employees", middleware.AuthMiddleware)

	api.Post("/", employeeController.CreateEmployee)
	api.Get("/", employeeController.GetAllEmployees)
	api.Get("/:id", employeeController.GetEmployeeByID)
	api.Put("/:id", employeeController.UpdateEmployee)
	api.Delete("/:id", middleware.RequireRole("admin"), employeeController.DeleteEmployee)
}
