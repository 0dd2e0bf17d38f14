package controllers

import (
	"errors"

	"gudang-app/controllers/helpers"
	"gudang-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(DB *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: DB}
}

type employeeInput struct {
	NIK      string `json:"nik" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

func (c *EmployeeController) CreateEmployee(ctx *fiber.Ctx) error {
	var input employeeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	employee := models.Employee{
		NIK:       input.NIK,
		Name:      input.Name,
		Position:  input.Position,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedBy: userID,
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&employee).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "create", "employees", employee.ID, "employee "+employee.NIK)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee created successfully", "data": employee})
}

func (c *EmployeeController) GetAllEmployees(ctx *fiber.Ctx) error {
	var employees []models.Employee

	query := c.DB.Order("name ASC")
	if ctx.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&employees).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employees found", "data": employees})
}

func (c *EmployeeController) GetEmployeeByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var employee models.Employee
	if err := c.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee found", "data": employee})
}

func (c *EmployeeController) UpdateEmployee(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input employeeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var employee models.Employee
	if err := c.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	updates := map[string]interface{}{
		"nik":        input.NIK,
		"name":       input.Name,
		"position":   input.Position,
		"phone":      input.Phone,
		"updated_by": userID,
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := c.DB.Model(&employee).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "update", "employees", employee.ID, "employee "+input.NIK)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee updated successfully", "data": employee})
}

func (c *EmployeeController) DeleteEmployee(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var employee models.Employee
	if err := c.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Karyawan yang punya riwayat pengambilan atau absensi tidak boleh dihapus
	var stockOutCount, attendanceCount int64
	if err := c.DB.Model(&models.StockOut{}).Where("employee_id = ?", id).Count(&stockOutCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.Attendance{}).Where("employee_id = ?", id).Count(&attendanceCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if stockOutCount > 0 || attendanceCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Employee is still referenced by stock out or attendance records",
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	if err := c.DB.Delete(&employee).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "delete", "employees", employee.ID, "employee "+employee.NIK)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee deleted successfully"})
}
