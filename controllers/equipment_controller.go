package controllers

import (
	"errors"

	"gudang-app/controllers/helpers"
	"gudang-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EquipmentController struct {
	DB *gorm.DB
}

func NewEquipmentController(DB *gorm.DB) *EquipmentController {
	return &EquipmentController{DB: DB}
}

type equipmentInput struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type"`
	Brand    string `json:"brand"`
	IsActive *bool  `json:"is_active"`
}

func (c *EquipmentController) CreateEquipment(ctx *fiber.Ctx) error {
	var input equipmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	equipment := models.Equipment{
		Code:      input.Code,
		Name:      input.Name,
		Type:      input.Type,
		Brand:     input.Brand,
		IsActive:  true,
		CreatedBy: userID,
	}
	if input.IsActive != nil {
		equipment.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&equipment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "create", "equipments", equipment.ID, "equipment "+equipment.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Equipment created successfully", "data": equipment})
}

func (c *EquipmentController) GetAllEquipments(ctx *fiber.Ctx) error {
	var equipments []models.Equipment

	query := c.DB.Order("code ASC")
	if ctx.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&equipments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Equipments found", "data": equipments})
}

func (c *EquipmentController) GetEquipmentByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var equipment models.Equipment
	if err := c.DB.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Equipment found", "data": equipment})
}

func (c *EquipmentController) UpdateEquipment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input equipmentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var equipment models.Equipment
	if err := c.DB.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	updates := map[string]interface{}{
		"code":       input.Code,
		"name":       input.Name,
		"type":       input.Type,
		"brand":      input.Brand,
		"updated_by": userID,
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := c.DB.Model(&equipment).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "update", "equipments", equipment.ID, "equipment "+input.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Equipment updated successfully", "data": equipment})
}

func (c *EquipmentController) DeleteEquipment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var equipment models.Equipment
	if err := c.DB.First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Equipment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var refCount int64
	if err := c.DB.Model(&models.StockOut{}).Where("equipment_id = ?", id).Count(&refCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if refCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Equipment is still referenced by stock out records",
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	if err := c.DB.Delete(&equipment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "delete", "equipments", equipment.ID, "equipment "+equipment.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Equipment deleted successfully"})
}
