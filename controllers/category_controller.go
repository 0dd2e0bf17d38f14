package controllers

import (
	"errors"

	"gudang-app/controllers/helpers"
	"gudang-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(DB *gorm.DB) *CategoryController {
	return &CategoryController{DB: DB}
}

type categoryInput struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (c *CategoryController) CreateCategory(ctx *fiber.Ctx) error {
	var input categoryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	category := models.Category{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   userID,
	}

	if err := c.DB.Create(&category).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "create", "categories", category.ID, "category "+category.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category created successfully", "data": category})
}

func (c *CategoryController) GetAllCategories(ctx *fiber.Ctx) error {
	var categories []models.Category
	if err := c.DB.Order("code ASC").Find(&categories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Categories found", "data": categories})
}

func (c *CategoryController) GetCategoryByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var category models.Category
	if err := c.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category found", "data": category})
}

func (c *CategoryController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input categoryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.Category
	if err := c.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	updates := models.Category{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		UpdatedBy:   userID,
	}

	if err := c.DB.Model(&category).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "update", "categories", category.ID, "category "+input.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category updated successfully", "data": category})
}

func (c *CategoryController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var category models.Category
	if err := c.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var refCount int64
	if err := c.DB.Model(&models.Sparepart{}).Where("category_id = ?", id).Count(&refCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if refCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category is still referenced by spareparts",
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	if err := c.DB.Delete(&category).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "delete", "categories", category.ID, "category "+category.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}
