package controllers

import (
	"gudang-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(DB *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: DB}
}

func (c *ActivityLogController) GetAllActivityLogs(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	page := ctx.QueryInt("page", 1)
	if limit < 1 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}

	query := c.DB.Model(&models.ActivityLog{})
	if tableName := ctx.Query("table"); tableName != "" {
		query = query.Where("table_name = ?", tableName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var logs []models.ActivityLog
	if err := query.Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Activity logs",
		"data":    logs,
		"total":   total,
	})
}
