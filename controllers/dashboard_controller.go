package controllers

import (
	"time"

	"gudang-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	var totalSpareparts, pendingStockOuts int64

	if err := c.DB.Model(&models.Sparepart{}).Count(&totalSpareparts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.StockOut{}).Where("status = ?", models.StockOutPending).
		Count(&pendingStockOuts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Sparepart dengan stok di bawah minimum
	var lowStock []models.Sparepart
	if err := c.DB.Where("current_stock < min_stock").Order("current_stock ASC").
		Limit(10).Find(&lowStock).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	today := time.Now().Truncate(24 * time.Hour)
	var todayStockIn, todayStockOut int64
	if err := c.DB.Model(&models.StockIn{}).Where("created_at >= ?", today).
		Count(&todayStockIn).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Model(&models.StockOut{}).
		Where("status = ? AND approved_at >= ?", models.StockOutApproved, today).
		Count(&todayStockOut).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard data",
		"data": fiber.Map{
			"total_spareparts":   totalSpareparts,
			"pending_stock_outs": pendingStockOuts,
			"low_stock":          lowStock,
			"today_stock_in":     todayStockIn,
			"today_stock_out":    todayStockOut,
		},
	})
}
