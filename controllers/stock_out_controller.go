package controllers

import (
	"errors"
	"fmt"

	"gudang-app/controllers/helpers"
	"gudang-app/models"
	"gudang-app/repositories"
	"gudang-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockOutController struct {
	DB *gorm.DB
}

func NewStockOutController(DB *gorm.DB) *StockOutController {
	return &StockOutController{DB: DB}
}

func (c *StockOutController) CreateStockOut(ctx *fiber.Ctx) error {
	var input struct {
		SparepartID uint   `json:"sparepart_id" validate:"required"`
		EquipmentID uint   `json:"equipment_id" validate:"required"`
		EmployeeID  uint   `json:"employee_id" validate:"required"`
		Quantity    int    `json:"quantity" validate:"required,gt=0"`
		Purpose     string `json:"purpose"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewStockOutRepository(c.DB)
	stockOut, stockWarning, err := repo.CreateRequest(repositories.StockOutInput{
		SparepartID: input.SparepartID,
		EquipmentID: input.EquipmentID,
		EmployeeID:  input.EmployeeID,
		Quantity:    input.Quantity,
		Purpose:     input.Purpose,
		CreatedBy:   userID,
	})

	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInvalidQuantity):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrSparepartNotFound),
			errors.Is(err, repositories.ErrEquipmentNotFound),
			errors.Is(err, repositories.ErrEmployeeNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "create", "stock_outs", stockOut.ID,
		fmt.Sprintf("request %d pcs for equipment %d", stockOut.Quantity, stockOut.EquipmentID))

	message := "Stock out request created successfully"
	if stockWarning {
		// Permintaan tetap dibuat, keputusan akhir ada di approval
		message = "Stock out request created, but requested quantity exceeds current stock"
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"message":       message,
		"data":          stockOut,
		"stock_warning": stockWarning,
	})
}

func (c *StockOutController) ApproveStockOut(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewStockOutRepository(c.DB)
	stockOut, newStock, err := repo.Approve(uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrStockOutNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, models.ErrNotPending):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrInsufficientStock):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "approve", "stock_outs", stockOut.ID,
		fmt.Sprintf("approved %d pcs, new stock %d", stockOut.Quantity, newStock))

	// Cek stok minimum setelah approval
	var sparepart models.Sparepart
	if err := c.DB.First(&sparepart, stockOut.SparepartID).Error; err == nil {
		services.SendLowStockAlert(&sparepart, newStock)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock out approved successfully",
		"data": fiber.Map{
			"stock_out": stockOut,
			"new_stock": newStock,
		},
	})
}

func (c *StockOutController) RejectStockOut(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewStockOutRepository(c.DB)
	stockOut, err := repo.Reject(uint(id), input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrStockOutNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, models.ErrNotPending):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, models.ErrEmptyReason):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "reject", "stock_outs", stockOut.ID, "rejected: "+stockOut.RejectedReason)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock out rejected",
		"data":    stockOut,
	})
}

func (c *StockOutController) DeleteStockOut(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewStockOutRepository(c.DB)
	if err := repo.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStockOutNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, models.ErrNotPending):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cannot delete a request that has been decided"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "delete", "stock_outs", uint(id), "pending request deleted")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock out request deleted",
	})
}

func (c *StockOutController) GetAllStockOut(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	page := ctx.QueryInt("page", 1)
	status := ctx.Query("status")
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}

	repo := repositories.NewStockOutRepository(c.DB)
	stockOuts, total, err := repo.GetAll(status, limit, (page-1)*limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock out list",
		"data":    stockOuts,
		"total":   total,
	})
}

func (c *StockOutController) GetStockOutByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewStockOutRepository(c.DB)
	stockOut, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrStockOutNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock out found",
		"data":    stockOut,
	})
}
