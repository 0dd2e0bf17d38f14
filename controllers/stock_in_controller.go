package controllers

import (
	"errors"
	"fmt"
	"time"

	"gudang-app/controllers/helpers"
	"gudang-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockInController struct {
	DB *gorm.DB
}

func NewStockInController(DB *gorm.DB) *StockInController {
	return &StockInController{DB: DB}
}

func (c *StockInController) CreateStockIn(ctx *fiber.Ctx) error {
	var input struct {
		SparepartID   uint    `json:"sparepart_id" validate:"required"`
		SupplierID    *uint   `json:"supplier_id"`
		Quantity      int     `json:"quantity" validate:"required,gt=0"`
		InvoiceNumber string  `json:"invoice_number"`
		PurchasePrice float64 `json:"purchase_price"`
		WarrantyDate  string  `json:"warranty_date"`
		Notes         string  `json:"notes"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var warrantyDate *time.Time
	if input.WarrantyDate != "" {
		parsed, err := time.Parse("2006-01-02", input.WarrantyDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid warranty_date format, use YYYY-MM-DD"})
		}
		warrantyDate = &parsed
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewStockInRepository(c.DB)
	stockIn, newStock, err := repo.CreateStockIn(repositories.StockInInput{
		SparepartID:   input.SparepartID,
		SupplierID:    input.SupplierID,
		Quantity:      input.Quantity,
		InvoiceNumber: input.InvoiceNumber,
		PurchasePrice: input.PurchasePrice,
		WarrantyDate:  warrantyDate,
		Notes:         input.Notes,
		CreatedBy:     userID,
	})

	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInvalidQuantity):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrSparepartNotFound), errors.Is(err, repositories.ErrSupplierNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "create", "stock_ins", stockIn.ID,
		fmt.Sprintf("stock in %d pcs, new stock %d", stockIn.Quantity, newStock))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock in created successfully",
		"data": fiber.Map{
			"stock_in":  stockIn,
			"new_stock": newStock,
		},
	})
}

func (c *StockInController) GetAllStockIn(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	page := ctx.QueryInt("page", 1)
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}

	repo := repositories.NewStockInRepository(c.DB)
	stockIns, total, err := repo.GetAll(limit, (page-1)*limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock in list",
		"data":    stockIns,
		"total":   total,
	})
}

func (c *StockInController) GetStockInByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewStockInRepository(c.DB)
	stockIn, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrStockInNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock in found",
		"data":    stockIn,
	})
}
