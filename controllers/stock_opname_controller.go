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

type StockOpnameController struct {
	DB *gorm.DB
}

func NewStockOpnameController(DB *gorm.DB) *StockOpnameController {
	return &StockOpnameController{DB: DB}
}

func (c *StockOpnameController) CreateStockOpname(ctx *fiber.Ctx) error {
	var input struct {
		OpnameDate string `json:"opname_date"`
		Notes      string `json:"notes"`
		Items      []struct {
			SparepartID   uint   `json:"sparepart_id" validate:"required"`
			PhysicalStock *int   `json:"physical_stock" validate:"required"`
			Notes         string `json:"notes"`
		} `json:"items" validate:"required,min=1"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var opnameDate time.Time
	if input.OpnameDate != "" {
		parsed, err := time.Parse("2006-01-02", input.OpnameDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid opname_date format, use YYYY-MM-DD"})
		}
		opnameDate = parsed
	}

	items := make([]repositories.OpnameItemInput, 0, len(input.Items))
	for _, item := range input.Items {
		if item.PhysicalStock == nil || *item.PhysicalStock < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "physical_stock must be zero or positive"})
		}
		items = append(items, repositories.OpnameItemInput{
			SparepartID:   item.SparepartID,
			PhysicalStock: *item.PhysicalStock,
			Notes:         item.Notes,
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewStockOpnameRepository(c.DB)
	opname, adjusted, err := repo.ProcessOpname(repositories.OpnameInput{
		OpnameDate: opnameDate,
		Notes:      input.Notes,
		Items:      items,
		CreatedBy:  userID,
	})

	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSparepartNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrEmptyOpnameItems),
			errors.Is(err, repositories.ErrDuplicateOpnameItem),
			errors.Is(err, repositories.ErrInvalidQuantity):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrDuplicateOpnameCode):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "create", "stock_opnames", opname.ID,
		fmt.Sprintf("opname %s: %d items, %d adjusted", opname.Code, opname.TotalItems, adjusted))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock opname processed successfully",
		"data": fiber.Map{
			"stock_opname":   opname,
			"adjusted_items": adjusted,
		},
	})
}

func (c *StockOpnameController) GetAllStockOpname(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	page := ctx.QueryInt("page", 1)
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}

	repo := repositories.NewStockOpnameRepository(c.DB)
	opnames, total, err := repo.GetAll(limit, (page-1)*limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock opname list",
		"data":    opnames,
		"total":   total,
	})
}

func (c *StockOpnameController) GetStockOpnameByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewStockOpnameRepository(c.DB)
	opname, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrOpnameNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Stock opname found",
		"data":    opname,
	})
}
