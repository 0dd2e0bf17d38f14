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

type PettyCashController struct {
	DB *gorm.DB
}

func NewPettyCashController(DB *gorm.DB) *PettyCashController {
	return &PettyCashController{DB: DB}
}

func (c *PettyCashController) CreatePettyCash(ctx *fiber.Ctx) error {
	var input struct {
		TransactionDate string  `json:"transaction_date"`
		Type            string  `json:"type" validate:"required,oneof=in out"`
		Amount          float64 `json:"amount" validate:"required,gt=0"`
		Description     string  `json:"description"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var transactionDate time.Time
	if input.TransactionDate != "" {
		parsed, err := time.Parse("2006-01-02", input.TransactionDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction_date format, use YYYY-MM-DD"})
		}
		transactionDate = parsed
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewPettyCashRepository(c.DB)
	entry, err := repo.CreateEntry(repositories.PettyCashInput{
		TransactionDate: transactionDate,
		Type:            input.Type,
		Amount:          input.Amount,
		Description:     input.Description,
		CreatedBy:       userID,
	})

	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInvalidQuantity):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrInsufficientBalance):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "create", "petty_cashes", entry.ID,
		fmt.Sprintf("%s %.2f, balance %.2f", entry.Type, entry.Amount, entry.Balance))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Petty cash entry created successfully",
		"data":    entry,
	})
}

func (c *PettyCashController) GetAllPettyCash(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	page := ctx.QueryInt("page", 1)
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}

	repo := repositories.NewPettyCashRepository(c.DB)
	entries, total, err := repo.GetAll(limit, (page-1)*limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Petty cash list",
		"data":    entries,
		"total":   total,
	})
}

func (c *PettyCashController) GetPettyCashSummary(ctx *fiber.Ctx) error {
	month := ctx.QueryInt("month", 0)
	year := ctx.QueryInt("year", 0)

	repo := repositories.NewPettyCashRepository(c.DB)
	summary, err := repo.GetSummary(month, year)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Petty cash summary",
		"data":    summary,
	})
}
