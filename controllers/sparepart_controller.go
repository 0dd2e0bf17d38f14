package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gudang-app/controllers/helpers"
	"gudang-app/models"
	"gudang-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type SparepartController struct {
	DB *gorm.DB
}

func NewSparepartController(DB *gorm.DB) *SparepartController {
	return &SparepartController{DB: DB}
}

type sparepartInput struct {
	Code          string  `json:"code" validate:"required,min=3"`
	Name          string  `json:"name" validate:"required"`
	CategoryID    uint    `json:"category_id" validate:"required"`
	Unit          string  `json:"unit" validate:"required"`
	MinStock      int     `json:"min_stock" validate:"gte=0"`
	PurchasePrice float64 `json:"purchase_price"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	InitialStock  int     `json:"initial_stock" validate:"gte=0"`
}

func (c *SparepartController) CreateSparepart(ctx *fiber.Ctx) error {
	var input sparepartInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.Category
	if err := c.DB.First(&category, input.CategoryID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	userID := int(ctx.Locals("userID").(float64))

	sparepart := models.Sparepart{
		Code:          input.Code,
		Name:          input.Name,
		CategoryID:    input.CategoryID,
		Unit:          input.Unit,
		CurrentStock:  input.InitialStock,
		MinStock:      input.MinStock,
		PurchasePrice: input.PurchasePrice,
		Location:      input.Location,
		Description:   input.Description,
		CreatedBy:     userID,
	}

	if err := c.DB.Create(&sparepart).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "create", "spareparts", sparepart.ID, "sparepart "+sparepart.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sparepart created successfully", "data": sparepart})
}

func (c *SparepartController) GetAllSpareparts(ctx *fiber.Ctx) error {
	var spareparts []models.Sparepart

	query := c.DB.Preload("Category")
	if search := ctx.Query("search"); search != "" {
		like := "%" + strings.ToUpper(search) + "%"
		query = query.Where("UPPER(code) LIKE ? OR UPPER(name) LIKE ?", like, like)
	}

	if err := query.Order("code ASC").Find(&spareparts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Spareparts found", "data": spareparts})
}

func (c *SparepartController) GetSparepartByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sparepart models.Sparepart
	if err := c.DB.Preload("Category").First(&sparepart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sparepart not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sparepart found", "data": sparepart})
}

func (c *SparepartController) UpdateSparepart(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input sparepartInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sparepart models.Sparepart
	if err := c.DB.First(&sparepart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sparepart not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.Category
	if err := c.DB.First(&category, input.CategoryID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	userID := int(ctx.Locals("userID").(float64))

	// current_stock sengaja tidak ikut di-update dari sini,
	// stok hanya boleh berubah lewat stock in/out/opname
	updates := map[string]interface{}{
		"code":           input.Code,
		"name":           input.Name,
		"category_id":    input.CategoryID,
		"unit":           input.Unit,
		"min_stock":      input.MinStock,
		"purchase_price": input.PurchasePrice,
		"location":       input.Location,
		"description":    input.Description,
		"updated_by":     userID,
	}

	if err := c.DB.Model(&sparepart).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "update", "spareparts", sparepart.ID, "sparepart "+input.Code)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sparepart updated successfully", "data": sparepart})
}

func (c *SparepartController) DeleteSparepart(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	userID := int(ctx.Locals("userID").(float64))

	repo := repositories.NewSparepartRepository(c.DB)
	if err := repo.Delete(uint(id), userID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSparepartNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrHasReferences):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Sparepart masih punya data transaksi, cek referensi dulu sebelum hapus",
			})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	helpers.LogActivity(c.DB, userID, "delete", "spareparts", uint(id), "sparepart deleted")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sparepart deleted successfully"})
}

func (c *SparepartController) GetReferences(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewSparepartRepository(c.DB)
	rc, err := repo.CountReferences(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrSparepartNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Reference count",
		"data": fiber.Map{
			"references": rc,
			"total":      rc.Total(),
			"deletable":  rc.Total() == 0,
		},
	})
}

func (c *SparepartController) GetStockCard(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewSparepartRepository(c.DB)
	entries, err := repo.GetStockCard(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrSparepartNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock card", "data": entries})
}

// Handler untuk generate dan kirim file Excel
func (c *SparepartController) ExportSpareparts(ctx *fiber.Ctx) error {
	var spareparts []models.Sparepart
	if err := c.DB.Preload("Category").Order("code ASC").Find(&spareparts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Code")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "Unit")
	f.SetCellValue(sheet, "E1", "Current Stock")
	f.SetCellValue(sheet, "F1", "Min Stock")
	f.SetCellValue(sheet, "G1", "Location")

	for i, item := range spareparts {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), item.Code)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), item.Category.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), item.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), item.CurrentStock)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), item.MinStock)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), item.Location)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="spareparts.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Gagal generate Excel")
	}

	return nil
}

type SparepartUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

func (c *SparepartController) CreateSparepartFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := SparepartUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))

	// Cache for category validation
	categoryCache := make(map[string]uint)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Kolom: CODE, NAME, CATEGORY_CODE, UNIT, MIN_STOCK, LOCATION
	for i, row := range rows[1:] {
		rowNum := i + 2 // Excel row number (header is row 1)

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 4 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 4)", rowNum))
			continue
		}

		code := strings.ToUpper(strings.TrimSpace(row[0]))
		name := strings.TrimSpace(row[1])
		categoryCode := strings.ToUpper(strings.TrimSpace(row[2]))
		unit := strings.TrimSpace(row[3])

		minStock := 0
		if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
			minStock, err = strconv.Atoi(strings.TrimSpace(row[4]))
			if err != nil || minStock < 0 {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Invalid MIN_STOCK value", rowNum))
				continue
			}
		}

		location := ""
		if len(row) > 5 {
			location = strings.TrimSpace(row[5])
		}

		if code == "" || name == "" || categoryCode == "" || unit == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: CODE, NAME, CATEGORY_CODE, and UNIT are required", rowNum))
			continue
		}

		categoryID, exists := categoryCache[categoryCode]
		if !exists {
			var category models.Category
			if err := tx.Where("code = ?", categoryCode).First(&category).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Category '%s' not found", rowNum, categoryCode))
				continue
			}
			categoryID = category.ID
			categoryCache[categoryCode] = categoryID
		}

		var existing models.Sparepart
		if err := tx.Where("code = ?", code).First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, code)
			continue
		}

		sparepart := models.Sparepart{
			Code:       code,
			Name:       name,
			CategoryID: categoryID,
			Unit:       unit,
			MinStock:   minStock,
			Location:   location,
			CreatedBy:  userID,
		}

		if err := tx.Create(&sparepart).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create sparepart - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}
