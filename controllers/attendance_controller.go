package controllers

import (
	"fmt"
	"time"

	"gudang-app/controllers/helpers"
	"gudang-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(DB *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: DB}
}

// BulkCreateAttendance menerima absensi satu hari sekaligus, satu entry per
// karyawan, dikunci per employee_id. Entry yang sudah ada untuk tanggal itu
// di-replace, sisanya insert baru. Semua dalam satu transaksi.
func (c *AttendanceController) BulkCreateAttendance(ctx *fiber.Ctx) error {
	var input struct {
		AttendanceDate string `json:"attendance_date"`
		Entries        []struct {
			EmployeeID uint   `json:"employee_id"`
			Status     string `json:"status"`
			Notes      string `json:"notes"`
		} `json:"entries"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if len(input.Entries) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Entries cannot be empty"})
	}

	attendanceDate := time.Now().Truncate(24 * time.Hour)
	if input.AttendanceDate != "" {
		parsed, err := time.Parse("2006-01-02", input.AttendanceDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance_date format, use YYYY-MM-DD"})
		}
		attendanceDate = parsed
	}

	validStatus := map[string]bool{
		models.AttendanceHadir: true,
		models.AttendanceIzin:  true,
		models.AttendanceSakit: true,
		models.AttendanceAlpha: true,
	}

	// Draft per karyawan: entry terakhir untuk employee yang sama menang
	drafts := make(map[uint]models.Attendance)
	for _, entry := range input.Entries {
		if !validStatus[entry.Status] {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid status '%s' for employee %d", entry.Status, entry.EmployeeID),
			})
		}
		drafts[entry.EmployeeID] = models.Attendance{
			EmployeeID:     entry.EmployeeID,
			AttendanceDate: attendanceDate,
			Status:         entry.Status,
			Notes:          entry.Notes,
		}
	}

	userID := int(ctx.Locals("userID").(float64))

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for employeeID, draft := range drafts {
			var employee models.Employee
			if err := tx.First(&employee, employeeID).Error; err != nil {
				return fmt.Errorf("employee %d not found", employeeID)
			}

			var existing models.Attendance
			err := tx.Where("employee_id = ? AND attendance_date = ?", employeeID, attendanceDate).
				First(&existing).Error
			if err == nil {
				existing.Status = draft.Status
				existing.Notes = draft.Notes
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				continue
			}

			draft.CreatedBy = userID
			if err := tx.Create(&draft).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.LogActivity(c.DB, userID, "create", "attendances", 0,
		fmt.Sprintf("bulk attendance %s: %d employees", attendanceDate.Format("2006-01-02"), len(drafts)))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Attendance saved for %d employees", len(drafts)),
	})
}

func (c *AttendanceController) GetAttendanceByDate(ctx *fiber.Ctx) error {
	dateStr := ctx.Query("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date format, use YYYY-MM-DD"})
	}

	var attendances []models.Attendance
	if err := c.DB.Preload("Employee").
		Where("attendance_date = ?", date).
		Find(&attendances).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance list",
		"data":    attendances,
	})
}
