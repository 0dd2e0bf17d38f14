package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gudang-app/controllers/idgen"
	"gudang-app/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// newStockOutTestApp merakit app dengan auth yang di-stub supaya test fokus
// ke perilaku handler, bukan parsing token.
func newStockOutTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	idgen.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Employee{},
		&models.Equipment{},
		&models.Sparepart{},
		&models.StockOut{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", float64(1))
		c.Locals("role", "admin")
		return c.Next()
	})

	controller := NewStockOutController(db)
	app.Post("/stock-outs", controller.CreateStockOut)
	app.Get("/stock-outs", controller.GetAllStockOut)
	app.Get("/stock-outs/:id", controller.GetStockOutByID)
	app.Put("/stock-outs/:id/approve", controller.ApproveStockOut)
	app.Put("/stock-outs/:id/reject", controller.RejectStockOut)
	app.Delete("/stock-outs/:id", controller.DeleteStockOut)

	return app, db
}

func seedStockOutData(t *testing.T, db *gorm.DB, stock int) (models.Sparepart, models.Equipment, models.Employee) {
	t.Helper()

	category := models.Category{Code: "CAT-01", Name: "Filter"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	sparepart := models.Sparepart{
		Code: "SP-0001", Name: "Filter Oli", CategoryID: category.ID,
		Unit: "pcs", CurrentStock: stock, MinStock: 2,
	}
	if err := db.Create(&sparepart).Error; err != nil {
		t.Fatalf("failed to seed sparepart: %v", err)
	}
	equipment := models.Equipment{Code: "EXC-01", Name: "Excavator PC200", IsActive: true}
	if err := db.Create(&equipment).Error; err != nil {
		t.Fatalf("failed to seed equipment: %v", err)
	}
	employee := models.Employee{NIK: "EMP-01", Name: "Budi", IsActive: true}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	return sparepart, equipment, employee
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, parsed
}

func TestStockOutLifecycleOverHTTP(t *testing.T) {
	app, db := newStockOutTestApp(t)
	sparepart, equipment, employee := seedStockOutData(t, db, 50)

	resp, body := doJSON(t, app, http.MethodPost, "/stock-outs", fiber.Map{
		"sparepart_id": sparepart.ID,
		"equipment_id": equipment.ID,
		"employee_id":  employee.ID,
		"quantity":     30,
		"purpose":      "ganti filter oli",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if warning, _ := body["stock_warning"].(bool); warning {
		t.Error("create: expected no stock warning")
	}
	data := body["data"].(map[string]interface{})
	id := uint(data["ID"].(float64))
	if data["status"] != models.StockOutPending {
		t.Errorf("create: expected status pending, got %v", data["status"])
	}

	// Stok belum berubah sebelum approval
	var before models.Sparepart
	db.First(&before, sparepart.ID)
	if before.CurrentStock != 50 {
		t.Errorf("stock should be 50 before approval, got %d", before.CurrentStock)
	}

	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/stock-outs/%d/approve", id), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	approveData := body["data"].(map[string]interface{})
	if newStock := approveData["new_stock"].(float64); newStock != 20 {
		t.Errorf("approve: expected new stock 20, got %v", newStock)
	}

	// Keputusan kedua ditolak dengan 409
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/stock-outs/%d/approve", id), nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("second approve: expected 409, got %d", resp.StatusCode)
	}

	// Request yang sudah diputuskan tidak bisa dihapus
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/stock-outs/%d", id), nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("delete decided: expected 409, got %d", resp.StatusCode)
	}
}

func TestApproveInsufficientStockOverHTTP(t *testing.T) {
	app, db := newStockOutTestApp(t)
	sparepart, equipment, employee := seedStockOutData(t, db, 20)

	resp, body := doJSON(t, app, http.MethodPost, "/stock-outs", fiber.Map{
		"sparepart_id": sparepart.ID,
		"equipment_id": equipment.ID,
		"employee_id":  employee.ID,
		"quantity":     100,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if warning, _ := body["stock_warning"].(bool); !warning {
		t.Error("create: expected stock warning for quantity above stock")
	}
	data := body["data"].(map[string]interface{})
	id := uint(data["ID"].(float64))

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/stock-outs/%d/approve", id), nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("approve: expected 422, got %d", resp.StatusCode)
	}

	var after models.Sparepart
	db.First(&after, sparepart.ID)
	if after.CurrentStock != 20 {
		t.Errorf("stock should be unchanged, got %d", after.CurrentStock)
	}
}

func TestRejectStockOutOverHTTP(t *testing.T) {
	app, db := newStockOutTestApp(t)
	sparepart, equipment, employee := seedStockOutData(t, db, 20)

	_, body := doJSON(t, app, http.MethodPost, "/stock-outs", fiber.Map{
		"sparepart_id": sparepart.ID,
		"equipment_id": equipment.ID,
		"employee_id":  employee.ID,
		"quantity":     5,
	})
	data := body["data"].(map[string]interface{})
	id := uint(data["ID"].(float64))

	// Tanpa alasan: 400
	resp, _ := doJSON(t, app, http.MethodPut, fmt.Sprintf("/stock-outs/%d/reject", id), fiber.Map{"reason": "  "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("reject without reason: expected 400, got %d", resp.StatusCode)
	}

	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/stock-outs/%d/reject", id), fiber.Map{"reason": "barang untuk unit lain"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reject: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	rejected := body["data"].(map[string]interface{})
	if rejected["status"] != models.StockOutRejected {
		t.Errorf("expected status rejected, got %v", rejected["status"])
	}
}

func TestStockOutNotFoundOverHTTP(t *testing.T) {
	app, _ := newStockOutTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/stock-outs/999/approve", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/stock-outs/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
