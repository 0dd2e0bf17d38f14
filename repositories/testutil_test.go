package repositories

import (
	"testing"

	"gudang-app/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Satu koneksi saja supaya :memory: tidak terpecah antar koneksi pool
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Supplier{},
		&models.Employee{},
		&models.Equipment{},
		&models.Sparepart{},
		&models.StockIn{},
		&models.StockOut{},
		&models.StockOpname{},
		&models.StockOpnameItem{},
		&models.Attendance{},
		&models.PettyCash{},
	)
	if err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func seedSparepart(t *testing.T, db *gorm.DB, code string, stock int) models.Sparepart {
	t.Helper()

	category := models.Category{Code: "CAT-" + code, Name: "Category " + code}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	sparepart := models.Sparepart{
		Code:         code,
		Name:         "Sparepart " + code,
		CategoryID:   category.ID,
		Unit:         "pcs",
		CurrentStock: stock,
		MinStock:     2,
	}
	if err := db.Create(&sparepart).Error; err != nil {
		t.Fatalf("failed to seed sparepart: %v", err)
	}

	return sparepart
}

func seedStockOutRefs(t *testing.T, db *gorm.DB) (models.Equipment, models.Employee) {
	t.Helper()

	equipment := models.Equipment{Code: "EXC-01", Name: "Excavator PC200", IsActive: true}
	if err := db.Create(&equipment).Error; err != nil {
		t.Fatalf("failed to seed equipment: %v", err)
	}

	employee := models.Employee{NIK: "EMP-01", Name: "Budi", IsActive: true}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}

	return equipment, employee
}

func currentStock(t *testing.T, db *gorm.DB, sparepartID uint) int {
	t.Helper()

	var sparepart models.Sparepart
	if err := db.First(&sparepart, sparepartID).Error; err != nil {
		t.Fatalf("failed to reload sparepart: %v", err)
	}
	return sparepart.CurrentStock
}
