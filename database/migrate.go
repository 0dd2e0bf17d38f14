package database

import (
	"gudang-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
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
		&models.ActivityLog{},
	)
}
