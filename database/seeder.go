package database

import (
	"log"

	"gudang-app/models"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

// RunSeeders mengisi data awal kalau tabel masih kosong
func RunSeeders(db *gorm.DB) {
	seedAdminUser(db)
	seedCategories(db)
	seedSampleSpareparts(db)
}

func seedAdminUser(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash default password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Name:     "Administrator",
		Password: string(hashed),
		Role:     "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	}
}

func seedCategories(db *gorm.DB) {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Code: "FLT", Name: "Filter"},
		{Code: "OLI", Name: "Oli & Pelumas"},
		{Code: "HYD", Name: "Hydraulic"},
		{Code: "ELC", Name: "Electrical"},
		{Code: "UC", Name: "Undercarriage"},
	}

	if err := db.Create(&categories).Error; err != nil {
		log.Printf("Failed to seed categories: %v", err)
	}
}

func seedSampleSpareparts(db *gorm.DB) {
	var count int64
	db.Model(&models.Sparepart{}).Count(&count)
	if count > 0 {
		return
	}

	var filter models.Category
	if err := db.Where("code = ?", "FLT").First(&filter).Error; err != nil {
		return
	}

	samples := []models.Sparepart{
		{Code: "SP-0001", Name: "Fuel Filter PC200", CategoryID: filter.ID, Unit: "pcs", MinStock: 5},
		{Code: "SP-0002", Name: "Oil Filter PC200", CategoryID: filter.ID, Unit: "pcs", MinStock: 5},
		{Code: "SP-0003", Name: "Air Filter D85", CategoryID: filter.ID, Unit: "pcs", MinStock: 3},
	}

	for i := range samples {
		samples[i].CurrentStock = rand.Intn(20) + 5
	}

	if err := db.Create(&samples).Error; err != nil {
		log.Printf("Failed to seed spareparts: %v", err)
	}
}
