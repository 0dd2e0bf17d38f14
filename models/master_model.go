package models

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	CreatedBy   int    `json:"created_by"`
	UpdatedBy   int    `json:"updated_by"`
}

type Supplier struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name" gorm:"not null"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CreatedBy int    `json:"created_by"`
	UpdatedBy int    `json:"updated_by"`
}

type Employee struct {
	gorm.Model
	NIK       string `json:"nik" gorm:"unique"`
	Name      string `json:"name" gorm:"not null"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int    `json:"created_by"`
	UpdatedBy int    `json:"updated_by"`
}

// Equipment adalah alat berat tujuan pemakaian sparepart (excavator, dozer, dst)
type Equipment struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name" gorm:"not null"`
	Type      string `json:"type"`
	Brand     string `json:"brand"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int    `json:"created_by"`
	UpdatedBy int    `json:"updated_by"`
}
