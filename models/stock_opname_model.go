package models

import (
	"time"

	"gorm.io/gorm"
)

type StockOpname struct {
	gorm.Model
	Code         string            `json:"code" gorm:"unique"`
	OpnameDate   time.Time         `json:"opname_date"`
	Notes        string            `json:"notes"`
	Status       string            `json:"status" gorm:"default:'completed'"`
	TotalItems   int               `json:"total_items"`
	TotalSelisih int               `json:"total_selisih"`
	TotalPlus    int               `json:"total_plus"`
	TotalMinus   int               `json:"total_minus"`
	Items        []StockOpnameItem `json:"items" gorm:"foreignKey:StockOpnameID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedBy    int               `json:"created_by"`
}

type StockOpnameItem struct {
	gorm.Model
	StockOpnameID uint      `json:"stock_opname_id" gorm:"index"`
	SparepartID   uint      `json:"sparepart_id" gorm:"not null;index"`
	Sparepart     Sparepart `json:"sparepart" gorm:"foreignKey:SparepartID"`
	SystemStock   int       `json:"system_stock"`
	PhysicalStock int       `json:"physical_stock"`
	Difference    int       `json:"difference"`
	Notes         string    `json:"notes"`
}
