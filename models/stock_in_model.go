package models

import (
	"time"

	"gorm.io/gorm"
)

type StockIn struct {
	gorm.Model
	SparepartID   uint       `json:"sparepart_id" gorm:"not null;index"`
	Sparepart     Sparepart  `json:"sparepart" gorm:"foreignKey:SparepartID"`
	SupplierID    *uint      `json:"supplier_id"`
	Supplier      *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Quantity      int        `json:"quantity" gorm:"not null"`
	InvoiceNumber string     `json:"invoice_number"`
	PurchasePrice float64    `json:"purchase_price"`
	WarrantyDate  *time.Time `json:"warranty_date"`
	Notes         string     `json:"notes"`
	CreatedBy     int        `json:"created_by"`
}
