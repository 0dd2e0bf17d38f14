package models

import (
	"strings"

	"gorm.io/gorm"
)

type Sparepart struct {
	gorm.Model
	Code          string   `json:"code" gorm:"unique;not null"`
	Name          string   `json:"name" gorm:"not null"`
	CategoryID    uint     `json:"category_id"`
	Category      Category `json:"category" gorm:"foreignKey:CategoryID"`
	Unit          string   `json:"unit"`
	CurrentStock  int      `json:"current_stock" gorm:"default:0"`
	MinStock      int      `json:"min_stock" gorm:"default:0"`
	PurchasePrice float64  `json:"purchase_price"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	CreatedBy     int      `json:"created_by"`
	UpdatedBy     int      `json:"updated_by"`
}

// Kode sparepart selalu disimpan uppercase supaya unik tanpa peduli huruf besar/kecil
func (s *Sparepart) BeforeSave(tx *gorm.DB) (err error) {
	s.Code = strings.ToUpper(strings.TrimSpace(s.Code))
	return
}
