package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PettyCashIn  = "in"
	PettyCashOut = "out"
)

// PettyCash adalah buku kas kecil dengan saldo berjalan per transaksi
type PettyCash struct {
	gorm.Model
	TransactionDate time.Time `json:"transaction_date"`
	Type            string    `json:"type" gorm:"not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Balance         float64   `json:"balance"`
	Description     string    `json:"description"`
	CreatedBy       int       `json:"created_by"`
}
