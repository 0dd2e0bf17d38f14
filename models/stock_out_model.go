package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	StockOutPending  = "pending"
	StockOutApproved = "approved"
	StockOutRejected = "rejected"
)

var (
	ErrNotPending  = errors.New("stock out request is not pending")
	ErrEmptyReason = errors.New("rejected reason is required")
)

type StockOut struct {
	gorm.Model
	SparepartID    uint       `json:"sparepart_id" gorm:"not null;index"`
	Sparepart      Sparepart  `json:"sparepart" gorm:"foreignKey:SparepartID"`
	EquipmentID    uint       `json:"equipment_id" gorm:"not null"`
	Equipment      Equipment  `json:"equipment" gorm:"foreignKey:EquipmentID"`
	EmployeeID     uint       `json:"employee_id" gorm:"not null"`
	Employee       Employee   `json:"employee" gorm:"foreignKey:EmployeeID"`
	Quantity       int        `json:"quantity" gorm:"not null"`
	Purpose        string     `json:"purpose"`
	Status         string     `json:"status" gorm:"default:'pending';index"`
	RejectedReason string     `json:"rejected_reason"`
	ApprovedAt     *time.Time `json:"approved_at"`
	ApprovedBy     int        `json:"approved_by"`
	CreatedBy      int        `json:"created_by"`
}

// MarkApproved dan MarkRejected adalah satu-satunya jalan mengubah status.
// Status approved/rejected bersifat final, tidak ada transisi keluar.

func (s *StockOut) MarkApproved(at time.Time, actor int) error {
	if s.Status != StockOutPending {
		return ErrNotPending
	}
	s.Status = StockOutApproved
	s.ApprovedAt = &at
	s.ApprovedBy = actor
	return nil
}

func (s *StockOut) MarkRejected(reason string) error {
	if s.Status != StockOutPending {
		return ErrNotPending
	}
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	s.Status = StockOutRejected
	s.RejectedReason = reason
	return nil
}

// CanDelete: request yang sudah diputuskan harus tetap tersimpan sebagai riwayat
func (s *StockOut) CanDelete() bool {
	return s.Status == StockOutPending
}
