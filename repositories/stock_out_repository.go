package repositories

import (
	"errors"
	"time"

	"gudang-app/models"

	"gorm.io/gorm"
)

type StockOutRepository struct {
	db *gorm.DB
}

func NewStockOutRepository(db *gorm.DB) *StockOutRepository {
	return &StockOutRepository{db}
}

type StockOutInput struct {
	SparepartID uint
	EquipmentID uint
	EmployeeID  uint
	Quantity    int
	Purpose     string
	CreatedBy   int
}

// CreateRequest membuat permintaan stock out berstatus pending. Cek stok di
// sini hanya peringatan, bukan penolakan: beberapa permintaan boleh antri
// untuk stok yang sama dan keputusan final ada di approval.
func (r *StockOutRepository) CreateRequest(input StockOutInput) (*models.StockOut, bool, error) {
	if input.Quantity <= 0 {
		return nil, false, ErrInvalidQuantity
	}

	var sparepart models.Sparepart
	if err := r.db.First(&sparepart, input.SparepartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrSparepartNotFound
		}
		return nil, false, err
	}

	var equipment models.Equipment
	if err := r.db.First(&equipment, input.EquipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrEquipmentNotFound
		}
		return nil, false, err
	}

	var employee models.Employee
	if err := r.db.First(&employee, input.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrEmployeeNotFound
		}
		return nil, false, err
	}

	stockOut := models.StockOut{
		SparepartID: input.SparepartID,
		EquipmentID: input.EquipmentID,
		EmployeeID:  input.EmployeeID,
		Quantity:    input.Quantity,
		Purpose:     input.Purpose,
		Status:      models.StockOutPending,
		CreatedBy:   input.CreatedBy,
	}

	if err := r.db.Create(&stockOut).Error; err != nil {
		return nil, false, err
	}

	stockWarning := input.Quantity > sparepart.CurrentStock
	return &stockOut, stockWarning, nil
}

// Approve memutuskan permintaan pending dan memotong stok. Dua-duanya lewat
// UPDATE bersyarat: flip status hanya mengenai baris yang masih pending, dan
// pemotongan stok hanya mengenai baris yang stoknya cukup. Nol baris berubah
// berarti keputusan lain sudah menang duluan atau stok tidak cukup, dan
// seluruh transaksi batal. Dua keputusan bersamaan untuk request yang sama
// tidak mungkin sama-sama lolos.
func (r *StockOutRepository) Approve(id uint, actor int) (*models.StockOut, int, error) {
	var stockOut models.StockOut
	var newStock int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stockOut, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStockOutNotFound
			}
			return err
		}

		if err := stockOut.MarkApproved(time.Now(), actor); err != nil {
			return err
		}

		decided := tx.Model(&models.StockOut{}).
			Where("id = ? AND status = ?", stockOut.ID, models.StockOutPending).
			Updates(map[string]interface{}{
				"status":      stockOut.Status,
				"approved_at": stockOut.ApprovedAt,
				"approved_by": stockOut.ApprovedBy,
			})
		if decided.Error != nil {
			return decided.Error
		}
		if decided.RowsAffected == 0 {
			return models.ErrNotPending
		}

		result := tx.Model(&models.Sparepart{}).
			Where("id = ? AND current_stock >= ?", stockOut.SparepartID, stockOut.Quantity).
			UpdateColumn("current_stock", gorm.Expr("current_stock - ?", stockOut.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		var sparepart models.Sparepart
		if err := tx.First(&sparepart, stockOut.SparepartID).Error; err != nil {
			return err
		}
		newStock = sparepart.CurrentStock

		return nil
	})

	if err != nil {
		return nil, 0, err
	}

	return &stockOut, newStock, nil
}

// Reject menolak permintaan pending dengan alasan wajib. Stok tidak berubah.
func (r *StockOutRepository) Reject(id uint, reason string) (*models.StockOut, error) {
	var stockOut models.StockOut

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stockOut, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStockOutNotFound
			}
			return err
		}

		if err := stockOut.MarkRejected(reason); err != nil {
			return err
		}

		// Bersyarat seperti approve: hanya baris yang masih pending
		result := tx.Model(&models.StockOut{}).
			Where("id = ? AND status = ?", stockOut.ID, models.StockOutPending).
			Updates(map[string]interface{}{
				"status":          stockOut.Status,
				"rejected_reason": stockOut.RejectedReason,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrNotPending
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &stockOut, nil
}

// Delete menghapus permintaan yang masih pending. Permintaan yang sudah
// diputuskan tidak boleh dihapus, riwayatnya harus tetap ada.
func (r *StockOutRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var stockOut models.StockOut
		if err := tx.First(&stockOut, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStockOutNotFound
			}
			return err
		}

		if !stockOut.CanDelete() {
			return models.ErrNotPending
		}

		result := tx.Unscoped().
			Where("id = ? AND status = ?", stockOut.ID, models.StockOutPending).
			Delete(&models.StockOut{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrNotPending
		}
		return nil
	})
}

func (r *StockOutRepository) GetAll(status string, limit, offset int) ([]models.StockOut, int64, error) {
	var stockOuts []models.StockOut
	var total int64

	query := r.db.Model(&models.StockOut{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Sparepart").Preload("Equipment").Preload("Employee").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&stockOuts).Error

	return stockOuts, total, err
}

func (r *StockOutRepository) GetByID(id uint) (*models.StockOut, error) {
	var stockOut models.StockOut
	err := r.db.Preload("Sparepart").Preload("Equipment").Preload("Employee").
		First(&stockOut, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockOutNotFound
		}
		return nil, err
	}
	return &stockOut, nil
}
