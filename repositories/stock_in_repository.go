package repositories

import (
	"errors"
	"time"

	"gudang-app/models"

	"gorm.io/gorm"
)

type StockInRepository struct {
	db *gorm.DB
}

func NewStockInRepository(db *gorm.DB) *StockInRepository {
	return &StockInRepository{db}
}

type StockInInput struct {
	SparepartID   uint
	SupplierID    *uint
	Quantity      int
	InvoiceNumber string
	PurchasePrice float64
	WarrantyDate  *time.Time
	Notes         string
	CreatedBy     int
}

// CreateStockIn menyimpan penerimaan barang dan menambah stok dalam satu
// transaksi. Kalau salah satu gagal, dua-duanya batal.
func (r *StockInRepository) CreateStockIn(input StockInInput) (*models.StockIn, int, error) {
	if input.Quantity <= 0 {
		return nil, 0, ErrInvalidQuantity
	}

	var stockIn models.StockIn
	var newStock int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var sparepart models.Sparepart
		if err := tx.First(&sparepart, input.SparepartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSparepartNotFound
			}
			return err
		}

		if input.SupplierID != nil {
			var supplier models.Supplier
			if err := tx.First(&supplier, *input.SupplierID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrSupplierNotFound
				}
				return err
			}
		}

		stockIn = models.StockIn{
			SparepartID:   input.SparepartID,
			SupplierID:    input.SupplierID,
			Quantity:      input.Quantity,
			InvoiceNumber: input.InvoiceNumber,
			PurchasePrice: input.PurchasePrice,
			WarrantyDate:  input.WarrantyDate,
			Notes:         input.Notes,
			CreatedBy:     input.CreatedBy,
		}

		if err := tx.Create(&stockIn).Error; err != nil {
			return err
		}

		// Penambahan stok pakai ekspresi supaya tetap benar walau ada
		// stock-in lain yang berjalan bersamaan
		if err := tx.Model(&models.Sparepart{}).
			Where("id = ?", input.SparepartID).
			UpdateColumn("current_stock", gorm.Expr("current_stock + ?", input.Quantity)).Error; err != nil {
			return err
		}

		var updated models.Sparepart
		if err := tx.First(&updated, input.SparepartID).Error; err != nil {
			return err
		}
		newStock = updated.CurrentStock

		return nil
	})

	if err != nil {
		return nil, 0, err
	}

	return &stockIn, newStock, nil
}

func (r *StockInRepository) GetAll(limit, offset int) ([]models.StockIn, int64, error) {
	var stockIns []models.StockIn
	var total int64

	if err := r.db.Model(&models.StockIn{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Sparepart").Preload("Supplier").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&stockIns).Error

	return stockIns, total, err
}

func (r *StockInRepository) GetByID(id uint) (*models.StockIn, error) {
	var stockIn models.StockIn
	if err := r.db.Preload("Sparepart").Preload("Supplier").First(&stockIn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockInNotFound
		}
		return nil, err
	}
	return &stockIn, nil
}
