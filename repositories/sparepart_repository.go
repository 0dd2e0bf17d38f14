package repositories

import (
	"errors"
	"sort"
	"time"

	"gudang-app/models"

	"gorm.io/gorm"
)

type SparepartRepository struct {
	db *gorm.DB
}

func NewSparepartRepository(db *gorm.DB) *SparepartRepository {
	return &SparepartRepository{db}
}

// ReferenceCount merangkum berapa banyak data transaksi yang masih menunjuk
// ke sebuah sparepart. Dipakai sebelum hapus master supaya admin tahu apa
// yang harus dibereskan dulu.
type ReferenceCount struct {
	StockIns    int64 `json:"stock_ins"`
	StockOuts   int64 `json:"stock_outs"`
	OpnameItems int64 `json:"opname_items"`
}

func (rc ReferenceCount) Total() int64 {
	return rc.StockIns + rc.StockOuts + rc.OpnameItems
}

func (r *SparepartRepository) CountReferences(sparepartID uint) (*ReferenceCount, error) {
	var sparepart models.Sparepart
	if err := r.db.First(&sparepart, sparepartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSparepartNotFound
		}
		return nil, err
	}

	var rc ReferenceCount
	if err := r.db.Model(&models.StockIn{}).Where("sparepart_id = ?", sparepartID).Count(&rc.StockIns).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.StockOut{}).Where("sparepart_id = ?", sparepartID).Count(&rc.StockOuts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.StockOpnameItem{}).Where("sparepart_id = ?", sparepartID).Count(&rc.OpnameItems).Error; err != nil {
		return nil, err
	}

	return &rc, nil
}

// Delete menolak penghapusan sparepart yang masih punya data transaksi
func (r *SparepartRepository) Delete(sparepartID uint, actor int) error {
	rc, err := r.CountReferences(sparepartID)
	if err != nil {
		return err
	}
	if rc.Total() > 0 {
		return ErrHasReferences
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Sparepart{}).Where("id = ?", sparepartID).
			UpdateColumn("updated_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Sparepart{}, sparepartID).Error
	})
}

// StockCardEntry adalah satu baris kartu stok: gabungan semua mutasi yang
// pernah menyentuh sparepart, urut waktu.
type StockCardEntry struct {
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Reference string    `json:"reference"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes"`
}

func (r *SparepartRepository) GetStockCard(sparepartID uint) ([]StockCardEntry, error) {
	var sparepart models.Sparepart
	if err := r.db.First(&sparepart, sparepartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSparepartNotFound
		}
		return nil, err
	}

	var entries []StockCardEntry

	var stockIns []models.StockIn
	if err := r.db.Where("sparepart_id = ?", sparepartID).Find(&stockIns).Error; err != nil {
		return nil, err
	}
	for _, si := range stockIns {
		entries = append(entries, StockCardEntry{
			Date:      si.CreatedAt,
			Type:      "stock_in",
			Reference: si.InvoiceNumber,
			Quantity:  si.Quantity,
			Notes:     si.Notes,
		})
	}

	var stockOuts []models.StockOut
	if err := r.db.Where("sparepart_id = ? AND status = ?", sparepartID, models.StockOutApproved).
		Find(&stockOuts).Error; err != nil {
		return nil, err
	}
	for _, so := range stockOuts {
		date := so.CreatedAt
		if so.ApprovedAt != nil {
			date = *so.ApprovedAt
		}
		entries = append(entries, StockCardEntry{
			Date:      date,
			Type:      "stock_out",
			Reference: so.Purpose,
			Quantity:  -so.Quantity,
			Notes:     so.Purpose,
		})
	}

	var opnameItems []models.StockOpnameItem
	if err := r.db.Where("sparepart_id = ? AND difference <> 0", sparepartID).
		Find(&opnameItems).Error; err != nil {
		return nil, err
	}
	for _, oi := range opnameItems {
		entries = append(entries, StockCardEntry{
			Date:      oi.CreatedAt,
			Type:      "opname",
			Reference: "adjustment",
			Quantity:  oi.Difference,
			Notes:     oi.Notes,
		})
	}

	// gabungan tiga tabel, urutkan lagi berdasarkan waktu
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, nil
}
