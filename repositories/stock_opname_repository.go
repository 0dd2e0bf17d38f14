package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gudang-app/models"

	"gorm.io/gorm"
)

type StockOpnameRepository struct {
	db *gorm.DB
}

func NewStockOpnameRepository(db *gorm.DB) *StockOpnameRepository {
	return &StockOpnameRepository{db}
}

type OpnameItemInput struct {
	SparepartID   uint
	PhysicalStock int
	Notes         string
}

type OpnameInput struct {
	OpnameDate time.Time
	Notes      string
	Items      []OpnameItemInput
	CreatedBy  int
}

// GenerateOpnameCode membuat kode OPN + tanggal + 4 digit urutan,
// urutan reset setiap ganti hari.
func (r *StockOpnameRepository) GenerateOpnameCode() (string, error) {
	return generateOpnameCode(r.db)
}

func generateOpnameCode(db *gorm.DB) (string, error) {
	var lastOpname models.StockOpname

	if err := db.Last(&lastOpname).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	currentDate := time.Now().Format("20060102")

	var opnameNo string
	if lastOpname.Code != "" && len(lastOpname.Code) >= 15 {
		lastDatePart := lastOpname.Code[3:11]
		lastSequenceStr := lastOpname.Code[len(lastOpname.Code)-4:]

		if currentDate != lastDatePart {
			opnameNo = fmt.Sprintf("OPN%s%04d", currentDate, 1)
		} else {
			lastSequenceInt, _ := strconv.Atoi(lastSequenceStr)
			opnameNo = fmt.Sprintf("OPN%s%04d", currentDate, lastSequenceInt+1)
		}
	} else {
		opnameNo = fmt.Sprintf("OPN%s%04d", currentDate, 1)
	}

	return opnameNo, nil
}

// ProcessOpname menyimpan satu sesi opname secara utuh: header dengan
// rekap, detail semua item yang dihitung, dan koreksi stok untuk item
// yang selisihnya bukan nol. Stok dikoreksi dengan di-set langsung ke
// hasil hitung fisik, bukan ditambah selisih, supaya tidak dobel kalau
// snapshot dan stok live sempat bergeser. Satu sparepart tidak ditemukan
// berarti seluruh batch batal.
//
// Catatan: terhadap stock-in/approval yang berjalan di tengah batch,
// koreksi ini last-writer-wins.
func (r *StockOpnameRepository) ProcessOpname(input OpnameInput) (*models.StockOpname, int, error) {
	if len(input.Items) == 0 {
		return nil, 0, ErrEmptyOpnameItems
	}

	seen := make(map[uint]bool)
	for _, item := range input.Items {
		if item.PhysicalStock < 0 {
			return nil, 0, ErrInvalidQuantity
		}
		if seen[item.SparepartID] {
			return nil, 0, ErrDuplicateOpnameItem
		}
		seen[item.SparepartID] = true
	}

	var opname models.StockOpname
	adjusted := 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Kode diambil lewat tx supaya konsisten dengan snapshot transaksi
		code, err := generateOpnameCode(tx)
		if err != nil {
			return err
		}

		opnameDate := input.OpnameDate
		if opnameDate.IsZero() {
			opnameDate = time.Now()
		}

		details := make([]models.StockOpnameItem, 0, len(input.Items))
		totalSelisih, totalPlus, totalMinus := 0, 0, 0

		for _, item := range input.Items {
			var sparepart models.Sparepart
			if err := tx.First(&sparepart, item.SparepartID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrSparepartNotFound
				}
				return err
			}

			difference := item.PhysicalStock - sparepart.CurrentStock
			details = append(details, models.StockOpnameItem{
				SparepartID:   item.SparepartID,
				SystemStock:   sparepart.CurrentStock,
				PhysicalStock: item.PhysicalStock,
				Difference:    difference,
				Notes:         item.Notes,
			})

			if difference != 0 {
				totalSelisih++
				if difference > 0 {
					totalPlus++
				} else {
					totalMinus++
				}
			}
		}

		opname = models.StockOpname{
			Code:         code,
			OpnameDate:   opnameDate,
			Notes:        input.Notes,
			Status:       "completed",
			TotalItems:   len(input.Items),
			TotalSelisih: totalSelisih,
			TotalPlus:    totalPlus,
			TotalMinus:   totalMinus,
			CreatedBy:    input.CreatedBy,
		}

		if err := tx.Create(&opname).Error; err != nil {
			// Dua sesi di hari yang sama bisa mencetak kode kembar;
			// yang kalah dapat error yang bisa di-retry klien
			if isDuplicateKey(err) {
				return ErrDuplicateOpnameCode
			}
			return err
		}

		for i := range details {
			details[i].StockOpnameID = opname.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}
		opname.Items = details

		for _, detail := range details {
			if detail.Difference == 0 {
				continue
			}
			if err := tx.Model(&models.Sparepart{}).
				Where("id = ?", detail.SparepartID).
				UpdateColumn("current_stock", detail.PhysicalStock).Error; err != nil {
				return err
			}
			adjusted++
		}

		return nil
	})

	if err != nil {
		return nil, 0, err
	}

	return &opname, adjusted, nil
}

// isDuplicateKey mengenali pelanggaran unique constraint dari ketiga driver
// (mysql "Duplicate entry", postgres "duplicate key", sqlite "UNIQUE
// constraint failed") tanpa mengaktifkan TranslateError.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

func (r *StockOpnameRepository) GetAll(limit, offset int) ([]models.StockOpname, int64, error) {
	var opnames []models.StockOpname
	var total int64

	if err := r.db.Model(&models.StockOpname{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&opnames).Error

	return opnames, total, err
}

func (r *StockOpnameRepository) GetByID(id uint) (*models.StockOpname, error) {
	var opname models.StockOpname
	err := r.db.Preload("Items").Preload("Items.Sparepart").First(&opname, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpnameNotFound
		}
		return nil, err
	}
	return &opname, nil
}
