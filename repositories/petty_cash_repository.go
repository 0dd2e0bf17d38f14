package repositories

import (
	"errors"
	"time"

	"gudang-app/models"

	"gorm.io/gorm"
)

var ErrInsufficientBalance = errors.New("petty cash balance is not enough")

type PettyCashRepository struct {
	db *gorm.DB
}

func NewPettyCashRepository(db *gorm.DB) *PettyCashRepository {
	return &PettyCashRepository{db}
}

type PettyCashInput struct {
	TransactionDate time.Time
	Type            string
	Amount          float64
	Description     string
	CreatedBy       int
}

// CreateEntry menambah transaksi kas dengan saldo berjalan. Saldo dihitung
// dari transaksi terakhir di dalam transaksi yang sama supaya dua entry
// bersamaan tidak membaca saldo yang sama.
func (r *PettyCashRepository) CreateEntry(input PettyCashInput) (*models.PettyCash, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidQuantity
	}
	if input.Type != models.PettyCashIn && input.Type != models.PettyCashOut {
		return nil, errors.New("type must be in or out")
	}

	var entry models.PettyCash

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var last models.PettyCash
		lastBalance := 0.0
		if err := tx.Order("id DESC").First(&last).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else {
			lastBalance = last.Balance
		}

		newBalance := lastBalance
		if input.Type == models.PettyCashIn {
			newBalance += input.Amount
		} else {
			newBalance -= input.Amount
		}
		if newBalance < 0 {
			return ErrInsufficientBalance
		}

		transactionDate := input.TransactionDate
		if transactionDate.IsZero() {
			transactionDate = time.Now()
		}

		entry = models.PettyCash{
			TransactionDate: transactionDate,
			Type:            input.Type,
			Amount:          input.Amount,
			Balance:         newBalance,
			Description:     input.Description,
			CreatedBy:       input.CreatedBy,
		}

		return tx.Create(&entry).Error
	})

	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *PettyCashRepository) GetAll(limit, offset int) ([]models.PettyCash, int64, error) {
	var entries []models.PettyCash
	var total int64

	if err := r.db.Model(&models.PettyCash{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

type PettyCashSummary struct {
	TotalIn  float64 `json:"total_in"`
	TotalOut float64 `json:"total_out"`
	Balance  float64 `json:"balance"`
}

func (r *PettyCashRepository) GetSummary(month, year int) (*PettyCashSummary, error) {
	var summary PettyCashSummary

	base := r.db.Model(&models.PettyCash{})
	if month > 0 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0)
		base = base.Where("transaction_date >= ? AND transaction_date < ?", start, end)
	}

	if err := base.Session(&gorm.Session{}).Where("type = ?", models.PettyCashIn).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.TotalIn).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("type = ?", models.PettyCashOut).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.TotalOut).Error; err != nil {
		return nil, err
	}

	var last models.PettyCash
	if err := r.db.Order("id DESC").First(&last).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		summary.Balance = last.Balance
	}

	return &summary, nil
}
