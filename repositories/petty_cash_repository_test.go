package repositories

import (
	"errors"
	"testing"
	"time"

	"gudang-app/models"
)

func TestPettyCashRunningBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewPettyCashRepository(db)

	steps := []struct {
		kind   string
		amount float64
		want   float64
	}{
		{models.PettyCashIn, 500000, 500000},
		{models.PettyCashOut, 150000, 350000},
		{models.PettyCashIn, 100000, 450000},
		{models.PettyCashOut, 450000, 0},
	}

	for _, step := range steps {
		entry, err := repo.CreateEntry(PettyCashInput{
			Type:        step.kind,
			Amount:      step.amount,
			Description: "operasional gudang",
		})
		if err != nil {
			t.Fatalf("%s %v: unexpected error: %v", step.kind, step.amount, err)
		}
		if entry.Balance != step.want {
			t.Errorf("%s %v: expected balance %v, got %v", step.kind, step.amount, step.want, entry.Balance)
		}
	}
}

func TestPettyCashRejectsOverdraft(t *testing.T) {
	db := newTestDB(t)
	repo := NewPettyCashRepository(db)

	if _, err := repo.CreateEntry(PettyCashInput{Type: models.PettyCashIn, Amount: 100000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := repo.CreateEntry(PettyCashInput{Type: models.PettyCashOut, Amount: 100001})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	// Saldo tidak berubah setelah entry yang ditolak
	var count int64
	db.Model(&models.PettyCash{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 entry, got %d", count)
	}
}

func TestPettyCashRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	repo := NewPettyCashRepository(db)

	if _, err := repo.CreateEntry(PettyCashInput{Type: models.PettyCashIn, Amount: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero amount: expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := repo.CreateEntry(PettyCashInput{Type: "transfer", Amount: 1000}); err == nil {
		t.Error("unknown type should be rejected")
	}
}

func TestPettyCashSummary(t *testing.T) {
	db := newTestDB(t)
	repo := NewPettyCashRepository(db)

	date := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	entries := []PettyCashInput{
		{TransactionDate: date, Type: models.PettyCashIn, Amount: 500000},
		{TransactionDate: date.AddDate(0, 0, 1), Type: models.PettyCashOut, Amount: 200000},
		// Bulan berikutnya, tidak ikut rekap Maret
		{TransactionDate: date.AddDate(0, 1, 0), Type: models.PettyCashOut, Amount: 50000},
	}
	for _, input := range entries {
		if _, err := repo.CreateEntry(input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summary, err := repo.GetSummary(3, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalIn != 500000 {
		t.Errorf("expected total in 500000, got %v", summary.TotalIn)
	}
	if summary.TotalOut != 200000 {
		t.Errorf("expected total out 200000, got %v", summary.TotalOut)
	}
	if summary.Balance != 250000 {
		t.Errorf("expected balance 250000, got %v", summary.Balance)
	}
}
