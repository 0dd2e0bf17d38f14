package repositories

import (
	"errors"
	"testing"

	"gudang-app/models"
)

func TestCreateStockInIncrementsStock(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 0)

	repo := NewStockInRepository(db)
	stockIn, newStock, err := repo.CreateStockIn(StockInInput{
		SparepartID: sparepart.ID,
		Quantity:    50,
		Notes:       "penerimaan awal",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if newStock != 50 {
		t.Errorf("expected new stock 50, got %d", newStock)
	}
	if stockIn.Quantity != 50 {
		t.Errorf("expected quantity 50, got %d", stockIn.Quantity)
	}
	if got := currentStock(t, db, sparepart.ID); got != 50 {
		t.Errorf("expected stored stock 50, got %d", got)
	}
}

func TestCreateStockInRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 10)

	repo := NewStockInRepository(db)

	for _, qty := range []int{0, -5} {
		_, _, err := repo.CreateStockIn(StockInInput{SparepartID: sparepart.ID, Quantity: qty})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}

	if got := currentStock(t, db, sparepart.ID); got != 10 {
		t.Errorf("stock should be unchanged, got %d", got)
	}
}

func TestCreateStockInUnknownSparepart(t *testing.T) {
	db := newTestDB(t)

	repo := NewStockInRepository(db)
	_, _, err := repo.CreateStockIn(StockInInput{SparepartID: 999, Quantity: 5})
	if !errors.Is(err, ErrSparepartNotFound) {
		t.Errorf("expected ErrSparepartNotFound, got %v", err)
	}

	var count int64
	db.Model(&models.StockIn{}).Count(&count)
	if count != 0 {
		t.Errorf("no stock in record should be created, got %d", count)
	}
}

func TestGetStockInByIDNotFound(t *testing.T) {
	db := newTestDB(t)

	repo := NewStockInRepository(db)
	if _, err := repo.GetByID(999); !errors.Is(err, ErrStockInNotFound) {
		t.Errorf("expected ErrStockInNotFound, got %v", err)
	}
}

func TestCreateStockInUnknownSupplierRollsBack(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 10)

	missing := uint(777)
	repo := NewStockInRepository(db)
	_, _, err := repo.CreateStockIn(StockInInput{
		SparepartID: sparepart.ID,
		SupplierID:  &missing,
		Quantity:    5,
	})
	if !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}

	// Tidak boleh ada kredit parsial
	if got := currentStock(t, db, sparepart.ID); got != 10 {
		t.Errorf("stock should be unchanged, got %d", got)
	}
	var count int64
	db.Model(&models.StockIn{}).Count(&count)
	if count != 0 {
		t.Errorf("no stock in record should be created, got %d", count)
	}
}
