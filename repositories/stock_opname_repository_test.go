package repositories

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gudang-app/models"
)

func TestProcessOpnameZeroDifference(t *testing.T) {
	db := newTestDB(t)
	first := seedSparepart(t, db, "SP-0001", 10)
	second := seedSparepart(t, db, "SP-0002", 25)

	repo := NewStockOpnameRepository(db)
	opname, adjusted, err := repo.ProcessOpname(OpnameInput{
		OpnameDate: time.Now(),
		Items: []OpnameItemInput{
			{SparepartID: first.ID, PhysicalStock: 10},
			{SparepartID: second.ID, PhysicalStock: 25},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if adjusted != 0 {
		t.Errorf("expected 0 adjusted items, got %d", adjusted)
	}
	if opname.TotalItems != 2 {
		t.Errorf("expected total items 2, got %d", opname.TotalItems)
	}
	if opname.TotalSelisih != 0 || opname.TotalPlus != 0 || opname.TotalMinus != 0 {
		t.Errorf("expected zero difference totals, got selisih=%d plus=%d minus=%d",
			opname.TotalSelisih, opname.TotalPlus, opname.TotalMinus)
	}

	// Stok tidak disentuh kalau hitung fisik sama dengan sistem
	if got := currentStock(t, db, first.ID); got != 10 {
		t.Errorf("expected stock 10, got %d", got)
	}
	if got := currentStock(t, db, second.ID); got != 25 {
		t.Errorf("expected stock 25, got %d", got)
	}
}

func TestProcessOpnameAdjustsStockToPhysical(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 100)

	repo := NewStockOpnameRepository(db)
	opname, adjusted, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{
			{SparepartID: sparepart.ID, PhysicalStock: 92, Notes: "selisih rak B"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if adjusted != 1 {
		t.Errorf("expected 1 adjusted item, got %d", adjusted)
	}
	if len(opname.Items) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(opname.Items))
	}

	detail := opname.Items[0]
	if detail.SystemStock != 100 {
		t.Errorf("expected system stock 100, got %d", detail.SystemStock)
	}
	if detail.Difference != -8 {
		t.Errorf("expected difference -8, got %d", detail.Difference)
	}
	if opname.TotalSelisih != 1 || opname.TotalPlus != 0 || opname.TotalMinus != 1 {
		t.Errorf("unexpected totals: selisih=%d plus=%d minus=%d",
			opname.TotalSelisih, opname.TotalPlus, opname.TotalMinus)
	}

	if got := currentStock(t, db, sparepart.ID); got != 92 {
		t.Errorf("expected stock set to physical count 92, got %d", got)
	}
}

func TestProcessOpnameMixedBatch(t *testing.T) {
	db := newTestDB(t)
	partP := seedSparepart(t, db, "SP-P", 20)
	partQ := seedSparepart(t, db, "SP-Q", 15)

	repo := NewStockOpnameRepository(db)
	opname, adjusted, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{
			{SparepartID: partP.ID, PhysicalStock: 15},
			{SparepartID: partQ.ID, PhysicalStock: 15},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if adjusted != 1 {
		t.Errorf("expected 1 adjusted item, got %d", adjusted)
	}
	if opname.TotalItems != 2 || opname.TotalSelisih != 1 || opname.TotalPlus != 0 || opname.TotalMinus != 1 {
		t.Errorf("unexpected totals: items=%d selisih=%d plus=%d minus=%d",
			opname.TotalItems, opname.TotalSelisih, opname.TotalPlus, opname.TotalMinus)
	}

	if got := currentStock(t, db, partP.ID); got != 15 {
		t.Errorf("expected stock P adjusted to 15, got %d", got)
	}
	if got := currentStock(t, db, partQ.ID); got != 15 {
		t.Errorf("expected stock Q unchanged at 15, got %d", got)
	}
}

func TestProcessOpnameSurplusCountsAsPlus(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 8)

	repo := NewStockOpnameRepository(db)
	opname, _, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{
			{SparepartID: sparepart.ID, PhysicalStock: 12},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opname.TotalPlus != 1 || opname.TotalMinus != 0 {
		t.Errorf("expected plus=1 minus=0, got plus=%d minus=%d", opname.TotalPlus, opname.TotalMinus)
	}
	if got := currentStock(t, db, sparepart.ID); got != 12 {
		t.Errorf("expected stock 12, got %d", got)
	}
}

func TestProcessOpnameUnknownSparepartAbortsBatch(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 100)

	repo := NewStockOpnameRepository(db)
	_, _, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{
			{SparepartID: sparepart.ID, PhysicalStock: 90},
			{SparepartID: 999, PhysicalStock: 5},
		},
	})
	if !errors.Is(err, ErrSparepartNotFound) {
		t.Fatalf("expected ErrSparepartNotFound, got %v", err)
	}

	// Seluruh batch batal: tidak ada header, detail, maupun koreksi stok
	if got := currentStock(t, db, sparepart.ID); got != 100 {
		t.Errorf("stock should be unchanged, got %d", got)
	}
	var headers, details int64
	db.Model(&models.StockOpname{}).Count(&headers)
	db.Model(&models.StockOpnameItem{}).Count(&details)
	if headers != 0 || details != 0 {
		t.Errorf("expected no records, got %d headers and %d details", headers, details)
	}
}

func TestProcessOpnameRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 10)

	repo := NewStockOpnameRepository(db)

	if _, _, err := repo.ProcessOpname(OpnameInput{}); !errors.Is(err, ErrEmptyOpnameItems) {
		t.Errorf("empty items: expected ErrEmptyOpnameItems, got %v", err)
	}

	_, _, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{{SparepartID: sparepart.ID, PhysicalStock: -1}},
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("negative physical stock: expected ErrInvalidQuantity, got %v", err)
	}

	_, _, err = repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{
			{SparepartID: sparepart.ID, PhysicalStock: 5},
			{SparepartID: sparepart.ID, PhysicalStock: 7},
		},
	})
	if !errors.Is(err, ErrDuplicateOpnameItem) {
		t.Errorf("duplicate sparepart: expected ErrDuplicateOpnameItem, got %v", err)
	}
}

func TestGenerateOpnameCode(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 10)

	repo := NewStockOpnameRepository(db)

	code, err := repo.GenerateOpnameCode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	today := time.Now().Format("20060102")
	if code != "OPN"+today+"0001" {
		t.Errorf("expected first code OPN%s0001, got %s", today, code)
	}

	if _, _, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{{SparepartID: sparepart.ID, PhysicalStock: 10}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, err := repo.GenerateOpnameCode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(next, "0002") {
		t.Errorf("expected sequence to advance to 0002, got %s", next)
	}
}

func TestProcessOpnameDuplicateCodeIsDistinguishable(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 10)

	// Baris terakhir berkode pendek membuat generator mulai lagi dari 0001,
	// padahal kode itu sudah dipakai baris sebelumnya
	today := time.Now().Format("20060102")
	existing := []models.StockOpname{
		{Code: "OPN" + today + "0001", OpnameDate: time.Now(), Status: "completed"},
		{Code: "LEGACY-1", OpnameDate: time.Now(), Status: "completed"},
	}
	for i := range existing {
		if err := db.Create(&existing[i]).Error; err != nil {
			t.Fatalf("failed to seed opname: %v", err)
		}
	}

	repo := NewStockOpnameRepository(db)
	_, _, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{{SparepartID: sparepart.ID, PhysicalStock: 7}},
	})
	if !errors.Is(err, ErrDuplicateOpnameCode) {
		t.Fatalf("expected ErrDuplicateOpnameCode, got %v", err)
	}

	// Sesi yang kalah tidak meninggalkan apa-apa
	var headers, details int64
	db.Model(&models.StockOpname{}).Count(&headers)
	db.Model(&models.StockOpnameItem{}).Count(&details)
	if headers != 2 || details != 0 {
		t.Errorf("expected 2 headers and 0 details, got %d and %d", headers, details)
	}
	if got := currentStock(t, db, sparepart.ID); got != 10 {
		t.Errorf("stock should be unchanged, got %d", got)
	}
}

func TestGetOpnameByID(t *testing.T) {
	db := newTestDB(t)
	sparepart := seedSparepart(t, db, "SP-0001", 30)

	repo := NewStockOpnameRepository(db)
	opname, _, err := repo.ProcessOpname(OpnameInput{
		Items: []OpnameItemInput{{SparepartID: sparepart.ID, PhysicalStock: 28}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := repo.GetByID(opname.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("expected 1 preloaded item, got %d", len(loaded.Items))
	}
	if loaded.Items[0].Sparepart.Code != "SP-0001" {
		t.Errorf("expected preloaded sparepart, got %q", loaded.Items[0].Sparepart.Code)
	}

	if _, err := repo.GetByID(999); !errors.Is(err, ErrOpnameNotFound) {
		t.Errorf("expected ErrOpnameNotFound, got %v", err)
	}
}
