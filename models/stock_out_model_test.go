package models

import (
	"errors"
	"testing"
	"time"
)

func TestMarkApproved(t *testing.T) {
	now := time.Now()
	stockOut := StockOut{Status: StockOutPending}

	if err := stockOut.MarkApproved(now, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stockOut.Status != StockOutApproved {
		t.Errorf("expected status approved, got %s", stockOut.Status)
	}
	if stockOut.ApprovedAt == nil || !stockOut.ApprovedAt.Equal(now) {
		t.Errorf("expected approved_at %v, got %v", now, stockOut.ApprovedAt)
	}
	if stockOut.ApprovedBy != 7 {
		t.Errorf("expected approved_by 7, got %d", stockOut.ApprovedBy)
	}

	// Status final, tidak bisa diputuskan lagi
	if err := stockOut.MarkApproved(now, 7); !errors.Is(err, ErrNotPending) {
		t.Errorf("expected ErrNotPending, got %v", err)
	}
	if err := stockOut.MarkRejected("terlambat"); !errors.Is(err, ErrNotPending) {
		t.Errorf("expected ErrNotPending, got %v", err)
	}
}

func TestMarkRejected(t *testing.T) {
	stockOut := StockOut{Status: StockOutPending}

	for _, reason := range []string{"", "   ", "\t"} {
		if err := stockOut.MarkRejected(reason); !errors.Is(err, ErrEmptyReason) {
			t.Errorf("reason %q: expected ErrEmptyReason, got %v", reason, err)
		}
		if stockOut.Status != StockOutPending {
			t.Fatalf("status changed after failed rejection: %s", stockOut.Status)
		}
	}

	if err := stockOut.MarkRejected("stok dialihkan ke unit lain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stockOut.Status != StockOutRejected {
		t.Errorf("expected status rejected, got %s", stockOut.Status)
	}
	if stockOut.RejectedReason != "stok dialihkan ke unit lain" {
		t.Errorf("unexpected reason %q", stockOut.RejectedReason)
	}

	if err := stockOut.MarkApproved(time.Now(), 1); !errors.Is(err, ErrNotPending) {
		t.Errorf("expected ErrNotPending after rejection, got %v", err)
	}
}

func TestCanDelete(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{StockOutPending, true},
		{StockOutApproved, false},
		{StockOutRejected, false},
	}

	for _, tc := range cases {
		stockOut := StockOut{Status: tc.status}
		if got := stockOut.CanDelete(); got != tc.want {
			t.Errorf("status %s: expected CanDelete %v, got %v", tc.status, tc.want, got)
		}
	}
}
