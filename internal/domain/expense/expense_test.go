package expense

import (
	"errors"
	"testing"
	"time"
)

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(10000)
	if totals.GST != 1800 {
		t.Fatalf("expected gst 1800, got %v", totals.GST)
	}
	if totals.Total != 11800 {
		t.Fatalf("expected total 11800, got %v", totals.Total)
	}
}

func TestBaseAmountRoundTrip(t *testing.T) {
	service := NewService(NewStore())

	for _, base := range []float64{100, 2499.99, 10000, 85000} {
		expense := service.Create(Input{Category: "supplies", Vendor: "CleanCo", BaseAmount: base, Date: time.Now()})
		if got := expense.BaseAmount(); got != base {
			t.Fatalf("base %v: reconstructed %v", base, got)
		}
	}
}

func TestEditRoundTripPreservesBase(t *testing.T) {
	service := NewService(NewStore())
	expense := service.Create(Input{Category: "supplies", Vendor: "CleanCo", BaseAmount: 2499.99, Date: time.Now()})

	// Edit without touching the amount: category changes, figures must not drift.
	edited, err := service.Update(expense.ID, Input{Category: "equipment", Vendor: "CleanCo"}, false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if edited.BaseAmount() != 2499.99 {
		t.Fatalf("base drifted after edit: %v", edited.BaseAmount())
	}
	if edited.Amount != expense.Amount || edited.GST != expense.GST {
		t.Fatalf("totals drifted after edit: %+v vs %+v", edited, expense)
	}
	if edited.Category != "equipment" {
		t.Fatalf("category not updated: %s", edited.Category)
	}

	// Edit that does change the amount recomputes from the new base.
	repriced, err := service.Update(expense.ID, Input{Category: "equipment", Vendor: "CleanCo", BaseAmount: 5000}, true)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repriced.GST != 900 || repriced.Amount != 5900 {
		t.Fatalf("expected 900/5900, got %v/%v", repriced.GST, repriced.Amount)
	}
}

func TestApprovalIsOneShot(t *testing.T) {
	service := NewService(NewStore())
	expense := service.Create(Input{Category: "fuel", Vendor: "Pump", BaseAmount: 1000, Date: time.Now()})

	approved, err := service.Approve(expense.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}
	if approved.Amount != expense.Amount {
		t.Fatal("approval must not change totals")
	}

	if _, err := service.Reject(expense.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := service.Approve(expense.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on repeat approve, got %v", err)
	}
}

func TestRejectPendingExpense(t *testing.T) {
	service := NewService(NewStore())
	expense := service.Create(Input{Category: "misc", Vendor: "X", BaseAmount: 250, Date: time.Now()})

	rejected, err := service.Reject(expense.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
}
