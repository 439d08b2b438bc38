package ledger_test

import (
	"testing"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
)

func items(amounts ...float64) []*ledger.LineItem {
	out := make([]*ledger.LineItem, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, &ledger.LineItem{Amount: a})
	}
	return out
}

func payments(amounts ...float64) []*ledger.Payment {
	out := make([]*ledger.Payment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, &ledger.Payment{Amount: a})
	}
	return out
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pipeline   ledger.Pipeline
		header     float64
		items      []*ledger.LineItem
		payments   []*ledger.Payment
		wantTotal  float64
		wantPaid   float64
		wantDue    float64
		wantStatus ledger.InvoiceStatus
	}{
		{
			name:       "sales header total survives without items",
			pipeline:   ledger.PipelineSales,
			header:     1000,
			payments:   payments(300),
			wantTotal:  1000,
			wantPaid:   300,
			wantDue:    700,
			wantStatus: ledger.StatusPartiallyPaid,
		},
		{
			name:       "sales items override header total",
			pipeline:   ledger.PipelineSales,
			header:     1000,
			items:      items(200, 300),
			wantTotal:  500,
			wantPaid:   0,
			wantDue:    500,
			wantStatus: ledger.StatusPending,
		},
		{
			name:       "purchase total always derived from items",
			pipeline:   ledger.PipelinePurchase,
			header:     9999,
			items:      items(150, 250),
			payments:   payments(400),
			wantTotal:  400,
			wantPaid:   400,
			wantDue:    0,
			wantStatus: ledger.StatusPaid,
		},
		{
			name:       "purchase with no items collapses to zero and reads paid",
			pipeline:   ledger.PipelinePurchase,
			header:     500,
			wantTotal:  0,
			wantPaid:   0,
			wantDue:    0,
			wantStatus: ledger.StatusPaid,
		},
		{
			name:       "overpayment clamps due to zero",
			pipeline:   ledger.PipelineSales,
			items:      items(100),
			payments:   payments(80, 50),
			wantTotal:  100,
			wantPaid:   130,
			wantDue:    0,
			wantStatus: ledger.StatusPaid,
		},
		{
			name:       "exact payment is paid not partial",
			pipeline:   ledger.PipelineSales,
			items:      items(250),
			payments:   payments(250),
			wantTotal:  250,
			wantPaid:   250,
			wantDue:    0,
			wantStatus: ledger.StatusPaid,
		},
		{
			name:       "zero total zero paid is paid",
			pipeline:   ledger.PipelineSales,
			wantTotal:  0,
			wantPaid:   0,
			wantDue:    0,
			wantStatus: ledger.StatusPaid,
		},
		{
			name:       "unpaid invoice stays pending",
			pipeline:   ledger.PipelineSales,
			items:      items(400),
			wantTotal:  400,
			wantPaid:   0,
			wantDue:    400,
			wantStatus: ledger.StatusPending,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			inv := &ledger.Invoice{
				Pipeline:    tt.pipeline,
				TotalAmount: tt.header,
			}
			ledger.Reconcile(inv, tt.items, tt.payments)

			if inv.TotalAmount != tt.wantTotal {
				t.Errorf("total: got %v, want %v", inv.TotalAmount, tt.wantTotal)
			}
			if inv.PaidAmount != tt.wantPaid {
				t.Errorf("paid: got %v, want %v", inv.PaidAmount, tt.wantPaid)
			}
			if inv.DueAmount != tt.wantDue {
				t.Errorf("due: got %v, want %v", inv.DueAmount, tt.wantDue)
			}
			if inv.Status != tt.wantStatus {
				t.Errorf("status: got %s, want %s", inv.Status, tt.wantStatus)
			}
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	t.Parallel()

	inv := &ledger.Invoice{Pipeline: ledger.PipelineSales, TotalAmount: 1000}
	lines := items(600, 400)
	paid := payments(500)

	ledger.Reconcile(inv, lines, paid)
	first := *inv
	ledger.Reconcile(inv, lines, paid)

	if *inv != first {
		t.Fatalf("second reconcile changed the header: %+v vs %+v", *inv, first)
	}
}

func TestReconcileAfterRemovingAllItems(t *testing.T) {
	t.Parallel()

	inv := &ledger.Invoice{Pipeline: ledger.PipelinePurchase}
	ledger.Reconcile(inv, items(300), nil)
	if inv.TotalAmount != 300 || inv.Status != ledger.StatusPending {
		t.Fatalf("setup: %+v", inv)
	}

	ledger.Reconcile(inv, nil, nil)
	if inv.TotalAmount != 0 || inv.DueAmount != 0 {
		t.Errorf("expected zeroed totals, got total=%v due=%v", inv.TotalAmount, inv.DueAmount)
	}
	if inv.Status != ledger.StatusPaid {
		t.Errorf("expected PAID on empty invoice, got %s", inv.Status)
	}
}
