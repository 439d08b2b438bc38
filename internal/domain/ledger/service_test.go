package ledger_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

// memLedgerRepository is an in-memory Repository. WithInvoiceLock just runs fn
// against the same store, which is enough for single-goroutine tests.
type memLedgerRepository struct {
	invoices map[ulid.ULID]*ledger.Invoice
	items    map[ulid.ULID]*ledger.LineItem
	payments map[ulid.ULID]*ledger.Payment
}

func newMemLedgerRepository() *memLedgerRepository {
	return &memLedgerRepository{
		invoices: make(map[ulid.ULID]*ledger.Invoice),
		items:    make(map[ulid.ULID]*ledger.LineItem),
		payments: make(map[ulid.ULID]*ledger.Payment),
	}
}

func (m *memLedgerRepository) CreateInvoice(ctx context.Context, inv *ledger.Invoice) error {
	for _, existing := range m.invoices {
		if existing.Pipeline == inv.Pipeline && existing.DocumentNumber == inv.DocumentNumber {
			return appErrors.ErrDuplicateDocument
		}
	}
	copy := *inv
	m.invoices[inv.Id] = &copy
	return nil
}

func (m *memLedgerRepository) UpdateInvoice(ctx context.Context, inv *ledger.Invoice) error {
	if _, ok := m.invoices[inv.Id]; !ok {
		return appErrors.ErrInvoiceNotFound
	}
	copy := *inv
	m.invoices[inv.Id] = &copy
	return nil
}

func (m *memLedgerRepository) DeleteInvoiceCascade(ctx context.Context, invoiceID ulid.ULID) error {
	for id, item := range m.items {
		if item.InvoiceId == invoiceID {
			delete(m.items, id)
		}
	}
	for id, p := range m.payments {
		if p.InvoiceId == invoiceID {
			delete(m.payments, id)
		}
	}
	delete(m.invoices, invoiceID)
	return nil
}

func (m *memLedgerRepository) GetInvoiceById(ctx context.Context, invoiceID ulid.ULID) (*ledger.Invoice, error) {
	inv, ok := m.invoices[invoiceID]
	if !ok {
		return nil, appErrors.ErrInvoiceNotFound
	}
	copy := *inv
	return &copy, nil
}

func (m *memLedgerRepository) ListInvoices(ctx context.Context, pipeline ledger.Pipeline, pagination *pkg.PaginationParams) ([]*ledger.Invoice, int64, error) {
	var out []*ledger.Invoice
	for _, inv := range m.invoices {
		if inv.Pipeline == pipeline {
			copy := *inv
			out = append(out, &copy)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memLedgerRepository) ListInvoicesByCounterparty(ctx context.Context, pipeline ledger.Pipeline, counterpartyID ulid.ULID, pagination *pkg.PaginationParams) ([]*ledger.Invoice, int64, error) {
	var out []*ledger.Invoice
	for _, inv := range m.invoices {
		if inv.Pipeline == pipeline && inv.CounterpartyId == counterpartyID {
			copy := *inv
			out = append(out, &copy)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memLedgerRepository) CreateItem(ctx context.Context, item *ledger.LineItem) error {
	copy := *item
	m.items[item.Id] = &copy
	return nil
}

func (m *memLedgerRepository) UpdateItem(ctx context.Context, item *ledger.LineItem) error {
	if _, ok := m.items[item.Id]; !ok {
		return appErrors.ErrItemNotFound
	}
	copy := *item
	m.items[item.Id] = &copy
	return nil
}

func (m *memLedgerRepository) DeleteItem(ctx context.Context, itemID ulid.ULID) error {
	delete(m.items, itemID)
	return nil
}

func (m *memLedgerRepository) GetItemById(ctx context.Context, itemID ulid.ULID) (*ledger.LineItem, error) {
	item, ok := m.items[itemID]
	if !ok {
		return nil, appErrors.ErrItemNotFound
	}
	copy := *item
	return &copy, nil
}

func (m *memLedgerRepository) GetItemsByInvoice(ctx context.Context, invoiceID ulid.ULID) ([]*ledger.LineItem, error) {
	var out []*ledger.LineItem
	for _, item := range m.items {
		if item.InvoiceId == invoiceID {
			copy := *item
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (m *memLedgerRepository) CreatePayment(ctx context.Context, payment *ledger.Payment) error {
	copy := *payment
	m.payments[payment.Id] = &copy
	return nil
}

func (m *memLedgerRepository) UpdatePayment(ctx context.Context, payment *ledger.Payment) error {
	if _, ok := m.payments[payment.Id]; !ok {
		return appErrors.ErrPaymentNotFound
	}
	copy := *payment
	m.payments[payment.Id] = &copy
	return nil
}

func (m *memLedgerRepository) DeletePayment(ctx context.Context, paymentID ulid.ULID) error {
	delete(m.payments, paymentID)
	return nil
}

func (m *memLedgerRepository) GetPaymentById(ctx context.Context, paymentID ulid.ULID) (*ledger.Payment, error) {
	p, ok := m.payments[paymentID]
	if !ok {
		return nil, appErrors.ErrPaymentNotFound
	}
	copy := *p
	return &copy, nil
}

func (m *memLedgerRepository) GetPaymentsByInvoice(ctx context.Context, invoiceID ulid.ULID) ([]*ledger.Payment, error) {
	var out []*ledger.Payment
	for _, p := range m.payments {
		if p.InvoiceId == invoiceID {
			copy := *p
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (m *memLedgerRepository) WithInvoiceLock(ctx context.Context, invoiceID ulid.ULID, fn func(repo ledger.Repository, inv *ledger.Invoice) error) error {
	inv, ok := m.invoices[invoiceID]
	if !ok {
		return appErrors.ErrInvoiceNotFound
	}
	copy := *inv
	return fn(m, &copy)
}

type fakeChecker struct {
	existsFn func(ctx context.Context, id ulid.ULID) error
}

func (f *fakeChecker) Exists(ctx context.Context, id ulid.ULID) error {
	if f.existsFn != nil {
		return f.existsFn(ctx, id)
	}
	return nil
}

func newTestService(repo *memLedgerRepository) *ledger.Service {
	return &ledger.Service{
		Repository:      repo,
		CustomerChecker: &fakeChecker{},
		MerchantChecker: &fakeChecker{},
		DefaultMethod:   ledger.MethodCash,
	}
}

func TestCreateInvoiceValidations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *ledger.CreateInvoiceRequest
		existsErr   error
		wantErrCode string
	}{
		{
			name:        "missing document number",
			req:         &ledger.CreateInvoiceRequest{Pipeline: ledger.PipelineSales, DocumentNumber: "  "},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "invalid pipeline",
			req:         &ledger.CreateInvoiceRequest{Pipeline: "TRANSFER", DocumentNumber: "INV-1"},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "negative total",
			req:         &ledger.CreateInvoiceRequest{Pipeline: ledger.PipelineSales, DocumentNumber: "INV-1", TotalAmount: -1},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "unknown customer",
			req:         &ledger.CreateInvoiceRequest{Pipeline: ledger.PipelineSales, DocumentNumber: "INV-1", TotalAmount: 100},
			existsErr:   appErrors.ErrCustomerNotFound,
			wantErrCode: appErrors.ErrCustomerNotFound.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMemLedgerRepository())
			svc.CustomerChecker = &fakeChecker{existsFn: func(ctx context.Context, id ulid.ULID) error {
				return tt.existsErr
			}}

			_, err := svc.CreateInvoice(ctx, tt.req)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
			}
		})
	}
}

func TestCreateInvoiceDuplicateDocumentNumber(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newMemLedgerRepository())

	first := &ledger.CreateInvoiceRequest{
		Pipeline:       ledger.PipelineSales,
		CounterpartyId: ulid.Make(),
		DocumentNumber: "INV-100",
		TotalAmount:    500,
	}
	if _, err := svc.CreateInvoice(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.CreateInvoice(ctx, first)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr != appErrors.ErrDuplicateDocument {
		t.Fatalf("expected duplicate document error, got %v", err)
	}

	// Same number on the other pipeline is allowed.
	bill := &ledger.CreateInvoiceRequest{
		Pipeline:       ledger.PipelinePurchase,
		CounterpartyId: ulid.Make(),
		DocumentNumber: "INV-100",
	}
	if _, err := svc.CreateInvoice(ctx, bill); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// A sales invoice created with a header total, then partially paid, keeps the
// header total and tracks the balance.
func TestSalesInvoicePaymentFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newMemLedgerRepository())

	inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
		Pipeline:       ledger.PipelineSales,
		CounterpartyId: ulid.Make(),
		DocumentNumber: "INV-1",
		TotalAmount:    1000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.Status != ledger.StatusPending || inv.DueAmount != 1000 {
		t.Fatalf("fresh invoice: %+v", inv)
	}

	_, updated, err := svc.AddPayment(ctx, inv.Id, &ledger.PaymentRequest{Amount: 300, Method: ledger.MethodUPI})
	if err != nil {
		t.Fatalf("add payment: %v", err)
	}
	if updated.TotalAmount != 1000 || updated.PaidAmount != 300 || updated.DueAmount != 700 {
		t.Fatalf("after partial payment: %+v", updated)
	}
	if updated.Status != ledger.StatusPartiallyPaid {
		t.Fatalf("expected PARTIALLY_PAID, got %s", updated.Status)
	}

	_, updated, err = svc.AddPayment(ctx, inv.Id, &ledger.PaymentRequest{Amount: 700})
	if err != nil {
		t.Fatalf("add payment: %v", err)
	}
	if updated.Status != ledger.StatusPaid || updated.DueAmount != 0 {
		t.Fatalf("after full payment: %+v", updated)
	}
}

// A purchase bill derives its total from items as they are added.
func TestPurchaseBillItemFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemLedgerRepository()
	svc := newTestService(repo)

	inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
		Pipeline:       ledger.PipelinePurchase,
		CounterpartyId: ulid.Make(),
		DocumentNumber: "BILL-1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	item, updated, err := svc.AddItem(ctx, inv.Id, &ledger.ItemRequest{Name: "Steel rods", Amount: 400})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if updated.TotalAmount != 400 || updated.Status != ledger.StatusPending {
		t.Fatalf("after first item: %+v", updated)
	}

	_, updated, err = svc.AddItem(ctx, inv.Id, &ledger.ItemRequest{Name: "Cement", Amount: 600})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if updated.TotalAmount != 1000 {
		t.Fatalf("after second item: %+v", updated)
	}

	newAmount := 150.0
	_, updated, err = svc.UpdateItem(ctx, item.Id, &ledger.ItemPatch{Amount: &newAmount})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if updated.TotalAmount != 750 {
		t.Fatalf("after item update: %+v", updated)
	}

	updated, err = svc.DeleteItem(ctx, item.Id)
	if err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if updated.TotalAmount != 600 || updated.DueAmount != 600 {
		t.Fatalf("after item delete: %+v", updated)
	}
}

func TestDeletePaymentRevertsStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newMemLedgerRepository())

	inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
		Pipeline:       ledger.PipelineSales,
		CounterpartyId: ulid.Make(),
		DocumentNumber: "INV-2",
		TotalAmount:    500,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	payment, updated, err := svc.AddPayment(ctx, inv.Id, &ledger.PaymentRequest{Amount: 500})
	if err != nil {
		t.Fatalf("add payment: %v", err)
	}
	if updated.Status != ledger.StatusPaid {
		t.Fatalf("expected PAID, got %s", updated.Status)
	}

	updated, err = svc.DeletePayment(ctx, payment.Id)
	if err != nil {
		t.Fatalf("delete payment: %v", err)
	}
	if updated.Status != ledger.StatusPending || updated.DueAmount != 500 {
		t.Fatalf("after payment delete: %+v", updated)
	}
}

func TestUpdateInvoiceHeaderEditRules(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("total editable on sales invoice without items", func(t *testing.T) {
		svc := newTestService(newMemLedgerRepository())
		inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
			Pipeline:       ledger.PipelineSales,
			CounterpartyId: ulid.Make(),
			DocumentNumber: "INV-3",
			TotalAmount:    100,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		newTotal := 250.0
		updated, err := svc.UpdateInvoice(ctx, inv.Id, &ledger.UpdateInvoiceRequest{TotalAmount: &newTotal})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.TotalAmount != 250 || updated.DueAmount != 250 {
			t.Fatalf("after total edit: %+v", updated)
		}
	})

	t.Run("total locked once items exist", func(t *testing.T) {
		svc := newTestService(newMemLedgerRepository())
		inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
			Pipeline:       ledger.PipelineSales,
			CounterpartyId: ulid.Make(),
			DocumentNumber: "INV-4",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, _, err := svc.AddItem(ctx, inv.Id, &ledger.ItemRequest{Name: "Service fee", Amount: 90}); err != nil {
			t.Fatalf("add item: %v", err)
		}

		newTotal := 500.0
		_, err = svc.UpdateInvoice(ctx, inv.Id, &ledger.UpdateInvoiceRequest{TotalAmount: &newTotal})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("total never editable on purchase bill", func(t *testing.T) {
		svc := newTestService(newMemLedgerRepository())
		inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
			Pipeline:       ledger.PipelinePurchase,
			CounterpartyId: ulid.Make(),
			DocumentNumber: "BILL-2",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		newTotal := 500.0
		_, err = svc.UpdateInvoice(ctx, inv.Id, &ledger.UpdateInvoiceRequest{TotalAmount: &newTotal})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("paid amount edit records an opening balance payment", func(t *testing.T) {
		repo := newMemLedgerRepository()
		svc := newTestService(repo)
		inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
			Pipeline:       ledger.PipelineSales,
			CounterpartyId: ulid.Make(),
			DocumentNumber: "INV-5",
			TotalAmount:    1000,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		opening := 400.0
		updated, err := svc.UpdateInvoice(ctx, inv.Id, &ledger.UpdateInvoiceRequest{PaidAmount: &opening})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.PaidAmount != 400 || updated.Status != ledger.StatusPartiallyPaid {
			t.Fatalf("after paid edit: %+v", updated)
		}

		payments, err := svc.ListPayments(ctx, inv.Id)
		if err != nil {
			t.Fatalf("list payments: %v", err)
		}
		if len(payments) != 1 || payments[0].Amount != 400 || payments[0].Method != ledger.MethodCash {
			t.Fatalf("expected one CASH opening payment, got %+v", payments)
		}
	})

	t.Run("paid amount locked once payments exist", func(t *testing.T) {
		svc := newTestService(newMemLedgerRepository())
		inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
			Pipeline:       ledger.PipelineSales,
			CounterpartyId: ulid.Make(),
			DocumentNumber: "INV-6",
			TotalAmount:    1000,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, _, err := svc.AddPayment(ctx, inv.Id, &ledger.PaymentRequest{Amount: 100}); err != nil {
			t.Fatalf("add payment: %v", err)
		}

		paid := 600.0
		_, err = svc.UpdateInvoice(ctx, inv.Id, &ledger.UpdateInvoiceRequest{PaidAmount: &paid})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestDeleteInvoiceCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemLedgerRepository()
	svc := newTestService(repo)

	inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
		Pipeline:       ledger.PipelinePurchase,
		CounterpartyId: ulid.Make(),
		DocumentNumber: "BILL-3",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.AddItem(ctx, inv.Id, &ledger.ItemRequest{Name: "Paint", Amount: 120}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, _, err := svc.AddPayment(ctx, inv.Id, &ledger.PaymentRequest{Amount: 50}); err != nil {
		t.Fatalf("add payment: %v", err)
	}

	if err := svc.DeleteInvoice(ctx, inv.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(repo.invoices) != 0 || len(repo.items) != 0 || len(repo.payments) != 0 {
		t.Fatalf("expected empty store, got %d invoices, %d items, %d payments",
			len(repo.invoices), len(repo.items), len(repo.payments))
	}
}

func TestMutationsOnMissingInvoice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newMemLedgerRepository())

	missing := ulid.Make()

	if _, _, err := svc.AddItem(ctx, missing, &ledger.ItemRequest{Name: "x", Amount: 1}); err != appErrors.ErrInvoiceNotFound {
		t.Errorf("AddItem: expected ErrInvoiceNotFound, got %v", err)
	}
	if _, _, err := svc.AddPayment(ctx, missing, &ledger.PaymentRequest{Amount: 1}); err != appErrors.ErrInvoiceNotFound {
		t.Errorf("AddPayment: expected ErrInvoiceNotFound, got %v", err)
	}
	if err := svc.DeleteInvoice(ctx, missing); err != appErrors.ErrInvoiceNotFound {
		t.Errorf("DeleteInvoice: expected ErrInvoiceNotFound, got %v", err)
	}
	if _, err := svc.ReconcileInvoice(ctx, missing); err != appErrors.ErrInvoiceNotFound {
		t.Errorf("ReconcileInvoice: expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestAddPaymentUsesDefaultMethod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(newMemLedgerRepository())
	svc.DefaultMethod = ledger.MethodUPI

	inv, err := svc.CreateInvoice(ctx, &ledger.CreateInvoiceRequest{
		Pipeline:       ledger.PipelineSales,
		CounterpartyId: ulid.Make(),
		DocumentNumber: "INV-7",
		TotalAmount:    100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	payment, _, err := svc.AddPayment(ctx, inv.Id, &ledger.PaymentRequest{Amount: 100})
	if err != nil {
		t.Fatalf("add payment: %v", err)
	}
	if payment.Method != ledger.MethodUPI {
		t.Fatalf("expected default method UPI, got %s", payment.Method)
	}
}
