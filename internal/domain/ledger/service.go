package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type Service struct {
	Repository      Repository
	CustomerChecker CounterpartyChecker
	MerchantChecker CounterpartyChecker

	// DefaultMethod is applied when a payment is recorded without an explicit
	// method. Comes from configuration, CASH by default.
	DefaultMethod PaymentMethod
}

func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	if !req.Pipeline.IsValid() {
		return nil, appErrors.NewValidationError("pipeline", "must be SALES or PURCHASE")
	}

	documentNumber := strings.TrimSpace(req.DocumentNumber)
	if documentNumber == "" {
		return nil, appErrors.NewValidationError("document_number", "is required")
	}

	if req.TotalAmount < 0 {
		return nil, appErrors.NewValidationError("total_amount", "must not be negative")
	}

	if err := s.ensureCounterpartyExists(ctx, req.Pipeline, req.CounterpartyId); err != nil {
		return nil, err
	}

	now := time.Now()
	issueDate := now
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}

	inv := &Invoice{
		Id:             pkg.GenerateULIDObject(),
		Pipeline:       req.Pipeline,
		CounterpartyId: req.CounterpartyId,
		DocumentNumber: documentNumber,
		IssueDate:      issueDate,
		PaidAmount:     0,
		Notes:          strings.TrimSpace(req.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Purchase bills start at zero and grow as items are added. Sales
	// invoices take the caller-supplied total directly.
	if req.Pipeline == PipelineSales {
		inv.TotalAmount = req.TotalAmount
	}
	Reconcile(inv, nil, nil)

	if err := s.Repository.CreateInvoice(ctx, inv); err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return inv, nil
}

// InvoiceDetail bundles an invoice with its children, mirroring what the
// detail pages need in one round trip.
type InvoiceDetail struct {
	Invoice  *Invoice    `json:"invoice"`
	Items    []*LineItem `json:"items"`
	Payments []*Payment  `json:"payments"`
}

func (s *Service) GetInvoice(ctx context.Context, invoiceID ulid.ULID) (*InvoiceDetail, error) {
	inv, err := s.Repository.GetInvoiceById(ctx, invoiceID)
	if err != nil {
		return nil, appErrors.ErrInvoiceNotFound.WithError(err)
	}

	items, err := s.Repository.GetItemsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	payments, err := s.Repository.GetPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &InvoiceDetail{Invoice: inv, Items: items, Payments: payments}, nil
}

func (s *Service) ListInvoices(ctx context.Context, pipeline Pipeline, pagination *pkg.PaginationParams) ([]*Invoice, int64, error) {
	if !pipeline.IsValid() {
		return nil, 0, appErrors.NewValidationError("pipeline", "must be SALES or PURCHASE")
	}
	return s.Repository.ListInvoices(ctx, pipeline, pagination)
}

func (s *Service) ListInvoicesByCounterparty(ctx context.Context, pipeline Pipeline, counterpartyID ulid.ULID, pagination *pkg.PaginationParams) ([]*Invoice, int64, error) {
	if !pipeline.IsValid() {
		return nil, 0, appErrors.NewValidationError("pipeline", "must be SALES or PURCHASE")
	}
	if err := s.ensureCounterpartyExists(ctx, pipeline, counterpartyID); err != nil {
		return nil, 0, err
	}
	return s.Repository.ListInvoicesByCounterparty(ctx, pipeline, counterpartyID, pagination)
}

func (s *Service) UpdateInvoice(ctx context.Context, invoiceID ulid.ULID, req *UpdateInvoiceRequest) (*Invoice, error) {
	var updated *Invoice
	err := s.Repository.WithInvoiceLock(ctx, invoiceID, func(repo Repository, inv *Invoice) error {
		if req.IssueDate != nil {
			inv.IssueDate = *req.IssueDate
		}
		if req.Notes != nil {
			inv.Notes = strings.TrimSpace(*req.Notes)
		}

		items, err := repo.GetItemsByInvoice(ctx, inv.Id)
		if err != nil {
			return appErrors.NewDatabaseError(err)
		}
		payments, err := repo.GetPaymentsByInvoice(ctx, inv.Id)
		if err != nil {
			return appErrors.NewDatabaseError(err)
		}

		if req.TotalAmount != nil {
			if *req.TotalAmount < 0 {
				return appErrors.NewValidationError("total_amount", "must not be negative")
			}
			if inv.Pipeline == PipelinePurchase {
				return appErrors.NewValidationError("total_amount", "is derived from line items on purchase bills")
			}
			if len(items) > 0 {
				return appErrors.NewValidationError("total_amount", "is derived from line items once items exist")
			}
			inv.TotalAmount = *req.TotalAmount
		}

		if req.PaidAmount != nil {
			if *req.PaidAmount < 0 {
				return appErrors.NewValidationError("paid_amount", "must not be negative")
			}
			if len(payments) > 0 {
				return appErrors.NewValidationError("paid_amount", "is derived from recorded payments")
			}
			// An opening balance on a fresh invoice: record it as a payment
			// so the amount stays derivable from children.
			if *req.PaidAmount > 0 {
				now := time.Now()
				opening := &Payment{
					Id:        pkg.GenerateULIDObject(),
					InvoiceId: inv.Id,
					Date:      now,
					Amount:    *req.PaidAmount,
					Method:    s.defaultMethod(),
					Note:      "Opening balance",
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := repo.CreatePayment(ctx, opening); err != nil {
					return appErrors.NewDatabaseError(err)
				}
				payments = append(payments, opening)
			}
		}

		updated, err = s.persistReconciled(ctx, repo, inv, items, payments)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, invoiceID ulid.ULID) error {
	return s.Repository.WithInvoiceLock(ctx, invoiceID, func(repo Repository, inv *Invoice) error {
		if err := repo.DeleteInvoiceCascade(ctx, inv.Id); err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return nil
	})
}

// ReconcileInvoice re-derives the header from current children. Normally every
// mutation already does this; the endpoint exists to repair data imported from
// elsewhere.
func (s *Service) ReconcileInvoice(ctx context.Context, invoiceID ulid.ULID) (*Invoice, error) {
	var updated *Invoice
	err := s.Repository.WithInvoiceLock(ctx, invoiceID, func(repo Repository, inv *Invoice) error {
		var err error
		updated, err = s.reconcileLocked(ctx, repo, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) AddItem(ctx context.Context, invoiceID ulid.ULID, req *ItemRequest) (*LineItem, *Invoice, error) {
	if err := validateItemRequest(req); err != nil {
		return nil, nil, err
	}

	var item *LineItem
	var updated *Invoice
	err := s.Repository.WithInvoiceLock(ctx, invoiceID, func(repo Repository, inv *Invoice) error {
		now := time.Now()
		date := inv.IssueDate
		if req.Date != nil {
			date = *req.Date
		}

		item = &LineItem{
			Id:          pkg.GenerateULIDObject(),
			InvoiceId:   inv.Id,
			Date:        date,
			Name:        strings.TrimSpace(req.Name),
			Amount:      req.Amount,
			Description: strings.TrimSpace(req.Description),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.CreateItem(ctx, item); err != nil {
			return appErrors.NewDatabaseError(err)
		}

		var err error
		updated, err = s.reconcileLocked(ctx, repo, inv)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return item, updated, nil
}

func (s *Service) UpdateItem(ctx context.Context, itemID ulid.ULID, patch *ItemPatch) (*LineItem, *Invoice, error) {
	item, err := s.Repository.GetItemById(ctx, itemID)
	if err != nil {
		return nil, nil, appErrors.ErrItemNotFound.WithError(err)
	}

	var updated *Invoice
	err = s.Repository.WithInvoiceLock(ctx, item.InvoiceId, func(repo Repository, inv *Invoice) error {
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return appErrors.NewValidationError("name", "must not be empty")
			}
			item.Name = name
		}
		if patch.Amount != nil {
			if *patch.Amount <= 0 {
				return appErrors.NewValidationError("amount", "must be greater than zero")
			}
			item.Amount = *patch.Amount
		}
		if patch.Date != nil {
			item.Date = *patch.Date
		}
		if patch.Description != nil {
			item.Description = strings.TrimSpace(*patch.Description)
		}
		item.UpdatedAt = time.Now()

		if err := repo.UpdateItem(ctx, item); err != nil {
			return appErrors.NewDatabaseError(err)
		}

		var err error
		updated, err = s.reconcileLocked(ctx, repo, inv)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return item, updated, nil
}

func (s *Service) DeleteItem(ctx context.Context, itemID ulid.ULID) (*Invoice, error) {
	item, err := s.Repository.GetItemById(ctx, itemID)
	if err != nil {
		return nil, appErrors.ErrItemNotFound.WithError(err)
	}

	var updated *Invoice
	err = s.Repository.WithInvoiceLock(ctx, item.InvoiceId, func(repo Repository, inv *Invoice) error {
		if err := repo.DeleteItem(ctx, item.Id); err != nil {
			return appErrors.NewDatabaseError(err)
		}
		var err error
		updated, err = s.reconcileLocked(ctx, repo, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) ListItems(ctx context.Context, invoiceID ulid.ULID) ([]*LineItem, error) {
	if _, err := s.Repository.GetInvoiceById(ctx, invoiceID); err != nil {
		return nil, appErrors.ErrInvoiceNotFound.WithError(err)
	}
	items, err := s.Repository.GetItemsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}

func (s *Service) AddPayment(ctx context.Context, invoiceID ulid.ULID, req *PaymentRequest) (*Payment, *Invoice, error) {
	if req.Amount <= 0 {
		return nil, nil, appErrors.NewValidationError("amount", "must be greater than zero")
	}

	method := req.Method
	if method == "" {
		method = s.defaultMethod()
	}
	if !method.IsValid() {
		return nil, nil, appErrors.NewValidationError("method", "must be one of CASH, UPI, CARD, BANK_TRANSFER, OTHER")
	}

	var payment *Payment
	var updated *Invoice
	err := s.Repository.WithInvoiceLock(ctx, invoiceID, func(repo Repository, inv *Invoice) error {
		now := time.Now()
		date := now
		if req.Date != nil {
			date = *req.Date
		}

		payment = &Payment{
			Id:        pkg.GenerateULIDObject(),
			InvoiceId: inv.Id,
			Date:      date,
			Amount:    req.Amount,
			Method:    method,
			Reference: strings.TrimSpace(req.Reference),
			Note:      strings.TrimSpace(req.Note),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.CreatePayment(ctx, payment); err != nil {
			return appErrors.NewDatabaseError(err)
		}

		var err error
		updated, err = s.reconcileLocked(ctx, repo, inv)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return payment, updated, nil
}

func (s *Service) UpdatePayment(ctx context.Context, paymentID ulid.ULID, patch *PaymentPatch) (*Payment, *Invoice, error) {
	payment, err := s.Repository.GetPaymentById(ctx, paymentID)
	if err != nil {
		return nil, nil, appErrors.ErrPaymentNotFound.WithError(err)
	}

	var updated *Invoice
	err = s.Repository.WithInvoiceLock(ctx, payment.InvoiceId, func(repo Repository, inv *Invoice) error {
		if patch.Amount != nil {
			if *patch.Amount <= 0 {
				return appErrors.NewValidationError("amount", "must be greater than zero")
			}
			payment.Amount = *patch.Amount
		}
		if patch.Method != nil {
			if !patch.Method.IsValid() {
				return appErrors.NewValidationError("method", "must be one of CASH, UPI, CARD, BANK_TRANSFER, OTHER")
			}
			payment.Method = *patch.Method
		}
		if patch.Date != nil {
			payment.Date = *patch.Date
		}
		if patch.Reference != nil {
			payment.Reference = strings.TrimSpace(*patch.Reference)
		}
		if patch.Note != nil {
			payment.Note = strings.TrimSpace(*patch.Note)
		}
		payment.UpdatedAt = time.Now()

		if err := repo.UpdatePayment(ctx, payment); err != nil {
			return appErrors.NewDatabaseError(err)
		}

		var err error
		updated, err = s.reconcileLocked(ctx, repo, inv)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return payment, updated, nil
}

func (s *Service) DeletePayment(ctx context.Context, paymentID ulid.ULID) (*Invoice, error) {
	payment, err := s.Repository.GetPaymentById(ctx, paymentID)
	if err != nil {
		return nil, appErrors.ErrPaymentNotFound.WithError(err)
	}

	var updated *Invoice
	err = s.Repository.WithInvoiceLock(ctx, payment.InvoiceId, func(repo Repository, inv *Invoice) error {
		if err := repo.DeletePayment(ctx, payment.Id); err != nil {
			return appErrors.NewDatabaseError(err)
		}
		var err error
		updated, err = s.reconcileLocked(ctx, repo, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) ListPayments(ctx context.Context, invoiceID ulid.ULID) ([]*Payment, error) {
	if _, err := s.Repository.GetInvoiceById(ctx, invoiceID); err != nil {
		return nil, appErrors.ErrInvoiceNotFound.WithError(err)
	}
	payments, err := s.Repository.GetPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return payments, nil
}

// reconcileLocked re-reads the children and persists the reconciled header.
// Must be called with the invoice row lock held.
func (s *Service) reconcileLocked(ctx context.Context, repo Repository, inv *Invoice) (*Invoice, error) {
	items, err := repo.GetItemsByInvoice(ctx, inv.Id)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	payments, err := repo.GetPaymentsByInvoice(ctx, inv.Id)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return s.persistReconciled(ctx, repo, inv, items, payments)
}

func (s *Service) persistReconciled(ctx context.Context, repo Repository, inv *Invoice, items []*LineItem, payments []*Payment) (*Invoice, error) {
	Reconcile(inv, items, payments)
	inv.UpdatedAt = time.Now()
	if err := repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return inv, nil
}

func (s *Service) ensureCounterpartyExists(ctx context.Context, pipeline Pipeline, counterpartyID ulid.ULID) error {
	checker := s.CustomerChecker
	if pipeline == PipelinePurchase {
		checker = s.MerchantChecker
	}
	if checker == nil {
		return appErrors.ErrInternalServer
	}
	return checker.Exists(ctx, counterpartyID)
}

func (s *Service) defaultMethod() PaymentMethod {
	if s.DefaultMethod.IsValid() {
		return s.DefaultMethod
	}
	return MethodCash
}

func validateItemRequest(req *ItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "is required")
	}
	if req.Amount <= 0 {
		return appErrors.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

type CreateInvoiceRequest struct {
	Pipeline       Pipeline
	CounterpartyId ulid.ULID
	DocumentNumber string
	TotalAmount    float64
	IssueDate      *time.Time
	Notes          string
}

type UpdateInvoiceRequest struct {
	TotalAmount *float64
	PaidAmount  *float64
	IssueDate   *time.Time
	Notes       *string
}

type ItemRequest struct {
	Date        *time.Time
	Name        string
	Amount      float64
	Description string
}

type ItemPatch struct {
	Date        *time.Time
	Name        *string
	Amount      *float64
	Description *string
}

type PaymentRequest struct {
	Date      *time.Time
	Amount    float64
	Method    PaymentMethod
	Reference string
	Note      string
}

type PaymentPatch struct {
	Date      *time.Time
	Amount    *float64
	Method    *PaymentMethod
	Reference *string
	Note      *string
}
