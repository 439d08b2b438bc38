package ledger

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	// DeleteInvoiceCascade removes the invoice together with all of its line
	// items and payments. Implementations must make the three deletions
	// atomic.
	DeleteInvoiceCascade(ctx context.Context, invoiceID ulid.ULID) error
	GetInvoiceById(ctx context.Context, invoiceID ulid.ULID) (*Invoice, error)
	ListInvoices(ctx context.Context, pipeline Pipeline, pagination *pkg.PaginationParams) ([]*Invoice, int64, error)
	ListInvoicesByCounterparty(ctx context.Context, pipeline Pipeline, counterpartyID ulid.ULID, pagination *pkg.PaginationParams) ([]*Invoice, int64, error)

	CreateItem(ctx context.Context, item *LineItem) error
	UpdateItem(ctx context.Context, item *LineItem) error
	DeleteItem(ctx context.Context, itemID ulid.ULID) error
	GetItemById(ctx context.Context, itemID ulid.ULID) (*LineItem, error)
	GetItemsByInvoice(ctx context.Context, invoiceID ulid.ULID) ([]*LineItem, error)

	CreatePayment(ctx context.Context, payment *Payment) error
	UpdatePayment(ctx context.Context, payment *Payment) error
	DeletePayment(ctx context.Context, paymentID ulid.ULID) error
	GetPaymentById(ctx context.Context, paymentID ulid.ULID) (*Payment, error)
	GetPaymentsByInvoice(ctx context.Context, invoiceID ulid.ULID) ([]*Payment, error)

	// WithInvoiceLock runs fn inside a transaction holding an exclusive lock
	// on the invoice row. The Repository passed to fn is scoped to that
	// transaction; the invoice is the freshly locked header. Returning an
	// error rolls the whole transaction back, so a child write and the
	// header recompute either land together or not at all.
	WithInvoiceLock(ctx context.Context, invoiceID ulid.ULID, fn func(repo Repository, inv *Invoice) error) error
}

// CounterpartyChecker is the slice of the customer/merchant services the
// ledger needs: existence of the owning counterparty.
type CounterpartyChecker interface {
	Exists(ctx context.Context, id ulid.ULID) error
}
