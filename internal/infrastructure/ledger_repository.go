package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint violations,
// raised when a document number collides within a pipeline.
const uniqueViolation = "23505"

type LedgerRepository struct {
	DB *gorm.DB
}

type invoiceDB struct {
	Id             string    `gorm:"type:varchar(26);primaryKey"`
	Pipeline       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_invoices_document,priority:1"`
	CounterpartyId string    `gorm:"type:varchar(26);index;not null"`
	DocumentNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_document,priority:2"`
	IssueDate      time.Time `gorm:"type:date;not null"`
	TotalAmount    float64   `gorm:"type:decimal(15,2);not null;default:0"`
	PaidAmount     float64   `gorm:"type:decimal(15,2);not null;default:0"`
	DueAmount      float64   `gorm:"type:decimal(15,2);not null;default:0"`
	Status         string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Notes          string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (invoiceDB) TableName() string {
	return "invoices"
}

type lineItemDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	InvoiceId   string    `gorm:"type:varchar(26);index;not null"`
	Date        time.Time `gorm:"type:date;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Amount      float64   `gorm:"type:decimal(15,2);not null"`
	Description string    `gorm:"type:varchar(500)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (lineItemDB) TableName() string {
	return "line_items"
}

type paymentDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	InvoiceId string    `gorm:"type:varchar(26);index;not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	Method    string    `gorm:"type:varchar(20);not null;default:'CASH'"`
	Reference string    `gorm:"type:varchar(100)"`
	Note      string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (paymentDB) TableName() string {
	return "payments"
}

func toDomainInvoice(idb *invoiceDB) (*ledger.Invoice, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	cid, err := pkg.ParseULID(idb.CounterpartyId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &ledger.Invoice{
		Id:             id,
		Pipeline:       ledger.Pipeline(idb.Pipeline),
		CounterpartyId: cid,
		DocumentNumber: idb.DocumentNumber,
		IssueDate:      idb.IssueDate,
		TotalAmount:    idb.TotalAmount,
		PaidAmount:     idb.PaidAmount,
		DueAmount:      idb.DueAmount,
		Status:         ledger.InvoiceStatus(idb.Status),
		Notes:          idb.Notes,
		CreatedAt:      idb.CreatedAt,
		UpdatedAt:      idb.UpdatedAt,
	}, nil
}

func toDBInvoice(inv *ledger.Invoice) *invoiceDB {
	return &invoiceDB{
		Id:             inv.Id.String(),
		Pipeline:       string(inv.Pipeline),
		CounterpartyId: inv.CounterpartyId.String(),
		DocumentNumber: inv.DocumentNumber,
		IssueDate:      inv.IssueDate,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     inv.PaidAmount,
		DueAmount:      inv.DueAmount,
		Status:         string(inv.Status),
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func toDomainLineItem(ldb *lineItemDB) (*ledger.LineItem, error) {
	id, err := pkg.ParseULID(ldb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	iid, err := pkg.ParseULID(ldb.InvoiceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &ledger.LineItem{
		Id:          id,
		InvoiceId:   iid,
		Date:        ldb.Date,
		Name:        ldb.Name,
		Amount:      ldb.Amount,
		Description: ldb.Description,
		CreatedAt:   ldb.CreatedAt,
		UpdatedAt:   ldb.UpdatedAt,
	}, nil
}

func toDBLineItem(item *ledger.LineItem) *lineItemDB {
	return &lineItemDB{
		Id:          item.Id.String(),
		InvoiceId:   item.InvoiceId.String(),
		Date:        item.Date,
		Name:        item.Name,
		Amount:      item.Amount,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toDomainPayment(pdb *paymentDB) (*ledger.Payment, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	iid, err := pkg.ParseULID(pdb.InvoiceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &ledger.Payment{
		Id:        id,
		InvoiceId: iid,
		Date:      pdb.Date,
		Amount:    pdb.Amount,
		Method:    ledger.PaymentMethod(pdb.Method),
		Reference: pdb.Reference,
		Note:      pdb.Note,
		CreatedAt: pdb.CreatedAt,
		UpdatedAt: pdb.UpdatedAt,
	}, nil
}

func toDBPayment(p *ledger.Payment) *paymentDB {
	return &paymentDB{
		Id:        p.Id.String(),
		InvoiceId: p.InvoiceId.String(),
		Date:      p.Date,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Reference: p.Reference,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *LedgerRepository) CreateInvoice(ctx context.Context, inv *ledger.Invoice) error {
	err := r.DB.WithContext(ctx).Create(toDBInvoice(inv)).Error
	return mapUniqueViolation(err)
}

func (r *LedgerRepository) UpdateInvoice(ctx context.Context, inv *ledger.Invoice) error {
	idb := toDBInvoice(inv)
	return r.DB.WithContext(ctx).Model(&invoiceDB{}).
		Where("id = ?", idb.Id).
		Select("issue_date", "total_amount", "paid_amount", "due_amount", "status", "notes", "updated_at").
		Updates(idb).Error
}

func (r *LedgerRepository) DeleteInvoiceCascade(ctx context.Context, invoiceID ulid.ULID) error {
	id := invoiceID.String()
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&paymentDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&lineItemDB{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&invoiceDB{}).Error
	})
}

func (r *LedgerRepository) GetInvoiceById(ctx context.Context, invoiceID ulid.ULID) (*ledger.Invoice, error) {
	var idb invoiceDB
	err := r.DB.WithContext(ctx).Where("id = ?", invoiceID.String()).First(&idb).Error
	if err != nil {
		return nil, err
	}
	return toDomainInvoice(&idb)
}

func (r *LedgerRepository) ListInvoices(ctx context.Context, pipeline ledger.Pipeline, pagination *pkg.PaginationParams) ([]*ledger.Invoice, int64, error) {
	query := r.DB.WithContext(ctx).Model(&invoiceDB{}).Where("pipeline = ?", string(pipeline))
	return pkg.Paginate(query, pagination, "issue_date DESC", toDomainInvoice)
}

func (r *LedgerRepository) ListInvoicesByCounterparty(ctx context.Context, pipeline ledger.Pipeline, counterpartyID ulid.ULID, pagination *pkg.PaginationParams) ([]*ledger.Invoice, int64, error) {
	query := r.DB.WithContext(ctx).Model(&invoiceDB{}).
		Where("pipeline = ? AND counterparty_id = ?", string(pipeline), counterpartyID.String())
	return pkg.Paginate(query, pagination, "issue_date DESC", toDomainInvoice)
}

func (r *LedgerRepository) CreateItem(ctx context.Context, item *ledger.LineItem) error {
	return r.DB.WithContext(ctx).Create(toDBLineItem(item)).Error
}

func (r *LedgerRepository) UpdateItem(ctx context.Context, item *ledger.LineItem) error {
	ldb := toDBLineItem(item)
	return r.DB.WithContext(ctx).Model(&lineItemDB{}).
		Where("id = ?", ldb.Id).
		Select("date", "name", "amount", "description", "updated_at").
		Updates(ldb).Error
}

func (r *LedgerRepository) DeleteItem(ctx context.Context, itemID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", itemID.String()).Delete(&lineItemDB{}).Error
}

func (r *LedgerRepository) GetItemById(ctx context.Context, itemID ulid.ULID) (*ledger.LineItem, error) {
	var ldb lineItemDB
	err := r.DB.WithContext(ctx).Where("id = ?", itemID.String()).First(&ldb).Error
	if err != nil {
		return nil, err
	}
	return toDomainLineItem(&ldb)
}

func (r *LedgerRepository) GetItemsByInvoice(ctx context.Context, invoiceID ulid.ULID) ([]*ledger.LineItem, error) {
	var rows []lineItemDB
	err := r.DB.WithContext(ctx).
		Where("invoice_id = ?", invoiceID.String()).
		Order("date DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*ledger.LineItem, 0, len(rows))
	for i := range rows {
		item, err := toDomainLineItem(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *LedgerRepository) CreatePayment(ctx context.Context, payment *ledger.Payment) error {
	return r.DB.WithContext(ctx).Create(toDBPayment(payment)).Error
}

func (r *LedgerRepository) UpdatePayment(ctx context.Context, payment *ledger.Payment) error {
	pdb := toDBPayment(payment)
	return r.DB.WithContext(ctx).Model(&paymentDB{}).
		Where("id = ?", pdb.Id).
		Select("date", "amount", "method", "reference", "note", "updated_at").
		Updates(pdb).Error
}

func (r *LedgerRepository) DeletePayment(ctx context.Context, paymentID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", paymentID.String()).Delete(&paymentDB{}).Error
}

func (r *LedgerRepository) GetPaymentById(ctx context.Context, paymentID ulid.ULID) (*ledger.Payment, error) {
	var pdb paymentDB
	err := r.DB.WithContext(ctx).Where("id = ?", paymentID.String()).First(&pdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainPayment(&pdb)
}

func (r *LedgerRepository) GetPaymentsByInvoice(ctx context.Context, invoiceID ulid.ULID) ([]*ledger.Payment, error) {
	var rows []paymentDB
	err := r.DB.WithContext(ctx).
		Where("invoice_id = ?", invoiceID.String()).
		Order("date DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*ledger.Payment, 0, len(rows))
	for i := range rows {
		payment, err := toDomainPayment(&rows[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// WithInvoiceLock serializes mutations per invoice: the header row is locked
// FOR UPDATE for the duration of the transaction, so two concurrent payment
// or item mutations on the same invoice cannot interleave their child reads
// with the header write.
func (r *LedgerRepository) WithInvoiceLock(ctx context.Context, invoiceID ulid.ULID, fn func(repo ledger.Repository, inv *ledger.Invoice) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var idb invoiceDB
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", invoiceID.String()).
			First(&idb).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appErrors.ErrInvoiceNotFound.WithError(err)
			}
			return appErrors.ErrConcurrencyConflict.WithError(err)
		}

		inv, err := toDomainInvoice(&idb)
		if err != nil {
			return err
		}

		return fn(&LedgerRepository{DB: tx}, inv)
	})
}

func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return appErrors.ErrDuplicateDocument.WithError(err)
	}
	return err
}
