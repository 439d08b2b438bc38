package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Pipeline separates the two ledgers the business runs: invoices billed to
// customers (SALES) and bills received from merchants (PURCHASE). The two are
// structurally identical; only the total-amount policy differs, see Reconcile.
type Pipeline string

const (
	PipelineSales    Pipeline = "SALES"
	PipelinePurchase Pipeline = "PURCHASE"
)

func (p Pipeline) IsValid() bool {
	switch p {
	case PipelineSales, PipelinePurchase:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	StatusPending       InvoiceStatus = "PENDING"
	StatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	StatusPaid          InvoiceStatus = "PAID"
	// StatusOverdue is reserved for a future overdue-by-date rule and is never
	// assigned by the reconciler.
	StatusOverdue InvoiceStatus = "OVERDUE"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPartiallyPaid, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type Invoice struct {
	Id             ulid.ULID     `gorm:"type:varchar(26);primaryKey" json:"id"`
	Pipeline       Pipeline      `gorm:"type:varchar(10);not null;uniqueIndex:idx_invoices_document,priority:1;index:idx_invoices_pipeline" json:"pipeline"`
	CounterpartyId ulid.ULID     `gorm:"type:varchar(26);index:idx_invoices_counterparty;not null" json:"counterpartyId"`
	DocumentNumber string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_document,priority:2" json:"documentNumber"`
	IssueDate      time.Time     `gorm:"type:date;not null;index:idx_invoices_issue_date" json:"issueDate"`
	TotalAmount    float64       `gorm:"type:decimal(15,2);not null;default:0" json:"totalAmount"`
	PaidAmount     float64       `gorm:"type:decimal(15,2);not null;default:0" json:"paidAmount"`
	DueAmount      float64       `gorm:"type:decimal(15,2);not null;default:0" json:"dueAmount"`
	Status         InvoiceStatus `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_invoices_status" json:"status"`
	Notes          string        `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time     `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Invoice) TableName() string {
	return "invoices"
}
