package contracts

import (
	"time"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
)

type InvoiceCreateRequest struct {
	CounterpartyID string     `json:"counterparty_id" binding:"required"`
	DocumentNumber string     `json:"document_number" binding:"required,max=50"`
	TotalAmount    float64    `json:"total_amount" binding:"omitempty,gte=0"`
	IssueDate      *time.Time `json:"issue_date" binding:"omitempty"`
	Notes          string     `json:"notes" binding:"omitempty"`
}

type InvoiceUpdateRequest struct {
	TotalAmount *float64   `json:"total_amount" binding:"omitempty,gte=0"`
	PaidAmount  *float64   `json:"paid_amount" binding:"omitempty,gte=0"`
	IssueDate   *time.Time `json:"issue_date" binding:"omitempty"`
	Notes       *string    `json:"notes" binding:"omitempty"`
}

type ItemCreateRequest struct {
	Date        *time.Time `json:"date" binding:"omitempty"`
	Name        string     `json:"name" binding:"required,max=200"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description" binding:"omitempty,max=500"`
}

type ItemUpdateRequest struct {
	Date        *time.Time `json:"date" binding:"omitempty"`
	Name        *string    `json:"name" binding:"omitempty,max=200"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	Description *string    `json:"description" binding:"omitempty,max=500"`
}

type PaymentCreateRequest struct {
	Date      *time.Time `json:"date" binding:"omitempty"`
	Amount    float64    `json:"amount" binding:"required,gt=0"`
	Method    string     `json:"method" binding:"omitempty,oneof=CASH UPI CARD BANK_TRANSFER OTHER"`
	Reference string     `json:"reference" binding:"omitempty,max=100"`
	Note      string     `json:"note" binding:"omitempty,max=500"`
}

type PaymentUpdateRequest struct {
	Date      *time.Time `json:"date" binding:"omitempty"`
	Amount    *float64   `json:"amount" binding:"omitempty,gt=0"`
	Method    *string    `json:"method" binding:"omitempty,oneof=CASH UPI CARD BANK_TRANSFER OTHER"`
	Reference *string    `json:"reference" binding:"omitempty,max=100"`
	Note      *string    `json:"note" binding:"omitempty,max=500"`
}

type InvoiceResponse struct {
	Invoice *ledger.Invoice `json:"invoice"`
}

type ItemMutationResponse struct {
	Item    *ledger.LineItem `json:"item"`
	Invoice *ledger.Invoice  `json:"invoice"`
}

type PaymentMutationResponse struct {
	Payment *ledger.Payment `json:"payment"`
	Invoice *ledger.Invoice `json:"invoice"`
}

type ItemListResponse struct {
	Items []*ledger.LineItem `json:"items"`
}

type PaymentListResponse struct {
	Payments []*ledger.Payment `json:"payments"`
}
