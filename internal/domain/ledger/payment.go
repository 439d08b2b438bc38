package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodUPI          PaymentMethod = "UPI"
	MethodCard         PaymentMethod = "CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodOther        PaymentMethod = "OTHER"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodUPI, MethodCard, MethodBankTransfer, MethodOther:
		return true
	}
	return false
}

type Payment struct {
	Id        ulid.ULID     `gorm:"type:varchar(26);primaryKey" json:"id"`
	InvoiceId ulid.ULID     `gorm:"type:varchar(26);index:idx_payments_invoice_id;not null" json:"invoiceId"`
	Date      time.Time     `gorm:"type:date;not null;index:idx_payments_date" json:"date"`
	Amount    float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	Method    PaymentMethod `gorm:"type:varchar(20);not null;default:'CASH'" json:"method"`
	// Reference carries an external payment identifier: UPI ref, cheque
	// number, bank transaction id.
	Reference string    `gorm:"type:varchar(100)" json:"reference"`
	Note      string    `gorm:"type:varchar(500)" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}
