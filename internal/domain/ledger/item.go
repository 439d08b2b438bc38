package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type LineItem struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	InvoiceId   ulid.ULID `gorm:"type:varchar(26);index:idx_line_items_invoice_id;not null" json:"invoiceId"`
	Date        time.Time `gorm:"type:date;not null;index:idx_line_items_date" json:"date"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (LineItem) TableName() string {
	return "line_items"
}
