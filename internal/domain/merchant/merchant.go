package merchant

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Merchant struct {
	Id   ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(200);not null" json:"name"`
	// Number is the merchant's own business number, free-form and editable.
	Number      string    `gorm:"type:varchar(50)" json:"number"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	BankAccount string    `gorm:"type:varchar(34)" json:"bankAccount"`
	IfscCode    string    `gorm:"type:varchar(11)" json:"ifscCode"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Merchant) TableName() string {
	return "merchants"
}
