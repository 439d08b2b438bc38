package customer

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Customer struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}
