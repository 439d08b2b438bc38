package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/merchant"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type MerchantRepository struct {
	DB *gorm.DB
}

type merchantDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Number      string    `gorm:"type:varchar(50)"`
	Phone       string    `gorm:"type:varchar(20);not null"`
	BankAccount string    `gorm:"type:varchar(34)"`
	IfscCode    string    `gorm:"type:varchar(11)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (merchantDB) TableName() string {
	return "merchants"
}

func toDomainMerchant(mdb *merchantDB) (*merchant.Merchant, error) {
	id, err := pkg.ParseULID(mdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &merchant.Merchant{
		Id:          id,
		Name:        mdb.Name,
		Number:      mdb.Number,
		Phone:       mdb.Phone,
		BankAccount: mdb.BankAccount,
		IfscCode:    mdb.IfscCode,
		IsActive:    mdb.IsActive,
		CreatedAt:   mdb.CreatedAt,
		UpdatedAt:   mdb.UpdatedAt,
	}, nil
}

func toDBMerchant(m *merchant.Merchant) *merchantDB {
	return &merchantDB{
		Id:          m.Id.String(),
		Name:        m.Name,
		Number:      m.Number,
		Phone:       m.Phone,
		BankAccount: m.BankAccount,
		IfscCode:    m.IfscCode,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MerchantRepository) Create(ctx context.Context, m *merchant.Merchant) error {
	return r.DB.WithContext(ctx).Create(toDBMerchant(m)).Error
}

func (r *MerchantRepository) Update(ctx context.Context, m *merchant.Merchant) error {
	mdb := toDBMerchant(m)
	return r.DB.WithContext(ctx).Model(&merchantDB{}).
		Where("id = ?", mdb.Id).
		Select("name", "number", "phone", "bank_account", "ifsc_code", "is_active", "updated_at").
		Updates(mdb).Error
}

func (r *MerchantRepository) Delete(ctx context.Context, merchantID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", merchantID.String()).Delete(&merchantDB{}).Error
}

func (r *MerchantRepository) GetById(ctx context.Context, merchantID ulid.ULID) (*merchant.Merchant, error) {
	var mdb merchantDB
	err := r.DB.WithContext(ctx).Where("id = ?", merchantID.String()).First(&mdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainMerchant(&mdb)
}

func (r *MerchantRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*merchant.Merchant, int64, error) {
	query := r.DB.WithContext(ctx).Model(&merchantDB{})
	return pkg.Paginate(query, pagination, "created_at DESC", toDomainMerchant)
}

func (r *MerchantRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&merchantDB{}).Count(&total).Error
	return total, err
}
