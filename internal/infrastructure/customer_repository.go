package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/customer"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type CustomerRepository struct {
	DB *gorm.DB
}

type customerDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (customerDB) TableName() string {
	return "customers"
}

func toDomainCustomer(cdb *customerDB) (*customer.Customer, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &customer.Customer{
		Id:        id,
		Name:      cdb.Name,
		Phone:     cdb.Phone,
		IsActive:  cdb.IsActive,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCustomer(c *customer.Customer) *customerDB {
	return &customerDB{
		Id:        c.Id.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return r.DB.WithContext(ctx).Create(toDBCustomer(c)).Error
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	cdb := toDBCustomer(c)
	return r.DB.WithContext(ctx).Model(&customerDB{}).
		Where("id = ?", cdb.Id).
		Select("name", "phone", "is_active", "updated_at").
		Updates(cdb).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", customerID.String()).Delete(&customerDB{}).Error
}

func (r *CustomerRepository) GetById(ctx context.Context, customerID ulid.ULID) (*customer.Customer, error) {
	var cdb customerDB
	err := r.DB.WithContext(ctx).Where("id = ?", customerID.String()).First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCustomer(&cdb)
}

func (r *CustomerRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*customer.Customer, int64, error) {
	query := r.DB.WithContext(ctx).Model(&customerDB{})
	return pkg.Paginate(query, pagination, "created_at DESC", toDomainCustomer)
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&customerDB{}).Count(&total).Error
	return total, err
}
