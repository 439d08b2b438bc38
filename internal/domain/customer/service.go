package customer

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type Service struct {
	Repository Repository

	// DefaultPhone fills in the phone field when the caller omits it.
	DefaultPhone string
}

func (s *Service) Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = s.DefaultPhone
	}

	now := time.Now()
	customer := &Customer{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		Phone:     phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, customer); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return customer, nil
}

func (s *Service) GetById(ctx context.Context, customerID ulid.ULID) (*Customer, error) {
	customer, err := s.Repository.GetById(ctx, customerID)
	if err != nil {
		return nil, appErrors.ErrCustomerNotFound.WithError(err)
	}
	return customer, nil
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Customer, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) Update(ctx context.Context, customerID ulid.ULID, req *UpdateCustomerRequest) (*Customer, error) {
	customer, err := s.GetById(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "must not be empty")
		}
		customer.Name = name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			phone = s.DefaultPhone
		}
		customer.Phone = phone
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	customer.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, customer); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return customer, nil
}

func (s *Service) Delete(ctx context.Context, customerID ulid.ULID) error {
	if _, err := s.GetById(ctx, customerID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, customerID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Exists satisfies the ledger's CounterpartyChecker.
func (s *Service) Exists(ctx context.Context, customerID ulid.ULID) error {
	_, err := s.GetById(ctx, customerID)
	return err
}

type CreateCustomerRequest struct {
	Name  string
	Phone string
}

type UpdateCustomerRequest struct {
	Name     *string
	Phone    *string
	IsActive *bool
}
