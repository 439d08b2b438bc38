package merchant

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

	DefaultPhone string
}

func (s *Service) Create(ctx context.Context, req *CreateMerchantRequest) (*Merchant, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = s.DefaultPhone
	}

	now := time.Now()
	merchant := &Merchant{
		Id:          pkg.GenerateULIDObject(),
		Name:        name,
		Number:      strings.TrimSpace(req.Number),
		Phone:       phone,
		BankAccount: strings.TrimSpace(req.BankAccount),
		IfscCode:    strings.ToUpper(strings.TrimSpace(req.IfscCode)),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repository.Create(ctx, merchant); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return merchant, nil
}

func (s *Service) GetById(ctx context.Context, merchantID ulid.ULID) (*Merchant, error) {
	merchant, err := s.Repository.GetById(ctx, merchantID)
	if err != nil {
		return nil, appErrors.ErrMerchantNotFound.WithError(err)
	}
	return merchant, nil
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Merchant, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) Update(ctx context.Context, merchantID ulid.ULID, req *UpdateMerchantRequest) (*Merchant, error) {
	merchant, err := s.GetById(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "must not be empty")
		}
		merchant.Name = name
	}
	if req.Number != nil {
		merchant.Number = strings.TrimSpace(*req.Number)
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone == "" {
			phone = s.DefaultPhone
		}
		merchant.Phone = phone
	}
	if req.BankAccount != nil {
		merchant.BankAccount = strings.TrimSpace(*req.BankAccount)
	}
	if req.IfscCode != nil {
		merchant.IfscCode = strings.ToUpper(strings.TrimSpace(*req.IfscCode))
	}
	if req.IsActive != nil {
		merchant.IsActive = *req.IsActive
	}
	merchant.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, merchant); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return merchant, nil
}

func (s *Service) Delete(ctx context.Context, merchantID ulid.ULID) error {
	if _, err := s.GetById(ctx, merchantID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, merchantID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Exists satisfies the ledger's CounterpartyChecker.
func (s *Service) Exists(ctx context.Context, merchantID ulid.ULID) error {
	_, err := s.GetById(ctx, merchantID)
	return err
}

type CreateMerchantRequest struct {
	Name        string
	Number      string
	Phone       string
	BankAccount string
	IfscCode    string
}

type UpdateMerchantRequest struct {
	Name        *string
	Number      *string
	Phone       *string
	BankAccount *string
	IfscCode    *string
	IsActive    *bool
}
