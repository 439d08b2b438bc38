package customer_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/customer"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type fakeCustomerRepository struct {
	createFn  func(ctx context.Context, c *customer.Customer) error
	updateFn  func(ctx context.Context, c *customer.Customer) error
	deleteFn  func(ctx context.Context, id ulid.ULID) error
	getByIDFn func(ctx context.Context, id ulid.ULID) (*customer.Customer, error)
	listFn    func(ctx context.Context, pagination *pkg.PaginationParams) ([]*customer.Customer, int64, error)
	countFn   func(ctx context.Context) (int64, error)
}

func (f *fakeCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeCustomerRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeCustomerRepository) GetById(ctx context.Context, id ulid.ULID) (*customer.Customer, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &customer.Customer{Id: id}, nil
}

func (f *fakeCustomerRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*customer.Customer, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, pagination)
	}
	return nil, 0, nil
}

func (f *fakeCustomerRepository) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires a name", func(t *testing.T) {
		svc := &customer.Service{Repository: &fakeCustomerRepository{}}
		_, err := svc.Create(ctx, &customer.CreateCustomerRequest{Name: "   "})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("fills in the default phone", func(t *testing.T) {
		var created *customer.Customer
		svc := &customer.Service{
			Repository: &fakeCustomerRepository{
				createFn: func(ctx context.Context, c *customer.Customer) error {
					created = c
					return nil
				},
			},
			DefaultPhone: "0000000000",
		}

		_, err := svc.Create(ctx, &customer.CreateCustomerRequest{Name: "Ramesh Traders"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || created.Phone != "0000000000" {
			t.Fatalf("expected default phone, got %+v", created)
		}
		if !created.IsActive {
			t.Fatalf("new customer should be active")
		}
	})

	t.Run("keeps an explicit phone", func(t *testing.T) {
		svc := &customer.Service{
			Repository:   &fakeCustomerRepository{},
			DefaultPhone: "0000000000",
		}
		c, err := svc.Create(ctx, &customer.CreateCustomerRequest{Name: "Ramesh Traders", Phone: "9876543210"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Phone != "9876543210" {
			t.Fatalf("expected explicit phone, got %s", c.Phone)
		}
	})
}

func TestGetCustomerNotFound(t *testing.T) {
	t.Parallel()

	svc := &customer.Service{
		Repository: &fakeCustomerRepository{
			getByIDFn: func(ctx context.Context, id ulid.ULID) (*customer.Customer, error) {
				return nil, appErrors.ErrNotFound
			},
		},
	}

	_, err := svc.GetById(context.Background(), ulid.Make())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrCustomerNotFound.Code {
		t.Fatalf("expected CUSTOMER_NOT_FOUND, got %v", err)
	}

	if err := svc.Exists(context.Background(), ulid.Make()); err == nil {
		t.Fatalf("Exists should propagate not found")
	}
}
