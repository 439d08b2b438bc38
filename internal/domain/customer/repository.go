package customer

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, customerID ulid.ULID) error
	GetById(ctx context.Context, customerID ulid.ULID) (*Customer, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}
