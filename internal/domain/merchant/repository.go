package merchant

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, merchant *Merchant) error
	Update(ctx context.Context, merchant *Merchant) error
	Delete(ctx context.Context, merchantID ulid.ULID) error
	GetById(ctx context.Context, merchantID ulid.ULID) (*Merchant, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Merchant, int64, error)
	Count(ctx context.Context) (int64, error)
}
