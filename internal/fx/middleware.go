package fx

import (
	"go.uber.org/fx"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config) *middleware.JwtService {
	return middleware.NewJwtService(cfg)
}
