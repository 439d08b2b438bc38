package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/auth"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/customer"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/merchant"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/report"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/middleware"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	authSvc *auth.Service,
	customerSvc *customer.Service,
	merchantSvc *merchant.Service,
	ledgerSvc *ledger.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		AuthService:     authSvc,
		CustomerService: customerSvc,
		MerchantService: merchantSvc,
		LedgerService:   ledgerSvc,
		ReportService:   reportSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
