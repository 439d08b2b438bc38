package fx

import (
	"go.uber.org/fx"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/auth"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/customer"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/merchant"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/report"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/infrastructure"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/middleware"
)

// DomainModule provides every domain service.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newAuthService,
		newCustomerService,
		newMerchantService,
		newLedgerService,
		newReportService,
	),
)

func newAuthService(cfg *config.Config, jwtSvc *middleware.JwtService) *auth.Service {
	return auth.NewService(cfg, jwtSvc)
}

func newCustomerService(cfg *config.Config, repo *infrastructure.CustomerRepository) *customer.Service {
	return &customer.Service{
		Repository:   repo,
		DefaultPhone: cfg.Defaults.Phone,
	}
}

func newMerchantService(cfg *config.Config, repo *infrastructure.MerchantRepository) *merchant.Service {
	return &merchant.Service{
		Repository:   repo,
		DefaultPhone: cfg.Defaults.Phone,
	}
}

func newLedgerService(
	cfg *config.Config,
	repo *infrastructure.LedgerRepository,
	customerSvc *customer.Service,
	merchantSvc *merchant.Service,
) *ledger.Service {
	return &ledger.Service{
		Repository:      repo,
		CustomerChecker: customerSvc,
		MerchantChecker: merchantSvc,
		DefaultMethod:   ledger.PaymentMethod(cfg.Defaults.PaymentMethod),
	}
}

func newReportService(repo *infrastructure.ReportRepository) *report.Service {
	return &report.Service{
		Repository: repo,
	}
}
