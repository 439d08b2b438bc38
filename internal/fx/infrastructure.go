package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newCustomerRepository,
		newMerchantRepository,
		newLedgerRepository,
		newReportRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newCustomerRepository(db *gorm.DB) *infrastructure.CustomerRepository {
	return &infrastructure.CustomerRepository{DB: db}
}

func newMerchantRepository(db *gorm.DB) *infrastructure.MerchantRepository {
	return &infrastructure.MerchantRepository{DB: db}
}

func newLedgerRepository(db *gorm.DB) *infrastructure.LedgerRepository {
	return &infrastructure.LedgerRepository{DB: db}
}

func newReportRepository(db *gorm.DB) *infrastructure.ReportRepository {
	return &infrastructure.ReportRepository{DB: db}
}
