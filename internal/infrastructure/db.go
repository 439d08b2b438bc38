package infrastructure

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Failed to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get underlying sql.DB instance")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Running migrations...")

	entities := []interface{}{
		&customerDB{},
		&merchantDB{},
		&invoiceDB{},
		&lineItemDB{},
		&paymentDB{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Failed to migrate entity")
			return err
		}
	}

	logger.Info().Msg("Migrations completed")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *customerDB:
		return "Customer"
	case *merchantDB:
		return "Merchant"
	case *invoiceDB:
		return "Invoice"
	case *lineItemDB:
		return "LineItem"
	case *paymentDB:
		return "Payment"
	default:
		return "Unknown"
	}
}
