package fx

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/logger"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env from current directory: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Warning: could not load ../../.env: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
