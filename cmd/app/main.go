package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/T0MGL/0rdefy-sub010/cmd"
	httpadapter "github.com/T0MGL/0rdefy-sub010/internal/adapters/in/http"
	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/postgres/orderrepo"
	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/postgres/sessionrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	mustMigrateDB(db)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}

	config := cmd.Config{
		HTTPPort:          envVariable("HTTP_PORT", "8080"),
		DBHost:            envVariable("DB_HOST", "localhost"),
		DBPort:            envVariable("DB_PORT", "5432"),
		DBUser:            envVariable("DB_USER", "postgres"),
		DBPassword:        envVariable("DB_PASSWORD", "postgres"),
		DBName:            envVariable("DB_NAME", "fulfillment"),
		DBSslMode:         envVariable("DB_SSLMODE", "disable"),
		StaleSessionAfter: envDuration("STALE_SESSION_AFTER", 4*time.Hour),
	}
	return config
}

func envVariable(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&sessionrepo.SessionDTO{},
		&sessionrepo.MemberDTO{},
		&sessionrepo.PickRequirementDTO{},
		&sessionrepo.PackingLineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateSessionCommandHandler(),
		app.CreateUpdatePickingCommandHandler(),
		app.CreateFinishPickingCommandHandler(),
		app.CreatePackUnitCommandHandler(),
		app.CreatePrintLabelCommandHandler(),
		app.CreateCompleteSessionCommandHandler(),
		app.CreateCancelSessionCommandHandler(),
		app.CreateGetEligibleOrdersQueryHandler(),
		app.CreateGetActiveSessionsQueryHandler(),
		app.CreateGetSessionQueryHandler(),
		app.CreateGetPickingListQueryHandler(),
		app.CreateGetPackingListQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
