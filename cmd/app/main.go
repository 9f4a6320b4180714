package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"agrimarket/cmd"
	"agrimarket/internal/adapters/out/postgres/orderrepo"
	"agrimarket/internal/adapters/out/postgres/productrepo"
	"agrimarket/internal/adapters/out/postgres/trackingrepo"
	"agrimarket/internal/jobs"

	httpin "agrimarket/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrate(gormDB); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB)
	if err != nil {
		logger.Error("failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(root.SessionStore(), config.SessionIdleTimeout, logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&trackingrepo.TrackingDTO{},
		&trackingrepo.EventDTO{},
		&productrepo.ProductDTO{},
	)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Validator = httpin.NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateTransitionOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateAssignPartnerCommandHandler(),
		root.CreateStartPickupSessionCommandHandler(),
		root.CreateCheckItemCommandHandler(),
		root.CreateVerifyLineItemCommandHandler(),
		root.CreateCapturePhotoCommandHandler(),
		root.CreateCaptureSignatureCommandHandler(),
		root.CreateAdvanceStageCommandHandler(),
		root.CreateRetreatStageCommandHandler(),
		root.CreateCompletePickupCommandHandler(),
		root.CreateGetTrackingViewQueryHandler(),
		root.CreateGetRoleViewQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
