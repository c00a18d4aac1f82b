package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/backoffice/backend/internal/application/catalog"
	inventoryapp "github.com/backoffice/backend/internal/application/inventory"
	ledgerapp "github.com/backoffice/backend/internal/application/ledger"
	partnerapp "github.com/backoffice/backend/internal/application/partner"
	reportapp "github.com/backoffice/backend/internal/application/report"
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/backoffice/backend/internal/infrastructure/cache"
	"github.com/backoffice/backend/internal/infrastructure/config"
	"github.com/backoffice/backend/internal/infrastructure/logger"
	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/backoffice/backend/internal/infrastructure/telemetry"
	"github.com/backoffice/backend/internal/interfaces/http/handler"
	"github.com/backoffice/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting backoffice backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("error shutting down tracer", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.InstrumentGorm(db.DB, cfg.Database.DBName); err != nil {
			log.Warn("failed to instrument database tracing", zap.Error(err))
		}
	}

	cacheFactory := cache.NewDashboardCacheFactory(cfg.Redis, cache.WithLogger(log))
	dashboardCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("failed to create dashboard cache", zap.Error(err))
	}

	// Repositories
	taxRepo := persistence.NewGormTaxRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	unitRepo := persistence.NewGormUnitQuantityRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	financeReportRepo := persistence.NewGormFinanceReportRepository(db.DB)
	paymentReportRepo := persistence.NewGormPaymentReportRepository(db.DB)
	productReportRepo := persistence.NewGormProductReportRepository(db.DB)
	ledgerScope := persistence.NewGormLedgerScope(db.DB)
	inventoryScope := persistence.NewGormInventoryScope(db.DB)

	// Application services
	taxService := catalogapp.NewTaxService(taxRepo)
	productService := catalogapp.NewProductService(productRepo)
	unitService := catalogapp.NewUnitQuantityService(unitRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	transactionService := ledgerapp.NewTransactionService(customerRepo, productRepo, unitRepo, taxRepo, transactionRepo, ledgerScope)
	paymentService := ledgerapp.NewPaymentService(paymentRepo, ledgerScope)
	inventoryService := inventoryapp.NewInventoryService(movementRepo, productRepo, unitRepo, inventoryScope)
	financeDashboardService := reportapp.NewFinanceDashboardService(financeReportRepo, dashboardCache, log)
	paymentDashboardService := reportapp.NewPaymentDashboardService(paymentReportRepo)
	productReportService := reportapp.NewProductReportService(productReportRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Config{
		Logger:       log,
		JWTService:   jwtService,
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		ServiceName:  cfg.Telemetry.ServiceName,
		TracingOn:    cfg.Telemetry.Enabled,

		System:       handler.NewSystemHandler(db, cfg.App.Name),
		Taxes:        handler.NewTaxHandler(taxService),
		Products:     handler.NewProductHandler(productService),
		Units:        handler.NewUnitQuantityHandler(unitService),
		Customers:    handler.NewCustomerHandler(customerService),
		Transactions: handler.NewTransactionHandler(transactionService, productReportService),
		Payments:     handler.NewPaymentHandler(paymentService, paymentDashboardService),
		Inventory:    handler.NewInventoryHandler(inventoryService),
		Finance:      handler.NewFinanceHandler(financeDashboardService),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited")
}
