package router

import (
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/backoffice/backend/internal/infrastructure/logger"
	"github.com/backoffice/backend/internal/interfaces/http/handler"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Config carries everything the router needs to wire the HTTP surface
type Config struct {
	Logger       *zap.Logger
	JWTService   *auth.JWTService
	AllowOrigins []string
	ServiceName  string
	TracingOn    bool

	System       *handler.SystemHandler
	Taxes        *handler.TaxHandler
	Products     *handler.ProductHandler
	Units        *handler.UnitQuantityHandler
	Customers    *handler.CustomerHandler
	Transactions *handler.TransactionHandler
	Payments     *handler.PaymentHandler
	Inventory    *handler.InventoryHandler
	Finance      *handler.FinanceHandler
}

// New builds the gin engine with the full route table. The health endpoint
// is public; everything under /api requires a valid bearer token.
func New(cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.CORS(cfg.AllowOrigins))
	if cfg.TracingOn {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}

	engine.GET("/health", cfg.System.Health)

	api := engine.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTService))

	taxes := api.Group("/taxes")
	{
		taxes.GET("", cfg.Taxes.List)
		taxes.POST("", cfg.Taxes.Create)
		taxes.GET("/:id", cfg.Taxes.GetByID)
		taxes.PUT("/:id", cfg.Taxes.Update)
		taxes.DELETE("/:id", cfg.Taxes.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", cfg.Products.List)
		products.POST("", cfg.Products.Create)
		products.GET("/:id", cfg.Products.GetByID)
		products.PUT("/:id", cfg.Products.Update)
		products.DELETE("/:id", cfg.Products.Delete)
	}

	units := api.Group("/unit-quantities")
	{
		units.GET("", cfg.Units.List)
		units.POST("", cfg.Units.Create)
		units.GET("/:id", cfg.Units.GetByID)
		units.PUT("/:id", cfg.Units.Update)
		units.DELETE("/:id", cfg.Units.Delete)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", cfg.Customers.List)
		customers.POST("", cfg.Customers.Create)
		customers.GET("/:id", cfg.Customers.GetByID)
		customers.PUT("/:id", cfg.Customers.Update)
		customers.DELETE("/:id", cfg.Customers.Delete)
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", cfg.Transactions.List)
		transactions.POST("", cfg.Transactions.Create)
		transactions.GET("/summary", cfg.Transactions.ProductSummary)
		transactions.GET("/product/:productId", cfg.Transactions.ProductReport)
		transactions.GET("/:id", cfg.Transactions.GetByID)
	}

	payments := api.Group("/payments")
	{
		payments.GET("", cfg.Payments.List)
		payments.POST("", cfg.Payments.Create)
		payments.GET("/dashboard", cfg.Payments.Dashboard)
		payments.GET("/:id", cfg.Payments.GetByID)
	}

	inventory := api.Group("/inventory-histories")
	{
		inventory.GET("", cfg.Inventory.List)
		inventory.POST("", cfg.Inventory.Create)
		inventory.GET("/summary", cfg.Inventory.Summary)
		inventory.GET("/series", cfg.Inventory.Series)
	}

	api.GET("/finance/dashboard", cfg.Finance.Dashboard)

	return engine
}
