package fx

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/vaishnaviugal12/Buisness-Management-System/config"
	docs "github.com/vaishnaviugal12/Buisness-Management-System/docs"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/logger"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/middleware"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/routes"
)

// ServerModule provides the HTTP server setup.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	{
		public.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})
		public.POST("/auth/login", middleware.RateLimit(authRateLimiter), handler.Login)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	{
		private.GET("/auth/verify", handler.Verify)

		customers := private.Group("/customers")
		{
			customers.POST("", handler.CreateCustomer)
			customers.GET("", handler.ListCustomers)
			customers.GET("/:id", handler.GetCustomer)
			customers.PATCH("/:id", handler.UpdateCustomer)
			customers.DELETE("/:id", handler.DeleteCustomer)
		}

		merchants := private.Group("/merchants")
		{
			merchants.POST("", handler.CreateMerchant)
			merchants.GET("", handler.ListMerchants)
			merchants.GET("/:id", handler.GetMerchant)
			merchants.PATCH("/:id", handler.UpdateMerchant)
			merchants.DELETE("/:id", handler.DeleteMerchant)
		}

		// Sales invoices and purchase bills share one set of handlers, split
		// only by pipeline.
		invoices := private.Group("/invoices")
		{
			invoices.POST("", handler.CreateInvoice(ledger.PipelineSales))
			invoices.GET("", handler.ListInvoices(ledger.PipelineSales))
			invoices.GET("/:id", handler.GetInvoice)
			invoices.PATCH("/:id", handler.UpdateInvoice)
			invoices.DELETE("/:id", handler.DeleteInvoice)
			invoices.POST("/:id/reconcile", handler.ReconcileInvoice)
			invoices.POST("/:id/items", handler.AddItem)
			invoices.GET("/:id/items", handler.ListItems)
			invoices.POST("/:id/payments", handler.AddPayment)
			invoices.GET("/:id/payments", handler.ListPayments)
		}

		bills := private.Group("/bills")
		{
			bills.POST("", handler.CreateInvoice(ledger.PipelinePurchase))
			bills.GET("", handler.ListInvoices(ledger.PipelinePurchase))
			bills.GET("/:id", handler.GetInvoice)
			bills.PATCH("/:id", handler.UpdateInvoice)
			bills.DELETE("/:id", handler.DeleteInvoice)
			bills.POST("/:id/reconcile", handler.ReconcileInvoice)
			bills.POST("/:id/items", handler.AddItem)
			bills.GET("/:id/items", handler.ListItems)
			bills.POST("/:id/payments", handler.AddPayment)
			bills.GET("/:id/payments", handler.ListPayments)
		}

		items := private.Group("/items")
		{
			items.PATCH("/:id", handler.UpdateItem)
			items.DELETE("/:id", handler.DeleteItem)
		}

		payments := private.Group("/payments")
		{
			payments.PATCH("/:id", handler.UpdatePayment)
			payments.DELETE("/:id", handler.DeletePayment)
		}

		reports := private.Group("/reports")
		{
			reports.GET("/overall", handler.OverallReport)
			reports.GET("/customers", handler.CustomerReport)
			reports.GET("/suppliers", handler.SupplierReport)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
