package router

import (
	"time"

	"biztrack/internal/config"
	"biztrack/internal/handler"
	"biztrack/internal/infra"
	"biztrack/internal/middleware"
	"biztrack/internal/repository"
	"biztrack/internal/service"
	"biztrack/internal/worker"
	"biztrack/internal/ws"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine plus the
// worker handlers the pool consumes.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, hub *ws.Hub) (*gin.Engine, worker.Handlers) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	aiClient := infra.NewAIClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	aiBreaker := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, rdb)
	customerSvc := service.NewCustomerService(customerRepo)
	vendorSvc := service.NewVendorService(vendorRepo)
	salesOrderSvc := service.NewSalesOrderService(salesOrderRepo, productRepo, customerRepo, hub, dispatcher)
	purchaseOrderSvc := service.NewPurchaseOrderService(purchaseOrderRepo, productRepo, vendorRepo, hub)
	paymentSvc := service.NewPaymentService(paymentRepo, customerRepo, salesOrderRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)
	insightSvc := service.NewInsightService(insightRepo, dashboardRepo, productRepo, aiClient, aiBreaker, hub)
	notificationSvc := service.NewNotificationService(notificationRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	vendorsH := handler.NewVendorsHandler(vendorSvc)
	salesOrdersH := handler.NewSalesOrdersHandler(salesOrderSvc)
	purchaseOrdersH := handler.NewPurchaseOrdersHandler(purchaseOrderSvc)
	paymentsH := handler.NewPaymentsHandler(paymentSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	insightsH := handler.NewInsightsHandler(insightSvc, dispatcher)
	notificationsH := handler.NewNotificationsHandler(notificationSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/register", authH.Register)
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)

	// Realtime event stream
	r.GET("/ws", hub.Handle)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/me", authH.Me)
		api.POST("/upgrade-subscription", authH.UpgradeSubscription)

		dash := api.Group("/dashboard")
		{
			dash.GET("/metrics", dashboardH.Metrics)
			dash.GET("/sales-analytics", dashboardH.SalesAnalytics)
			dash.GET("/top-products", dashboardH.TopProducts)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", middleware.RequireRole("admin", "manager"), customersH.Delete)
		}

		products := api.Group("/products")
		{
			products.GET("", productsH.List)
			products.GET("/low-stock", productsH.LowStock)
			products.GET("/barcode/:code", productsH.GetByBarcode)
			products.GET("/:id", productsH.Get)
			products.POST("", middleware.RequireRole("admin", "manager"), productsH.Create)
			products.PUT("/:id", middleware.RequireRole("admin", "manager"), productsH.Update)
			products.PATCH("/:id/quantity", middleware.RequireRole("admin", "manager"), productsH.UpdateQuantity)
			products.PATCH("/:id/reactivate", middleware.RequireRole("admin", "manager"), productsH.Reactivate)
			products.DELETE("/:id", middleware.RequireRole("admin"), productsH.Delete)
		}

		salesOrders := api.Group("/sales-orders")
		{
			salesOrders.POST("", salesOrdersH.Create)
			salesOrders.GET("", salesOrdersH.List)
			salesOrders.GET("/:id", salesOrdersH.Get)
		}

		api.POST("/payments", paymentsH.Create)
		api.GET("/payments", paymentsH.List)
		api.GET("/payments/customer/:id", paymentsH.ListByCustomer)

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationsH.List)
			notifications.PATCH("/:id/read", notificationsH.MarkRead)
		}

		// Premium features: vendors, procurement, AI insights
		premium := middleware.RequireTier(middleware.TierPremium)

		vendors := api.Group("/vendors", premium)
		{
			vendors.POST("", vendorsH.Create)
			vendors.GET("", vendorsH.List)
			vendors.GET("/:id", vendorsH.Get)
			vendors.PUT("/:id", vendorsH.Update)
			vendors.DELETE("/:id", middleware.RequireRole("admin"), vendorsH.Delete)
		}

		purchaseOrders := api.Group("/purchase-orders", premium)
		{
			purchaseOrders.POST("", purchaseOrdersH.Create)
			purchaseOrders.GET("", purchaseOrdersH.List)
			purchaseOrders.GET("/:id", purchaseOrdersH.Get)
			purchaseOrders.PUT("/:id", purchaseOrdersH.UpdateStatus)
		}

		ai := api.Group("/ai", premium)
		{
			ai.GET("/insights", insightsH.List)
			ai.POST("/generate-insights", insightsH.Generate)
			ai.PATCH("/insights/:id/read", insightsH.MarkRead)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handlers := worker.Handlers{
		Alerts:   worker.NewAlertWorker(productRepo, userRepo, notificationRepo, hub),
		Insights: worker.NewInsightWorker(insightSvc),
	}
	return r, handlers
}
