package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tailorsoft/atelier/internal/clock"
	"github.com/tailorsoft/atelier/internal/config"
	"github.com/tailorsoft/atelier/internal/currency"
	"github.com/tailorsoft/atelier/internal/customer"
	customerdomain "github.com/tailorsoft/atelier/internal/customer/domain"
	"github.com/tailorsoft/atelier/internal/expense"
	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	"github.com/tailorsoft/atelier/internal/finance"
	financedomain "github.com/tailorsoft/atelier/internal/finance/domain"
	"github.com/tailorsoft/atelier/internal/migration"
	"github.com/tailorsoft/atelier/internal/observability"
	obsmiddleware "github.com/tailorsoft/atelier/internal/observability/logger"
	obsmetrics "github.com/tailorsoft/atelier/internal/observability/metrics"
	obstracing "github.com/tailorsoft/atelier/internal/observability/tracing"
	"github.com/tailorsoft/atelier/internal/order"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	"github.com/tailorsoft/atelier/internal/payment"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	"github.com/tailorsoft/atelier/internal/providers/pdf"
	"github.com/tailorsoft/atelier/internal/reference"
	referencedomain "github.com/tailorsoft/atelier/internal/reference/domain"
	"github.com/tailorsoft/atelier/internal/seed"
	"github.com/tailorsoft/atelier/internal/settings"
	settingsdomain "github.com/tailorsoft/atelier/internal/settings/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	config.Module,
	clock.Module,
	fx.Provide(registerGin),
	fx.Provide(newSnowflakeNode),
	migration.Module,
	customer.Module,
	order.Module,
	payment.Module,
	expense.Module,
	finance.Module,
	settings.Module,
	reference.Module,
	pdf.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config) *gin.Engine {
	return NewEngine(obsCfg)
}

func run(lc fx.Lifecycle, r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB
	genID  *snowflake.Node
	clock  clock.Clock
	// defaultShopID scopes requests without an X-Shop-Id header: the
	// configured override when set, otherwise the seeded main shop.
	defaultShopID int64
	customerSvc   customerdomain.Service
	orderSvc      orderdomain.Service
	paymentSvc    paymentdomain.Service
	expenseSvc    expensedomain.Service
	financeSvc    financedomain.Service
	settingsSvc   settingsdomain.Service
	refrepo       referencedomain.Repository
	pdfProvider   pdf.Provider
	formatter     currency.Formatter
	obsMetrics    *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	Clock       clock.Clock
	Finance     *config.FinanceConfigHolder
	MainShop    seed.MainShop
	CustomerSvc customerdomain.Service
	OrderSvc    orderdomain.Service
	PaymentSvc  paymentdomain.Service
	ExpenseSvc  expensedomain.Service
	FinanceSvc  financedomain.Service
	SettingsSvc settingsdomain.Service
	Refrepo     referencedomain.Repository
	PDFProvider pdf.Provider
	ObsMetrics  *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		genID:         p.GenID,
		clock:         p.Clock,
		defaultShopID: resolveDefaultShopID(p.Cfg, p.MainShop),
		customerSvc:   p.CustomerSvc,
		orderSvc:      p.OrderSvc,
		paymentSvc:    p.PaymentSvc,
		expenseSvc:    p.ExpenseSvc,
		financeSvc:    p.FinanceSvc,
		settingsSvc:   p.SettingsSvc,
		refrepo:       p.Refrepo,
		pdfProvider:   p.PDFProvider,
		formatter:     currency.NewFormatter(p.Finance.Get().CurrencySymbol),
		obsMetrics:    p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

// resolveDefaultShopID prefers the configured override; a fresh
// install with no DEFAULT_SHOP set falls back to the seeded main shop.
func resolveDefaultShopID(cfg config.Config, mainShop seed.MainShop) int64 {
	if cfg.DefaultShopID != 0 {
		return cfg.DefaultShopID
	}
	return int64(mainShop.ID)
}

// formatterFor honors the shop's stored currency preference, falling
// back to the service-wide symbol when none is set.
func (s *Server) formatterFor(ctx context.Context) currency.Formatter {
	if settings, err := s.settingsSvc.Get(ctx); err == nil && settings.Currency != "" {
		return currency.NewFormatter(settings.Currency)
	}
	return s.formatter
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")
	api.Use(s.ShopContextMiddleware())

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/:id/balance", s.GetOrderBalance)
	api.GET("/orders/:id/invoice", s.GetOrderInvoice)
	api.GET("/orders/:id/receipt", s.GetOrderReceipt)

	api.POST("/payments", s.CreatePayment)
	api.GET("/payments", s.ListPayments)
	api.DELETE("/payments/:id", s.DeletePayment)

	api.POST("/expenses", s.CreateExpense)
	api.GET("/expenses", s.ListExpenses)
	api.DELETE("/expenses/:id", s.DeleteExpense)

	api.GET("/finance/summary", s.GetFinanceSummary)
	api.GET("/finance/monthly", s.GetFinanceMonthly)
	api.GET("/finance/categories", s.GetFinanceCategories)
	api.GET("/finance/balances", s.GetFinanceBalances)

	api.GET("/dashboard/stats", s.GetDashboardStats)

	api.GET("/settings", s.GetSettings)
	api.PUT("/settings", s.UpdateSettings)

	api.GET("/reference/garment-types", s.ListGarmentTypes)
	api.GET("/reference/order-statuses", s.ListOrderStatuses)
	api.GET("/reference/expense-categories", s.ListExpenseCategories)
	api.GET("/reference/payment-methods", s.ListPaymentMethods)
}
