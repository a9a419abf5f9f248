package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/server/handlers"
)

// Handlers bundles every HTTP adapter the router mounts.
type Handlers struct {
	Farmers     *handlers.FarmerHandler
	Collections *handlers.CollectionHandler
	Payments    *handlers.PaymentHandler
	Dispatch    *handlers.DispatchHandler
	Sales       *handlers.SaleHandler
	Reports     *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/farmers", h.Farmers.Create)
	api.GET("/farmers", h.Farmers.List)
	api.GET("/farmers/:id", h.Farmers.Get)
	api.PUT("/farmers/:id", h.Farmers.Update)
	api.DELETE("/farmers/:id", h.Farmers.Delete)
	api.GET("/farmers/:id/ledger", h.Farmers.Ledger)
	api.GET("/farmers/:id/report", h.Reports.FarmerReport)
	api.GET("/farmers/:id/bill", h.Reports.FarmerBill)

	api.POST("/collections", h.Collections.Create)
	api.GET("/collections", h.Collections.List)
	api.GET("/collections/today", h.Collections.Today)
	api.PUT("/collections/:id", h.Collections.Update)
	api.DELETE("/collections/:id", h.Collections.Delete)
	api.GET("/calculate-rate", h.Collections.CalculateRate)

	api.POST("/rate-charts", h.Collections.CreateRateChart)
	api.GET("/rate-charts", h.Collections.ListRateCharts)
	api.GET("/rate-charts/default", h.Collections.DefaultRateChart)
	api.PUT("/rate-charts/:id", h.Collections.UpdateRateChart)
	api.DELETE("/rate-charts/:id", h.Collections.DeleteRateChart)

	api.POST("/payments", h.Payments.Create)
	api.GET("/payments", h.Payments.List)
	api.DELETE("/payments/:id", h.Payments.Delete)

	api.POST("/dairy-plants", h.Dispatch.CreatePlant)
	api.GET("/dairy-plants", h.Dispatch.ListPlants)
	api.GET("/dairy-plants/:id", h.Dispatch.GetPlant)

	api.POST("/dispatches", h.Dispatch.Create)
	api.GET("/dispatches", h.Dispatch.List)
	api.PUT("/dispatches/:id/match-slip", h.Dispatch.MatchSlip)
	api.DELETE("/dispatches/:id", h.Dispatch.Delete)

	api.POST("/dairy-payments", h.Payments.CreateDairyPayment)
	api.GET("/dairy-payments", h.Payments.ListDairyPayments)
	api.DELETE("/dairy-payments/:id", h.Payments.DeleteDairyPayment)

	api.POST("/customers", h.Sales.CreateCustomer)
	api.GET("/customers", h.Sales.ListCustomers)
	api.GET("/customers/:id", h.Sales.GetCustomer)
	api.GET("/customers/:id/statement", h.Reports.CustomerStatement)

	api.POST("/walk-in-customers", h.Sales.CreateWalkInCustomer)
	api.GET("/walk-in-customers", h.Sales.ListWalkInCustomers)
	api.GET("/walk-in-customers/:id", h.Sales.GetWalkInCustomer)

	api.POST("/sales", h.Sales.Create)
	api.GET("/sales", h.Sales.List)
	api.DELETE("/sales/:id", h.Sales.Delete)

	api.POST("/udhar-payments", h.Sales.RecordUdharPayment)
	api.GET("/udhar-payments", h.Sales.ListUdharPayments)

	api.POST("/products", h.Sales.CreateProduct)
	api.GET("/products", h.Sales.ListProducts)

	api.POST("/expenses", h.Reports.CreateExpense)
	api.GET("/expenses", h.Reports.ListExpenses)
	api.DELETE("/expenses/:id", h.Reports.DeleteExpense)

	api.GET("/dashboard/stats", h.Reports.Dashboard)
	api.GET("/dashboard/weekly", h.Reports.WeeklyStats)
	api.GET("/reports/daily", h.Reports.DailyReport)
	api.GET("/reports/daily/print", h.Reports.DailyReportBill)
	api.GET("/reports/profit", h.Reports.ProfitReport)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
