package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"DoceGestor/app/websocket"
)

// New wires the Gin engine with all routes and middlewares.
func New(h *Handlers, hub *websocket.Hub, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if hub != nil {
		r.GET("/ws", func(c *gin.Context) {
			hub.HandleConnection(c.Writer, c.Request)
		})
	}

	v1 := r.Group("/api/v1")
	{
		ingredients := v1.Group("/insumos")
		{
			ingredients.GET("", h.ListIngredients)
			ingredients.GET("/:id", h.GetIngredient)
			ingredients.POST("", h.CreateIngredient)
			ingredients.PUT("/:id", h.UpdateIngredient)
			ingredients.DELETE("/:id", h.DeleteIngredient)
			ingredients.POST("/:id/restock", h.RestockIngredient)
			ingredients.GET("/:id/movements", h.ListIngredientMovements)
			ingredients.GET("/:id/lots", h.ListIngredientLots)
		}

		recipes := v1.Group("/receitas")
		{
			recipes.GET("", h.ListRecipes)
			recipes.GET("/:id", h.GetRecipe)
			recipes.POST("", h.CreateRecipe)
			recipes.PUT("/:id", h.UpdateRecipe)
			recipes.DELETE("/:id", h.DeleteRecipe)
			recipes.POST("/:id/produce", h.ProduceRecipe)
			recipes.GET("/:id/production", h.ListRecipeProduction)
		}
		v1.GET("/producao", h.ListProduction)

		products := v1.Group("/produtos")
		{
			products.GET("", h.ListProducts)
			products.GET("/active", h.ListActiveProducts)
			products.GET("/low-stock", h.ListLowStockProducts)
			products.GET("/:id", h.GetProduct)
			products.POST("", h.CreateProduct)
			products.PUT("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}

		sales := v1.Group("/vendas")
		{
			sales.GET("", h.ListSales)
			sales.GET("/:id", h.GetSale)
			sales.POST("", h.CreateSale)
			sales.POST("/rapida", h.CreateQuickSale)
			sales.PUT("/:id", h.UpdateSale)
			sales.DELETE("/:id", h.DeleteSale)
		}

		customers := v1.Group("/clientes")
		{
			customers.GET("", h.ListCustomers)
			customers.GET("/alerts", h.ListCustomerAlerts)
			customers.GET("/:id", h.GetCustomer)
			customers.POST("", h.CreateCustomer)
			customers.PUT("/:id", h.UpdateCustomer)
			customers.DELETE("/:id", h.DeleteCustomer)
		}

		resellers := v1.Group("/revendedores")
		{
			resellers.GET("", h.ListResellers)
			resellers.GET("/:id", h.GetReseller)
			resellers.POST("", h.CreateReseller)
			resellers.PUT("/:id", h.UpdateReseller)
			resellers.DELETE("/:id", h.DeleteReseller)
		}

		expenses := v1.Group("/gastos")
		{
			expenses.GET("", h.ListExpenses)
			expenses.POST("", h.CreateExpense)
			expenses.PUT("/:id", h.UpdateExpense)
			expenses.DELETE("/:id", h.DeleteExpense)
			expenses.POST("/:id/pay", h.PayExpense)
		}

		quotes := v1.Group("/orcamentos")
		{
			quotes.GET("", h.ListQuotes)
			quotes.GET("/:id", h.GetQuote)
			quotes.POST("", h.CreateQuote)
			quotes.PUT("/:id", h.UpdateQuote)
			quotes.DELETE("/:id", h.DeleteQuote)
			quotes.POST("/:id/approve", h.ApproveQuote)
			quotes.POST("/:id/reject", h.RejectQuote)
			quotes.GET("/:id/qrcode", h.QuoteQRCode)
		}

		schedule := v1.Group("/cronograma")
		{
			schedule.GET("", h.ListScheduleWeek)
			schedule.POST("", h.CreateScheduleItem)
			schedule.PUT("/:id", h.UpdateScheduleItem)
			schedule.DELETE("/:id", h.DeleteScheduleItem)
			schedule.POST("/:id/start", h.StartScheduleItem)
			schedule.POST("/:id/complete", h.CompleteScheduleItem)
		}

		v1.GET("/dashboard", h.GetDashboard)
	}

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
