package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbodj/frigo/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(inventoryHandler *handlers.InventoryHandler, lookupHandler *handlers.LookupHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/items", inventoryHandler.ListItems)
		api.POST("/items", inventoryHandler.AddItem)
		api.POST("/items/:id/quantity", inventoryHandler.AdjustQuantity)
		api.PUT("/items/:id/expiration", inventoryHandler.SetExpiration)

		api.GET("/fridge", inventoryHandler.Fridge)
		api.GET("/articles", inventoryHandler.Articles)

		api.GET("/products/:barcode", lookupHandler.LookupProduct)
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
