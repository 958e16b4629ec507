package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neofinance/expense-tracker/internal/transaction"
)

// ServiceName identifies this process in health responses.
const ServiceName = "expense-tracker"

// Config carries the routing-layer settings.
type Config struct {
	// CORSOrigin is the allowed cross-origin value, defaulting to "*".
	CORSOrigin string
	// StorageTimeout bounds each storage round-trip, defaulting to 5s.
	StorageTimeout time.Duration
}

// InitRoutes registers all transaction endpoints on the given Gin engine.
// The service is injected so tests can wire an in-memory storage behind it.
func InitRoutes(e *gin.Engine, service *transaction.Service, logger *zap.Logger, cfg Config) {
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = 5 * time.Second
	}

	e.HandleMethodNotAllowed = true
	e.Use(requestID(), crossOrigin(cfg.CORSOrigin))

	handler := NewTransactionHandler(service, logger, cfg.StorageTimeout)

	e.GET("/transactions", handler.handleList)
	e.POST("/transactions", handler.handleCreate)
	e.DELETE("/transactions/:id", handler.handleDelete)

	// Liveness only: deliberately has no storage dependency so it stays
	// green while the database is down.
	e.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": ServiceName,
		})
	})
}

// crossOrigin stamps the open cross-origin headers on every response and
// terminates pre-flight requests immediately with an empty 200.
func crossOrigin(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// requestID tags each request with a fresh ID for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
