package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registerHomeRoutes wires the unauthenticated health probe.
func registerHomeRoutes(r *gin.Engine, dbPool *pgxpool.Pool) {
	r.GET("/health", func(c *gin.Context) {
		database := "Connected"
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			database = "Disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "Server is running",
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  database,
		})
	})
}
