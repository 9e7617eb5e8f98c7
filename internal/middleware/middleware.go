package middleware

import (
	"log"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "RequestID"

// CORSMiddleware allows the configured origins to call the API with cookies
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RequestIDMiddleware is a middleware for adding a request ID to the context
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggerMiddleware is a middleware for logging requests
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		requestID := c.GetString(RequestIDKey)
		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Printf("[ERROR] %s %s %s -> %d (%s) %s", requestID, c.Request.Method, c.Request.URL.Path, status, latency, c.Errors.String())
		case status >= 400:
			log.Printf("[WARN] %s %s %s -> %d (%s)", requestID, c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			log.Printf("[DEBUG] %s %s %s -> %d (%s)", requestID, c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
