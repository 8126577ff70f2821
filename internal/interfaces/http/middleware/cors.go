package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"film-forge-api/internal/config"
)

// CORS allows the web and mobile clients to call the API.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = []string{"GET", "POST", "OPTIONS"}
	}
	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Origin", "Content-Type", "Authorization", RequestIDHeader}
	}

	allowAll := len(origins) == 1 && origins[0] == "*"
	if allowAll {
		origins = nil
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowAllOrigins:  allowAll,
		AllowMethods:     methods,
		AllowHeaders:     headers,
		ExposeHeaders:    []string{RequestIDHeader, "X-Trace-ID", "Content-Disposition", "X-Archive-Items", "X-Archive-Assets"},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	})
}
