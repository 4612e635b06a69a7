package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/config"
)

// CORS only lets the configured origins make cross-origin requests.
// Requests from any other origin are rejected with 403.
func CORS(cfg *config.AppConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodHead,
		},
		AllowHeaders:              []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		OptionsResponseStatusCode: cfg.CORS.OptionsSuccessStatus,
		MaxAge:                    12 * time.Hour,
	})
}
