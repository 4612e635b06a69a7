package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/pawtel/pawtel_api/config"
)

const hstsMaxAge = 15552000

// helmet-style headers gin-contrib/secure does not set
var extraSecurityHeaders = map[string]string{
	"X-Permitted-Cross-Domain-Policies": "none",
	"X-DNS-Prefetch-Control":            "off",
	"X-Download-Options":                "noopen",
	"X-XSS-Protection":                  "0",
	"Cross-Origin-Opener-Policy":        "same-origin",
	"Cross-Origin-Resource-Policy":      "same-origin",
	"Origin-Agent-Cluster":              "?1",
}

// SecurityHeaders sets the default hardening headers on every response.
// Strict-Transport-Security is only sent in production.
func SecurityHeaders(cfg *config.AppConfig) []gin.HandlerFunc {
	secureCfg := secure.Config{
		ContentTypeNosniff:      true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentSecurityPolicy:   "default-src 'self'",
		ReferrerPolicy:          "no-referrer",
	}
	if cfg.Environment == "prod" {
		secureCfg.STSSeconds = hstsMaxAge
		secureCfg.STSIncludeSubdomains = true
	}

	return []gin.HandlerFunc{
		secure.New(secureCfg),
		func(ctx *gin.Context) {
			for name, value := range extraSecurityHeaders {
				ctx.Header(name, value)
			}
			ctx.Next()
		},
	}
}
