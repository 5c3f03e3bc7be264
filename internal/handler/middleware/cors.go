package middleware

import (
	"log/slog"
	"slices"

	"halisaha-api/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware maps CORSConfig onto gin-contrib/cors. A lone "*" origin opens the API to any
// site and turns credentials off, since browsers reject a wildcard with credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if !slices.Contains(corsCfg.ExposeHeaders, requestIDHeader) {
		corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), requestIDHeader)
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS credentials disabled for wildcard origin")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Bool("allow_credentials", corsCfg.AllowCredentials))
	return cors.New(corsCfg)
}
