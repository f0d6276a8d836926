package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/san-kum/physcalc/internal/calculator"
	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/library"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(lib *library.Library, calc *calculator.Calculator, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// CORS_ALLOWED_ORIGINS wins over the config file. With neither, any
	// origin is allowed.
	corsConfig := cors.DefaultConfig()
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		corsConfig.AllowOrigins = strings.Split(env, ",")
	} else if len(cfg.Server.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	handler := NewHandler(lib, calc)

	v1 := router.Group("/v1")
	v1.GET("/chapters", handler.ListChapters)
	v1.GET("/chapters/:chapter", handler.GetChapter)
	v1.POST("/solve", handler.Solve)
	v1.GET("/convert", handler.Convert)
	v1.GET("/units", handler.ListUnits)

	router.GET("/health", handler.HealthCheck)

	return router
}
