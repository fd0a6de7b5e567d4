package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cv-backend/cv/render"
	"cv-backend/internal/cvapi"
	"cv-backend/internal/shared/config"
	"cv-backend/internal/shared/metrics"
	"cv-backend/internal/shared/server/middleware"
	"cv-backend/internal/shared/server/respond"
	"cv-backend/internal/shared/storage/templatestore"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/cv/render" {
					return "RENDER"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 20},
				"RENDER":  {Rate: 1, Burst: 5},
			},
		}),
	)

	// Dependencies
	var store render.TemplateStore
	if cfg.TemplateStoreType == "s3" {
		s3Store, err := templatestore.NewS3(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			log.Printf("failed to init s3 template store, falling back to local: %v", err)
		} else {
			store = s3Store
		}
	}
	if store == nil {
		store = templatestore.NewLocal(cfg.TemplateDir)
	}

	renderer := render.New(render.Config{
		Store:         store,
		Engine:        render.NewChromeEngine(cfg.ChromePath, cfg.RenderTimeout),
		Cache:         render.NewOutputCache(cfg.CacheSize, cfg.CacheTTL),
		OrgName:       cfg.OrgName,
		OrgLogo:       cfg.OrgLogoURL,
		FallbackQRURL: cfg.FallbackQRURL,
	})
	cvHandler := cvapi.NewHandler(renderer)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	cvHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
