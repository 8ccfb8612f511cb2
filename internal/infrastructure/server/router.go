package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pillowcase/pillowcase/internal/adapter/handler"
	"github.com/pillowcase/pillowcase/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	imageHandler     *handler.ImageHandler
	transformHandler *handler.TransformHandler
	rateLimiter      *middleware.RateLimiter
	allowedOrigins   []string
	logger           *zap.Logger
}

type RouterConfig struct {
	ImageHandler     *handler.ImageHandler
	TransformHandler *handler.TransformHandler
	RateLimiter      *middleware.RateLimiter
	AllowedOrigins   []string
	Logger           *zap.Logger
	DebugMode        bool
}

func NewRouter(cfg RouterConfig) *Router {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:           engine,
		imageHandler:     cfg.ImageHandler,
		transformHandler: cfg.TransformHandler,
		rateLimiter:      cfg.RateLimiter,
		allowedOrigins:   cfg.AllowedOrigins,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	{
		images := api.Group("/images")
		{
			images.POST("", r.imageHandler.Upload)
			images.GET("", r.imageHandler.List)
			images.GET("/:id", r.imageHandler.Get)
			images.GET("/:id/resized", r.imageHandler.Resized)
			images.GET("/:id/rotated", r.imageHandler.Rotated)
			images.DELETE("/:id", r.imageHandler.Delete)
		}

		api.POST("/resize", r.transformHandler.Resize)
		api.POST("/rotate", r.transformHandler.Rotate)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
