package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/Pulse-Breakout/Backend/config"
	_ "github.com/Pulse-Breakout/Backend/docs"
	"github.com/Pulse-Breakout/Backend/internal/api/handler"
	"github.com/Pulse-Breakout/Backend/pkg/middleware"
)

// NewRouter 组装全部中间件与路由。
func NewRouter(cfg *config.Config, db *gorm.DB, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	if cfg.Telemetry.SentryDSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Server.RatePerSec > 0 {
		r.Use(middleware.RateLimit(cfg.Server.RatePerSec, cfg.Server.RateBurst))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", handler.Health(db))

		users := apiGroup.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.GET("/:id", h.GetUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
			users.GET("/:id/communities", h.ListUserCommunities)
			users.GET("/:id/depositors", h.ListUserDeposits)
		}

		communities := apiGroup.Group("/communities")
		{
			communities.GET("", h.ListCommunities)
			communities.POST("", h.CreateCommunity)
			communities.GET("/:id", h.GetCommunity)
			communities.PUT("/:id", h.UpdateCommunity)
			communities.DELETE("/:id", h.DeleteCommunity)
			communities.GET("/:id/contents", h.ListCommunityContents)
			communities.GET("/:id/depositors", h.ListCommunityDeposits)
			communities.POST("/:id/depositors", h.CreateDeposit)
		}

		contents := apiGroup.Group("/contents")
		{
			contents.GET("", h.ListContents)
			contents.POST("", h.CreateContent)
			contents.GET("/:id", h.GetContent)
			contents.DELETE("/:id", h.DeleteContent)
		}
	}

	return r
}
