package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/chartwheel-backend-go/internal/config"
	"github.com/jengzang/chartwheel-backend-go/internal/handler"
	"github.com/jengzang/chartwheel-backend-go/internal/middleware"
	"github.com/jengzang/chartwheel-backend-go/internal/repository"
	"github.com/jengzang/chartwheel-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Chartwheel Backend API is running",
		})
	})

	chartRepo := repository.NewChartRepository(db)
	chartService := service.NewChartService(chartRepo)
	chartHandler := handler.NewChartHandler(chartService, cfg.DefaultTheme)
	themeHandler := handler.NewThemeHandler()
	authHandler := handler.NewAuthHandler(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// API 路由组
	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", authHandler.Token)

		// 星盘相关接口
		charts := api.Group("/charts")
		{
			charts.GET("", chartHandler.List)
			charts.GET("/:id", chartHandler.Get)
			charts.GET("/:id/indexes", chartHandler.Indexes)
			charts.GET("/:id/layout", chartHandler.Layout)
			charts.GET("/:id/svg", chartHandler.SVG)
			charts.GET("/:id/stats", chartHandler.Stats)

			// 写操作需要认证
			auth := charts.Group("")
			auth.Use(middleware.Auth(cfg.JWTSecret))
			{
				auth.POST("", chartHandler.Create)
				auth.DELETE("/:id", chartHandler.Delete)
			}
		}

		// 无状态布局预览
		api.POST("/layout/preview", chartHandler.Preview)

		// 主题接口
		themes := api.Group("/themes")
		{
			themes.GET("", themeHandler.List)
			themes.GET("/:name", themeHandler.Get)
		}
	}

	return r
}
