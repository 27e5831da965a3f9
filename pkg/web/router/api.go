package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"gorm.io/gorm"

	"sdk-server/pkg/common/config"
	"sdk-server/pkg/core/account/service"
	"sdk-server/pkg/web/handler"
	"sdk-server/pkg/web/middleware"
)

// RegisterAPIs 注册所有API路由
func RegisterAPIs(h *server.Hertz, cfg *config.Config, db *gorm.DB, svc service.AccountService) {
	// 初始化Handler实例
	healthHandler := handler.NewHealthCheckHandler(db)
	accountHandler := handler.NewAccountHandler(svc)
	sdkApiHandler := handler.NewSdkApiHandler()

	// 注册全局中间件（按执行顺序）
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.LoggerMiddleware(),
		middleware.SecurityCheckMiddleware(cfg.Middleware.Security),
		middleware.TimeoutMiddleware(cfg.Middleware.Timeout.RequestTimeout),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
		middleware.RateLimitMiddleware(
			cfg.Middleware.RateLimit.Rate,
			cfg.Middleware.RateLimit.Interval,
		),
	)

	// 基础接口
	h.GET("/health", healthHandler.HealthCheck)

	// 账号接口组
	accountGroup := h.Group("/account")
	{
		accountGroup.GET("/register", accountHandler.RegisterPage)
		accountGroup.POST("/register", accountHandler.ProcessRegister)

		// 游戏客户端调用的风控接口
		accountGroup.POST("/risky/api/check", sdkApiHandler.RiskyApiCheck)
	}
}
