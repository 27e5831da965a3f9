package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"sdk-server/pkg/common/config"
	"sdk-server/pkg/core/account/model"
	dao "sdk-server/pkg/core/account/repository/dao/impl"
	"sdk-server/pkg/core/account/service"
	"sdk-server/pkg/web/router"
)

func main() {
	// 初始化配置
	cfg := config.Load()

	// 初始化数据库连接，失败时直接退出
	db, err := cfg.InitDB()
	if err != nil {
		hlog.Fatalf("Failed to open SQLite database: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		hlog.Fatalf("Failed to prepare account table: %v", err)
	}

	// 组装DAO和服务层
	accountRepo := dao.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo)

	// 创建Hertz实例
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)

	// 注册路由
	router.RegisterAPIs(h, cfg, db, accountService)

	hlog.Infof("启动后访问 http://127.0.0.1%s/account/register 即可注册账号", cfg.Server.Address)

	// 启动服务
	h.Spin()
}
