package main

import (
	"log"

	"github.com/jengzang/chartwheel-backend-go/internal/api"
	"github.com/jengzang/chartwheel-backend-go/internal/config"
	"github.com/jengzang/chartwheel-backend-go/internal/database"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	// 初始化路由
	router := api.SetupRouter(cfg, db)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
