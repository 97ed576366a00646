// @title Skill Assessment 报告 API
// @version 1.0
// @description 技能测评与技能差距分析服务。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"skill_assessment_backend/internal/app"
	"skill_assessment_backend/internal/config"
	"skill_assessment_backend/pkg/database"
	"skill_assessment_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	seed := flag.Bool("seed", false, "启动时写入演示数据（已有用户时跳过）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly
	cfg.Seed = *seed

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		if _, err := database.InitDB(&cfg.Database, cfg.Server.Mode); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
