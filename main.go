package main

import (
	"mafia-moderator/internal/config"
	"mafia-moderator/internal/console"
	"mafia-moderator/internal/logger"
	"mafia-moderator/internal/service"
	"mafia-moderator/internal/service/rulebook"
	"mafia-moderator/internal/state"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg := config.GetConfig()

	// 初始化日志器
	logger.InitLogger(cfg.LogLevel)
	defer zap.L().Sync()

	if cfg.NoColor {
		color.NoColor = true
	}

	rb, err := rulebook.New(rulebook.Edition(cfg.Edition))
	if err != nil {
		zap.L().Fatal("加载规则书失败", zap.Error(err))
	}

	// 组装应用状态
	appState := state.NewAppState(
		cfg,
		service.NewTableService(rb, cfg.Seed),
	)

	// 启动控制台
	if err := console.Run(appState); err != nil {
		zap.L().Fatal("控制台异常退出", zap.Error(err))
	}
}
