package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"mafia-moderator/internal/state"

	"github.com/peterh/liner"
	"go.uber.org/zap"
)

func loadHistory(line *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := line.ReadHistory(f); err != nil {
		zap.L().Warn("读取命令历史失败", zap.String("path", path), zap.Error(err))
	}
}

func saveHistory(line *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		zap.L().Warn("保存命令历史失败", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := line.WriteHistory(f); err != nil {
		zap.L().Warn("保存命令历史失败", zap.String("path", path), zap.Error(err))
	}
}

// Run 启动交互式主持人控制台，直到输入 quit、Ctrl-C 或 EOF
func Run(appState *state.AppState) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := appState.Cfg.HistoryFile
	if history != "" {
		loadHistory(line, history)
		defer saveHistory(line, history)
	}

	c := New(appState.TableSvc, os.Stdout)

	palette.Header.Println("黑手党主持人控制台，输入 help 查看命令")

	for {
		input, err := line.Prompt(fmt.Sprintf("(%s) ", c.prompt()))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				palette.Info.Println("再见")
				return nil
			}

			return fmt.Errorf("读取输入失败: %w", err)
		}

		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if c.Exec(input) {
			return nil
		}
	}
}

func (c *Console) prompt() string {
	g, err := c.table.Game()
	if err != nil {
		return "mafia"
	}

	if g.HasEnded() {
		return "已结束"
	}

	return phase(g)
}
