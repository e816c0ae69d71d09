package game

import (
	"mafia-moderator/internal/service/rulebook"

	"github.com/google/uuid"
)

// GenID 生成按时间排序的游戏 ID，用于日志关联
func GenID() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("Failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// 统计在场玩家中各阵营人数
type population struct {
	present int
	village int
	mafia   int
}

func (g *Game) countPopulation() population {
	var pop population

	for _, p := range g.players {
		if !p.present {
			continue
		}

		pop.present++

		switch p.role.Alignment {
		case rulebook.ALIGNMENT_VILLAGE:
			pop.village++
		case rulebook.ALIGNMENT_MAFIA:
			pop.mafia++
		}
	}

	return pop
}
