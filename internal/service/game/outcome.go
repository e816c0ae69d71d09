package game

import (
	"mafia-moderator/internal/service/rulebook"

	"go.uber.org/zap"
)

// TryToEnd 在每次改变局面的操作后调用。只要还有在场玩家的和平条件
// 未满足，游戏就不能结束；否则为每名玩家判定胜负并永久结束游戏
func (g *Game) TryToEnd() bool {
	if g.hasEnded {
		return true
	}

	pop := g.countPopulation()

	for _, p := range g.players {
		if !p.present {
			continue
		}

		if !peaceful(p.role.PeaceCondition, pop) {
			return false
		}
	}

	g.hasEnded = true

	winners := make([]int, 0)
	for _, p := range g.players {
		won := !p.kicked && g.satisfiesWinCondition(p, pop)
		p.setWon(won)

		if won {
			winners = append(winners, int(p.id))
		}
	}

	g.log.Info(
		"游戏结束",
		zap.Uint("date", g.date),
		zap.String("time", string(g.time)),
		zap.Ints("winners", winners),
	)

	return true
}

func peaceful(cond rulebook.PeaceCondition, pop population) bool {
	switch cond {
	case rulebook.PEACE_VILLAGE_ELIMINATED:
		return pop.village == 0
	case rulebook.PEACE_MAFIA_ELIMINATED:
		return pop.mafia == 0
	case rulebook.PEACE_LAST_SURVIVOR:
		return pop.present <= 1
	default:
		return true
	}
}

func (g *Game) satisfiesWinCondition(p *Player, pop population) bool {
	switch p.role.WinCondition {
	case rulebook.WIN_SURVIVE:
		return p.alive
	case rulebook.WIN_VILLAGE_REMAINS:
		return pop.village > 0
	case rulebook.WIN_MAFIA_REMAINS:
		return pop.mafia > 0
	case rulebook.WIN_BE_LYNCHED:
		return p.lynched
	case rulebook.WIN_DUEL:
		return p.wonDuel
	default:
		return false
	}
}
