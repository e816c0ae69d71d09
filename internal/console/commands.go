package console

import (
	"strings"

	"mafia-moderator/internal/service/game"
	"mafia-moderator/internal/service/rulebook"
)

func splitList(arg string) []string {
	parts := strings.Split(arg, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func (c *Console) cmdNew(args []string) {
	if err := c.table.NewTable(splitList(args[0]), splitList(args[1])); err != nil {
		c.fail(err)
		return
	}

	g, _ := c.table.Game()

	palette.Info.Fprintf(c.out, "新的一局已开始（%s），共 %d 名玩家\n", g.ID(), g.NumPlayers())

	if g.HasEnded() {
		c.printWinners(g)
	}
}

func (c *Console) cmdVote(args []string) {
	voter, target, ok := c.pair(args[0], args[1])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		if err := g.CastLynchVote(voter, target); err != nil {
			return err
		}

		if victim, ok := g.NextLynchVictim(); ok {
			palette.Warn.Fprintf(c.out, "%s 已获得多数票\n", c.name(victim))
		}

		return nil
	})
}

func (c *Console) cmdUnvote(args []string) {
	voter, ok := c.player(args[0])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		return g.ClearLynchVote(voter)
	})
}

func (c *Console) cmdLynch(_ []string) {
	c.mutate(func(g *game.Game) error {
		_, lynched, err := g.ProcessLynchVotes()
		if err != nil {
			return err
		}

		if !lynched {
			palette.Info.Fprintln(c.out, "没有人获得多数票，今天无人被处决")
		}

		return nil
	})
}

func (c *Console) cmdDuel(args []string) {
	caster, target, ok := c.pair(args[0], args[1])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		outcome, err := g.StageDuel(caster, target)
		if err != nil {
			return err
		}

		palette.Info.Fprintf(c.out, "决斗胜者：%s\n", c.name(outcome.Winner))

		return nil
	})
}

func (c *Console) cmdNight(_ []string) {
	c.mutate(func(g *game.Game) error {
		return g.BeginNight()
	})
}

func (c *Console) cmdMafia(args []string) {
	if len(args) == 1 {
		if args[0] != "skip" {
			palette.Warn.Fprintln(c.out, "用法：mafia <发起者> <目标> | mafia skip")
			return
		}

		c.mutate(func(g *game.Game) error {
			return g.SkipMafiaKill()
		})
		return
	}

	caster, target, ok := c.pair(args[0], args[1])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		return g.CastMafiaKill(caster, target)
	})
}

// 控制台能力名与引擎操作的对应关系
var (
	castActions = map[string]func(g *game.Game, caster, target game.PlayerID) error{
		"kill":   (*game.Game).CastKill,
		"heal":   (*game.Game).CastHeal,
		"check":  (*game.Game).CastInvestigate,
		"peddle": (*game.Game).CastPeddle,
	}
	skipActions = map[string]func(g *game.Game, caster game.PlayerID) error{
		"kill":   (*game.Game).SkipKill,
		"heal":   (*game.Game).SkipHeal,
		"check":  (*game.Game).SkipInvestigate,
		"peddle": (*game.Game).SkipPeddle,
	}
)

func (c *Console) castAbility(ability string, args []string) {
	cast, ok := castActions[ability]
	if !ok {
		palette.Warn.Fprintf(c.out, "未知能力 %q\n", ability)
		return
	}

	caster, target, ok := c.pair(args[0], args[1])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		if err := cast(g, caster, target); err != nil {
			return err
		}

		if ability == "check" && g.Time() == game.TIME_NIGHT {
			palette.Info.Fprintln(c.out, "调查已记录，结果将在夜晚结束后公布")
		}

		return nil
	})
}

func (c *Console) printInvestigation(inv game.Investigation) {
	if inv.Suspicious {
		palette.Bad.Fprintf(c.out, "%s 调查 %s：可疑\n", c.name(inv.Caster), c.name(inv.Target))
		return
	}

	palette.Good.Fprintf(c.out, "%s 调查 %s：清白\n", c.name(inv.Caster), c.name(inv.Target))
}

func (c *Console) cmdSkip(args []string) {
	skip, ok := skipActions[args[0]]
	if !ok {
		palette.Warn.Fprintln(c.out, "用法：skip <kill|heal|check|peddle> <发起者>")
		return
	}

	caster, ok := c.player(args[1])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		return skip(g, caster)
	})
}

func (c *Console) cmdFake(args []string) {
	player, ok := c.player(args[0])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		return g.ChooseFakeRole(player, rulebook.RoleByAlias(args[1]))
	})
}

func (c *Console) cmdKick(args []string) {
	player, ok := c.player(args[0])
	if !ok {
		return
	}

	c.mutate(func(g *game.Game) error {
		return g.KickPlayer(player)
	})
}
