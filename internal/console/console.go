package console

import (
	"fmt"
	"io"
	"strings"

	"mafia-moderator/internal/service"
	"mafia-moderator/internal/service/game"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var palette = struct {
	Info, Warn, Error, Header, Good, Bad *color.Color
}{
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Error:  color.New(color.FgRed),
	Header: color.New(color.FgWhite, color.Bold),
	Good:   color.New(color.FgGreen),
	Bad:    color.New(color.FgHiRed),
}

type handler func(c *Console, args []string)

func abilityHandler(ability string) handler {
	return func(c *Console, args []string) {
		c.castAbility(ability, args)
	}
}

type command struct {
	name    string
	usage   string
	desc    string
	minArgs int
	maxArgs int
	run     handler
}

// Console 主持人控制台，一行一条命令
type Console struct {
	table *service.TableService
	out   io.Writer

	commands []command
	byName   map[string]*command
}

func New(table *service.TableService, out io.Writer) *Console {
	c := &Console{
		table: table,
		out:   out,
	}

	c.commands = []command{
		{"new", "new <名字,...> <角色牌,...>", "开始新的一局", 2, 2, (*Console).cmdNew},
		{"status", "status", "显示当前对局", 0, 0, (*Console).cmdStatus},
		{"roles", "roles", "列出规则书中的角色与万能牌", 0, 0, (*Console).cmdRoles},
		{"investigations", "investigations", "列出所有调查结果", 0, 0, (*Console).cmdInvestigations},
		{"vote", "vote <投票者> <目标>", "投出处决票", 2, 2, (*Console).cmdVote},
		{"unvote", "unvote <投票者>", "撤回处决票", 1, 1, (*Console).cmdUnvote},
		{"lynch", "lynch", "结算今天的处决", 0, 0, (*Console).cmdLynch},
		{"duel", "duel <发起者> <目标>", "发起决斗", 2, 2, (*Console).cmdDuel},
		{"night", "night", "进入夜晚", 0, 0, (*Console).cmdNight},
		{"mafia", "mafia <发起者> <目标> | mafia skip", "黑手党击杀或放弃", 1, 2, (*Console).cmdMafia},
		{"kill", "kill <发起者> <目标>", "使用击杀能力", 2, 2, abilityHandler("kill")},
		{"heal", "heal <发起者> <目标>", "使用治疗能力", 2, 2, abilityHandler("heal")},
		{"check", "check <发起者> <目标>", "使用调查能力", 2, 2, abilityHandler("check")},
		{"peddle", "peddle <发起者> <目标>", "使用下药能力", 2, 2, abilityHandler("peddle")},
		{"skip", "skip <kill|heal|check|peddle> <发起者>", "放弃本夜的能力", 2, 2, (*Console).cmdSkip},
		{"fake", "fake <玩家> <角色别名>", "伪装者选择伪装角色", 2, 2, (*Console).cmdFake},
		{"kick", "kick <玩家>", "将玩家踢出游戏", 1, 1, (*Console).cmdKick},
		{"help", "help", "显示帮助", 0, 0, (*Console).cmdHelp},
		{"quit", "quit", "退出", 0, 0, nil},
	}

	c.byName = make(map[string]*command, len(c.commands))
	for i := range c.commands {
		c.byName[c.commands[i].name] = &c.commands[i]
	}

	return c
}

// Exec 执行一行输入，返回 true 表示退出
func (c *Console) Exec(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, ok := c.byName[name]
	if !ok {
		palette.Warn.Fprintf(c.out, "未知命令 %q，输入 help 查看可用命令\n", name)
		return false
	}

	if cmd.run == nil {
		return true
	}

	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		palette.Warn.Fprintf(c.out, "用法：%s\n", cmd.usage)
		return false
	}

	zap.L().Debug("执行命令", zap.String("command", name), zap.Strings("args", args))

	cmd.run(c, args)

	return false
}

func (c *Console) fail(err error) {
	palette.Error.Fprintln(c.out, c.describe(err))
}

func (c *Console) name(id game.PlayerID) string {
	return c.table.PlayerName(id)
}

func (c *Console) player(name string) (game.PlayerID, bool) {
	id, err := c.table.PlayerByName(name)
	if err != nil {
		c.fail(err)
		return game.NO_PLAYER, false
	}

	return id, true
}

func (c *Console) pair(casterName, targetName string) (game.PlayerID, game.PlayerID, bool) {
	caster, ok := c.player(casterName)
	if !ok {
		return game.NO_PLAYER, game.NO_PLAYER, false
	}

	target, ok := c.player(targetName)
	if !ok {
		return game.NO_PLAYER, game.NO_PLAYER, false
	}

	return caster, target, true
}

// mutate 执行一次改变对局的操作，随后报告离场的玩家、阶段变化和游戏结果
func (c *Console) mutate(action func(g *game.Game) error) {
	g, err := c.table.Game()
	if err != nil {
		c.fail(err)
		return
	}

	present := make([]bool, g.NumPlayers())
	for _, p := range g.Players() {
		present[p.ID()] = p.IsPresent()
	}
	date, time := g.Date(), g.Time()
	known := len(g.Investigations())

	if err := action(g); err != nil {
		c.fail(err)
		return
	}

	for _, p := range g.Players() {
		if present[p.ID()] && !p.IsPresent() {
			palette.Bad.Fprintf(c.out, "%s %s\n", c.name(p.ID()), departure(p))
		}
	}

	for _, inv := range g.Investigations()[known:] {
		c.printInvestigation(inv)
	}

	if g.Date() != date || g.Time() != time {
		palette.Info.Fprintln(c.out, phase(g))
	}

	if g.HasEnded() {
		c.printWinners(g)
	}
}

func departure(p *game.Player) string {
	switch {
	case p.IsKicked():
		return "被踢出了游戏"
	case p.WasLynched():
		return "被处决了"
	case !p.IsAlive():
		return "死亡了"
	default:
		return "离开了游戏"
	}
}

func phase(g *game.Game) string {
	if g.Time() == game.TIME_NIGHT {
		return fmt.Sprintf("第 %d 夜", g.Date())
	}

	return fmt.Sprintf("第 %d 天", g.Date())
}

func (c *Console) printWinners(g *game.Game) {
	winners := make([]string, 0)
	for _, p := range g.Players() {
		if p.HasWon() {
			winners = append(winners, c.name(p.ID()))
		}
	}

	if len(winners) == 0 {
		palette.Header.Fprintln(c.out, "游戏结束，没有人获胜")
		return
	}

	palette.Header.Fprintf(c.out, "游戏结束，获胜者：%s\n", strings.Join(winners, ", "))
}
