package console

import (
	"fmt"
	"strings"

	"mafia-moderator/internal/service/dto"
	"mafia-moderator/internal/service/game"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func (c *Console) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetTitle("%s", title)
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter

	return t
}

func playerState(p dto.PlayerStatus) string {
	switch {
	case p.Kicked:
		return "被踢出"
	case p.Lynched:
		return "被处决"
	case !p.Alive:
		return "死亡"
	case !p.Present:
		return "离场"
	default:
		return "在场"
	}
}

func yesNo(b bool) string {
	if b {
		return "是"
	}

	return ""
}

func (c *Console) cmdStatus(_ []string) {
	status, err := c.table.Status()
	if err != nil {
		c.fail(err)
		return
	}

	timeText := "白天"
	if status.Time == string(game.TIME_NIGHT) {
		timeText = "夜晚"
	}

	t := c.newTable(fmt.Sprintf("第 %d 天 %s", status.Date, timeText))

	header := table.Row{"#", "名字", "角色", "伪装", "状态", "投票", "待行动"}
	if status.Ended {
		header = append(header, "获胜")
	}
	t.AppendHeader(header)

	for _, p := range status.Players {
		row := table.Row{
			p.ID,
			p.Name,
			p.Role,
			p.FakeRole,
			playerState(p),
			p.LynchVote,
			strings.Join(p.Pending, ","),
		}
		if status.Ended {
			row = append(row, yesNo(p.Won))
		}
		t.AppendRow(row)
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	var footer []string
	if status.Ended {
		footer = append(footer, "游戏已结束")
	} else {
		if status.LynchCanOccur {
			footer = append(footer, "今天尚未处决")
		}
		if status.MafiaCanUseKill {
			footer = append(footer, "黑手党尚未行动")
		}
	}
	if len(footer) > 0 {
		t.SetCaption("%s", strings.Join(footer, "，"))
	}

	t.Render()
}

func (c *Console) cmdRoles(_ []string) {
	rb := c.table.Rulebook()

	t := c.newTable(fmt.Sprintf("规则书第 %d 版", rb.Edition()))
	t.AppendHeader(table.Row{"别名", "角色", "阵营", "能力", "胜利条件", "可疑"})
	for _, role := range rb.Roles() {
		ability := "-"
		if role.HasAbility() {
			ability = string(role.Ability)
		}

		t.AppendRow(table.Row{
			role.Alias,
			role.ID,
			role.Alignment,
			ability,
			role.WinCondition,
			yesNo(role.Suspicious),
		})
	}
	t.Render()

	w := c.newTable("万能牌")
	w.AppendHeader(table.Row{"别名", "万能牌", "抽取方式"})
	for _, wildcard := range rb.Wildcards() {
		draw := "按阵营"
		if wildcard.IsWeighted() {
			draw = "固定权重"
		}
		w.AppendRow(table.Row{wildcard.Alias(), wildcard.ID(), draw})
	}
	w.Render()
}

func (c *Console) cmdInvestigations(_ []string) {
	invs, err := c.table.Investigations()
	if err != nil {
		c.fail(err)
		return
	}

	if len(invs) == 0 {
		palette.Info.Fprintln(c.out, "还没有任何调查结果")
		return
	}

	t := c.newTable("调查结果")
	t.AppendHeader(table.Row{"夜晚", "调查者", "目标", "结果"})
	for _, inv := range invs {
		result := palette.Good.Sprint("清白")
		if inv.Suspicious {
			result = palette.Bad.Sprint("可疑")
		}
		t.AppendRow(table.Row{inv.Date, inv.Caster, inv.Target, result})
	}
	t.Render()
}

func (c *Console) cmdHelp(_ []string) {
	t := c.newTable("可用命令")
	t.AppendHeader(table.Row{"命令", "说明"})
	for _, cmd := range c.commands {
		t.AppendRow(table.Row{cmd.usage, cmd.desc})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	fmt.Fprintln(c.out, "玩家用名字指定，角色牌用 roles 中列出的别名指定")
}
