package console

import (
	"bytes"
	"strings"
	"testing"

	"mafia-moderator/internal/service"
	"mafia-moderator/internal/service/rulebook"

	"github.com/fatih/color"
)

func newTestConsole(t *testing.T) (*Console, *service.TableService, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true

	rb, err := rulebook.New(rulebook.LATEST_EDITION)
	if err != nil {
		t.Fatalf("building rulebook failed: %v", err)
	}

	ts := service.NewTableService(rb, 7)
	out := &bytes.Buffer{}

	return New(ts, out), ts, out
}

// run executes one line and returns what it printed
func run(c *Console, out *bytes.Buffer, line string) string {
	out.Reset()
	c.Exec(line)
	return out.String()
}

func mustContain(t *testing.T, got string, want ...string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Fatalf("output %q should contain %q", got, w)
		}
	}
}

func TestExec_UnknownCommandAndUsage(t *testing.T) {
	c, _, out := newTestConsole(t)

	mustContain(t, run(c, out, "frobnicate"), "未知命令")
	mustContain(t, run(c, out, "vote alice"), "用法", "vote <投票者> <目标>")
	mustContain(t, run(c, out, "mafia alice"), "用法")

	if got := run(c, out, "   "); got != "" {
		t.Fatalf("blank line should print nothing, got %q", got)
	}
}

func TestExec_Quit(t *testing.T) {
	c, _, _ := newTestConsole(t)

	if c.Exec("status") {
		t.Fatalf("status should not quit")
	}

	if !c.Exec("QUIT") {
		t.Fatalf("quit should end the session")
	}
}

func TestExec_RequiresTable(t *testing.T) {
	c, _, out := newTestConsole(t)

	mustContain(t, run(c, out, "status"), "还没有开始游戏")
	mustContain(t, run(c, out, "night"), "还没有开始游戏")
}

func TestExec_NewTableErrors(t *testing.T) {
	c, _, out := newTestConsole(t)

	mustContain(t, run(c, out, "new alice,bob pea"), "有 2 名玩家，却有 1 张角色牌")
	mustContain(t, run(c, out, "new alice,bob pea,wizard"), "未知的角色牌", "wizard")
}

func TestExec_StatusAndRoles(t *testing.T) {
	c, _, out := newTestConsole(t)

	mustContain(t, run(c, out, "new alice,bob,carol pea,pea,rac"), "新的一局已开始", "3 名玩家")
	mustContain(t, run(c, out, "status"), "第 0 天", "alice", "bob", "carol", "racketeer")
	mustContain(t, run(c, out, "roles"), "pea", "doc", "*bv", "万能牌", "Heal", "固定权重", "按阵营")
	mustContain(t, run(c, out, "help"), "kick <玩家>", "skip <kill|heal|check|peddle> <发起者>")
}

func TestExec_DescribesEngineErrors(t *testing.T) {
	c, _, out := newTestConsole(t)

	run(c, out, "new alice,bob,carol pea,pea,rac")
	mustContain(t, run(c, out, "vote alice bob"), "alice 无法投票给 bob", "现在不能这样做")

	run(c, out, "night")
	run(c, out, "mafia skip")

	mustContain(t, run(c, out, "vote alice alice"), "alice 无法投票给 alice", "不能投票给自己")
	mustContain(t, run(c, out, "vote alice mallory"), "找不到玩家")
	mustContain(t, run(c, out, "kill alice bob"), "alice 无法击杀 bob", "现在不是夜晚")
	mustContain(t, run(c, out, "skip heal alice"), "alice 无法放弃治疗")
	mustContain(t, run(c, out, "skip fly alice"), "用法")
}

func TestExec_PlaysARound(t *testing.T) {
	c, ts, out := newTestConsole(t)

	names := []string{"alice", "bob", "carol", "dave"}
	run(c, out, "new alice,bob,carol,dave pea,pea,pea,rac")

	g, err := ts.Game()
	if err != nil {
		t.Fatalf("game should exist: %v", err)
	}

	var mafia string
	var village []string
	for i, p := range g.Players() {
		if p.Role().ID == rulebook.ROLE_RACKETEER {
			mafia = names[i]
		} else {
			village = append(village, names[i])
		}
	}

	mustContain(t, run(c, out, "night"), "第 0 夜")

	got := run(c, out, "mafia "+mafia+" "+village[0])
	mustContain(t, got, village[0]+" 死亡了", "第 1 天")

	run(c, out, "vote "+village[1]+" "+mafia)
	mustContain(t, run(c, out, "vote "+village[2]+" "+mafia), mafia+" 已获得多数票")

	got = run(c, out, "lynch")
	mustContain(t, got, mafia+" 被处决了", "游戏结束")

	if !g.HasEnded() {
		t.Fatalf("lynching the only mafia should end the game")
	}

	mustContain(t, run(c, out, "night"), "无法进入夜晚", "游戏已经结束")
}

func TestExec_NoMajority(t *testing.T) {
	c, _, out := newTestConsole(t)

	run(c, out, "new alice,bob,carol,dave pea,pea,pea,rac")
	run(c, out, "night")
	run(c, out, "mafia skip")

	mustContain(t, run(c, out, "lynch"), "今天无人被处决")
	mustContain(t, run(c, out, "lynch"), "无法处决")
}
