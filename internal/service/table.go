package service

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"mafia-moderator/internal/service/dto"
	"mafia-moderator/internal/service/game"
	"mafia-moderator/internal/service/rulebook"

	"go.uber.org/zap"
)

var ErrNoTable = errors.New("当前没有进行中的游戏")

// CardCountError 玩家数量与角色牌数量不一致
type CardCountError struct {
	Names int
	Cards int
}

func (e *CardCountError) Error() string {
	return fmt.Sprintf("玩家数量 %d 与角色牌数量 %d 不一致", e.Names, e.Cards)
}

// PlayerNameError 名字为空、重复或找不到
type PlayerNameError struct {
	Name   string
	Reason string
}

const (
	NAME_EMPTY     = "Empty"
	NAME_DUPLICATE = "Duplicate"
	NAME_NOT_FOUND = "NotFound"
)

func (e *PlayerNameError) Error() string {
	switch e.Reason {
	case NAME_EMPTY:
		return "玩家名称不能为空"
	case NAME_DUPLICATE:
		return fmt.Sprintf("玩家名称 %q 重复", e.Name)
	default:
		return fmt.Sprintf("找不到玩家 %q", e.Name)
	}
}

// TableService 持有当前这一桌游戏，把玩家名字和角色牌别名
// 翻译为引擎使用的编号与引用
type TableService struct {
	rulebook *rulebook.Rulebook
	rng      *rand.Rand

	game  *game.Game
	names []string
}

// NewTableService seed 为 0 时使用随机种子
func NewTableService(rb *rulebook.Rulebook, seed uint64) *TableService {
	if seed == 0 {
		seed = rand.Uint64()
	}

	zap.L().Debug("桌面随机种子", zap.Uint64("seed", seed))

	return &TableService{
		rulebook: rb,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (ts *TableService) Rulebook() *rulebook.Rulebook {
	return ts.rulebook
}

// resolveCards 每张牌先按角色别名解析，再按万能牌别名解析
func (ts *TableService) resolveCards(cards []string) ([]rulebook.RoleRef, []rulebook.WildcardRef, error) {
	roles := make([]rulebook.RoleRef, 0, len(cards))
	wildcards := make([]rulebook.WildcardRef, 0)

	for _, card := range cards {
		roleRef := rulebook.RoleByAlias(card)
		if ts.rulebook.ContainsRole(roleRef) {
			roles = append(roles, roleRef)
			continue
		}

		wildcardRef := rulebook.WildcardByAlias(card)
		if ts.rulebook.ContainsWildcard(wildcardRef) {
			wildcards = append(wildcards, wildcardRef)
			continue
		}

		return nil, nil, &rulebook.RoleNotFoundError{Ref: roleRef}
	}

	return roles, wildcards, nil
}

// NewTable 开始新的一局，替换当前进行中的游戏
func (ts *TableService) NewTable(names []string, cards []string) error {
	if len(names) != len(cards) {
		return &CardCountError{Names: len(names), Cards: len(cards)}
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return &PlayerNameError{Reason: NAME_EMPTY}
		}

		if seen[name] {
			return &PlayerNameError{Name: name, Reason: NAME_DUPLICATE}
		}
		seen[name] = true
	}

	roles, wildcards, err := ts.resolveCards(cards)
	if err != nil {
		return err
	}

	g, err := game.NewGame(
		ts.rulebook,
		roles,
		wildcards,
		game.WithRand(ts.rng),
		game.WithLogger(zap.L()),
	)
	if err != nil {
		return err
	}

	ts.game = g
	ts.names = append([]string(nil), names...)

	zap.L().Info(
		"新的一局已开始",
		zap.String("game_id", g.ID()),
		zap.Strings("players", ts.names),
	)

	return nil
}

func (ts *TableService) Game() (*game.Game, error) {
	if ts.game == nil {
		return nil, ErrNoTable
	}

	return ts.game, nil
}

func (ts *TableService) PlayerByName(name string) (game.PlayerID, error) {
	if ts.game == nil {
		return game.NO_PLAYER, ErrNoTable
	}

	for i, n := range ts.names {
		if n == name {
			return game.PlayerID(i), nil
		}
	}

	return game.NO_PLAYER, &PlayerNameError{Name: name, Reason: NAME_NOT_FOUND}
}

func (ts *TableService) PlayerName(id game.PlayerID) string {
	if id < 0 || int(id) >= len(ts.names) {
		return fmt.Sprintf("#%d", id)
	}

	return ts.names[id]
}

func (ts *TableService) Status() (dto.TableStatus, error) {
	g, err := ts.Game()
	if err != nil {
		return dto.TableStatus{}, err
	}

	status := dto.TableStatus{
		GameID:          g.ID(),
		Edition:         int(g.Rulebook().Edition()),
		Date:            g.Date(),
		Time:            string(g.Time()),
		Ended:           g.HasEnded(),
		LynchCanOccur:   g.LynchCanOccur(),
		MafiaCanUseKill: g.MafiaCanUseKill(),
		Players:         make([]dto.PlayerStatus, 0, g.NumPlayers()),
	}

	for _, p := range g.Players() {
		ps := dto.PlayerStatus{
			ID:      int(p.ID()),
			Name:    ts.PlayerName(p.ID()),
			Role:    string(p.Role().ID),
			Alive:   p.IsAlive(),
			Present: p.IsPresent(),
			Kicked:  p.IsKicked(),
			Lynched: p.WasLynched(),
			Won:     p.HasWon(),
		}

		if fake, ok := p.FakeRole(); ok {
			ps.FakeRole = string(fake.ID)
		}

		if target, ok := p.LynchVote(); ok {
			ps.LynchVote = ts.PlayerName(target)
		}

		for _, ability := range p.CompulsoryAbilities() {
			ps.Pending = append(ps.Pending, string(ability))
		}

		status.Players = append(status.Players, ps)
	}

	return status, nil
}

func (ts *TableService) Investigations() ([]dto.InvestigationView, error) {
	g, err := ts.Game()
	if err != nil {
		return nil, err
	}

	invs := g.Investigations()
	views := make([]dto.InvestigationView, 0, len(invs))

	for _, inv := range invs {
		views = append(views, dto.InvestigationView{
			Caster:     ts.PlayerName(inv.Caster),
			Target:     ts.PlayerName(inv.Target),
			Date:       inv.Date,
			Suspicious: inv.Suspicious,
		})
	}

	return views, nil
}
