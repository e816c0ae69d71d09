package game

import (
	"math/rand/v2"
	"slices"

	"mafia-moderator/internal/service/rulebook"

	"go.uber.org/zap"
)

// 夜晚排队等待结算的能力
type nightAction struct {
	caster PlayerID
	target PlayerID
}

// Investigation 是调查记录，按时间顺序追加，不会修改或删除
type Investigation struct {
	Caster     PlayerID
	Target     PlayerID
	Date       uint
	Suspicious bool
}

// Game 持有全部玩家，负责昼夜推进、校验并执行所有操作、结算夜晚和判定胜负。
// 所有操作都在一次调用内同步完成，调用方需保证同一时刻只有一个操作
type Game struct {
	id       string
	rulebook *rulebook.Rulebook
	rng      *rand.Rand
	log      *zap.Logger

	players []*Player

	hasEnded      bool
	date          uint
	time          Time
	lynchCanOccur bool

	mafiaCanUseKill bool
	mafiaKill       *nightAction

	pendingKills          []nightAction
	pendingHeals          []nightAction
	pendingInvestigations []nightAction
	pendingPeddles        []nightAction
	pendingHaunters       []PlayerID

	investigations []Investigation
}

type Option func(g *Game)

// WithRand 注入随机源，用于洗牌、万能牌解析、决斗和作祟
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithLogger(lgr *zap.Logger) Option {
	return func(g *Game) {
		g.log = lgr
	}
}

// NewGame 把明确指定的角色和万能牌解析后的角色洗成牌池，
// 每张牌对应一名玩家，编号按洗牌后的顺序分配。
// 构造完成后立即判定一次游戏是否结束
func NewGame(
	rb *rulebook.Rulebook,
	roles []rulebook.RoleRef,
	wildcards []rulebook.WildcardRef,
	opts ...Option,
) (*Game, error) {
	g := &Game{
		id:       GenID(),
		rulebook: rb,
		time:     TIME_DAY,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if g.log == nil {
		g.log = zap.L()
	}
	g.log = g.log.With(zap.String("game_id", g.id))

	pool := make([]rulebook.Role, 0, len(roles)+len(wildcards))

	for _, ref := range roles {
		role, err := rb.GetRole(ref)
		if err != nil {
			return nil, err
		}
		pool = append(pool, role)
	}

	for _, ref := range wildcards {
		wildcard, err := rb.GetWildcard(ref)
		if err != nil {
			return nil, err
		}

		role, err := wildcard.PickRole(rb, g.rng)
		if err != nil {
			return nil, err
		}
		pool = append(pool, role)
	}

	if len(pool) == 0 {
		return nil, ErrNoPlayers
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	g.players = make([]*Player, 0, len(pool))
	for i, role := range pool {
		g.players = append(g.players, newPlayer(PlayerID(i), role))
	}

	g.log.Info(
		"游戏已创建",
		zap.Int("edition", int(rb.Edition())),
		zap.Int("players", len(g.players)),
	)

	g.TryToEnd()

	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Rulebook() *rulebook.Rulebook {
	return g.rulebook
}

func (g *Game) Players() []*Player {
	return slices.Clone(g.players)
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) Player(id PlayerID) (*Player, error) {
	if id < 0 || int(id) >= len(g.players) {
		return nil, &PlayerNotFoundError{ID: id}
	}

	return g.players[id], nil
}

func (g *Game) HasEnded() bool {
	return g.hasEnded
}

func (g *Game) Date() uint {
	return g.date
}

func (g *Game) Time() Time {
	return g.time
}

func (g *Game) LynchCanOccur() bool {
	return g.lynchCanOccur
}

// MafiaCanUseKill 本夜黑手党的击杀机会是否仍未使用
func (g *Game) MafiaCanUseKill() bool {
	return g.mafiaCanUseKill
}

func (g *Game) Investigations() []Investigation {
	return slices.Clone(g.investigations)
}

// NumPresentMafia 返回仍在场的黑手党成员数量
func (g *Game) NumPresentMafia() int {
	count := 0
	for _, p := range g.players {
		if p.present && p.role.Alignment == rulebook.ALIGNMENT_MAFIA {
			count++
		}
	}

	return count
}

// lookupPair 查找发起者和目标，任一编号无效都返回 PlayerNotFoundError
func (g *Game) lookupPair(caster, target PlayerID) (*Player, *Player, error) {
	c, err := g.Player(caster)
	if err != nil {
		return nil, nil, err
	}

	t, err := g.Player(target)
	if err != nil {
		return nil, nil, err
	}

	return c, t, nil
}
