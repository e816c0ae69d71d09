package game

import (
	"slices"

	"mafia-moderator/internal/service/rulebook"
)

// 玩家在游戏中的编号，从 0 开始，构造游戏时一次性分配，不会复用
type PlayerID int

// 表示没有引用任何玩家
const NO_PLAYER PlayerID = -1

// 游戏内时间
type Time string

const (
	TIME_DAY   Time = "Day"
	TIME_NIGHT Time = "Night"
)

// Player 记录一名玩家在本局游戏中的全部状态，
// 只能通过 Game 的操作修改
type Player struct {
	id PlayerID

	role     rulebook.Role
	fakeRole *rulebook.Role

	alive       bool
	present     bool
	kicked      bool
	lynched     bool
	dateOfDeath uint
	timeOfDeath Time

	// 本夜尚未处理的强制能力
	compulsory []rulebook.Ability

	lynchVote PlayerID

	healed  bool
	drugged bool
	haunter PlayerID

	wonDuel bool
	hasWon  bool
}

func newPlayer(id PlayerID, role rulebook.Role) *Player {
	return &Player{
		id:         id,
		role:       role,
		alive:      true,
		present:    true,
		compulsory: make([]rulebook.Ability, 0),
		lynchVote:  NO_PLAYER,
		haunter:    NO_PLAYER,
	}
}

func (p *Player) ID() PlayerID {
	return p.id
}

func (p *Player) Role() rulebook.Role {
	return p.role
}

func (p *Player) Alignment() rulebook.Alignment {
	return p.role.Alignment
}

// FakeRole 返回本夜声明的伪装角色
func (p *Player) FakeRole() (rulebook.Role, bool) {
	if p.fakeRole == nil {
		return rulebook.Role{}, false
	}

	return *p.fakeRole, true
}

func (p *Player) HasFakeRole() bool {
	return p.fakeRole != nil
}

func (p *Player) IsAlive() bool {
	return p.alive
}

// IsPresent 被踢出或离场的玩家不在场，但仍可能参与胜负结算
func (p *Player) IsPresent() bool {
	return p.present
}

func (p *Player) IsKicked() bool {
	return p.kicked
}

func (p *Player) WasLynched() bool {
	return p.lynched
}

// DeathTime 仅在玩家死亡后有效
func (p *Player) DeathTime() (uint, Time, bool) {
	if p.alive {
		return 0, "", false
	}

	return p.dateOfDeath, p.timeOfDeath, true
}

func (p *Player) CompulsoryAbilities() []rulebook.Ability {
	return slices.Clone(p.compulsory)
}

func (p *Player) HasCompulsoryAbility(ability rulebook.Ability) bool {
	return slices.Contains(p.compulsory, ability)
}

func (p *Player) HasAnyCompulsoryAbility() bool {
	return len(p.compulsory) > 0
}

func (p *Player) LynchVote() (PlayerID, bool) {
	return p.lynchVote, p.lynchVote != NO_PLAYER
}

func (p *Player) IsHealed() bool {
	return p.healed
}

func (p *Player) IsDrugged() bool {
	return p.drugged
}

// Haunter 返回作祟杀死该玩家的幽灵
func (p *Player) Haunter() (PlayerID, bool) {
	return p.haunter, p.haunter != NO_PLAYER
}

func (p *Player) IsHaunted() bool {
	return p.haunter != NO_PLAYER
}

func (p *Player) WonDuel() bool {
	return p.wonDuel
}

// HasWon 仅在游戏结束后有意义
func (p *Player) HasWon() bool {
	return p.hasWon
}

// LooksSuspicious 调查结果：被下药的玩家一定可疑，
// 声明了伪装角色的玩家按伪装角色判定
func (p *Player) LooksSuspicious() bool {
	if p.drugged {
		return true
	}

	if p.fakeRole != nil {
		return p.fakeRole.Suspicious
	}

	return p.role.Suspicious
}

func (p *Player) kill(date uint, time Time) {
	p.alive = false
	p.present = false
	p.dateOfDeath = date
	p.timeOfDeath = time
}

func (p *Player) leave() {
	p.present = false
}

func (p *Player) kick() {
	p.leave()
	p.kicked = true
}

func (p *Player) lynch(date uint) {
	p.kill(date, TIME_DAY)
	p.lynched = true
}

// refresh 在每个白天开始时对所有存活玩家调用
func (p *Player) refresh() {
	p.compulsory = p.compulsory[:0]
	p.lynchVote = NO_PLAYER
	p.healed = false
	p.drugged = false
}

func (p *Player) addCompulsoryAbility(ability rulebook.Ability) {
	p.compulsory = append(p.compulsory, ability)
}

// removeCompulsoryAbility 移除一个同名能力，返回是否确实移除
func (p *Player) removeCompulsoryAbility(ability rulebook.Ability) bool {
	idx := slices.Index(p.compulsory, ability)
	if idx < 0 {
		return false
	}

	p.compulsory = slices.Delete(p.compulsory, idx, idx+1)
	return true
}

func (p *Player) clearCompulsoryAbilities() {
	p.compulsory = p.compulsory[:0]
}

func (p *Player) setLynchVote(target PlayerID) {
	p.lynchVote = target
}

func (p *Player) clearLynchVote() {
	p.lynchVote = NO_PLAYER
}

func (p *Player) setFakeRole(role rulebook.Role) {
	p.fakeRole = &role
}

func (p *Player) clearFakeRole() {
	p.fakeRole = nil
}

func (p *Player) heal() {
	p.healed = true
}

func (p *Player) drug() {
	p.drugged = true
}

func (p *Player) setHaunter(ghost PlayerID) {
	p.haunter = ghost
}

func (p *Player) winDuel() {
	p.wonDuel = true
}

func (p *Player) setWon(won bool) {
	p.hasWon = won
}
