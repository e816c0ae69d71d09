package game

import (
	"errors"
	"fmt"

	"mafia-moderator/internal/service/rulebook"
)

// ErrNoPlayers 构造游戏时没有任何角色牌
var ErrNoPlayers = errors.New("无法开始游戏：没有任何角色牌")

type PlayerNotFoundError struct {
	ID PlayerID
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("玩家 %d 不存在", e.ID)
}

// 投票失败原因
type LynchVoteReason string

const (
	LYNCH_VOTE_GAME_ENDED            LynchVoteReason = "GameEnded"
	LYNCH_VOTE_BAD_TIMING            LynchVoteReason = "BadTiming"
	LYNCH_VOTE_VOTER_IS_NOT_PRESENT  LynchVoteReason = "VoterIsNotPresent"
	LYNCH_VOTE_TARGET_IS_NOT_PRESENT LynchVoteReason = "TargetIsNotPresent"
	LYNCH_VOTE_VOTER_IS_TARGET       LynchVoteReason = "VoterIsTarget"
)

// LynchVoteError 清除投票时 Target 为 NO_PLAYER
type LynchVoteError struct {
	Voter  PlayerID
	Target PlayerID
	Reason LynchVoteReason
}

func (e *LynchVoteError) Error() string {
	return fmt.Sprintf("玩家 %d 投票失败：%s", e.Voter, e.Reason)
}

type LynchReason string

const (
	LYNCH_GAME_ENDED LynchReason = "GameEnded"
	LYNCH_BAD_TIMING LynchReason = "BadTiming"
)

type LynchError struct {
	Reason LynchReason
}

func (e *LynchError) Error() string {
	return fmt.Sprintf("无法处决：%s", e.Reason)
}

type DuelReason string

const (
	DUEL_GAME_ENDED            DuelReason = "GameEnded"
	DUEL_BAD_TIMING            DuelReason = "BadTiming"
	DUEL_CASTER_IS_NOT_PRESENT DuelReason = "CasterIsNotPresent"
	DUEL_TARGET_IS_NOT_PRESENT DuelReason = "TargetIsNotPresent"
	DUEL_CASTER_IS_TARGET      DuelReason = "CasterIsTarget"
	DUEL_CASTER_HAS_NO_DUEL    DuelReason = "CasterHasNoDuel"
	DUEL_BAD_PROBABILITY       DuelReason = "BadProbability"
)

type DuelError struct {
	Caster PlayerID
	Target PlayerID
	Reason DuelReason
}

func (e *DuelError) Error() string {
	return fmt.Sprintf("玩家 %d 向玩家 %d 发起决斗失败：%s", e.Caster, e.Target, e.Reason)
}

type BeginNightReason string

const (
	BEGIN_NIGHT_GAME_ENDED      BeginNightReason = "GameEnded"
	BEGIN_NIGHT_ALREADY_NIGHT   BeginNightReason = "AlreadyNight"
	BEGIN_NIGHT_LYNCH_CAN_OCCUR BeginNightReason = "LynchCanOccur"
)

type BeginNightError struct {
	Reason BeginNightReason
}

func (e *BeginNightError) Error() string {
	return fmt.Sprintf("无法进入夜晚：%s", e.Reason)
}

type MafiaKillReason string

const (
	MAFIA_KILL_GAME_ENDED             MafiaKillReason = "GameEnded"
	MAFIA_KILL_NOT_NIGHT              MafiaKillReason = "NotNight"
	MAFIA_KILL_ALREADY_USED           MafiaKillReason = "AlreadyUsed"
	MAFIA_KILL_CASTER_IS_NOT_PRESENT  MafiaKillReason = "CasterIsNotPresent"
	MAFIA_KILL_CASTER_IS_NOT_IN_MAFIA MafiaKillReason = "CasterIsNotInMafia"
	MAFIA_KILL_TARGET_IS_NOT_PRESENT  MafiaKillReason = "TargetIsNotPresent"
	MAFIA_KILL_CASTER_IS_TARGET       MafiaKillReason = "CasterIsTarget"
)

// MafiaKillError 放弃击杀时 Caster 和 Target 均为 NO_PLAYER
type MafiaKillError struct {
	Caster PlayerID
	Target PlayerID
	Reason MafiaKillReason
}

func (e *MafiaKillError) Error() string {
	return fmt.Sprintf("黑手党击杀失败：%s", e.Reason)
}

type AbilityReason string

const (
	ABILITY_GAME_ENDED            AbilityReason = "GameEnded"
	ABILITY_NOT_NIGHT             AbilityReason = "NotNight"
	ABILITY_CASTER_IS_NOT_PRESENT AbilityReason = "CasterIsNotPresent"
	ABILITY_TARGET_IS_NOT_PRESENT AbilityReason = "TargetIsNotPresent"
	ABILITY_CASTER_IS_TARGET      AbilityReason = "CasterIsTarget"
	ABILITY_CASTER_LACKS_ABILITY  AbilityReason = "CasterLacksAbility"
)

// AbilityError 覆盖击杀、治疗、调查、下药及其放弃操作，
// 放弃操作的 Target 为 NO_PLAYER
type AbilityError struct {
	Ability rulebook.Ability
	Caster  PlayerID
	Target  PlayerID
	Reason  AbilityReason
}

func (e *AbilityError) Error() string {
	return fmt.Sprintf("玩家 %d 使用能力 %s 失败：%s", e.Caster, e.Ability, e.Reason)
}

type FakeRoleReason string

const (
	FAKE_ROLE_GAME_ENDED            FakeRoleReason = "GameEnded"
	FAKE_ROLE_NOT_NIGHT             FakeRoleReason = "NotNight"
	FAKE_ROLE_PLAYER_IS_NOT_PRESENT FakeRoleReason = "PlayerIsNotPresent"
	FAKE_ROLE_PLAYER_IS_NOT_FAKER   FakeRoleReason = "PlayerIsNotFaker"
	FAKE_ROLE_ALREADY_CHOSEN        FakeRoleReason = "AlreadyChosen"
)

type FakeRoleError struct {
	Player PlayerID
	Role   rulebook.RoleID
	Reason FakeRoleReason
}

func (e *FakeRoleError) Error() string {
	return fmt.Sprintf("玩家 %d 选择伪装角色 %s 失败：%s", e.Player, e.Role, e.Reason)
}

type KickReason string

const (
	KICK_GAME_ENDED            KickReason = "GameEnded"
	KICK_PLAYER_IS_NOT_PRESENT KickReason = "PlayerIsNotPresent"
)

type KickError struct {
	Player PlayerID
	Reason KickReason
}

func (e *KickError) Error() string {
	return fmt.Sprintf("踢出玩家 %d 失败：%s", e.Player, e.Reason)
}
