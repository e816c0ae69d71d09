package game

import (
	"mafia-moderator/internal/service/rulebook"

	"go.uber.org/zap"
)

// CastLynchVote 记录投票者的处决票，重复投票会覆盖之前的目标
func (g *Game) CastLynchVote(voterID, targetID PlayerID) error {
	voter, target, err := g.lookupPair(voterID, targetID)
	if err != nil {
		return err
	}

	fail := func(reason LynchVoteReason) error {
		return &LynchVoteError{Voter: voterID, Target: targetID, Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(LYNCH_VOTE_GAME_ENDED)
	case !g.lynchCanOccur:
		return fail(LYNCH_VOTE_BAD_TIMING)
	case !voter.present:
		return fail(LYNCH_VOTE_VOTER_IS_NOT_PRESENT)
	case !target.present:
		return fail(LYNCH_VOTE_TARGET_IS_NOT_PRESENT)
	case voterID == targetID:
		return fail(LYNCH_VOTE_VOTER_IS_TARGET)
	}

	voter.setLynchVote(targetID)

	g.log.Debug(
		"记录处决投票",
		zap.Int("voter", int(voterID)),
		zap.Int("target", int(targetID)),
	)

	return nil
}

func (g *Game) ClearLynchVote(voterID PlayerID) error {
	voter, err := g.Player(voterID)
	if err != nil {
		return err
	}

	fail := func(reason LynchVoteReason) error {
		return &LynchVoteError{Voter: voterID, Target: NO_PLAYER, Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(LYNCH_VOTE_GAME_ENDED)
	case !g.lynchCanOccur:
		return fail(LYNCH_VOTE_BAD_TIMING)
	case !voter.present:
		return fail(LYNCH_VOTE_VOTER_IS_NOT_PRESENT)
	}

	voter.clearLynchVote()

	g.log.Debug("清除处决投票", zap.Int("voter", int(voterID)))

	return nil
}

// LynchVotes 统计在场投票者投给每名玩家的票数
func (g *Game) LynchVotes() map[PlayerID]int {
	tally := make(map[PlayerID]int)

	for _, p := range g.players {
		if !p.present {
			continue
		}

		if target, ok := p.LynchVote(); ok {
			tally[target]++
		}
	}

	return tally
}

// NextLynchVictim 返回获得严格多数票的玩家：票数的两倍大于总票数。
// 相对多数、平票或没有人投票时不产生处决对象
func (g *Game) NextLynchVictim() (PlayerID, bool) {
	tally := g.LynchVotes()

	total := 0
	for _, count := range tally {
		total += count
	}

	for target, count := range tally {
		if count*2 > total {
			if !g.players[target].present {
				return NO_PLAYER, false
			}

			return target, true
		}
	}

	return NO_PLAYER, false
}

// ProcessLynchVotes 处决获得多数票的玩家（如果有），并结束今天的处决环节。
// 被处决的捣蛋鬼会在下一个夜晚作祟
func (g *Game) ProcessLynchVotes() (PlayerID, bool, error) {
	if g.hasEnded {
		return NO_PLAYER, false, &LynchError{Reason: LYNCH_GAME_ENDED}
	}

	if !g.lynchCanOccur {
		return NO_PLAYER, false, &LynchError{Reason: LYNCH_BAD_TIMING}
	}

	victimID, ok := g.NextLynchVictim()
	if ok {
		victim := g.players[victimID]
		victim.lynch(g.date)

		if victim.role.Troll {
			g.pendingHaunters = append(g.pendingHaunters, victimID)
		}

		g.log.Info(
			"玩家被处决",
			zap.Int("victim", int(victimID)),
			zap.String("role", string(victim.role.ID)),
			zap.Uint("date", g.date),
		)
	} else {
		g.log.Info("今日无人被处决", zap.Uint("date", g.date))
	}

	g.lynchCanOccur = false

	g.TryToEnd()

	return victimID, ok, nil
}

// DuelOutcome 决斗结果
type DuelOutcome struct {
	Winner PlayerID
	Loser  PlayerID
}

// StageDuel 在白天发起决斗，发起者获胜的概率为
// 双方决斗强度中发起者所占的比例。败者当场死亡，
// 以赢得决斗为胜利条件的胜者立即离场
func (g *Game) StageDuel(casterID, targetID PlayerID) (DuelOutcome, error) {
	caster, target, err := g.lookupPair(casterID, targetID)
	if err != nil {
		return DuelOutcome{}, err
	}

	fail := func(reason DuelReason) (DuelOutcome, error) {
		return DuelOutcome{}, &DuelError{Caster: casterID, Target: targetID, Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(DUEL_GAME_ENDED)
	case g.time != TIME_DAY:
		return fail(DUEL_BAD_TIMING)
	case !caster.present:
		return fail(DUEL_CASTER_IS_NOT_PRESENT)
	case !target.present:
		return fail(DUEL_TARGET_IS_NOT_PRESENT)
	case casterID == targetID:
		return fail(DUEL_CASTER_IS_TARGET)
	case caster.role.Ability != rulebook.ABILITY_DUEL:
		return fail(DUEL_CASTER_HAS_NO_DUEL)
	}

	strengthSum := caster.role.DuelStrength + target.role.DuelStrength
	if !(strengthSum > 0) {
		return fail(DUEL_BAD_PROBABILITY)
	}

	p := caster.role.DuelStrength / strengthSum

	winner, loser := target, caster
	if g.rng.Float64() < p {
		winner, loser = caster, target
	}

	winner.winDuel()
	if winner.role.WinCondition == rulebook.WIN_DUEL {
		winner.leave()
	}

	loser.kill(g.date, g.time)

	g.log.Info(
		"决斗结束",
		zap.Int("winner", int(winner.id)),
		zap.Int("loser", int(loser.id)),
		zap.Float64("caster_win_probability", p),
	)

	g.TryToEnd()

	return DuelOutcome{Winner: winner.id, Loser: loser.id}, nil
}

// KickPlayer 将玩家移出游戏，被踢出的玩家在结算时一定失败
func (g *Game) KickPlayer(id PlayerID) error {
	player, err := g.Player(id)
	if err != nil {
		return err
	}

	if g.hasEnded {
		return &KickError{Player: id, Reason: KICK_GAME_ENDED}
	}

	if !player.present {
		return &KickError{Player: id, Reason: KICK_PLAYER_IS_NOT_PRESENT}
	}

	player.kick()
	player.clearCompulsoryAbilities()

	if g.time == TIME_NIGHT && g.mafiaCanUseKill && g.NumPresentMafia() == 0 {
		g.mafiaCanUseKill = false
	}

	g.log.Info(
		"玩家被踢出",
		zap.Int("player", int(id)),
		zap.String("time", string(g.time)),
	)

	if g.TryToEnd() {
		return nil
	}

	g.tryToEndNight()

	return nil
}
