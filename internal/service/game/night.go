package game

import (
	"mafia-moderator/internal/service/rulebook"

	"go.uber.org/zap"
)

// BeginNight 从白天进入夜晚。除第一个夜晚外，所有在场且拥有夜间能力的玩家
// 都会获得一个必须使用或放弃的强制能力。只要还有黑手党在场，
// 本夜就开放一次黑手党击杀
func (g *Game) BeginNight() error {
	switch {
	case g.hasEnded:
		return &BeginNightError{Reason: BEGIN_NIGHT_GAME_ENDED}
	case g.time == TIME_NIGHT:
		return &BeginNightError{Reason: BEGIN_NIGHT_ALREADY_NIGHT}
	case g.lynchCanOccur:
		return &BeginNightError{Reason: BEGIN_NIGHT_LYNCH_CAN_OCCUR}
	}

	g.time = TIME_NIGHT

	firstNight := g.date == 0

	for _, p := range g.players {
		if !p.present {
			continue
		}

		if p.role.RoleFaker {
			p.clearFakeRole()
		}

		if !firstNight && p.role.Ability.IsNightAbility() {
			p.addCompulsoryAbility(p.role.Ability)
		}
	}

	g.mafiaCanUseKill = g.NumPresentMafia() > 0
	g.mafiaKill = nil

	g.log.Info(
		"进入夜晚",
		zap.Uint("date", g.date),
		zap.Bool("mafia_can_use_kill", g.mafiaCanUseKill),
	)

	g.tryToEndNight()

	return nil
}

// CastMafiaKill 使用本夜唯一一次黑手党击杀
func (g *Game) CastMafiaKill(casterID, targetID PlayerID) error {
	caster, target, err := g.lookupPair(casterID, targetID)
	if err != nil {
		return err
	}

	fail := func(reason MafiaKillReason) error {
		return &MafiaKillError{Caster: casterID, Target: targetID, Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(MAFIA_KILL_GAME_ENDED)
	case g.time != TIME_NIGHT:
		return fail(MAFIA_KILL_NOT_NIGHT)
	case !g.mafiaCanUseKill:
		return fail(MAFIA_KILL_ALREADY_USED)
	case !caster.present:
		return fail(MAFIA_KILL_CASTER_IS_NOT_PRESENT)
	case caster.role.Alignment != rulebook.ALIGNMENT_MAFIA:
		return fail(MAFIA_KILL_CASTER_IS_NOT_IN_MAFIA)
	case !target.present:
		return fail(MAFIA_KILL_TARGET_IS_NOT_PRESENT)
	case casterID == targetID:
		return fail(MAFIA_KILL_CASTER_IS_TARGET)
	}

	g.mafiaKill = &nightAction{caster: casterID, target: targetID}
	g.mafiaCanUseKill = false

	g.log.Debug(
		"黑手党选择了击杀目标",
		zap.Int("caster", int(casterID)),
		zap.Int("target", int(targetID)),
	)

	g.tryToEndNight()

	return nil
}

// SkipMafiaKill 放弃本夜的黑手党击杀
func (g *Game) SkipMafiaKill() error {
	fail := func(reason MafiaKillReason) error {
		return &MafiaKillError{Caster: NO_PLAYER, Target: NO_PLAYER, Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(MAFIA_KILL_GAME_ENDED)
	case g.time != TIME_NIGHT:
		return fail(MAFIA_KILL_NOT_NIGHT)
	case !g.mafiaCanUseKill:
		return fail(MAFIA_KILL_ALREADY_USED)
	}

	g.mafiaCanUseKill = false

	g.log.Debug("黑手党放弃了击杀")

	g.tryToEndNight()

	return nil
}

func (g *Game) CastKill(casterID, targetID PlayerID) error {
	return g.castAbility(rulebook.ABILITY_KILL, casterID, targetID)
}

func (g *Game) SkipKill(casterID PlayerID) error {
	return g.skipAbility(rulebook.ABILITY_KILL, casterID)
}

func (g *Game) CastHeal(casterID, targetID PlayerID) error {
	return g.castAbility(rulebook.ABILITY_HEAL, casterID, targetID)
}

func (g *Game) SkipHeal(casterID PlayerID) error {
	return g.skipAbility(rulebook.ABILITY_HEAL, casterID)
}

func (g *Game) CastInvestigate(casterID, targetID PlayerID) error {
	return g.castAbility(rulebook.ABILITY_INVESTIGATE, casterID, targetID)
}

func (g *Game) SkipInvestigate(casterID PlayerID) error {
	return g.skipAbility(rulebook.ABILITY_INVESTIGATE, casterID)
}

func (g *Game) CastPeddle(casterID, targetID PlayerID) error {
	return g.castAbility(rulebook.ABILITY_PEDDLE, casterID, targetID)
}

func (g *Game) SkipPeddle(casterID PlayerID) error {
	return g.skipAbility(rulebook.ABILITY_PEDDLE, casterID)
}

// castAbility 校验施放者持有对应的强制能力后把行动加入队列，
// 效果在夜晚结算时统一生效
func (g *Game) castAbility(ability rulebook.Ability, casterID, targetID PlayerID) error {
	caster, target, err := g.lookupPair(casterID, targetID)
	if err != nil {
		return err
	}

	fail := func(reason AbilityReason) error {
		return &AbilityError{Ability: ability, Caster: casterID, Target: targetID, Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(ABILITY_GAME_ENDED)
	case g.time != TIME_NIGHT:
		return fail(ABILITY_NOT_NIGHT)
	case !caster.present:
		return fail(ABILITY_CASTER_IS_NOT_PRESENT)
	case !target.present:
		return fail(ABILITY_TARGET_IS_NOT_PRESENT)
	case casterID == targetID:
		return fail(ABILITY_CASTER_IS_TARGET)
	case !caster.HasCompulsoryAbility(ability):
		return fail(ABILITY_CASTER_LACKS_ABILITY)
	}

	action := nightAction{caster: casterID, target: targetID}

	switch ability {
	case rulebook.ABILITY_KILL:
		g.pendingKills = append(g.pendingKills, action)
	case rulebook.ABILITY_HEAL:
		g.pendingHeals = append(g.pendingHeals, action)
	case rulebook.ABILITY_INVESTIGATE:
		g.pendingInvestigations = append(g.pendingInvestigations, action)
	case rulebook.ABILITY_PEDDLE:
		g.pendingPeddles = append(g.pendingPeddles, action)
	}

	caster.removeCompulsoryAbility(ability)

	g.log.Debug(
		"夜间能力已排队",
		zap.String("ability", string(ability)),
		zap.Int("caster", int(casterID)),
		zap.Int("target", int(targetID)),
	)

	g.tryToEndNight()

	return nil
}

func (g *Game) skipAbility(ability rulebook.Ability, casterID PlayerID) error {
	caster, err := g.Player(casterID)
	if err != nil {
		return err
	}

	fail := func(reason AbilityReason) error {
		return &AbilityError{Ability: ability, Caster: casterID, Target: NO_PLAYER, Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(ABILITY_GAME_ENDED)
	case g.time != TIME_NIGHT:
		return fail(ABILITY_NOT_NIGHT)
	case !caster.present:
		return fail(ABILITY_CASTER_IS_NOT_PRESENT)
	case !caster.HasCompulsoryAbility(ability):
		return fail(ABILITY_CASTER_LACKS_ABILITY)
	}

	caster.removeCompulsoryAbility(ability)

	g.log.Debug(
		"放弃夜间能力",
		zap.String("ability", string(ability)),
		zap.Int("caster", int(casterID)),
	)

	g.tryToEndNight()

	return nil
}

// ChooseFakeRole 伪装者每个夜晚都必须声明一次伪装角色
func (g *Game) ChooseFakeRole(playerID PlayerID, ref rulebook.RoleRef) error {
	player, err := g.Player(playerID)
	if err != nil {
		return err
	}

	// 角色在校验通过后才解析，按别名引用时 Role 为空
	fail := func(reason FakeRoleReason) error {
		return &FakeRoleError{Player: playerID, Role: ref.ID(), Reason: reason}
	}

	switch {
	case g.hasEnded:
		return fail(FAKE_ROLE_GAME_ENDED)
	case g.time != TIME_NIGHT:
		return fail(FAKE_ROLE_NOT_NIGHT)
	case !player.present:
		return fail(FAKE_ROLE_PLAYER_IS_NOT_PRESENT)
	case !player.role.RoleFaker:
		return fail(FAKE_ROLE_PLAYER_IS_NOT_FAKER)
	case player.HasFakeRole():
		return fail(FAKE_ROLE_ALREADY_CHOSEN)
	}

	fakeRole, err := g.rulebook.GetRole(ref)
	if err != nil {
		return err
	}

	player.setFakeRole(fakeRole)

	g.log.Debug(
		"伪装者选择了伪装角色",
		zap.Int("player", int(playerID)),
		zap.String("fake_role", string(fakeRole.ID)),
	)

	g.tryToEndNight()

	return nil
}

// nightIsComplete 所有伪装者都已声明、黑手党击杀已使用或放弃、
// 且没有玩家剩余强制能力时，夜晚才能结束
func (g *Game) nightIsComplete() bool {
	if g.time != TIME_NIGHT || g.hasEnded {
		return false
	}

	if g.mafiaCanUseKill {
		return false
	}

	for _, p := range g.players {
		if p.present && p.role.RoleFaker && !p.HasFakeRole() {
			return false
		}

		if p.HasAnyCompulsoryAbility() {
			return false
		}
	}

	return true
}

// tryToEndNight 条件满足时结算夜晚，返回是否已结算
func (g *Game) tryToEndNight() bool {
	if !g.nightIsComplete() {
		return false
	}

	g.resolveNight()

	return true
}

// resolveNight 按固定顺序结算：治疗、下药、黑手党击杀、个人击杀、调查、作祟
func (g *Game) resolveNight() {
	for _, heal := range g.pendingHeals {
		g.players[heal.target].heal()
	}

	for _, peddle := range g.pendingPeddles {
		g.players[peddle.target].drug()
	}

	if g.mafiaKill != nil {
		g.applyNightKill(*g.mafiaKill, "黑手党击杀")
	}

	for _, kill := range g.pendingKills {
		g.applyNightKill(kill, "个人击杀")
	}

	// 在本夜更早阶段死亡的调查者拿不到调查结果
	for _, inv := range g.pendingInvestigations {
		if !g.players[inv.caster].present {
			g.log.Debug("调查者已离场，丢弃调查结果", zap.Int("caster", int(inv.caster)))
			continue
		}

		g.investigations = append(g.investigations, Investigation{
			Caster:     inv.caster,
			Target:     inv.target,
			Date:       g.date,
			Suspicious: g.players[inv.target].LooksSuspicious(),
		})
	}

	for _, ghost := range g.pendingHaunters {
		g.haunt(ghost)
	}

	g.mafiaKill = nil
	g.pendingKills = nil
	g.pendingHeals = nil
	g.pendingInvestigations = nil
	g.pendingPeddles = nil
	g.pendingHaunters = nil

	if g.TryToEnd() {
		return
	}

	g.date++
	g.time = TIME_DAY
	g.lynchCanOccur = true

	for _, p := range g.players {
		if p.alive {
			p.refresh()
		}
	}

	g.log.Info("进入白天", zap.Uint("date", g.date))
}

func (g *Game) applyNightKill(kill nightAction, source string) {
	target := g.players[kill.target]

	if target.healed {
		g.log.Info(
			"击杀被治疗抵消",
			zap.String("source", source),
			zap.Int("target", int(kill.target)),
		)
		return
	}

	if !target.present {
		return
	}

	target.kill(g.date, TIME_NIGHT)

	g.log.Info(
		"玩家在夜晚被杀",
		zap.String("source", source),
		zap.Int("caster", int(kill.caster)),
		zap.Int("target", int(kill.target)),
	)
}

// haunt 幽灵随机杀死一名投票处决过自己且仍在场的玩家
func (g *Game) haunt(ghost PlayerID) {
	voters := make([]*Player, 0)

	for _, p := range g.players {
		if !p.present {
			continue
		}

		if target, ok := p.LynchVote(); ok && target == ghost {
			voters = append(voters, p)
		}
	}

	if len(voters) == 0 {
		return
	}

	victim := voters[g.rng.IntN(len(voters))]
	victim.kill(g.date, TIME_NIGHT)
	victim.setHaunter(ghost)

	g.log.Info(
		"幽灵作祟",
		zap.Int("ghost", int(ghost)),
		zap.Int("victim", int(victim.id)),
	)
}
