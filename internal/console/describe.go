package console

import (
	"errors"
	"fmt"

	"mafia-moderator/internal/service"
	"mafia-moderator/internal/service/game"
	"mafia-moderator/internal/service/rulebook"
)

var reasonText = map[string]string{
	"GameEnded":          "游戏已经结束",
	"BadTiming":          "现在不能这样做",
	"NotNight":           "现在不是夜晚",
	"AlreadyNight":       "已经是夜晚",
	"LynchCanOccur":      "今天还没有进行处决",
	"VoterIsNotPresent":  "投票者不在场",
	"TargetIsNotPresent": "目标不在场",
	"VoterIsTarget":      "不能投票给自己",
	"CasterIsNotPresent": "发起者不在场",
	"CasterIsTarget":     "不能以自己为目标",
	"CasterHasNoDuel":    "发起者没有决斗能力",
	"BadProbability":     "双方决斗强度之和不为正",
	"AlreadyUsed":        "黑手党今晚已经行动过",
	"CasterIsNotInMafia": "发起者不是黑手党成员",
	"CasterLacksAbility": "发起者今晚没有待使用的该能力",
	"PlayerIsNotPresent": "玩家不在场",
	"PlayerIsNotFaker":   "玩家不能伪装身份",
	"AlreadyChosen":      "今晚已经选择过伪装角色",
}

func reason(r string) string {
	if text, ok := reasonText[r]; ok {
		return text
	}

	return r
}

// describe 把引擎、规则书和桌面服务的错误翻译成主持人能读懂的一句话，
// 玩家编号替换为名字
func (c *Console) describe(err error) string {
	var (
		notFound   *game.PlayerNotFoundError
		voteErr    *game.LynchVoteError
		lynchErr   *game.LynchError
		duelErr    *game.DuelError
		nightErr   *game.BeginNightError
		mafiaErr   *game.MafiaKillError
		abilityErr *game.AbilityError
		fakeErr    *game.FakeRoleError
		kickErr    *game.KickError

		editionErr   *rulebook.EditionError
		roleErr      *rulebook.RoleNotFoundError
		wildcardErr  *rulebook.WildcardNotFoundError
		duplicateErr *rulebook.DuplicateError
		weightErr    *rulebook.WeightError

		countErr *service.CardCountError
		nameErr  *service.PlayerNameError
	)

	switch {
	case errors.Is(err, service.ErrNoTable):
		return "还没有开始游戏，请先使用 new 命令"
	case errors.Is(err, game.ErrNoPlayers):
		return "至少需要一张角色牌"

	case errors.As(err, &notFound):
		return fmt.Sprintf("玩家 %s 不存在", c.name(notFound.ID))
	case errors.As(err, &voteErr):
		if voteErr.Target == game.NO_PLAYER {
			return fmt.Sprintf("%s 无法撤回投票：%s", c.name(voteErr.Voter), reason(string(voteErr.Reason)))
		}
		return fmt.Sprintf(
			"%s 无法投票给 %s：%s",
			c.name(voteErr.Voter), c.name(voteErr.Target), reason(string(voteErr.Reason)),
		)
	case errors.As(err, &lynchErr):
		return fmt.Sprintf("无法处决：%s", reason(string(lynchErr.Reason)))
	case errors.As(err, &duelErr):
		return fmt.Sprintf(
			"%s 无法与 %s 决斗：%s",
			c.name(duelErr.Caster), c.name(duelErr.Target), reason(string(duelErr.Reason)),
		)
	case errors.As(err, &nightErr):
		return fmt.Sprintf("无法进入夜晚：%s", reason(string(nightErr.Reason)))
	case errors.As(err, &mafiaErr):
		if mafiaErr.Caster == game.NO_PLAYER {
			return fmt.Sprintf("黑手党无法放弃击杀：%s", reason(string(mafiaErr.Reason)))
		}
		return fmt.Sprintf(
			"%s 无法代表黑手党击杀 %s：%s",
			c.name(mafiaErr.Caster), c.name(mafiaErr.Target), reason(string(mafiaErr.Reason)),
		)
	case errors.As(err, &abilityErr):
		verb := abilityVerb(abilityErr.Ability)
		if abilityErr.Target == game.NO_PLAYER {
			return fmt.Sprintf(
				"%s 无法放弃%s：%s",
				c.name(abilityErr.Caster), verb, reason(string(abilityErr.Reason)),
			)
		}
		return fmt.Sprintf(
			"%s 无法%s %s：%s",
			c.name(abilityErr.Caster), verb, c.name(abilityErr.Target), reason(string(abilityErr.Reason)),
		)
	case errors.As(err, &fakeErr):
		if fakeErr.Role == "" {
			return fmt.Sprintf("%s 无法选择伪装角色：%s", c.name(fakeErr.Player), reason(string(fakeErr.Reason)))
		}
		return fmt.Sprintf(
			"%s 无法伪装为 %s：%s",
			c.name(fakeErr.Player), fakeErr.Role, reason(string(fakeErr.Reason)),
		)
	case errors.As(err, &kickErr):
		return fmt.Sprintf("无法踢出 %s：%s", c.name(kickErr.Player), reason(string(kickErr.Reason)))

	case errors.As(err, &editionErr):
		return fmt.Sprintf("不支持规则书第 %d 版", editionErr.Edition)
	case errors.As(err, &roleErr):
		return fmt.Sprintf("未知的角色牌 %s，使用 roles 查看可用的别名", roleErr.Ref)
	case errors.As(err, &wildcardErr):
		return fmt.Sprintf("未知的万能牌 %s，使用 roles 查看可用的别名", wildcardErr.Ref)
	case errors.As(err, &duplicateErr), errors.As(err, &weightErr):
		return fmt.Sprintf("规则书配置有误：%v", err)

	case errors.As(err, &countErr):
		return fmt.Sprintf("有 %d 名玩家，却有 %d 张角色牌", countErr.Names, countErr.Cards)
	case errors.As(err, &nameErr):
		return nameErr.Error()
	}

	return err.Error()
}

func abilityVerb(ability rulebook.Ability) string {
	switch ability {
	case rulebook.ABILITY_KILL:
		return "击杀"
	case rulebook.ABILITY_HEAL:
		return "治疗"
	case rulebook.ABILITY_INVESTIGATE:
		return "调查"
	case rulebook.ABILITY_PEDDLE:
		return "下药"
	case rulebook.ABILITY_DUEL:
		return "决斗"
	default:
		return string(ability)
	}
}
