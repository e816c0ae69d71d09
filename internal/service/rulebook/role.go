package rulebook

// 阵营
type Alignment string

const (
	ALIGNMENT_VILLAGE   Alignment = "Village"
	ALIGNMENT_MAFIA     Alignment = "Mafia"
	ALIGNMENT_FREELANCE Alignment = "Freelance"
)

// 角色能力，ABILITY_NONE 表示该角色没有能力
type Ability string

const (
	ABILITY_NONE        Ability = ""
	ABILITY_KILL        Ability = "Kill"
	ABILITY_HEAL        Ability = "Heal"
	ABILITY_INVESTIGATE Ability = "Investigate"
	ABILITY_PEDDLE      Ability = "Peddle"
	ABILITY_DUEL        Ability = "Duel"
)

// IsNightAbility 判断能力是否在夜晚强制使用，决斗只能在白天发起
func (a Ability) IsNightAbility() bool {
	switch a {
	case ABILITY_KILL, ABILITY_HEAL, ABILITY_INVESTIGATE, ABILITY_PEDDLE:
		return true
	default:
		return false
	}
}

// 胜利条件，游戏结束后对每个玩家单独判定
type WinCondition string

const (
	WIN_SURVIVE         WinCondition = "Survive"
	WIN_VILLAGE_REMAINS WinCondition = "VillageRemains"
	WIN_MAFIA_REMAINS   WinCondition = "MafiaRemains"
	WIN_BE_LYNCHED      WinCondition = "BeLynched"
	WIN_DUEL            WinCondition = "WinDuel"
)

// 和平条件，所有在场玩家的和平条件都满足时游戏才能结束
type PeaceCondition string

const (
	PEACE_ALWAYS_PEACEFUL    PeaceCondition = "AlwaysPeaceful"
	PEACE_VILLAGE_ELIMINATED PeaceCondition = "VillageEliminated"
	PEACE_MAFIA_ELIMINATED   PeaceCondition = "MafiaEliminated"
	PEACE_LAST_SURVIVOR      PeaceCondition = "LastSurvivor"
)

type RoleID string

const (
	ROLE_PEASANT       RoleID = "peasant"
	ROLE_DOCTOR        RoleID = "doctor"
	ROLE_DETECTIVE     RoleID = "detective"
	ROLE_RACKETEER     RoleID = "racketeer"
	ROLE_GODFATHER     RoleID = "godfather"
	ROLE_DEALER        RoleID = "dealer"
	ROLE_ACTOR         RoleID = "actor"
	ROLE_SERIAL_KILLER RoleID = "serial_killer"
	ROLE_VILLAGE_IDIOT RoleID = "village_idiot"
	ROLE_MUSKETEER     RoleID = "musketeer"
	ROLE_COWARD        RoleID = "coward"
)

// Role 是规则书中的角色定义，构造完成后不再修改，
// 以值的形式对外分发
type Role struct {
	ID             RoleID
	Alias          string
	Alignment      Alignment
	Ability        Ability
	WinCondition   WinCondition
	PeaceCondition PeaceCondition

	// 被调查时显示为可疑
	Suspicious bool
	// 被处决后会在下一个夜晚作祟
	Troll bool
	// 每个夜晚都必须伪装成另一个角色
	RoleFaker bool

	DuelStrength float64
}

func (r Role) HasAbility() bool {
	return r.Ability != ABILITY_NONE
}
