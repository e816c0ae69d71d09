package rulebook

import (
	"math/rand/v2"
)

type WildcardID string

const (
	WILDCARD_ANY           WildcardID = "any"
	WILDCARD_VILLAGE       WildcardID = "village"
	WILDCARD_MAFIA         WildcardID = "mafia"
	WILDCARD_FREELANCE     WildcardID = "freelance"
	WILDCARD_BASIC_VILLAGE WildcardID = "basic_village"
	WILDCARD_BASIC_MAFIA   WildcardID = "basic_mafia"
)

// Evaluator 在解析时为规则书中的每个角色给出一个非负权重
type Evaluator func(role Role) float64

// Wildcard 在游戏开始时被解析为一个具体角色，
// 解析方式二选一：固定权重表，或者对规则书中的角色逐个求值
type Wildcard struct {
	id    WildcardID
	alias string

	weights   map[RoleID]float64
	evaluator Evaluator
}

// NewWeightedWildcard 使用固定权重构造万能牌，
// 权重不能为负，且至少有一个严格为正
func NewWeightedWildcard(id WildcardID, alias string, weights map[RoleID]float64) (*Wildcard, error) {
	hasPositive := false

	copied := make(map[RoleID]float64, len(weights))
	for roleID, w := range weights {
		if !(w >= 0) {
			return nil, &WeightError{Wildcard: id, Role: roleID, Reason: WEIGHT_NEGATIVE}
		}

		if w > 0 {
			hasPositive = true
		}

		copied[roleID] = w
	}

	if !hasPositive {
		return nil, &WeightError{Wildcard: id, Reason: WEIGHT_ALL_ZERO}
	}

	return &Wildcard{
		id:      id,
		alias:   alias,
		weights: copied,
	}, nil
}

// NewEvaluatorWildcard 使用求值函数构造万能牌，权重的合法性在解析时检查
func NewEvaluatorWildcard(id WildcardID, alias string, evaluator Evaluator) *Wildcard {
	return &Wildcard{
		id:        id,
		alias:     alias,
		evaluator: evaluator,
	}
}

func (w *Wildcard) ID() WildcardID {
	return w.id
}

func (w *Wildcard) Alias() string {
	return w.alias
}

func (w *Wildcard) IsWeighted() bool {
	return w.evaluator == nil
}

type weightedRole struct {
	role   Role
	weight float64
}

// candidates 返回规则书中权重为正的角色
func (w *Wildcard) candidates(rb *Rulebook) ([]weightedRole, error) {
	result := make([]weightedRole, 0)

	for _, role := range rb.roles {
		var weight float64

		if w.evaluator != nil {
			weight = w.evaluator(role)
			if !(weight >= 0) {
				return nil, &WeightError{Wildcard: w.id, Role: role.ID, Reason: WEIGHT_NEGATIVE}
			}
		} else {
			weight = w.weights[role.ID]
		}

		if weight > 0 {
			result = append(result, weightedRole{role: role, weight: weight})
		}
	}

	if len(result) == 0 {
		return nil, &WeightError{Wildcard: w.id, Reason: WEIGHT_ALL_ZERO}
	}

	return result, nil
}

// PickRole 按权重从规则书中抽取一个角色
func (w *Wildcard) PickRole(rb *Rulebook, rng *rand.Rand) (Role, error) {
	candidates, err := w.candidates(rb)
	if err != nil {
		return Role{}, err
	}

	total := 0.0
	for _, c := range candidates {
		total += c.weight
	}

	x := rng.Float64() * total
	for _, c := range candidates {
		if x < c.weight {
			return c.role, nil
		}
		x -= c.weight
	}

	// 浮点误差兜底
	return candidates[len(candidates)-1].role, nil
}

// MatchesAlignment 判断万能牌是否永远不会解析为其他阵营的角色，
// 只用于校验万能牌定义
func (w *Wildcard) MatchesAlignment(alignment Alignment, rb *Rulebook) bool {
	for _, role := range rb.roles {
		var weight float64

		if w.evaluator != nil {
			weight = w.evaluator(role)
		} else {
			weight = w.weights[role.ID]
		}

		if weight != 0 && role.Alignment != alignment {
			return false
		}
	}

	return true
}
