package rulebook

import "fmt"

// EditionError 表示请求了未知的规则书版本
type EditionError struct {
	Edition Edition
}

func (e *EditionError) Error() string {
	return fmt.Sprintf("未知的规则书版本：%d", e.Edition)
}

type RoleNotFoundError struct {
	Ref RoleRef
}

func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("找不到角色：%s", e.Ref)
}

type WildcardNotFoundError struct {
	Ref WildcardRef
}

func (e *WildcardNotFoundError) Error() string {
	return fmt.Sprintf("找不到万能牌：%s", e.Ref)
}

// 向规则书添加条目时的重复类型
const (
	DUPLICATE_ROLE_ID     = "RoleID"
	DUPLICATE_WILDCARD_ID = "WildcardID"
	DUPLICATE_ALIAS       = "Alias"
)

type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("规则书中已存在 %s：%s", e.Kind, e.Key)
}

// 权重错误的原因
type WeightReason string

const (
	WEIGHT_NEGATIVE WeightReason = "Negative"
	WEIGHT_ALL_ZERO WeightReason = "AllZero"
)

// WeightError 在万能牌构造或解析时权重不合法时返回
type WeightError struct {
	Wildcard WildcardID
	// 仅在 Reason 为 WEIGHT_NEGATIVE 时有值
	Role   RoleID
	Reason WeightReason
}

func (e *WeightError) Error() string {
	switch e.Reason {
	case WEIGHT_NEGATIVE:
		return fmt.Sprintf("万能牌 %s 给角色 %s 分配了负权重", e.Wildcard, e.Role)
	case WEIGHT_ALL_ZERO:
		return fmt.Sprintf("万能牌 %s 的所有权重均为零", e.Wildcard)
	default:
		return fmt.Sprintf("万能牌 %s 的权重不合法", e.Wildcard)
	}
}
