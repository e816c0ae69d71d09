package rulebook

import (
	"fmt"
)

// 规则书版本，存档可以引用比最新版本更早的规则
type Edition int

const (
	EDITION_1      Edition = 1
	LATEST_EDITION         = EDITION_1
)

type refKind int

const (
	refByID refKind = iota
	refByAlias
)

// RoleRef 通过 ID 或别名引用一个角色
type RoleRef struct {
	kind  refKind
	id    RoleID
	alias string
}

func RoleByID(id RoleID) RoleRef {
	return RoleRef{kind: refByID, id: id}
}

func RoleByAlias(alias string) RoleRef {
	return RoleRef{kind: refByAlias, alias: alias}
}

// ID 按别名引用时为空
func (r RoleRef) ID() RoleID {
	return r.id
}

func (r RoleRef) String() string {
	if r.kind == refByAlias {
		return fmt.Sprintf("alias %q", r.alias)
	}

	return fmt.Sprintf("id %q", string(r.id))
}

// WildcardRef 通过 ID 或别名引用一张万能牌
type WildcardRef struct {
	kind  refKind
	id    WildcardID
	alias string
}

func WildcardByID(id WildcardID) WildcardRef {
	return WildcardRef{kind: refByID, id: id}
}

func WildcardByAlias(alias string) WildcardRef {
	return WildcardRef{kind: refByAlias, alias: alias}
}

func (r WildcardRef) String() string {
	if r.kind == refByAlias {
		return fmt.Sprintf("alias %q", r.alias)
	}

	return fmt.Sprintf("id %q", string(r.id))
}

// Rulebook 持有一个版本的全部角色与万能牌，
// 构造完成后在游戏期间只读
type Rulebook struct {
	edition Edition

	roles       []Role
	roleIndex   map[RoleID]int
	roleAliases map[string]RoleID

	wildcards       []*Wildcard
	wildcardIndex   map[WildcardID]int
	wildcardAliases map[string]WildcardID
}

func newEmptyRulebook(edition Edition) *Rulebook {
	return &Rulebook{
		edition:         edition,
		roles:           make([]Role, 0),
		roleIndex:       make(map[RoleID]int),
		roleAliases:     make(map[string]RoleID),
		wildcards:       make([]*Wildcard, 0),
		wildcardIndex:   make(map[WildcardID]int),
		wildcardAliases: make(map[string]WildcardID),
	}
}

// New 按版本构造规则书，未知版本返回 EditionError
func New(edition Edition) (*Rulebook, error) {
	populate, ok := editions[edition]
	if !ok {
		return nil, &EditionError{Edition: edition}
	}

	rb := newEmptyRulebook(edition)
	if err := populate(rb); err != nil {
		return nil, fmt.Errorf("构建规则书版本 %d 失败: %w", edition, err)
	}

	return rb, nil
}

func (rb *Rulebook) Edition() Edition {
	return rb.edition
}

func (rb *Rulebook) aliasTaken(alias string) bool {
	if _, ok := rb.roleAliases[alias]; ok {
		return true
	}

	_, ok := rb.wildcardAliases[alias]
	return ok
}

// AddRole 向规则书添加角色，ID 或别名重复时失败
func (rb *Rulebook) AddRole(role Role) error {
	if _, ok := rb.roleIndex[role.ID]; ok {
		return &DuplicateError{Kind: DUPLICATE_ROLE_ID, Key: string(role.ID)}
	}

	if role.Alias != "" && rb.aliasTaken(role.Alias) {
		return &DuplicateError{Kind: DUPLICATE_ALIAS, Key: role.Alias}
	}

	rb.roleIndex[role.ID] = len(rb.roles)
	rb.roles = append(rb.roles, role)

	if role.Alias != "" {
		rb.roleAliases[role.Alias] = role.ID
	}

	return nil
}

// AddWildcard 向规则书添加万能牌，ID 或别名重复时失败
func (rb *Rulebook) AddWildcard(wildcard *Wildcard) error {
	if _, ok := rb.wildcardIndex[wildcard.id]; ok {
		return &DuplicateError{Kind: DUPLICATE_WILDCARD_ID, Key: string(wildcard.id)}
	}

	if wildcard.alias != "" && rb.aliasTaken(wildcard.alias) {
		return &DuplicateError{Kind: DUPLICATE_ALIAS, Key: wildcard.alias}
	}

	rb.wildcardIndex[wildcard.id] = len(rb.wildcards)
	rb.wildcards = append(rb.wildcards, wildcard)

	if wildcard.alias != "" {
		rb.wildcardAliases[wildcard.alias] = wildcard.id
	}

	return nil
}

// Roles 返回按添加顺序排列的角色副本
func (rb *Rulebook) Roles() []Role {
	roles := make([]Role, len(rb.roles))
	copy(roles, rb.roles)
	return roles
}

func (rb *Rulebook) Wildcards() []*Wildcard {
	wildcards := make([]*Wildcard, len(rb.wildcards))
	copy(wildcards, rb.wildcards)
	return wildcards
}

func (rb *Rulebook) GetRole(ref RoleRef) (Role, error) {
	id := ref.id

	if ref.kind == refByAlias {
		aliased, ok := rb.roleAliases[ref.alias]
		if !ok {
			return Role{}, &RoleNotFoundError{Ref: ref}
		}
		id = aliased
	}

	idx, ok := rb.roleIndex[id]
	if !ok {
		return Role{}, &RoleNotFoundError{Ref: ref}
	}

	return rb.roles[idx], nil
}

func (rb *Rulebook) GetWildcard(ref WildcardRef) (*Wildcard, error) {
	id := ref.id

	if ref.kind == refByAlias {
		aliased, ok := rb.wildcardAliases[ref.alias]
		if !ok {
			return nil, &WildcardNotFoundError{Ref: ref}
		}
		id = aliased
	}

	idx, ok := rb.wildcardIndex[id]
	if !ok {
		return nil, &WildcardNotFoundError{Ref: ref}
	}

	return rb.wildcards[idx], nil
}

func (rb *Rulebook) ContainsRole(ref RoleRef) bool {
	_, err := rb.GetRole(ref)
	return err == nil
}

func (rb *Rulebook) ContainsWildcard(ref WildcardRef) bool {
	_, err := rb.GetWildcard(ref)
	return err == nil
}
