package rulebook

var editions = map[Edition]func(rb *Rulebook) error{
	EDITION_1: populateEdition1,
}

func edition1Roles() []Role {
	village := func(id RoleID, alias string, ability Ability, duel float64) Role {
		return Role{
			ID:             id,
			Alias:          alias,
			Alignment:      ALIGNMENT_VILLAGE,
			Ability:        ability,
			WinCondition:   WIN_VILLAGE_REMAINS,
			PeaceCondition: PEACE_MAFIA_ELIMINATED,
			DuelStrength:   duel,
		}
	}

	mafia := func(id RoleID, alias string, ability Ability, suspicious bool, duel float64) Role {
		return Role{
			ID:             id,
			Alias:          alias,
			Alignment:      ALIGNMENT_MAFIA,
			Ability:        ability,
			WinCondition:   WIN_MAFIA_REMAINS,
			PeaceCondition: PEACE_VILLAGE_ELIMINATED,
			Suspicious:     suspicious,
			DuelStrength:   duel,
		}
	}

	actor := mafia(ROLE_ACTOR, "act", ABILITY_NONE, true, 1)
	actor.RoleFaker = true

	return []Role{
		village(ROLE_PEASANT, "pea", ABILITY_NONE, 2),
		village(ROLE_DOCTOR, "doc", ABILITY_HEAL, 1),
		village(ROLE_DETECTIVE, "det", ABILITY_INVESTIGATE, 2),

		mafia(ROLE_RACKETEER, "rac", ABILITY_NONE, true, 2),
		mafia(ROLE_GODFATHER, "god", ABILITY_NONE, false, 3),
		mafia(ROLE_DEALER, "dea", ABILITY_PEDDLE, true, 1),
		actor,

		{
			ID:             ROLE_SERIAL_KILLER,
			Alias:          "sk",
			Alignment:      ALIGNMENT_FREELANCE,
			Ability:        ABILITY_KILL,
			WinCondition:   WIN_SURVIVE,
			PeaceCondition: PEACE_LAST_SURVIVOR,
			Suspicious:     true,
			DuelStrength:   4,
		},
		{
			ID:             ROLE_VILLAGE_IDIOT,
			Alias:          "vi",
			Alignment:      ALIGNMENT_FREELANCE,
			WinCondition:   WIN_BE_LYNCHED,
			PeaceCondition: PEACE_ALWAYS_PEACEFUL,
			Troll:          true,
			DuelStrength:   1,
		},
		{
			ID:             ROLE_MUSKETEER,
			Alias:          "mus",
			Alignment:      ALIGNMENT_FREELANCE,
			Ability:        ABILITY_DUEL,
			WinCondition:   WIN_DUEL,
			PeaceCondition: PEACE_ALWAYS_PEACEFUL,
			DuelStrength:   3,
		},
		{
			ID:             ROLE_COWARD,
			Alias:          "cow",
			Alignment:      ALIGNMENT_FREELANCE,
			WinCondition:   WIN_SURVIVE,
			PeaceCondition: PEACE_ALWAYS_PEACEFUL,
			DuelStrength:   0,
		},
	}
}

// alignmentEvaluator 只给指定阵营的角色分配权重
func alignmentEvaluator(alignment Alignment, weights map[RoleID]float64) Evaluator {
	return func(role Role) float64 {
		if role.Alignment != alignment {
			return 0
		}

		if w, ok := weights[role.ID]; ok {
			return w
		}

		return 1
	}
}

func populateEdition1(rb *Rulebook) error {
	for _, role := range edition1Roles() {
		if err := rb.AddRole(role); err != nil {
			return err
		}
	}

	basicVillage, err := NewWeightedWildcard(
		WILDCARD_BASIC_VILLAGE,
		"*bv",
		map[RoleID]float64{
			ROLE_PEASANT:   3,
			ROLE_DOCTOR:    1,
			ROLE_DETECTIVE: 1,
		},
	)
	if err != nil {
		return err
	}

	basicMafia, err := NewWeightedWildcard(
		WILDCARD_BASIC_MAFIA,
		"*bm",
		map[RoleID]float64{
			ROLE_RACKETEER: 2,
			ROLE_GODFATHER: 1,
		},
	)
	if err != nil {
		return err
	}

	wildcards := []*Wildcard{
		NewEvaluatorWildcard(WILDCARD_ANY, "*", func(Role) float64 { return 1 }),
		NewEvaluatorWildcard(
			WILDCARD_VILLAGE,
			"*v",
			alignmentEvaluator(ALIGNMENT_VILLAGE, map[RoleID]float64{ROLE_PEASANT: 4}),
		),
		NewEvaluatorWildcard(WILDCARD_MAFIA, "*m", alignmentEvaluator(ALIGNMENT_MAFIA, nil)),
		NewEvaluatorWildcard(WILDCARD_FREELANCE, "*f", alignmentEvaluator(ALIGNMENT_FREELANCE, nil)),
		basicVillage,
		basicMafia,
	}

	for _, wildcard := range wildcards {
		if err := rb.AddWildcard(wildcard); err != nil {
			return err
		}
	}

	return nil
}
