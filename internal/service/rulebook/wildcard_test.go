package rulebook

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestNewWeightedWildcard_RejectsBadWeights(t *testing.T) {
	_, err := NewWeightedWildcard("w", "", map[RoleID]float64{ROLE_PEASANT: 0, ROLE_DOCTOR: 0})

	var weightErr *WeightError
	if !errors.As(err, &weightErr) || weightErr.Reason != WEIGHT_ALL_ZERO {
		t.Fatalf("all-zero weights should fail, got %v", err)
	}

	_, err = NewWeightedWildcard("w", "", map[RoleID]float64{ROLE_PEASANT: 1, ROLE_DOCTOR: -1})
	if !errors.As(err, &weightErr) || weightErr.Reason != WEIGHT_NEGATIVE || weightErr.Role != ROLE_DOCTOR {
		t.Fatalf("negative weight should fail naming the role, got %v", err)
	}
}

func TestPickRole_WeightedSinglePositive(t *testing.T) {
	rb, _ := New(EDITION_1)

	w, err := NewWeightedWildcard("only_doctor", "", map[RoleID]float64{ROLE_DOCTOR: 5, ROLE_PEASANT: 0})
	if err != nil {
		t.Fatalf("construction should succeed, got %v", err)
	}

	rng := newTestRand()
	for range 50 {
		role, err := w.PickRole(rb, rng)
		if err != nil {
			t.Fatalf("pick should succeed, got %v", err)
		}

		if role.ID != ROLE_DOCTOR {
			t.Fatalf("want doctor, got %s", role.ID)
		}
	}
}

func TestPickRole_WeightedRolesMissingFromRulebook(t *testing.T) {
	rb, _ := New(EDITION_1)

	w, _ := NewWeightedWildcard("ghost", "", map[RoleID]float64{"not_in_catalog": 1})

	_, err := w.PickRole(rb, newTestRand())

	var weightErr *WeightError
	if !errors.As(err, &weightErr) || weightErr.Reason != WEIGHT_ALL_ZERO {
		t.Fatalf("no catalog role with positive weight should fail, got %v", err)
	}
}

func TestPickRole_EvaluatorNegativeWeightFails(t *testing.T) {
	rb, _ := New(EDITION_1)

	w := NewEvaluatorWildcard("bad", "", func(role Role) float64 {
		if role.ID == ROLE_GODFATHER {
			return -1
		}
		return 1
	})

	_, err := w.PickRole(rb, newTestRand())

	var weightErr *WeightError
	if !errors.As(err, &weightErr) || weightErr.Reason != WEIGHT_NEGATIVE || weightErr.Role != ROLE_GODFATHER {
		t.Fatalf("negative evaluator weight should fail, got %v", err)
	}
}

func TestPickRole_EvaluatorAllZeroFails(t *testing.T) {
	rb, _ := New(EDITION_1)

	w := NewEvaluatorWildcard("zero", "", func(Role) float64 { return 0 })

	_, err := w.PickRole(rb, newTestRand())

	var weightErr *WeightError
	if !errors.As(err, &weightErr) || weightErr.Reason != WEIGHT_ALL_ZERO {
		t.Fatalf("all-zero evaluator should fail, got %v", err)
	}
}

func TestPickRole_EvaluatorStaysInAlignment(t *testing.T) {
	rb, _ := New(EDITION_1)

	w, _ := rb.GetWildcard(WildcardByID(WILDCARD_MAFIA))

	rng := newTestRand()
	seen := make(map[RoleID]bool)

	for range 200 {
		role, err := w.PickRole(rb, rng)
		if err != nil {
			t.Fatalf("pick should succeed, got %v", err)
		}

		if role.Alignment != ALIGNMENT_MAFIA {
			t.Fatalf("mafia wildcard resolved to %s (%s)", role.ID, role.Alignment)
		}

		seen[role.ID] = true
	}

	if len(seen) < 2 {
		t.Fatalf("expected several mafia roles over 200 draws, got %v", seen)
	}
}

func TestPickRole_SameSeedSameDraws(t *testing.T) {
	rb, _ := New(EDITION_1)
	w, _ := rb.GetWildcard(WildcardByID(WILDCARD_ANY))

	a := newTestRand()
	b := newTestRand()

	for i := range 20 {
		ra, _ := w.PickRole(rb, a)
		rb2, _ := w.PickRole(rb, b)

		if ra.ID != rb2.ID {
			t.Fatalf("draw %d differs with identical seeds: %s vs %s", i, ra.ID, rb2.ID)
		}
	}
}
