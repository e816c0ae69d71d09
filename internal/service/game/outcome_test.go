package game

import (
	"errors"
	"testing"

	"mafia-moderator/internal/service/rulebook"
)

func TestTryToEnd_IdempotentOnceEnded(t *testing.T) {
	g := newTestGame(t, rulebook.ROLE_PEASANT, rulebook.ROLE_PEASANT, rulebook.ROLE_RACKETEER)

	if err := g.BeginNight(); err != nil {
		t.Fatalf("begin night failed: %v", err)
	}

	rac := idsOf(g, rulebook.ROLE_RACKETEER)[0]
	p := idsOf(g, rulebook.ROLE_PEASANT)

	if err := g.KickPlayer(rac); err != nil {
		t.Fatalf("kick failed: %v", err)
	}

	if !g.HasEnded() {
		t.Fatalf("kicking the last mafia member should end the game")
	}

	if g.MafiaCanUseKill() {
		t.Fatalf("mafia kill should be disabled once no mafia is present")
	}

	snapshot := make(map[PlayerID]bool)
	for _, pl := range g.Players() {
		snapshot[pl.ID()] = pl.HasWon()
	}

	if snapshot[rac] {
		t.Fatalf("kicked player should always lose")
	}

	if !snapshot[p[0]] || !snapshot[p[1]] {
		t.Fatalf("peasants should win")
	}

	var killErr *MafiaKillError
	if err := g.SkipMafiaKill(); !errors.As(err, &killErr) || killErr.Reason != MAFIA_KILL_GAME_ENDED {
		t.Fatalf("want game ended, got %v", err)
	}

	var kickErr *KickError
	if err := g.KickPlayer(p[0]); !errors.As(err, &kickErr) || kickErr.Reason != KICK_GAME_ENDED {
		t.Fatalf("want game ended, got %v", err)
	}

	var nightErr *BeginNightError
	if err := g.BeginNight(); !errors.As(err, &nightErr) || nightErr.Reason != BEGIN_NIGHT_GAME_ENDED {
		t.Fatalf("want game ended, got %v", err)
	}

	if !g.TryToEnd() {
		t.Fatalf("TryToEnd should keep reporting an ended game")
	}

	for _, pl := range g.Players() {
		if pl.HasWon() != snapshot[pl.ID()] {
			t.Fatalf("outcome of player %d changed after the game ended", pl.ID())
		}
	}
}

func TestTryToEnd_EndedNightDoesNotEnterDay(t *testing.T) {
	g := newTestGame(t, rulebook.ROLE_PEASANT, rulebook.ROLE_RACKETEER, rulebook.ROLE_GODFATHER)
	passFirstNight(t, g)
	skipLynchAndBeginNight(t, g)

	rac := idsOf(g, rulebook.ROLE_RACKETEER)[0]
	pea := idsOf(g, rulebook.ROLE_PEASANT)[0]

	if err := g.CastMafiaKill(rac, pea); err != nil {
		t.Fatalf("mafia kill failed: %v", err)
	}

	if !g.HasEnded() {
		t.Fatalf("killing the last villager should end the game")
	}

	if g.Time() != TIME_NIGHT || g.Date() != 1 {
		t.Fatalf("ended game should stay on night 1, got %s %d", g.Time(), g.Date())
	}

	for _, pl := range g.Players() {
		wantWin := pl.Alignment() == rulebook.ALIGNMENT_MAFIA
		if pl.HasWon() != wantWin {
			t.Fatalf("player %d (%s) won=%v, want %v", pl.ID(), pl.Role().ID, pl.HasWon(), wantWin)
		}
	}
}

func TestTryToEnd_LastSurvivorBlocksUntilAlone(t *testing.T) {
	g := newTestGame(t, rulebook.ROLE_SERIAL_KILLER, rulebook.ROLE_PEASANT, rulebook.ROLE_PEASANT)

	if g.HasEnded() {
		t.Fatalf("serial killer should keep the game going while others are present")
	}

	p := idsOf(g, rulebook.ROLE_PEASANT)

	if err := g.KickPlayer(p[0]); err != nil {
		t.Fatalf("kick failed: %v", err)
	}

	if g.HasEnded() {
		t.Fatalf("two players remain")
	}

	if err := g.KickPlayer(p[1]); err != nil {
		t.Fatalf("kick failed: %v", err)
	}

	if !g.HasEnded() {
		t.Fatalf("game should end with a lone serial killer")
	}

	sk := mustPlayer(t, g, idsOf(g, rulebook.ROLE_SERIAL_KILLER)[0])
	if !sk.HasWon() {
		t.Fatalf("surviving serial killer should win")
	}

	for _, id := range p {
		if mustPlayer(t, g, id).HasWon() {
			t.Fatalf("kicked peasants should lose")
		}
	}
}

func TestTryToEnd_VillageIdiotWinsWhenLynched(t *testing.T) {
	g := newTestGame(t, rulebook.ROLE_VILLAGE_IDIOT, rulebook.ROLE_PEASANT, rulebook.ROLE_PEASANT, rulebook.ROLE_RACKETEER)
	passFirstNight(t, g)

	vi := idsOf(g, rulebook.ROLE_VILLAGE_IDIOT)[0]
	rac := idsOf(g, rulebook.ROLE_RACKETEER)[0]

	for _, id := range idsOf(g, rulebook.ROLE_PEASANT) {
		if err := g.CastLynchVote(id, vi); err != nil {
			t.Fatalf("vote failed: %v", err)
		}
	}

	if _, ok, err := g.ProcessLynchVotes(); err != nil || !ok {
		t.Fatalf("village idiot should be lynched, got %v %v", ok, err)
	}

	if err := g.KickPlayer(rac); err != nil {
		t.Fatalf("kick failed: %v", err)
	}

	if !g.HasEnded() {
		t.Fatalf("game should end without mafia")
	}

	if !mustPlayer(t, g, vi).HasWon() {
		t.Fatalf("lynched village idiot should win")
	}
}
