package game

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func mustAgent(t *testing.T, tier Tier, seed int64) Agent {
	t.Helper()
	a, err := NewAgent(tier, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewAgent(%s): %v", tier, err)
	}
	return a
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
		err  bool
	}{
		{"", TierNone, false},
		{"human", TierNone, false},
		{"Easy", TierEasy, false},
		{" medium ", TierMedium, false},
		{"HARD", TierHard, false},
		{"expert", TierNone, true},
	}
	for _, tt := range tests {
		got, err := ParseTier(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("ParseTier(%q) = %s,%v", tt.in, got, err)
		}
		if tt.err && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseTier(%q) err = %v, want ErrInvalidConfig", tt.in, err)
		}
	}
	if _, err := NewAgent(TierNone, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewAgent(TierNone) err = %v", err)
	}
}

func TestPrimaryOpponent(t *testing.T) {
	tests := []struct {
		players, actor, want int
	}{
		{2, 1, 2},
		{2, 2, 1},
		{4, 1, 2},
		{4, 3, 1},
	}
	for _, tt := range tests {
		b := mustBoard(t, 9, tt.players)
		if got, ok := PrimaryOpponent(b, tt.actor); !ok || got != tt.want {
			t.Errorf("%dp actor %d: opponent = %d, want %d", tt.players, tt.actor, got, tt.want)
		}
	}
}

func TestDecideLeavesBoardUntouched(t *testing.T) {
	for _, tier := range []Tier{TierEasy, TierMedium, TierHard} {
		t.Run(tier.String(), func(t *testing.T) {
			b := mustBoard(t, 9, 2)
			b.SetPosition(2, Cell{3, 4})
			b.SetWall(hw(5, 2), true)
			before := b.Snapshot()
			a := mustAgent(t, tier, 7)
			for i := 0; i < 10; i++ {
				a.Decide(b)
			}
			if !reflect.DeepEqual(b.Snapshot(), before) {
				t.Fatalf("Decide mutated the board")
			}
		})
	}
}

func TestGreedyStepsTowardGoal(t *testing.T) {
	b := mustBoard(t, 9, 2)
	got := mustAgent(t, TierMedium, 1).Decide(b)
	if want := MoveAction(1, Cell{1, 4}); got != want {
		t.Fatalf("Decide = %s, want %s", got, want)
	}
}

func TestGreedyBlocksACloserOpponent(t *testing.T) {
	b := mustBoard(t, 9, 2)
	b.SetPosition(2, Cell{2, 4})
	base := ShortestDistance(b, 2)

	a := mustAgent(t, TierMedium, 1).Decide(b)
	if a.Kind != ActionWall || a.Player != 1 {
		t.Fatalf("Decide = %s, want a wall for P1", a)
	}
	res, err := b.Play(a)
	if err != nil || !res.OK {
		t.Fatalf("Play(%s) = %+v %v", a, res, err)
	}
	if d := ShortestDistance(b, 2); d <= base {
		t.Fatalf("opponent distance %d -> %d, want an increase", base, d)
	}
}

func TestGreedyMovesWithoutWalls(t *testing.T) {
	b := mustBoard(t, 9, 2)
	b.SetPosition(2, Cell{2, 4})
	b.WallsLeft[1] = 0
	got := mustAgent(t, TierMedium, 1).Decide(b)
	if want := MoveAction(1, Cell{1, 4}); got != want {
		t.Fatalf("Decide = %s, want %s", got, want)
	}
}

func TestHardTakesImmediateWin(t *testing.T) {
	b := mustBoard(t, 9, 2)
	b.SetPosition(1, Cell{7, 0})
	b.SetPosition(2, Cell{1, 4})
	got := mustAgent(t, TierHard, 1).Decide(b)
	if want := MoveAction(1, Cell{8, 0}); got != want {
		t.Fatalf("Decide = %s, want %s", got, want)
	}
}

func TestHardWallThreshold(t *testing.T) {
	// P1 is pinned at (7,4): P3 sits on the goal square below and walls on
	// both sides close the diagonals, so its only move is back up.
	setup := func(t *testing.T, p2 Cell) *Board {
		b := mustBoard(t, 9, 4)
		b.SetPosition(1, Cell{7, 4})
		b.SetPosition(2, p2)
		b.SetPosition(3, Cell{8, 4})
		b.SetWall(vw(7, 3), true)
		b.SetWall(vw(7, 4), true)
		return b
	}

	t.Run("gain of one is not enough", func(t *testing.T) {
		b := setup(t, Cell{1, 4})
		if _, gain, _ := BestBlockingWall(b, 2); gain != 1 {
			t.Fatalf("best gain = %d, want 1", gain)
		}
		got := mustAgent(t, TierHard, 1).Decide(b)
		if want := MoveAction(1, Cell{6, 4}); got != want {
			t.Fatalf("Decide = %s, want %s", got, want)
		}
	})

	t.Run("gain of two buys a wall", func(t *testing.T) {
		b := setup(t, Cell{1, 0})
		got := mustAgent(t, TierHard, 1).Decide(b)
		if want := WallAction(1, hw(0, 0)); got != want {
			t.Fatalf("Decide = %s, want %s", got, want)
		}
	})
}

func TestStalledPlayer(t *testing.T) {
	// P1 in the corner: P2 below, P3 behind P2, a wall to the right.
	setup := func(t *testing.T) *Board {
		b := mustBoard(t, 9, 4)
		b.SetPosition(1, Cell{0, 0})
		b.SetPosition(2, Cell{1, 0})
		b.SetPosition(3, Cell{2, 0})
		b.SetWall(vw(0, 0), true)
		return b
	}

	for _, tier := range []Tier{TierEasy, TierMedium, TierHard} {
		t.Run(tier.String(), func(t *testing.T) {
			b := setup(t)
			if moves := LegalMoves(b, 1); len(moves) != 0 {
				t.Fatalf("expected no moves, got %v", moves)
			}
			a := mustAgent(t, tier, 3).Decide(b)
			if a.Kind != ActionWall {
				t.Fatalf("Decide = %s, want a wall while budget remains", a)
			}
			if res, err := b.Play(a); err != nil || !res.OK {
				t.Fatalf("Play(%s) = %+v %v", a, res, err)
			}

			b = setup(t)
			b.WallsLeft[1] = 0
			a = mustAgent(t, tier, 3).Decide(b)
			if a.Kind != ActionNone || a.Player != 1 {
				t.Fatalf("Decide = %s, want no action", a)
			}
			if _, err := b.Play(a); !errors.Is(err, ErrNoLegalAction) {
				t.Fatalf("Play(none) err = %v", err)
			}
		})
	}
}

// Self-play through Board.Play never errors and never leaves a player
// without a path.
func TestSelfPlay(t *testing.T) {
	matchups := []struct {
		name    string
		size    int
		players int
		tiers   []Tier
	}{
		{"easy vs easy", 9, 2, []Tier{TierEasy, TierEasy}},
		{"medium vs hard", 9, 2, []Tier{TierMedium, TierHard}},
		{"four easy on 7x7", 7, 4, []Tier{TierEasy, TierEasy, TierEasy, TierEasy}},
		{"mixed four on 11x11", 11, 4, []Tier{TierHard, TierEasy, TierMedium, TierEasy}},
	}
	for _, m := range matchups {
		t.Run(m.name, func(t *testing.T) {
			b := mustBoard(t, m.size, m.players)
			agents := map[int]Agent{}
			for i, tier := range m.tiers {
				agents[i+1] = mustAgent(t, tier, int64(42+i))
			}
			for ply := 0; ply < 400 && !b.GameOver; ply++ {
				a := agents[b.Current].Decide(b)
				if a.Kind == ActionNone {
					break
				}
				res, err := b.Play(a)
				if err != nil {
					t.Fatalf("ply %d: Play(%s): %v", ply, a, err)
				}
				if !res.OK {
					t.Fatalf("ply %d: agent chose a rejected wall %s: %s", ply, a.Wall, res.Reason)
				}
				if !AllPlayersReachable(b) {
					t.Fatalf("ply %d: a player lost its path after %s", ply, a)
				}
				for id, n := range b.WallsLeft {
					if n < 0 {
						t.Fatalf("ply %d: P%d has %d walls", ply, id, n)
					}
				}
			}
		})
	}
}
