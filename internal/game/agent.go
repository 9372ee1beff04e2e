package game

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Tier selects how an AI seat plays. TierNone marks a human seat.
type Tier int

const (
	TierNone Tier = iota
	TierEasy
	TierMedium
	TierHard
)

func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	}
	return "none"
}

func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "human":
		return TierNone, nil
	case "easy":
		return TierEasy, nil
	case "medium":
		return TierMedium, nil
	case "hard":
		return TierHard, nil
	}
	return TierNone, fmt.Errorf("%w: unknown AI tier %q", ErrInvalidConfig, s)
}

func (t Tier) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

const (
	// RandomWallChance is how often the easy tier tries to place a wall.
	RandomWallChance = 0.3
	// HardWallThreshold is the opponent distance gain the hard tier needs
	// to exceed before it spends a wall.
	HardWallThreshold = 1
)

// Agent picks an action for the player to move. Decide leaves the board
// exactly as it found it; the caller applies the action with Board.Play.
type Agent interface {
	Decide(b *Board) Action
}

// NewAgent builds the strategy for an AI tier. A nil rng is seeded from the
// clock.
func NewAgent(t Tier, rng *rand.Rand) (Agent, error) {
	switch t {
	case TierEasy:
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return &randomAgent{rng: rng}, nil
	case TierMedium:
		return greedyAgent{}, nil
	case TierHard:
		return hardAgent{}, nil
	}
	return nil, fmt.Errorf("%w: tier %s has no agent", ErrInvalidConfig, t)
}

type randomAgent struct {
	rng *rand.Rand
}

func (a *randomAgent) Decide(b *Board) Action {
	actor := b.Current
	if b.WallsLeft[actor] > 0 && a.rng.Float64() < RandomWallChance {
		if walls := ValidPlacements(b); len(walls) > 0 {
			return WallAction(actor, walls[a.rng.Intn(len(walls))])
		}
	}
	if moves := LegalMoves(b, actor); len(moves) > 0 {
		return MoveAction(actor, moves[a.rng.Intn(len(moves))])
	}
	return stalled(b, actor)
}

type greedyAgent struct{}

func (greedyAgent) Decide(b *Board) Action {
	actor := b.Current
	if opp, ok := PrimaryOpponent(b, actor); ok && b.WallsLeft[actor] > 0 &&
		ShortestDistance(b, opp) < ShortestDistance(b, actor) {
		if w, _, found := BestBlockingWall(b, opp); found {
			return WallAction(actor, w)
		}
	}
	return greedyMove(b, actor)
}

type hardAgent struct{}

func (hardAgent) Decide(b *Board) Action {
	actor := b.Current
	for _, m := range LegalMoves(b, actor) {
		if b.IsWinningCell(actor, m) {
			return MoveAction(actor, m)
		}
	}
	if opp, ok := PrimaryOpponent(b, actor); ok && b.WallsLeft[actor] > 0 {
		if w, gain, found := BestBlockingWall(b, opp); found && gain > HardWallThreshold {
			return WallAction(actor, w)
		}
	}
	return greedyAgent{}.Decide(b)
}

// stalled is the last resort when a player has no pawn move: any affordable
// wall, or ActionNone.
func stalled(b *Board, actor int) Action {
	if b.WallsLeft[actor] > 0 {
		var first *Wall
		forEachValidPlacement(b, func(w Wall) bool {
			first = &w
			return false
		})
		if first != nil {
			return WallAction(actor, *first)
		}
	}
	return Action{Kind: ActionNone, Player: actor}
}
