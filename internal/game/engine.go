package game

import (
	"encoding/json"
	"fmt"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionWall
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionWall:
		return "wall"
	}
	return "none"
}

func (k ActionKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// Action is one ply: a pawn move or a wall placement by Player.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Player int        `json:"player"`
	To     Cell       `json:"to"`
	Wall   Wall       `json:"wall"`
}

func MoveAction(player int, to Cell) Action {
	return Action{Kind: ActionMove, Player: player, To: to}
}

func WallAction(player int, w Wall) Action {
	return Action{Kind: ActionWall, Player: player, Wall: w}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return fmt.Sprintf("P%d move %s", a.Player, a.To)
	case ActionWall:
		return fmt.Sprintf("P%d wall %s", a.Player, a.Wall)
	}
	return fmt.Sprintf("P%d none", a.Player)
}

// Result reports what a committed (or rejected) action did. Wall placements
// rejected by the rules come back with OK false and a Reason, not an error.
type Result struct {
	OK     bool   `json:"ok"`
	Reason Reason `json:"reason,omitempty"`
	Winner int    `json:"winner,omitempty"`
}

// Play runs one full turn for a.Player: check the turn, apply the action,
// record it for undo, detect victory and pass the turn on. Nothing is
// recorded and the turn does not advance when the action is rejected.
func (b *Board) Play(a Action) (Result, error) {
	if b.GameOver {
		return Result{}, ErrGameOver
	}
	if a.Kind == ActionNone {
		return Result{}, fmt.Errorf("%w for player %d", ErrNoLegalAction, a.Player)
	}
	if a.Player != b.Current {
		return Result{}, fmt.Errorf("%w: player %d, current %d", ErrOutOfTurn, a.Player, b.Current)
	}

	before := b.Snapshot()
	res := Result{OK: true}
	switch a.Kind {
	case ActionMove:
		if !IsLegalMove(b, a.Player, a.To) {
			return Result{}, fmt.Errorf("%w: %s", ErrIllegalMove, a.To)
		}
		b.SetPosition(a.Player, a.To)
	case ActionWall:
		if b.WallsLeft[a.Player] <= 0 {
			return Result{}, ErrNoWallsLeft
		}
		ok, reason := PlaceWall(b, a.Wall)
		if !ok {
			return Result{Reason: reason}, nil
		}
		res.Reason = reason
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAction, a.Kind)
	}
	b.commit(before)

	if winner, ok := b.CheckVictory(); ok {
		b.GameOver = true
		res.Winner = winner
		return res, nil
	}
	b.SwitchTurn()
	return res, nil
}
