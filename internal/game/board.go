package game

import (
	"fmt"
	"sort"
)

// Board is the whole mutable game state. Engines never keep their own
// copy of it; they take a *Board and leave it as they found it unless the
// operation is a commit.
type Board struct {
	Size        int          `json:"size"`
	PlayerCount int          `json:"playerCount"`
	Positions   map[int]Cell `json:"positions"`
	Goals       map[int]Goal `json:"goals"`
	HWalls      [][]bool     `json:"horizontalWalls"`
	VWalls      [][]bool     `json:"verticalWalls"`
	WallsLeft   map[int]int  `json:"wallsLeft"`
	Current     int          `json:"currentPlayer"`
	GameOver    bool         `json:"gameOver"`

	history []Snapshot
	redo    []Snapshot
}

func validSetup(size, players int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: board size %d outside [%d,%d]", ErrInvalidConfig, size, MinBoardSize, MaxBoardSize)
	}
	if players != 2 && players != 4 {
		return fmt.Errorf("%w: player count %d, want 2 or 4", ErrInvalidConfig, players)
	}
	return nil
}

// NewBoard lays out a fresh game: pawns mirrored across the centre, no walls,
// budgets seeded from player count and board size, player 1 to move.
func NewBoard(size, players int) (*Board, error) {
	if err := validSetup(size, players); err != nil {
		return nil, err
	}
	b := &Board{
		Size:        size,
		PlayerCount: players,
		Positions:   InitialPositions(size, players),
		Goals:       goalsFor(size, players),
		HWalls:      newGrid(size - 1),
		VWalls:      newGrid(size - 1),
		WallsLeft:   make(map[int]int, players),
		Current:     1,
	}
	budget := InitialWalls(size, players)
	for p := 1; p <= players; p++ {
		b.WallsLeft[p] = budget
	}
	return b, nil
}

func newGrid(n int) [][]bool {
	g := make([][]bool, n)
	for i := range g {
		g[i] = make([]bool, n)
	}
	return g
}

// InitialPositions: P1 top, P2 bottom, P3 left, P4 right, all on the middle line.
func InitialPositions(size, players int) map[int]Cell {
	mid := size / 2
	pos := map[int]Cell{
		1: {Row: 0, Col: mid},
		2: {Row: size - 1, Col: mid},
	}
	if players >= 4 {
		pos[3] = Cell{Row: mid, Col: 0}
		pos[4] = Cell{Row: mid, Col: size - 1}
	}
	return pos
}

// Each player races to the side opposite its start.
func goalsFor(size, players int) map[int]Goal {
	goals := map[int]Goal{
		1: {Axis: AxisRow, Index: size - 1},
		2: {Axis: AxisRow, Index: 0},
	}
	if players >= 4 {
		goals[3] = Goal{Axis: AxisCol, Index: size - 1}
		goals[4] = Goal{Axis: AxisCol, Index: 0}
	}
	return goals
}

// InitialWalls returns the per-player wall budget.
func InitialWalls(size, players int) int {
	base := 10
	if players == 4 {
		base = 5
	}
	switch {
	case size <= 7:
		base = max(3, base-2)
	case size >= 11:
		base += 2
	}
	return base
}

// Players returns the active ids in ascending order.
func (b *Board) Players() []int {
	ids := make([]int, 0, len(b.Positions))
	for id := range b.Positions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Size && c >= 0 && c < b.Size
}

func (b *Board) Position(player int) (Cell, bool) {
	c, ok := b.Positions[player]
	return c, ok
}

func (b *Board) SetPosition(player int, c Cell) {
	b.Positions[player] = c
}

// PlayerAt reports which pawn, if any, stands on c.
func (b *Board) PlayerAt(c Cell) (int, bool) {
	for id, pos := range b.Positions {
		if pos == c {
			return id, true
		}
	}
	return 0, false
}

// HasWall reports whether the wall grid holds w. Coordinates outside the
// grid hold nothing.
func (b *Board) HasWall(w Wall) bool {
	if w.Row < 0 || w.Col < 0 || w.Row >= b.Size-1 || w.Col >= b.Size-1 {
		return false
	}
	if w.Orientation == Vertical {
		return b.VWalls[w.Row][w.Col]
	}
	return b.HWalls[w.Row][w.Col]
}

// SetWall writes the wall cell directly, without any legality check.
func (b *Board) SetWall(w Wall, on bool) {
	if w.Orientation == Vertical {
		b.VWalls[w.Row][w.Col] = on
		return
	}
	b.HWalls[w.Row][w.Col] = on
}

func (b *Board) hWall(r, c int) bool { return b.HasWall(Wall{Row: r, Col: c, Orientation: Horizontal}) }
func (b *Board) vWall(r, c int) bool { return b.HasWall(Wall{Row: r, Col: c, Orientation: Vertical}) }

// AdjustWalls changes a player's budget by delta, never below zero, and
// returns the new value.
func (b *Board) AdjustWalls(player, delta int) int {
	n := max(0, b.WallsLeft[player]+delta)
	b.WallsLeft[player] = n
	return n
}

// SwitchTurn hands the turn to the next id present on the board.
func (b *Board) SwitchTurn() {
	next := b.Current
	for i := 0; i < b.PlayerCount; i++ {
		next = next%b.PlayerCount + 1
		if _, ok := b.Positions[next]; ok {
			b.Current = next
			return
		}
	}
}
