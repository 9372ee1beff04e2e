package game

import "fmt"

// Snapshot is the persisted / undo form of a Board. It carries everything a
// loader needs; goals are derived from size and player count.
type Snapshot struct {
	BoardSize   int          `json:"board_size"`
	PlayerCount int          `json:"player_count"`
	Positions   map[int]Cell `json:"player_positions"`
	HWalls      [][]bool     `json:"horizontal_walls"`
	VWalls      [][]bool     `json:"vertical_walls"`
	WallsLeft   map[int]int  `json:"walls_remaining"`
	Current     int          `json:"current_player"`
	GameOver    bool         `json:"game_over"`
}

// Snapshot returns a deep copy of the board state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		BoardSize:   b.Size,
		PlayerCount: b.PlayerCount,
		Positions:   copyCells(b.Positions),
		HWalls:      copyGrid(b.HWalls),
		VWalls:      copyGrid(b.VWalls),
		WallsLeft:   copyInts(b.WallsLeft),
		Current:     b.Current,
		GameOver:    b.GameOver,
	}
}

// Restore replaces the board with s. A snapshot that fails Validate is
// rejected and the board is left untouched. Undo/redo stacks are dropped
// when the board dimensions change.
func (b *Board) Restore(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.BoardSize != b.Size || s.PlayerCount != b.PlayerCount {
		b.history, b.redo = nil, nil
	}
	b.load(s)
	return nil
}

// load assumes s is consistent.
func (b *Board) load(s Snapshot) {
	b.Size = s.BoardSize
	b.PlayerCount = s.PlayerCount
	b.Goals = goalsFor(s.BoardSize, s.PlayerCount)
	b.Positions = copyCells(s.Positions)
	b.HWalls = copyGrid(s.HWalls)
	b.VWalls = copyGrid(s.VWalls)
	b.WallsLeft = copyInts(s.WallsLeft)
	b.Current = s.Current
	b.GameOver = s.GameOver
}

// Validate checks a snapshot for internal consistency.
func (s Snapshot) Validate() error {
	if err := validSetup(s.BoardSize, s.PlayerCount); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	n := s.BoardSize - 1
	if !gridSized(s.HWalls, n) || !gridSized(s.VWalls, n) {
		return fmt.Errorf("%w: wall grids must be %dx%d", ErrCorruptSnapshot, n, n)
	}
	if len(s.Positions) != s.PlayerCount {
		return fmt.Errorf("%w: %d positions for %d players", ErrCorruptSnapshot, len(s.Positions), s.PlayerCount)
	}
	seen := make(map[Cell]int, len(s.Positions))
	for id, c := range s.Positions {
		if id < 1 || id > s.PlayerCount {
			return fmt.Errorf("%w: unknown player %d", ErrCorruptSnapshot, id)
		}
		if c.Row < 0 || c.Row >= s.BoardSize || c.Col < 0 || c.Col >= s.BoardSize {
			return fmt.Errorf("%w: player %d at %s is off the board", ErrCorruptSnapshot, id, c)
		}
		if other, dup := seen[c]; dup {
			return fmt.Errorf("%w: players %d and %d share %s", ErrCorruptSnapshot, other, id, c)
		}
		seen[c] = id
	}
	for id := 1; id <= s.PlayerCount; id++ {
		left, ok := s.WallsLeft[id]
		if !ok || left < 0 {
			return fmt.Errorf("%w: bad wall budget for player %d", ErrCorruptSnapshot, id)
		}
	}
	if _, ok := s.Positions[s.Current]; !ok {
		return fmt.Errorf("%w: current player %d not on the board", ErrCorruptSnapshot, s.Current)
	}
	return nil
}

func gridSized(g [][]bool, n int) bool {
	if len(g) != n {
		return false
	}
	for _, row := range g {
		if len(row) != n {
			return false
		}
	}
	return true
}

func copyGrid(g [][]bool) [][]bool {
	out := make([][]bool, len(g))
	for i := range g {
		out[i] = append([]bool(nil), g[i]...)
	}
	return out
}

func copyCells(m map[int]Cell) map[int]Cell {
	out := make(map[int]Cell, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyInts(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// commit records the pre-action state so the action can be undone.
func (b *Board) commit(before Snapshot) {
	b.history = append(b.history, before)
	b.redo = nil
}

// Undo steps back one committed action. It returns false when there is
// nothing to undo.
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	b.redo = append(b.redo, b.Snapshot())
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.load(last)
	return true
}

// Redo re-applies the most recently undone action.
func (b *Board) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	b.history = append(b.history, b.Snapshot())
	next := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.load(next)
	return true
}

func (b *Board) CanUndo() bool { return len(b.history) > 0 }
func (b *Board) CanRedo() bool { return len(b.redo) > 0 }
