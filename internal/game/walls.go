package game

// IsValidPlacement checks w against the current wall grids only; it does not
// look at paths and never mutates the board.
func IsValidPlacement(b *Board, w Wall) (bool, Reason) {
	n := b.Size
	if w.Row < 0 || w.Col < 0 || w.Row > n-2 || w.Col > n-2 {
		return false, ReasonOutOfBounds
	}
	if b.HasWall(w) {
		return false, ReasonWallExists
	}
	r, c := w.Row, w.Col
	if w.Orientation == Horizontal {
		if b.hWall(r, c-1) || b.hWall(r, c+1) {
			return false, ReasonAdjacentCollinear
		}
		if b.vWall(r, c) || b.vWall(r-1, c) {
			return false, ReasonCrossesPerpendicular
		}
		return true, ""
	}
	if b.vWall(r-1, c) || b.vWall(r+1, c) {
		return false, ReasonAdjacentCollinear
	}
	if b.hWall(r, c) || b.hWall(r, c-1) {
		return false, ReasonCrossesPerpendicular
	}
	return true, ""
}

// withWall sets w for the duration of fn and clears it again on every exit
// path. w must be valid and absent.
func withWall(b *Board, w Wall, fn func()) {
	b.SetWall(w, true)
	defer b.SetWall(w, false)
	fn()
}

// preservesPaths reports whether every player can still reach its goal
// with w added. The board is unchanged afterwards.
func preservesPaths(b *Board, w Wall) bool {
	ok := false
	withWall(b, w, func() { ok = AllPlayersReachable(b) })
	return ok
}

// CheckPlacement reports what PlaceWall would say about w, ignoring the
// wall budget. Nothing is committed.
func CheckPlacement(b *Board, w Wall) (bool, Reason) {
	if ok, reason := IsValidPlacement(b, w); !ok {
		return false, reason
	}
	if !preservesPaths(b, w) {
		return false, ReasonBlocksPlayer
	}
	return true, ""
}

// PlaceWall commits w for the current player: validate, tentatively place,
// re-check every player's path, then either keep it and spend one wall or
// roll back. On any rejection the grids and budgets are exactly as before.
func PlaceWall(b *Board, w Wall) (bool, Reason) {
	if b.WallsLeft[b.Current] <= 0 {
		return false, ReasonNoWallsLeft
	}
	if ok, reason := CheckPlacement(b, w); !ok {
		return false, reason
	}
	b.SetWall(w, true)
	b.AdjustWalls(b.Current, -1)
	return true, ReasonPlaced
}

// ValidPlacements lists every wall that passes IsValidPlacement and keeps all
// paths open, scanning rows then columns, horizontal before vertical.
func ValidPlacements(b *Board) []Wall {
	var out []Wall
	forEachValidPlacement(b, func(w Wall) bool {
		out = append(out, w)
		return true
	})
	return out
}

// forEachValidPlacement calls fn for each placement ValidPlacements would
// return, stopping early when fn returns false.
func forEachValidPlacement(b *Board, fn func(Wall) bool) {
	for r := 0; r < b.Size-1; r++ {
		for c := 0; c < b.Size-1; c++ {
			for _, o := range [2]Orientation{Horizontal, Vertical} {
				w := Wall{Row: r, Col: c, Orientation: o}
				if ok, _ := CheckPlacement(b, w); !ok {
					continue
				}
				if !fn(w) {
					return
				}
			}
		}
	}
}
