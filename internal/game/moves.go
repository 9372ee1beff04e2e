package game

// LegalMoves lists the destinations available to player, in scan order
// (up, down, left, right) with duplicates removed. An adjacent pawn can be
// jumped straight over; when the landing is off the board, walled off or
// taken, the cells to either side of that pawn are offered instead.
func LegalMoves(b *Board, player int) []Cell {
	from, ok := b.Positions[player]
	if !ok {
		return nil
	}
	moves := []Cell{}
	seen := make(map[Cell]bool, 6)
	add := func(c Cell) {
		if !seen[c] {
			seen[c] = true
			moves = append(moves, c)
		}
	}
	// open reports whether c can be entered from via and nobody stands on it.
	open := func(via, c Cell) bool {
		if !IsEdgeOpen(b, via.Row, via.Col, c.Row, c.Col) {
			return false
		}
		_, taken := b.PlayerAt(c)
		return !taken
	}

	for _, d := range dirs {
		next := Cell{Row: from.Row + d[0], Col: from.Col + d[1]}
		if !IsEdgeOpen(b, from.Row, from.Col, next.Row, next.Col) {
			continue
		}
		if _, occupied := b.PlayerAt(next); !occupied {
			add(next)
			continue
		}

		jump := Cell{Row: next.Row + d[0], Col: next.Col + d[1]}
		if open(next, jump) {
			add(jump)
			continue
		}
		for _, side := range [2][2]int{{-d[1], -d[0]}, {d[1], d[0]}} {
			diag := Cell{Row: next.Row + side[0], Col: next.Col + side[1]}
			if open(next, diag) {
				add(diag)
			}
		}
	}
	return moves
}

// IsLegalMove reports whether to is one of the player's legal destinations.
func IsLegalMove(b *Board, player int, to Cell) bool {
	for _, c := range LegalMoves(b, player) {
		if c == to {
			return true
		}
	}
	return false
}
