package game

// PrimaryOpponent is the lowest id other than actor.
func PrimaryOpponent(b *Board, actor int) (int, bool) {
	for _, id := range b.Players() {
		if id != actor {
			return id, true
		}
	}
	return 0, false
}

// withPosition moves player to c for the duration of fn.
func withPosition(b *Board, player int, c Cell, fn func()) {
	prev := b.Positions[player]
	b.Positions[player] = c
	defer func() { b.Positions[player] = prev }()
	fn()
}

// DistanceAfterMove is the player's shortest distance if it stood on to.
func DistanceAfterMove(b *Board, player int, to Cell) int {
	d := Unreachable
	withPosition(b, player, to, func() { d = ShortestDistance(b, player) })
	return d
}

// BestBlockingWall finds the path-preserving placement that lengthens the
// target's shortest path the most. Only strictly positive gains count; ties
// go to the first wall in scan order.
func BestBlockingWall(b *Board, target int) (Wall, int, bool) {
	base := ShortestDistance(b, target)
	if base == Unreachable {
		return Wall{}, 0, false
	}
	var best Wall
	bestGain := 0
	forEachValidPlacement(b, func(w Wall) bool {
		d := base
		withWall(b, w, func() { d = ShortestDistance(b, target) })
		if gain := d - base; gain > bestGain {
			best, bestGain = w, gain
		}
		return true
	})
	return best, bestGain, bestGain > 0
}

// greedyMove steps to the destination with the smallest remaining
// distance, first one on ties.
func greedyMove(b *Board, actor int) Action {
	moves := LegalMoves(b, actor)
	if len(moves) == 0 {
		return stalled(b, actor)
	}
	best, bestDist := moves[0], Unreachable
	for _, m := range moves {
		if d := DistanceAfterMove(b, actor, m); d < bestDist {
			best, bestDist = m, d
		}
	}
	return MoveAction(actor, best)
}
