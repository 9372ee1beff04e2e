package game

// IsWinningCell reports whether player standing on c satisfies its goal.
func (b *Board) IsWinningCell(player int, c Cell) bool {
	g, ok := b.Goals[player]
	return ok && g.Reached(c)
}

// CheckVictory returns the lowest player id standing on its goal line.
func (b *Board) CheckVictory() (int, bool) {
	for _, id := range b.Players() {
		if b.IsWinningCell(id, b.Positions[id]) {
			return id, true
		}
	}
	return 0, false
}
