package game

// dirs is the scan order for neighbours: up, down, left, right.
var dirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsEdgeOpen reports whether a pawn may step between two 4-adjacent cells.
// A horizontal wall at (wr,wc) cuts the edges between rows wr and wr+1 at
// columns wc and wc+1; a vertical wall at (wr,wc) cuts the edges between
// columns wc and wc+1 at rows wr and wr+1.
func IsEdgeOpen(b *Board, r1, c1, r2, c2 int) bool {
	if !b.InBounds(r1, c1) || !b.InBounds(r2, c2) {
		return false
	}
	if abs(r1-r2)+abs(c1-c2) != 1 {
		return false
	}
	if r1 != r2 {
		wr := min(r1, r2)
		return !b.hWall(wr, c1) && !b.hWall(wr, c1-1)
	}
	wc := min(c1, c2)
	return !b.vWall(r1, wc) && !b.vWall(r1-1, wc)
}

// ShortestDistance is the number of steps from the player's pawn to the
// nearest goal cell, walls only; pawns never block a path. It returns
// Unreachable if no goal cell can be reached.
func ShortestDistance(b *Board, player int) int {
	return bfs(b, player)
}

// Reachable reports whether the player still has a path to its goal.
func Reachable(b *Board, player int) bool {
	return bfs(b, player) != Unreachable
}

// AllPlayersReachable is the path-preservation invariant.
func AllPlayersReachable(b *Board) bool {
	for _, id := range b.Players() {
		if !Reachable(b, id) {
			return false
		}
	}
	return true
}

// bfs stops at the first goal cell dequeued, which is also the nearest.
func bfs(b *Board, player int) int {
	start, ok := b.Positions[player]
	goal, hasGoal := b.Goals[player]
	if !ok || !hasGoal {
		return Unreachable
	}
	n := b.Size
	dist := make([]int, n*n)
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]Cell, 0, n*n)
	queue = append(queue, start)
	dist[start.Row*n+start.Col] = 0

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := dist[cur.Row*n+cur.Col]
		if goal.Reached(cur) {
			return d
		}
		for _, dir := range dirs {
			nr, nc := cur.Row+dir[0], cur.Col+dir[1]
			if !IsEdgeOpen(b, cur.Row, cur.Col, nr, nc) {
				continue
			}
			idx := nr*n + nc
			if dist[idx] >= 0 {
				continue
			}
			dist[idx] = d + 1
			queue = append(queue, Cell{Row: nr, Col: nc})
		}
	}
	return Unreachable
}
