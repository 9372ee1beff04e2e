package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zyadmagdy11/Quoridor-Game/internal/config"
	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
)

// Plays seat 1 from stdin against bots on every other seat.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	b, err := game.NewBoard(cfg.BoardSize, cfg.PlayerCount)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	agents := map[int]game.Agent{}
	for _, id := range b.Players()[1:] {
		agents[id], _ = game.NewAgent(cfg.AITier, rng)
	}

	fmt.Println("Commands: m r c (move), h r c / v r c (wall), u (undo), r (redo), q (quit)")
	reader := bufio.NewReader(os.Stdin)
	for !b.GameOver {
		fmt.Print(renderBoard(b))
		cur := b.Current

		if agent, ok := agents[cur]; ok {
			a, err := botTurn(b, agent)
			if err != nil {
				fmt.Printf("P%d cannot act: %v\n", cur, err)
				return
			}
			fmt.Printf("Bot %s\n", a)
			continue
		}

		fmt.Printf("P%d, %d walls left > ", cur, b.WallsLeft[cur])
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		switch cmd.kind {
		case "q":
			return
		case "u":
			if !b.Undo() {
				fmt.Println("Nothing to undo.")
			}
			// Step back past bot replies so the human is up again.
			for _, bot := agents[b.Current]; bot && b.CanUndo(); _, bot = agents[b.Current] {
				b.Undo()
			}
		case "r":
			if !b.Redo() {
				fmt.Println("Nothing to redo.")
			}
		default:
			res, err := b.Play(cmd.action(cur))
			switch {
			case err != nil:
				fmt.Println("Invalid:", err)
			case !res.OK:
				fmt.Println("Wall rejected:", res.Reason)
			}
		}
	}

	fmt.Print(renderBoard(b))
	if winner, ok := b.CheckVictory(); ok {
		fmt.Printf("\nPlayer %d wins!\n", winner)
	}
}

// botTurn plays the agent's choice, replacing a rejected wall with the first
// legal move.
func botTurn(b *game.Board, agent game.Agent) (game.Action, error) {
	a := agent.Decide(b)
	res, err := b.Play(a)
	if err != nil || res.OK {
		return a, err
	}
	moves := game.LegalMoves(b, a.Player)
	if len(moves) == 0 {
		return a, fmt.Errorf("%w for player %d", game.ErrNoLegalAction, a.Player)
	}
	a = game.MoveAction(a.Player, moves[0])
	_, err = b.Play(a)
	return a, err
}

type command struct {
	kind     string
	row, col int
}

func (c command) action(player int) game.Action {
	switch c.kind {
	case "h":
		return game.WallAction(player, game.Wall{Row: c.row, Col: c.col, Orientation: game.Horizontal})
	case "v":
		return game.WallAction(player, game.Wall{Row: c.row, Col: c.col, Orientation: game.Vertical})
	}
	return game.MoveAction(player, game.Cell{Row: c.row, Col: c.col})
}

var errUsage = errors.New("use: m r c | h r c | v r c | u | r | q")

func parseCommand(line string) (command, error) {
	parts := strings.Fields(strings.ToLower(line))
	if len(parts) == 0 {
		return command{}, errUsage
	}
	switch parts[0] {
	case "u", "r", "q":
		if len(parts) != 1 {
			return command{}, errUsage
		}
		return command{kind: parts[0]}, nil
	case "m", "h", "v":
		if len(parts) != 3 {
			return command{}, errUsage
		}
		row, err1 := strconv.Atoi(parts[1])
		col, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			return command{}, errUsage
		}
		return command{kind: parts[0], row: row, col: col}, nil
	}
	return command{}, errUsage
}

// renderBoard draws pawns as their ids, "|" for a blocked step sideways and
// "-" for a blocked step down.
func renderBoard(b *game.Board) string {
	var sb strings.Builder
	sb.WriteString("\n   ")
	for c := 0; c < b.Size; c++ {
		fmt.Fprintf(&sb, "%-2d", c%10)
	}
	sb.WriteString("\n")
	for r := 0; r < b.Size; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 0; c < b.Size; c++ {
			if id, ok := b.PlayerAt(game.Cell{Row: r, Col: c}); ok {
				fmt.Fprintf(&sb, "%d", id)
			} else {
				sb.WriteString(".")
			}
			if c < b.Size-1 && !game.IsEdgeOpen(b, r, c, r, c+1) {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
		if r == b.Size-1 {
			break
		}
		sb.WriteString("   ")
		for c := 0; c < b.Size; c++ {
			if !game.IsEdgeOpen(b, r, c, r+1, c) {
				sb.WriteString("- ")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
