package room

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrNotBotTurn   = errors.New("current seat is not a bot")
	ErrNothingSaved = errors.New("no saved game for room")
)

// Seat is one player slot. Player matches the pawn id on the board.
type Seat struct {
	ID     string    `json:"id"`
	Player int       `json:"player"`
	Name   string    `json:"name"`
	Tier   game.Tier `json:"tier"`
}

func (s Seat) IsBot() bool { return s.Tier != game.TierNone }

type Room struct {
	mu sync.Mutex

	ID        string
	Code      string
	Board     *game.Board
	Seats     []Seat
	CreatedAt time.Time

	agents map[int]game.Agent
	rng    *rand.Rand
}

func (r *Room) seat(player int) (Seat, bool) {
	for _, s := range r.Seats {
		if s.Player == player {
			return s, true
		}
	}
	return Seat{}, false
}

// View is the JSON form of a room, taken under the room lock.
type View struct {
	ID        string        `json:"id"`
	Code      string        `json:"code"`
	Seats     []Seat        `json:"seats"`
	State     game.Snapshot `json:"state"`
	Winner    int           `json:"winner,omitempty"`
	CanUndo   bool          `json:"canUndo"`
	CanRedo   bool          `json:"canRedo"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (r *Room) view() View {
	v := View{
		ID:        r.ID,
		Code:      r.Code,
		Seats:     append([]Seat(nil), r.Seats...),
		State:     r.Board.Snapshot(),
		CanUndo:   r.Board.CanUndo(),
		CanRedo:   r.Board.CanRedo(),
		CreatedAt: r.CreatedAt,
	}
	if r.Board.GameOver {
		v.Winner, _ = r.Board.CheckVictory()
	}
	return v
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	GetSnapshot(code string) (game.Snapshot, bool)
	SaveSnapshot(code string, s game.Snapshot)
}
