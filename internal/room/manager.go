package room

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zyadmagdy11/Quoridor-Game/internal/config"
	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster

	seedMu sync.Mutex
	seeds  *rand.Rand
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Manager{store: s, cfg: cfg, hub: hub, seeds: rand.New(rand.NewSource(seed))}
}

// SetHub wires the broadcaster after construction; the hub and the manager
// need each other.
func (m *Manager) SetHub(hub Broadcaster) {
	log.Printf("room manager: broadcaster set to %T", hub)
	m.hub = hub
}

type RoomOptions struct {
	BoardSize   int         `json:"boardSize"`
	PlayerCount int         `json:"playerCount"`
	Names       []string    `json:"names"`
	Tiers       []game.Tier `json:"tiers"`
}

// CreateRoom sets up a fresh game. Zero sizes fall back to the configured
// defaults; without explicit tiers seat 1 is human and every other seat is
// a bot of the configured tier.
func (m *Manager) CreateRoom(opts RoomOptions) (*Room, error) {
	size, count := opts.BoardSize, opts.PlayerCount
	if size == 0 {
		size = m.cfg.BoardSize
	}
	if count == 0 {
		count = m.cfg.PlayerCount
	}
	board, err := game.NewBoard(size, count)
	if err != nil {
		return nil, err
	}
	if len(opts.Names) > count || len(opts.Tiers) > count {
		return nil, fmt.Errorf("%w: more seats than players", game.ErrInvalidConfig)
	}

	r := &Room{
		ID:        uuid.NewString(),
		Code:      m.uniqueCode(),
		Board:     board,
		CreatedAt: time.Now(),
		agents:    map[int]game.Agent{},
		rng:       m.newRand(),
	}
	for p := 1; p <= count; p++ {
		seat := Seat{ID: uuid.NewString(), Player: p, Name: fmt.Sprintf("Player %d", p)}
		if p <= len(opts.Names) && opts.Names[p-1] != "" {
			seat.Name = opts.Names[p-1]
		}
		switch {
		case len(opts.Tiers) > 0 && p <= len(opts.Tiers):
			seat.Tier = opts.Tiers[p-1]
		case len(opts.Tiers) == 0 && p > 1:
			seat.Tier = m.cfg.AITier
		}
		if seat.IsBot() {
			agent, err := game.NewAgent(seat.Tier, r.rng)
			if err != nil {
				return nil, err
			}
			r.agents[p] = agent
		}
		r.Seats = append(r.Seats, seat)
	}

	m.store.SaveRoom(r)
	log.Printf("room %s created: %dx%d board, %d players", r.Code, size, size, count)
	return r, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) View(r *Room) View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view()
}

func (m *Manager) LegalMoves(r *Room, player int) ([]game.Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seat(player); !ok {
		return nil, fmt.Errorf("%w: no player %d", game.ErrOutOfTurn, player)
	}
	return game.LegalMoves(r.Board, player), nil
}

// CheckWall previews a placement without spending a wall.
func (m *Manager) CheckWall(r *Room, w game.Wall) (bool, game.Reason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return game.CheckPlacement(r.Board, w)
}

func (m *Manager) Move(r *Room, player int, to game.Cell) (game.Result, error) {
	return m.play(r, game.MoveAction(player, to), "move")
}

func (m *Manager) PlaceWall(r *Room, player int, w game.Wall) (game.Result, error) {
	return m.play(r, game.WallAction(player, w), "wall")
}

func (m *Manager) play(r *Room, a game.Action, event string) (game.Result, error) {
	r.mu.Lock()
	res, err := r.Board.Play(a)
	if err != nil || !res.OK {
		r.mu.Unlock()
		if err != nil {
			log.Printf("room %s: %s rejected: %v", r.Code, a, err)
		} else {
			log.Printf("room %s: %s rejected: %s", r.Code, a, res.Reason)
		}
		return res, err
	}
	v := r.view()
	r.mu.Unlock()

	m.committed(r, event, a, res, v)
	return res, nil
}

// BotMove lets the seat to move decide and play. A wall the rules turn down
// is replaced by the first legal pawn move.
func (m *Manager) BotMove(r *Room) (game.Action, game.Result, error) {
	r.mu.Lock()
	if r.Board.GameOver {
		r.mu.Unlock()
		return game.Action{}, game.Result{}, game.ErrGameOver
	}
	actor := r.Board.Current
	agent, ok := r.agents[actor]
	if !ok {
		r.mu.Unlock()
		return game.Action{}, game.Result{}, fmt.Errorf("%w: player %d", ErrNotBotTurn, actor)
	}

	a := agent.Decide(r.Board)
	res, err := r.Board.Play(a)
	if err == nil && !res.OK {
		log.Printf("room %s: bot %s rejected (%s), falling back to a move", r.Code, a, res.Reason)
		if moves := game.LegalMoves(r.Board, actor); len(moves) > 0 {
			a = game.MoveAction(actor, moves[0])
			res, err = r.Board.Play(a)
		} else {
			err = fmt.Errorf("%w for player %d", game.ErrNoLegalAction, actor)
		}
	}
	if err != nil {
		r.mu.Unlock()
		log.Printf("room %s: bot P%d failed: %v", r.Code, actor, err)
		return a, res, err
	}
	v := r.view()
	r.mu.Unlock()

	m.committed(r, "bot_move", a, res, v)
	return a, res, nil
}

// BotToMove reports whether the seat to move is played by an agent.
func (m *Manager) BotToMove(r *Room) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.agents[r.Board.Current]
	return ok && !r.Board.GameOver
}

func (m *Manager) committed(r *Room, event string, a game.Action, res game.Result, v View) {
	log.Printf("room %s: %s", r.Code, a)
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, event, gin.H{"action": a, "result": res, "room": v})
	if res.Winner != 0 {
		log.Printf("room %s: player %d wins", r.Code, res.Winner)
		m.hub.Broadcast(r.Code, "game_over", gin.H{"winner": res.Winner, "room": v})
	}
}

func (m *Manager) Undo(r *Room) bool {
	return m.step(r, "undo", (*game.Board).Undo)
}

func (m *Manager) Redo(r *Room) bool {
	return m.step(r, "redo", (*game.Board).Redo)
}

func (m *Manager) step(r *Room, event string, fn func(*game.Board) bool) bool {
	r.mu.Lock()
	ok := fn(r.Board)
	v := r.view()
	r.mu.Unlock()
	if !ok {
		return false
	}
	log.Printf("room %s: %s", r.Code, event)
	m.stateChanged(r, event, v)
	return true
}

// Save keeps one snapshot per room, replacing any earlier one.
func (m *Manager) Save(r *Room) game.Snapshot {
	r.mu.Lock()
	s := r.Board.Snapshot()
	r.mu.Unlock()
	m.store.SaveSnapshot(r.Code, s)
	log.Printf("room %s: game saved", r.Code)
	return s
}

func (m *Manager) Load(r *Room) error {
	s, ok := m.store.GetSnapshot(r.Code)
	if !ok {
		return fmt.Errorf("%w %s", ErrNothingSaved, r.Code)
	}
	r.mu.Lock()
	if s.PlayerCount != len(r.Seats) {
		r.mu.Unlock()
		return fmt.Errorf("%w: %d players saved, room has %d seats", game.ErrCorruptSnapshot, s.PlayerCount, len(r.Seats))
	}
	if err := r.Board.Restore(s); err != nil {
		r.mu.Unlock()
		log.Printf("room %s: load rejected: %v", r.Code, err)
		return err
	}
	v := r.view()
	r.mu.Unlock()
	log.Printf("room %s: game loaded", r.Code)
	m.stateChanged(r, "load", v)
	return nil
}

// Reset starts a new game on the same board size with the same seats.
func (m *Manager) Reset(r *Room) error {
	r.mu.Lock()
	b, err := game.NewBoard(r.Board.Size, r.Board.PlayerCount)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.Board = b
	v := r.view()
	r.mu.Unlock()
	log.Printf("room %s: new game", r.Code)
	m.stateChanged(r, "reset", v)
	return nil
}

func (m *Manager) stateChanged(r *Room, event string, v View) {
	m.store.SaveRoom(r)
	m.hub.Broadcast(r.Code, event, gin.H{"room": v})
}

type RankRow struct {
	Player    int    `json:"player"`
	Name      string `json:"name"`
	Distance  int    `json:"distance"`
	WallsLeft int    `json:"wallsLeft"`
}

// Rank orders seats by remaining distance to their goal, closest first.
func (m *Manager) Rank(r *Room) []RankRow {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RankRow, 0, len(r.Seats))
	for _, s := range r.Seats {
		out = append(out, RankRow{
			Player:    s.Player,
			Name:      s.Name,
			Distance:  game.ShortestDistance(r.Board, s.Player),
			WallsLeft: r.Board.WallsLeft[s.Player],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Player < out[j].Player
	})
	return out
}

func (m *Manager) newRand() *rand.Rand {
	m.seedMu.Lock()
	defer m.seedMu.Unlock()
	return rand.New(rand.NewSource(m.seeds.Int63()))
}

func (m *Manager) uniqueCode() string {
	for {
		code := randCode(6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
