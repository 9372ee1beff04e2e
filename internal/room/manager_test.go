package room

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/zyadmagdy11/Quoridor-Game/internal/config"
	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
)

type fakeStore struct {
	rooms     map[string]*Room
	snapshots map[string]game.Snapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: map[string]*Room{}, snapshots: map[string]game.Snapshot{}}
}

func (s *fakeStore) GetRoom(code string) (*Room, bool) {
	r, ok := s.rooms[code]
	return r, ok
}

func (s *fakeStore) SaveRoom(r *Room) { s.rooms[r.Code] = r }

func (s *fakeStore) GetSnapshot(code string) (game.Snapshot, bool) {
	snap, ok := s.snapshots[code]
	return snap, ok
}

func (s *fakeStore) SaveSnapshot(code string, snap game.Snapshot) { s.snapshots[code] = snap }

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) Broadcast(_ string, action string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, action)
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

type scriptedAgent struct{ a game.Action }

func (s scriptedAgent) Decide(*game.Board) game.Action { return s.a }

var testCfg = config.Config{HTTPAddr: ":0", BoardSize: 9, PlayerCount: 2, AITier: game.TierMedium, Seed: 1}

func newTestManager(t *testing.T) (*Manager, *fakeStore, *recorder) {
	t.Helper()
	st, rec := newFakeStore(), &recorder{}
	return NewManager(st, testCfg, rec), st, rec
}

func mustRoom(t *testing.T, m *Manager, opts RoomOptions) *Room {
	t.Helper()
	r, err := m.CreateRoom(opts)
	if err != nil {
		t.Fatalf("CreateRoom(%+v): %v", opts, err)
	}
	return r
}

func TestCreateRoomDefaults(t *testing.T) {
	m, st, _ := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{})

	if len(r.Code) != 6 || r.ID == "" {
		t.Fatalf("code %q id %q", r.Code, r.ID)
	}
	if got, ok := st.GetRoom(r.Code); !ok || got != r {
		t.Fatalf("room not stored")
	}
	if r.Board.Size != 9 || r.Board.PlayerCount != 2 {
		t.Fatalf("board %dx%d with %d players", r.Board.Size, r.Board.Size, r.Board.PlayerCount)
	}
	if len(r.Seats) != 2 || r.Seats[0].IsBot() || r.Seats[1].Tier != game.TierMedium {
		t.Fatalf("seats = %+v", r.Seats)
	}
	if r.Seats[0].Name != "Player 1" || r.Seats[0].ID == r.Seats[1].ID {
		t.Fatalf("seats = %+v", r.Seats)
	}
}

func TestCreateRoomWithOptions(t *testing.T) {
	m, _, _ := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{
		BoardSize:   7,
		PlayerCount: 4,
		Names:       []string{"Ana", "", "Bo"},
		Tiers:       []game.Tier{game.TierNone, game.TierEasy, game.TierHard},
	})
	names := []string{r.Seats[0].Name, r.Seats[1].Name, r.Seats[2].Name, r.Seats[3].Name}
	if want := []string{"Ana", "Player 2", "Bo", "Player 4"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	if len(r.agents) != 2 || r.agents[2] == nil || r.agents[3] == nil {
		t.Fatalf("agents = %v", r.agents)
	}
	if r.Seats[3].IsBot() {
		t.Fatalf("seat 4 should be human when tiers are given")
	}
}

func TestCreateRoomRejectsBadOptions(t *testing.T) {
	m, _, _ := newTestManager(t)
	bad := []RoomOptions{
		{BoardSize: 4},
		{PlayerCount: 3},
		{Names: []string{"a", "b", "c"}},
		{Tiers: []game.Tier{game.TierNone, game.TierEasy, game.TierEasy}},
	}
	for _, opts := range bad {
		if _, err := m.CreateRoom(opts); !errors.Is(err, game.ErrInvalidConfig) {
			t.Errorf("CreateRoom(%+v) err = %v, want ErrInvalidConfig", opts, err)
		}
	}
}

func TestMoveAndWall(t *testing.T) {
	m, _, rec := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{Tiers: []game.Tier{game.TierNone, game.TierNone}})

	if _, err := m.Move(r, 2, game.Cell{Row: 7, Col: 4}); !errors.Is(err, game.ErrOutOfTurn) {
		t.Fatalf("Move out of turn err = %v", err)
	}
	if res, err := m.Move(r, 1, game.Cell{Row: 1, Col: 4}); err != nil || !res.OK {
		t.Fatalf("Move = %+v %v", res, err)
	}
	wall := game.Wall{Row: 3, Col: 3, Orientation: game.Horizontal}
	if res, err := m.PlaceWall(r, 2, wall); err != nil || res.Reason != game.ReasonPlaced {
		t.Fatalf("PlaceWall = %+v %v", res, err)
	}
	if got := rec.take(); !reflect.DeepEqual(got, []string{"move", "wall"}) {
		t.Fatalf("events = %v", got)
	}

	res, err := m.PlaceWall(r, 1, wall)
	if err != nil || res.OK || res.Reason != game.ReasonWallExists {
		t.Fatalf("duplicate PlaceWall = %+v %v", res, err)
	}
	if got := rec.take(); len(got) != 0 {
		t.Fatalf("rejected wall broadcast %v", got)
	}
	if ok, reason := m.CheckWall(r, wall); ok || reason != game.ReasonWallExists {
		t.Fatalf("CheckWall = %v,%q", ok, reason)
	}

	moves, err := m.LegalMoves(r, 1)
	if err != nil || len(moves) != 4 {
		t.Fatalf("LegalMoves = %v %v", moves, err)
	}
	if _, err := m.LegalMoves(r, 3); err == nil {
		t.Fatalf("LegalMoves for a missing player should fail")
	}
}

func TestBotMove(t *testing.T) {
	m, _, rec := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{})

	if _, _, err := m.BotMove(r); !errors.Is(err, ErrNotBotTurn) {
		t.Fatalf("BotMove on a human turn err = %v", err)
	}
	if m.BotToMove(r) {
		t.Fatalf("BotToMove true on a human turn")
	}
	if _, err := m.Move(r, 1, game.Cell{Row: 1, Col: 4}); err != nil {
		t.Fatal(err)
	}
	if !m.BotToMove(r) {
		t.Fatalf("BotToMove false on the bot's turn")
	}
	rec.take()

	a, res, err := m.BotMove(r)
	if err != nil || !res.OK || a.Player != 2 {
		t.Fatalf("BotMove = %s %+v %v", a, res, err)
	}
	if r.Board.Current != 1 {
		t.Fatalf("turn did not pass back to the human")
	}
	if got := rec.take(); !reflect.DeepEqual(got, []string{"bot_move"}) {
		t.Fatalf("events = %v", got)
	}
}

func TestBotMoveFallsBackWhenWallIsRejected(t *testing.T) {
	m, _, _ := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{})
	wall := game.Wall{Row: 3, Col: 3, Orientation: game.Horizontal}
	if _, err := m.PlaceWall(r, 1, wall); err != nil {
		t.Fatal(err)
	}
	r.agents[2] = scriptedAgent{game.WallAction(2, wall)}

	a, res, err := m.BotMove(r)
	if err != nil || !res.OK {
		t.Fatalf("BotMove = %s %+v %v", a, res, err)
	}
	if want := game.MoveAction(2, game.Cell{Row: 7, Col: 4}); a != want {
		t.Fatalf("fallback = %s, want %s", a, want)
	}
	if r.Board.WallsLeft[2] != 10 {
		t.Fatalf("rejected wall spent budget")
	}
}

func TestBotMoveSurfacesNoLegalAction(t *testing.T) {
	m, _, _ := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{Tiers: []game.Tier{game.TierHard, game.TierHard}})
	r.agents[1] = scriptedAgent{game.Action{Kind: game.ActionNone, Player: 1}}
	if _, _, err := m.BotMove(r); !errors.Is(err, game.ErrNoLegalAction) {
		t.Fatalf("BotMove err = %v, want ErrNoLegalAction", err)
	}
}

func TestUndoRedo(t *testing.T) {
	m, _, rec := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{})
	if m.Undo(r) || m.Redo(r) {
		t.Fatalf("fresh room has nothing to undo or redo")
	}
	if _, err := m.Move(r, 1, game.Cell{Row: 1, Col: 4}); err != nil {
		t.Fatal(err)
	}
	rec.take()
	if !m.Undo(r) || r.Board.Positions[1] != (game.Cell{Row: 0, Col: 4}) || r.Board.Current != 1 {
		t.Fatalf("undo did not restore the opening position")
	}
	if !m.Redo(r) || r.Board.Positions[1] != (game.Cell{Row: 1, Col: 4}) {
		t.Fatalf("redo did not replay the move")
	}
	if got := rec.take(); !reflect.DeepEqual(got, []string{"undo", "redo"}) {
		t.Fatalf("events = %v", got)
	}
}

func TestSaveLoadReset(t *testing.T) {
	m, st, _ := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{Tiers: []game.Tier{game.TierNone, game.TierNone}})

	if err := m.Load(r); !errors.Is(err, ErrNothingSaved) {
		t.Fatalf("Load without a save err = %v", err)
	}
	if _, err := m.Move(r, 1, game.Cell{Row: 1, Col: 4}); err != nil {
		t.Fatal(err)
	}
	saved := m.Save(r)

	if err := m.Reset(r); err != nil {
		t.Fatal(err)
	}
	if r.Board.Positions[1] != (game.Cell{Row: 0, Col: 4}) || r.Board.CanUndo() {
		t.Fatalf("reset did not start a new game")
	}

	if err := m.Load(r); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(r.Board.Snapshot(), saved) {
		t.Fatalf("loaded state differs from the save")
	}

	corrupt := saved
	corrupt.Current = 7
	st.SaveSnapshot(r.Code, corrupt)
	if err := m.Load(r); !errors.Is(err, game.ErrCorruptSnapshot) {
		t.Fatalf("Load corrupt err = %v", err)
	}
	if !reflect.DeepEqual(r.Board.Snapshot(), saved) {
		t.Fatalf("corrupt load changed the board")
	}

	four, err := game.NewBoard(9, 4)
	if err != nil {
		t.Fatal(err)
	}
	st.SaveSnapshot(r.Code, four.Snapshot())
	if err := m.Load(r); !errors.Is(err, game.ErrCorruptSnapshot) {
		t.Fatalf("Load with a different player count err = %v", err)
	}
}

func TestRankAndView(t *testing.T) {
	m, _, _ := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{Names: []string{"Ana", "Bo"}})
	if _, err := m.Move(r, 1, game.Cell{Row: 1, Col: 4}); err != nil {
		t.Fatal(err)
	}
	rank := m.Rank(r)
	want := []RankRow{
		{Player: 1, Name: "Ana", Distance: 7, WallsLeft: 10},
		{Player: 2, Name: "Bo", Distance: 8, WallsLeft: 10},
	}
	if !reflect.DeepEqual(rank, want) {
		t.Fatalf("Rank = %+v, want %+v", rank, want)
	}

	v := m.View(r)
	if v.Code != r.Code || !v.CanUndo || v.CanRedo || v.Winner != 0 || v.State.Current != 2 {
		t.Fatalf("View = %+v", v)
	}
}

func TestViewReportsWinner(t *testing.T) {
	m, _, rec := newTestManager(t)
	r := mustRoom(t, m, RoomOptions{BoardSize: 5, Tiers: []game.Tier{game.TierNone, game.TierNone}})
	r.Board.SetPosition(1, game.Cell{Row: 3, Col: 0})
	res, err := m.Move(r, 1, game.Cell{Row: 4, Col: 0})
	if err != nil || res.Winner != 1 {
		t.Fatalf("Move = %+v %v", res, err)
	}
	if v := m.View(r); v.Winner != 1 || !v.State.GameOver {
		t.Fatalf("View = %+v", v)
	}
	if got := rec.take(); !reflect.DeepEqual(got, []string{"move", "game_over"}) {
		t.Fatalf("events = %v", got)
	}
	if m.BotToMove(r) {
		t.Fatalf("no bot should move after the game ends")
	}
}
