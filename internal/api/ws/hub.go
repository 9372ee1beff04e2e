package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
	"github.com/zyadmagdy11/Quoridor-Game/internal/room"
)

type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

// SetRoomManager wires the manager after construction; the hub and the
// manager need each other.
func (h *Hub) SetRoomManager(rm RoomManager) {
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type actionData struct {
	Player      int              `json:"player"`
	Row         int              `json:"row"`
	Col         int              `json:"col"`
	Orientation game.Orientation `json:"orientation"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	rx, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	log.Printf("WebSocket connection established for room: %s", roomCode)

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		if len(h.rooms[roomCode]) == 0 {
			delete(h.rooms, roomCode)
		}
		h.mu.Unlock()
		_ = conn.Close()
		log.Printf("WebSocket connection closed for room: %s", roomCode)
	}()

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading WebSocket message: %v", err)
			}
			return
		}
		if err := h.handle(rx, msg); err != nil {
			log.Printf("room %s: %s failed: %v", roomCode, msg.Action, err)
			h.send(conn, "error", gin.H{"action": msg.Action, "error": err.Error()})
		}
	}
}

// handle applies one client action. Successful actions reach every client
// through the manager's broadcasts.
func (h *Hub) handle(rx *room.Room, msg message) error {
	var d actionData
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &d); err != nil {
			return err
		}
	}

	switch msg.Action {
	case "move":
		if _, err := h.roomManager.Move(rx, d.Player, game.Cell{Row: d.Row, Col: d.Col}); err != nil {
			return err
		}
	case "wall":
		res, err := h.roomManager.PlaceWall(rx, d.Player, game.Wall{Row: d.Row, Col: d.Col, Orientation: d.Orientation})
		if err != nil {
			return err
		}
		if !res.OK {
			return fmt.Errorf("wall rejected: %s", res.Reason)
		}
	case "bot_move":
		if _, _, err := h.roomManager.BotMove(rx); err != nil {
			return err
		}
		return nil
	default:
		return game.ErrUnknownAction
	}

	if h.roomManager.BotToMove(rx) {
		go h.playBots(rx)
	}
	return nil
}

// playBots lets consecutive bot seats move until a human is up or the game
// ends.
func (h *Hub) playBots(rx *room.Room) {
	for h.roomManager.BotToMove(rx) {
		if _, _, err := h.roomManager.BotMove(rx); err != nil {
			log.Printf("room %s: failed to process bot move: %v", rx.Code, err)
			return
		}
	}
}

func (h *Hub) send(conn *websocket.Conn, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(gin.H{"action": action, "data": data}); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	out := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(out); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}
