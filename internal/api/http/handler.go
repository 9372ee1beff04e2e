package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
	"github.com/zyadmagdy11/Quoridor-Game/internal/room"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, room.ErrNothingSaved):
		return http.StatusNotFound
	case errors.Is(err, game.ErrOutOfTurn), errors.Is(err, game.ErrGameOver), errors.Is(err, room.ErrNotBotTurn):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func findRoom(c *gin.Context, rm *room.Manager, code string) (*room.Room, bool) {
	rx, ok := rm.Get(code)
	if !ok {
		fail(c, room.ErrRoomNotFound)
	}
	return rx, ok
}

// bindRoom decodes the body into req and resolves its room.
func bindRoom(c *gin.Context, rm *room.Manager, req interface{}, code func() string) (*room.Room, bool) {
	if err := c.BindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return nil, false
	}
	return findRoom(c, rm, code())
}

func actionResponse(c *gin.Context, rm *room.Manager, rx *room.Room, res game.Result) {
	c.JSON(http.StatusOK, gin.H{
		"ok":     res.OK,
		"result": res,
		"room":   rm.View(rx),
		"rank":   rm.Rank(rx),
	})
}

// @Summary Create new room
// @Description Create a room; seat 1 is human and the rest are bots unless tiers are given
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest false "Room options"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if c.Request.ContentLength != 0 {
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
				return
			}
		}
		rx, err := rm.CreateRoom(room.RoomOptions(req))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "room": rm.View(rx)})
	}
}

// @Summary Get room state
// @Tags Room
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := findRoom(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rm.View(rx), "rank": rm.Rank(rx)})
	}
}

// @Summary Get possible pawn moves for a player
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param player query int true "Player number"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := findRoom(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		player, err := strconv.Atoi(c.Query("player"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player required"})
			return
		}
		moves, err := rm.LegalMoves(rx, player)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"moves": moves})
	}
}

// @Summary Preview a wall placement
// @Description Reports whether a wall could be placed, without spending it
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param row query int true "Wall row"
// @Param col query int true "Wall column"
// @Param orientation query string true "horizontal or vertical"
// @Success 200 {object} map[string]interface{}
// @Router /check-wall [get]
func CheckWallHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := findRoom(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		row, errR := strconv.Atoi(c.Query("row"))
		col, errC := strconv.Atoi(c.Query("col"))
		o, errO := game.ParseOrientation(c.Query("orientation"))
		if errR != nil || errC != nil || errO != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row, col and orientation required"})
			return
		}
		valid, reason := rm.CheckWall(rx, game.Wall{Row: row, Col: col, Orientation: o})
		c.JSON(http.StatusOK, gin.H{"ok": valid, "reason": reason})
	}
}

// @Summary Player moves a pawn
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		rx, ok := bindRoom(c, rm, &req, func() string { return req.RoomCode })
		if !ok {
			return
		}
		res, err := rm.Move(rx, req.Player, game.Cell{Row: req.Row, Col: req.Col})
		if err != nil {
			fail(c, err)
			return
		}
		actionResponse(c, rm, rx, res)
	}
}

// @Summary Player places a wall
// @Description A wall the rules reject comes back with ok false and a reason
// @Tags Game
// @Accept json
// @Produce json
// @Param request body WallRequest true "Wall data"
// @Success 200 {object} map[string]interface{}
// @Router /place-wall [post]
func PlaceWallHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WallRequest
		rx, ok := bindRoom(c, rm, &req, func() string { return req.RoomCode })
		if !ok {
			return
		}
		w := game.Wall{Row: req.Row, Col: req.Col, Orientation: req.Orientation}
		res, err := rm.PlaceWall(rx, req.Player, w)
		if err != nil {
			fail(c, err)
			return
		}
		actionResponse(c, rm, rx, res)
	}
}

// @Summary Let the bot to move play
// @Tags Game
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room"
// @Success 200 {object} map[string]interface{}
// @Router /move-bot [post]
func MoveBotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		rx, ok := bindRoom(c, rm, &req, func() string { return req.RoomCode })
		if !ok {
			return
		}
		a, res, err := rm.BotMove(rx)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"action": a,
			"result": res,
			"room":   rm.View(rx),
			"rank":   rm.Rank(rx),
		})
	}
}

// @Summary Undo the last action
// @Tags Game
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room"
// @Success 200 {object} map[string]interface{}
// @Router /undo [post]
func UndoHandler(rm *room.Manager) gin.HandlerFunc {
	return historyHandler(rm, rm.Undo)
}

// @Summary Redo the last undone action
// @Tags Game
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room"
// @Success 200 {object} map[string]interface{}
// @Router /redo [post]
func RedoHandler(rm *room.Manager) gin.HandlerFunc {
	return historyHandler(rm, rm.Redo)
}

func historyHandler(rm *room.Manager, step func(*room.Room) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		rx, ok := bindRoom(c, rm, &req, func() string { return req.RoomCode })
		if !ok {
			return
		}
		done := step(rx)
		c.JSON(http.StatusOK, gin.H{"ok": done, "room": rm.View(rx)})
	}
}

// @Summary Save the game
// @Description Keeps one snapshot per room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room"
// @Success 200 {object} map[string]interface{}
// @Router /save [post]
func SaveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		rx, ok := bindRoom(c, rm, &req, func() string { return req.RoomCode })
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"snapshot": rm.Save(rx)})
	}
}

// @Summary Load the saved game
// @Tags Room
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room"
// @Success 200 {object} map[string]interface{}
// @Router /load [post]
func LoadHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		rx, ok := bindRoom(c, rm, &req, func() string { return req.RoomCode })
		if !ok {
			return
		}
		if err := rm.Load(rx); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rm.View(rx)})
	}
}

// @Summary Start a new game in the room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room"
// @Success 200 {object} map[string]interface{}
// @Router /reset [post]
func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		rx, ok := bindRoom(c, rm, &req, func() string { return req.RoomCode })
		if !ok {
			return
		}
		if err := rm.Reset(rx); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rm.View(rx)})
	}
}
