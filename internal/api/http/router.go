package http

import (
	"github.com/gin-gonic/gin"

	"github.com/zyadmagdy11/Quoridor-Game/internal/api/ws"
	"github.com/zyadmagdy11/Quoridor-Game/internal/config"
	"github.com/zyadmagdy11/Quoridor-Game/internal/room"
)

func NewRouter(rm *room.Manager, cfg config.Config, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.GET("/state", StateHandler(rm))
	r.POST("/save", SaveHandler(rm))
	r.POST("/load", LoadHandler(rm))
	r.POST("/reset", ResetHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.GET("/check-wall", CheckWallHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/place-wall", PlaceWallHandler(rm))
	r.POST("/move-bot", MoveBotHandler(rm))
	r.POST("/undo", UndoHandler(rm))
	r.POST("/redo", RedoHandler(rm))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", GetConfigHandler(cfg))

	return r
}
