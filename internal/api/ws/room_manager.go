package ws

import (
	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
	"github.com/zyadmagdy11/Quoridor-Game/internal/room"
)

type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	Move(r *room.Room, player int, to game.Cell) (game.Result, error)
	PlaceWall(r *room.Room, player int, w game.Wall) (game.Result, error)
	BotMove(r *room.Room) (game.Action, game.Result, error)
	BotToMove(r *room.Room) bool
}
