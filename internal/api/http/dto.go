package http

import "github.com/zyadmagdy11/Quoridor-Game/internal/game"

// CreateRoomRequest represents the payload for /create-room. Every field is
// optional; tiers are "none", "easy", "medium" or "hard" per seat.
type CreateRoomRequest struct {
	BoardSize   int         `json:"boardSize"`
	PlayerCount int         `json:"playerCount"`
	Names       []string    `json:"names"`
	Tiers       []game.Tier `json:"tiers"`
}

// RoomRequest is the payload of actions that only name a room.
type RoomRequest struct {
	RoomCode string `json:"roomCode"`
}

// MoveRequest represents a pawn move.
type MoveRequest struct {
	RoomCode string `json:"roomCode"`
	Player   int    `json:"player"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// WallRequest represents a wall placement.
type WallRequest struct {
	RoomCode    string           `json:"roomCode"`
	Player      int              `json:"player"`
	Row         int              `json:"row"`
	Col         int              `json:"col"`
	Orientation game.Orientation `json:"orientation"`
}
