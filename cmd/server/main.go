package main

import (
	"log"

	httpapi "github.com/zyadmagdy11/Quoridor-Game/internal/api/http"
	"github.com/zyadmagdy11/Quoridor-Game/internal/api/ws"
	"github.com/zyadmagdy11/Quoridor-Game/internal/config"
	"github.com/zyadmagdy11/Quoridor-Game/internal/room"
	"github.com/zyadmagdy11/Quoridor-Game/internal/store"
)

// @title Quoridor API
// @version 1.0
// @description REST and websocket API for Quoridor rooms with heuristic bots (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	r := httpapi.NewRouter(rm, cfg, hub)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
