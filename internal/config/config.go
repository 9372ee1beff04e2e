package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
)

type Config struct {
	HTTPAddr string

	// Defaults for rooms created without explicit options.
	BoardSize   int
	PlayerCount int
	AITier      game.Tier

	// Seed feeds the easy tier's random source. Zero means clock based.
	Seed int64
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvTier(key string, def game.Tier) game.Tier {
	if v := os.Getenv(key); v != "" {
		if t, err := game.ParseTier(v); err == nil {
			return t
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		BoardSize:   getenvInt("BOARD_SIZE", game.DefaultBoardSize),
		PlayerCount: getenvInt("PLAYER_COUNT", 2),
		AITier:      getenvTier("AI_TIER", game.TierMedium),
		Seed:        int64(getenvInt("SEED", 0)),
	}
}

// Validate rejects settings no board can be built from.
func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("%w: empty HTTP_ADDR", game.ErrInvalidConfig)
	}
	if c.BoardSize < game.MinBoardSize || c.BoardSize > game.MaxBoardSize {
		return fmt.Errorf("%w: BOARD_SIZE %d outside %d..%d", game.ErrInvalidConfig, c.BoardSize, game.MinBoardSize, game.MaxBoardSize)
	}
	if c.PlayerCount != 2 && c.PlayerCount != 4 {
		return fmt.Errorf("%w: PLAYER_COUNT must be 2 or 4, got %d", game.ErrInvalidConfig, c.PlayerCount)
	}
	if c.AITier == game.TierNone {
		return fmt.Errorf("%w: AI_TIER must name a bot tier", game.ErrInvalidConfig)
	}
	return nil
}
