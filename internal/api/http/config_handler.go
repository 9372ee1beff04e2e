package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zyadmagdy11/Quoridor-Game/internal/config"
	"github.com/zyadmagdy11/Quoridor-Game/internal/game"
)

// GetConfigHandler returns the defaults new rooms are created with.
// @Summary Get room defaults
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"boardSize":   cfg.BoardSize,
			"playerCount": cfg.PlayerCount,
			"aiTier":      cfg.AITier,
			"minSize":     game.MinBoardSize,
			"maxSize":     game.MaxBoardSize,
			"walls":       game.InitialWalls(cfg.BoardSize, cfg.PlayerCount),
		})
	}
}
