package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmo2498/MLB/internal/model"
	"github.com/jmo2498/MLB/internal/recap"
)

type RecapBuilder interface {
	BuildRecap(ctx context.Context, date string, teamID int) (*model.GameSummary, error)
}

type GameHandler struct {
	builder RecapBuilder
}

func NewGameHandler(builder RecapBuilder) *GameHandler {
	return &GameHandler{builder: builder}
}

// GetGameData builds a fresh recap for ?date=YYYY-MM-DD&team_id=N.
func (h *GameHandler) GetGameData(c *gin.Context) {
	rawDate, rawTeamID := c.Query("date"), c.Query("team_id")
	if rawDate == "" || rawTeamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a date and team first"})
		return
	}

	date, teamID, err := recap.ParseRequest(rawDate, rawTeamID)
	if err != nil {
		slog.Warn("invalid game data request", "date", rawDate, "team_id", rawTeamID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.builder.BuildRecap(c.Request.Context(), date, teamID)
	if errors.Is(err, recap.ErrNoGame) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No game data found"})
		return
	}

	if err != nil {
		slog.Error("error building game recap", "date", date, "team_id", teamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
