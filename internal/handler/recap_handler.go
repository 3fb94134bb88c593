package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmo2498/MLB/internal/model"
	"github.com/jmo2498/MLB/internal/recap"
)

type RecapStore interface {
	GetRecap(gamePk, teamID int) (*model.StoredRecap, error)
	GetRecaps(limit, offset int) ([]model.StoredRecap, error)
	GetRecapTotal() (int, error)
}

type JobQueue interface {
	Enqueue(ctx context.Context, date string, teamID int) (*model.RecapJob, error)
}

type RecapHandler struct {
	repository RecapStore
	queue      JobQueue
}

func NewRecapHandler(repository RecapStore, queue JobQueue) *RecapHandler {
	return &RecapHandler{repository: repository, queue: queue}
}

func toRecapResponse(r model.StoredRecap) RecapResponse {
	return RecapResponse{
		ID:        r.ID,
		GamePk:    r.GamePk,
		TeamID:    r.TeamID,
		GameDate:  r.GameDate,
		ModelUsed: r.ModelUsed,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
		Recap:     r.Summary,
	}
}

func (h *RecapHandler) GetRecaps(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	recaps, err := h.repository.GetRecaps(limit, offset)
	if err != nil {
		slog.Error("error fetching recaps", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetRecapTotal()
	if err != nil {
		slog.Error("error fetching recap total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := RecapsResponse{
		Recaps: make([]RecapResponse, 0, len(recaps)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, r := range recaps {
		res.Recaps = append(res.Recaps, toRecapResponse(r))
	}

	c.JSON(http.StatusOK, res)
}

func (h *RecapHandler) GetRecap(c *gin.Context) {
	id := c.Param("gamePk")

	gamePk, err := strconv.Atoi(id)
	if err != nil || gamePk <= 0 {
		slog.Error("invalid game pk", "game_pk", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return
	}

	teamID, err := strconv.Atoi(c.Query("team_id"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id must be a positive integer"})
		return
	}

	stored, err := h.repository.GetRecap(gamePk, teamID)
	if err != nil {
		slog.Error("error fetching recap", "error", err, "game_pk", gamePk, "team_id", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recap not found"})
		return
	}

	c.JSON(http.StatusOK, toRecapResponse(*stored))
}

// CreateRecapJob queues a recap for the background worker.
func (h *RecapHandler) CreateRecapJob(c *gin.Context) {
	var req RecapJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	date, teamID, err := recap.ParseRequest(req.Date, strconv.Itoa(req.TeamID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.queue.Enqueue(c.Request.Context(), date, teamID)
	if err != nil {
		slog.Error("error queueing recap job", "error", err, "date", date, "team_id", teamID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Queue error"})
		return
	}

	slog.Info("recap job queued", "job_id", job.ID, "date", date, "team_id", teamID)

	c.JSON(http.StatusAccepted, RecapJobResponse{
		JobID:    job.ID,
		Date:     job.Date,
		TeamID:   job.TeamID,
		QueuedAt: job.QueuedAt.Format(time.RFC3339),
	})
}
