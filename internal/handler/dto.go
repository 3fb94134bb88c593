package handler

import "github.com/jmo2498/MLB/internal/model"

type RecapResponse struct {
	ID        int64             `json:"id"`
	GamePk    int               `json:"game_pk"`
	TeamID    int               `json:"team_id"`
	GameDate  string            `json:"game_date"`
	ModelUsed string            `json:"model_used"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
	Recap     model.GameSummary `json:"recap"`
}

type RecapsResponse struct {
	Recaps []RecapResponse `json:"recaps"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type RecapJobRequest struct {
	Date   string `json:"date"`
	TeamID int    `json:"team_id"`
}

type RecapJobResponse struct {
	JobID    string `json:"job_id"`
	Date     string `json:"date"`
	TeamID   int    `json:"team_id"`
	QueuedAt string `json:"queued_at"`
}
