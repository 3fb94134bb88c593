package model

import "time"

type StoredRecap struct {
	ID        int64
	GamePk    int
	TeamID    int
	GameDate  string
	Summary   GameSummary
	ModelUsed string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RecapJob struct {
	ID       string    `json:"id"`
	Date     string    `json:"date"`
	TeamID   int       `json:"team_id"`
	Attempts int       `json:"attempts"`
	QueuedAt time.Time `json:"queued_at"`
}

func NewStoredRecap(s GameSummary, modelUsed string) *StoredRecap {
	return &StoredRecap{
		GamePk:    s.GamePk,
		TeamID:    s.YourTeamID,
		GameDate:  s.Date,
		Summary:   s,
		ModelUsed: modelUsed,
	}
}
