package mlb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmo2498/MLB/internal/model"
)

// LiveFeed is the subset of /feed/live the recap needs. Every field is optional
// upstream; absent objects decode to zero values.
type LiveFeed struct {
	GamePk   int      `json:"gamePk"`
	GameData gameData `json:"gameData"`
	LiveData liveData `json:"liveData"`
}

func (c *Client) FetchLiveFeed(ctx context.Context, gamePk int) (*LiveFeed, error) {
	var feed LiveFeed
	if err := c.get(ctx, fmt.Sprintf("/api/v1.1/game/%d/feed/live", gamePk), &feed); err != nil {
		slog.Error("error fetching game feed", "game_pk", gamePk, "error", err)
		return nil, fmt.Errorf("live feed for game %d: %w", gamePk, ErrDataUnavailable)
	}
	return &feed, nil
}

func (f *LiveFeed) Plays() []Play {
	return f.LiveData.Plays.AllPlays
}

func (f *LiveFeed) Linescore() Linescore {
	return f.LiveData.Linescore
}

// Details extracts venue, team and probable pitcher metadata.
func (f *LiveFeed) Details() model.DetailedInfo {
	gd := f.GameData
	return model.DetailedInfo{
		Date:        gd.Datetime.OriginalDate,
		Time:        gd.Datetime.Time,
		Venue:       gd.Venue.Name,
		VenueID:     gd.Venue.ID,
		DayNight:    gd.Datetime.DayNight,
		HomeTeam:    gd.Teams.Home.Name,
		HomeTeamID:  gd.Teams.Home.ID,
		AwayTeam:    gd.Teams.Away.Name,
		AwayTeamID:  gd.Teams.Away.ID,
		HomePitcher: gd.ProbablePitchers.Home.toPlayer(),
		AwayPitcher: gd.ProbablePitchers.Away.toPlayer(),
		Attendance:  gd.GameInfo.Attendance,
	}
}

type gameData struct {
	Datetime struct {
		OriginalDate string `json:"originalDate"`
		Time         string `json:"time"`
		DayNight     string `json:"dayNight"`
	} `json:"datetime"`
	Venue namedRef `json:"venue"`
	Teams struct {
		Home namedRef `json:"home"`
		Away namedRef `json:"away"`
	} `json:"teams"`
	ProbablePitchers struct {
		Home *PersonRef `json:"home"`
		Away *PersonRef `json:"away"`
	} `json:"probablePitchers"`
	GameInfo struct {
		Attendance *int `json:"attendance"`
	} `json:"gameInfo"`
}

type liveData struct {
	Plays struct {
		AllPlays []Play `json:"allPlays"`
	} `json:"plays"`
	Linescore Linescore `json:"linescore"`
}

type Play struct {
	Result     PlayResult  `json:"result"`
	About      PlayAbout   `json:"about"`
	Matchup    PlayMatchup `json:"matchup"`
	PlayEvents []PlayEvent `json:"playEvents"`
}

type PlayResult struct {
	EventType   string `json:"eventType"`
	Description string `json:"description"`
	RBI         int    `json:"rbi"`
}

type PlayAbout struct {
	Inning           int     `json:"inning"`
	IsTopInning      bool    `json:"isTopInning"`
	IsScoringPlay    bool    `json:"isScoringPlay"`
	CaptivatingIndex float64 `json:"captivatingIndex"`
}

type PlayMatchup struct {
	Batter  PersonRef `json:"batter"`
	Pitcher PersonRef `json:"pitcher"`
}

type PlayEvent struct {
	PlayID string `json:"playId"`
}

type PersonRef struct {
	ID       *int   `json:"id"`
	FullName string `json:"fullName"`
}

func (p PersonRef) player() model.Player {
	return model.Player{ID: p.ID, FullName: p.FullName}
}

func (p *PersonRef) toPlayer() *model.Player {
	if p == nil {
		return nil
	}
	pl := p.player()
	return &pl
}
