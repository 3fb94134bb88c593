package mlb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jmo2498/MLB/internal/model"
)

type ScheduledGame struct {
	GamePk int
	Info   model.GameInfo
}

// LookupGame finds the game a team played on date (YYYY-MM-DD).
func (c *Client) LookupGame(ctx context.Context, date string, teamID int) (*ScheduledGame, error) {
	q := url.Values{}
	q.Set("sportId", "1")
	q.Set("date", date)
	q.Set("teamId", strconv.Itoa(teamID))

	var raw scheduleResponse
	if err := c.get(ctx, "/api/v1/schedule?"+q.Encode(), &raw); err != nil {
		slog.Error("error fetching schedule", "date", date, "team_id", teamID, "error", err)
		return nil, fmt.Errorf("schedule for team %d on %s: %w", teamID, date, ErrDataUnavailable)
	}

	game := firstGame(raw)
	if game == nil {
		slog.Info("no games found", "date", date, "team_id", teamID)
		return nil, fmt.Errorf("no game for team %d on %s: %w", teamID, date, ErrDataUnavailable)
	}

	return &ScheduledGame{
		GamePk: game.GamePk,
		Info:   gameInfo(*game),
	}, nil
}

// FormatRecord renders a league record as "W-L (pct)".
func FormatRecord(wins, losses int, pct string) string {
	return fmt.Sprintf("%d-%d (%s)", wins, losses, pct)
}

func firstGame(raw scheduleResponse) *scheduleGame {
	for _, d := range raw.Dates {
		for i := range d.Games {
			if d.Games[i].GamePk != 0 {
				return &d.Games[i]
			}
		}
	}
	return nil
}

func gameInfo(g scheduleGame) model.GameInfo {
	home, away := g.Teams.Home, g.Teams.Away

	info := model.GameInfo{
		Teams: model.Teams{
			Home: teamResult(home),
			Away: teamResult(away),
		},
		Venue:       g.Venue.Name,
		ContentLink: g.Content.Link,
	}

	switch {
	case home.Score > away.Score:
		info.Result = model.GameResult{Winner: home.Team.Name, Loser: away.Team.Name}
	case away.Score > home.Score:
		info.Result = model.GameResult{Winner: away.Team.Name, Loser: home.Team.Name}
	default:
		info.Result = model.GameResult{IsTie: true}
	}

	return info
}

// teamResult leaves Record empty when the schedule carries no league record.
func teamResult(t scheduleTeam) model.TeamResult {
	res := model.TeamResult{
		TeamID:   t.Team.ID,
		TeamName: t.Team.Name,
		Score:    t.Score,
	}
	if r := t.LeagueRecord; r != nil {
		res.Record = FormatRecord(r.Wins, r.Losses, r.Pct)
	}
	return res
}

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk int `json:"gamePk"`
	Teams  struct {
		Home scheduleTeam `json:"home"`
		Away scheduleTeam `json:"away"`
	} `json:"teams"`
	Venue   namedRef `json:"venue"`
	Content struct {
		Link string `json:"link"`
	} `json:"content"`
}

type scheduleTeam struct {
	Score        int           `json:"score"`
	LeagueRecord *leagueRecord `json:"leagueRecord"`
	Team         namedRef      `json:"team"`
}

type leagueRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}
