package model

type GameSummary struct {
	Date            string       `json:"date"`
	YourTeamID      int          `json:"your_team_id"`
	GamePk          int          `json:"game_pk"`
	GameInfo        GameInfo     `json:"game_info"`
	DetailedInfo    DetailedInfo `json:"detailed_info"`
	LineScore       LineScore    `json:"line_score"`
	Highlights      []Highlight  `json:"highlights"`
	ContentData     ContentData  `json:"content_data"`
	DetailedSummary string       `json:"detailed_summary"`
	ConciseSummary  string       `json:"concise_summary"`
}

type GameInfo struct {
	Teams       Teams      `json:"teams"`
	Result      GameResult `json:"result"`
	Venue       string     `json:"venue"`
	ContentLink string     `json:"content_link"`
}

type Teams struct {
	Home TeamResult `json:"home"`
	Away TeamResult `json:"away"`
}

type TeamResult struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Score    int    `json:"score"`
	Record   string `json:"record"`
}

// GameResult names the winner and loser. Both are empty when IsTie is set.
type GameResult struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
	IsTie  bool   `json:"is_tie"`
}

type DetailedInfo struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Venue       string  `json:"venue"`
	VenueID     int     `json:"venue_id"`
	DayNight    string  `json:"day_night"`
	HomeTeam    string  `json:"home_team"`
	HomeTeamID  int     `json:"home_team_id"`
	AwayTeam    string  `json:"away_team"`
	AwayTeamID  int     `json:"away_team_id"`
	HomePitcher *Player `json:"home_pitcher"`
	AwayPitcher *Player `json:"away_pitcher"`
	Attendance  *int    `json:"attendance"`
}

type Player struct {
	ID       *int   `json:"id"`
	FullName string `json:"fullName"`
}

type Highlight struct {
	Inning      int     `json:"inning"`
	IsTop       bool    `json:"isTop"`
	Description string  `json:"description"`
	EventType   string  `json:"event_type"`
	PlayID      *string `json:"playId"`
	Score       int     `json:"score"`
	Batter      Player  `json:"batter"`
	Pitcher     Player  `json:"pitcher"`
}

type LineScore struct {
	CurrentInning    string       `json:"current_inning"`
	ScheduledInnings int          `json:"scheduled_innings"`
	Innings          []InningLine `json:"innings"`
	Totals           LineTotals   `json:"totals"`
}

type InningLine struct {
	Inning int      `json:"inning"`
	Home   TeamLine `json:"home"`
	Away   TeamLine `json:"away"`
}

type LineTotals struct {
	Home TeamLine `json:"home"`
	Away TeamLine `json:"away"`
}

type TeamLine struct {
	Runs       int `json:"runs"`
	Hits       int `json:"hits"`
	Errors     int `json:"errors"`
	LeftOnBase int `json:"left_on_base"`
}

func (t *TeamLine) Add(o TeamLine) {
	t.Runs += o.Runs
	t.Hits += o.Hits
	t.Errors += o.Errors
	t.LeftOnBase += o.LeftOnBase
}

type ContentData struct {
	Headlines               []string `json:"headlines"`
	SEOTitles               []string `json:"seo_titles"`
	ClosestVideoURL         *string  `json:"closest_video_url"`
	ClosestVideoTitle       *string  `json:"closest_video_title"`
	ClosestVideoDescription *string  `json:"closest_video_description"`
}
