package mlb

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/assert/v2"
)

func play(eventType string, rbi int, scoring bool, captivating float64) Play {
	return Play{
		Result: PlayResult{EventType: eventType, RBI: rbi, Description: eventType},
		About:  PlayAbout{IsScoringPlay: scoring, CaptivatingIndex: captivating},
	}
}

func TestScorePlay(t *testing.T) {
	tests := []struct {
		name string
		play Play
		want int
	}{
		{name: "home run", play: play("home_run", 0, false, 0), want: 5},
		{name: "event type is case insensitive", play: play("HOME_RUN", 0, false, 0), want: 5},
		{name: "double with rbi", play: play("double", 1, false, 0), want: 5},
		{name: "double play", play: play("double_play", 0, false, 0), want: 4},
		{name: "triple", play: play("triple", 0, false, 0), want: 4},
		{name: "strikeout", play: play("strikeout", 0, false, 0), want: 3},
		{name: "stolen base", play: play("stolen_base", 0, false, 0), want: 3},
		{name: "walk scoring run", play: play("walk", 1, true, 0), want: 6},
		{name: "single scores base", play: play("single", 0, false, 0), want: 1},
		{name: "single with rbi and scoring", play: play("single", 2, true, 0), want: 4},
		{name: "captivating index at threshold", play: play("field_out", 0, false, 50), want: 1},
		{name: "captivating index above threshold", play: play("field_out", 0, false, 51), want: 2},
		{name: "everything", play: play("home_run", 4, true, 99), want: 9},
		{name: "empty play", play: Play{}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScorePlay(tt.play))
		})
	}
}

func TestScorePlay_IgnoresUnrelatedFields(t *testing.T) {
	id := 660271
	a := play("triple", 2, true, 70)
	b := a
	b.Result.Description = "something else entirely"
	b.About.Inning = 9
	b.Matchup.Batter = PersonRef{ID: &id, FullName: "Shohei Ohtani"}
	b.PlayEvents = []PlayEvent{{PlayID: "abc"}}

	assert.Equal(t, ScorePlay(a), ScorePlay(a))
	assert.Equal(t, ScorePlay(a), ScorePlay(b))
}

func TestRankHighlights_FiltersAndOrders(t *testing.T) {
	plays := []Play{
		play("single", 0, false, 0),     // 1
		play("strikeout", 0, false, 0),  // 3
		play("home_run", 1, true, 60),   // 9
		play("field_out", 0, false, 80), // 2
		play("double", 1, false, 0),     // 5
		play("walk", 0, false, 0),       // 3
	}

	ranked := RankHighlights(plays, DefaultMinScore)

	assert.Equal(t, 4, len(ranked))
	assert.Equal(t, 9, ranked[0].Score)
	assert.Equal(t, 5, ranked[1].Score)
	assert.Equal(t, "strikeout", ranked[2].EventType)
	assert.Equal(t, "walk", ranked[3].EventType)

	for i, h := range ranked {
		if h.Score < DefaultMinScore {
			t.Errorf("highlight %d has score %d below minimum", i, h.Score)
		}
		if i > 0 && ranked[i-1].Score < h.Score {
			t.Errorf("highlight %d score %d exceeds previous %d", i, h.Score, ranked[i-1].Score)
		}
	}
}

func TestRankHighlights_CustomMinScore(t *testing.T) {
	plays := []Play{
		play("single", 0, false, 0),
		play("strikeout", 0, false, 0),
		play("home_run", 0, false, 0),
	}

	assert.Equal(t, 3, len(RankHighlights(plays, 0)))
	assert.Equal(t, 1, len(RankHighlights(plays, 5)))
	assert.Equal(t, 0, len(RankHighlights(plays, 10)))
	assert.Equal(t, 0, len(RankHighlights(nil, DefaultMinScore)))
}

func TestRankHighlights_PlayIDFromLastEvent(t *testing.T) {
	p := play("home_run", 1, true, 0)
	p.PlayEvents = []PlayEvent{{PlayID: "first"}, {PlayID: "second"}, {}}

	ranked := RankHighlights([]Play{p}, DefaultMinScore)

	assert.Equal(t, 1, len(ranked))
	assert.NotEqual(t, nil, ranked[0].PlayID)
	assert.Equal(t, "second", *ranked[0].PlayID)

	p.PlayEvents = []PlayEvent{{}, {}}
	ranked = RankHighlights([]Play{p}, DefaultMinScore)
	assert.Equal(t, true, ranked[0].PlayID == nil)
}

func TestRankHighlights_PartialPayload(t *testing.T) {
	raw := `[
		{"result": {"eventType": "home_run", "description": "Judge homers (10)."}},
		{"about": {"inning": 3, "isTopInning": true, "isScoringPlay": true}},
		{"matchup": {"batter": {"id": 592450, "fullName": "Aaron Judge"}}},
		{}
	]`

	var plays []Play
	err := json.Unmarshal([]byte(raw), &plays)
	assert.Equal(t, nil, err)

	ranked := RankHighlights(plays, DefaultMinScore)

	assert.Equal(t, 2, len(ranked))
	assert.Equal(t, "home_run", ranked[0].EventType)
	assert.Equal(t, 0, ranked[0].Inning)
	assert.Equal(t, true, ranked[0].Batter.ID == nil)
	assert.Equal(t, true, ranked[0].PlayID == nil)
	assert.Equal(t, 3, ranked[1].Score)
	assert.Equal(t, 3, ranked[1].Inning)
	assert.Equal(t, true, ranked[1].IsTop)
}

func TestRankHighlights_CopiesMatchup(t *testing.T) {
	batterID, pitcherID := 592450, 543037
	p := play("double", 0, false, 0)
	p.About.Inning = 7
	p.Matchup = PlayMatchup{
		Batter:  PersonRef{ID: &batterID, FullName: "Aaron Judge"},
		Pitcher: PersonRef{ID: &pitcherID, FullName: "Gerrit Cole"},
	}

	ranked := RankHighlights([]Play{p}, DefaultMinScore)

	assert.Equal(t, 1, len(ranked))
	assert.Equal(t, 7, ranked[0].Inning)
	assert.Equal(t, batterID, *ranked[0].Batter.ID)
	assert.Equal(t, "Aaron Judge", ranked[0].Batter.FullName)
	assert.Equal(t, pitcherID, *ranked[0].Pitcher.ID)
	assert.Equal(t, "Gerrit Cole", ranked[0].Pitcher.FullName)
}

func TestTopHighlights(t *testing.T) {
	var plays []Play
	for i := 0; i < 8; i++ {
		plays = append(plays, play("home_run", 0, false, 0))
	}

	ranked := RankHighlights(plays, DefaultMinScore)
	assert.Equal(t, 8, len(ranked))
	assert.Equal(t, MaxHighlights, len(TopHighlights(ranked)))
	assert.Equal(t, 2, len(TopHighlights(ranked[:2])))
}
