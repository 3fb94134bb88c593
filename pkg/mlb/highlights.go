package mlb

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jmo2498/MLB/internal/model"
)

const (
	DefaultMinScore = 3
	MaxHighlights   = 5

	captivatingThreshold = 50
)

var eventTypeScores = map[string]int{
	"home_run":    5,
	"triple":      4,
	"double":      4,
	"double_play": 4,
	"strikeout":   3,
	"walk":        3,
	"stolen_base": 3,
}

// ScorePlay rates how notable a play is. It depends only on the event type,
// whether runs were batted in, the scoring flag and the captivating index.
func ScorePlay(p Play) int {
	score := 1
	if s, ok := eventTypeScores[strings.ToLower(p.Result.EventType)]; ok {
		score = s
	}

	if p.Result.RBI > 0 {
		score++
	}
	if p.About.IsScoringPlay {
		score += 2
	}
	if p.About.CaptivatingIndex > captivatingThreshold {
		score++
	}

	return score
}

// RankHighlights scores every play, drops those under minScore and returns the
// rest ordered by score, highest first. Equal scores keep their input order.
func RankHighlights(plays []Play, minScore int) []model.Highlight {
	ranked := make([]model.Highlight, 0, len(plays))
	for _, p := range plays {
		score := ScorePlay(p)
		if score < minScore {
			continue
		}

		ranked = append(ranked, model.Highlight{
			Inning:      p.About.Inning,
			IsTop:       p.About.IsTopInning,
			Description: p.Result.Description,
			EventType:   p.Result.EventType,
			PlayID:      lastPlayID(p.PlayEvents),
			Score:       score,
			Batter:      p.Matchup.Batter.player(),
			Pitcher:     p.Matchup.Pitcher.player(),
		})
	}

	slices.SortStableFunc(ranked, func(a, b model.Highlight) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return ranked
}

// TopHighlights truncates a ranked list to MaxHighlights.
func TopHighlights(ranked []model.Highlight) []model.Highlight {
	if len(ranked) > MaxHighlights {
		return ranked[:MaxHighlights]
	}
	return ranked
}

func lastPlayID(events []PlayEvent) *string {
	for i := len(events) - 1; i >= 0; i-- {
		if id := events[i].PlayID; id != "" {
			return &id
		}
	}
	return nil
}
