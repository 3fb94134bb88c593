package recap

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jmo2498/MLB/internal/model"
)

const notAvailable = "N/A"

// DetailedPrompt asks for a two-paragraph recap. Key plays are listed in game
// order, top half before bottom half.
func DetailedPrompt(g model.GameSummary) string {
	info := g.DetailedInfo

	var sb strings.Builder
	sb.WriteString("Create a detailed two-paragraph summary of this MLB game:\n\n")
	sb.WriteString("Game Context:\n")
	sb.WriteString(fmt.Sprintf("- Final Score: %s\n", finalScore(g)))
	sb.WriteString(fmt.Sprintf("- Result: %s\n", result(g.GameInfo.Result)))
	sb.WriteString(fmt.Sprintf("- Starting Pitchers: %s (Away) vs %s (Home)\n", pitcherName(info.AwayPitcher), pitcherName(info.HomePitcher)))
	sb.WriteString(fmt.Sprintf("- Venue: %s (%s game)\n", orNA(venue(g)), orNA(info.DayNight)))
	sb.WriteString(fmt.Sprintf("- Attendance: %s\n", attendance(info.Attendance)))
	sb.WriteString("\nChronological Key Plays:\n")

	for _, h := range chronological(g.Highlights) {
		if h.Description == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s %s: %s (Score: %d, PlayID: %s)\n",
			half(h), inning(h), h.Description, h.Score, playID(h.PlayID)))
	}

	sb.WriteString(`
Write two detailed paragraphs:
1. The first paragraph should focus on the game flow and early key plays.
2. The second paragraph should cover later developments and the final outcome.
`)
	return sb.String()
}

// ConcisePrompt asks for a single sentence built around the first highlight.
func ConcisePrompt(g model.GameSummary) string {
	keyPlay := notAvailable
	if len(g.Highlights) > 0 {
		keyPlay = orNA(g.Highlights[0].Description)
	}

	var sb strings.Builder
	sb.WriteString("Create a single-sentence summary of this MLB game that captures the key outcome:\n\n")
	sb.WriteString("Game Context:\n")
	sb.WriteString(fmt.Sprintf("- Final Score: %s\n", finalScore(g)))
	sb.WriteString(fmt.Sprintf("- Most Impactful Play: %s\n", keyPlay))
	sb.WriteString(fmt.Sprintf("- Venue: %s\n", orNA(venue(g))))
	sb.WriteString(fmt.Sprintf("- Attendance: %s\n", attendance(g.DetailedInfo.Attendance)))
	sb.WriteString(`
Compose one punchy sentence that includes:
1. The key offensive play,
2. The final score, and
3. The dominant team's performance.
`)
	return sb.String()
}

func chronological(highlights []model.Highlight) []model.Highlight {
	sorted := slices.Clone(highlights)
	slices.SortStableFunc(sorted, func(a, b model.Highlight) int {
		if c := cmp.Compare(a.Inning, b.Inning); c != 0 {
			return c
		}
		switch {
		case a.IsTop == b.IsTop:
			return 0
		case a.IsTop:
			return -1
		default:
			return 1
		}
	})
	return sorted
}

// finalScore lists the leading team first.
func finalScore(g model.GameSummary) string {
	home, away := g.GameInfo.Teams.Home, g.GameInfo.Teams.Away
	homeName := orNA(firstNonEmpty(home.TeamName, g.DetailedInfo.HomeTeam))
	awayName := orNA(firstNonEmpty(away.TeamName, g.DetailedInfo.AwayTeam))

	if away.Score > home.Score {
		return fmt.Sprintf("%s %d, %s %d", awayName, away.Score, homeName, home.Score)
	}
	return fmt.Sprintf("%s %d, %s %d", homeName, home.Score, awayName, away.Score)
}

func result(r model.GameResult) string {
	if r.IsTie {
		return "tie game"
	}
	return fmt.Sprintf("%s defeated %s", orNA(r.Winner), orNA(r.Loser))
}

func venue(g model.GameSummary) string {
	return firstNonEmpty(g.DetailedInfo.Venue, g.GameInfo.Venue)
}

func half(h model.Highlight) string {
	if h.IsTop {
		return "Top"
	}
	return "Bottom"
}

func inning(h model.Highlight) string {
	if h.Inning <= 0 {
		return notAvailable
	}
	return strconv.Itoa(h.Inning)
}

func pitcherName(p *model.Player) string {
	if p == nil {
		return notAvailable
	}
	return orNA(p.FullName)
}

func playID(id *string) string {
	if id == nil {
		return notAvailable
	}
	return orNA(*id)
}

func attendance(a *int) string {
	if a == nil {
		return notAvailable
	}
	return strconv.Itoa(*a)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
