package mlb

import (
	"fmt"

	"github.com/jmo2498/MLB/internal/model"
)

type Linescore struct {
	CurrentInning        int               `json:"currentInning"`
	CurrentInningOrdinal string            `json:"currentInningOrdinal"`
	InningState          string            `json:"inningState"`
	ScheduledInnings     int               `json:"scheduledInnings"`
	Innings              []LinescoreInning `json:"innings"`
}

type LinescoreInning struct {
	Num  int         `json:"num"`
	Home InningStats `json:"home"`
	Away InningStats `json:"away"`
}

type InningStats struct {
	Runs       int `json:"runs"`
	Hits       int `json:"hits"`
	Errors     int `json:"errors"`
	LeftOnBase int `json:"leftOnBase"`
}

func (s InningStats) line() model.TeamLine {
	return model.TeamLine{
		Runs:       s.Runs,
		Hits:       s.Hits,
		Errors:     s.Errors,
		LeftOnBase: s.LeftOnBase,
	}
}

// AggregateLineScore normalizes the per-inning grid and accumulates team totals
// in a single pass, preserving inning order.
func AggregateLineScore(ls Linescore) model.LineScore {
	report := model.LineScore{
		CurrentInning:    currentInning(ls),
		ScheduledInnings: ls.ScheduledInnings,
		Innings:          make([]model.InningLine, 0, len(ls.Innings)),
	}

	for _, inning := range ls.Innings {
		home, away := inning.Home.line(), inning.Away.line()

		report.Totals.Home.Add(home)
		report.Totals.Away.Add(away)

		report.Innings = append(report.Innings, model.InningLine{
			Inning: inning.Num,
			Home:   home,
			Away:   away,
		})
	}

	return report
}

func currentInning(ls Linescore) string {
	switch {
	case ls.CurrentInningOrdinal == "":
		return ""
	case ls.InningState == "":
		return ls.CurrentInningOrdinal
	default:
		return fmt.Sprintf("%s (%s)", ls.CurrentInningOrdinal, ls.InningState)
	}
}
