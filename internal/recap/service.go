package recap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmo2498/MLB/internal/model"
	"github.com/jmo2498/MLB/pkg/llm"
	"github.com/jmo2498/MLB/pkg/mlb"
)

// ErrNoGame means the schedule or the game feed had nothing for the request.
var ErrNoGame = errors.New("no game data found")

type GameSource interface {
	LookupGame(ctx context.Context, date string, teamID int) (*mlb.ScheduledGame, error)
	FetchLiveFeed(ctx context.Context, gamePk int) (*mlb.LiveFeed, error)
	FetchContent(ctx context.Context, gamePk int) (*model.ContentData, error)
}

type Service struct {
	source    GameSource
	generator llm.TextGenerator
	minScore  int
}

func NewService(source GameSource, generator llm.TextGenerator) *Service {
	return &Service{
		source:    source,
		generator: generator,
		minScore:  mlb.DefaultMinScore,
	}
}

func (s *Service) ModelName() string {
	return s.generator.ModelName()
}

// BuildReport assembles the structured game report without summaries.
func (s *Service) BuildReport(ctx context.Context, date string, teamID int) (*model.GameSummary, error) {
	game, err := s.source.LookupGame(ctx, date, teamID)
	if err != nil {
		return nil, noGame(err)
	}

	feed, err := s.source.FetchLiveFeed(ctx, game.GamePk)
	if err != nil {
		return nil, noGame(err)
	}

	content, err := s.source.FetchContent(ctx, game.GamePk)
	if err != nil {
		slog.Warn("continuing without game content", "game_pk", game.GamePk, "error", err)
		content = &model.ContentData{Headlines: []string{}, SEOTitles: []string{}}
	}

	ranked := mlb.RankHighlights(feed.Plays(), s.minScore)

	return &model.GameSummary{
		Date:         date,
		YourTeamID:   teamID,
		GamePk:       game.GamePk,
		GameInfo:     game.Info,
		DetailedInfo: feed.Details(),
		LineScore:    mlb.AggregateLineScore(feed.Linescore()),
		Highlights:   mlb.TopHighlights(ranked),
		ContentData:  *content,
	}, nil
}

// BuildRecap builds the report and adds the detailed and concise summaries.
func (s *Service) BuildRecap(ctx context.Context, date string, teamID int) (*model.GameSummary, error) {
	report, err := s.BuildReport(ctx, date, teamID)
	if err != nil {
		return nil, err
	}

	detailed, err := s.generator.Generate(ctx, DetailedPrompt(*report))
	if err != nil {
		return nil, fmt.Errorf("generating detailed summary for game %d: %w", report.GamePk, err)
	}

	concise, err := s.generator.Generate(ctx, ConcisePrompt(*report))
	if err != nil {
		return nil, fmt.Errorf("generating concise summary for game %d: %w", report.GamePk, err)
	}

	summary := *report
	summary.DetailedSummary = detailed
	summary.ConciseSummary = concise

	slog.Info("recap built", "game_pk", summary.GamePk, "team_id", teamID, "highlights", len(summary.Highlights), "model", s.generator.ModelName())
	return &summary, nil
}

func noGame(err error) error {
	if errors.Is(err, mlb.ErrDataUnavailable) {
		return fmt.Errorf("%w: %v", ErrNoGame, err)
	}
	return err
}
