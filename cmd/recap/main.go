package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jmo2498/MLB/db"
	"github.com/jmo2498/MLB/internal/config"
	"github.com/jmo2498/MLB/internal/model"
	"github.com/jmo2498/MLB/internal/recap"
	"github.com/jmo2498/MLB/internal/repository"
	"github.com/jmo2498/MLB/pkg/llm"
	"github.com/jmo2498/MLB/pkg/mlb"
	"github.com/urfave/cli/v2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := config.Load()

	cliApp := &cli.App{
		Name:  "recap",
		Usage: "build MLB game recaps from the command line",
		Commands: []*cli.Command{
			newGameCommand(cfg),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newGameCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "game",
		Usage: "recap one team's game on a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "game date, YYYY-MM-DD", Required: true},
			&cli.StringFlag{Name: "team", Usage: "MLB team id, e.g. 147", Required: true},
			&cli.BoolFlag{Name: "no-summary", Usage: "skip the LLM summaries"},
			&cli.BoolFlag{Name: "save", Usage: "store the recap in the archive database"},
		},
		Action: func(c *cli.Context) error {
			date, teamID, err := recap.ParseRequest(c.String("date"), c.String("team"))
			if err != nil {
				return err
			}

			generator, err := llm.NewTextGenerator(cfg.LLMProvider, cfg.LLMAPIKey, cfg.Generation)
			if err != nil {
				return err
			}

			service := recap.NewService(mlb.NewClient(cfg.MLBBaseURL, cfg.MLBRequestsPerSecond), generator)

			var summary *model.GameSummary
			if c.Bool("no-summary") {
				summary, err = service.BuildReport(c.Context, date, teamID)
			} else {
				summary, err = service.BuildRecap(c.Context, date, teamID)
			}
			if err != nil {
				return err
			}

			if c.Bool("save") {
				if err := save(cfg, *summary, service.ModelName()); err != nil {
					return err
				}
			}

			out, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func save(cfg config.Config, summary model.GameSummary, modelUsed string) error {
	if err := db.Connect(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("error connecting to DB: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("error migrating DB: %w", err)
	}

	stored := model.NewStoredRecap(summary, modelUsed)
	if err := repository.NewRecapRepository(db.DB).SaveRecap(stored); err != nil {
		return err
	}

	slog.Info("recap saved", "id", stored.ID, "game_pk", stored.GamePk, "team_id", stored.TeamID)
	return nil
}
