package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jmo2498/MLB/internal/model"
	"github.com/jmo2498/MLB/internal/recap"
)

type Jobs interface {
	Next(ctx context.Context, timeout time.Duration) (*model.RecapJob, error)
	Retry(ctx context.Context, job model.RecapJob) (bool, error)
	Requeue(ctx context.Context, job model.RecapJob) error
	DeadLetter(ctx context.Context, job model.RecapJob) error
}

type Builder interface {
	BuildRecap(ctx context.Context, date string, teamID int) (*model.GameSummary, error)
	ModelName() string
}

type Store interface {
	SaveRecap(recap *model.StoredRecap) error
}

type RecapWorker struct {
	jobs    Jobs
	builder Builder
	store   Store

	PollTimeout time.Duration
	RetryDelay  time.Duration
}

func NewRecapWorker(jobs Jobs, builder Builder, store Store) *RecapWorker {
	return &RecapWorker{
		jobs:        jobs,
		builder:     builder,
		store:       store,
		PollTimeout: 5 * time.Second,
		RetryDelay:  5 * time.Second,
	}
}

// Run processes jobs until ctx is cancelled or the queue returns an error.
func (w *RecapWorker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		job, err := w.jobs.Next(ctx, w.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Error("error popping from Redis queue", "error", err)
			return err
		}

		if job == nil {
			continue
		}

		w.Process(ctx, *job)
	}
}

// Process builds and stores one recap. Failed jobs are retried, except when
// there is no game to recap. A job interrupted by shutdown goes back on the
// queue without using an attempt.
func (w *RecapWorker) Process(ctx context.Context, job model.RecapJob) {
	summary, err := w.builder.BuildRecap(ctx, job.Date, job.TeamID)
	if err != nil && ctx.Err() != nil {
		slog.Warn("shutting down, returning job to queue", "job_id", job.ID, "error", err)
		if err := w.jobs.Requeue(context.WithoutCancel(ctx), job); err != nil {
			slog.Error("error returning job to queue", "error", err, "job_id", job.ID)
		}
		return
	}

	if errors.Is(err, recap.ErrNoGame) {
		slog.Warn("no game for recap job, dead-lettering", "job_id", job.ID, "date", job.Date, "team_id", job.TeamID)
		if err := w.jobs.DeadLetter(ctx, job); err != nil {
			slog.Error("error dead-lettering job", "error", err, "job_id", job.ID)
		}
		return
	}

	if err == nil {
		err = w.store.SaveRecap(model.NewStoredRecap(*summary, w.builder.ModelName()))
	}

	if err != nil {
		slog.Error("error processing recap job", "error", err, "job_id", job.ID, "attempts", job.Attempts)

		requeued, qerr := w.jobs.Retry(ctx, job)
		if qerr != nil {
			slog.Error("error re-queueing job", "error", qerr, "job_id", job.ID)
			return
		}
		if !requeued {
			slog.Warn("job exceeded max retries, marking as failed", "job_id", job.ID)
			return
		}

		select {
		case <-ctx.Done():
		case <-time.After(w.RetryDelay):
		}
		return
	}

	slog.Info("recap saved successfully", "job_id", job.ID, "game_pk", summary.GamePk, "team_id", job.TeamID)
}
