package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmo2498/MLB/internal/model"
	"github.com/redis/go-redis/v9"
)

const MaxAttempts = 3

// RecapQueue is a FIFO of recap jobs on a Redis list: LPUSH to enqueue, BRPOP to take.
type RecapQueue struct {
	client        *redis.Client
	key           string
	deadLetterKey string
}

func NewRecapQueue(client *redis.Client, key, deadLetterKey string) *RecapQueue {
	return &RecapQueue{
		client:        client,
		key:           key,
		deadLetterKey: deadLetterKey,
	}
}

func NewJob(date string, teamID int) model.RecapJob {
	return model.RecapJob{
		ID:       uuid.NewString(),
		Date:     date,
		TeamID:   teamID,
		QueuedAt: time.Now().UTC(),
	}
}

func (q *RecapQueue) Enqueue(ctx context.Context, date string, teamID int) (*model.RecapJob, error) {
	job := NewJob(date, teamID)
	if err := q.push(ctx, q.key, job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Retry puts a failed job back on the queue, or on the dead-letter list once it
// has used MaxAttempts. It reports whether the job was re-queued.
func (q *RecapQueue) Retry(ctx context.Context, job model.RecapJob) (bool, error) {
	job, requeue := nextAttempt(job)
	key := q.key
	if !requeue {
		key = q.deadLetterKey
	}
	return requeue, q.push(ctx, key, job)
}

// Requeue returns an unfinished job to the head of the queue without counting
// an attempt.
func (q *RecapQueue) Requeue(ctx context.Context, job model.RecapJob) error {
	data, err := EncodeJob(job)
	if err != nil {
		return err
	}
	if err := q.client.RPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("returning job %s to %s: %w", job.ID, q.key, err)
	}
	return nil
}

// DeadLetter parks a job that cannot succeed on retry.
func (q *RecapQueue) DeadLetter(ctx context.Context, job model.RecapJob) error {
	job.Attempts++
	return q.push(ctx, q.deadLetterKey, job)
}

func nextAttempt(job model.RecapJob) (model.RecapJob, bool) {
	job.Attempts++
	return job, job.Attempts < MaxAttempts
}

// Next blocks up to timeout for a job. It returns nil, nil when none arrived.
// Payloads that do not decode are moved to the dead-letter list and skipped.
func (q *RecapQueue) Next(ctx context.Context, timeout time.Duration) (*model.RecapJob, error) {
	result, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	job, err := DecodeJob(result[1])
	if err != nil {
		slog.Error("invalid job in queue, dead-lettering", "queue", q.key, "error", err)
		if err := q.client.LPush(ctx, q.deadLetterKey, result[1]).Err(); err != nil {
			return nil, fmt.Errorf("dead-lettering invalid payload: %w", err)
		}
		return nil, nil
	}
	return job, nil
}

func (q *RecapQueue) Length(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}

func (q *RecapQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func (q *RecapQueue) push(ctx context.Context, key string, job model.RecapJob) error {
	data, err := EncodeJob(job)
	if err != nil {
		return err
	}
	if err := q.client.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("pushing job %s to %s: %w", job.ID, key, err)
	}
	return nil
}

func EncodeJob(job model.RecapJob) (string, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("encoding job %s: %w", job.ID, err)
	}
	return string(data), nil
}

func DecodeJob(data string) (*model.RecapJob, error) {
	var job model.RecapJob
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("decoding job: %w, content: %s", err, data)
	}
	return &job, nil
}
