package worker

// insight_worker.go
// Runs AI insight generation off the request path. The HTTP handler can
// either generate synchronously or enqueue here for background refresh.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// InsightJobPayload is the job envelope sent to QueueInsights.
type InsightJobPayload struct {
	RequestedBy string `json:"requested_by"`
}

// InsightGenerator is the slice of the insight service the worker needs.
type InsightGenerator interface {
	GenerateAndStore(ctx context.Context) (int, error)
}

type InsightWorker struct {
	generator InsightGenerator
}

func NewInsightWorker(generator InsightGenerator) *InsightWorker {
	return &InsightWorker{generator: generator}
}

// Process runs generation with retry. The AI upstream is flaky by nature;
// two extra attempts with backoff cover transient failures, anything worse
// trips the circuit breaker inside the generator and lands in the DLQ.
func (w *InsightWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload InsightJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("insight_worker: invalid payload: %w", err)
	}

	err := withRetry(ctx, 3, func(attempt int) error {
		n, err := w.generator.GenerateAndStore(ctx)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Msg("insight_worker: generation attempt failed")
			return err
		}
		log.Info().Int("insights", n).Str("requested_by", payload.RequestedBy).Msg("insight_worker: insights stored")
		return nil
	})
	return err
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
