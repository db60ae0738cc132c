package vidu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minne100/ViduUI/internal/domain/task"
)

// Polling defaults. Callers may override both per wait.
const (
	DefaultPollInterval = 5 * time.Second
	DefaultWaitTimeout  = 300 * time.Second
)

// ErrWaitTimeout is returned when a task does not reach a terminal
// state within the wait deadline. It is distinct from transport and
// validation failures so callers can branch on it.
var ErrWaitTimeout = errors.New("timed out waiting for task completion")

// WaitForCompletion polls the task at a fixed interval until it
// reaches a terminal state or the deadline passes. The deadline is
// checked before each query. The final snapshot is returned for both
// success and failed outcomes; a remote failure is a value, not an
// error. Context cancellation aborts the wait between polls.
func (c *Client) WaitForCompletion(ctx context.Context, taskID string, interval, timeout time.Duration) (*task.Task, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}

	log := c.log.With().Str("task_id", taskID).Logger()
	start := time.Now()

	for {
		if elapsed := time.Since(start); elapsed > timeout {
			return nil, fmt.Errorf("task %s not terminal after %s: %w", taskID, elapsed.Round(time.Second), ErrWaitTimeout)
		}

		snapshot, err := c.QueryTask(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if snapshot.State.IsTerminal() {
			log.Info().
				Str("state", snapshot.State.String()).
				Dur("elapsed", time.Since(start)).
				Msg("task reached terminal state")
			return snapshot, nil
		}
		log.Debug().Str("state", snapshot.State.String()).Msg("task still in progress")

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
