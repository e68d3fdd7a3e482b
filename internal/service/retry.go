package service

import (
	"context"
	"time"

	"github.com/gps23/ai-task-planner/internal/config"
)

// Retry defaults.
const (
	DefaultMaxAttempts = 2
	DefaultBackoff     = time.Second
)

// RetryPolicy bounds how often PlanService asks the generator for a plan.
type RetryPolicy struct {
	// MaxAttempts is the total number of generator calls, including the
	// first. Values below 1 are replaced with DefaultMaxAttempts.
	MaxAttempts int

	// Backoff is the fixed wait between attempts. Negative values are
	// replaced with DefaultBackoff.
	Backoff time.Duration
}

// DefaultRetryPolicy returns two attempts with a one second backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, Backoff: DefaultBackoff}
}

// RetryPolicyFromConfig builds a RetryPolicy from planner configuration.
func RetryPolicyFromConfig(cfg config.PlannerConfig) RetryPolicy {
	return RetryPolicy{MaxAttempts: cfg.MaxAttempts, Backoff: cfg.Backoff()}
}

// normalize replaces invalid values with defaults and names the fields it
// changed.
func (p RetryPolicy) normalize() (RetryPolicy, []string) {
	var fixed []string
	if p.MaxAttempts < 1 {
		p.MaxAttempts = DefaultMaxAttempts
		fixed = append(fixed, "max_attempts")
	}
	if p.Backoff < 0 {
		p.Backoff = DefaultBackoff
		fixed = append(fixed, "backoff")
	}
	return p, fixed
}

// Sleeper waits between attempts.
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, whichever comes first, and
	// returns ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper sleeps on the wall clock.
type RealSleeper struct{}

// Sleep implements Sleeper.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
