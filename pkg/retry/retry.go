package retry

import (
	"context"
	"fmt"
	"time"
)

// Config holds exponential backoff configuration used for infrastructure
// connections at startup.
type Config struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	BackoffFactor   float64
	MaxTotalTimeout time.Duration
}

// DefaultConfig returns a default retry configuration with 1 minute max timeout
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     10,
		InitialDelay:    100 * time.Millisecond,
		MaxDelay:        10 * time.Second,
		BackoffFactor:   2.0,
		MaxTotalTimeout: 60 * time.Second,
	}
}

// DoWithLog executes fn with exponential backoff and reports each failed
// attempt to logFn before sleeping.
func DoWithLog(ctx context.Context, cfg Config, serviceName string, fn func() error, logFn func(attempt int, err error, nextDelay time.Duration)) error {
	if cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			if lastErr != nil {
				return fmt.Errorf("%s: retry aborted after %d attempts: %w (last error: %v)", serviceName, attempt-1, ctx.Err(), lastErr)
			}
			return fmt.Errorf("%s: retry aborted: %w", serviceName, ctx.Err())
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == cfg.MaxAttempts {
			break
		}
		if logFn != nil {
			logFn(attempt, err, delay)
		}
		if err := sleep(ctx, delay); err != nil {
			return fmt.Errorf("%s: retry aborted after %d attempts: %w (last error: %v)", serviceName, attempt, err, lastErr)
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("%s: max retry attempts (%d) exceeded: %w", serviceName, cfg.MaxAttempts, lastErr)
}

// Outcome classifies the result of one attempt.
type Outcome int

const (
	Success Outcome = iota
	TransientFailure
	PermanentFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case TransientFailure:
		return "transient"
	default:
		return "permanent"
	}
}

// Classifier maps an attempt error to an Outcome. A nil error is always Success.
type Classifier func(error) Outcome

// LinearPolicy waits attempt*Step after the attempt-th failure.
type LinearPolicy struct {
	MaxAttempts int
	Step        time.Duration
}

// Delay returns the wait after the given 1-based failed attempt.
func (p LinearPolicy) Delay(attempt int) time.Duration {
	return time.Duration(attempt) * p.Step
}

// Result reports how a classified retry loop ended.
type Result struct {
	Attempts int
	Outcome  Outcome
	Err      error
}

// DoClassified runs fn until it succeeds, fails permanently, or MaxAttempts
// transient failures have been seen. Only TransientFailure is retried, and
// nothing is retried once ctx is done.
// onRetry, when set, is called before each wait.
func DoClassified(ctx context.Context, policy LinearPolicy, classify Classifier, fn func(ctx context.Context) error, onRetry func(attempt int, err error, delay time.Duration)) Result {
	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var res Result
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res.Attempts = attempt
		err := fn(ctx)
		if err == nil {
			res.Outcome, res.Err = Success, nil
			return res
		}

		res.Err = err
		res.Outcome = PermanentFailure
		if classify != nil {
			res.Outcome = classify(err)
		}
		if res.Outcome == Success {
			// A classifier must not turn a failure into success.
			res.Outcome = PermanentFailure
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			res.Outcome = PermanentFailure
			res.Err = fmt.Errorf("retry aborted after %d attempts: %w (last error: %v)", attempt, ctxErr, err)
			return res
		}
		if res.Outcome != TransientFailure || attempt == maxAttempts {
			return res
		}

		delay := policy.Delay(attempt)
		if onRetry != nil {
			onRetry(attempt, err, delay)
		}
		if err := sleep(ctx, delay); err != nil {
			res.Outcome = PermanentFailure
			res.Err = fmt.Errorf("retry aborted after %d attempts: %w (last error: %v)", attempt, err, res.Err)
			return res
		}
	}
	return res
}

func sleep(ctx context.Context, d time.Duration) error {
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
