package source

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"
)

// RetryOptions controls doWithRetry.
type RetryOptions struct {
	MaxRetry int
	// Delay overrides the backoff before the given retry (0-based). Nil means
	// 2^attempt seconds.
	Delay func(attempt int) time.Duration
}

// DefaultRetryOptions retries 3 times, waiting 1s, 2s and 4s.
func DefaultRetryOptions() *RetryOptions {
	return &RetryOptions{MaxRetry: 3}
}

func (o *RetryOptions) delay(attempt int) time.Duration {
	if o.Delay != nil {
		return o.Delay(attempt)
	}
	return time.Duration(int(math.Pow(2, float64(attempt)))) * time.Second
}

// doWithRetry runs operation once and then up to MaxRetry more times while it
// fails. It stops early, returning the last error, when ctx is done.
func doWithRetry(ctx context.Context, logger logr.Logger, operation func() error, options *RetryOptions) error {
	if options == nil {
		options = DefaultRetryOptions()
	}
	err := operation()
	for attempt := 0; err != nil && attempt < options.MaxRetry; attempt++ {
		delay := options.delay(attempt)
		logger.Info(fmt.Sprintf("Failed, retrying in %s ... (%d/%d). Error: %v", delay, attempt+1, options.MaxRetry, err))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return err
		}
		err = operation()
	}
	return err
}
