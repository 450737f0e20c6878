package drive

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the retry loop around transient I/O: exponential delay
// starting at Initial, doubling per attempt, capped at MaxAttempts total
// tries. It is injected so the store can be tested without real I/O.
type RetryPolicy struct {
	MaxAttempts int
	Initial     time.Duration
}

// DefaultRetryPolicy mirrors the upstream behavior: 2^attempt seconds,
// five attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, Initial: 2 * time.Second}
}

// run executes op until it succeeds or the attempt ceiling is reached,
// returning the number of attempts made and the last error.
func (p RetryPolicy) run(ctx context.Context, op func() error) (int, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.Initial
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0

	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		return op()
	}, backoff.WithContext(backoff.WithMaxRetries(exp, uint64(p.MaxAttempts-1)), ctx))

	return attempts, err
}
