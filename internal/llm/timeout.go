package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TimeoutProvider bounds each generation call with a deadline. Placed
// inside the retry decorator, it limits a single attempt, so the total
// blocking time of a gateway call is bounded by MaxAttempts deadlines
// plus backoff waits.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline. A non-positive
// duration disables the bound and returns the provider unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(attemptCtx, req)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		// The attempt hit its own deadline while the caller's context is
		// still live. Report it as a transient provider failure so the
		// retry layer treats it like any other stalled request.
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("request timed out after %s: %w", t.timeout, err)}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
