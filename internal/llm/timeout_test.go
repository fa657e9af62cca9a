package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingProvider hangs until the request context is done, simulating a
// stalled connection.
type blockingProvider struct {
	calls int
}

func (b *blockingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	b.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func TestTimeout_BoundsHungRequests(t *testing.T) {
	block := &blockingProvider{}
	p := WithRetry(WithTimeout(block, 5*time.Millisecond), retryConfig())

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
	// Every attempt hit its deadline and was retried up to the limit.
	if block.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", block.calls)
	}
	// 3 attempts x 5ms plus millisecond-scale backoff; a generous ceiling
	// proves the call did not hang.
	if elapsed > time.Second {
		t.Fatalf("generate blocked for %v", elapsed)
	}
}

func TestTimeout_ParentCancellationNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := &blockingProvider{}
	p := WithRetry(WithTimeout(block, time.Minute), retryConfig())

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if block.calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", block.calls)
	}
}

func TestTimeout_DisabledPassesThrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout should return the provider unchanged")
	}
}
