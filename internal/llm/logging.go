package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"skillscout/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// store's request log.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      store.RequestLog
}

// WithLogging wraps a Provider with request logging. The provider name
// is recorded alongside the model on every request row.
func WithLogging(p Provider, provider string, log store.RequestLog) Provider {
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	rec := store.RequestRecord{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if req.Model != "" {
		rec.Model = req.Model
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		rec.ResponseBody = resp.Content
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Log the request but don't fail the call if logging fails.
	if logErr := l.log.AppendRequest(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
