package llm

import (
	"context"
	"time"

	"github.com/abhisek/webdev100/internal/logging"
	"github.com/abhisek/webdev100/internal/store"
)

// EventSink records finished LLM requests. *store.Session implements it.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider records every request to an EventSink and the logger.
type LoggingProvider struct {
	inner    Provider
	provider string
	sink     EventSink
	log      *logging.Logger
}

// WithLogging wraps p. sink and log may be nil.
func WithLogging(p Provider, providerName string, sink EventSink, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &LoggingProvider{inner: p, provider: providerName, sink: sink, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	fields := []any{
		"provider", data.Provider,
		"model", data.Model,
		"purpose", data.Purpose,
		"latency_ms", data.LatencyMs,
		"input_tokens", data.InputTokens,
		"output_tokens", data.OutputTokens,
	}
	if err != nil {
		l.log.Warn("llm request failed", append(fields, "error", err)...)
	} else {
		l.log.Debug("llm request", fields...)
	}

	// A journal failure never fails the request.
	if l.sink != nil {
		if logErr := l.sink.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.log.Warn("record llm request", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
