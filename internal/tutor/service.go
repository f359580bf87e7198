package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/webdev100/internal/llm"
)

// ErrNoProvider is returned when the service has no LLM behind it.
var ErrNoProvider = errors.New("tutor: AI hints are not configured")

// Service generates exercise hints. Hint is synchronous; RequestHint and
// ConsumeHint run one request in the background for the TUI.
type Service struct {
	provider llm.Provider
	cfg      Config

	wg sync.WaitGroup

	mu      sync.Mutex
	gen     uint64 // incremented per RequestHint; stale results are dropped
	cancel  context.CancelFunc
	pending *Hint
	err     error
	ready   bool
}

// NewService creates a hint service. A nil provider yields a service
// whose Enabled reports false.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Enabled reports whether hints can be generated.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Hint generates a hint and waits for it.
func (s *Service) Hint(ctx context.Context, in HintInput) (*Hint, error) {
	if !s.Enabled() {
		return nil, ErrNoProvider
	}
	if in.Exercise.ID == "" {
		return nil, errors.New("tutor: exercise is required")
	}

	req := llm.UserPrompt(hintSystemPrompt, buildHintMessage(in))
	req.Schema = HintSchema
	req.MaxTokens = s.cfg.MaxTokens
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, llm.PurposeHint), req)
	if err != nil {
		return nil, fmt.Errorf("hint generation: %w", err)
	}

	var out hintOutput
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}

	return &Hint{
		Day:        in.Lesson.Day,
		ExerciseID: in.Exercise.ID,
		Text:       strings.TrimSpace(out.Hint),
		Concept:    strings.TrimSpace(out.Concept),
		NextStep:   strings.TrimSpace(out.NextStep),
	}, nil
}

// RequestHint starts generating a hint in the background. A newer request
// supersedes an older one still in flight and cancels its provider call.
func (s *Service) RequestHint(ctx context.Context, in HintInput) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.pending, s.err, s.ready = nil, nil, false
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		hint, err := s.Hint(ctx, in)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending, s.err, s.ready = hint, err, true
	}()
}

// Result is a finished background request.
type Result struct {
	Hint *Hint
	Err  error
}

// ConsumeHint returns the finished request and clears the slot. It
// returns false while nothing is ready.
func (s *Service) ConsumeHint() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Result{}, false
	}
	res := Result{Hint: s.pending, Err: s.err}
	s.pending, s.err, s.ready = nil, nil, false
	return res, true
}

// Wait blocks until every background request has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
