package store

import (
	"context"

	"github.com/google/uuid"
)

// Session binds a JournalRepo to one run of the program. It satisfies
// progress.Journal and the LLM event sink, stamping every entry with ID.
type Session struct {
	ID   string
	repo JournalRepo
}

// NewSession starts a session with a fresh random ID.
func NewSession(repo JournalRepo) *Session {
	return &Session{ID: uuid.NewString(), repo: repo}
}

// RecordProgress appends a progress change.
func (s *Session) RecordProgress(ctx context.Context, day int, completed bool) error {
	return s.repo.AppendProgressChange(ctx, ProgressChangeData{
		SessionID: s.ID,
		Day:       day,
		Completed: completed,
	})
}

// RecordLessonView appends a lesson view from source.
func (s *Session) RecordLessonView(ctx context.Context, day int, source string) error {
	return s.repo.AppendLessonView(ctx, LessonViewData{
		SessionID: s.ID,
		Day:       day,
		Source:    source,
	})
}

// AppendLLMRequest appends an LLM call, overriding its session ID.
func (s *Session) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	data.SessionID = s.ID
	return s.repo.AppendLLMRequest(ctx, data)
}

// Recent returns this session's latest limit entries, newest first.
func (s *Session) Recent(ctx context.Context, limit int) ([]Activity, error) {
	return s.repo.RecentActivity(ctx, QueryOpts{SessionID: s.ID, Limit: limit})
}

// Usage totals this session's LLM requests.
func (s *Session) Usage(ctx context.Context) (LLMUsage, error) {
	return s.repo.LLMUsage(ctx, s.ID)
}
