package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	SessionID string    // only this session ("" = all)
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before (0 = no bound)
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
}

// Lesson view sources.
const (
	SourceTUI = "tui"
	SourceWeb = "web"
	SourceAPI = "api"
	SourceCLI = "cli"
)

// LessonViewData records a lesson being opened.
type LessonViewData struct {
	SessionID string
	Day       int
	Source    string
}

// ProgressChangeData records a day being marked or unmarked complete.
type ProgressChangeData struct {
	SessionID string
	Day       int
	Completed bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ActivityKind identifies which table an Activity came from.
type ActivityKind string

const (
	ActivityLessonView     ActivityKind = "lesson_view"
	ActivityProgressChange ActivityKind = "progress_change"
	ActivityLLMRequest     ActivityKind = "llm_request"
)

// Activity is one entry of the merged journal feed. Only the fields that
// belong to Kind are set.
type Activity struct {
	Kind      ActivityKind
	Sequence  int64
	Timestamp time.Time
	SessionID string

	Day       int
	Source    string
	Completed bool

	Purpose string
	Model   string
	Success bool
}

// LLMUsage sums LLM requests over a session.
type LLMUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// JournalRepo appends and reads session journal entries.
type JournalRepo interface {
	AppendLessonView(ctx context.Context, data LessonViewData) error
	AppendProgressChange(ctx context.Context, data ProgressChangeData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentActivity returns entries from all tables, newest first.
	RecentActivity(ctx context.Context, opts QueryOpts) ([]Activity, error)

	// LLMUsage totals LLM requests for sessionID ("" = all sessions).
	LLMUsage(ctx context.Context, sessionID string) (LLMUsage, error)
}
