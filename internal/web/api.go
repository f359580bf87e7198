package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/store"
)

// LessonSummary is a catalog row.
type LessonSummary struct {
	Day          int                 `json:"day"`
	Title        string              `json:"title"`
	Category     curriculum.Category `json:"category"`
	CategoryName string              `json:"category_name"`
	Description  string              `json:"description"`
	Classwork    int                 `json:"classwork"`
	Homework     int                 `json:"homework"`
	Completed    bool                `json:"completed"`
	Path         string              `json:"path"`
}

// LessonDetail is a full lesson with its exercises already partitioned.
type LessonDetail struct {
	curriculum.DayLesson
	CategoryName string                `json:"category_name"`
	Classwork    []curriculum.Exercise `json:"classwork"`
	Homework     []curriculum.Exercise `json:"homework"`
	Completed    bool                  `json:"completed"`
	Prev         int                   `json:"prev,omitempty"`
	Next         int                   `json:"next,omitempty"`
}

// ProgressResponse is the session's completion state.
type ProgressResponse struct {
	Completed []int `json:"completed"`
	Count     int   `json:"count"`
	Total     int   `json:"total"`
	// Ratio is Count/Total in [0, 1].
	Ratio float64 `json:"ratio"`
}

// ActivityEntry is one journal row.
type ActivityEntry struct {
	Kind      store.ActivityKind `json:"kind"`
	Sequence  int64              `json:"sequence"`
	Timestamp string             `json:"timestamp"`
	Day       int                `json:"day,omitempty"`
	Source    string             `json:"source,omitempty"`
	Completed *bool              `json:"completed,omitempty"`
	Purpose   string             `json:"purpose,omitempty"`
	Model     string             `json:"model,omitempty"`
	Success   *bool              `json:"success,omitempty"`
}

var errInvalidDay = errors.New("day must be a whole number without sign or leading zeros")

func (s *Server) summary(l curriculum.DayLesson) LessonSummary {
	cw, hw := curriculum.Partition(l.Exercises)
	return LessonSummary{
		Day:          l.Day,
		Title:        l.Title,
		Category:     l.Category,
		CategoryName: l.Category.DisplayName(),
		Description:  l.Description,
		Classwork:    len(cw),
		Homework:     len(hw),
		Completed:    s.deps.Progress.IsComplete(l.Day),
		Path:         "/day/" + strconv.Itoa(l.Day),
	}
}

func (s *Server) detail(l curriculum.DayLesson) LessonDetail {
	cw, hw := curriculum.Partition(l.Exercises)
	prev, next, _ := s.deps.Catalog.Neighbors(l.Day)
	return LessonDetail{
		DayLesson:    l,
		CategoryName: l.Category.DisplayName(),
		Classwork:    cw,
		Homework:     hw,
		Completed:    s.deps.Progress.IsComplete(l.Day),
		Prev:         prev,
		Next:         next,
	}
}

func (s *Server) progressResponse() ProgressResponse {
	completed := s.deps.Progress.Completed()
	if completed == nil {
		completed = []int{}
	}
	return ProgressResponse{
		Completed: completed,
		Count:     len(completed),
		Total:     s.deps.Catalog.Len(),
		Ratio:     s.deps.Progress.Percent(),
	}
}

// lessonParam resolves :day. On failure it has already written the error.
func (s *Server) lessonParam(c *gin.Context) (curriculum.DayLesson, bool) {
	raw := c.Param("day")
	day, err := strconv.Atoi(raw)
	if err != nil || strconv.Itoa(day) != raw {
		RespondError(c, http.StatusBadRequest, CodeInvalidDay, fmt.Errorf("%q: %w", raw, errInvalidDay))
		return curriculum.DayLesson{}, false
	}
	l, err := s.deps.Catalog.Get(day)
	if err != nil {
		RespondError(c, http.StatusNotFound, CodeLessonNotFound, err)
		return curriculum.DayLesson{}, false
	}
	return l, true
}

// GET /api/lessons[?category=css]
func (s *Server) listLessons(c *gin.Context) {
	lessons := s.deps.Catalog.All()
	if raw := c.Query("category"); raw != "" {
		cat, err := curriculum.ParseCategory(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, CodeInvalidQuery, err)
			return
		}
		lessons = s.deps.Catalog.ByCategory(cat)
	}

	out := make([]LessonSummary, len(lessons))
	for i, l := range lessons {
		out[i] = s.summary(l)
	}
	RespondOK(c, gin.H{"lessons": out, "count": len(out)})
}

// GET /api/lessons/:day
func (s *Server) getLesson(c *gin.Context) {
	l, ok := s.lessonParam(c)
	if !ok {
		return
	}
	s.recordView(c.Request.Context(), l.Day, store.SourceAPI)
	RespondOK(c, s.detail(l))
}

// GET /api/progress
func (s *Server) getProgress(c *gin.Context) {
	RespondOK(c, s.progressResponse())
}

// PUT /api/progress/:day
func (s *Server) completeDay(c *gin.Context) {
	l, ok := s.lessonParam(c)
	if !ok {
		return
	}
	s.deps.Progress.Complete(c.Request.Context(), l.Day)
	RespondOK(c, s.progressResponse())
}

// DELETE /api/progress/:day
func (s *Server) uncompleteDay(c *gin.Context) {
	l, ok := s.lessonParam(c)
	if !ok {
		return
	}
	s.deps.Progress.Uncomplete(c.Request.Context(), l.Day)
	RespondOK(c, s.progressResponse())
}

// GET /api/activity[?limit=50]
func (s *Server) listActivity(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			RespondError(c, http.StatusBadRequest, CodeInvalidQuery, fmt.Errorf("limit %q must be a positive number", raw))
			return
		}
		limit = min(n, 500)
	}

	out := []ActivityEntry{}
	if s.deps.Session != nil {
		entries, err := s.deps.Session.Recent(c.Request.Context(), limit)
		if err != nil {
			_ = c.Error(err)
			RespondError(c, http.StatusInternalServerError, CodeInternal, errors.New("activity unavailable"))
			return
		}
		for _, e := range entries {
			out = append(out, activityEntry(e))
		}
	}
	RespondOK(c, gin.H{"activity": out})
}

func activityEntry(e store.Activity) ActivityEntry {
	out := ActivityEntry{
		Kind:      e.Kind,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Day:       e.Day,
	}
	switch e.Kind {
	case store.ActivityLessonView:
		out.Source = e.Source
	case store.ActivityProgressChange:
		out.Completed = &e.Completed
	case store.ActivityLLMRequest:
		out.Purpose = e.Purpose
		out.Model = e.Model
		out.Success = &e.Success
	}
	return out
}

// GET /healthcheck
func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) recordView(ctx context.Context, day int, source string) {
	if s.deps.Session == nil {
		return
	}
	if err := s.deps.Session.RecordLessonView(ctx, day, source); err != nil {
		s.log.Warn("record lesson view", "day", day, "source", source, "error", err)
	}
}
