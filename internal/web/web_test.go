package web

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/logging"
	"github.com/abhisek/webdev100/internal/progress"
	"github.com/abhisek/webdev100/internal/screen/screentest"
	"github.com/abhisek/webdev100/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, Deps) {
	t.Helper()
	cat, err := curriculum.NewCatalog([]curriculum.DayLesson{
		screentest.Lesson(1, curriculum.CategoryHTML),
		screentest.Lesson(2, curriculum.CategoryHTML),
		screentest.Lesson(21, curriculum.CategoryCSS),
	})
	require.NoError(t, err)

	st, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	sess := store.NewSession(st.JournalRepo())

	deps := Deps{
		Catalog:  cat,
		Progress: progress.New(cat.Len(), progress.WithJournal(sess)),
		Session:  sess,
		Log:      logging.Nop(),
	}
	srv, err := New(Config{Addr: "127.0.0.1:0", AllowedOrigins: []string{"http://localhost:5173"}}, deps)
	require.NoError(t, err)
	return srv, deps
}

func do(t *testing.T, srv *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestNew_RequiresCatalog(t *testing.T) {
	_, err := New(Config{}, Deps{})
	assert.Error(t, err)
}

func TestHealthcheck(t *testing.T) {
	srv, _ := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRequestIDEchoed(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
}

func TestListLessons(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name  string
		query string
		days  []int
	}{
		{"all", "", []int{1, 2, 21}},
		{"html", "?category=html", []int{1, 2}},
		{"css display name", "?category=CSS", []int{21}},
		{"empty category", "?category=dom", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, srv, http.MethodGet, "/api/lessons"+tt.query)
			require.Equal(t, http.StatusOK, w.Code)

			body := decode[struct {
				Lessons []LessonSummary `json:"lessons"`
				Count   int             `json:"count"`
			}](t, w)
			var days []int
			for _, l := range body.Lessons {
				days = append(days, l.Day)
				assert.Equal(t, 1, l.Classwork)
				assert.Equal(t, 1, l.Homework)
			}
			assert.Equal(t, tt.days, days)
			assert.Equal(t, len(tt.days), body.Count)
		})
	}
}

func TestListLessons_BadCategory(t *testing.T) {
	srv, _ := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/api/lessons?category=cobol")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidQuery, decode[ErrorEnvelope](t, w).Error.Code)
}

func TestGetLesson(t *testing.T) {
	srv, deps := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/lessons/2")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[LessonDetail](t, w)
	assert.Equal(t, 2, got.Day)
	assert.Equal(t, "HTML", got.CategoryName)
	require.Len(t, got.Classwork, 1)
	require.Len(t, got.Homework, 1)
	assert.Equal(t, "d002-class", got.Classwork[0].ID)
	assert.Equal(t, "d002-home", got.Homework[0].ID)
	assert.Equal(t, 1, got.Prev)
	assert.Equal(t, 21, got.Next)

	recent, err := deps.Session.Recent(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, store.ActivityLessonView, recent[0].Kind)
	assert.Equal(t, store.SourceAPI, recent[0].Source)
}

func TestGetLesson_Errors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/lessons/50", http.StatusNotFound, CodeLessonNotFound},
		{"/api/lessons/0", http.StatusNotFound, CodeLessonNotFound},
		{"/api/lessons/101", http.StatusNotFound, CodeLessonNotFound},
		{"/api/lessons/abc", http.StatusBadRequest, CodeInvalidDay},
		{"/api/lessons/007", http.StatusBadRequest, CodeInvalidDay},
		{"/api/lessons/+7", http.StatusBadRequest, CodeInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, srv, http.MethodGet, tt.path)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode[ErrorEnvelope](t, w).Error.Code)
		})
	}
}

func TestProgressAPI(t *testing.T) {
	srv, deps := newTestServer(t)

	w := do(t, srv, http.MethodPut, "/api/progress/21")
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, srv, http.MethodPut, "/api/progress/1")
	require.Equal(t, http.StatusOK, w.Code)

	want := ProgressResponse{Completed: []int{1, 21}, Count: 2, Total: 3, Ratio: 2.0 / 3.0}
	if diff := cmp.Diff(want, decode[ProgressResponse](t, w)); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, deps.Progress.IsComplete(21))

	w = do(t, srv, http.MethodDelete, "/api/progress/21")
	require.Equal(t, http.StatusOK, w.Code)
	want = ProgressResponse{Completed: []int{1}, Count: 1, Total: 3, Ratio: 1.0 / 3.0}
	if diff := cmp.Diff(want, decode[ProgressResponse](t, do(t, srv, http.MethodGet, "/api/progress"))); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}

	w = do(t, srv, http.MethodPut, "/api/progress/77")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, deps.Progress.Count(), "unknown days are never recorded")
}

func TestProgressAPI_EmptyListNotNull(t *testing.T) {
	srv, _ := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/api/progress")
	assert.Contains(t, w.Body.String(), `"completed":[]`)
}

func TestActivityAPI(t *testing.T) {
	srv, _ := newTestServer(t)
	do(t, srv, http.MethodGet, "/api/lessons/1")
	do(t, srv, http.MethodPut, "/api/progress/1")

	w := do(t, srv, http.MethodGet, "/api/activity?limit=10")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Activity []ActivityEntry `json:"activity"`
	}](t, w)
	require.Len(t, body.Activity, 2)
	assert.Equal(t, store.ActivityProgressChange, body.Activity[0].Kind)
	require.NotNil(t, body.Activity[0].Completed)
	assert.True(t, *body.Activity[0].Completed)
	assert.Equal(t, store.ActivityLessonView, body.Activity[1].Kind)

	w = do(t, srv, http.MethodGet, "/api/activity?limit=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivityAPI_NoSession(t *testing.T) {
	_, deps := newTestServer(t)
	deps.Session = nil
	srv, err := New(Config{}, deps)
	require.NoError(t, err)

	w := do(t, srv, http.MethodGet, "/api/activity")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"activity":[]}`, w.Body.String())
}

func TestPages(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("home", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `href="/day/1"`)
		assert.Contains(t, w.Body.String(), "0 of 3 days complete")
	})

	t.Run("days", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/days")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Day 21 · Lesson 21")
		assert.Less(t, strings.Index(body, "Day 2 ·"), strings.Index(body, "Day 21 ·"))
	})

	t.Run("day", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/day/2")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Day 2 · Lesson 2")
		assert.Contains(t, body, "<strong>text</strong>", "explanation is rendered markdown")
		cw, hw := strings.Index(body, "<h2>Classwork</h2>"), strings.Index(body, "<h2>Homework</h2>")
		require.True(t, cw >= 0 && hw >= 0)
		assert.Less(t, cw, strings.Index(body, `id="d002-class"`))
		assert.Less(t, hw, strings.Index(body, `id="d002-home"`))
		assert.Less(t, strings.Index(body, `id="d002-class"`), hw)
		assert.Contains(t, body, `href="/day/21"`, "next skips the gap")
	})
}

func TestPages_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path string
		want string
	}{
		{"/day/50", "Day 50 not found"},
		{"/day/101", "Day 101 not found"},
		{"/day/abc", "Page not found"},
		{"/day/007", "Page not found"},
		{"/nowhere", "Page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, srv, http.MethodGet, tt.path)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			assert.Contains(t, w.Body.String(), `<a href="/">Back home</a>`)
		})
	}
}

func TestAPINoRouteIsJSON(t *testing.T) {
	srv, _ := newTestServer(t)
	w := do(t, srv, http.MethodGet, "/api/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeNotFound, decode[ErrorEnvelope](t, w).Error.Code)
}

func TestTogglePage(t *testing.T) {
	srv, deps := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/day/1/toggle")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/day/1", w.Header().Get("Location"))
	assert.True(t, deps.Progress.IsComplete(1))

	do(t, srv, http.MethodPost, "/day/1/toggle")
	assert.False(t, deps.Progress.IsComplete(1))

	w = do(t, srv, http.MethodPost, "/day/50/toggle")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, deps.Progress.Count())
}

func TestDayPageRecordsWebView(t *testing.T) {
	srv, deps := newTestServer(t)
	do(t, srv, http.MethodGet, "/day/21")
	do(t, srv, http.MethodGet, "/day/50")

	recent, err := deps.Session.Recent(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, 21, recent[0].Day)
	assert.Equal(t, store.SourceWeb, recent[0].Source)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/progress/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthcheck")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
