package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"dayPath":  router.DayPath,
		"category": func(c curriculum.Category) string { return c.DisplayName() },
		"barWidth": func(f float64) template.CSS {
			return template.CSS("width:" + strconv.FormatFloat(f*100, 'f', 0, 64) + "%") //nolint:gosec
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// renderExplanations converts every lesson's markdown explanation to HTML
// up front so handlers never fail on it.
func renderExplanations(cat *curriculum.Catalog) (map[int]template.HTML, error) {
	md := goldmark.New()
	out := make(map[int]template.HTML, cat.Len())
	for _, l := range cat.All() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(l.Explanation), &buf); err != nil {
			return nil, fmt.Errorf("render day %d explanation: %w", l.Day, err)
		}
		// goldmark drops raw HTML unless WithUnsafe is set.
		out[l.Day] = template.HTML(buf.String()) //nolint:gosec
	}
	return out, nil
}

type pageBase struct {
	Title     string
	Completed int
	Total     int
	Percent   float64
}

type categoryRow struct {
	Category curriculum.Category
	Done     int
	Total    int
	FirstDay int
	Lessons  []LessonSummary
}

type homeData struct {
	pageBase
	Categories []categoryRow
	NextDay    int
}

type daysData struct {
	pageBase
	Categories []categoryRow
}

type dayData struct {
	pageBase
	Lesson      curriculum.DayLesson
	Explanation template.HTML
	Classwork   []curriculum.Exercise
	Homework    []curriculum.Exercise
	Done        bool
	Prev        int
	Next        int
}

type notFoundData struct {
	pageBase
	Message string
}

func (s *Server) base(title string) pageBase {
	return pageBase{
		Title:     title,
		Completed: s.deps.Progress.Count(),
		Total:     s.deps.Catalog.Len(),
		Percent:   s.deps.Progress.Percent(),
	}
}

func (s *Server) categories() []categoryRow {
	var rows []categoryRow
	for _, cat := range curriculum.AllCategories() {
		lessons := s.deps.Catalog.ByCategory(cat)
		if len(lessons) == 0 {
			continue
		}
		row := categoryRow{Category: cat, Total: len(lessons), FirstDay: lessons[0].Day}
		for _, l := range lessons {
			sum := s.summary(l)
			if sum.Completed {
				row.Done++
			}
			row.Lessons = append(row.Lessons, sum)
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *Server) render(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// GET /
func (s *Server) homePage(c *gin.Context) {
	last := 0
	if done := s.deps.Progress.Completed(); len(done) > 0 {
		last = done[len(done)-1]
	}
	next, _ := s.deps.Catalog.NextIncomplete(last, s.deps.Progress.IsComplete)
	s.render(c, http.StatusOK, "home.html", homeData{
		pageBase:   s.base("100 Days of Web Development"),
		Categories: s.categories(),
		NextDay:    next,
	})
}

// GET /days
func (s *Server) daysPage(c *gin.Context) {
	s.render(c, http.StatusOK, "days.html", daysData{
		pageBase:   s.base("All days"),
		Categories: s.categories(),
	})
}

// GET /day/:day
func (s *Server) dayPage(c *gin.Context) {
	route := router.Parse(c.Request.URL.Path)
	l, ok := s.deps.Catalog.Lookup(route.Day)
	if route.Kind != router.RouteDay || !ok {
		s.notFound(c, route)
		return
	}

	s.recordView(c.Request.Context(), l.Day, store.SourceWeb)
	cw, hw := curriculum.Partition(l.Exercises)
	prev, next, _ := s.deps.Catalog.Neighbors(l.Day)
	s.render(c, http.StatusOK, "day.html", dayData{
		pageBase:    s.base(fmt.Sprintf("Day %d · %s", l.Day, l.Title)),
		Lesson:      l,
		Explanation: s.html[l.Day],
		Classwork:   cw,
		Homework:    hw,
		Done:        s.deps.Progress.IsComplete(l.Day),
		Prev:        prev,
		Next:        next,
	})
}

// POST /day/:day/toggle flips completion and sends the browser back to the
// lesson.
func (s *Server) togglePage(c *gin.Context) {
	route := router.Parse(strings.TrimSuffix(c.Request.URL.Path, "/toggle"))
	if route.Kind != router.RouteDay || !s.deps.Catalog.Has(route.Day) {
		s.notFound(c, route)
		return
	}
	s.deps.Progress.Toggle(c.Request.Context(), route.Day)
	c.Redirect(http.StatusSeeOther, router.DayPath(route.Day))
}

func (s *Server) noRoute(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
		RespondError(c, http.StatusNotFound, CodeNotFound, fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path))
		return
	}
	s.notFound(c, router.Parse(c.Request.URL.Path))
}

func (s *Server) notFound(c *gin.Context, route router.Route) {
	msg := "Page not found"
	if route.Day != 0 {
		msg = fmt.Sprintf("Day %d not found", route.Day)
	}
	s.render(c, http.StatusNotFound, "notfound.html", notFoundData{
		pageBase: s.base("Not found"),
		Message:  msg,
	})
}
