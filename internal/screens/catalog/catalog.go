package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/screens/lesson"
	"github.com/abhisek/webdev100/internal/ui/components"
	"github.com/abhisek/webdev100/internal/ui/layout"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowLesson
)

type row struct {
	kind     rowKind
	category curriculum.Category
	lesson   curriculum.DayLesson
}

// CatalogScreen lists every day grouped by category.
type CatalogScreen struct {
	deps         *screen.Deps
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a new CatalogScreen with the cursor on the first lesson.
func New(deps *screen.Deps) *CatalogScreen {
	var rows []row
	for _, cat := range curriculum.AllCategories() {
		lessons := deps.Catalog.ByCategory(cat)
		if len(lessons) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowCategoryHeader, category: cat})
		for _, l := range lessons {
			rows = append(rows, row{kind: rowLesson, category: cat, lesson: l})
		}
	}

	s := &CatalogScreen{deps: deps, rows: rows}
	s.moveCursor(1)
	return s
}

func (s *CatalogScreen) Init() tea.Cmd {
	return nil
}

func (s *CatalogScreen) Title() string {
	return "Curriculum"
}

func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the day under the cursor, or 0 when the list is empty.
func (s *CatalogScreen) Selected() int {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowLesson {
		return 0
	}
	return s.rows[s.cursor].lesson.Day
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.jumpCategory(1)
		case "shift+tab":
			s.jumpCategory(-1)
		case "enter":
			if day := s.Selected(); day != 0 {
				return s, router.Push(lesson.Open(s.deps, day))
			}
		}
	}
	return s, nil
}

// moveCursor moves by delta, skipping category headers. Row 0 is always a
// header, so the call from New lands on the first lesson.
func (s *CatalogScreen) moveCursor(delta int) {
	for next := s.cursor + delta; next >= 0 && next < len(s.rows); next += delta {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
	}
}

// jumpCategory moves to the first lesson of the next or previous category,
// wrapping around.
func (s *CatalogScreen) jumpCategory(step int) {
	var starts []int
	current := -1
	for i, r := range s.rows {
		if r.kind == rowCategoryHeader && i+1 < len(s.rows) {
			if i < s.cursor {
				current = len(starts)
			}
			starts = append(starts, i+1)
		}
	}
	if len(starts) == 0 {
		return
	}
	next := ((current+step)%len(starts) + len(starts)) % len(starts)
	s.cursor = starts[next]
}

// adjustScroll keeps the cursor and its category header on screen.
func (s *CatalogScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CatalogScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return theme.Hint.Render("  The curriculum is empty.")
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderHeader(r.category, width))
		case rowLesson:
			lines = append(lines, s.renderLesson(r.lesson, i == s.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *CatalogScreen) renderHeader(cat curriculum.Category, width int) string {
	lessons := s.deps.Catalog.ByCategory(cat)
	done := 0
	for _, l := range lessons {
		if s.deps.Progress.IsComplete(l.Day) {
			done++
		}
	}
	name := strings.ToUpper(cat.DisplayName())
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d/%d", done, len(lessons)))
	return lipgloss.NewStyle().
		Foreground(theme.CategoryColor(cat)).
		Bold(true).
		Width(width).
		Padding(0, 0, 0, 2).
		Render(name + count)
}

func (s *CatalogScreen) renderLesson(l curriculum.DayLesson, selected bool, width int) string {
	cursor := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		cursor = "▸ "
		style = theme.Selected
	}

	title := l.Title
	if maxTitle := width - 20; maxTitle > 10 && len([]rune(title)) > maxTitle {
		title = string([]rune(title)[:maxTitle-1]) + "…"
	}

	return fmt.Sprintf("  %s%s %s",
		cursor,
		components.CompletionIcon(s.deps.Progress.IsComplete(l.Day)),
		style.Render(fmt.Sprintf("Day %3d  %s", l.Day, title)),
	)
}
