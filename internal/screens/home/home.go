package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/screens/activity"
	"github.com/abhisek/webdev100/internal/screens/catalog"
	"github.com/abhisek/webdev100/internal/screens/gotoday"
	"github.com/abhisek/webdev100/internal/screens/lesson"
	"github.com/abhisek/webdev100/internal/ui/components"
)

// Menu positions.
const (
	itemBrowse = iota
	itemGoTo
	itemContinue
	itemActivity
	itemQuit
)

// HomeScreen is the root screen: overall progress and the main menu.
type HomeScreen struct {
	deps          *screen.Deps
	menu          components.Menu
	latestVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. latestVersion is shown as an update note
// when non-empty.
func New(deps *screen.Deps, latestVersion string) *HomeScreen {
	h := &HomeScreen{deps: deps, latestVersion: latestVersion}

	items := []components.MenuItem{
		itemBrowse: {Label: "Browse curriculum", Action: func() tea.Cmd {
			return router.Push(catalog.New(deps))
		}},
		itemGoTo: {Label: "Go to day", Action: func() tea.Cmd {
			return router.Push(gotoday.New(deps))
		}},
		itemContinue: {Label: "Continue", Action: func() tea.Cmd {
			day, ok := h.nextDay()
			if !ok {
				return nil
			}
			return router.Push(lesson.Open(deps, day))
		}},
		itemActivity: {Label: "Session activity", Disabled: deps.Session == nil, Action: func() tea.Cmd {
			return router.Push(activity.New(deps))
		}},
		itemQuit: {Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// nextDay is the first incomplete day after the last completed one.
func (h *HomeScreen) nextDay() (int, bool) {
	last := 0
	if done := h.deps.Progress.Completed(); len(done) > 0 {
		last = done[len(done)-1]
	}
	return h.deps.Catalog.NextIncomplete(last, h.deps.Progress.IsComplete)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) refreshMenu() {
	item := &h.menu.Items[itemContinue]
	if day, ok := h.nextDay(); ok {
		item.Detail = fmt.Sprintf("Day %d", day)
		item.Disabled = false
	} else {
		item.Detail = "all done!"
		item.Disabled = true
		if h.menu.Selected == itemContinue {
			h.menu.Selected = itemBrowse
		}
	}
}

func (h *HomeScreen) stats() []categoryStat {
	var out []categoryStat
	for _, cat := range curriculum.AllCategories() {
		lessons := h.deps.Catalog.ByCategory(cat)
		if len(lessons) == 0 {
			continue
		}
		st := categoryStat{Category: cat, Total: len(lessons)}
		for _, l := range lessons {
			if h.deps.Progress.IsComplete(l.Day) {
				st.Done++
			}
		}
		out = append(out, st)
	}
	return out
}

func (h *HomeScreen) View(width, height int) string {
	h.refreshMenu()

	compact := height < 30 || width < 100
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderProgress(h.deps.Progress.Count(), h.deps.Catalog.Len(), cw),
	}
	if !compact {
		sections = append(sections, renderLegend(h.stats(), cw))
	}
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(h.menu.View()))
	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}
