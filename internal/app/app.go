package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/screens/activity"
	"github.com/abhisek/webdev100/internal/screens/catalog"
	"github.com/abhisek/webdev100/internal/screens/home"
	"github.com/abhisek/webdev100/internal/screens/lesson"
	"github.com/abhisek/webdev100/internal/screens/notfound"
	"github.com/abhisek/webdev100/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps *screen.Deps
	// Start is opened on top of the home screen. The zero value stays
	// on home.
	Start router.Route
	// LatestVersion is shown on the home screen when an update exists.
	LatestVersion string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    *screen.Deps
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates the model with home at the root and the start
// route, if any, pushed above it.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		deps:   opts.Deps,
		router: router.New(home.New(opts.Deps, opts.LatestVersion)),
	}
	if s := startScreen(opts.Deps, opts.Start); s != nil {
		m.initCmd = m.router.Push(s)
	}
	return m
}

// startScreen maps a route to the screen that shows it. Home maps to nil.
func startScreen(deps *screen.Deps, r router.Route) screen.Screen {
	switch r.Kind {
	case router.RouteCatalog:
		return catalog.New(deps)
	case router.RouteDay:
		return lesson.Open(deps, r.Day)
	case router.RouteActivity:
		return activity.New(deps)
	case router.RouteNotFound:
		return notfound.New(r.Day)
	}
	return nil
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws header, active screen and footer at the current size.
func (m AppModel) render() string {
	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.deps.Progress.Count(), m.deps.Catalog.Len(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
