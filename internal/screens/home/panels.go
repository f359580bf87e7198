package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/ui/components"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

const bannerFull = `█ █ █ █▀▀ █▄▄ █▀▄ █▀▀ █ █   ▄█ █▀█ █▀█
▀▄▀▄▀ ██▄ █▄█ █▄▀ ██▄ ▀▄▀    █ █▄█ █▄█`

const bannerCompact = "W E B D E V · 1 0 0"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	art := bannerFull
	if compact {
		art = bannerCompact
	}
	sub := theme.Hint.Render("100 days of HTML, CSS and JavaScript")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art) + "\n" + sub)
}

// renderProgress draws the overall bar with a "N of M days" caption.
func renderProgress(done, total, cw int) string {
	bar := components.NewProgressBar("", components.Ratio(done, total), true, cw-4)
	caption := theme.Hint.Render(fmt.Sprintf("%d of %d days complete", done, total))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(bar.View() + "\n" + caption)
}

// categoryStat is one legend row.
type categoryStat struct {
	Category curriculum.Category
	Done     int
	Total    int
}

// renderLegend lists each category in its color with completion counts.
func renderLegend(stats []categoryStat, cw int) string {
	var lines []string
	for _, st := range stats {
		swatch := lipgloss.NewStyle().Foreground(theme.CategoryColor(st.Category)).Render("■")
		name := fmt.Sprintf("%-20s", st.Category.DisplayName())
		count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%3d/%-3d", st.Done, st.Total))
		lines = append(lines, swatch+" "+theme.Body.Render(name)+" "+count)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available (webdev100 update)", latestVersion))
}

// renderFrame centers content in a rounded frame filling the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
