// Package layout draws the frame every screen sits in: a header bar with
// session progress, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// narrowWidth is the width below which the header drops the brand.
const narrowWidth = 100

const brand = "webdev100"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"The lessons need at least %d×%d.\n\nThis terminal is %d×%d.",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the brand, the screen title centred and the session
// progress on the right. Narrow terminals lose the brand.
func RenderHeader(title string, completed, total int, width int) string {
	var left string
	if width >= narrowWidth {
		left = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	status := fmt.Sprintf("✓ %d/%d", completed, total)
	if total > 0 && completed == total {
		status = "✓ all done"
	}
	right := lipgloss.NewStyle().Foreground(theme.Success).Render(status)

	inner := max(width-4, 0) // border plus one space of padding each side
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	line := " " + left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return bar(width).Render(line)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer, giving the body whatever
// height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	styled := lipgloss.NewStyle().
		Width(width).
		Height(body).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, styled, footer)
}
