package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
)

// Color palette, dark editor-like background with bright accents.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Category colors follow the usual web docs conventions: HTML orange,
// CSS blue, JavaScript yellow.
var categoryColors = map[curriculum.Category]color.Color{
	curriculum.CategoryHTML:       lipgloss.Color("#E34F26"),
	curriculum.CategoryCSS:        lipgloss.Color("#2965F1"),
	curriculum.CategoryJavaScript: lipgloss.Color("#F7DF1E"),
	curriculum.CategoryDOM:        lipgloss.Color("#14B8A6"),
	curriculum.CategoryTooling:    lipgloss.Color("#94A3B8"),
	curriculum.CategoryProject:    lipgloss.Color("#8B5CF6"),
}

var difficultyColors = map[curriculum.Difficulty]color.Color{
	curriculum.DifficultyEasy:   Success,
	curriculum.DifficultyMedium: Accent,
	curriculum.DifficultyHard:   Error,
}

// CategoryColor returns the accent color of a category. Unknown
// categories get the dim text color.
func CategoryColor(c curriculum.Category) color.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return TextDim
}

// DifficultyColor returns the color used for a difficulty badge.
func DifficultyColor(d curriculum.Difficulty) color.Color {
	if col, ok := difficultyColors[d]; ok {
		return col
	}
	return TextDim
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Problem = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
