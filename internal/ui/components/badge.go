package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

func pill(text string, fg color.Color) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Render("[" + text + "]")
}

// CategoryBadge renders a category pill in the category's color.
func CategoryBadge(c curriculum.Category) string {
	return pill(c.DisplayName(), theme.CategoryColor(c))
}

// DifficultyBadge renders a difficulty pill.
func DifficultyBadge(d curriculum.Difficulty) string {
	return pill(d.DisplayName(), theme.DifficultyColor(d))
}

// TypeBadge renders classwork or homework.
func TypeBadge(t curriculum.ExerciseType) string {
	fg := theme.Secondary
	if t == curriculum.ExerciseHomework {
		fg = theme.Primary
	}
	return pill(t.DisplayName(), fg)
}

// CompletionIcon returns a check for completed days and a hollow dot
// otherwise.
func CompletionIcon(done bool) string {
	if done {
		return theme.Done.Render("✓")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
}
