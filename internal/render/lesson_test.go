package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/webdev100/internal/curriculum"
)

func sampleLesson() curriculum.DayLesson {
	return curriculum.DayLesson{
		Day:         21,
		Title:       "Selectors",
		Category:    curriculum.CategoryCSS,
		Description: "Target elements by type, class and id.",
		Objectives:  []string{"Write type selectors", "Combine class selectors"},
		Explanation: "A **selector** picks elements.\n\n```css\n.card { color: red; }\n```",
		KeyTerms:    []curriculum.KeyTerm{{Term: "Specificity", Definition: "How the browser ranks competing rules."}},
		Exercises: []curriculum.Exercise{
			{ID: "d021-home", Title: "Style a card", Type: curriculum.ExerciseHomework, Difficulty: curriculum.DifficultyMedium, Instructions: []string{"Give the card a border."}},
			{ID: "d021-class", Title: "Color the nav", Type: curriculum.ExerciseClasswork, Difficulty: curriculum.DifficultyEasy, Instructions: []string{"Select nav links.", "Make them blue."}},
		},
	}
}

func TestLesson_PlainOrderAndContent(t *testing.T) {
	out := Lesson(NewMarkdown(StylePlain), sampleLesson(), LessonOptions{Width: 80, Plain: true, Completed: true})

	assert.NotContains(t, out, "\x1b[", "plain output has no escape sequences")
	assert.Contains(t, out, "Day 21 · Selectors")
	assert.Contains(t, out, "[CSS]")
	assert.Contains(t, out, "✓ completed")
	assert.Contains(t, out, "1. Write type selectors")
	assert.Contains(t, out, "Specificity")
	assert.Contains(t, out, ".card")
	assert.Contains(t, out, "2. Make them blue.")

	order := []string{"Objectives", "Explanation", "Key terms", "Classwork", "Color the nav", "Homework", "Style a card"}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		require.GreaterOrEqual(t, i, 0, "missing %q", s)
		assert.Greater(t, i, last, "%q is out of order", s)
		last = i
	}
}

func TestLesson_SelectedExercise(t *testing.T) {
	out := Lesson(NewMarkdown(StylePlain), sampleLesson(), LessonOptions{Plain: true, Selected: "d021-home"})
	assert.Contains(t, out, "▸ Style a card")
	assert.NotContains(t, out, "▸ Color the nav")
}

func TestLesson_NotCompleted(t *testing.T) {
	out := Lesson(NewMarkdown(StylePlain), sampleLesson(), LessonOptions{Plain: true})
	assert.NotContains(t, out, "completed")
}

func TestMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "", NewMarkdown("").Render("  \n", 60))
}

func TestMarkdown_ReusesRenderer(t *testing.T) {
	md := NewMarkdown(StylePlain)
	md.Render("# one", 60)
	md.Render("# two", 60)
	md.Render("# three", 40)
	assert.Len(t, md.renderers, 2)
}
