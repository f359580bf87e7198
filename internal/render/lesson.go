package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/ui/components"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

// LessonOptions controls Lesson.
type LessonOptions struct {
	Width int
	// Plain disables colors and markdown styling.
	Plain     bool
	Completed bool
	// Selected highlights one exercise by ID.
	Selected string
}

// Lesson renders a full lesson as a document: header, description,
// objectives, explanation, key terms, then classwork and homework.
func Lesson(md *Markdown, l curriculum.DayLesson, opts LessonOptions) string {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	s := newStyler(opts.Plain)

	var b strings.Builder

	header := fmt.Sprintf("Day %d · %s", l.Day, l.Title)
	b.WriteString(s.title(header))
	b.WriteString("  ")
	b.WriteString(s.category(l.Category))
	if opts.Completed {
		b.WriteString("  ")
		b.WriteString(s.done("✓ completed"))
	}
	b.WriteString("\n")

	if l.Description != "" {
		b.WriteString("\n")
		b.WriteString(s.wrap(l.Description, opts.Width))
		b.WriteString("\n")
	}

	if len(l.Objectives) > 0 {
		b.WriteString("\n" + s.heading("Objectives") + "\n")
		for i, o := range l.Objectives {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, o)
		}
	}

	if strings.TrimSpace(l.Explanation) != "" {
		b.WriteString("\n" + s.heading("Explanation") + "\n")
		b.WriteString(md.Render(l.Explanation, opts.Width))
		b.WriteString("\n")
	}

	if len(l.KeyTerms) > 0 {
		b.WriteString("\n" + s.heading("Key terms") + "\n")
		for _, kt := range l.KeyTerms {
			fmt.Fprintf(&b, "  %s  %s\n", s.term(kt.Term), kt.Definition)
		}
	}

	classwork, homework := curriculum.Partition(l.Exercises)
	writeExercises(&b, s, "Classwork", classwork, opts.Selected)
	writeExercises(&b, s, "Homework", homework, opts.Selected)

	return b.String()
}

func writeExercises(b *strings.Builder, s styler, heading string, exercises []curriculum.Exercise, selected string) {
	if len(exercises) == 0 {
		return
	}
	b.WriteString("\n" + s.heading(heading) + "\n")
	for _, ex := range exercises {
		marker := "  "
		if ex.ID == selected {
			marker = s.selected("▸ ")
		}
		fmt.Fprintf(b, "%s%s  %s  %s\n", marker, s.exerciseTitle(ex.Title, ex.ID == selected), s.difficulty(ex.Difficulty), s.dim(ex.ID))
		for i, step := range ex.Instructions {
			fmt.Fprintf(b, "     %d. %s\n", i+1, step)
		}
	}
}

// styler applies theme styles unless plain output was requested.
type styler struct {
	plain bool
}

func newStyler(plain bool) styler { return styler{plain: plain} }

func (s styler) apply(st lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return st.Render(text)
}

func (s styler) title(t string) string   { return s.apply(theme.Heading.Foreground(theme.Primary), t) }
func (s styler) heading(t string) string { return s.apply(theme.Heading, t) }
func (s styler) done(t string) string    { return s.apply(theme.Done, t) }
func (s styler) dim(t string) string     { return s.apply(lipgloss.NewStyle().Foreground(theme.TextDim), t) }
func (s styler) term(t string) string    { return s.apply(lipgloss.NewStyle().Bold(true), t) }
func (s styler) selected(t string) string {
	return s.apply(theme.Selected, t)
}

func (s styler) exerciseTitle(t string, selected bool) string {
	if selected {
		return s.apply(theme.Selected, t)
	}
	return s.apply(theme.Body.Bold(true), t)
}

func (s styler) category(c curriculum.Category) string {
	if s.plain {
		return "[" + c.DisplayName() + "]"
	}
	return components.CategoryBadge(c)
}

func (s styler) difficulty(d curriculum.Difficulty) string {
	if s.plain {
		return "[" + d.DisplayName() + "]"
	}
	return components.DifficultyBadge(d)
}

func (s styler) wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
