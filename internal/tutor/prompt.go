package tutor

import (
	"fmt"
	"strings"
)

const hintSystemPrompt = `You are a friendly web development mentor helping a beginner through a 100-day HTML, CSS and JavaScript course. You give hints, never finished answers.`

func buildHintMessage(in HintInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Day %d: %s (%s)\n", in.Lesson.Day, in.Lesson.Title, in.Lesson.Category.DisplayName())
	if in.Lesson.Description != "" {
		fmt.Fprintf(&b, "About the day: %s\n", in.Lesson.Description)
	}

	if len(in.Lesson.Objectives) > 0 {
		b.WriteString("\nObjectives:\n")
		for _, o := range in.Lesson.Objectives {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}

	ex := in.Exercise
	fmt.Fprintf(&b, "\nExercise %s: %s\n", ex.ID, ex.Title)
	fmt.Fprintf(&b, "Type: %s, difficulty: %s\n", ex.Type.DisplayName(), ex.Difficulty.DisplayName())
	b.WriteString("Instructions:\n")
	for i, step := range ex.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	if attempt := strings.TrimSpace(in.Attempt); attempt != "" {
		fmt.Fprintf(&b, "\nWhat the learner tried:\n%s\n", attempt)
	}

	b.WriteString(`
Instructions:
1. Write a hint of 2-4 sentences that gets the learner unstuck.
2. Do not write the complete solution code. A single tag, property or method name is fine.
3. Name the concept being practised.
4. Suggest exactly one next step the learner can try right now.`)

	return b.String()
}
