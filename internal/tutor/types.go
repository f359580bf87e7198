package tutor

import "github.com/abhisek/webdev100/internal/curriculum"

// Hint is an AI nudge for one exercise. It never contains a full solution.
type Hint struct {
	Day        int
	ExerciseID string
	Text       string
	Concept    string
	NextStep   string
}

// HintInput is what the tutor needs to write a hint.
type HintInput struct {
	Lesson   curriculum.DayLesson
	Exercise curriculum.Exercise

	// Attempt is optional learner-supplied context, e.g. what they tried.
	Attempt string
}

// Config holds hint generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by the CLI and TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.3,
	}
}
