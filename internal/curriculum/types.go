package curriculum

import (
	"fmt"
	"slices"
	"strings"
)

// FirstDay and LastDay bound the curriculum.
const (
	FirstDay = 1
	LastDay  = 100
)

// Category groups lessons by subject area.
type Category string

const (
	CategoryHTML       Category = "html"
	CategoryCSS        Category = "css"
	CategoryJavaScript Category = "javascript"
	CategoryDOM        Category = "dom"
	CategoryTooling    Category = "tooling"
	CategoryProject    Category = "project"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryHTML,
		CategoryCSS,
		CategoryJavaScript,
		CategoryDOM,
		CategoryTooling,
		CategoryProject,
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryHTML:
		return "HTML"
	case CategoryCSS:
		return "CSS"
	case CategoryJavaScript:
		return "JavaScript"
	case CategoryDOM:
		return "DOM & Browser APIs"
	case CategoryTooling:
		return "Tooling"
	case CategoryProject:
		return "Projects"
	default:
		return string(c)
	}
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	want := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range AllCategories() {
		if c == want {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ExerciseType tells whether an exercise is done in class or at home.
type ExerciseType string

const (
	ExerciseClasswork ExerciseType = "classwork"
	ExerciseHomework  ExerciseType = "homework"
)

// DisplayName returns a human-readable name for an exercise type.
func (t ExerciseType) DisplayName() string {
	switch t {
	case ExerciseClasswork:
		return "Classwork"
	case ExerciseHomework:
		return "Homework"
	default:
		return string(t)
	}
}

// ParseExerciseType resolves an exercise type name.
func ParseExerciseType(s string) (ExerciseType, error) {
	switch ExerciseType(strings.ToLower(strings.TrimSpace(s))) {
	case ExerciseClasswork:
		return ExerciseClasswork, nil
	case ExerciseHomework:
		return ExerciseHomework, nil
	}
	return "", fmt.Errorf("unknown exercise type %q", s)
}

// Difficulty rates how demanding an exercise is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DisplayName returns a human-readable name for a difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// ParseDifficulty resolves a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// KeyTerm is a glossary entry attached to a lesson.
type KeyTerm struct {
	Term       string `yaml:"term" json:"term"`
	Definition string `yaml:"definition" json:"definition"`
}

// Exercise is a practice task attached to a lesson.
type Exercise struct {
	ID           string       `yaml:"id" json:"id"`
	Title        string       `yaml:"title" json:"title"`
	Type         ExerciseType `yaml:"type" json:"type"`
	Difficulty   Difficulty   `yaml:"difficulty" json:"difficulty"`
	Instructions []string     `yaml:"instructions" json:"instructions"`
}

// DayLesson is the static record for one day of the curriculum.
type DayLesson struct {
	Day         int        `yaml:"day" json:"day"`
	Title       string     `yaml:"title" json:"title"`
	Category    Category   `yaml:"category" json:"category"`
	Description string     `yaml:"description" json:"description"`
	Objectives  []string   `yaml:"objectives" json:"objectives"`
	Explanation string     `yaml:"explanation" json:"explanation"`
	KeyTerms    []KeyTerm  `yaml:"key_terms" json:"key_terms"`
	Exercises   []Exercise `yaml:"exercises" json:"exercises"`
}

// clone returns a deep copy so callers cannot reach a catalog's records.
func (l DayLesson) clone() DayLesson {
	l.Objectives = slices.Clone(l.Objectives)
	l.KeyTerms = slices.Clone(l.KeyTerms)
	l.Exercises = slices.Clone(l.Exercises)
	for i := range l.Exercises {
		l.Exercises[i].Instructions = slices.Clone(l.Exercises[i].Instructions)
	}
	return l
}

// Classwork returns the lesson's classwork exercises in authored order.
func (l DayLesson) Classwork() []Exercise {
	cw, _ := Partition(l.Exercises)
	return cw
}

// Homework returns the lesson's homework exercises in authored order.
func (l DayLesson) Homework() []Exercise {
	_, hw := Partition(l.Exercises)
	return hw
}

// Exercise returns the exercise with the given id.
func (l DayLesson) Exercise(id string) (Exercise, bool) {
	for _, ex := range l.Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

// Partition splits exercises into classwork and homework, preserving order.
// An exercise with any other type lands in neither slice; validation rejects
// such records before they reach a catalog.
func Partition(exercises []Exercise) (classwork, homework []Exercise) {
	for _, ex := range exercises {
		switch ex.Type {
		case ExerciseClasswork:
			classwork = append(classwork, ex)
		case ExerciseHomework:
			homework = append(homework, ex)
		}
	}
	return classwork, homework
}
