package curriculum

import (
	"fmt"
	"strings"
)

// Problem is a single validation finding.
type Problem struct {
	File    string
	Message string
}

func (p Problem) String() string {
	if p.File == "" {
		return p.Message
	}
	return p.File + ": " + p.Message
}

// ValidationError aggregates every problem found while loading content.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return fmt.Sprintf("curriculum validation failed (%d problems):\n  %s",
		len(e.Problems), strings.Join(lines, "\n  "))
}

// HasProblems reports whether any problem was recorded.
func (e *ValidationError) HasProblems() bool {
	return len(e.Problems) > 0
}

func (e *ValidationError) add(file, msg string) {
	e.Problems = append(e.Problems, Problem{File: file, Message: msg})
}

// validateLessons runs the checks that span files or that the schema cannot
// express. Problems are appended to verr.
func validateLessons(sources []source, verr *ValidationError) {
	seenDay := make(map[int]string, len(sources))
	categorySet := make(map[Category]bool)

	for _, s := range sources {
		l := s.lesson

		if prev, dup := seenDay[l.Day]; dup {
			verr.add(s.file, fmt.Sprintf("duplicate day %d (already defined in %s)", l.Day, prev))
		} else {
			seenDay[l.Day] = s.file
		}
		categorySet[l.Category] = true

		if want := FileName(l.Day); s.file != want {
			verr.add(s.file, fmt.Sprintf("day %d must live in %s", l.Day, want))
		}

		seenExercise := make(map[string]bool, len(l.Exercises))
		prefix := fmt.Sprintf("d%03d-", l.Day)
		for _, ex := range l.Exercises {
			if seenExercise[ex.ID] {
				verr.add(s.file, fmt.Sprintf("duplicate exercise id %q", ex.ID))
			}
			seenExercise[ex.ID] = true
			if !strings.HasPrefix(ex.ID, prefix) {
				verr.add(s.file, fmt.Sprintf("exercise id %q must start with %q", ex.ID, prefix))
			}
		}

		classwork, homework := Partition(l.Exercises)
		if len(classwork)+len(homework) != len(l.Exercises) {
			verr.add(s.file, "exercise with unknown type")
		}
		if len(classwork) == 0 {
			verr.add(s.file, "lesson has no classwork exercise")
		}
		if len(homework) == 0 {
			verr.add(s.file, "lesson has no homework exercise")
		}

		seenTerm := make(map[string]bool, len(l.KeyTerms))
		for _, kt := range l.KeyTerms {
			key := strings.ToLower(kt.Term)
			if seenTerm[key] {
				verr.add(s.file, fmt.Sprintf("duplicate key term %q", kt.Term))
			}
			seenTerm[key] = true
		}
	}

	if len(sources) == 0 {
		return
	}
	for _, c := range AllCategories() {
		if !categorySet[c] {
			verr.add("", fmt.Sprintf("category %q has no lessons", c))
		}
	}
}
