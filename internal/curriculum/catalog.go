package curriculum

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrLessonNotFound is returned when a day has no lesson record.
var ErrLessonNotFound = errors.New("lesson not found")

// DaysPerWeek is the size of a Week block.
const DaysPerWeek = 7

// Week is a block of consecutive days used to group the catalog.
type Week struct {
	Number  int
	Lessons []DayLesson
}

// Catalog is an immutable, indexed collection of lessons.
type Catalog struct {
	lessons    []DayLesson
	byDay      map[int]int
	byCategory map[Category][]int
	days       []int
}

// newCatalog indexes lessons. Callers must have validated them: days are
// assumed unique.
func newCatalog(lessons []DayLesson) *Catalog {
	sorted := make([]DayLesson, len(lessons))
	for i, l := range lessons {
		sorted[i] = l.clone()
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })

	c := &Catalog{
		lessons:    sorted,
		byDay:      make(map[int]int, len(sorted)),
		byCategory: make(map[Category][]int),
		days:       make([]int, len(sorted)),
	}
	for i, l := range sorted {
		c.byDay[l.Day] = i
		c.byCategory[l.Category] = append(c.byCategory[l.Category], i)
		c.days[i] = l.Day
	}
	return c
}

// NewCatalog builds a catalog from in-memory lessons after running the same
// structural checks Load applies to files. Used by tools and tests that
// construct lessons directly.
func NewCatalog(lessons []DayLesson) (*Catalog, error) {
	sources := make([]source, len(lessons))
	for i, l := range lessons {
		sources[i] = source{file: FileName(l.Day), lesson: l}
	}
	verr := &ValidationError{}
	validateLessonsPartial(sources, verr)
	if verr.HasProblems() {
		return nil, verr
	}
	return newCatalog(lessons), nil
}

// validateLessonsPartial is validateLessons without the category coverage
// rule, so that small hand-built catalogs are accepted.
func validateLessonsPartial(sources []source, verr *ValidationError) {
	full := &ValidationError{}
	validateLessons(sources, full)
	for _, p := range full.Problems {
		if p.File == "" {
			continue
		}
		verr.Problems = append(verr.Problems, p)
	}
	for _, s := range sources {
		if s.lesson.Day < FirstDay || s.lesson.Day > LastDay {
			verr.add(s.file, fmt.Sprintf("day %d outside %d..%d", s.lesson.Day, FirstDay, LastDay))
		}
	}
}

// Lookup returns the lesson for day. ok is false when no record exists.
func (c *Catalog) Lookup(day int) (DayLesson, bool) {
	i, ok := c.byDay[day]
	if !ok {
		return DayLesson{}, false
	}
	return c.lessons[i].clone(), true
}

// Get is Lookup with an error for callers that propagate failures.
func (c *Catalog) Get(day int) (DayLesson, error) {
	l, ok := c.Lookup(day)
	if !ok {
		return DayLesson{}, fmt.Errorf("day %d: %w", day, ErrLessonNotFound)
	}
	return l, nil
}

// Has reports whether a lesson exists for day.
func (c *Catalog) Has(day int) bool {
	_, ok := c.byDay[day]
	return ok
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// All returns a copy of every lesson in day order.
func (c *Catalog) All() []DayLesson {
	out := make([]DayLesson, len(c.lessons))
	for i, l := range c.lessons {
		out[i] = l.clone()
	}
	return out
}

// Days returns the defined day numbers in ascending order.
func (c *Catalog) Days() []int {
	return slices.Clone(c.days)
}

// ByCategory returns the lessons of a category in day order.
func (c *Catalog) ByCategory(cat Category) []DayLesson {
	idx := c.byCategory[cat]
	out := make([]DayLesson, len(idx))
	for i, j := range idx {
		out[i] = c.lessons[j].clone()
	}
	return out
}

// CategoryCounts returns how many lessons each category holds.
func (c *Catalog) CategoryCounts() map[Category]int {
	counts := make(map[Category]int, len(c.byCategory))
	for cat, idx := range c.byCategory {
		counts[cat] = len(idx)
	}
	return counts
}

// Neighbors returns the defined days immediately before and after day.
// A zero value means there is no neighbor on that side. ok is false when
// day itself is not defined.
func (c *Catalog) Neighbors(day int) (prev, next int, ok bool) {
	i, ok := c.byDay[day]
	if !ok {
		return 0, 0, false
	}
	if i > 0 {
		prev = c.days[i-1]
	}
	if i < len(c.days)-1 {
		next = c.days[i+1]
	}
	return prev, next, true
}

// Weeks groups lessons into blocks of DaysPerWeek consecutive day numbers.
// Week 1 covers days 1-7, week 2 days 8-14 and so on. Weeks without any
// lesson are omitted.
func (c *Catalog) Weeks() []Week {
	var weeks []Week
	for _, l := range c.lessons {
		n := (l.Day-1)/DaysPerWeek + 1
		if len(weeks) == 0 || weeks[len(weeks)-1].Number != n {
			weeks = append(weeks, Week{Number: n})
		}
		weeks[len(weeks)-1].Lessons = append(weeks[len(weeks)-1].Lessons, l.clone())
	}
	return weeks
}

// NextIncomplete returns the first defined day after `after` that is not in
// completed, wrapping around to the start. ok is false when every day is
// complete.
func (c *Catalog) NextIncomplete(after int, completed func(day int) bool) (int, bool) {
	if len(c.days) == 0 {
		return 0, false
	}
	start := sort.SearchInts(c.days, after+1)
	for k := 0; k < len(c.days); k++ {
		d := c.days[(start+k)%len(c.days)]
		if !completed(d) {
			return d, true
		}
	}
	return 0, false
}
