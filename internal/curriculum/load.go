package curriculum

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var embeddedContent embed.FS

// Content returns the embedded lesson files rooted at the content directory.
func Content() fs.FS {
	sub, err := fs.Sub(embeddedContent, "content")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

var embeddedCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Load(Content())
})

// Default returns the catalog built from the embedded content. The catalog is
// loaded once per process.
func Default() (*Catalog, error) {
	return embeddedCatalog()
}

// source pairs a decoded lesson with the file it came from.
type source struct {
	file   string
	lesson DayLesson
}

// Load reads every *.yaml file at the root of fsys, validates each document
// against LessonSchema, runs the cross-lesson checks and builds a Catalog.
// All problems found are reported together in a *ValidationError.
func Load(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list lesson files: %w", err)
	}
	sort.Strings(names)

	verr := &ValidationError{}
	var sources []source
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		lesson, err := decodeLesson(data)
		if err != nil {
			verr.add(name, err.Error())
			continue
		}
		sources = append(sources, source{file: name, lesson: lesson})
	}

	if len(names) == 0 {
		verr.add("", "no lesson files found")
	}

	validateLessons(sources, verr)
	if verr.HasProblems() {
		return nil, verr
	}

	lessons := make([]DayLesson, len(sources))
	for i, s := range sources {
		lessons[i] = s.lesson
	}
	return newCatalog(lessons), nil
}

// decodeLesson parses one YAML document, checks it against the schema and
// decodes it into a DayLesson.
func decodeLesson(data []byte) (DayLesson, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return DayLesson{}, fmt.Errorf("parse yaml: %w", err)
	}
	if generic == nil {
		return DayLesson{}, errors.New("empty document")
	}

	doc, err := toJSONValue(generic)
	if err != nil {
		return DayLesson{}, err
	}
	if err := validateDocument(doc); err != nil {
		return DayLesson{}, fmt.Errorf("schema: %w", err)
	}

	var lesson DayLesson
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lesson); err != nil {
		return DayLesson{}, fmt.Errorf("decode lesson: %w", err)
	}
	return lesson, nil
}

// toJSONValue converts a yaml.v3 generic value into the shape produced by
// encoding/json, which is what the schema validator expects.
func toJSONValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert document: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("convert document: %w", err)
	}
	return out, nil
}

// FileName returns the canonical content file name for a day.
func FileName(day int) string {
	return fmt.Sprintf("day-%03d.yaml", day)
}
