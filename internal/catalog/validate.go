package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateContentJSON validates raw content bytes against contentSchema.
func validateContentJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid content JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("content schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles contentSchema once and caches the result.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(contentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		const schemaURL = "schema://course-content.json"
		if err := compiler.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateCourses performs structural cross-checks on the parsed content.
// Returns a combined error describing all problems found, or nil if valid.
func validateCourses(courses []Course, answerKey map[string]map[string]string) error {
	var errs []string

	courseIDs := make(map[string]bool, len(courses))
	quizIDs := make(map[string]bool)

	for _, course := range courses {
		if courseIDs[course.ID] {
			errs = append(errs, fmt.Sprintf("duplicate course ID: %q", course.ID))
		}
		courseIDs[course.ID] = true

		lessonIDs := make(map[string]bool, len(course.Lessons))
		for _, lesson := range course.Lessons {
			if lessonIDs[lesson.ID] {
				errs = append(errs, fmt.Sprintf("course %q: duplicate lesson ID: %q", course.ID, lesson.ID))
			}
			lessonIDs[lesson.ID] = true
		}

		if course.Quiz == nil {
			continue
		}
		quiz := course.Quiz

		if quizIDs[quiz.ID] {
			errs = append(errs, fmt.Sprintf("duplicate quiz ID: %q", quiz.ID))
		}
		quizIDs[quiz.ID] = true

		key := answerKey[quiz.ID]
		questionIDs := make(map[string]bool, len(quiz.Questions))
		for _, question := range quiz.Questions {
			if questionIDs[question.ID] {
				errs = append(errs, fmt.Sprintf("quiz %q: duplicate question ID: %q", quiz.ID, question.ID))
			}
			questionIDs[question.ID] = true

			optionIDs := make(map[string]bool, len(question.Options))
			for _, option := range question.Options {
				if optionIDs[option.ID] {
					errs = append(errs, fmt.Sprintf("question %q: duplicate option ID: %q", question.ID, option.ID))
				}
				optionIDs[option.ID] = true
			}

			answer, ok := key[question.ID]
			if !ok {
				errs = append(errs, fmt.Sprintf("question %q: missing answer key entry", question.ID))
			} else if !optionIDs[answer] {
				errs = append(errs, fmt.Sprintf("question %q: answer %q is not one of its options", question.ID, answer))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
