// README: Per-category questionnaire schemas loaded from YAML; answer-set validation.
package quote

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	QuestionBool   = "bool"
	QuestionSingle = "single"
	QuestionMulti  = "multi"
)

type Question struct {
	Key     string   `yaml:"key"`
	Type    string   `yaml:"type"`
	Label   string   `yaml:"label"`
	Answers []string `yaml:"answers,omitempty"`
}

type CategorySchema struct {
	Category  string     `yaml:"category"`
	Questions []Question `yaml:"questions"`
}

// SchemaSet holds every category schema loaded at startup. Read-only after
// LoadSchemas returns.
type SchemaSet struct {
	byCategory map[string]CategorySchema
}

// LoadSchemas reads every *.yaml file in dir as one category schema.
func LoadSchemas(dir string) (*SchemaSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read schema dir: %w", err)
	}

	set := &SchemaSet{byCategory: make(map[string]CategorySchema)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		var cs CategorySchema
		if err := yaml.Unmarshal(raw, &cs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		if cs.Category == "" {
			return nil, fmt.Errorf("schema %s: missing category", e.Name())
		}
		set.byCategory[cs.Category] = cs
	}
	return set, nil
}

func NewSchemaSet(schemas ...CategorySchema) *SchemaSet {
	set := &SchemaSet{byCategory: make(map[string]CategorySchema)}
	for _, cs := range schemas {
		set.byCategory[cs.Category] = cs
	}
	return set
}

func (s *SchemaSet) Get(category string) (CategorySchema, bool) {
	cs, ok := s.byCategory[category]
	return cs, ok
}

// ParseAnswers converts a decoded JSON object into a typed AnswerSet.
// Shapes other than bool, string, or string array are rejected.
func ParseAnswers(raw map[string]any) (AnswerSet, error) {
	answers := make(AnswerSet, len(raw))
	for key, v := range raw {
		switch val := v.(type) {
		case bool:
			answers[key] = BoolAnswer(val)
		case string:
			answers[key] = SingleAnswer(val)
		case []any:
			choices := make([]string, 0, len(val))
			for _, item := range val {
				str, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%w: question %q: non-string selection", ErrBadAnswers, key)
				}
				choices = append(choices, str)
			}
			answers[key] = MultiAnswer(choices)
		default:
			return nil, fmt.Errorf("%w: question %q: unsupported answer shape", ErrBadAnswers, key)
		}
	}
	return answers, nil
}

// Validate checks an answer set against the category schema. Unknown question
// keys are rejected rather than silently ignored; answer kinds must match the
// declared question type.
func (cs CategorySchema) Validate(answers AnswerSet) error {
	known := make(map[string]Question, len(cs.Questions))
	for _, q := range cs.Questions {
		known[q.Key] = q
	}
	for key, ans := range answers {
		q, ok := known[key]
		if !ok {
			return fmt.Errorf("%w: unknown question %q", ErrBadAnswers, key)
		}
		switch a := ans.(type) {
		case BoolAnswer:
			if q.Type != QuestionBool {
				return fmt.Errorf("%w: question %q expects %s", ErrBadAnswers, key, q.Type)
			}
		case SingleAnswer:
			if q.Type != QuestionSingle {
				return fmt.Errorf("%w: question %q expects %s", ErrBadAnswers, key, q.Type)
			}
			if !q.allowsAnswer(string(a)) {
				return fmt.Errorf("%w: question %q: unknown answer %q", ErrBadAnswers, key, string(a))
			}
		case MultiAnswer:
			if q.Type != QuestionMulti {
				return fmt.Errorf("%w: question %q expects %s", ErrBadAnswers, key, q.Type)
			}
			for _, choice := range a {
				if !q.allowsAnswer(choice) {
					return fmt.Errorf("%w: question %q: unknown answer %q", ErrBadAnswers, key, choice)
				}
			}
		default:
			return fmt.Errorf("%w: question %q: unsupported answer", ErrBadAnswers, key)
		}
	}
	return nil
}

func (q Question) allowsAnswer(key string) bool {
	// Schemas may omit the answer list; then any key is accepted and rule
	// lookup decides whether it deducts.
	if len(q.Answers) == 0 {
		return true
	}
	for _, a := range q.Answers {
		if a == key {
			return true
		}
	}
	return false
}
