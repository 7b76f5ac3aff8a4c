package trivia

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed packs/default.yaml
var defaultPackYAML []byte

// Pack is a YAML-importable collection of categorized questions.
// The same format is used for the embedded default pack and for
// `sprintsolve questions import <file>`.
type Pack struct {
	Name       string         `yaml:"name"`
	Categories []PackCategory `yaml:"categories"`
}

// PackCategory groups questions under a numeric category ID.
type PackCategory struct {
	ID        int            `yaml:"id"`
	Name      string         `yaml:"name"`
	Questions []PackQuestion `yaml:"questions"`
}

// PackQuestion is the on-disk question representation.
type PackQuestion struct {
	Text    string   `yaml:"text"`
	Answers []string `yaml:"answers"`
	Correct int      `yaml:"correct"` // index into answers
}

func (pq PackQuestion) toQuestion() Question {
	return Question{
		Text:          pq.Text,
		Answers:       pq.Answers,
		CorrectAnswer: pq.Correct,
	}
}

// ParsePack decodes and validates a YAML question pack.
func ParsePack(data []byte) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("trivia: cannot parse pack: %w", err)
	}
	if err := p.validate(); err != nil {
		return Pack{}, err
	}
	return p, nil
}

func (p Pack) validate() error {
	if len(p.Categories) == 0 {
		return fmt.Errorf("trivia: pack %q has no categories", p.Name)
	}
	seen := make(map[int]bool)
	for _, c := range p.Categories {
		if seen[c.ID] {
			return fmt.Errorf("trivia: pack %q repeats category id %d", p.Name, c.ID)
		}
		seen[c.ID] = true
		for i, q := range c.Questions {
			if len(q.Answers) < 1 || len(q.Answers) > MaxAnswers {
				return fmt.Errorf("trivia: category %d question %d has %d answers, want 1..%d",
					c.ID, i, len(q.Answers), MaxAnswers)
			}
			if q.Correct < 0 || q.Correct >= len(q.Answers) {
				return fmt.Errorf("trivia: category %d question %d correct index %d out of range",
					c.ID, i, q.Correct)
			}
		}
	}
	return nil
}

// DefaultPack returns the embedded question pack.
func DefaultPack() Pack {
	p, err := ParsePack(defaultPackYAML)
	if err != nil {
		// The embedded pack is validated by tests; a parse failure here is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return p
}
