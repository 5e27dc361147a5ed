// Package guidefile loads price guides, rule lists, and answer sets from
// YAML or JSON files for the CLI. Decoding is structural only; referential
// checks against the live form stay out of scope.
package guidefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"form-pricing/pkg/guide"
)

// LoadGuide reads a full price guide from path. The format is chosen by
// extension: .json is JSON, everything else is YAML.
func LoadGuide(path string) (guide.PriceGuide, error) {
	var g guide.PriceGuide
	if err := load(path, &g); err != nil {
		return guide.PriceGuide{}, fmt.Errorf("failed to load guide: %w", err)
	}
	return g, nil
}

// LoadRules reads a bare rule list, the shape the authoring preview works
// with before a guide is saved.
func LoadRules(path string) ([]guide.Rule, error) {
	var rules []guide.Rule
	if err := load(path, &rules); err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return rules, nil
}

// LoadAnswers reads an answer set keyed by question ID.
func LoadAnswers(path string) (guide.AnswerSet, error) {
	var answers guide.AnswerSet
	if err := load(path, &answers); err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	return answers, nil
}

func load(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}
