package scenario

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/scenarios.json
var embeddedContent []byte

// Repository is an immutable, ordered collection of scenarios.
type Repository struct {
	scenarios []Scenario
}

// Load parses and validates a scenario content file.
func Load(raw []byte) (*Repository, error) {
	if err := ValidateContent(raw); err != nil {
		return nil, fmt.Errorf("scenario content: %w", err)
	}

	var file struct {
		Scenarios []Scenario `json:"scenarios"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse scenario content: %w", err)
	}

	for i := range file.Scenarios {
		if err := file.Scenarios[i].Validate(); err != nil {
			return nil, err
		}
	}

	return &Repository{scenarios: file.Scenarios}, nil
}

// Default loads the embedded scenario database.
func Default() (*Repository, error) {
	return Load(embeddedContent)
}

// Len returns the number of scenarios in the repository.
func (r *Repository) Len() int {
	return len(r.scenarios)
}

// All returns every scenario in repository order.
func (r *Repository) All() []Scenario {
	out := make([]Scenario, len(r.scenarios))
	copy(out, r.scenarios)
	return out
}

// Get returns the scenario at index i.
func (r *Repository) Get(i int) (*Scenario, error) {
	if i < 0 || i >= len(r.scenarios) {
		return nil, fmt.Errorf("scenario index %d out of range [0,%d)", i, len(r.scenarios))
	}
	return &r.scenarios[i], nil
}

// ByDifficulty returns all scenarios with the given difficulty, in
// repository order.
func (r *Repository) ByDifficulty(d Difficulty) []Scenario {
	var out []Scenario
	for _, s := range r.scenarios {
		if s.Difficulty == d {
			out = append(out, s)
		}
	}
	return out
}

// ByCategory returns all scenarios with the given category, in repository
// order.
func (r *Repository) ByCategory(c Category) []Scenario {
	var out []Scenario
	for _, s := range r.scenarios {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}
