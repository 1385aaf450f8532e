package game

import (
	"fmt"
	"math/rand"

	"github.com/prompted365/scamdetect/internal/scenario"
)

// DifficultyFilter selects which scenarios are eligible for a session.
// FilterAll admits every difficulty.
type DifficultyFilter string

const (
	FilterAll    DifficultyFilter = "all"
	FilterEasy   DifficultyFilter = DifficultyFilter(scenario.DifficultyEasy)
	FilterMedium DifficultyFilter = DifficultyFilter(scenario.DifficultyMedium)
	FilterHard   DifficultyFilter = DifficultyFilter(scenario.DifficultyHard)
)

// QuizLengths returns the selectable session lengths in menu order.
func QuizLengths() []int {
	return []int{5, 10, 15, 30}
}

// Config is the session configuration chosen before play begins.
type Config struct {
	QuizLength int
	Difficulty DifficultyFilter
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.QuizLength <= 0 {
		return fmt.Errorf("quiz length must be positive, got %d", c.QuizLength)
	}
	switch c.Difficulty {
	case FilterAll, FilterEasy, FilterMedium, FilterHard:
		return nil
	default:
		return fmt.Errorf("unknown difficulty filter %q", c.Difficulty)
	}
}

// BuildActiveSet derives the ordered scenario sequence for one session.
// The repository is filtered by difficulty; when more scenarios match than
// the quiz length, an unbiased shuffle selects and orders the subset.
// When the filtered set fits within the quiz length it is used whole, in
// repository order, with no shuffle. An empty filtered set is valid and
// yields an empty session.
func BuildActiveSet(repo *scenario.Repository, cfg Config, rng *rand.Rand) []scenario.Scenario {
	var pool []scenario.Scenario
	if cfg.Difficulty == FilterAll {
		pool = repo.All()
	} else {
		pool = repo.ByDifficulty(scenario.Difficulty(cfg.Difficulty))
	}

	if len(pool) <= cfg.QuizLength {
		return pool
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:cfg.QuizLength:cfg.QuizLength]
}
