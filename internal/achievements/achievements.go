package achievements

import "github.com/prompted365/scamdetect/internal/scenario"

// Stats is the read-only view of session progress that achievement rules
// evaluate against. The game core builds it after every scoring event.
type Stats struct {
	Correct   int
	Incorrect int
	Streak    int
	ToolsUsed int

	// Speedrun is set by the runner on the first fast correct answer.
	Speedrun bool

	CompletedTotal  int
	RepositoryTotal int

	CompletedByCategory  map[scenario.Category]int
	RepositoryByCategory map[scenario.Category]int
}

// Definition is one achievement rule. Check is a pure predicate; it must not
// assume any call ordering beyond "stats reflect the current session".
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	XPReward    int
	Check       func(Stats) bool
}

// Definitions returns the full rule set in evaluation (and display) order.
func Definitions() []Definition {
	return []Definition{
		{
			ID:          "first_blood",
			Name:        "First Blood",
			Description: "Detect your first scam",
			Icon:        "🎯",
			XPReward:    50,
			Check:       func(s Stats) bool { return s.Correct >= 1 },
		},
		{
			ID:          "perfect_five",
			Name:        "Perfect Five",
			Description: "Get 5 scenarios correct in a row",
			Icon:        "🔥",
			XPReward:    200,
			Check:       func(s Stats) bool { return s.Streak >= 5 },
		},
		{
			ID:          "investigator",
			Name:        "Investigator",
			Description: "Use investigation tools 10 times",
			Icon:        "🔍",
			XPReward:    100,
			Check:       func(s Stats) bool { return s.ToolsUsed >= 10 },
		},
		{
			ID:          "phishing_destroyer",
			Name:        "Phishing Destroyer",
			Description: "Correctly identify 10 phishing attempts",
			Icon:        "🎣",
			XPReward:    300,
			Check: func(s Stats) bool {
				return s.Correct > 0 && s.CompletedByCategory[scenario.CategoryWallet] >= 10
			},
		},
		{
			ID:          "defi_expert",
			Name:        "DeFi Expert",
			Description: "Master all DeFi scam scenarios",
			Icon:        "💎",
			XPReward:    500,
			Check: func(s Stats) bool {
				return s.CompletedByCategory[scenario.CategoryDeFi] >= s.RepositoryByCategory[scenario.CategoryDeFi]
			},
		},
		{
			ID:          "speedrun",
			Name:        "Speedrunner",
			Description: "Complete a scenario in under 30 seconds",
			Icon:        "⚡",
			XPReward:    150,
			Check:       func(s Stats) bool { return s.Speedrun },
		},
		{
			ID:          "flawless_victory",
			Name:        "Flawless Victory",
			Description: "Complete all scenarios with 100% accuracy",
			Icon:        "👑",
			XPReward:    1000,
			Check: func(s Stats) bool {
				return s.CompletedTotal == s.RepositoryTotal && s.Incorrect == 0
			},
		},
	}
}

// ByID returns the definition with the given id, or nil.
func ByID(id string) *Definition {
	for _, d := range Definitions() {
		if d.ID == id {
			def := d
			return &def
		}
	}
	return nil
}

// Evaluate runs every not-yet-unlocked rule against stats and returns the
// newly satisfied definitions in rule order. The caller is responsible for
// recording unlocks and crediting rewards; unlocked reports prior unlocks so
// no rule fires twice.
func Evaluate(stats Stats, unlocked func(id string) bool) []Definition {
	var fresh []Definition
	for _, d := range Definitions() {
		if unlocked(d.ID) {
			continue
		}
		if d.Check(stats) {
			fresh = append(fresh, d)
		}
	}
	return fresh
}
