package game

import (
	"math"
	"time"

	"github.com/prompted365/scamdetect/internal/achievements"
)

// Rank is the overall grade assigned to a finished session.
type Rank string

const (
	RankGuardian Rank = "BLOCKCHAIN GUARDIAN"
	RankExpert   Rank = "SECURITY EXPERT"
	RankVigilant Rank = "VIGILANT USER"
	RankAtRisk   Rank = "AT RISK"
)

// Message returns the fixed advisory text shown with the rank.
func (r Rank) Message() string {
	switch r {
	case RankGuardian:
		return "Perfect score! You're ready to protect yourself and others from crypto scams. Share your knowledge!"
	case RankExpert:
		return "Excellent work! You have strong scam detection skills. Review the missed scenarios to reach perfection."
	case RankVigilant:
		return "Good job! You're developing solid instincts. Keep practicing to become an expert."
	case RankAtRisk:
		return "You need more practice. These scams are real and costly. Go through the scenarios again carefully."
	default:
		return ""
	}
}

// Report is the final statistics snapshot for a completed session.
type Report struct {
	// SessionID is the mission identifier; empty for reports summarized
	// outside a Session.
	SessionID string

	Accuracy  int
	Rank      Rank
	Message   string
	Correct   int
	Incorrect int
	MaxStreak int
	ToolsUsed int
	Elapsed   time.Duration
	XP        int
	Level     int

	// Achievements holds the unlocked definitions in unlock order.
	Achievements []achievements.Definition

	// SkillProgress maps each skill to its XP as a fraction of the
	// next-level threshold.
	SkillProgress map[Skill]float64
	SkillLevels   map[Skill]int
}

// rankFor picks the rank tier for an accuracy percentage. The top tier
// additionally requires a clean sheet.
func rankFor(accuracy, incorrect int) Rank {
	switch {
	case accuracy == 100 && incorrect == 0:
		return RankGuardian
	case accuracy >= 85:
		return RankExpert
	case accuracy >= 70:
		return RankVigilant
	default:
		return RankAtRisk
	}
}

// Summarize computes the results report from a finished ledger. It is pure:
// calling it repeatedly with the same inputs yields the same report, and the
// ledger is not modified. A zero-length session reports 0% accuracy.
func Summarize(l *Ledger, activeLen int, elapsed time.Duration) *Report {
	accuracy := 0
	if activeLen > 0 {
		accuracy = int(math.Round(float64(l.Correct) / float64(activeLen) * 100))
	}

	rank := rankFor(accuracy, l.Incorrect)

	var unlocked []achievements.Definition
	for _, id := range l.UnlockedIDs() {
		if d := achievements.ByID(id); d != nil {
			unlocked = append(unlocked, *d)
		}
	}

	progress := make(map[Skill]float64, len(l.Skills))
	levels := make(map[Skill]int, len(l.Skills))
	for skill, p := range l.Skills {
		progress[skill] = p.Ratio()
		levels[skill] = p.Level
	}

	return &Report{
		Accuracy:      accuracy,
		Rank:          rank,
		Message:       rank.Message(),
		Correct:       l.Correct,
		Incorrect:     l.Incorrect,
		MaxStreak:     l.MaxStreak,
		ToolsUsed:     l.ToolsUsed,
		Elapsed:       elapsed,
		XP:            l.XP,
		Level:         l.Level,
		Achievements:  unlocked,
		SkillProgress: progress,
		SkillLevels:   levels,
	}
}
