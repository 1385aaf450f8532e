package game

// initialSkillThreshold is the XP required for a skill's first level-up.
const initialSkillThreshold = 100

// levelXPStep scales the XP threshold per level: level N requires N*levelXPStep.
const levelXPStep = 500

// SkillProgress tracks one skill's level and XP toward the next level.
type SkillProgress struct {
	Level     int
	XP        int
	Threshold int
}

// Ratio returns XP as a fraction of the next-level threshold.
func (p SkillProgress) Ratio() float64 {
	if p.Threshold <= 0 {
		return 0
	}
	return float64(p.XP) / float64(p.Threshold)
}

// XPOutcome reports the side effects of a single AddXP call.
type XPOutcome struct {
	LeveledUp      bool
	Level          int
	SkillLeveledUp bool
	SkillLevel     int
}

// Ledger is the mutable per-session scoring record. It is created fresh at
// session start and discarded on restart; nothing in it outlives the session.
type Ledger struct {
	XP        int
	Level     int
	Streak    int
	MaxStreak int
	Correct   int
	Incorrect int
	ToolsUsed int

	// Completed holds the active-set indices of answered scenarios, in
	// answer order.
	Completed []int

	// Speedrun is set by the runner on the first sub-30-second correct
	// answer; the achievement rule reads it rather than re-deriving.
	Speedrun bool

	Skills map[Skill]*SkillProgress

	unlocked    map[string]bool
	unlockOrder []string
}

// NewLedger returns a fresh ledger with all counters zeroed and every skill
// at level 1 with a 100 XP threshold.
func NewLedger() *Ledger {
	skills := make(map[Skill]*SkillProgress, len(AllSkills()))
	for _, s := range AllSkills() {
		skills[s] = &SkillProgress{Level: 1, XP: 0, Threshold: initialSkillThreshold}
	}
	return &Ledger{
		Level:    1,
		Skills:   skills,
		unlocked: make(map[string]bool),
	}
}

// AddXP credits XP and rolls levels forward. A single large award can cross
// several thresholds, so the level check loops. If skill is non-empty the
// amount also accrues to that skill; on a skill level-up the skill's XP
// resets to zero (excess is discarded) and the threshold grows by half.
func (l *Ledger) AddXP(amount int, skill Skill) XPOutcome {
	out := XPOutcome{Level: l.Level}
	if amount <= 0 {
		if skill != "" {
			if p := l.Skills[skill]; p != nil {
				out.SkillLevel = p.Level
			}
		}
		return out
	}

	l.XP += amount
	for l.XP >= l.Level*levelXPStep {
		l.Level++
		out.LeveledUp = true
	}
	out.Level = l.Level

	if skill != "" {
		if p := l.Skills[skill]; p != nil {
			p.XP += amount
			if p.XP >= p.Threshold {
				p.Level++
				p.XP = 0
				p.Threshold = p.Threshold * 3 / 2
				out.SkillLeveledUp = true
			}
			out.SkillLevel = p.Level
		}
	}
	return out
}

// RecordAnswer updates answer counters and the streak. Returns true when an
// incorrect answer broke a running streak.
func (l *Ledger) RecordAnswer(correct bool) (streakBroken bool) {
	if correct {
		l.Correct++
		l.Streak++
		if l.Streak > l.MaxStreak {
			l.MaxStreak = l.Streak
		}
		return false
	}
	l.Incorrect++
	broken := l.Streak > 0
	l.Streak = 0
	return broken
}

// RecordToolUse increments the tool-use counter.
func (l *Ledger) RecordToolUse() {
	l.ToolsUsed++
}

// MarkCompleted appends an active-set index to the completed list.
func (l *Ledger) MarkCompleted(index int) {
	l.Completed = append(l.Completed, index)
}

// Unlock records an achievement as unlocked and credits its reward. Returns
// false without side effects if the id is already unlocked.
func (l *Ledger) Unlock(id string, reward int) bool {
	if l.unlocked[id] {
		return false
	}
	l.unlocked[id] = true
	l.unlockOrder = append(l.unlockOrder, id)
	l.AddXP(reward, "")
	return true
}

// HasUnlocked reports whether an achievement id has been unlocked.
func (l *Ledger) HasUnlocked(id string) bool {
	return l.unlocked[id]
}

// UnlockedIDs returns achievement ids in unlock order.
func (l *Ledger) UnlockedIDs() []string {
	out := make([]string, len(l.unlockOrder))
	copy(out, l.unlockOrder)
	return out
}
