package game

import "testing"

func TestNewLedger_FreshState(t *testing.T) {
	l := NewLedger()
	if l.XP != 0 || l.Level != 1 || l.Streak != 0 || l.MaxStreak != 0 {
		t.Fatalf("unexpected fresh ledger: %+v", l)
	}
	if len(l.Skills) != 4 {
		t.Fatalf("expected 4 skills, got %d", len(l.Skills))
	}
	for skill, p := range l.Skills {
		if p.Level != 1 || p.XP != 0 || p.Threshold != 100 {
			t.Errorf("skill %s: unexpected initial progress %+v", skill, p)
		}
	}
}

func TestAddXP_LevelUp(t *testing.T) {
	l := NewLedger()

	out := l.AddXP(499, "")
	if out.LeveledUp || l.Level != 1 {
		t.Fatalf("leveled up below threshold: %+v", out)
	}

	out = l.AddXP(1, "")
	if !out.LeveledUp || l.Level != 2 {
		t.Fatalf("expected level 2 at 500 XP, got level %d", l.Level)
	}
}

func TestAddXP_CascadingLevelUps(t *testing.T) {
	l := NewLedger()
	// 500 + 1000 = 1500 crosses the level-1 and level-2 thresholds at once.
	out := l.AddXP(1500, "")
	if !out.LeveledUp {
		t.Fatal("expected level up")
	}
	if l.Level != 3 {
		t.Fatalf("expected cascaded level 3, got %d", l.Level)
	}
}

func TestAddXP_SkillLevelUpDiscardsExcess(t *testing.T) {
	l := NewLedger()

	out := l.AddXP(150, SkillContractAnalysis)
	if !out.SkillLeveledUp {
		t.Fatal("expected skill level up at 150/100")
	}
	p := l.Skills[SkillContractAnalysis]
	if p.Level != 2 {
		t.Errorf("skill level = %d, want 2", p.Level)
	}
	if p.XP != 0 {
		t.Errorf("skill XP = %d, want 0 (excess discarded)", p.XP)
	}
	if p.Threshold != 150 {
		t.Errorf("skill threshold = %d, want 150", p.Threshold)
	}
}

func TestAddXP_SkillThresholdGrowth(t *testing.T) {
	l := NewLedger()
	l.AddXP(100, SkillPhishingDetection) // 100 -> 150
	l.AddXP(150, SkillPhishingDetection) // 150 -> 225
	p := l.Skills[SkillPhishingDetection]
	if p.Level != 3 || p.Threshold != 225 {
		t.Fatalf("after two skill-ups: level=%d threshold=%d, want 3/225", p.Level, p.Threshold)
	}
}

func TestAddXP_IgnoresUnknownSkillAndNonPositive(t *testing.T) {
	l := NewLedger()
	l.AddXP(0, SkillPhishingDetection)
	l.AddXP(-10, "")
	if l.XP != 0 {
		t.Fatalf("XP changed on non-positive amounts: %d", l.XP)
	}
	l.AddXP(50, Skill("bogus"))
	if l.XP != 50 {
		t.Fatalf("global XP must still accrue for unknown skill, got %d", l.XP)
	}
}

func TestRecordAnswer_StreakTracking(t *testing.T) {
	l := NewLedger()

	for i := 1; i <= 5; i++ {
		if broken := l.RecordAnswer(true); broken {
			t.Fatalf("correct answer %d reported streak broken", i)
		}
	}
	if l.Streak != 5 || l.MaxStreak != 5 || l.Correct != 5 {
		t.Fatalf("after 5 correct: streak=%d max=%d correct=%d", l.Streak, l.MaxStreak, l.Correct)
	}

	if broken := l.RecordAnswer(false); !broken {
		t.Fatal("incorrect answer after a streak must report it broken")
	}
	if l.Streak != 0 {
		t.Errorf("streak = %d, want 0 after incorrect", l.Streak)
	}
	if l.MaxStreak != 5 {
		t.Errorf("maxStreak = %d, want 5 preserved", l.MaxStreak)
	}
	if l.Incorrect != 1 {
		t.Errorf("incorrect = %d, want 1", l.Incorrect)
	}

	if broken := l.RecordAnswer(false); broken {
		t.Error("incorrect answer with no streak must not report a break")
	}
}

func TestUnlock_SetOnce(t *testing.T) {
	l := NewLedger()

	if !l.Unlock("first_blood", 50) {
		t.Fatal("first unlock must succeed")
	}
	if l.XP != 50 {
		t.Errorf("XP = %d, want 50 from unlock reward", l.XP)
	}
	if l.Unlock("first_blood", 50) {
		t.Fatal("second unlock of same id must fail")
	}
	if l.XP != 50 {
		t.Errorf("XP = %d, re-unlock must not re-award", l.XP)
	}

	l.Unlock("perfect_five", 200)
	ids := l.UnlockedIDs()
	if len(ids) != 2 || ids[0] != "first_blood" || ids[1] != "perfect_five" {
		t.Fatalf("unexpected unlock order: %v", ids)
	}
}
