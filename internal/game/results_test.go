package game

import (
	"testing"
	"time"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		name      string
		accuracy  int
		incorrect int
		want      Rank
	}{
		{"perfect", 100, 0, RankGuardian},
		{"rounded to 100 with a miss", 100, 1, RankExpert},
		{"ninety", 90, 1, RankExpert},
		{"eighty five boundary", 85, 2, RankExpert},
		{"eighty", 80, 2, RankVigilant},
		{"seventy boundary", 70, 3, RankVigilant},
		{"sixty nine", 69, 4, RankAtRisk},
		{"zero", 0, 10, RankAtRisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rankFor(tt.accuracy, tt.incorrect); got != tt.want {
				t.Errorf("rankFor(%d, %d) = %s, want %s", tt.accuracy, tt.incorrect, got, tt.want)
			}
		})
	}
}

func TestSummarize_EightOfTen(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 8; i++ {
		l.RecordAnswer(true)
		l.MarkCompleted(i)
	}
	for i := 8; i < 10; i++ {
		l.RecordAnswer(false)
		l.MarkCompleted(i)
	}

	r := Summarize(l, 10, 3*time.Minute)
	if r.Accuracy != 80 {
		t.Errorf("accuracy = %d, want 80", r.Accuracy)
	}
	if r.Rank != RankVigilant {
		t.Errorf("rank = %s, want %s (not the 85+ tier)", r.Rank, RankVigilant)
	}
	if r.Correct != 8 || r.Incorrect != 2 {
		t.Errorf("counts = %d/%d", r.Correct, r.Incorrect)
	}
	if r.Elapsed != 3*time.Minute {
		t.Errorf("elapsed = %s", r.Elapsed)
	}
	if r.Message == "" {
		t.Error("missing rank message")
	}
}

func TestSummarize_AccuracyRounding(t *testing.T) {
	l := NewLedger()
	l.RecordAnswer(true)
	l.RecordAnswer(true)
	l.RecordAnswer(false)
	// 2/3 = 66.67 rounds to 67.
	if r := Summarize(l, 3, 0); r.Accuracy != 67 {
		t.Errorf("accuracy = %d, want 67", r.Accuracy)
	}
}

func TestSummarize_Pure(t *testing.T) {
	l := NewLedger()
	l.RecordAnswer(true)
	l.AddXP(300, SkillPhishingDetection)
	l.Unlock("first_blood", 50)

	a := Summarize(l, 5, time.Minute)
	b := Summarize(l, 5, time.Minute)
	if a.Accuracy != b.Accuracy || a.XP != b.XP || len(a.Achievements) != len(b.Achievements) {
		t.Error("repeated summarize produced different reports")
	}
	if l.XP != 350 {
		t.Errorf("summarize mutated ledger XP: %d", l.XP)
	}
}

func TestSummarize_SkillProgress(t *testing.T) {
	l := NewLedger()
	l.AddXP(50, SkillContractAnalysis)

	r := Summarize(l, 5, 0)
	if got := r.SkillProgress[SkillContractAnalysis]; got != 0.5 {
		t.Errorf("contract analysis progress = %v, want 0.5", got)
	}
	if got := r.SkillLevels[SkillContractAnalysis]; got != 1 {
		t.Errorf("contract analysis level = %d, want 1", got)
	}
	if len(r.SkillProgress) != 4 {
		t.Errorf("expected 4 skill entries, got %d", len(r.SkillProgress))
	}
}

func TestSummarize_IncludesUnlockedDefinitions(t *testing.T) {
	l := NewLedger()
	l.Unlock("perfect_five", 200)
	l.Unlock("first_blood", 50)

	r := Summarize(l, 5, 0)
	if len(r.Achievements) != 2 {
		t.Fatalf("achievements = %d, want 2", len(r.Achievements))
	}
	if r.Achievements[0].ID != "perfect_five" || r.Achievements[1].ID != "first_blood" {
		t.Errorf("unlock order lost: %s, %s", r.Achievements[0].ID, r.Achievements[1].ID)
	}
}
