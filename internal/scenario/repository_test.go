package scenario

import (
	"strings"
	"testing"
)

func TestDefault_LoadsEmbeddedContent(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if repo.Len() != 15 {
		t.Fatalf("expected 15 scenarios, got %d", repo.Len())
	}
}

func TestDefault_ScenarioInvariants(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	seen := map[int]bool{}
	for _, s := range repo.All() {
		if seen[s.ID] {
			t.Errorf("duplicate scenario id %d", s.ID)
		}
		seen[s.ID] = true

		if s.Title == "" {
			t.Errorf("scenario %d: empty title", s.ID)
		}
		if len(s.Options) < 2 {
			t.Errorf("scenario %d: expected at least 2 options, got %d", s.ID, len(s.Options))
		}
		if s.Feedback.XPReward <= 0 {
			t.Errorf("scenario %d: non-positive xpReward %d", s.ID, s.Feedback.XPReward)
		}

		found := false
		for _, opt := range s.Options {
			if opt.ID == s.CorrectOption {
				found = true
			}
		}
		if !found {
			t.Errorf("scenario %d: correct option %q not among options", s.ID, s.CorrectOption)
		}

		switch s.Kind {
		case KindEmail:
			if s.Email == nil {
				t.Errorf("scenario %d: email kind without email payload", s.ID)
			}
		case KindWebsite:
			if s.Website == nil {
				t.Errorf("scenario %d: website kind without website payload", s.ID)
			}
		case KindTransaction:
			if s.Transaction == nil {
				t.Errorf("scenario %d: transaction kind without transaction payload", s.ID)
			}
		case KindChat:
			if s.Chat == nil || len(s.Chat.Messages) == 0 {
				t.Errorf("scenario %d: chat kind without messages", s.ID)
			}
		default:
			t.Errorf("scenario %d: unknown kind %q", s.ID, s.Kind)
		}
	}
}

func TestLoad_RejectsMissingCorrectOption(t *testing.T) {
	raw := []byte(`{"scenarios":[{
		"id": 1, "category": "wallet", "difficulty": "easy", "kind": "email",
		"title": "Test",
		"email": {"from": "a@b.com", "to": "c@d.com", "subject": "s", "body": "b"},
		"question": "Q?",
		"options": [{"id": "yes", "text": "Yes"}, {"id": "no", "text": "No"}],
		"correctOption": "maybe",
		"feedback": {"correct": "c", "incorrect": "i", "xpReward": 100}
	}]}`)
	_, err := Load(raw)
	if err == nil {
		t.Fatal("expected error for correct option not among options")
	}
	if !strings.Contains(err.Error(), "correct option") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_RejectsInvalidCategory(t *testing.T) {
	raw := []byte(`{"scenarios":[{
		"id": 1, "category": "bogus", "difficulty": "easy", "kind": "email",
		"title": "Test",
		"email": {"from": "a@b.com", "to": "c@d.com", "subject": "s", "body": "b"},
		"question": "Q?",
		"options": [{"id": "yes", "text": "Yes"}, {"id": "no", "text": "No"}],
		"correctOption": "yes",
		"feedback": {"correct": "c", "incorrect": "i", "xpReward": 100}
	}]}`)
	if _, err := Load(raw); err == nil {
		t.Fatal("expected schema error for invalid category")
	}
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	if _, err := Load([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestRepository_Get(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	first, err := repo.Get(0)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("expected first scenario id 1, got %d", first.ID)
	}

	if _, err := repo.Get(-1); err == nil {
		t.Error("expected error for negative index")
	}
	if _, err := repo.Get(repo.Len()); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestRepository_ByDifficulty(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	total := 0
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		got := repo.ByDifficulty(d)
		if len(got) == 0 {
			t.Errorf("no scenarios with difficulty %q", d)
		}
		for _, s := range got {
			if s.Difficulty != d {
				t.Errorf("scenario %d: difficulty %q in %q bucket", s.ID, s.Difficulty, d)
			}
		}
		total += len(got)
	}
	if total != repo.Len() {
		t.Errorf("difficulty buckets cover %d scenarios, repository has %d", total, repo.Len())
	}
}

func TestRepository_ByCategory(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	defi := repo.ByCategory(CategoryDeFi)
	if len(defi) != 2 {
		t.Fatalf("expected 2 defi scenarios, got %d", len(defi))
	}
	for _, s := range defi {
		if s.Category != CategoryDeFi {
			t.Errorf("scenario %d: category %q in defi bucket", s.ID, s.Category)
		}
	}
}

func TestRepository_AllReturnsCopy(t *testing.T) {
	repo, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	all := repo.All()
	all[0].Title = "mutated"

	again, err := repo.Get(0)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if again.Title == "mutated" {
		t.Error("All() should return a copy, not the backing slice")
	}
}
