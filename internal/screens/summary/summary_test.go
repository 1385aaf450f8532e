package summary

import (
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prompted365/scamdetect/internal/game"
	"github.com/prompted365/scamdetect/internal/scenario"
	"github.com/prompted365/scamdetect/internal/screen"
	"github.com/prompted365/scamdetect/internal/tools"
)

// completedSession plays an easy-difficulty session to the end, answering
// every scenario correctly.
func completedSession(t *testing.T) *game.Session {
	t.Helper()
	repo, err := scenario.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	sess := game.NewSession(repo, tools.NewKit(rand.New(rand.NewSource(1))),
		game.WithRand(rand.New(rand.NewSource(1))))
	if err := sess.Configure(game.Config{QuizLength: 5, Difficulty: game.FilterEasy}); err != nil {
		t.Fatalf("Configure error: %v", err)
	}
	if err := sess.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	for sess.Phase() == game.PhaseInProgress {
		sc, err := sess.Current()
		if err != nil {
			t.Fatalf("Current error: %v", err)
		}
		if _, err := sess.SubmitAnswer(sc.CorrectOption); err != nil {
			t.Fatalf("SubmitAnswer error: %v", err)
		}
		if err := sess.Advance(); err != nil {
			t.Fatalf("Advance error: %v", err)
		}
	}
	return sess
}

func TestReportDisplay(t *testing.T) {
	s := New(completedSession(t), nil)

	if s.Title() != "Mission Report" {
		t.Errorf("Title = %q, want Mission Report", s.Title())
	}
	if view := s.View(100, 40); view == "" {
		t.Error("expected non-empty report view")
	}

	level, xp, _ := s.Stats()
	if level < 1 || xp <= 0 {
		t.Errorf("Stats() = %d, %d, want positive progress", level, xp)
	}
}

func TestEnterPops(t *testing.T) {
	s := New(completedSession(t), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a pop command on Enter")
	}
}

func TestRestartSwapsScreen(t *testing.T) {
	sess := completedSession(t)
	stub := &stubScreen{}
	s := New(sess, func() screen.Screen { return stub })

	next, _ := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if next != screen.Screen(stub) {
		t.Fatalf("expected restart screen, got %T", next)
	}
}

func TestRestartUnavailable(t *testing.T) {
	s := New(completedSession(t), nil)

	next, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if next != screen.Screen(s) || cmd != nil {
		t.Error("expected no-op without a restart hook")
	}

	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}

func TestResultsErrorShown(t *testing.T) {
	repo, err := scenario.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	sess := game.NewSession(repo, tools.NewKit(rand.New(rand.NewSource(1))))

	s := New(sess, nil)
	if s.report != nil {
		t.Fatal("expected no report for an unfinished session")
	}
	if view := s.View(100, 40); view == "" {
		t.Error("expected error view")
	}
}

// stubScreen is a minimal screen for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "stub" }
