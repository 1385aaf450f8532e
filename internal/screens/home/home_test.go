package home

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prompted365/scamdetect/internal/game"
	"github.com/prompted365/scamdetect/internal/router"
	"github.com/prompted365/scamdetect/internal/scenario"
	playscreen "github.com/prompted365/scamdetect/internal/screens/play"
	"github.com/prompted365/scamdetect/internal/store"
	"github.com/prompted365/scamdetect/internal/tools"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHome(t *testing.T) *HomeScreen {
	t.Helper()
	repo, err := scenario.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	kit := tools.NewKit(rand.New(rand.NewSource(1)))
	return New(repo, kit, nil, nil)
}

func TestDefaults(t *testing.T) {
	h := testHome(t)

	labels := h.menuLabels()
	if labels[rowLength] != "SCENARIOS: 10" {
		t.Errorf("length label = %q, want SCENARIOS: 10", labels[rowLength])
	}
	if labels[rowDifficulty] != "DIFFICULTY: ALL" {
		t.Errorf("difficulty label = %q, want DIFFICULTY: ALL", labels[rowDifficulty])
	}
	if labels[rowSound] != "SOUND: ON" {
		t.Errorf("sound label = %q, want SOUND: ON", labels[rowSound])
	}
}

func TestCycleDifficulty(t *testing.T) {
	h := testHome(t)
	h.selected = rowDifficulty

	h.Update(specialKey(tea.KeyRight))
	if got := h.menuLabels()[rowDifficulty]; got != "DIFFICULTY: EASY" {
		t.Errorf("after right: %q, want DIFFICULTY: EASY", got)
	}

	h.Update(specialKey(tea.KeyLeft))
	if got := h.menuLabels()[rowDifficulty]; got != "DIFFICULTY: ALL" {
		t.Errorf("after left: %q, want DIFFICULTY: ALL", got)
	}
}

func TestCycleLengthWraps(t *testing.T) {
	h := testHome(t)
	h.selected = rowLength

	start := h.lenIdx
	for range game.QuizLengths() {
		h.Update(specialKey(tea.KeyRight))
	}
	if h.lenIdx != start {
		t.Errorf("lenIdx = %d, want wrap back to %d", h.lenIdx, start)
	}
}

func TestStartPushesPlayScreen(t *testing.T) {
	h := testHome(t)
	h.selected = rowStart

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*playscreen.PlayScreen); !ok {
		t.Fatalf("expected play screen, got %T", msg.Screen)
	}
}

func TestSoundTogglePersists(t *testing.T) {
	repo, err := scenario.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer st.Close()

	h := New(repo, tools.NewKit(rand.New(rand.NewSource(1))), nil, st)
	h.selected = rowSound
	h.Update(specialKey(tea.KeyEnter))

	muted, err := st.Muted()
	if err != nil {
		t.Fatalf("Muted error: %v", err)
	}
	if !muted {
		t.Error("expected muted persisted after toggle")
	}
}

func TestViewRenders(t *testing.T) {
	h := testHome(t)
	view := h.View(100, 40)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if !strings.Contains(view, "START TRAINING") {
		t.Error("expected menu in view")
	}
}
