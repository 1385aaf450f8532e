package home

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/prompted365/scamdetect/internal/game"
	"github.com/prompted365/scamdetect/internal/router"
	"github.com/prompted365/scamdetect/internal/scenario"
	"github.com/prompted365/scamdetect/internal/screen"
	playscreen "github.com/prompted365/scamdetect/internal/screens/play"
	"github.com/prompted365/scamdetect/internal/screens/summary"
	"github.com/prompted365/scamdetect/internal/store"
	"github.com/prompted365/scamdetect/internal/tools"
	"github.com/prompted365/scamdetect/internal/ui/layout"
)

// menu row indices.
const (
	rowStart = iota
	rowLength
	rowDifficulty
	rowSound
	rowExit
	rowCount
)

var difficultyChoices = []game.DifficultyFilter{
	game.FilterAll,
	game.FilterEasy,
	game.FilterMedium,
	game.FilterHard,
}

// HomeScreen is the mission console: session setup plus settings.
type HomeScreen struct {
	repo     *scenario.Repository
	kit      *tools.Kit
	enricher game.Enricher
	store    *store.Store

	selected int
	lenIdx   int
	diffIdx  int
	muted    bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. The enricher may be nil, in which case
// sessions run on simulated tool data only.
func New(repo *scenario.Repository, kit *tools.Kit, enricher game.Enricher, st *store.Store) *HomeScreen {
	var muted bool
	if st != nil {
		muted, _ = st.Muted()
	}

	// Default to a 10-scenario mission.
	lenIdx := 0
	for i, n := range game.QuizLengths() {
		if n == 10 {
			lenIdx = i
		}
	}

	return &HomeScreen{
		repo:     repo,
		kit:      kit,
		enricher: enricher,
		store:    st,
		lenIdx:   lenIdx,
		muted:    muted,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Mission Console"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	h.errMsg = ""

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < rowCount-1 {
			h.selected++
		}
	case "left", "h":
		h.cycle(-1)
	case "right", "l":
		h.cycle(1)
	case "enter":
		return h.activate()
	}

	return h, nil
}

// cycle adjusts the value of the selected settings row.
func (h *HomeScreen) cycle(dir int) {
	switch h.selected {
	case rowLength:
		n := len(game.QuizLengths())
		h.lenIdx = (h.lenIdx + dir + n) % n
	case rowDifficulty:
		n := len(difficultyChoices)
		h.diffIdx = (h.diffIdx + dir + n) % n
	case rowSound:
		h.toggleSound()
	}
}

func (h *HomeScreen) toggleSound() {
	h.muted = !h.muted
	if h.store != nil {
		if err := h.store.SetMuted(h.muted); err != nil {
			h.errMsg = "Could not save sound setting: " + err.Error()
		}
	}
}

func (h *HomeScreen) activate() (screen.Screen, tea.Cmd) {
	switch h.selected {
	case rowStart:
		return h.startSession()
	case rowLength, rowDifficulty:
		h.cycle(1)
		return h, nil
	case rowSound:
		h.toggleSound()
		return h, nil
	case rowExit:
		return h, tea.Quit
	}
	return h, nil
}

// startSession builds and starts a game session from the selected settings
// and pushes the play screen.
func (h *HomeScreen) startSession() (screen.Screen, tea.Cmd) {
	opts := []game.SessionOption{}
	if h.enricher != nil {
		opts = append(opts, game.WithEnricher(h.enricher))
	}
	sess := game.NewSession(h.repo, h.kit, opts...)

	cfg := game.Config{
		QuizLength: game.QuizLengths()[h.lenIdx],
		Difficulty: difficultyChoices[h.diffIdx],
	}
	if err := sess.Configure(cfg); err != nil {
		h.errMsg = err.Error()
		return h, nil
	}
	if err := sess.Start(); err != nil {
		h.errMsg = err.Error()
		return h, nil
	}

	// An empty filtered set completes immediately; skip straight to results.
	var next screen.Screen
	if sess.Phase() == game.PhaseCompleted {
		next = summary.New(sess, nil)
	} else {
		next = playscreen.New(sess, h.muted)
	}
	return h, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderShieldBox(cw))
	}

	sections = append(sections, renderBriefingBar(h.repo.Len(), cw, compact))

	sections = append(sections, renderConsoleMenu(h.menuLabels(), h.selected, cw, compact))

	if h.errMsg != "" {
		sections = append(sections, renderErrorNote(h.errMsg, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderConsoleFrame(content, width, height)
}

// menuLabels builds the current row labels, settings values included.
func (h *HomeScreen) menuLabels() []string {
	sound := "ON"
	if h.muted {
		sound = "OFF"
	}
	return []string{
		"START TRAINING",
		"SCENARIOS: " + strconv.Itoa(game.QuizLengths()[h.lenIdx]),
		"DIFFICULTY: " + strings.ToUpper(string(difficultyChoices[h.diffIdx])),
		"SOUND: " + sound,
		"EXIT",
	}
}
