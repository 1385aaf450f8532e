package play

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/prompted365/scamdetect/internal/achievements"
	"github.com/prompted365/scamdetect/internal/game"
	"github.com/prompted365/scamdetect/internal/scenario"
	"github.com/prompted365/scamdetect/internal/screen"
	"github.com/prompted365/scamdetect/internal/screens/summary"
	"github.com/prompted365/scamdetect/internal/tools"
	"github.com/prompted365/scamdetect/internal/ui/components"
	"github.com/prompted365/scamdetect/internal/ui/layout"
)

// enrichTimeout bounds the live-data fetch layered onto a tool result.
const enrichTimeout = 10 * time.Second

// viewMode selects which pane the screen is showing.
type viewMode int

const (
	modeQuestion viewMode = iota
	modeTools
	modeFeedback
)

// enrichDoneMsg is sent when the live-data fetch for a displayed tool
// result finishes. Slot indexes into the results the screen already shows.
type enrichDoneMsg struct {
	Slot   int
	Result tools.Result
	Err    error
}

// PlayScreen drives one started game session scenario by scenario.
type PlayScreen struct {
	sess  *game.Session
	muted bool

	current *scenario.Scenario
	choice  components.MultiChoice
	avail   []tools.ToolID

	mode    viewMode
	toolSel int
	results []tools.Result
	pending bool
	spin    components.Spinner
	outcome *game.AnswerOutcome
	toasts  []achievements.Definition
	errMsg  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatsProvider = (*PlayScreen)(nil)

// New creates a PlayScreen over an already started session.
func New(sess *game.Session, muted bool) *PlayScreen {
	p := &PlayScreen{
		sess:  sess,
		muted: muted,
		spin:  components.NewSpinner(),
	}
	p.loadCurrent()
	return p
}

// loadCurrent pulls the session's current scenario into the screen state.
func (p *PlayScreen) loadCurrent() {
	sc, err := p.sess.Current()
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.current = sc

	opts := make([]components.ChoiceOption, 0, len(sc.Options))
	for _, o := range sc.Options {
		opts = append(opts, components.ChoiceOption{ID: o.ID, Text: o.Text})
	}
	p.choice = components.NewMultiChoice(sc.Question, opts, sc.CorrectOption)

	p.avail = p.avail[:0]
	for _, raw := range sc.Tools {
		id, err := tools.Parse(raw)
		if err != nil {
			continue
		}
		p.avail = append(p.avail, id)
	}

	p.mode = modeQuestion
	p.toolSel = 0
	p.results = nil
	p.pending = false
	p.outcome = nil
	p.toasts = nil
}

func (p *PlayScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayScreen) Title() string {
	return "Training"
}

// HandlesEsc reports whether esc should be forwarded to this screen instead
// of navigating back. True while the toolkit panel is open.
func (p *PlayScreen) HandlesEsc() bool {
	return p.mode == modeTools
}

// Stats feeds the live HUD in the header.
func (p *PlayScreen) Stats() (level, xp, streak int) {
	l := p.sess.Ledger()
	if l == nil {
		return 1, 0, 0
	}
	return l.Level, l.XP, l.Streak
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeTools:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Run tool"},
			{Key: "T", Description: "Close"},
		}
	case modeFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
		}
		if len(p.avail) > 0 {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Toolkit"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
		return hints
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case enrichDoneMsg:
		return p.handleEnrichDone(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	// Spinner ticks and anything else only matter while a tool is running.
	if p.pending {
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.mode {
	case modeFeedback:
		if key == "enter" || key == "space" {
			return p.advance()
		}
		return p, nil

	case modeTools:
		return p.handleToolsKey(key)

	default:
		return p.handleQuestionKey(msg, key)
	}
}

func (p *PlayScreen) handleQuestionKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter":
		return p.submit()
	case "t", "T":
		if len(p.avail) > 0 && !p.pending {
			p.mode = modeTools
		}
		return p, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(p.choice.Options) {
			p.choice.Selected = idx
			return p.submit()
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.choice, cmd = p.choice.Update(msg)
	return p, cmd
}

func (p *PlayScreen) handleToolsKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "t", "T", "esc":
		p.mode = modeQuestion
		return p, nil
	case "up", "k":
		if p.toolSel > 0 {
			p.toolSel--
		}
		return p, nil
	case "down", "j":
		if p.toolSel < len(p.avail)-1 {
			p.toolSel++
		}
		return p, nil
	case "enter":
		return p.runTool(p.toolSel)
	case "1", "2", "3", "4", "5", "6":
		return p.runTool(int(key[0] - '1'))
	}
	return p, nil
}

// runTool runs the selected tool. Bookkeeping and the baseline report happen
// right here on the update loop; only the live-data fetch goes out as a
// background command, upgrading the already-displayed result when it lands.
func (p *PlayScreen) runTool(idx int) (screen.Screen, tea.Cmd) {
	if p.pending || idx < 0 || idx >= len(p.avail) {
		return p, nil
	}
	id := p.avail[idx]
	p.mode = modeQuestion

	out, err := p.sess.UseTool(id)
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	p.results = append(p.results, out.Result)

	var cmds []tea.Cmd
	if len(out.NewAchievements) > 0 {
		p.toasts = append(p.toasts, out.NewAchievements...)
		cmds = append(cmds, p.chime())
	}
	if p.sess.LiveData() {
		p.pending = true
		slot := len(p.results) - 1
		base := out.Result
		sess := p.sess
		cmds = append(cmds,
			func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
				defer cancel()
				res, err := sess.EnrichResult(ctx, id, base)
				return enrichDoneMsg{Slot: slot, Result: res, Err: err}
			},
			p.spin.Tick(),
		)
	}
	return p, tea.Batch(cmds...)
}

// handleEnrichDone swaps the enriched report into place. A failed fetch is
// quietly dropped and the simulated baseline stays on screen.
func (p *PlayScreen) handleEnrichDone(msg enrichDoneMsg) (screen.Screen, tea.Cmd) {
	p.pending = false
	if msg.Err == nil && msg.Slot >= 0 && msg.Slot < len(p.results) {
		p.results[msg.Slot] = msg.Result
	}
	return p, nil
}

// submit locks in the highlighted option and shows feedback.
func (p *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	if p.pending {
		return p, nil
	}
	id := p.choice.SelectedID()
	out, err := p.sess.SubmitAnswer(id)
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	p.choice.Submit()
	p.outcome = out
	p.mode = modeFeedback
	if len(out.NewAchievements) > 0 {
		p.toasts = append(p.toasts, out.NewAchievements...)
		return p, p.chime()
	}
	return p, nil
}

// advance moves to the next scenario, or swaps in the summary screen when
// the session is over.
func (p *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	if err := p.sess.Advance(); err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	if p.sess.Phase() == game.PhaseCompleted {
		sess := p.sess
		muted := p.muted
		restart := func() screen.Screen {
			sess.Restart()
			_ = sess.Start()
			return New(sess, muted)
		}
		return summary.New(sess, restart), nil
	}
	p.loadCurrent()
	return p, nil
}

// chime rings the terminal bell for an achievement unless sound is off.
func (p *PlayScreen) chime() tea.Cmd {
	if p.muted {
		return nil
	}
	return func() tea.Msg {
		fmt.Fprint(os.Stderr, "\a")
		return nil
	}
}
