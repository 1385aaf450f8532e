package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/prompted365/scamdetect/internal/achievements"
	"github.com/prompted365/scamdetect/internal/scenario"
	"github.com/prompted365/scamdetect/internal/tools"
)

// speedBonusWindow is the answer time under which a correct answer earns the
// flat speed bonus.
const speedBonusWindow = 30 * time.Second

// speedBonusXP is the flat, unskilled XP awarded for a fast correct answer.
const speedBonusXP = 50

// toolUseXP is the XP credited per tool invocation, under technical auditing.
const toolUseXP = 10

// Phase is the session's top-level state.
type Phase int

const (
	PhaseConfiguring Phase = iota
	PhaseInProgress
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// subPhase tracks where the current scenario is in its answer cycle.
type subPhase int

const (
	awaitingAnswer subPhase = iota
	awaitingAdvance
)

var (
	// ErrNotConfiguring is returned by Configure outside the configuration phase.
	ErrNotConfiguring = errors.New("session is not in the configuration phase")
	// ErrNotStarted is returned when an in-progress operation runs before Start.
	ErrNotStarted = errors.New("session has not been started")
	// ErrCompleted is returned when a gameplay operation runs after completion.
	ErrCompleted = errors.New("session is already completed")
	// ErrAlreadyAnswered is returned by a second SubmitAnswer for one scenario.
	ErrAlreadyAnswered = errors.New("current scenario already answered")
	// ErrAwaitingAnswer is returned by Advance before the scenario is answered.
	ErrAwaitingAnswer = errors.New("current scenario is awaiting an answer")
	// ErrUnknownOption is returned for an option id the scenario does not offer.
	ErrUnknownOption = errors.New("option id does not belong to the current scenario")
)

// Analyzer produces baseline simulated tool reports.
type Analyzer interface {
	Analyze(id tools.ToolID, target string) tools.Result
}

// Enricher optionally augments baseline reports with live data. On error the
// session hands the baseline back; enrichment never affects scoring.
type Enricher interface {
	Enhance(ctx context.Context, id tools.ToolID, base tools.Result, target string) (tools.Result, error)
}

// AnswerOutcome reports what a SubmitAnswer call changed.
type AnswerOutcome struct {
	Correct         bool
	CorrectOption   string
	XPAwarded       int
	SpeedBonus      bool
	StreakBroken    bool
	LeveledUp       bool
	SkillLeveledUp  bool
	Skill           Skill
	NewAchievements []achievements.Definition
}

// ToolOutcome reports a UseTool call: the baseline analysis and any
// achievements it unlocked.
type ToolOutcome struct {
	Result          tools.Result
	NewAchievements []achievements.Definition
}

// Session is one complete play-through: configuration, the scenario loop,
// and the final report. Each Session owns its own ledger and active set;
// nothing is shared across instances, so concurrent sessions are safe.
type Session struct {
	repo     *scenario.Repository
	analyzer Analyzer
	enricher Enricher
	rng      *rand.Rand
	now      func() time.Time

	id     string
	cfg    Config
	phase  Phase
	sub    subPhase
	active []scenario.Scenario
	index  int
	ledger *Ledger

	startedAt   time.Time
	presentedAt time.Time
	completedAt time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRand injects the random source used for active-set shuffling.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithClock injects the time source used for answer timing.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithEnricher attaches an optional live-data enricher for EnrichResult.
func WithEnricher(e Enricher) SessionOption {
	return func(s *Session) { s.enricher = e }
}

// NewSession creates a session in the configuration phase with a default
// configuration of every scenario at every difficulty.
func NewSession(repo *scenario.Repository, analyzer Analyzer, opts ...SessionOption) *Session {
	s := &Session{
		repo:     repo,
		analyzer: analyzer,
		now:      time.Now,
		cfg:      Config{QuizLength: repo.Len(), Difficulty: FilterAll},
		phase:    PhaseConfiguring,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(s.now().UnixNano()))
	}
	return s
}

// Configure sets the quiz length and difficulty filter. Valid only before
// Start (or after Restart).
func (s *Session) Configure(cfg Config) error {
	if s.phase != PhaseConfiguring {
		return ErrNotConfiguring
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Start derives the active scenario set, resets the ledger, and begins play.
// An empty filtered set is not an error: the session completes immediately
// with zero scenarios.
func (s *Session) Start() error {
	if s.phase != PhaseConfiguring {
		return ErrNotConfiguring
	}

	s.id = uuid.New().String()
	s.active = BuildActiveSet(s.repo, s.cfg, s.rng)
	s.ledger = NewLedger()
	s.index = 0
	s.startedAt = s.now()

	if len(s.active) == 0 {
		s.phase = PhaseCompleted
		s.completedAt = s.startedAt
		return nil
	}

	s.phase = PhaseInProgress
	s.sub = awaitingAnswer
	s.presentedAt = s.startedAt
	return nil
}

// Restart abandons the session and returns to configuration. The ledger and
// active set are discarded entirely; nothing partial survives.
func (s *Session) Restart() {
	s.id = ""
	s.phase = PhaseConfiguring
	s.sub = awaitingAnswer
	s.active = nil
	s.ledger = nil
	s.index = 0
}

// ID returns the mission identifier assigned at Start, or "" before it.
// Each Start, including one after Restart, gets a fresh ID.
func (s *Session) ID() string { return s.id }

// Phase returns the session's current phase.
func (s *Session) Phase() Phase { return s.phase }

// Config returns the current configuration.
func (s *Session) Config() Config { return s.cfg }

// Ledger returns the live ledger, or nil before Start. Callers must treat it
// as read-only.
func (s *Session) Ledger() *Ledger { return s.ledger }

// ActiveLen returns the number of scenarios in this session.
func (s *Session) ActiveLen() int { return len(s.active) }

// Index returns the current 0-based scenario position.
func (s *Session) Index() int { return s.index }

// Answered reports whether the current scenario has been answered.
func (s *Session) Answered() bool {
	return s.phase == PhaseInProgress && s.sub == awaitingAdvance
}

// Current returns the scenario being played.
func (s *Session) Current() (*scenario.Scenario, error) {
	if s.phase == PhaseConfiguring {
		return nil, ErrNotStarted
	}
	if s.phase == PhaseCompleted {
		return nil, ErrCompleted
	}
	return &s.active[s.index], nil
}

// SubmitAnswer evaluates an answer for the current scenario. A second call
// for the same scenario returns ErrAlreadyAnswered with no state change, and
// an option id the scenario does not offer returns ErrUnknownOption with no
// state change.
func (s *Session) SubmitAnswer(optionID string) (*AnswerOutcome, error) {
	if s.phase == PhaseConfiguring {
		return nil, ErrNotStarted
	}
	if s.phase == PhaseCompleted {
		return nil, ErrCompleted
	}
	if s.sub != awaitingAnswer {
		return nil, ErrAlreadyAnswered
	}

	sc := &s.active[s.index]
	known := false
	for _, opt := range sc.Options {
		if opt.ID == optionID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
	}

	elapsed := s.now().Sub(s.presentedAt)
	correct := optionID == sc.CorrectOption

	out := &AnswerOutcome{Correct: correct, CorrectOption: sc.CorrectOption}
	out.StreakBroken = s.ledger.RecordAnswer(correct)

	if correct {
		out.Skill = CategorySkill(sc.Category)
		xp := s.ledger.AddXP(sc.Feedback.XPReward, out.Skill)
		out.XPAwarded = sc.Feedback.XPReward
		out.LeveledUp = xp.LeveledUp
		out.SkillLeveledUp = xp.SkillLeveledUp

		if elapsed < speedBonusWindow {
			out.SpeedBonus = true
			out.XPAwarded += speedBonusXP
			bonus := s.ledger.AddXP(speedBonusXP, "")
			out.LeveledUp = out.LeveledUp || bonus.LeveledUp
			s.ledger.Speedrun = true
		}
	}

	s.ledger.MarkCompleted(s.index)
	out.NewAchievements = s.runAchievements()
	s.sub = awaitingAdvance
	return out, nil
}

// Advance moves to the next scenario, or completes the session when the last
// scenario has been answered.
func (s *Session) Advance() error {
	if s.phase == PhaseConfiguring {
		return ErrNotStarted
	}
	if s.phase == PhaseCompleted {
		return ErrCompleted
	}
	if s.sub != awaitingAdvance {
		return ErrAwaitingAnswer
	}

	s.index++
	if s.index >= len(s.active) {
		s.phase = PhaseCompleted
		s.completedAt = s.now()
		return nil
	}
	s.sub = awaitingAnswer
	s.presentedAt = s.now()
	return nil
}

// UseTool runs an investigation tool against the current scenario's analysis
// target. Valid before or after answering, any number of times. The call is
// synchronous: bookkeeping, the baseline report, and achievement checks all
// complete before it returns. Live data is layered on separately through
// EnrichResult.
func (s *Session) UseTool(id tools.ToolID) (*ToolOutcome, error) {
	if s.phase == PhaseConfiguring {
		return nil, ErrNotStarted
	}
	if s.phase == PhaseCompleted {
		return nil, ErrCompleted
	}

	sc := &s.active[s.index]
	target := sc.AnalysisTarget()

	s.ledger.RecordToolUse()
	s.ledger.AddXP(toolUseXP, SkillTechnicalAuditing)

	result := s.analyzer.Analyze(id, target)
	result.Note = "simulated data"

	return &ToolOutcome{
		Result:          result,
		NewAchievements: s.runAchievements(),
	}, nil
}

// LiveData reports whether an enricher is attached, meaning EnrichResult can
// add anything beyond the baseline.
func (s *Session) LiveData() bool {
	return s.enricher != nil
}

// EnrichResult augments a baseline tool report with live data. It reads only
// the enricher, never the ledger or the scenario cursor, so it is safe to
// call from another goroutine while the session keeps running. Failures
// leave the baseline untouched: the caller gets it back alongside the error
// and enrichment never affects scoring.
func (s *Session) EnrichResult(ctx context.Context, id tools.ToolID, base tools.Result) (tools.Result, error) {
	if s.enricher == nil {
		return base, nil
	}
	enriched, err := s.enricher.Enhance(ctx, id, base, base.Target)
	if err != nil {
		return base, err
	}
	return enriched, nil
}

// runAchievements evaluates the rule set against current progress, records
// unlocks, and credits rewards. Returns the newly unlocked definitions.
func (s *Session) runAchievements() []achievements.Definition {
	stats := s.stats()
	fresh := achievements.Evaluate(stats, s.ledger.HasUnlocked)
	for _, d := range fresh {
		s.ledger.Unlock(d.ID, d.XPReward)
	}
	return fresh
}

// stats builds the achievement rule input. Completed counts join the
// completed indices against the active set's categories; repository counts
// cover the full scenario database, not just this session's subset.
func (s *Session) stats() achievements.Stats {
	completedByCat := make(map[scenario.Category]int)
	for _, idx := range s.ledger.Completed {
		completedByCat[s.active[idx].Category]++
	}
	repoByCat := make(map[scenario.Category]int)
	for _, sc := range s.repo.All() {
		repoByCat[sc.Category]++
	}

	return achievements.Stats{
		Correct:              s.ledger.Correct,
		Incorrect:            s.ledger.Incorrect,
		Streak:               s.ledger.Streak,
		ToolsUsed:            s.ledger.ToolsUsed,
		Speedrun:             s.ledger.Speedrun,
		CompletedTotal:       len(s.ledger.Completed),
		RepositoryTotal:      s.repo.Len(),
		CompletedByCategory:  completedByCat,
		RepositoryByCategory: repoByCat,
	}
}

// Results summarizes the finished session.
func (s *Session) Results() (*Report, error) {
	if s.phase != PhaseCompleted {
		return nil, fmt.Errorf("session is not completed (phase %s)", s.phase)
	}
	elapsed := s.completedAt.Sub(s.startedAt)
	report := Summarize(s.ledger, len(s.active), elapsed)
	report.SessionID = s.id
	return report, nil
}
