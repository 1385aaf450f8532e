package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prompted365/scamdetect/internal/game"
	"github.com/prompted365/scamdetect/internal/router"
	"github.com/prompted365/scamdetect/internal/screen"
	"github.com/prompted365/scamdetect/internal/ui/components"
	"github.com/prompted365/scamdetect/internal/ui/layout"
	"github.com/prompted365/scamdetect/internal/ui/theme"
)

// SummaryScreen displays the final mission report.
type SummaryScreen struct {
	report  *game.Report
	restart func() screen.Screen
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatsProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a completed session. restart, when
// non-nil, builds a fresh play screen with the same settings.
func New(sess *game.Session, restart func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{restart: restart}
	report, err := sess.Results()
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.report = report
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Mission Report"
}

// Stats shows the final level, XP, and best streak in the header.
func (s *SummaryScreen) Stats() (level, xp, streak int) {
	if s.report == nil {
		return 1, 0, 0
	}
	return s.report.Level, s.report.XP, s.report.MaxStreak
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R":
		if s.restart != nil {
			next := s.restart()
			return next, next.Init()
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.report == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Danger).
			Render("\n\n  " + s.errMsg)
	}

	rep := s.report
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	// Rank banner.
	b.WriteString(center.Foreground(rankColor(rep.Rank)).Bold(true).
		Render(fmt.Sprintf("🏆 %s", rep.Rank)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render(rep.Message))
	b.WriteString("\n\n")

	// Headline stats.
	mins := int(rep.Elapsed.Minutes())
	secs := int(rep.Elapsed.Seconds()) % 60
	statsLine := fmt.Sprintf(
		"Accuracy: %d%%    Correct: %d    Missed: %d    Best streak: %d    Tools used: %d    Time: %d:%02d",
		rep.Accuracy, rep.Correct, rep.Incorrect, rep.MaxStreak, rep.ToolsUsed, mins, secs)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Skill progress.
	b.WriteString(center.Foreground(theme.TextDim).Render("Skills"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-8, 56)
	for _, sk := range game.AllSkills() {
		label := fmt.Sprintf("%-22s Lv %d", sk.DisplayName(), rep.SkillLevels[sk])
		bar := components.NewProgressBar(label, rep.SkillProgress[sk], true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	// Achievements.
	if len(rep.Achievements) > 0 {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("Achievements"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, d := range rep.Achievements {
			line := fmt.Sprintf("%s %s — %s (+%d XP)", d.Icon, d.Name, d.Description, d.XPReward)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	// Share block.
	b.WriteString("\n")
	share := fmt.Sprintf("🛡 ScamDetect: %s · %d%% accuracy · %d XP · Level %d",
		rep.Rank, rep.Accuracy, rep.XP, rep.Level)
	if len(rep.SessionID) >= 8 {
		share += " · mission " + rep.SessionID[:8]
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.TextDim).
			Padding(0, 2).
			Render(share)))

	return b.String()
}

// rankColor returns the theme color for a final rank.
func rankColor(r game.Rank) color.Color {
	switch r {
	case game.RankGuardian:
		return theme.Accent
	case game.RankExpert:
		return theme.Success
	case game.RankVigilant:
		return theme.Info
	case game.RankAtRisk:
		return theme.Danger
	default:
		return theme.Text
	}
}
