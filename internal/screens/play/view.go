package play

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prompted365/scamdetect/internal/tools"
	"github.com/prompted365/scamdetect/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Danger).
			Render("\n\n  " + p.errMsg)
	}

	switch p.mode {
	case modeTools:
		return p.renderToolsPanel(width)
	case modeFeedback:
		return p.renderFeedback(width)
	default:
		return p.renderQuestion(width)
	}
}

// renderQuestion shows the scenario artifact, tool results so far, and the
// answer options.
func (p *PlayScreen) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(p.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	b.WriteString(renderArtifact(p.current, width))
	b.WriteString("\n\n")

	if p.pending {
		b.WriteString("  " + p.spin.View() + lipgloss.NewStyle().
			Foreground(theme.Info).
			Render(" Fetching live data..."))
		b.WriteString("\n\n")
	}

	for _, r := range p.results {
		b.WriteString(renderToolResult(r, width))
		b.WriteString("\n")
	}
	if len(p.results) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(p.choice.View(width - 4)))

	if len(p.avail) > 0 && !p.pending {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(2).
			Render(fmt.Sprintf("🔧 %d investigation tools available — press T", len(p.avail))))
	}

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Danger).
			PaddingLeft(2).
			Render(p.errMsg))
	}

	b.WriteString(p.renderToasts(width))

	return b.String()
}

// renderInfoLine renders scenario position, difficulty, and category badges.
func (p *PlayScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  SCENARIO %d/%d", p.sess.Index()+1, p.sess.ActiveLen()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s",
			strings.ToUpper(string(p.current.Difficulty)),
			p.current.Category.DisplayName(),
		))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderToolsPanel lists the scenario's available investigation tools.
func (p *PlayScreen) renderToolsPanel(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		PaddingLeft(2).
		Render("INVESTIGATION TOOLKIT"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(2).
		Render("Target: " + p.current.AnalysisTarget()))
	b.WriteString("\n\n")

	for i, id := range p.avail {
		prefix := "  "
		if i == p.toolSel {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, id.Icon(), id.DisplayName())

		var style lipgloss.Style
		if i == p.toolSel {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else {
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		b.WriteString(style.PaddingLeft(2).Render(line))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(8).
			Width(width - 8).
			Render(id.Description()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(2).
		Render("Each tool use grants XP toward Technical Auditing."))

	return b.String()
}

// renderToolResult renders one analysis report with tier-colored findings.
func renderToolResult(r tools.Result, width int) string {
	tierStyle := theme.RiskTierStyle(string(r.Tier))

	header := fmt.Sprintf("%s %s  [%s]",
		r.Tool.Icon(), r.Tool.DisplayName(), strings.ToUpper(string(r.Tier)))

	var b strings.Builder
	b.WriteString(tierStyle.Render(header) + "\n")
	for _, f := range r.Findings {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width-10).
			Render("• "+f) + "\n")
	}
	if r.Note != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("(" + r.Note + ")"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 6).
		MarginLeft(2).
		Render(strings.TrimRight(b.String(), "\n"))
}

// renderFeedback shows the verdict, explanation, red flags, and chain notes.
func (p *PlayScreen) renderFeedback(width int) string {
	sc := p.current
	out := p.outcome

	var b strings.Builder
	b.WriteString("\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if out.Correct {
		verdict := fmt.Sprintf("✓ CORRECT  +%d XP", out.XPAwarded)
		if out.SpeedBonus {
			verdict += "  ⚡ SPEED BONUS"
		}
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render(verdict))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Text).Render(sc.Feedback.Correct))
	} else {
		b.WriteString(center.Foreground(theme.Danger).Bold(true).Render("✗ INCORRECT"))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Text).Render(sc.Feedback.Incorrect))
		if out.StreakBroken {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).Render("Streak broken."))
		}
	}
	b.WriteString("\n\n")

	if out.LeveledUp {
		b.WriteString(center.Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("⬆ LEVEL UP — Level %d", p.sess.Ledger().Level)))
		b.WriteString("\n\n")
	}
	if out.SkillLeveledUp {
		b.WriteString(center.Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("⬆ %s advanced", out.Skill.DisplayName())))
		b.WriteString("\n\n")
	}

	if len(sc.Feedback.RedFlags) > 0 {
		b.WriteString(p.renderNoteBlock("🚩 RED FLAGS", sc.Feedback.RedFlags, theme.Danger, width))
	}
	if len(sc.Feedback.ChainNotes) > 0 {
		b.WriteString(p.renderNoteBlock("⛓ ON-CHAIN NOTES", sc.Feedback.ChainNotes, theme.Info, width))
	}

	b.WriteString(p.renderToasts(width))

	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Press Enter to continue..."))

	return b.String()
}

func (p *PlayScreen) renderNoteBlock(title string, lines []string, fg color.Color, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(fg).
		Bold(true).
		Render(title) + "\n")
	for _, l := range lines {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width-12).
			Render("• "+l) + "\n")
	}
	block := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		MarginLeft(2).
		Width(width - 6).
		Render(strings.TrimRight(b.String(), "\n"))
	return block + "\n\n"
}

// renderToasts renders newly unlocked achievements.
func (p *PlayScreen) renderToasts(width int) string {
	if len(p.toasts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n")
	for _, d := range p.toasts {
		line := fmt.Sprintf("%s  ACHIEVEMENT UNLOCKED: %s  (+%d XP)", d.Icon, d.Name, d.XPReward)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(line))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(d.Description))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
