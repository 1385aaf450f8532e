package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prompted365/scamdetect/internal/scenario"
	"github.com/prompted365/scamdetect/internal/ui/theme"
)

// renderArtifact renders the simulated evidence for a scenario: an email, a
// website, a transaction prompt, or a chat transcript.
func renderArtifact(sc *scenario.Scenario, width int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	var body string
	switch sc.Kind {
	case scenario.KindEmail:
		body = renderEmail(sc.Email, inner)
	case scenario.KindWebsite:
		body = renderWebsite(sc.Website, inner)
	case scenario.KindTransaction:
		body = renderTransaction(sc.Transaction, inner)
	case scenario.KindChat:
		body = renderChat(sc.Chat, inner)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 4).
		Render(body)
}

func renderEmail(e *scenario.Email, width int) string {
	if e == nil {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(label.Render("From:    ") + value.Render(e.From) + "\n")
	b.WriteString(label.Render("To:      ") + value.Render(e.To) + "\n")
	b.WriteString(label.Render("Subject: ") +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(e.Subject) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(e.Body))
	return b.String()
}

func renderWebsite(w *scenario.Website, width int) string {
	if w == nil {
		return ""
	}
	urlBar := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("🌐 " + w.URL)

	var b strings.Builder
	b.WriteString(urlBar + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width)) + "\n")
	for _, line := range w.Content {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(line) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTransaction(tx *scenario.Transaction, width int) string {
	if tx == nil {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
		Render("⚠ SIGNATURE REQUEST") + "\n\n")
	b.WriteString(label.Render("To: ") + value.Render(tx.To) + "\n")
	for _, f := range tx.Fields {
		b.WriteString(label.Render(f.Label+": ") + value.Render(f.Value) + "\n")
	}
	if tx.DecodedFunction != "" {
		b.WriteString("\n")
		b.WriteString(label.Render("Decoded: ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(tx.DecodedFunction) + "\n")
		for _, p := range tx.DecodedParams {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				label.Render(p.Label+":"), value.Render(p.Value)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderChat(c *scenario.Chat, width int) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	for _, m := range c.Messages {
		nameStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)
		if m.Sent {
			nameStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		header := nameStyle.Render(m.From)
		if m.Time != "" {
			header += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + m.Time)
		}
		b.WriteString(header + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(m.Text) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
