package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prompted365/scamdetect/internal/ui/theme"
)

// Block-letter title.
const consoleTitleFull = ` ███████╗ ██████╗ █████╗ ███╗   ███╗
 ██╔════╝██╔════╝██╔══██╗████╗ ████║
 ███████╗██║     ███████║██╔████╔██║
 ╚════██║██║     ██╔══██║██║╚██╔╝██║
 ███████║╚██████╗██║  ██║██║ ╚═╝ ██║
 ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝     ╚═╝
        D  E  T  E  C  T`

const consoleTitleCompact = "S · C · A · M · D · E · T · E · C · T"

const shieldArt = `   ▄▄▄▄▄▄▄
  █ ◉▄▄▄◉ █
  █ █▀▀▀█ █
  █ █ $ █ █
   █▄▄▄▄▄█
    ▀▄▄▄▀`

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for console border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(consoleTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(consoleTitleFull))
}

// renderShieldBox renders the guardian shield centered at content width.
func renderShieldBox(cw int) string {
	art := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(shieldArt)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(art)
}

// renderBriefingBar renders the scenario-count briefing in a bordered box
// matching content width.
func renderBriefingBar(total, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var text string
	if compact {
		text = countStyle.Render(fmt.Sprintf("⛨ %d", total)) +
			dimStyle.Render(" SCENARIOS")
	} else {
		text = countStyle.Render(fmt.Sprintf("⛨ %d SCENARIOS", total)) +
			dimStyle.Render("  ·  SPOT THE SCAM BEFORE IT SPOTS YOU")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderConsoleMenu renders each menu row as a fixed-width button, falling
// back to plain lines on small terminals where borders would overflow.
func renderConsoleMenu(items []string, selected, cw int, compact bool) string {
	if compact {
		return renderConsoleMenuCompact(items, selected, cw)
	}

	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func renderConsoleMenuCompact(items []string, selected, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderErrorNote renders a one-line error under the menu.
func renderErrorNote(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Danger).
		Width(cw).
		Align(lipgloss.Center).
		Render(msg)
}

// renderConsoleFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderConsoleFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).   // account for border chars
		Height(height-2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
