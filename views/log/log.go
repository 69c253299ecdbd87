package log

import (
	"fmt"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Height is how many log lines fit below a page of the given height
func Height(screenHeight int) int {
	return helpers.Max(3, helpers.Min(screenHeight/4, 12))
}

// Render draws the log panel. The viewport is sized by the caller.
func Render(width int, ready bool, spinnerView string, vp viewport.Model) string {
	title := styles.TitleStyle.Render("Log")

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2))

	if !ready {
		return box.Render(title + "\n" + spinnerView + " starting logger...")
	}

	if vp.TotalLineCount() > vp.Height {
		title += styles.MutedStyle.Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}
	title += styles.MutedStyle.Render("  pgup/pgdn scroll")

	return box.Render(title + "\n" + vp.View())
}
