package notices

import (
	"strings"

	"nft-receipt-tui/styles"
	"nft-receipt-tui/toast"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(styles.CAccent2).Padding(0, 1)
	successStyle = infoStyle.BorderForeground(styles.CAccent)
	errorStyle   = infoStyle.BorderForeground(styles.CError)
)

func icon(l toast.Level) string {
	switch l {
	case toast.Success:
		return styles.SuccessStyle.Render("✓")
	case toast.Error:
		return styles.ErrorStyle.Render("✗")
	default:
		return styles.TitleStyle.Render("i")
	}
}

// Render stacks the visible notices, right aligned. Empty when there are none.
func Render(width int, visible []toast.Notice) string {
	if len(visible) == 0 {
		return ""
	}
	rows := make([]string, 0, len(visible))
	for _, n := range visible {
		st := infoStyle
		switch n.Level {
		case toast.Success:
			st = successStyle
		case toast.Error:
			st = errorStyle
		}
		rows = append(rows, st.Render(icon(n.Level)+" "+n.Text))
	}
	block := lipgloss.JoinVertical(lipgloss.Right, rows...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, strings.TrimRight(block, "\n"))
}
