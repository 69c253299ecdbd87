package receipt

import (
	"nft-receipt-tui/helpers"
	"nft-receipt-tui/mode"
	"nft-receipt-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Props is the state of the receipt form
type Props struct {
	Width       int
	Focused     bool
	Item        string // rendered item input
	Price       string // rendered price input
	Symbol      string
	Mode        mode.Mode
	Submitting  bool
	Spinner     string
	LastTokenID string
}

// Render draws the mint form
func Render(p Props) string {
	title := styles.TitleStyle.Render("Generate NFT Receipt")
	if p.Mode.IsDemo() {
		title += "  " + styles.MutedStyle.Render("(demo)")
	}

	symbol := p.Symbol
	if symbol == "" {
		symbol = "ETH"
	}

	button := styles.ButtonStyle.Render("Generate Receipt")
	switch {
	case p.Submitting:
		button = styles.ButtonStyle.Render(p.Spinner + " Minting Receipt...")
	case p.Focused:
		button = styles.ActiveButtonStyle.Render("Generate Receipt")
	}

	rows := []string{
		title,
		"",
		styles.LabelStyle.Render("Item Name"),
		p.Item,
		"",
		styles.LabelStyle.Render("Price in " + symbol),
		p.Price,
		"",
		button,
	}

	if p.LastTokenID != "" {
		last := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.CAccent).
			Padding(0, 1).
			Render(styles.MutedStyle.Render("Last Minted Token ID: ") + styles.SuccessStyle.Render(p.LastTokenID))
		rows = append(rows, "", last)
	}

	panel := styles.PanelStyle
	if p.Focused {
		panel = styles.FocusedPanelStyle
	}
	return panel.Width(helpers.Max(0, p.Width-2)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
