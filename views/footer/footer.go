package footer

import (
	"strings"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/networks"
	"nft-receipt-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the onboarding hint and one faucet link per supported testnet
func Render(width int) string {
	all := networks.All()

	names := make([]string, 0, len(all))
	links := make([]string, 0, len(all))
	for _, n := range all {
		names = append(names, n.ChainName)
		links = append(links, helpers.Hyperlink(n.FaucetURL, styles.HotkeyKeyStyle.Render(n.FaucetLabel)))
	}

	hint := "Connect your wallet to the " + strings.Join(names, " or ") + " testnet to get started."

	return lipgloss.NewStyle().
		Width(helpers.Max(0, width)).
		Align(lipgloss.Center).
		Foreground(styles.CMuted).
		Render(hint + "\n" + strings.Join(links, styles.MutedStyle.Render(" | ")))
}
