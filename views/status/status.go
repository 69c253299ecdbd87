package status

import (
	"strings"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/mode"
	"nft-receipt-tui/networks"
	"nft-receipt-tui/session"
	"nft-receipt-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Props is everything the wallet status bar shows
type Props struct {
	Width    int
	State    session.State
	Balance  string
	Mode     mode.Mode
	Selected string // chain id picked in the network selector
	Spinner  string
	Copied   string
}

// Render draws the wallet status bar
func Render(p Props) string {
	title := styles.TitleStyle.Render("Wallet Status")

	var line string
	if p.State.IsConnected() {
		addr := helpers.ShortenAddr(p.State.Account)
		if n, ok := networks.Lookup(p.State.ChainID); ok {
			addr = helpers.Hyperlink(n.AddressURL(p.State.Account), addr)
		}
		parts := []string{
			"Connected: " + styles.HotkeyKeyStyle.Render(addr),
			"Network: " + networks.Name(p.State.ChainID),
		}
		if p.Balance != "" {
			parts = append(parts, "Balance: "+p.Balance)
		}
		line = strings.Join(parts, styles.MutedStyle.Render(" | "))
	} else {
		line = styles.MutedStyle.Render("Connect your wallet to mint NFT receipts")
	}
	if p.Copied != "" {
		line += "  " + styles.SuccessStyle.Render(p.Copied)
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		modeToggle(p.Mode), "  ",
		selector(p.Selected), "  ",
		connectButton(p.State, p.Spinner),
	)

	left := lipgloss.JoinVertical(lipgloss.Left, title, line)
	inner := helpers.Max(0, p.Width-6)
	gap := helpers.Max(1, inner-lipgloss.Width(left)-lipgloss.Width(controls))

	var body string
	if lipgloss.Width(left)+lipgloss.Width(controls)+1 > inner {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", controls)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), controls)
	}

	return styles.PanelStyle.Width(helpers.Max(0, p.Width-2)).Render(body)
}

func modeToggle(m mode.Mode) string {
	demo, live := styles.ButtonStyle, styles.ButtonStyle
	if m.IsDemo() {
		demo = styles.ActiveButtonStyle
	} else {
		live = styles.ActiveButtonStyle
	}
	return demo.Render(mode.Demo.Label()) + live.Render(mode.Real.Label())
}

func selector(chainID string) string {
	return styles.HotkeyStyle.Render("◆ " + networks.Name(chainID) + " ▾")
}

func connectButton(s session.State, spin string) string {
	switch {
	case s.IsConnecting:
		return styles.ButtonStyle.Render(spin + " Connecting")
	case s.IsConnected():
		return styles.ButtonStyle.Foreground(styles.CAccent).Render("✓ Connected")
	default:
		return styles.ActiveButtonStyle.Render("Connect Wallet")
	}
}

// Nav returns the global key hints
func Nav(width int, connected, logEnabled bool) string {
	wallet := styles.Key("ctrl+w") + " connect"
	if connected {
		wallet = styles.Key("ctrl+d") + " disconnect"
	}
	logHint := styles.Key("ctrl+l") + " show log"
	if logEnabled {
		logHint = styles.Key("ctrl+l") + " hide log"
	}
	left := strings.Join([]string{
		styles.Key("tab") + " focus",
		styles.Key("enter") + " submit",
		wallet,
		styles.Key("ctrl+k") + " lock",
		styles.Key("ctrl+n") + " network",
		styles.Key("ctrl+t") + " mode",
		styles.Key("ctrl+y") + " copy",
		logHint,
		styles.Key("ctrl+c") + " quit",
	}, "   ")

	return styles.NavStyle.Width(helpers.Max(0, width-2)).Render(left)
}
