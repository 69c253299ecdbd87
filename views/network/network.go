package network

import (
	"strings"

	"nft-receipt-tui/networks"
	"nft-receipt-tui/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// TempSelection stores the chosen chain id while the form is open
var TempSelection string

// CreateForm creates the network selector, preselecting current
func CreateForm(current string) *huh.Form {
	if _, ok := networks.Lookup(current); !ok {
		current = networks.Default().ChainID
	}
	TempSelection = current

	var opts []huh.Option[string]
	for _, n := range networks.All() {
		opts = append(opts, huh.NewOption(n.ChainName+" ("+n.NativeCurrency.Symbol+")", n.ChainID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Title("Select Network").
				Description("The wallet is asked to switch to this chain").
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Render renders the selector as a centered dialog
func Render(width, height int, form *huh.Form) string {
	body := "Loading networks..."
	if form != nil {
		body = form.View()
	}
	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(1, 2).
		Render(body + "\n" + Nav())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}

// Nav returns the key hints of the dialog
func Nav() string {
	return styles.HotkeyStyle.Render(strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " switch",
		styles.Key("Esc") + " cancel",
	}, "   "))
}
