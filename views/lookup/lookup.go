package lookup

import (
	"strings"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/networks"
	"nft-receipt-tui/receipts"
	"nft-receipt-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Props is the state of the lookup panel
type Props struct {
	Width   int
	Focused bool
	Input   string // rendered token id input
	Loading bool
	Spinner string
	Record  *receipts.Record
}

// Render draws the lookup form and, when one is loaded, the receipt card
func Render(p Props) string {
	button := styles.ButtonStyle.Render("View Receipt")
	switch {
	case p.Loading:
		button = styles.ButtonStyle.Render(p.Spinner + " Loading...")
	case p.Focused:
		button = styles.ActiveButtonStyle.Render("View Receipt")
	}

	rows := []string{
		styles.TitleStyle.Render("View NFT Receipt"),
		"",
		styles.LabelStyle.Render("Token ID"),
		p.Input,
		"",
		button,
	}

	inner := helpers.Max(0, p.Width-8)
	if p.Record != nil {
		rows = append(rows, "", RenderCard(*p.Record, inner))
	}

	panel := styles.PanelStyle
	if p.Focused {
		panel = styles.FocusedPanelStyle
	}
	return panel.Width(helpers.Max(0, p.Width-2)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(styles.CPink).
			Padding(0, 1)
	cardLabel = styles.MutedStyle
)

// RenderCard renders a receipt. The output depends only on r and width.
func RenderCard(r receipts.Record, width int) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TitleStyle.Render("NFT Receipt"),
		"  ",
		cardLabel.Render("Token ID: ")+styles.LabelStyle.Render("#"+r.TokenID),
	)

	symbol := "ETH"
	network, known := networks.Lookup(r.ChainID)
	if known {
		symbol = network.NativeCurrency.Symbol
	}

	owner := r.Owner
	if helpers.IsValidEthAddress(owner) {
		owner = helpers.ShortenAddr(owner)
		if known {
			owner = helpers.Hyperlink(network.AddressURL(r.Owner), owner)
		}
	}

	lines := []string{
		header,
		"",
		field("Item", r.ItemName),
		field("Price", r.Price+" "+symbol),
		field("Date", r.Timestamp),
		field("Owner", owner),
	}

	if r.TxHash != "" && known {
		url := network.TxURL(r.TxHash)
		lines = append(lines, field("Tx", helpers.Hyperlink(url, shortHash(r.TxHash))))
		if qr := helpers.GenerateQRCode(url); qr != "" {
			lines = append(lines, "", qr)
		}
	}

	lines = append(lines, "", cardLabel.Italic(true).Render("This NFT receipt is stored on the blockchain and cannot be altered."))

	st := cardStyle
	if width > 2 {
		st = st.Width(width - 2)
	}
	return st.Render(strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return cardLabel.Render(label+": ") + value
}

func shortHash(h string) string {
	if len(h) <= 14 {
		return h
	}
	return h[:10] + "..." + h[len(h)-4:]
}
