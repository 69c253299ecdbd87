package main

import (
	"strings"
	"time"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/networks"
	"nft-receipt-tui/views/footer"
	"nft-receipt-tui/views/log"
	"nft-receipt-tui/views/lookup"
	"nft-receipt-tui/views/network"
	"nft-receipt-tui/views/notices"
	"nft-receipt-tui/views/receipt"
	"nft-receipt-tui/views/status"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) globalHeader() string {
	availableWidth := helpers.Max(0, m.w-8) // panel padding and border

	title := titleStyle.Render(helpers.FadeString("NFT Receipt Generator", "#7EE787", "#82CFFD"))
	subtitle := hotkeyStyle.Render("Create and view blockchain-based receipts for your purchases")

	var walletDisplay string
	switch s := m.session.Snapshot(); {
	case !m.session.HasProvider():
		walletDisplay = lipgloss.NewStyle().Foreground(lipgloss.Color("#c01c28")).Bold(true).Render("○ No wallet")
	case s.IsConnected():
		walletDisplay = lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render("● " + networks.Name(s.ChainID))
	default:
		walletDisplay = lipgloss.NewStyle().Foreground(cWarn).Bold(true).Render("○ Wallet ready")
	}

	titleWidth := lipgloss.Width(title)
	walletWidth := lipgloss.Width(walletDisplay)

	var headerLine string
	if titleWidth+walletWidth+2 > availableWidth {
		headerLine = title + "\n" + walletDisplay
	} else {
		headerLine = title + strings.Repeat(" ", availableWidth-titleWidth-walletWidth) + walletDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + subtitle + "\n" + separator
}

func (m *model) balanceText() string {
	if m.balance == nil {
		return ""
	}
	symbol, decimals := "ETH", 18
	if n, ok := networks.Lookup(m.session.Snapshot().ChainID); ok {
		symbol, decimals = n.NativeCurrency.Symbol, n.NativeCurrency.Decimals
	}
	return helpers.FormatNative(m.balance, decimals, symbol)
}

func (m *model) currencySymbol() string {
	if n, ok := networks.Lookup(m.session.Snapshot().ChainID); ok {
		return n.NativeCurrency.Symbol
	}
	return "ETH"
}

// View implements tea.Model interface and renders the UI
func (m *model) View() string {
	if m.networkForm != nil {
		return appStyle.Render(network.Render(m.w, m.h, m.networkForm))
	}

	state := m.session.Snapshot()
	copied := ""
	if m.copiedMsg != "" && time.Since(m.copiedMsgTime) < 2*time.Second {
		copied = m.copiedMsg
	}

	headerPanel := panelStyle.Width(helpers.Max(0, m.w-2)).Render(m.globalHeader())

	statusBar := status.Render(status.Props{
		Width:    m.w,
		State:    state,
		Balance:  m.balanceText(),
		Mode:     m.mode,
		Selected: m.selectedNetwork,
		Spinner:  m.spin.View(),
		Copied:   copied,
	})

	leftW := m.w / 2
	rightW := m.w - leftW
	form := receipt.Render(receipt.Props{
		Width:       leftW,
		Focused:     m.focus != focusLookup,
		Item:        m.itemInput.View(),
		Price:       m.priceInput.View(),
		Symbol:      m.currencySymbol(),
		Mode:        m.mode,
		Submitting:  m.submitting,
		Spinner:     m.spin.View(),
		LastTokenID: m.lastTokenID,
	})
	view := lookup.Render(lookup.Props{
		Width:   rightW,
		Focused: m.focus == focusLookup,
		Input:   m.lookupInput.View(),
		Loading: m.lookupLoading,
		Spinner: m.spin.View(),
		Record:  m.record,
	})
	columns := lipgloss.JoinHorizontal(lipgloss.Top, form, view)

	sections := []string{headerPanel, statusBar, columns, footer.Render(m.w)}
	if toasts := notices.Render(m.w, m.toasts.Visible(time.Now())); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, status.Nav(m.w, state.IsConnected(), m.logEnabled))
	if m.logEnabled {
		sections = append(sections, log.Render(m.w, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
