package main

import (
	"errors"
	"strings"
	"time"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/mint"
	"nft-receipt-tui/networks"
	"nft-receipt-tui/receipts"
	"nft-receipt-tui/session"
	"nft-receipt-tui/toast"
	logview "nft-receipt-tui/views/log"
	"nft-receipt-tui/views/network"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// -------------------- UPDATE --------------------

// isAppMsg reports whether msg is handled by the page even while a dialog is open
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.WindowSizeMsg, spinner.TickMsg, logInitMsg, toastTickMsg,
		clipboardCopiedMsg, clearClipboardMsg, noticesMsg, balanceMsg,
		mintSentMsg, mintDoneMsg, lookupDoneMsg, walletEventMsg, recordMsg:
		return true
	}
	return false
}

// Update implements tea.Model interface and handles all state transitions
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.teardown()
		return m, tea.Quit
	}

	// the network selector owns input while it is open
	if m.networkForm != nil && !isAppMsg(msg) {
		return m, m.updateNetworkForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.logReady = true
		m.resize()
		m.addLog("info", "Logger enabled")
		return m, nil

	case toastTickMsg:
		m.toasts.Prune(time.Now())
		if m.toasts.Len() == 0 {
			m.toastTicking = false
			return m, nil
		}
		return m, toastTick()

	case clipboardCopiedMsg:
		m.copiedMsg = "Copied " + msg.what + "!"
		m.copiedMsgTime = time.Now()
		m.addLog("debug", "Copied to clipboard", "what", msg.what)
		return m, clearClipboard()

	case clearClipboardMsg:
		if time.Since(m.copiedMsgTime) >= 2*time.Second {
			m.copiedMsg = ""
		}
		return m, nil
	}

	if cmd, handled := m.handleAsync(msg); handled {
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKey(key)
	}

	if mouse, ok := msg.(tea.MouseMsg); ok {
		if !m.logReady {
			return m, nil
		}
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(mouse)
		return m, cmd
	}

	// cursor blink and other widget messages
	return m, m.updateFocusedInput(msg)
}

// handleAsync applies results of commands. Results from a previous
// generation of the page are dropped.
func (m *model) handleAsync(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case noticesMsg:
		if msg.gen != m.gen {
			return nil, true
		}
		cmds := []tea.Cmd{m.push(msg.notices...)}
		if msg.refresh {
			cmds = append(cmds, loadBalance(m.ctx, m.gen, m.session))
		}
		return tea.Batch(cmds...), true

	case balanceMsg:
		if msg.gen != m.gen {
			return nil, true
		}
		if msg.err != nil {
			m.balance = nil
			m.addLog("warning", "Could not load balance", "err", msg.err)
			return nil, true
		}
		m.balance = msg.wei
		return nil, true

	case mintSentMsg:
		if msg.gen != m.gen {
			return nil, true
		}
		if msg.err != nil {
			m.finishSubmit()
			return m.push(mint.FailureNotice(msg.err)), true
		}
		m.addLog("info", "Mint submitted", "tx", msg.pending.Tx.Hash().Hex())
		return tea.Batch(
			m.push(mint.SubmittedNotice()),
			confirmMint(m.ctx, m.gen, m.minter, msg.contract, msg.pending),
		), true

	case mintDoneMsg:
		if msg.gen != m.gen {
			return nil, true
		}
		m.finishSubmit()
		if msg.err != nil {
			if msg.demo {
				return m.push(mint.DemoFailureNotice(msg.err)), true
			}
			return m.push(mint.FailureNotice(msg.err)), true
		}
		m.itemInput.SetValue("")
		m.priceInput.SetValue("")
		m.lastTokenID = ""
		if msg.result.Record != nil {
			m.lastTokenID = msg.result.TokenID
		}
		cmds := []tea.Cmd{m.push(msg.result.Notice())}
		if !msg.demo {
			cmds = append(cmds, loadBalance(m.ctx, m.gen, m.session))
		}
		return tea.Batch(cmds...), true

	case lookupDoneMsg:
		if msg.gen != m.gen {
			return nil, true
		}
		m.lookupLoading = false
		if msg.err != nil {
			m.record = nil
			if !errors.Is(msg.err, receipts.ErrNotFound) {
				m.addLog("error", "Error fetching receipt", "err", msg.err)
			}
			return m.push(lookupNotice(msg.err)), true
		}
		m.record = msg.record
		return nil, true

	case recordMsg:
		if msg.gen != m.gen {
			return nil, true
		}
		r := msg.record
		m.record = &r
		return waitForRecord(m.gen, m.records, m.done), true

	case walletEventMsg:
		if msg.gen != m.gen {
			return nil, true
		}
		return m.handleWalletEvent(msg.ev), true
	}
	return nil, false
}

func (m *model) handleWalletEvent(ev session.Event) tea.Cmd {
	switch ev.Kind {
	case session.ChainChanged:
		m.session.HandleChainChanged(ev.ChainID)
		return m.reload()
	default:
		cmds := []tea.Cmd{
			m.push(m.session.HandleAccountsChanged(ev.Accounts)...),
			waitForWalletEvent(m.gen, m.events),
		}
		if m.session.Snapshot().IsConnected() {
			cmds = append(cmds, loadBalance(m.ctx, m.gen, m.session))
		} else {
			m.balance = nil
		}
		return tea.Batch(cmds...)
	}
}

func (m *model) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+w":
		if m.session.Snapshot().IsConnecting {
			return nil
		}
		m.addLog("info", "Connecting wallet")
		return connectWallet(m.ctx, m.gen, m.session)

	case "ctrl+d":
		m.balance = nil
		return m.push(m.session.Disconnect()...)

	case "ctrl+k":
		if m.env.keyed == nil {
			return nil
		}
		return lockWallet(m.env.keyed.Lock)

	case "ctrl+n":
		m.networkForm = network.CreateForm(m.selectedNetwork)
		return nil

	case "ctrl+t":
		m.mode = m.mode.Toggle()
		m.addLog("info", "Mode changed", "mode", m.mode.Label())
		return nil

	case "ctrl+y":
		if m.lastTokenID != "" {
			return copyToClipboard(m.lastTokenID, "token ID")
		}
		if s := m.session.Snapshot(); s.IsConnected() {
			return copyToClipboard(s.Account, "address")
		}
		return nil

	case "ctrl+l":
		m.logEnabled = !m.logEnabled
		m.env.cfg.Logger = m.logEnabled
		m.env.saveConfig()
		if m.logEnabled {
			return tea.Batch(initLogViewport(), m.logSpinner.Tick)
		}
		m.logReady = false
		m.resize()
		return nil

	case "pgup", "pgdown":
		if !m.logReady {
			return nil
		}
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(key)
		return cmd

	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return nil

	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return nil

	case "enter":
		if m.focus == focusLookup {
			return m.submitLookup()
		}
		return m.submitMint()
	}

	return m.updateFocusedInput(key)
}

// updateFocusedInput forwards typing to the focused field
func (m *model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusItem:
		if m.submitting {
			return nil
		}
		m.itemInput, cmd = m.itemInput.Update(msg)
	case focusPrice:
		if m.submitting {
			return nil
		}
		m.priceInput, cmd = m.priceInput.Update(msg)
	case focusLookup:
		m.lookupInput, cmd = m.lookupInput.Update(msg)
	}
	return cmd
}

// setFocus moves the focus ring. Form fields stay blurred while a mint runs.
func (m *model) setFocus(f int) {
	m.focus = f
	m.itemInput.Blur()
	m.priceInput.Blur()
	m.lookupInput.Blur()
	switch f {
	case focusItem:
		if !m.submitting {
			m.itemInput.Focus()
		}
	case focusPrice:
		if !m.submitting {
			m.priceInput.Focus()
		}
	case focusLookup:
		m.lookupInput.Focus()
	}
}

func (m *model) input() mint.Input {
	return mint.Input{
		ItemName: strings.TrimSpace(m.itemInput.Value()),
		Price:    strings.TrimSpace(m.priceInput.Value()),
	}
}

// submitMint starts the demo or the real mint for the form contents
func (m *model) submitMint() tea.Cmd {
	if m.submitting {
		return nil
	}
	in := m.input()

	if m.mode.IsDemo() {
		if err := mint.Validate(in); err != nil {
			return m.push(mint.DemoFailureNotice(err))
		}
		m.startSubmit()
		m.addLog("info", "Minting demo receipt", "item", in.ItemName, "price", in.Price)
		return mintDemo(m.ctx, m.gen, m.minter, in)
	}

	b := m.session.Binding()
	if b == nil || !m.session.Snapshot().IsConnected() {
		return m.push(mint.FailureNotice(mint.ErrNotConnected))
	}
	if err := mint.Validate(in); err != nil {
		return m.push(mint.FailureNotice(err))
	}
	m.startSubmit()
	m.addLog("info", "Minting receipt", "item", in.ItemName, "price", in.Price, "contract", b.Address().Hex())
	return sendMint(m.ctx, m.gen, m.minter, b, in)
}

func (m *model) startSubmit() {
	m.submitting = true
	m.itemInput.Blur()
	m.priceInput.Blur()
}

func (m *model) finishSubmit() {
	m.submitting = false
	m.setFocus(m.focus)
}

// submitLookup validates the token id and searches local history
func (m *model) submitLookup() tea.Cmd {
	if m.lookupLoading {
		return nil
	}
	id := strings.TrimSpace(m.lookupInput.Value())
	if err := receipts.ValidateTokenID(id); err != nil {
		return m.push(toast.ErrorNotice(err.Error()))
	}
	m.lookupLoading = true
	m.addLog("debug", "Looking up receipt", "token", id)
	return lookupReceipt(m.gen, m.env.store, id)
}

// updateNetworkForm drives the network selector until it completes or is aborted
func (m *model) updateNetworkForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.networkForm = nil
		return nil
	}

	form, cmd := m.networkForm.Update(msg)
	f, ok := form.(*huh.Form)
	if !ok {
		return cmd
	}
	m.networkForm = f

	switch m.networkForm.State {
	case huh.StateCompleted:
		m.networkForm = nil
		m.selectedNetwork = network.TempSelection
		m.addLog("info", "Switching network", "network", networks.Name(m.selectedNetwork))
		return switchNetwork(m.ctx, m.gen, m.session, m.selectedNetwork)
	case huh.StateAborted:
		m.networkForm = nil
		return nil
	}
	return cmd
}

// resize lays the widgets out for the current window
func (m *model) resize() {
	half := helpers.Max(0, m.w/2)
	inputW := helpers.Max(10, half-14)
	m.itemInput.Width = inputW
	m.priceInput.Width = inputW
	m.lookupInput.Width = inputW

	if m.logEnabled {
		m.logViewport.Width = helpers.Max(0, m.w-6)
		m.logViewport.Height = logview.Height(m.h)
		m.updateLogViewport()
	}
}
