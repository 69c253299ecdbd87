package main

import (
	"context"
	"errors"
	"time"

	"nft-receipt-tui/mint"
	"nft-receipt-tui/receipts"
	"nft-receipt-tui/session"
	"nft-receipt-tui/toast"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// connectWallet asks the wallet for an account and moves it to a supported chain
func connectWallet(ctx context.Context, gen int, mgr *session.Manager) tea.Cmd {
	return func() tea.Msg {
		notices := mgr.Connect(ctx)
		return noticesMsg{gen: gen, notices: notices, refresh: mgr.Snapshot().IsConnected()}
	}
}

// switchNetwork asks the wallet to move to chainID, adding it when unknown
func switchNetwork(ctx context.Context, gen int, mgr *session.Manager, chainID string) tea.Cmd {
	return func() tea.Msg {
		return noticesMsg{gen: gen, notices: mgr.SwitchNetwork(ctx, chainID)}
	}
}

// loadBalance fetches the connected account's native balance
func loadBalance(ctx context.Context, gen int, mgr *session.Manager) tea.Cmd {
	return func() tea.Msg {
		wei, err := mgr.Balance(ctx)
		return balanceMsg{gen: gen, wei: wei, err: err}
	}
}

// sendMint submits the mint transaction
func sendMint(ctx context.Context, gen int, minter *mint.Minter, c mint.Contract, in mint.Input) tea.Cmd {
	return func() tea.Msg {
		p, err := minter.Send(ctx, c, in)
		return mintSentMsg{gen: gen, contract: c, pending: p, err: err}
	}
}

// confirmMint waits for the submitted transaction and records the receipt
func confirmMint(ctx context.Context, gen int, minter *mint.Minter, c mint.Contract, p mint.Pending) tea.Cmd {
	return func() tea.Msg {
		res, err := minter.Confirm(ctx, c, p)
		return mintDoneMsg{gen: gen, result: res, err: err}
	}
}

// mintDemo runs the simulated mint
func mintDemo(ctx context.Context, gen int, minter *mint.Minter, in mint.Input) tea.Cmd {
	return func() tea.Msg {
		res, err := minter.MintDemo(ctx, in)
		return mintDoneMsg{gen: gen, demo: true, result: res, err: err}
	}
}

// lookupReceipt searches local history for a token id
func lookupReceipt(gen int, store receipts.Store, id string) tea.Cmd {
	return func() tea.Msg {
		records, err := store.Load()
		if err != nil {
			return lookupDoneMsg{gen: gen, err: err}
		}
		r, err := receipts.Find(records, id)
		if err != nil {
			return lookupDoneMsg{gen: gen, err: err}
		}
		return lookupDoneMsg{gen: gen, record: &r}
	}
}

// lookupNotice maps a failed lookup to what the user sees
func lookupNotice(err error) toast.Notice {
	if errors.Is(err, receipts.ErrNotFound) {
		return toast.ErrorNotice(receipts.ErrNotFound.Error())
	}
	return toast.ErrorNotice("Failed to fetch receipt. Please check the Token ID and try again.")
}

// waitForWalletEvent delivers the next wallet notification. A closed
// channel yields nil, which ends the loop.
func waitForWalletEvent(gen int, events <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return walletEventMsg{gen: gen, ev: ev}
	}
}

// waitForRecord delivers the next broadcast receipt
func waitForRecord(gen int, records <-chan receipts.Record, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-records:
			return recordMsg{gen: gen, record: r}
		case <-done:
			return nil
		}
	}
}

// lockWallet locks a key backed wallet, which reports an empty account list
func lockWallet(lock func()) tea.Cmd {
	return func() tea.Msg {
		lock()
		return nil
	}
}

// toastTick schedules the next expiry check
func toastTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err == nil {
			return clipboardCopiedMsg{what: what}
		}
		return nil
	}
}

// clearClipboard waits 2 seconds then clears the copy feedback
func clearClipboard() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearClipboardMsg{}
	})
}

// -------------------- HELPERS --------------------

// addLog writes to the log panel
func (m *model) addLog(logType, message string, keyvals ...any) {
	logger := m.env.logger
	switch logType {
	case "success":
		logger.Info("✓ "+message, keyvals...)
	case "error":
		logger.Error(message, keyvals...)
	case "warning":
		logger.Warn(message, keyvals...)
	case "debug":
		logger.Debug(message, keyvals...)
	default:
		logger.Info(message, keyvals...)
	}
	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady {
		return
	}
	m.logViewport.SetContent(m.env.logs.String())
	m.logViewport.GotoBottom()
}

// push shows notices and starts the expiry ticker when it is not running
func (m *model) push(notices ...toast.Notice) tea.Cmd {
	if len(notices) == 0 {
		return nil
	}
	m.toasts.Push(time.Now(), notices...)
	for _, n := range notices {
		m.addLog(n.Level.String(), n.Text)
	}
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return toastTick()
}
