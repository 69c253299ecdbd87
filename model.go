package main

import (
	"context"
	"math/big"
	"time"

	"nft-receipt-tui/mint"
	"nft-receipt-tui/mode"
	"nft-receipt-tui/networks"
	"nft-receipt-tui/receipts"
	"nft-receipt-tui/session"
	"nft-receipt-tui/styles"
	"nft-receipt-tui/toast"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/event"
)

// -------------------- MODEL --------------------

// focus ring of the page
const (
	focusItem = iota
	focusPrice
	focusLookup
	focusCount
)

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	env *env
	gen int

	// ctx is cancelled on reload and quit
	ctx    context.Context
	cancel context.CancelFunc

	session *session.Manager
	minter  *mint.Minter
	mode    mode.Mode
	balance *big.Int

	// receipt form
	itemInput   textinput.Model
	priceInput  textinput.Model
	submitting  bool
	lastTokenID string

	// lookup
	lookupInput   textinput.Model
	lookupLoading bool
	record        *receipts.Record

	focus int

	// network selector
	selectedNetwork string
	networkForm     *huh.Form

	toasts       *toast.Stack
	toastTicking bool

	// wallet notifications and broadcast receipts
	events    <-chan session.Event
	stopWatch func()
	records   chan receipts.Record
	recordSub event.Subscription
	done      chan struct{}

	spin spinner.Model

	// clipboard feedback
	copiedMsg     string
	copiedMsgTime time.Time

	// logger panel
	logEnabled  bool
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "› "
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = limit
	in.Width = 32
	return in
}

// -------------------- INIT --------------------

// newModel builds a fresh page on top of e. Everything but e is discarded
// when the page reloads.
func newModel(e *env) model {
	e.gen++

	item := newInput("Enter item name", 100)
	item.Focus()
	price := newInput("0.01", 32)
	lookupIn := newInput("Enter token ID", 78)

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 10) // resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	mgr := session.NewManager(e.provider, e.contracts, e.logger)
	events, stop := mgr.Watch()

	records := make(chan receipts.Record, 8)
	sub := e.feed.Subscribe(records)

	ctx, cancel := context.WithCancel(context.Background())

	return model{
		env:             e,
		gen:             e.gen,
		ctx:             ctx,
		cancel:          cancel,
		session:         mgr,
		minter:          mint.NewMinter(e.store, e.feed, e.cfg.DemoDelay(), e.logger),
		mode:            mode.Default,
		itemInput:       item,
		priceInput:      price,
		lookupInput:     lookupIn,
		focus:           focusItem,
		selectedNetwork: networks.Default().ChainID,
		toasts:          toast.NewStack(toast.DefaultTTL),
		events:          events,
		stopWatch:       stop,
		records:         records,
		recordSub:       sub,
		done:            make(chan struct{}),
		spin:            sp,
		logEnabled:      e.cfg.Logger,
		logViewport:     vp,
		logSpinner:      logSpin,
	}
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spin.Tick,
		textinput.Blink,
		waitForWalletEvent(m.gen, m.events),
		waitForRecord(m.gen, m.records, m.done),
	}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	return tea.Batch(cmds...)
}

// teardown stops everything the page started
func (m *model) teardown() {
	m.cancel()
	m.stopWatch()
	m.recordSub.Unsubscribe()
	close(m.done)
}

// reload rebuilds the page after the wallet changed chain. The new page
// starts disconnected.
func (m *model) reload() tea.Cmd {
	e := m.env
	w, h := m.w, m.h
	m.teardown()
	e.logger.Info("Network changed, reloading", "chain", networks.Name(m.session.Snapshot().ChainID))

	*m = newModel(e)
	m.w, m.h = w, h
	m.resize()
	return m.Init()
}
