package main

import (
	"io"
	"strings"
	"sync"

	"nft-receipt-tui/config"
	"nft-receipt-tui/receipts"
	"nft-receipt-tui/styles"
	"nft-receipt-tui/wallet"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/ethereum/go-ethereum/common"
)

// env is what survives a page reload: the wallet, local history, the
// broadcast feed, configuration and the log
type env struct {
	cfg        config.Config
	configPath string

	provider wallet.Provider
	keyed    *wallet.KeyedProvider // nil unless the wallet is key backed

	store     receipts.Store
	feed      *receipts.Feed
	contracts map[string]common.Address

	logs   *logBuffer
	logger *log.Logger

	// generation counter, bumped on every model rebuild
	gen int

	closers []func() error
}

// newEnv wires the environment from config and process environment
func newEnv(configPath string) *env {
	cfg := config.LoadOrCreate(configPath)
	logs := &logBuffer{}
	e := &env{
		cfg:        cfg,
		configPath: configPath,
		feed:       &receipts.Feed{},
		contracts:  config.ContractAddresses(),
		logs:       logs,
		logger:     newLogger(logs),
	}

	kp, err := wallet.FromEnv(cfg.HomeRPC())
	switch {
	case err != nil:
		e.logger.Error("Invalid WALLET_PRIVATE_KEY", "err", err)
	case kp != nil:
		e.provider = kp
		e.keyed = kp
		e.closers = append(e.closers, func() error { kp.Close(); return nil })
		e.logger.Info("Wallet found", "address", kp.Address().Hex(), "rpc", cfg.HomeRPC())
	default:
		e.logger.Warn("No wallet configured, set WALLET_PRIVATE_KEY to mint on chain")
	}

	path := cfg.ReceiptStorePath()
	store, err := receipts.OpenBoltStore(path, e.logger)
	if err != nil {
		e.logger.Error("Could not open receipt history, keeping it in memory", "path", path, "err", err)
		e.store = receipts.NewMemoryStore()
	} else {
		e.store = store
		e.closers = append(e.closers, store.Close)
	}

	return e
}

// close releases the wallet connection and the receipt store
func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.logger.Error("Close failed", "err", err)
		}
	}
	e.closers = nil
}

// saveConfig persists the current config
func (e *env) saveConfig() {
	if e.configPath == "" {
		return
	}
	config.Save(e.configPath, e.cfg)
}

// logBuffer collects log output. Commands log from their own goroutines.
type logBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (l *logBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *logBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

// newLogger creates the styled logger rendered in the log panel
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(log.DebugLevel)
	logger.SetStyles(&log.Styles{
		Timestamp: lipgloss.NewStyle().Foreground(styles.CMuted),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Foreground(styles.CAccent2),
		Message:   lipgloss.NewStyle().Foreground(styles.CText),
		Key:       lipgloss.NewStyle().Foreground(styles.CAccent),
		Value:     lipgloss.NewStyle().Foreground(styles.CText),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: lipgloss.NewStyle().Foreground(styles.CMuted).SetString("DEBUG"),
			log.InfoLevel:  lipgloss.NewStyle().Foreground(styles.CAccent2).SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().Foreground(styles.CWarn).SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().Foreground(styles.CError).SetString("ERROR"),
		},
	})
	return logger
}
