package session

import (
	"context"
	"io"
	"math/big"
	"strings"
	"sync"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/networks"
	"nft-receipt-tui/toast"
	"nft-receipt-tui/wallet"

	"github.com/charmbracelet/log"
	"github.com/ethereum/go-ethereum/common"
)

// State is the wallet connection as the page sees it
type State struct {
	Account      string
	ChainID      string
	IsConnecting bool
}

// IsConnected reports whether an account is present
func (s State) IsConnected() bool {
	return s.Account != ""
}

// Manager owns the session state and the operations that change it
type Manager struct {
	mu        sync.Mutex
	provider  wallet.Provider
	contracts map[string]common.Address
	logger    *log.Logger

	state State
	// bound is set once a connect succeeded, the provider of the binding
	bound   wallet.Provider
	binding *Binding
}

// NewManager creates a manager for provider, which may be nil when no wallet is present
func NewManager(provider wallet.Provider, contracts map[string]common.Address, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	addrs := make(map[string]common.Address, len(contracts))
	for id, a := range contracts {
		addrs[strings.ToLower(id)] = a
	}
	return &Manager{provider: provider, contracts: addrs, logger: logger}
}

// Snapshot returns a copy of the current state
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// HasProvider reports whether a wallet is present
func (m *Manager) HasProvider() bool {
	return m.provider != nil
}

func (m *Manager) reset() {
	m.state.Account = ""
	m.state.ChainID = ""
	m.bound = nil
	m.binding = nil
}

func (m *Manager) supported(chainID string) bool {
	_, ok := m.contracts[strings.ToLower(chainID)]
	return ok
}

// Connect requests account access and the current chain. A chain without a
// receipt contract is switched to the default network.
func (m *Manager) Connect(ctx context.Context) []toast.Notice {
	if m.provider == nil {
		m.logger.Error("Error connecting wallet", "err", wallet.ErrNoProvider)
		return []toast.Notice{toast.ErrorNotice("MetaMask not found. Please install MetaMask browser extension.")}
	}

	m.mu.Lock()
	m.state.IsConnecting = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.state.IsConnecting = false
		m.mu.Unlock()
	}()

	fail := func(err error) []toast.Notice {
		m.logger.Error("Error connecting wallet", "err", err)
		m.mu.Lock()
		m.reset()
		m.mu.Unlock()
		return []toast.Notice{toast.ErrorNotice("Could not connect to wallet. Please try again.")}
	}

	accounts, err := m.provider.RequestAccounts(ctx)
	if err != nil {
		return fail(err)
	}
	if len(accounts) == 0 {
		return fail(wallet.ErrNoProvider)
	}
	chainID, err := m.provider.ChainID(ctx)
	if err != nil {
		return fail(err)
	}

	m.mu.Lock()
	m.bound = m.provider
	m.state.Account = accounts[0].Hex()
	m.state.ChainID = strings.ToLower(chainID)
	m.mu.Unlock()
	m.logger.Info("Wallet connected", "account", accounts[0].Hex(), "chain", chainID)

	if !m.supported(chainID) {
		return m.SwitchNetwork(ctx, networks.Default().ChainID)
	}
	return nil
}

// Disconnect forgets the session. The wallet itself is not told.
func (m *Manager) Disconnect() []toast.Notice {
	m.mu.Lock()
	m.reset()
	m.mu.Unlock()
	m.logger.Info("Wallet disconnected")
	return []toast.Notice{toast.InfoNotice("Wallet disconnected")}
}

// SwitchNetwork asks the wallet to change chain, adding the chain first when
// the wallet does not know it. Unknown ids are ignored.
func (m *Manager) SwitchNetwork(ctx context.Context, chainID string) []toast.Notice {
	if m.provider == nil {
		return nil
	}
	network, ok := networks.Lookup(chainID)
	if !ok {
		return nil
	}

	err := m.provider.SwitchChain(ctx, network.ChainID)
	if err == nil {
		return nil
	}
	if wallet.IsUnrecognizedChain(err) {
		if err := m.provider.AddChain(ctx, network.AddChainParams()); err != nil {
			m.logger.Error("Error adding network", "chain", network.ChainName, "err", err)
			return []toast.Notice{toast.ErrorNotice("Failed to add " + network.ChainName + " network to MetaMask")}
		}
		return nil
	}
	m.logger.Error("Error switching network", "chain", network.ChainName, "err", err)
	return []toast.Notice{toast.ErrorNotice("Failed to switch to " + network.ChainName + " network")}
}

// HandleAccountsChanged applies an accounts-changed notification
func (m *Manager) HandleAccountsChanged(accounts []common.Address) []toast.Notice {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(accounts) == 0 {
		m.reset()
		m.logger.Warn("Wallet locked or disconnected")
		return []toast.Notice{toast.ErrorNotice("Wallet disconnected")}
	}
	account := accounts[0].Hex()
	if account == m.state.Account {
		return nil
	}
	m.state.Account = account
	m.bound = m.provider
	return []toast.Notice{toast.SuccessNotice("Connected to " + helpers.ShortenAddr(account))}
}

// HandleChainChanged stores the new chain. The page reloads afterwards.
func (m *Manager) HandleChainChanged(chainID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.ChainID = strings.ToLower(chainID)
	m.binding = nil
}

// Binding returns the receipt contract for the connected chain, or nil when
// there is no connected provider or the chain has no contract
func (m *Manager) Binding() *Binding {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bound == nil || m.state.ChainID == "" {
		return nil
	}
	addr, ok := m.contracts[m.state.ChainID]
	if !ok {
		return nil
	}
	if m.binding != nil && m.binding.chainID == m.state.ChainID {
		return m.binding
	}

	decimals := 18
	if network, ok := networks.Lookup(m.state.ChainID); ok {
		decimals = network.NativeCurrency.Decimals
	}
	m.binding = &Binding{
		provider: m.bound,
		address:  addr,
		chainID:  m.state.ChainID,
		decimals: decimals,
	}
	return m.binding
}

// Balance is the native balance of the connected account
func (m *Manager) Balance(ctx context.Context) (*big.Int, error) {
	s := m.Snapshot()
	if m.provider == nil || !s.IsConnected() {
		return nil, wallet.ErrNoProvider
	}
	return m.provider.BalanceAt(ctx, common.HexToAddress(s.Account))
}
