package session

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"nft-receipt-tui/networks"
	"nft-receipt-tui/toast"
	"nft-receipt-tui/wallet"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	account       = common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	otherAccount  = common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	sepoliaTarget = common.HexToAddress("0x1234567890123456789012345678901234567890")
	testContracts = map[string]common.Address{
		networks.Sepolia.ChainID: sepoliaTarget,
		networks.Mumbai.ChainID:  {},
	}
)

type fakeProvider struct {
	chainID     string
	accountsErr error
	switchErr   error
	addErr      error

	onRequest func()
	switched  []string
	added     []networks.AddChainParams
	calls     int

	accountsFeed event.Feed
	chainFeed    event.Feed
}

func (f *fakeProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	f.calls++
	if f.onRequest != nil {
		f.onRequest()
	}
	if f.accountsErr != nil {
		return nil, f.accountsErr
	}
	return []common.Address{account}, nil
}

func (f *fakeProvider) ChainID(ctx context.Context) (string, error) {
	f.calls++
	return f.chainID, nil
}

func (f *fakeProvider) SwitchChain(ctx context.Context, chainID string) error {
	f.calls++
	f.switched = append(f.switched, chainID)
	return f.switchErr
}

func (f *fakeProvider) AddChain(ctx context.Context, params networks.AddChainParams) error {
	f.calls++
	f.added = append(f.added, params)
	return f.addErr
}

func (f *fakeProvider) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	f.calls++
	return big.NewInt(42), nil
}

func (f *fakeProvider) SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription {
	return f.accountsFeed.Subscribe(ch)
}

func (f *fakeProvider) SubscribeChainChanged(ch chan<- string) event.Subscription {
	return f.chainFeed.Subscribe(ch)
}

func (f *fakeProvider) Backend(ctx context.Context) (bind.ContractBackend, error) {
	return nil, errors.New("no backend")
}

func (f *fakeProvider) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{From: account}, nil
}

func (f *fakeProvider) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return nil, errors.New("not mined")
}

func TestConnectNoProvider(t *testing.T) {
	m := NewManager(nil, testContracts, nil)

	notices := m.Connect(context.Background())
	assert.Equal(t, []toast.Notice{toast.ErrorNotice("MetaMask not found. Please install MetaMask browser extension.")}, notices)
	assert.False(t, m.Snapshot().IsConnected())
	assert.False(t, m.HasProvider())
}

func TestConnect(t *testing.T) {
	p := &fakeProvider{chainID: networks.Sepolia.ChainID}
	m := NewManager(p, testContracts, nil)

	var connecting bool
	p.onRequest = func() { connecting = m.Snapshot().IsConnecting }

	assert.Empty(t, m.Connect(context.Background()))
	assert.True(t, connecting, "IsConnecting is set while the wallet is asked")

	s := m.Snapshot()
	assert.Equal(t, account.Hex(), s.Account)
	assert.Equal(t, networks.Sepolia.ChainID, s.ChainID)
	assert.False(t, s.IsConnecting)
	assert.True(t, s.IsConnected())
	assert.Empty(t, p.switched)

	b := m.Binding()
	require.NotNil(t, b)
	assert.Equal(t, sepoliaTarget, b.Address())
	assert.Equal(t, 18, b.Decimals())
	assert.Same(t, b, m.Binding())

	signer, err := b.Signer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, account, signer)
}

func TestConnectFailure(t *testing.T) {
	p := &fakeProvider{chainID: networks.Sepolia.ChainID, accountsErr: &wallet.ProviderError{Code: wallet.CodeUserRejected, Message: "User rejected the request."}}
	m := NewManager(p, testContracts, nil)

	notices := m.Connect(context.Background())
	assert.Equal(t, []toast.Notice{toast.ErrorNotice("Could not connect to wallet. Please try again.")}, notices)

	s := m.Snapshot()
	assert.Equal(t, State{}, s)
	assert.Nil(t, m.Binding())
}

func TestConnectUnsupportedChain(t *testing.T) {
	t.Run("switches to default", func(t *testing.T) {
		p := &fakeProvider{chainID: "0x1"}
		m := NewManager(p, testContracts, nil)

		assert.Empty(t, m.Connect(context.Background()))
		assert.Equal(t, []string{networks.Default().ChainID}, p.switched)
		assert.Nil(t, m.Binding(), "no contract on the current chain until the wallet reports the switch")
	})

	t.Run("adds unknown chain", func(t *testing.T) {
		p := &fakeProvider{chainID: "0x1", switchErr: &wallet.ProviderError{Code: wallet.CodeUnrecognizedChain, Message: "Unrecognized chain"}}
		m := NewManager(p, testContracts, nil)

		assert.Empty(t, m.Connect(context.Background()))
		require.Len(t, p.added, 1)
		assert.Equal(t, networks.Sepolia.AddChainParams(), p.added[0])
	})

	t.Run("add rejected", func(t *testing.T) {
		p := &fakeProvider{
			chainID:   "0x1",
			switchErr: &wallet.ProviderError{Code: wallet.CodeUnrecognizedChain},
			addErr:    &wallet.ProviderError{Code: wallet.CodeUserRejected, Message: "rejected"},
		}
		m := NewManager(p, testContracts, nil)

		notices := m.Connect(context.Background())
		assert.Equal(t, []toast.Notice{toast.ErrorNotice("Failed to add Sepolia network to MetaMask")}, notices)
		assert.Len(t, p.added, 1, "never retried")
		assert.True(t, m.Snapshot().IsConnected())
	})
}

func TestSwitchNetwork(t *testing.T) {
	t.Run("unknown target is ignored", func(t *testing.T) {
		p := &fakeProvider{}
		m := NewManager(p, testContracts, nil)
		assert.Nil(t, m.SwitchNetwork(context.Background(), "0x1"))
		assert.Zero(t, p.calls)
	})

	t.Run("no provider", func(t *testing.T) {
		m := NewManager(nil, testContracts, nil)
		assert.Nil(t, m.SwitchNetwork(context.Background(), networks.Mumbai.ChainID))
	})

	t.Run("switch rejected", func(t *testing.T) {
		p := &fakeProvider{switchErr: &wallet.ProviderError{Code: wallet.CodeUserRejected}}
		m := NewManager(p, testContracts, nil)
		notices := m.SwitchNetwork(context.Background(), networks.Mumbai.ChainID)
		assert.Equal(t, []toast.Notice{toast.ErrorNotice("Failed to switch to Mumbai network")}, notices)
		assert.Empty(t, p.added)
	})
}

func TestDisconnect(t *testing.T) {
	p := &fakeProvider{chainID: networks.Sepolia.ChainID}
	m := NewManager(p, testContracts, nil)
	m.Connect(context.Background())
	calls := p.calls

	notices := m.Disconnect()
	assert.Equal(t, []toast.Notice{toast.InfoNotice("Wallet disconnected")}, notices)
	assert.Equal(t, calls, p.calls, "the wallet is not contacted")
	assert.False(t, m.Snapshot().IsConnected())
	assert.Nil(t, m.Binding())
}

func TestHandleAccountsChanged(t *testing.T) {
	p := &fakeProvider{chainID: networks.Sepolia.ChainID}
	m := NewManager(p, testContracts, nil)
	m.Connect(context.Background())

	assert.Nil(t, m.HandleAccountsChanged([]common.Address{account}))

	notices := m.HandleAccountsChanged([]common.Address{otherAccount})
	assert.Equal(t, []toast.Notice{toast.SuccessNotice("Connected to 0x5aAe...eAed")}, notices)
	assert.Equal(t, otherAccount.Hex(), m.Snapshot().Account)

	notices = m.HandleAccountsChanged(nil)
	assert.Equal(t, []toast.Notice{toast.ErrorNotice("Wallet disconnected")}, notices)
	assert.Equal(t, State{}, m.Snapshot())
}

func TestHandleChainChanged(t *testing.T) {
	p := &fakeProvider{chainID: networks.Sepolia.ChainID}
	m := NewManager(p, testContracts, nil)
	m.Connect(context.Background())
	sepolia := m.Binding()

	m.HandleChainChanged("0x13881")
	assert.Equal(t, networks.Mumbai.ChainID, m.Snapshot().ChainID)
	mumbai := m.Binding()
	require.NotNil(t, mumbai)
	assert.NotSame(t, sepolia, mumbai)
	assert.Equal(t, common.Address{}, mumbai.Address())

	m.HandleChainChanged("0x1")
	assert.Nil(t, m.Binding())
}

func TestBindingRequiresConnect(t *testing.T) {
	m := NewManager(&fakeProvider{}, testContracts, nil)
	m.HandleChainChanged(networks.Sepolia.ChainID)
	assert.Nil(t, m.Binding())
}

func TestBalance(t *testing.T) {
	p := &fakeProvider{chainID: networks.Sepolia.ChainID}
	m := NewManager(p, testContracts, nil)

	_, err := m.Balance(context.Background())
	assert.Error(t, err)

	m.Connect(context.Background())
	wei, err := m.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), wei.Int64())
}

func TestWatch(t *testing.T) {
	p := &fakeProvider{}
	m := NewManager(p, testContracts, nil)
	events, stop := m.Watch()

	p.accountsFeed.Send([]common.Address{})
	p.chainFeed.Send(networks.Mumbai.ChainID)

	var got []Event
	for len(got) < 2 {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-time.After(time.Second):
			t.Fatal("missing wallet event")
		}
	}
	kinds := map[EventKind]Event{}
	for _, ev := range got {
		kinds[ev.Kind] = ev
	}
	require.Contains(t, kinds, AccountsChanged)
	assert.Empty(t, kinds[AccountsChanged].Accounts)
	assert.Equal(t, Event{Kind: ChainChanged, ChainID: networks.Mumbai.ChainID}, kinds[ChainChanged])

	stop()
	stop()
	_, open := <-events
	assert.False(t, open)
	assert.Zero(t, p.chainFeed.Send("0x1"), "subscriptions are released")
}

func TestWatchNoProvider(t *testing.T) {
	m := NewManager(nil, testContracts, nil)
	events, stop := m.Watch()
	defer stop()
	_, open := <-events
	assert.False(t, open)
}
