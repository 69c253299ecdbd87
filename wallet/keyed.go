package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"nft-receipt-tui/networks"
	"nft-receipt-tui/rpc"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
)

// KeyedProvider is a wallet backed by a single private key and a set of
// known chains, each reached through its RPC endpoint
type KeyedProvider struct {
	mu      sync.Mutex
	key     *ecdsa.PrivateKey
	address common.Address
	homeRPC string
	chains  map[string]string // chain id -> rpc url
	active  string
	client  *rpc.Client
	locked  bool

	dial func(ctx context.Context, url string) (*rpc.Client, error)

	accountsFeed event.Feed
	chainFeed    event.Feed
}

// NewKeyedProvider creates a wallet from a hex private key. The chain served by
// homeRPC becomes the active chain on first use.
func NewKeyedProvider(keyHex, homeRPC string) (*KeyedProvider, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &KeyedProvider{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		homeRPC: homeRPC,
		chains:  make(map[string]string),
		dial: func(ctx context.Context, url string) (*rpc.Client, error) {
			res := rpc.ConnectContext(ctx, url)
			return res.Client, res.Error
		},
	}, nil
}

// FromEnv creates a wallet from WALLET_PRIVATE_KEY. It returns nil without
// error when the variable is unset.
func FromEnv(homeRPC string) (*KeyedProvider, error) {
	keyHex := strings.TrimSpace(os.Getenv("WALLET_PRIVATE_KEY"))
	if keyHex == "" {
		return nil, nil
	}
	return NewKeyedProvider(keyHex, homeRPC)
}

// Address is the wallet's account
func (p *KeyedProvider) Address() common.Address {
	return p.address
}

func (p *KeyedProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked = false
	return []common.Address{p.address}, nil
}

func (p *KeyedProvider) ChainID(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active != "" {
		return p.active, nil
	}

	client, err := p.dial(ctx, p.homeRPC)
	if err != nil {
		return "", asProviderError(err, "connect to %s", p.homeRPC)
	}
	id, err := client.ChainIDHex(ctx)
	if err != nil {
		client.Close()
		return "", asProviderError(err, "query chain id")
	}
	id = strings.ToLower(id)
	p.chains[id] = p.homeRPC
	p.active = id
	p.client = client
	return id, nil
}

func (p *KeyedProvider) SwitchChain(ctx context.Context, chainID string) error {
	chainID = strings.ToLower(chainID)

	p.mu.Lock()
	if chainID == p.active {
		p.mu.Unlock()
		return nil
	}
	if _, ok := p.chains[chainID]; !ok {
		p.mu.Unlock()
		return &ProviderError{
			Code:    CodeUnrecognizedChain,
			Message: fmt.Sprintf("Unrecognized chain ID %q. Try adding the chain using wallet_addEthereumChain first.", chainID),
		}
	}
	p.activate(chainID, nil)
	p.mu.Unlock()

	p.chainFeed.Send(chainID)
	return nil
}

func (p *KeyedProvider) AddChain(ctx context.Context, params networks.AddChainParams) error {
	if len(params.RPCURLs) == 0 || params.RPCURLs[0] == "" {
		return &ProviderError{Code: CodeInternal, Message: "rpcUrls must contain at least one endpoint"}
	}
	chainID := strings.ToLower(params.ChainID)
	url := params.RPCURLs[0]

	client, err := p.dial(ctx, url)
	if err != nil {
		return asProviderError(err, "connect to %s", url)
	}
	if err := client.VerifyChain(ctx, chainID); err != nil {
		client.Close()
		return asProviderError(err, "add %s", params.ChainName)
	}

	p.mu.Lock()
	p.chains[chainID] = url
	changed := p.active != chainID
	p.activate(chainID, client)
	p.mu.Unlock()

	if changed {
		p.chainFeed.Send(chainID)
	}
	return nil
}

// activate makes chainID the active chain. Callers hold mu.
func (p *KeyedProvider) activate(chainID string, client *rpc.Client) {
	if p.client != nil && p.client != client {
		p.client.Close()
	}
	p.active = chainID
	p.client = client
}

// rpcClient returns the client of the active chain, dialling it if needed
func (p *KeyedProvider) rpcClient(ctx context.Context) (*rpc.Client, error) {
	if _, err := p.ChainID(ctx); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}
	url := p.chains[p.active]
	client, err := p.dial(ctx, url)
	if err != nil {
		return nil, asProviderError(err, "connect to %s", url)
	}
	p.client = client
	return client, nil
}

func (p *KeyedProvider) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	client, err := p.rpcClient(ctx)
	if err != nil {
		return nil, err
	}
	wei, err := client.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, asProviderError(err, "load balance")
	}
	return wei, nil
}

func (p *KeyedProvider) Backend(ctx context.Context) (bind.ContractBackend, error) {
	client, err := p.rpcClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Client, nil
}

func (p *KeyedProvider) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	active, err := p.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	locked := p.locked
	p.mu.Unlock()
	if locked {
		return nil, &ProviderError{Code: CodeUserRejected, Message: "wallet is locked"}
	}

	chainID, err := hexutil.DecodeBig(active)
	if err != nil {
		return nil, fmt.Errorf("decode chain id %s: %w", active, err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(p.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (p *KeyedProvider) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if tx == nil {
		return nil, errors.New("no transaction to wait for")
	}
	client, err := p.rpcClient(ctx)
	if err != nil {
		return nil, err
	}
	receipt, err := bind.WaitMined(ctx, client.Client, tx)
	if err != nil {
		return nil, asProviderError(err, "wait for %s", tx.Hash().Hex())
	}
	return receipt, nil
}

func (p *KeyedProvider) SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription {
	return p.accountsFeed.Subscribe(ch)
}

func (p *KeyedProvider) SubscribeChainChanged(ch chan<- string) event.Subscription {
	return p.chainFeed.Subscribe(ch)
}

// Lock revokes the page's access to the account, as locking a browser wallet does
func (p *KeyedProvider) Lock() {
	p.mu.Lock()
	p.locked = true
	p.mu.Unlock()
	p.accountsFeed.Send([]common.Address{})
}

// Close releases the RPC connection
func (p *KeyedProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}

var _ Provider = (*KeyedProvider)(nil)
