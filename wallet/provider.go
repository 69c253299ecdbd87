package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"nft-receipt-tui/networks"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Provider is what the page needs from a wallet: accounts, chain control,
// change notifications and a signer for contract calls
type Provider interface {
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	ChainID(ctx context.Context) (string, error)
	SwitchChain(ctx context.Context, chainID string) error
	AddChain(ctx context.Context, params networks.AddChainParams) error
	BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error)

	SubscribeAccountsChanged(ch chan<- []common.Address) event.Subscription
	SubscribeChainChanged(ch chan<- string) event.Subscription

	Backend(ctx context.Context) (bind.ContractBackend, error)
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// EIP-1193 provider error codes
const (
	CodeUserRejected      = 4001
	CodeUnrecognizedChain = 4902
	CodeInternal          = -32603
)

// ErrNoProvider means no wallet is available in this environment
var ErrNoProvider = errors.New("no wallet provider available")

// ProviderError is an error reported by the wallet
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ErrorCode satisfies go-ethereum's rpc.Error
func (e *ProviderError) ErrorCode() int {
	return e.Code
}

// IsUnrecognizedChain reports whether err says the wallet does not know the chain
func IsUnrecognizedChain(err error) bool {
	var perr *ProviderError
	return errors.As(err, &perr) && perr.Code == CodeUnrecognizedChain
}

// Message returns the message a wallet error carries, or fallback
func Message(err error, fallback string) string {
	var perr *ProviderError
	if errors.As(err, &perr) && perr.Message != "" {
		return perr.Message
	}
	return fallback
}

// asProviderError keeps JSON-RPC error codes from the node and wraps everything else as internal
func asProviderError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr
	}
	msg := fmt.Sprintf(format, args...) + ": " + err.Error()
	var rerr gethrpc.Error
	if errors.As(err, &rerr) {
		return &ProviderError{Code: rerr.ErrorCode(), Message: msg}
	}
	return &ProviderError{Code: CodeInternal, Message: msg}
}
