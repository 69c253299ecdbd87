package session

import (
	"context"
	"fmt"
	"math/big"

	"nft-receipt-tui/contracts"
	"nft-receipt-tui/wallet"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Binding is the receipt contract on the connected chain, signing with the wallet
type Binding struct {
	provider wallet.Provider
	address  common.Address
	chainID  string
	decimals int
}

func (b *Binding) Address() common.Address { return b.address }
func (b *Binding) ChainID() string         { return b.chainID }
func (b *Binding) Decimals() int           { return b.decimals }

func (b *Binding) contract(ctx context.Context) (*contracts.NFTReceipt, error) {
	backend, err := b.provider.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return contracts.NewNFTReceipt(b.address, backend)
}

// Mint sends mintReceipt with priceInWei attached as the call value
func (b *Binding) Mint(ctx context.Context, itemName string, priceInWei *big.Int) (*types.Transaction, error) {
	c, err := b.contract(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := b.provider.Transactor(ctx)
	if err != nil {
		return nil, err
	}
	opts.Value = new(big.Int).Set(priceInWei)
	return c.MintReceipt(opts, itemName, priceInWei)
}

// Receipt reads a receipt from the contract
func (b *Binding) Receipt(ctx context.Context, tokenID *big.Int) (contracts.Receipt, error) {
	c, err := b.contract(ctx)
	if err != nil {
		return contracts.Receipt{}, err
	}
	return c.GetReceipt(&bind.CallOpts{Context: ctx}, tokenID)
}

func (b *Binding) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return b.provider.WaitMined(ctx, tx)
}

// Signer is the account transactions are sent from
func (b *Binding) Signer(ctx context.Context) (common.Address, error) {
	opts, err := b.provider.Transactor(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("resolve signer: %w", err)
	}
	return opts.From, nil
}
