package mint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"nft-receipt-tui/contracts"
	"nft-receipt-tui/receipts"
	"nft-receipt-tui/toast"
	"nft-receipt-tui/wallet"

	"github.com/charmbracelet/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
)

var (
	ErrNotConnected = errors.New("Wallet not connected")
	ErrItemRequired = errors.New("Item name is required")
	ErrInvalidPrice = errors.New("Please enter a valid price")
	ErrReverted     = errors.New("transaction reverted")
)

// DemoIDRange bounds the identifiers handed out by the demo path
const DemoIDRange = 1000

// Input is what the receipt form submits
type Input struct {
	ItemName string
	Price    string
}

// Contract is the receipt contract as bound to the connected account
type Contract interface {
	Mint(ctx context.Context, itemName string, priceInWei *big.Int) (*types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	Signer(ctx context.Context) (common.Address, error)
	Address() common.Address
	ChainID() string
	Decimals() int
}

// Validate checks the form fields before anything is sent
func Validate(in Input) error {
	if strings.TrimSpace(in.ItemName) == "" {
		return ErrItemRequired
	}
	price := strings.TrimSpace(in.Price)
	if price == "" {
		return ErrInvalidPrice
	}
	d, err := decimal.NewFromString(price)
	if err != nil || !d.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}

// ToSmallestUnit converts a decimal amount of the native currency to its
// smallest unit (ETH to wei for 18 decimals)
func ToSmallestUnit(price string, decimals int) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return nil, fmt.Errorf("invalid decimal value %q", price)
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("fractional component exceeds decimals: %s", price)
	}
	return shifted.BigInt(), nil
}

// Pending is a submitted transaction waiting for inclusion
type Pending struct {
	Input Input
	Tx    *types.Transaction
}

// Result is a finished mint
type Result struct {
	TokenID string
	// FromBlock is set when the identifier is the inclusion block number
	FromBlock bool
	// Record is nil when no identifier could be determined
	Record *receipts.Record
}

// Notice is the success message for the result
func (r Result) Notice() toast.Notice {
	switch {
	case r.Record == nil:
		return toast.SuccessNotice("Receipt successfully minted! (Block number could not be determined.)")
	case r.Record.IsDemo():
		return toast.SuccessNotice("Demo Receipt successfully minted with Token ID: " + r.TokenID)
	case r.FromBlock:
		return toast.SuccessNotice("Receipt successfully minted with Block Number: " + r.TokenID)
	default:
		return toast.SuccessNotice("Receipt successfully minted with Token ID: " + r.TokenID)
	}
}

// Minter runs both submission paths and records their results
type Minter struct {
	store  receipts.Store
	feed   *receipts.Feed
	logger *log.Logger
	delay  time.Duration

	now  func() time.Time
	intn func(n int) int
}

// NewMinter creates a minter writing to store and announcing on feed
func NewMinter(store receipts.Store, feed *receipts.Feed, delay time.Duration, logger *log.Logger) *Minter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Minter{
		store:  store,
		feed:   feed,
		logger: logger,
		delay:  delay,
		now:    time.Now,
		intn:   rand.IntN,
	}
}

// Send validates the input and submits the mint transaction. The converted
// amount is both the price argument and the value attached to the call.
func (m *Minter) Send(ctx context.Context, c Contract, in Input) (Pending, error) {
	if c == nil {
		return Pending{}, ErrNotConnected
	}
	if err := Validate(in); err != nil {
		return Pending{}, err
	}

	wei, err := ToSmallestUnit(in.Price, c.Decimals())
	if err != nil {
		m.logger.Error("Error minting receipt", "err", err)
		return Pending{}, err
	}
	m.logger.Debug("Minting receipt", "contract", c.Address().Hex(), "chain", c.ChainID(), "wei", wei.String())

	tx, err := c.Mint(ctx, in.ItemName, wei)
	if err != nil {
		m.logger.Error("Error minting receipt", "err", err)
		return Pending{}, err
	}
	m.logger.Info("Transaction submitted", "hash", tx.Hash().Hex())
	return Pending{Input: in, Tx: tx}, nil
}

// Confirm waits for the pending transaction and stores the receipt
func (m *Minter) Confirm(ctx context.Context, c Contract, p Pending) (Result, error) {
	receipt, err := c.WaitMined(ctx, p.Tx)
	if err != nil {
		m.logger.Error("Error minting receipt", "err", err, "hash", p.Tx.Hash().Hex())
		return Result{}, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		m.logger.Error("Error minting receipt", "err", ErrReverted, "hash", p.Tx.Hash().Hex())
		return Result{}, ErrReverted
	}

	var res Result
	if id, ok := contracts.MintedTokenID(c.Address(), receipt); ok {
		res.TokenID = id.String()
	} else if receipt.BlockNumber != nil {
		res.TokenID = receipt.BlockNumber.String()
		res.FromBlock = true
	} else {
		return res, nil
	}

	owner, err := c.Signer(ctx)
	if err != nil {
		m.logger.Error("Error minting receipt", "err", err)
		return Result{}, err
	}

	r := receipts.Record{
		TokenID:   res.TokenID,
		ItemName:  p.Input.ItemName,
		Price:     p.Input.Price,
		Timestamp: m.now().Format(receipts.TimestampLayout),
		Owner:     owner.Hex(),
		ChainID:   c.ChainID(),
		TxHash:    p.Tx.Hash().Hex(),
	}
	if err := m.record(r); err != nil {
		return Result{}, err
	}
	res.Record = &r
	return res, nil
}

// MintDemo simulates a mint: it waits, picks an identifier in [0, 1000) and
// stores a receipt owned by the demo label
func (m *Minter) MintDemo(ctx context.Context, in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	id := strconv.Itoa(m.intn(DemoIDRange))
	r := receipts.Record{
		TokenID:   id,
		ItemName:  in.ItemName,
		Price:     in.Price,
		Timestamp: m.now().Format(receipts.TimestampLayout),
		Owner:     receipts.DemoOwner,
	}
	if err := m.record(r); err != nil {
		m.logger.Error("Error in demo minting", "err", err)
		return Result{}, err
	}
	return Result{TokenID: id, Record: &r}, nil
}

func (m *Minter) record(r receipts.Record) error {
	if err := m.store.Append(r); err != nil {
		m.logger.Error("Error saving receipt", "err", err, "tokenId", r.TokenID)
		return fmt.Errorf("save receipt: %w", err)
	}
	if m.feed != nil {
		m.feed.Publish(r)
	}
	m.logger.Info("Receipt stored", "tokenId", r.TokenID, "owner", r.Owner)
	return nil
}

// isValidation reports errors the user fixes in the form
func isValidation(err error) bool {
	return errors.Is(err, ErrNotConnected) || errors.Is(err, ErrItemRequired) || errors.Is(err, ErrInvalidPrice)
}

// FailureNotice is the notice for a failed real mint
func FailureNotice(err error) toast.Notice {
	if isValidation(err) {
		return toast.ErrorNotice(err.Error())
	}
	return toast.ErrorNotice("Failed to mint receipt: " + wallet.Message(err, err.Error()))
}

// DemoFailureNotice is the notice for a failed demo mint
func DemoFailureNotice(err error) toast.Notice {
	if isValidation(err) {
		return toast.ErrorNotice(err.Error())
	}
	return toast.ErrorNotice("Failed to mint demo receipt. Please try again.")
}

// SubmittedNotice is shown once the transaction is on its way
func SubmittedNotice() toast.Notice {
	return toast.InfoNotice("Transaction submitted. Waiting for confirmation...")
}
