package mint

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"nft-receipt-tui/receipts"
	"nft-receipt-tui/toast"
	"nft-receipt-tui/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	contractAddr = common.HexToAddress("0x1234567890123456789012345678901234567890")
	signerAddr   = common.HexToAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	fixedNow     = time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
)

type fakeContract struct {
	mintErr error
	waitErr error
	receipt *types.Receipt

	gotItem  string
	gotPrice *big.Int
	minted   int
}

func (f *fakeContract) Mint(ctx context.Context, itemName string, priceInWei *big.Int) (*types.Transaction, error) {
	f.minted++
	f.gotItem = itemName
	f.gotPrice = priceInWei
	if f.mintErr != nil {
		return nil, f.mintErr
	}
	return types.NewTx(&types.LegacyTx{Nonce: 1, To: &contractAddr, Value: priceInWei}), nil
}

func (f *fakeContract) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	return f.receipt, nil
}

func (f *fakeContract) Signer(ctx context.Context) (common.Address, error) {
	return signerAddr, nil
}

func (f *fakeContract) Address() common.Address { return contractAddr }
func (f *fakeContract) ChainID() string         { return "0xaa36a7" }
func (f *fakeContract) Decimals() int           { return 18 }

func newTestMinter(store receipts.Store, feed *receipts.Feed) *Minter {
	m := NewMinter(store, feed, time.Millisecond, nil)
	m.now = func() time.Time { return fixedNow }
	m.intn = func(n int) int { return 417 }
	return m
}

func transferLog(tokenID int64) *types.Log {
	return &types.Log{
		Address: contractAddr,
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
			{},
			common.BytesToHash(signerAddr.Bytes()),
			common.BigToHash(big.NewInt(tokenID)),
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"ok", Input{"Coffee", "0.01"}, nil},
		{"empty item", Input{"", "0.01"}, ErrItemRequired},
		{"blank item", Input{"   ", "0.01"}, ErrItemRequired},
		{"empty price", Input{"Coffee", ""}, ErrInvalidPrice},
		{"zero price", Input{"Coffee", "0"}, ErrInvalidPrice},
		{"negative price", Input{"Coffee", "-1"}, ErrInvalidPrice},
		{"not a number", Input{"Coffee", "abc"}, ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestToSmallestUnit(t *testing.T) {
	wei, err := ToSmallestUnit("0.01", 18)
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", wei.String())

	wei, err = ToSmallestUnit("2", 18)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", wei.String())

	_, err = ToSmallestUnit("0.0000000000000000001", 18)
	assert.Error(t, err)

	_, err = ToSmallestUnit("abc", 18)
	assert.Error(t, err)
}

func TestMintDemo(t *testing.T) {
	store := receipts.NewMemoryStore()
	feed := new(receipts.Feed)
	ch := make(chan receipts.Record, 1)
	sub := feed.Subscribe(ch)
	defer sub.Unsubscribe()

	m := newTestMinter(store, feed)
	res, err := m.MintDemo(context.Background(), Input{ItemName: "Coffee", Price: "0.01"})
	require.NoError(t, err)
	assert.Equal(t, "417", res.TokenID)
	assert.Equal(t, toast.SuccessNotice("Demo Receipt successfully minted with Token ID: 417"), res.Notice())

	records, _ := store.Load()
	require.Len(t, records, 1)
	assert.Equal(t, receipts.Record{
		TokenID:   "417",
		ItemName:  "Coffee",
		Price:     "0.01",
		Timestamp: "3/9/2024, 2:05:06 PM",
		Owner:     receipts.DemoOwner,
	}, records[0])

	select {
	case r := <-ch:
		assert.Equal(t, records[0], r)
	case <-time.After(time.Second):
		t.Fatal("record not broadcast")
	}
}

func TestMintDemoRange(t *testing.T) {
	m := NewMinter(receipts.NewMemoryStore(), nil, 0, nil)
	for i := 0; i < 50; i++ {
		res, err := m.MintDemo(context.Background(), Input{ItemName: "Tea", Price: "1"})
		require.NoError(t, err)
		id, ok := new(big.Int).SetString(res.TokenID, 10)
		require.True(t, ok)
		assert.True(t, id.Sign() >= 0 && id.Int64() < DemoIDRange)
	}
}

func TestMintDemoInvalid(t *testing.T) {
	store := receipts.NewMemoryStore()
	m := newTestMinter(store, nil)

	_, err := m.MintDemo(context.Background(), Input{ItemName: "", Price: "0.01"})
	assert.ErrorIs(t, err, ErrItemRequired)
	assert.Equal(t, "Item name is required", DemoFailureNotice(err).Text)

	records, _ := store.Load()
	assert.Empty(t, records)
}

func TestMintDemoCancelled(t *testing.T) {
	m := NewMinter(receipts.NewMemoryStore(), nil, time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.MintDemo(ctx, Input{ItemName: "Tea", Price: "1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Failed to mint demo receipt. Please try again.", DemoFailureNotice(err).Text)
}

func TestSendNotConnected(t *testing.T) {
	m := newTestMinter(receipts.NewMemoryStore(), nil)
	_, err := m.Send(context.Background(), nil, Input{ItemName: "", Price: ""})
	assert.ErrorIs(t, err, ErrNotConnected, "connection is checked before the fields")
	assert.Equal(t, "Wallet not connected", FailureNotice(err).Text)
}

func TestSendAttachesValue(t *testing.T) {
	c := &fakeContract{}
	m := newTestMinter(receipts.NewMemoryStore(), nil)

	p, err := m.Send(context.Background(), c, Input{ItemName: "Coffee", Price: "0.01"})
	require.NoError(t, err)
	assert.Equal(t, "Coffee", c.gotItem)
	assert.Equal(t, "10000000000000000", c.gotPrice.String())
	assert.Equal(t, c.gotPrice, p.Tx.Value())
}

func TestSendValidation(t *testing.T) {
	c := &fakeContract{}
	m := newTestMinter(receipts.NewMemoryStore(), nil)

	_, err := m.Send(context.Background(), c, Input{ItemName: "Coffee", Price: "0"})
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Zero(t, c.minted)
}

func TestSendRejected(t *testing.T) {
	c := &fakeContract{mintErr: &wallet.ProviderError{Code: wallet.CodeUserRejected, Message: "user rejected transaction"}}
	m := newTestMinter(receipts.NewMemoryStore(), nil)

	_, err := m.Send(context.Background(), c, Input{ItemName: "Coffee", Price: "0.01"})
	require.Error(t, err)
	assert.Equal(t, toast.ErrorNotice("Failed to mint receipt: user rejected transaction"), FailureNotice(err))
}

func TestConfirm(t *testing.T) {
	input := Input{ItemName: "Coffee", Price: "0.01"}

	t.Run("token id from transfer log", func(t *testing.T) {
		store := receipts.NewMemoryStore()
		c := &fakeContract{receipt: &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(5_000_000),
			Logs:        []*types.Log{transferLog(12)},
		}}
		m := newTestMinter(store, nil)

		p, err := m.Send(context.Background(), c, input)
		require.NoError(t, err)
		res, err := m.Confirm(context.Background(), c, p)
		require.NoError(t, err)
		assert.Equal(t, "12", res.TokenID)
		assert.False(t, res.FromBlock)
		assert.Equal(t, "Receipt successfully minted with Token ID: 12", res.Notice().Text)

		records, _ := store.Load()
		require.Len(t, records, 1)
		assert.Equal(t, signerAddr.Hex(), records[0].Owner)
		assert.Equal(t, p.Tx.Hash().Hex(), records[0].TxHash)
		assert.Equal(t, "0xaa36a7", records[0].ChainID)
	})

	t.Run("block number fallback", func(t *testing.T) {
		store := receipts.NewMemoryStore()
		c := &fakeContract{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(5_000_000)}}
		m := newTestMinter(store, nil)

		p, err := m.Send(context.Background(), c, input)
		require.NoError(t, err)
		res, err := m.Confirm(context.Background(), c, p)
		require.NoError(t, err)
		assert.True(t, res.FromBlock)
		assert.Equal(t, "Receipt successfully minted with Block Number: 5000000", res.Notice().Text)

		records, _ := store.Load()
		found, err := receipts.Find(records, "5000000")
		require.NoError(t, err)
		assert.Equal(t, "Coffee", found.ItemName)
	})

	t.Run("no identifier stores nothing", func(t *testing.T) {
		store := receipts.NewMemoryStore()
		c := &fakeContract{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful}}
		m := newTestMinter(store, nil)

		p, err := m.Send(context.Background(), c, input)
		require.NoError(t, err)
		res, err := m.Confirm(context.Background(), c, p)
		require.NoError(t, err)
		assert.Nil(t, res.Record)
		assert.Equal(t, "Receipt successfully minted! (Block number could not be determined.)", res.Notice().Text)

		records, _ := store.Load()
		assert.Empty(t, records)
	})

	t.Run("reverted", func(t *testing.T) {
		store := receipts.NewMemoryStore()
		c := &fakeContract{receipt: &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(1)}}
		m := newTestMinter(store, nil)

		p, err := m.Send(context.Background(), c, input)
		require.NoError(t, err)
		_, err = m.Confirm(context.Background(), c, p)
		assert.ErrorIs(t, err, ErrReverted)
		assert.Equal(t, "Failed to mint receipt: transaction reverted", FailureNotice(err).Text)

		records, _ := store.Load()
		assert.Empty(t, records)
	})

	t.Run("wait failure", func(t *testing.T) {
		c := &fakeContract{waitErr: errors.New("connection reset")}
		m := newTestMinter(receipts.NewMemoryStore(), nil)

		p, err := m.Send(context.Background(), c, input)
		require.NoError(t, err)
		_, err = m.Confirm(context.Background(), c, p)
		assert.Equal(t, "Failed to mint receipt: connection reset", FailureNotice(err).Text)
	})
}
