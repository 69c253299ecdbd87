package lookup

import (
	"testing"

	"nft-receipt-tui/networks"
	"nft-receipt-tui/receipts"

	"github.com/stretchr/testify/assert"
)

func TestRenderCard(t *testing.T) {
	demo := receipts.Record{
		TokenID:   "417",
		ItemName:  "Coffee",
		Price:     "0.01",
		Timestamp: "3/9/2024, 2:05:06 PM",
		Owner:     receipts.DemoOwner,
	}

	t.Run("demo receipt", func(t *testing.T) {
		out := RenderCard(demo, 60)
		assert.Contains(t, out, "NFT Receipt")
		assert.Contains(t, out, "#417")
		assert.Contains(t, out, "Coffee")
		assert.Contains(t, out, "0.01 ETH")
		assert.Contains(t, out, "Demo Owner")
		assert.Contains(t, out, "stored on the blockchain")
	})

	t.Run("same record renders the same", func(t *testing.T) {
		assert.Equal(t, RenderCard(demo, 60), RenderCard(demo, 60))
	})

	t.Run("on chain receipt", func(t *testing.T) {
		r := demo
		r.Owner = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
		r.ChainID = networks.Mumbai.ChainID
		r.TxHash = "0x8f2a5fa1d4a1c0f3e3b2b0f51e5d4b9b4c6e1e1a4b8d7c6a5f4e3d2c1b0a9f8e"

		out := RenderCard(r, 80)
		assert.Contains(t, out, "0.01 MATIC")
		assert.Contains(t, out, "0x5aAe...eAed")
		assert.Contains(t, out, "0x8f2a5fa1...9f8e")
		assert.NotContains(t, RenderCard(demo, 80), "Tx:")
	})
}

func TestRender(t *testing.T) {
	out := Render(Props{Width: 60, Input: "› 42"})
	assert.Contains(t, out, "View NFT Receipt")
	assert.Contains(t, out, "View Receipt")

	out = Render(Props{Width: 60, Loading: true, Spinner: "|"})
	assert.Contains(t, out, "Loading...")
}
