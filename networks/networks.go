package networks

import (
	"strings"
)

// NativeCurrency describes the coin a chain pays fees in
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Descriptor is a supported chain
type Descriptor struct {
	ChainID          string
	ChainName        string
	RPCURL           string
	BlockExplorerURL string
	NativeCurrency   NativeCurrency

	// faucet shown in the page footer
	FaucetURL   string
	FaucetLabel string
}

// AddChainParams is the wallet_addEthereumChain (EIP-3085) payload
type AddChainParams struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

var (
	// Sepolia is the default chain
	Sepolia = Descriptor{
		ChainID:          "0xaa36a7",
		ChainName:        "Sepolia",
		RPCURL:           "https://eth-sepolia.g.alchemy.com/v2/demo",
		BlockExplorerURL: "https://sepolia.etherscan.io",
		NativeCurrency: NativeCurrency{
			Name:     "Sepolia ETH",
			Symbol:   "ETH",
			Decimals: 18,
		},
		FaucetURL:   "https://sepoliafaucet.com/",
		FaucetLabel: "Get Sepolia ETH",
	}

	// Mumbai is the Polygon testnet
	Mumbai = Descriptor{
		ChainID:          "0x13881",
		ChainName:        "Mumbai",
		RPCURL:           "https://rpc-mumbai.maticvigil.com",
		BlockExplorerURL: "https://mumbai.polygonscan.com",
		NativeCurrency: NativeCurrency{
			Name:     "MATIC",
			Symbol:   "MATIC",
			Decimals: 18,
		},
		FaucetURL:   "https://mumbaifaucet.com/",
		FaucetLabel: "Get Mumbai MATIC",
	}

	registry = []Descriptor{Sepolia, Mumbai}
)

// All returns the supported chains in display order
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Default returns the chain a wallet is moved to when it sits on an unsupported one
func Default() Descriptor {
	return Sepolia
}

// Lookup finds a supported chain by its hex chain id
func Lookup(chainID string) (Descriptor, bool) {
	for _, d := range registry {
		if strings.EqualFold(d.ChainID, chainID) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Name returns the display name for a chain id
func Name(chainID string) string {
	if chainID == "" {
		return "Not Connected"
	}
	if d, ok := Lookup(chainID); ok {
		return d.ChainName
	}
	return "Unknown Network"
}

// AddChainParams builds the add-chain request from the descriptor
func (d Descriptor) AddChainParams() AddChainParams {
	return AddChainParams{
		ChainID:           d.ChainID,
		ChainName:         d.ChainName,
		NativeCurrency:    d.NativeCurrency,
		RPCURLs:           []string{d.RPCURL},
		BlockExplorerURLs: []string{d.BlockExplorerURL},
	}
}

// TxURL links a transaction on the chain's explorer
func (d Descriptor) TxURL(hash string) string {
	return strings.TrimRight(d.BlockExplorerURL, "/") + "/tx/" + hash
}

// AddressURL links an address on the chain's explorer
func (d Descriptor) AddressURL(addr string) string {
	return strings.TrimRight(d.BlockExplorerURL, "/") + "/address/" + addr
}
