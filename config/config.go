package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"nft-receipt-tui/helpers"
	"nft-receipt-tui/networks"

	"github.com/ethereum/go-ethereum/common"
)

// Config represents the application configuration
type Config struct {
	RPCURLs     []RPCUrl `json:"rpc_urls"`
	StorePath   string   `json:"store_path,omitempty"`
	Logger      bool     `json:"logger"`
	DemoDelayMS int      `json:"demo_delay_ms,omitempty"`
}

// RPCUrl represents an RPC endpoint; the active one is the wallet's home endpoint
type RPCUrl struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// Placeholder contract addresses used when the environment does not provide one
const (
	SepoliaPlaceholder = "0x1234567890123456789012345678901234567890"
	MumbaiPlaceholder  = "0x0000000000000000000000000000000000000000"
)

const defaultDemoDelay = time.Second

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		RPCURLs: []RPCUrl{
			{
				Name:   networks.Sepolia.ChainName,
				URL:    networks.Sepolia.RPCURL,
				Active: true,
			},
		},
		Logger: false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := DefaultConfig()
		Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// DefaultPath is the config file in the user's home directory
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".nft-receipt-config.json")
}

// HomeRPC returns the endpoint the wallet starts on. ETH_RPC_URL wins over the config file.
func (c Config) HomeRPC() string {
	if env := strings.TrimSpace(os.Getenv("ETH_RPC_URL")); env != "" {
		return env
	}
	for _, r := range c.RPCURLs {
		if r.Active && r.URL != "" {
			return r.URL
		}
	}
	return networks.Default().RPCURL
}

// ReceiptStorePath returns where receipts are persisted
func (c Config) ReceiptStorePath() string {
	if env := strings.TrimSpace(os.Getenv("RECEIPT_STORE_PATH")); env != "" {
		return env
	}
	if c.StorePath != "" {
		return c.StorePath
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".nft-receipts.db")
}

// DemoDelay is the simulated confirmation time of the demo path
func (c Config) DemoDelay() time.Duration {
	if c.DemoDelayMS > 0 {
		return time.Duration(c.DemoDelayMS) * time.Millisecond
	}
	return defaultDemoDelay
}

// ContractAddresses maps each supported chain to its receipt contract.
// Unset or malformed environment values fall back to the placeholders.
func ContractAddresses() map[string]common.Address {
	return map[string]common.Address{
		networks.Sepolia.ChainID: addressFromEnv("SEPOLIA_CONTRACT_ADDRESS", SepoliaPlaceholder),
		networks.Mumbai.ChainID:  addressFromEnv("MUMBAI_CONTRACT_ADDRESS", MumbaiPlaceholder),
	}
}

func addressFromEnv(key, fallback string) common.Address {
	v := strings.TrimSpace(os.Getenv(key))
	if !helpers.IsValidEthAddress(v) {
		v = fallback
	}
	return common.HexToAddress(v)
}
