package rpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client wraps an Ethereum RPC client
type Client struct {
	*ethclient.Client
	URL string
}

// ConnectResult holds the result of an RPC connection attempt
type ConnectResult struct {
	Client *Client
	Error  error
}

// Connect attempts to connect to an Ethereum RPC endpoint
func Connect(url string) ConnectResult {
	return ConnectWithTimeout(url, 8*time.Second)
}

// ConnectWithTimeout attempts to connect with a custom timeout
func ConnectWithTimeout(url string, timeout time.Duration) ConnectResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return ConnectContext(ctx, url)
}

// ConnectContext dials url, bounded by ctx
func ConnectContext(ctx context.Context, url string) ConnectResult {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return ConnectResult{Client: nil, Error: err}
	}

	return ConnectResult{
		Client: &Client{
			Client: client,
			URL:    url,
		},
		Error: nil,
	}
}

// ChainIDHex returns the endpoint's chain id in 0x-prefixed hex, as wallets report it
func (c *Client) ChainIDHex(ctx context.Context) (string, error) {
	if c == nil || c.Client == nil {
		return "", fmt.Errorf("no RPC client")
	}
	id, err := c.ChainID(ctx)
	if err != nil {
		return "", err
	}
	return hexutil.EncodeBig(id), nil
}

// VerifyChain fails unless the endpoint serves the chain with the given hex id
func (c *Client) VerifyChain(ctx context.Context, want string) error {
	got, err := c.ChainIDHex(ctx)
	if err != nil {
		return fmt.Errorf("query chain id of %s: %w", c.URL, err)
	}
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("RPC endpoint %s serves chain %s, expected %s", c.URL, got, want)
	}
	return nil
}
