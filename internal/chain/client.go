package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
)

type (
	// RPCMetrics records metrics for L1 RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client wraps an ethclient connection with metrics instrumentation. It is
// the production source of the L1 block height that drives priority request
// expiration.
type Client struct {
	client     *ethclient.Client
	rpcMetrics RPCMetrics
}

// Dial connects to an L1 RPC endpoint and returns an instrumented client.
func Dial(ctx context.Context, rawURL string, rpcMetrics RPCMetrics) (*Client, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial l1 rpc: %w", err)
	}
	return &Client{client: client, rpcMetrics: rpcMetrics}, nil
}

// BlockNumber returns the most recent L1 block number.
func (c *Client) BlockNumber(ctx context.Context) (number uint64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("block_number", err, started)
	}()
	return c.client.BlockNumber(ctx)
}

// Close tears down the underlying RPC connection.
func (c *Client) Close() {
	c.client.Close()
}
