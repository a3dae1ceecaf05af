package app

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/ethclient"

	"tender-dapp/utils"
)

var (
	dialTimeout  = 10 * time.Second
	dialMinDelay = 500 * time.Millisecond
)

// dialWithRetry connects to the node and confirms it serves the expected chain
func dialWithRetry(ctx context.Context, rpcURL string, attempts uint, wantChainID *big.Int) (*ethclient.Client, error) {
	if attempts == 0 {
		attempts = 1
	}

	var client *ethclient.Client
	tries := uint(0)
	err := retry.Do(func() error {
		tries++
		dctx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()

		c, err := ethclient.DialContext(dctx, rpcURL)
		if err != nil {
			return err
		}

		chainID, err := c.ChainID(dctx)
		if err != nil {
			c.Close()
			return fmt.Errorf("chain id probe: %w", err)
		}
		if chainID.Cmp(wantChainID) != 0 {
			c.Close()
			return retry.Unrecoverable(fmt.Errorf("node serves chain %s, expected %s", chainID, wantChainID))
		}

		client = c
		return nil
	},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(dialMinDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			utils.Warn("app: dialing node failed, retrying", map[string]any{
				"rpc_url": rpcURL,
				"attempt": n + 1,
				"error":   err.Error(),
			})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("app: failed to dial %s after %d attempts: %w", rpcURL, tries, err)
	}

	utils.Info("app: connected to node", map[string]any{"rpc_url": rpcURL, "chain_id": wantChainID.String(), "attempts": tries})
	return client, nil
}
