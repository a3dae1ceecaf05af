package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"tender-dapp/internal/config"
	"tender-dapp/internal/contract"
)

const (
	hardhatKey0 = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatKey1 = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
)

var hardhatAccount0 = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func memoryConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Chain:  config.ChainConfig{Backend: config.BackendMemory, ChainID: 31337},
		Wallet: config.WalletConfig{DevAccounts: 3},
	}
}

// chainIDNode answers eth_chainId with chainID and fails everything else
func chainIDNode(t *testing.T, chainID string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if req.Method != "eth_chainId" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0", "id": req.ID,
				"error": map[string]any{"code": -32601, "message": "method not found"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": chainID})
	}))
}

func TestBuild_Memory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mutate       func(c *config.Config)
		wantAccounts int
		wantOfficial func(a *App) common.Address
	}{
		{
			name:         "dev_accounts_first_is_official",
			mutate:       func(c *config.Config) {},
			wantAccounts: 3,
			wantOfficial: func(a *App) common.Address { return a.Wallet.RequestAccounts()[0] },
		},
		{
			name: "configured_keys_and_official",
			mutate: func(c *config.Config) {
				c.Wallet.Keys = []string{hardhatKey0, hardhatKey1}
				c.Official.Address = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
			},
			wantAccounts: 2,
			wantOfficial: func(*App) common.Address { return hardhatAccount0 },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := memoryConfig()
			tc.mutate(cfg)

			a, err := Build(context.Background(), cfg)
			require.NoError(t, err)
			defer a.Close()

			require.IsType(t, &contract.Memory{}, a.Contract)
			require.Len(t, a.Wallet.RequestAccounts(), tc.wantAccounts)
			require.Equal(t, tc.wantOfficial(a), a.Official)

			session, err := a.Service.Connect(context.Background())
			require.NoError(t, err)
			require.Equal(t, session.Account == a.Official, session.IsOfficial)
			require.Empty(t, a.Service.Tenders())
		})
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.Wallet.DevAccounts = 0

	_, err := Build(context.Background(), cfg)
	require.ErrorContains(t, err, "invalid config")
}

func TestBuild_RPC(t *testing.T) {
	t.Parallel()

	rpcConfig := func(url string) *config.Config {
		return &config.Config{
			Server: config.ServerConfig{Port: "8080"},
			Chain: config.ChainConfig{
				Backend:         config.BackendRPC,
				RPCURL:          url,
				ChainID:         31337,
				ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
				ConfirmTimeout:  time.Second,
				PollInterval:    10 * time.Millisecond,
				DialAttempts:    2,
			},
			Wallet: config.WalletConfig{Keys: []string{hardhatKey0}},
		}
	}

	t.Run("matching_chain", func(t *testing.T) {
		t.Parallel()

		node := chainIDNode(t, "0x7a69")
		defer node.Close()

		a, err := Build(context.Background(), rpcConfig(node.URL))
		require.NoError(t, err)
		defer a.Close()

		chain, ok := a.Contract.(*contract.Chain)
		require.True(t, ok)
		require.Equal(t, contract.MethodChooseWinner, chain.WinnerMethod())
		require.Equal(t, common.Address{}, a.Official)
	})

	t.Run("wrong_chain_is_not_retried", func(t *testing.T) {
		t.Parallel()

		node := chainIDNode(t, "0x1")
		defer node.Close()

		_, err := Build(context.Background(), rpcConfig(node.URL))
		require.ErrorContains(t, err, "expected 31337")
		require.ErrorContains(t, err, "after 1 attempts")
	})

	t.Run("unreachable_node", func(t *testing.T) {
		t.Parallel()

		node := chainIDNode(t, "0x7a69")
		url := node.URL
		node.Close()

		_, err := Build(context.Background(), rpcConfig(url))
		require.ErrorContains(t, err, "after 2 attempts")
	})
}
