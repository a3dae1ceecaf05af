package app

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"tender-dapp/internal/bidhistory"
	"tender-dapp/internal/config"
	"tender-dapp/internal/contract"
	"tender-dapp/internal/realtime"
	tendering "tender-dapp/internal/tenderService"
	"tender-dapp/internal/wallet"
	"tender-dapp/utils"
)

// App holds the wired components of a running tender service
type App struct {
	Config   *config.Config
	Wallet   *wallet.Wallet
	Contract contract.TenderContract
	Hub      *realtime.Hub
	Service  *tendering.TenderService
	Official common.Address

	closers []func()
}

// Build wires the ledger backend, wallet, realtime hub and service from cfg
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: invalid config: %w", err)
	}

	a := &App{Config: cfg, Hub: realtime.NewHub()}
	chainID := big.NewInt(cfg.Chain.ChainID)

	var err error
	switch cfg.Chain.Backend {
	case config.BackendMemory:
		err = a.buildMemory(chainID)
	case config.BackendRPC:
		err = a.buildRPC(ctx, chainID)
	}
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Service = tendering.NewTenderService(a.Contract, a.Wallet, bidhistory.NewMemoryStore(), tendering.Options{
		Official:  a.Official,
		Publisher: a.Hub,
	})
	a.closers = append(a.closers, a.Service.Close)

	utils.Info("app: built", map[string]any{
		"backend":  cfg.Chain.Backend,
		"official": a.Official.Hex(),
		"accounts": len(a.Wallet.RequestAccounts()),
	})
	return a, nil
}

// Close releases the node connection and stops following account changes
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) buildMemory(chainID *big.Int) error {
	w, err := a.loadWallet(chainID)
	if err != nil {
		return err
	}
	a.Wallet = w

	a.Official = common.HexToAddress(a.Config.Official.Address)
	if a.Config.Official.Address == "" {
		a.Official = w.RequestAccounts()[0]
	}
	a.Contract = contract.NewMemory(a.Official)
	return nil
}

func (a *App) buildRPC(ctx context.Context, chainID *big.Int) error {
	w, err := a.loadWallet(chainID)
	if err != nil {
		return err
	}
	a.Wallet = w

	if a.Config.Official.Address == "" {
		utils.Warn("app: no official address configured, every account is a bidder", nil)
	} else {
		a.Official = common.HexToAddress(a.Config.Official.Address)
	}

	parsed, err := contract.LoadABI(a.Config.Chain.ABIPath)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	client, err := dialWithRetry(ctx, a.Config.Chain.RPCURL, a.Config.Chain.DialAttempts, chainID)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, client.Close)

	chain, err := contract.NewChain(client, w, contract.ChainConfig{
		Address:        common.HexToAddress(a.Config.Chain.ContractAddress),
		ABI:            parsed,
		ConfirmTimeout: a.Config.Chain.ConfirmTimeout,
		PollInterval:   a.Config.Chain.PollInterval,
	})
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	utils.Info("app: bound tender contract", map[string]any{
		"address":       a.Config.Chain.ContractAddress,
		"winner_method": chain.WinnerMethod(),
	})
	a.Contract = chain
	return nil
}

func (a *App) loadWallet(chainID *big.Int) (*wallet.Wallet, error) {
	if len(a.Config.Wallet.Keys) > 0 {
		w, err := wallet.New(chainID, a.Config.Wallet.Keys)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		return w, nil
	}

	w, err := wallet.NewRandom(chainID, a.Config.Wallet.DevAccounts)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	utils.Info("app: generated development accounts", map[string]any{"count": a.Config.Wallet.DevAccounts})
	return w, nil
}
