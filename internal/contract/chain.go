package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"tender-dapp/internal/models"
	"tender-dapp/internal/tendererrors"
	"tender-dapp/utils"
)

// Backend is the node connection used for calls, transactions and receipts
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Signer produces signing options for an account
type Signer interface {
	Transactor(addr common.Address) (*bind.TransactOpts, error)
}

// ChainConfig configures the on-chain TenderContract
type ChainConfig struct {
	Address        common.Address
	ABI            abi.ABI
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// Chain talks to the deployed Tender contract through go-ethereum bindings
type Chain struct {
	address        common.Address
	backend        Backend
	signer         Signer
	bound          *bind.BoundContract
	winnerMethod   string
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

var _ TenderContract = (*Chain)(nil)

// NewChain binds the contract at cfg.Address. It fails when the ABI does not
// expose the full tender surface.
func NewChain(backend Backend, signer Signer, cfg ChainConfig) (*Chain, error) {
	winner, err := ResolveWinnerMethod(cfg.ABI)
	if err != nil {
		return nil, err
	}
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = 2 * time.Minute
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}

	return &Chain{
		address:        cfg.Address,
		backend:        backend,
		signer:         signer,
		bound:          bind.NewBoundContract(cfg.Address, cfg.ABI, backend, backend, backend),
		winnerMethod:   winner,
		confirmTimeout: cfg.ConfirmTimeout,
		pollInterval:   cfg.PollInterval,
	}, nil
}

// WinnerMethod returns the winner selection method resolved from the ABI
func (c *Chain) WinnerMethod() string {
	return c.winnerMethod
}

// TenderCounter returns the number of tenders created so far
func (c *Chain) TenderCounter(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, MethodTenderCounter)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("contract: %s returned %d values: %w", MethodTenderCounter, len(out), tendererrors.ErrUnsupportedContract)
	}
	count, ok := out[0].(*big.Int)
	if !ok || !count.IsUint64() {
		return 0, fmt.Errorf("contract: %s returned %v: %w", MethodTenderCounter, out[0], tendererrors.ErrUnsupportedContract)
	}
	return count.Uint64(), nil
}

// GetTenderDetails reads one tender
func (c *Chain) GetTenderDetails(ctx context.Context, id uint64) (models.Tender, error) {
	out, err := c.call(ctx, MethodGetTenderDetails, new(big.Int).SetUint64(id))
	if err != nil {
		return models.Tender{}, err
	}
	return decodeTender(id, out)
}

// GetBids reads the bids recorded for a tender
func (c *Chain) GetBids(ctx context.Context, id uint64) ([]models.Bid, error) {
	out, err := c.call(ctx, MethodGetBids, new(big.Int).SetUint64(id))
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("contract: %s returned %d values: %w", MethodGetBids, len(out), tendererrors.ErrUnsupportedContract)
	}

	return decodeBids(out[0])
}

// CreateTender submits a createTender transaction and waits for it to be mined
func (c *Chain) CreateTender(ctx context.Context, from common.Address, description string, minBid *big.Int) error {
	return c.transact(ctx, from, MethodCreateTender, description, minBid)
}

// SubmitBid submits a submitBid transaction and waits for it to be mined
func (c *Chain) SubmitBid(ctx context.Context, from common.Address, id uint64, amount *big.Int) error {
	return c.transact(ctx, from, MethodSubmitBid, new(big.Int).SetUint64(id), amount)
}

// SelectWinner submits the winner selection transaction and waits for it to be mined
func (c *Chain) SelectWinner(ctx context.Context, from common.Address, id uint64, bidder common.Address) error {
	return c.transact(ctx, from, c.winnerMethod, new(big.Int).SetUint64(id), bidder)
}

func (c *Chain) call(ctx context.Context, method string, args ...any) ([]any, error) {
	var out []any
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("contract: %s: %w: %w", method, tendererrors.ErrContractCall, err)
	}
	return out, nil
}

func (c *Chain) transact(ctx context.Context, from common.Address, method string, args ...any) error {
	opts, err := c.signer.Transactor(from)
	if err != nil {
		return err
	}
	opts.Context = ctx

	tx, err := c.bound.Transact(opts, method, args...)
	if err != nil {
		return fmt.Errorf("contract: %s: %w: %w", method, tendererrors.ErrContractCall, err)
	}
	utils.Info("contract: transaction sent", map[string]any{
		"method": method,
		"from":   from.Hex(),
		"tx":     tx.Hash().Hex(),
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	receipt, err := waitMined(ctxTimeout, c.pollInterval, c.backend, tx.Hash())
	if err != nil {
		return fmt.Errorf("contract: %s tx %s failed to confirm: %w", method, tx.Hash().Hex(), err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return fmt.Errorf("contract: %s tx %s: %w", method, tx.Hash().Hex(), tendererrors.ErrTxReverted)
	}

	utils.Info("contract: transaction confirmed", map[string]any{
		"method": method,
		"tx":     tx.Hash().Hex(),
		"block":  receipt.BlockNumber.String(),
	})
	return nil
}

// waitMined polls for the receipt of txHash until it is available or ctx ends
func waitMined(ctx context.Context, tick time.Duration, b bind.DeployBackend, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		receipt, err := b.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			utils.Debug("contract: receipt not yet available", map[string]any{"tx": txHash.Hex(), "error": err.Error()})
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// decodeBids reads the (bidder, amount) tuples unpacked from getBids. The
// unpacked struct type is derived from the ABI component names, so fields are
// read by position.
func decodeBids(v any) ([]models.Bid, error) {
	unsupported := fmt.Errorf("contract: %s returned %T: %w", MethodGetBids, v, tendererrors.ErrUnsupportedContract)

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, unsupported
	}
	bids := make([]models.Bid, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i)
		if el.Kind() != reflect.Struct || el.NumField() != 2 || !el.Field(0).CanInterface() || !el.Field(1).CanInterface() {
			return nil, unsupported
		}
		bidder, okBidder := el.Field(0).Interface().(common.Address)
		amount, okAmount := el.Field(1).Interface().(*big.Int)
		if !okBidder || !okAmount {
			return nil, unsupported
		}
		if amount == nil {
			amount = new(big.Int)
		}
		bids = append(bids, models.Bid{Bidder: bidder, Amount: amount})
	}
	return bids, nil
}

// decodeTender accepts (description, minBid, isOpen, winner), optionally
// preceded by the tender id.
func decodeTender(id uint64, out []any) (models.Tender, error) {
	switch len(out) {
	case 5:
		out = out[1:]
	case 4:
	default:
		return models.Tender{}, fmt.Errorf("contract: %s returned %d values: %w", MethodGetTenderDetails, len(out), tendererrors.ErrUnsupportedContract)
	}

	description, okDesc := out[0].(string)
	minBid, okMin := out[1].(*big.Int)
	isOpen, okOpen := out[2].(bool)
	winner, okWinner := out[3].(common.Address)
	if !okDesc || !okMin || !okOpen || !okWinner {
		return models.Tender{}, fmt.Errorf("contract: %s returned unexpected types: %w", MethodGetTenderDetails, tendererrors.ErrUnsupportedContract)
	}

	return models.Tender{
		ID:          id,
		Description: description,
		MinBid:      minBid,
		IsOpen:      isOpen,
		Winner:      winner,
	}, nil
}
