package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"tender-dapp/internal/tendererrors"
	"tender-dapp/utils"
)

// Wallet holds the accounts the service may act as and tracks which one is
// active. Switching accounts notifies every registered listener, the way a
// browser wallet emits accountsChanged.
type Wallet struct {
	mu        sync.RWMutex
	chainID   *big.Int
	keys      map[common.Address]*ecdsa.PrivateKey
	order     []common.Address
	active    common.Address
	listeners map[string]func(common.Address)
}

// New loads accounts from hex encoded private keys. The first key becomes the
// active account.
func New(chainID *big.Int, hexKeys []string) (*Wallet, error) {
	keys := make([]*ecdsa.PrivateKey, 0, len(hexKeys))
	for i, raw := range hexKeys {
		raw = strings.TrimPrefix(strings.TrimSpace(raw), "0x")
		if raw == "" {
			continue
		}
		key, err := crypto.HexToECDSA(raw)
		if err != nil {
			return nil, fmt.Errorf("wallet: failed to parse key %d: %w", i, err)
		}
		keys = append(keys, key)
	}
	return fromKeys(chainID, keys)
}

// NewRandom creates a wallet with n freshly generated accounts
func NewRandom(chainID *big.Int, n int) (*Wallet, error) {
	keys := make([]*ecdsa.PrivateKey, 0, n)
	for i := 0; i < n; i++ {
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("wallet: failed to generate key: %w", err)
		}
		keys = append(keys, key)
	}
	return fromKeys(chainID, keys)
}

func fromKeys(chainID *big.Int, keys []*ecdsa.PrivateKey) (*Wallet, error) {
	if len(keys) == 0 {
		return nil, tendererrors.ErrNoAccounts
	}

	w := &Wallet{
		chainID:   new(big.Int).Set(chainID),
		keys:      make(map[common.Address]*ecdsa.PrivateKey, len(keys)),
		listeners: make(map[string]func(common.Address)),
	}
	for _, key := range keys {
		addr := crypto.PubkeyToAddress(key.PublicKey)
		if _, dup := w.keys[addr]; dup {
			continue
		}
		w.keys[addr] = key
		w.order = append(w.order, addr)
	}
	w.active = w.order[0]
	return w, nil
}

// RequestAccounts returns the available accounts with the active one first
func (w *Wallet) RequestAccounts() []common.Address {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]common.Address, 0, len(w.order))
	out = append(out, w.active)
	for _, addr := range w.order {
		if addr != w.active {
			out = append(out, addr)
		}
	}
	return out
}

// Active returns the currently selected account
func (w *Wallet) Active() common.Address {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.active
}

// SwitchAccount makes addr the active account and notifies listeners.
// Listeners run synchronously after the lock is released.
func (w *Wallet) SwitchAccount(addr common.Address) error {
	w.mu.Lock()
	if _, ok := w.keys[addr]; !ok {
		w.mu.Unlock()
		return fmt.Errorf("wallet: switch to %s: %w", addr.Hex(), tendererrors.ErrUnknownAccount)
	}
	w.active = addr
	listeners := make([]func(common.Address), 0, len(w.listeners))
	for _, fn := range w.listeners {
		listeners = append(listeners, fn)
	}
	w.mu.Unlock()

	utils.Info("wallet: account changed", map[string]any{"account": addr.Hex(), "listeners": len(listeners)})
	for _, fn := range listeners {
		fn(addr)
	}
	return nil
}

// OnAccountsChanged registers fn to be called after every account switch.
// The returned function removes the listener.
func (w *Wallet) OnAccountsChanged(fn func(common.Address)) func() {
	id := utils.GenerateID()

	w.mu.Lock()
	w.listeners[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.listeners, id)
		w.mu.Unlock()
	}
}

// Transactor returns signing options for addr bound to the wallet's chain id
func (w *Wallet) Transactor(addr common.Address) (*bind.TransactOpts, error) {
	w.mu.RLock()
	key, ok := w.keys[addr]
	w.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("wallet: transactor for %s: %w", addr.Hex(), tendererrors.ErrUnknownAccount)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, w.chainID)
	if err != nil {
		return nil, fmt.Errorf("wallet: failed to build transactor: %w", err)
	}
	return opts, nil
}
