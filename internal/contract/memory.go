package contract

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"tender-dapp/internal/models"
	"tender-dapp/internal/tendererrors"
)

// Memory is a concurrency-safe in-memory ledger that applies the rules the
// deployed contract enforces. It backs local development and tests.
type Memory struct {
	mu       sync.RWMutex
	official common.Address
	tenders  []*memoryTender // index: tenderID-1
}

type memoryTender struct {
	tender models.Tender
	bids   []models.Bid
	bidded map[common.Address]struct{}
}

var _ TenderContract = (*Memory)(nil)

// NewMemory creates an empty ledger administered by official
func NewMemory(official common.Address) *Memory {
	return &Memory{official: official}
}

// TenderCounter returns the number of tenders created so far
func (m *Memory) TenderCounter(_ context.Context) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.tenders)), nil
}

// GetTenderDetails returns a copy of the tender with the given 1-based id
func (m *Memory) GetTenderDetails(_ context.Context, id uint64) (models.Tender, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, err := m.lookup(id)
	if err != nil {
		return models.Tender{}, err
	}
	out := t.tender
	out.MinBid = new(big.Int).Set(t.tender.MinBid)
	return out, nil
}

// GetBids returns the bids for a tender in submission order
func (m *Memory) GetBids(_ context.Context, id uint64) ([]models.Bid, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	bids := make([]models.Bid, len(t.bids))
	for i, b := range t.bids {
		bids[i] = models.Bid{Bidder: b.Bidder, Amount: new(big.Int).Set(b.Amount)}
	}
	return bids, nil
}

// CreateTender appends an open tender. Only the official may create tenders.
func (m *Memory) CreateTender(_ context.Context, from common.Address, description string, minBid *big.Int) error {
	if minBid == nil || minBid.Sign() < 0 {
		return fmt.Errorf("ledger: create tender: %w", tendererrors.ErrInvalidTender)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if from != m.official {
		return fmt.Errorf("ledger: create tender from %s: %w", from.Hex(), tendererrors.ErrNotAuthorized)
	}

	m.tenders = append(m.tenders, &memoryTender{
		tender: models.Tender{
			ID:          uint64(len(m.tenders) + 1),
			Description: description,
			MinBid:      new(big.Int).Set(minBid),
			IsOpen:      true,
		},
		bidded: make(map[common.Address]struct{}),
	})
	return nil
}

// SubmitBid records one bid per account on an open tender
func (m *Memory) SubmitBid(_ context.Context, from common.Address, id uint64, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.lookup(id)
	if err != nil {
		return err
	}
	switch {
	case !t.tender.IsOpen:
		return fmt.Errorf("ledger: bid on tender %d: %w", id, tendererrors.ErrTenderClosed)
	case amount == nil || amount.Cmp(t.tender.MinBid) < 0:
		return fmt.Errorf("ledger: bid on tender %d: %w", id, tendererrors.ErrBidTooLow)
	}
	if _, ok := t.bidded[from]; ok {
		return fmt.Errorf("ledger: bid on tender %d from %s: %w", id, from.Hex(), tendererrors.ErrAlreadyBid)
	}

	t.bids = append(t.bids, models.Bid{Bidder: from, Amount: new(big.Int).Set(amount)})
	t.bidded[from] = struct{}{}
	return nil
}

// SelectWinner closes the tender and records bidder as winner. Only the
// official may select, and the winner must have bid.
func (m *Memory) SelectWinner(_ context.Context, from common.Address, id uint64, bidder common.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if from != m.official {
		return fmt.Errorf("ledger: select winner from %s: %w", from.Hex(), tendererrors.ErrNotAuthorized)
	}
	t, err := m.lookup(id)
	if err != nil {
		return err
	}
	if !t.tender.IsOpen {
		return fmt.Errorf("ledger: select winner for tender %d: %w", id, tendererrors.ErrTenderClosed)
	}
	if _, ok := t.bidded[bidder]; !ok {
		return fmt.Errorf("ledger: select winner %s for tender %d: %w", bidder.Hex(), id, tendererrors.ErrNotABidder)
	}

	t.tender.IsOpen = false
	t.tender.Winner = bidder
	return nil
}

// lookup must be called with m.mu held
func (m *Memory) lookup(id uint64) (*memoryTender, error) {
	if id == 0 || id > uint64(len(m.tenders)) {
		return nil, fmt.Errorf("ledger: tender %d: %w", id, tendererrors.ErrTenderNotFound)
	}
	return m.tenders[id-1], nil
}
