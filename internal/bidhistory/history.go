package bidhistory

import (
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Store tracks which accounts are known locally to have bid on a tender.
// It pre-empts redundant bids only; the contract stays authoritative.
type Store interface {
	Record(tenderID uint64, account common.Address)
	HasBid(tenderID uint64, account common.Address) bool
	BiddersFor(tenderID uint64) []common.Address
}

// MemoryStore is a concurrency-safe in-memory implementation of Store
type MemoryStore struct {
	mu      sync.RWMutex
	bidders map[uint64]map[common.Address]struct{} // key: tenderID -> value: set of accounts
}

// NewMemoryStore creates an empty bid history
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bidders: make(map[uint64]map[common.Address]struct{}),
	}
}

// Record marks account as having bid on tenderID. Recording twice is a no-op.
func (s *MemoryStore) Record(tenderID uint64, account common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.bidders[tenderID]
	if !ok {
		set = make(map[common.Address]struct{})
		s.bidders[tenderID] = set
	}
	set[account] = struct{}{}
}

// HasBid reports whether account is known to have bid on tenderID
func (s *MemoryStore) HasBid(tenderID uint64, account common.Address) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.bidders[tenderID][account]
	return ok
}

// BiddersFor returns the accounts recorded for tenderID, ordered by address
func (s *MemoryStore) BiddersFor(tenderID uint64) []common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.bidders[tenderID]
	out := make([]common.Address, 0, len(set))
	for addr := range set {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}
