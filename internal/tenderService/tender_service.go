package tendering

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"tender-dapp/internal/bidhistory"
	"tender-dapp/internal/contract"
	"tender-dapp/internal/models"
	"tender-dapp/internal/tendererrors"
	"tender-dapp/internal/view"
	"tender-dapp/utils"
)

const defaultLoadTimeout = 30 * time.Second

// maxTenderPrealloc bounds the list capacity taken from the contract counter
const maxTenderPrealloc = 1024

// Options configures a TenderService
type Options struct {
	// Official is the account allowed to create tenders and select winners
	Official common.Address
	// Publisher is notified after every state change. Nil disables events.
	Publisher Publisher
	// LoadTimeout bounds reloads triggered by account changes
	LoadTimeout time.Duration
}

// TenderService drives the tender workflow for the connected wallet account.
// The contract is the source of truth; the service keeps the last loaded
// tender list and the bids of the selected tender for rendering.
type TenderService struct {
	contract    contract.TenderContract
	wallet      Wallet
	history     bidhistory.Store
	official    common.Address
	publisher   Publisher
	loadTimeout time.Duration

	mu             sync.RWMutex
	connected      bool
	session        models.Session
	tenders        []models.Tender
	generation     uint64
	selectedTender uint64
	selectedBids   []models.Bid
	unsubscribe    func()
}

// NewTenderService creates a new TenderService instance
func NewTenderService(c contract.TenderContract, w Wallet, h bidhistory.Store, opts Options) *TenderService {
	if opts.Publisher == nil {
		opts.Publisher = noopPublisher{}
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = defaultLoadTimeout
	}
	return &TenderService{
		contract:    c,
		wallet:      w,
		history:     h,
		official:    opts.Official,
		publisher:   opts.Publisher,
		loadTimeout: opts.LoadTimeout,
		tenders:     []models.Tender{},
	}
}

// Connect requests the wallet accounts, derives the role of the first one and
// loads the tender list. Account switches are followed from then on.
func (s *TenderService) Connect(ctx context.Context) (models.Session, error) {
	accounts := s.wallet.RequestAccounts()
	if len(accounts) == 0 {
		return models.Session{}, fmt.Errorf("service: connect: %w", tendererrors.ErrNoAccounts)
	}

	session := s.sessionFor(accounts[0], accounts)

	s.mu.Lock()
	s.session = session
	s.connected = true
	subscribe := s.unsubscribe == nil
	s.mu.Unlock()

	if subscribe {
		unsubscribe := s.wallet.OnAccountsChanged(s.onAccountsChanged)
		s.mu.Lock()
		s.unsubscribe = unsubscribe
		s.mu.Unlock()
	}

	utils.Info("service: wallet connected", map[string]any{
		"account":     session.Account.Hex(),
		"is_official": session.IsOfficial,
		"accounts":    len(accounts),
	})
	s.publisher.Publish(models.Event{Type: models.EventSessionConnected, Account: session.Account.Hex()})

	if _, err := s.LoadTenders(ctx); err != nil {
		return session, err
	}
	return session, nil
}

// Close stops following account changes
func (s *TenderService) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Session returns the connected session
func (s *TenderService) Session() (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.connected {
		return models.Session{}, tendererrors.ErrNotConnected
	}
	session := s.session
	session.Accounts = slices.Clone(s.session.Accounts)
	return session, nil
}

// LoadTenders reads the tender counter and then every tender from 1 to the
// counter, replacing the local list. A load that completes after a newer load
// has started is discarded with ErrStaleLoad.
func (s *TenderService) LoadTenders(ctx context.Context) ([]models.Tender, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	count, err := s.contract.TenderCounter(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read tender counter: %w", err)
	}

	tenders := make([]models.Tender, 0, min(count, maxTenderPrealloc))
	for id := uint64(1); id <= count; id++ {
		tender, err := s.contract.GetTenderDetails(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("service: failed to load tender %d: %w", id, err)
		}
		tender.ID = id
		tenders = append(tenders, tender)
	}

	s.mu.Lock()
	if gen != s.generation {
		latest := s.generation
		s.mu.Unlock()
		utils.Warn("service: discarding stale tender load", map[string]any{"generation": gen, "latest": latest})
		return nil, fmt.Errorf("service: load %d: %w", gen, tendererrors.ErrStaleLoad)
	}
	s.tenders = tenders
	s.mu.Unlock()

	utils.Info("service: tenders loaded", map[string]any{"count": len(tenders), "generation": gen})
	s.publisher.Publish(models.Event{Type: models.EventTendersLoaded, TenderCount: len(tenders)})

	return slices.Clone(tenders), nil
}

// Tenders returns the last loaded tender list
func (s *TenderService) Tenders() []models.Tender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tenders)
}

// CreateTender publishes a new tender from the connected account
func (s *TenderService) CreateTender(ctx context.Context, description string, minBid *big.Int) error {
	account, err := s.account()
	if err != nil {
		return err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("service: %w - empty description", tendererrors.ErrInvalidTender)
	}
	if minBid == nil || minBid.Sign() < 0 {
		return fmt.Errorf("service: %w - negative minimum bid", tendererrors.ErrInvalidTender)
	}

	if err := s.contract.CreateTender(ctx, account, description, minBid); err != nil {
		return fmt.Errorf("service: failed to create tender: %w", err)
	}

	s.publisher.Publish(models.Event{Type: models.EventTenderCreated, Account: account.Hex()})
	s.reload(ctx)
	return nil
}

// SubmitBid places a bid from the connected account. An account may bid once
// per tender.
func (s *TenderService) SubmitBid(ctx context.Context, tenderID uint64, amount *big.Int) error {
	account, err := s.account()
	if err != nil {
		return err
	}

	if tenderID == 0 {
		return fmt.Errorf("service: %w - tender id 0", tendererrors.ErrTenderNotFound)
	}
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", tendererrors.ErrInvalidBid)
	}
	if s.history.HasBid(tenderID, account) {
		return fmt.Errorf("service: tender %d: %w", tenderID, tendererrors.ErrAlreadyBid)
	}

	if err := s.contract.SubmitBid(ctx, account, tenderID, amount); err != nil {
		if errors.Is(err, tendererrors.ErrAlreadyBid) {
			s.history.Record(tenderID, account)
		}
		return fmt.Errorf("service: failed to submit bid on tender %d: %w", tenderID, err)
	}
	s.history.Record(tenderID, account)

	s.publisher.Publish(models.Event{Type: models.EventBidSubmitted, Account: account.Hex(), TenderID: tenderID})
	s.reload(ctx)
	return nil
}

// ViewBids fetches the bids of a tender, optionally ordered by amount, and
// remembers them as the selected tender's bids
func (s *TenderService) ViewBids(ctx context.Context, tenderID uint64, sorted bool) ([]models.Bid, error) {
	if tenderID == 0 {
		return nil, fmt.Errorf("service: %w - tender id 0", tendererrors.ErrTenderNotFound)
	}

	raw, err := s.contract.GetBids(ctx, tenderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for tender %d: %w", tenderID, err)
	}

	bids := make([]models.Bid, 0, len(raw))
	for _, b := range raw {
		bids = append(bids, models.Bid{Bidder: b.Bidder, Amount: amountOf(b)})
	}
	if sorted {
		bids = SortByAmount(bids)
	}

	s.mu.Lock()
	s.selectedTender = tenderID
	s.selectedBids = bids
	s.mu.Unlock()

	return slices.Clone(bids), nil
}

// SelectWinner closes an open tender in favour of bidder. Only the official
// may select a winner. A failed write leaves the tender list untouched.
func (s *TenderService) SelectWinner(ctx context.Context, tenderID uint64, bidder common.Address) error {
	s.mu.RLock()
	connected, session := s.connected, s.session
	tender, found := findTender(s.tenders, tenderID)
	s.mu.RUnlock()

	if !connected {
		return tendererrors.ErrNotConnected
	}
	if !session.IsOfficial {
		return fmt.Errorf("service: select winner as %s: %w", session.Account.Hex(), tendererrors.ErrNotOfficial)
	}
	if !found {
		return fmt.Errorf("service: select winner: tender %d: %w", tenderID, tendererrors.ErrTenderNotFound)
	}
	if !tender.IsOpen {
		return fmt.Errorf("service: select winner: tender %d: %w", tenderID, tendererrors.ErrTenderClosed)
	}
	if bidder == (common.Address{}) {
		return fmt.Errorf("service: %w - zero bidder address", tendererrors.ErrInvalidAddress)
	}

	if err := s.contract.SelectWinner(ctx, session.Account, tenderID, bidder); err != nil {
		utils.Error("service: winner selection failed", map[string]any{
			"tender_id": tenderID,
			"bidder":    bidder.Hex(),
			"error":     err.Error(),
		})
		return fmt.Errorf("service: %w for tender %d: %w", tendererrors.ErrWinnerSelection, tenderID, err)
	}

	s.mu.Lock()
	s.selectedTender = 0
	s.selectedBids = nil
	s.mu.Unlock()

	s.publisher.Publish(models.Event{Type: models.EventWinnerSelected, Account: bidder.Hex(), TenderID: tenderID})
	s.reload(ctx)
	return nil
}

// SwitchAccount changes the wallet's active account. The change reaches the
// service through the wallet's account listener.
func (s *TenderService) SwitchAccount(ctx context.Context, addr common.Address) (models.Session, error) {
	if err := s.wallet.SwitchAccount(addr); err != nil {
		return models.Session{}, fmt.Errorf("service: switch account: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}
	return s.Session()
}

// HandleAccountChanged recomputes the role and reloads the tenders. The
// session follows the wallet's active account at the time it is applied, so
// a notification overtaken by a later switch never rolls the session back.
func (s *TenderService) HandleAccountChanged(ctx context.Context, addr common.Address) {
	accounts := s.wallet.RequestAccounts()

	s.mu.Lock()
	active := s.wallet.Active()
	session := s.sessionFor(active, accounts)
	s.session = session
	s.connected = true
	s.mu.Unlock()

	if active != addr {
		utils.Warn("service: account notification superseded", map[string]any{
			"notified": addr.Hex(),
			"active":   active.Hex(),
		})
	}
	utils.Info("service: account changed", map[string]any{
		"account":     active.Hex(),
		"is_official": session.IsOfficial,
	})
	s.publisher.Publish(models.Event{Type: models.EventAccountChanged, Account: active.Hex()})
	s.reload(ctx)
}

// Panel renders the view model for the connected account
func (s *TenderService) Panel() (view.Panel, error) {
	s.mu.RLock()
	if !s.connected {
		s.mu.RUnlock()
		return view.Panel{}, tendererrors.ErrNotConnected
	}
	state := view.State{
		Session:        s.session,
		Tenders:        slices.Clone(s.tenders),
		SelectedTender: s.selectedTender,
		Bids:           slices.Clone(s.selectedBids),
	}
	s.mu.RUnlock()

	state.BidPlaced = make(map[uint64]bool, len(state.Tenders))
	for _, t := range state.Tenders {
		if s.history.HasBid(t.ID, state.Session.Account) {
			state.BidPlaced[t.ID] = true
		}
	}
	return view.Build(state), nil
}

func (s *TenderService) onAccountsChanged(addr common.Address) {
	ctx, cancel := context.WithTimeout(context.Background(), s.loadTimeout)
	defer cancel()
	s.HandleAccountChanged(ctx, addr)
}

// reload refreshes the tender list after a successful action. The action has
// already taken effect, so a failed reload is only logged.
func (s *TenderService) reload(ctx context.Context) {
	if _, err := s.LoadTenders(ctx); err != nil && !errors.Is(err, tendererrors.ErrStaleLoad) {
		utils.Warn("service: failed to reload tenders", map[string]any{"error": err.Error()})
	}
}

func (s *TenderService) account() (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.connected {
		return common.Address{}, tendererrors.ErrNotConnected
	}
	return s.session.Account, nil
}

func (s *TenderService) sessionFor(addr common.Address, accounts []common.Address) models.Session {
	return models.Session{
		Account:    addr,
		IsOfficial: IsOfficial(addr, s.official),
		Accounts:   slices.Clone(accounts),
	}
}

// IsOfficial reports whether account is the official address, ignoring hex case
func IsOfficial(account, official common.Address) bool {
	if official == (common.Address{}) {
		return false
	}
	return strings.EqualFold(account.Hex(), official.Hex())
}

func findTender(tenders []models.Tender, id uint64) (models.Tender, bool) {
	for _, t := range tenders {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tender{}, false
}
