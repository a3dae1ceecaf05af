package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Role of the connected account
type Role string

const (
	RoleOfficial Role = "official"
	RoleBidder   Role = "bidder"
)

// Tender is a read-through projection of a tender held by the contract
type Tender struct {
	ID          uint64         `json:"id"`
	Description string         `json:"description"`
	MinBid      *big.Int       `json:"min_bid"`
	IsOpen      bool           `json:"is_open"`
	Winner      common.Address `json:"winner"`
}

// HasWinner reports whether the winner differs from the zero address sentinel
func (t Tender) HasWinner() bool {
	return t.Winner != (common.Address{})
}

// Bid is an amount offered by an account against a tender
type Bid struct {
	Bidder common.Address `json:"bidder"`
	Amount *big.Int       `json:"amount"`
}

// Session describes the connected wallet account
type Session struct {
	Account    common.Address   `json:"account"`
	IsOfficial bool             `json:"is_official"`
	Accounts   []common.Address `json:"accounts"`
}

// Role returns the panel role for the session
func (s Session) Role() Role {
	if s.IsOfficial {
		return RoleOfficial
	}
	return RoleBidder
}

// Event types pushed to realtime subscribers
const (
	EventSessionConnected = "session_connected"
	EventAccountChanged   = "account_changed"
	EventTendersLoaded    = "tenders_loaded"
	EventTenderCreated    = "tender_created"
	EventBidSubmitted     = "bid_submitted"
	EventWinnerSelected   = "winner_selected"
)

// Event notifies subscribers that the panels should be re-rendered
type Event struct {
	Type        string `json:"type"`
	Account     string `json:"account,omitempty"`
	TenderID    uint64 `json:"tender_id,omitempty"`
	TenderCount int    `json:"tender_count,omitempty"`
}
