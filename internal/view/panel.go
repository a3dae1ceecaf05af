package view

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"tender-dapp/internal/models"
)

// Display values shared by both panels
const (
	StatusOpen    = "Open"
	StatusClosed  = "Closed"
	NoWinner      = "No winner yet"
	MissingBidder = "N/A"
)

// State is everything a panel is rendered from
type State struct {
	Session        models.Session
	Tenders        []models.Tender
	SelectedTender uint64
	Bids           []models.Bid
	// BidPlaced lists the tenders the active account is known to have bid on
	BidPlaced map[uint64]bool
}

// Panel is the view model for the connected account. Exactly one of Official
// and Bidder is set.
type Panel struct {
	Role     models.Role    `json:"role"`
	Account  string         `json:"account"`
	Official *OfficialPanel `json:"official,omitempty"`
	Bidder   *BidderPanel   `json:"bidder,omitempty"`
}

// OfficialPanel lists every tender with its winner and the bids of the
// selected tender
type OfficialPanel struct {
	Tenders        []TenderRow `json:"tenders"`
	SelectedTender uint64      `json:"selected_tender,omitempty"`
	SelectedOpen   bool        `json:"selected_open"`
	Bids           []BidRow    `json:"bids"`
}

// BidderPanel lists every tender with a bid input where bidding is possible
type BidderPanel struct {
	Tenders []TenderRow `json:"tenders"`
}

type TenderRow struct {
	ID           uint64 `json:"id"`
	Description  string `json:"description"`
	MinBid       string `json:"min_bid"`
	Status       string `json:"status"`
	Winner       string `json:"winner,omitempty"`
	ShowBidInput bool   `json:"show_bid_input"`
}

type BidRow struct {
	Bidder    string `json:"bidder"`
	Amount    string `json:"amount"`
	CanSelect bool   `json:"can_select"`
}

// Build renders the panel matching the session role
func Build(s State) Panel {
	p := Panel{
		Role:    s.Session.Role(),
		Account: s.Session.Account.Hex(),
	}
	if s.Session.IsOfficial {
		p.Official = buildOfficial(s)
	} else {
		p.Bidder = buildBidder(s)
	}
	return p
}

func buildOfficial(s State) *OfficialPanel {
	panel := &OfficialPanel{
		Tenders:        make([]TenderRow, 0, len(s.Tenders)),
		SelectedTender: s.SelectedTender,
		Bids:           make([]BidRow, 0, len(s.Bids)),
	}

	selectedOpen := false
	for _, t := range s.Tenders {
		row := tenderRow(t)
		row.Winner = winnerLabel(t)
		panel.Tenders = append(panel.Tenders, row)
		if t.ID == s.SelectedTender {
			selectedOpen = t.IsOpen
		}
	}
	panel.SelectedOpen = selectedOpen

	for _, b := range s.Bids {
		panel.Bids = append(panel.Bids, BidRow{
			Bidder:    bidderLabel(b.Bidder),
			Amount:    amountLabel(b.Amount),
			CanSelect: selectedOpen && b.Bidder != (common.Address{}),
		})
	}
	return panel
}

func buildBidder(s State) *BidderPanel {
	panel := &BidderPanel{Tenders: make([]TenderRow, 0, len(s.Tenders))}
	for _, t := range s.Tenders {
		row := tenderRow(t)
		row.ShowBidInput = t.IsOpen && !s.BidPlaced[t.ID]
		panel.Tenders = append(panel.Tenders, row)
	}
	return panel
}

func tenderRow(t models.Tender) TenderRow {
	status := StatusClosed
	if t.IsOpen {
		status = StatusOpen
	}
	return TenderRow{
		ID:          t.ID,
		Description: t.Description,
		MinBid:      amountLabel(t.MinBid),
		Status:      status,
	}
}

func winnerLabel(t models.Tender) string {
	if !t.HasWinner() {
		return NoWinner
	}
	return t.Winner.Hex()
}

func bidderLabel(addr common.Address) string {
	if addr == (common.Address{}) {
		return MissingBidder
	}
	return addr.Hex()
}

func amountLabel(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
