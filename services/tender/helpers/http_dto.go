package helpers

// Request/Response DTOs. Amounts travel as base-10 strings in wei.
type CreateTenderRequest struct {
	Description string `json:"description" form:"description" binding:"required"`
	MinBid      string `json:"min_bid" form:"min_bid" binding:"required,numeric"`
}

type SubmitBidRequest struct {
	Amount string `json:"amount" form:"amount" binding:"required,numeric"`
}

type SelectWinnerRequest struct {
	Bidder string `json:"bidder" form:"bidder" binding:"required"`
}

type SwitchAccountRequest struct {
	Account string `json:"account" binding:"required"`
}

type TenderResponse struct {
	ID          uint64 `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	MinBid      string `json:"min_bid" yaml:"min_bid"`
	IsOpen      bool   `json:"is_open" yaml:"is_open"`
	Status      string `json:"status" yaml:"status"`
	Winner      string `json:"winner" yaml:"winner"`
	HasWinner   bool   `json:"has_winner" yaml:"has_winner"`
}

type BidResponse struct {
	Bidder string `json:"bidder"`
	Amount string `json:"amount"`
}

type BidsResponse struct {
	TenderID uint64        `json:"tender_id"`
	Sorted   bool          `json:"sorted"`
	Bids     []BidResponse `json:"bids"`
}

type SessionResponse struct {
	Account    string   `json:"account" yaml:"account"`
	IsOfficial bool     `json:"is_official" yaml:"is_official"`
	Role       string   `json:"role" yaml:"role"`
	Accounts   []string `json:"accounts" yaml:"accounts"`
}
