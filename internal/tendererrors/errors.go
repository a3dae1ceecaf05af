package tendererrors

import "errors"

// Ledger-level errors
var (
	ErrTenderNotFound      = errors.New("tender not found")
	ErrContractCall        = errors.New("contract call failed")
	ErrTxReverted          = errors.New("transaction reverted")
	ErrUnsupportedContract = errors.New("contract interface not supported")
	ErrNotAuthorized       = errors.New("caller is not authorized")
)

// Wallet errors
var (
	ErrUnknownAccount = errors.New("account not available in wallet")
	ErrNoAccounts     = errors.New("wallet has no accounts")
)

// business logic errors
var (
	ErrInvalidTender   = errors.New("invalid tender")
	ErrInvalidBid      = errors.New("invalid bid")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrBidTooLow       = errors.New("bid amount below minimum")
	ErrAlreadyBid      = errors.New("you can only bid once on a particular tender")
	ErrTenderClosed    = errors.New("tender is closed")
	ErrNotOfficial     = errors.New("connected account is not the official")
	ErrNotABidder      = errors.New("address has not bid on tender")
	ErrWinnerSelection = errors.New("failed to select winner")
	ErrStaleLoad       = errors.New("tender load superseded by a newer load")
	ErrNotConnected    = errors.New("session not connected")
)
