package helpers

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"tender-dapp/internal/models"
	"tender-dapp/internal/tendererrors"
	"tender-dapp/internal/view"
	"tender-dapp/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to a status and message and sends it
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
		return
	}
	utils.Warn(handlerName+": request rejected", ctx)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, tendererrors.ErrWinnerSelection):
		return http.StatusBadGateway, "failed to select winner"
	case errors.Is(err, tendererrors.ErrTenderNotFound):
		return http.StatusNotFound, "tender not found"
	case errors.Is(err, tendererrors.ErrInvalidTender):
		return http.StatusBadRequest, "invalid tender details"
	case errors.Is(err, tendererrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, tendererrors.ErrInvalidAddress):
		return http.StatusBadRequest, "invalid address"
	case errors.Is(err, tendererrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, tendererrors.ErrAlreadyBid):
		return http.StatusConflict, tendererrors.ErrAlreadyBid.Error()
	case errors.Is(err, tendererrors.ErrTenderClosed):
		return http.StatusConflict, "tender is closed"
	case errors.Is(err, tendererrors.ErrNotABidder):
		return http.StatusConflict, "address has not bid on tender"
	case errors.Is(err, tendererrors.ErrStaleLoad):
		return http.StatusConflict, "tender list changed, retry"
	case errors.Is(err, tendererrors.ErrNotOfficial), errors.Is(err, tendererrors.ErrNotAuthorized):
		return http.StatusForbidden, "only the official can perform this action"
	case errors.Is(err, tendererrors.ErrUnknownAccount):
		return http.StatusNotFound, "account not available in wallet"
	case errors.Is(err, tendererrors.ErrNotConnected), errors.Is(err, tendererrors.ErrNoAccounts):
		return http.StatusServiceUnavailable, "wallet not connected"
	case errors.Is(err, tendererrors.ErrTxReverted):
		return http.StatusUnprocessableEntity, "transaction reverted"
	case errors.Is(err, tendererrors.ErrContractCall), errors.Is(err, tendererrors.ErrUnsupportedContract):
		return http.StatusBadGateway, "contract call failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseTenderID reads the :tender_id path parameter
func ParseTenderID(c *gin.Context) (uint64, error) {
	raw := c.Param("tender_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w - bad tender id %q", tendererrors.ErrTenderNotFound, raw)
	}
	return id, nil
}

// ParseWei parses a base-10 wei amount
func ParseWei(raw string, kind error) (*big.Int, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w - amount %q is not a whole number of wei", kind, raw)
	}
	return v, nil
}

// ParseAddress parses a hex account address
func ParseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w - %q", tendererrors.ErrInvalidAddress, raw)
	}
	return common.HexToAddress(raw), nil
}

// NewTenderResponse converts a tender for JSON output
func NewTenderResponse(t models.Tender) TenderResponse {
	status := view.StatusClosed
	if t.IsOpen {
		status = view.StatusOpen
	}
	minBid := "0"
	if t.MinBid != nil {
		minBid = t.MinBid.String()
	}
	return TenderResponse{
		ID:          t.ID,
		Description: t.Description,
		MinBid:      minBid,
		IsOpen:      t.IsOpen,
		Status:      status,
		Winner:      t.Winner.Hex(),
		HasWinner:   t.HasWinner(),
	}
}

// NewBidResponse converts a bid for JSON output
func NewBidResponse(b models.Bid) BidResponse {
	bidder := view.MissingBidder
	if b.Bidder != (common.Address{}) {
		bidder = b.Bidder.Hex()
	}
	amount := "0"
	if b.Amount != nil {
		amount = b.Amount.String()
	}
	return BidResponse{Bidder: bidder, Amount: amount}
}

// NewSessionResponse converts a session for JSON output
func NewSessionResponse(s models.Session) SessionResponse {
	accounts := make([]string, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		accounts = append(accounts, a.Hex())
	}
	return SessionResponse{
		Account:    s.Account.Hex(),
		IsOfficial: s.IsOfficial,
		Role:       string(s.Role()),
		Accounts:   accounts,
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// PanelView is the query value that sends a successful request back to the HTML panel
const PanelView = "panel"

// WantsPanel reports whether the request came from the HTML panel: a form
// post or a link carrying ?view=panel
func WantsPanel(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEPOSTForm || c.Query("view") == PanelView
}

// RedirectToPanel sends the browser back to the rendered panel
func RedirectToPanel(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
