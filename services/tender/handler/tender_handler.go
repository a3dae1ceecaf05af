package handler

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"tender-dapp/internal/models"
	"tender-dapp/internal/tendererrors"
	"tender-dapp/internal/view"
	"tender-dapp/services/tender/helpers"
	"tender-dapp/utils"
)

//go:generate mockgen -source=tender_handler.go -destination=mock_tender_handler.go -package=handler

type TenderServiceInterface interface {
	Session() (models.Session, error)
	SwitchAccount(ctx context.Context, addr common.Address) (models.Session, error)
	LoadTenders(ctx context.Context) ([]models.Tender, error)
	Tenders() []models.Tender
	CreateTender(ctx context.Context, description string, minBid *big.Int) error
	SubmitBid(ctx context.Context, tenderID uint64, amount *big.Int) error
	ViewBids(ctx context.Context, tenderID uint64, sorted bool) ([]models.Bid, error)
	SelectWinner(ctx context.Context, tenderID uint64, bidder common.Address) error
	Panel() (view.Panel, error)
}

type TenderHandler struct {
	service TenderServiceInterface
}

func NewTenderHandler(service TenderServiceInterface) *TenderHandler {
	return &TenderHandler{service: service}
}

// RequireOfficial rejects requests unless the connected account is the official
func (h *TenderHandler) RequireOfficial(c *gin.Context) {
	session, err := h.service.Session()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.AbortJSONError(c, status, err, message)
		return
	}
	if !session.IsOfficial {
		err := fmt.Errorf("%s: %w", session.Account.Hex(), tendererrors.ErrNotOfficial)
		status, message := helpers.MapErrorToHTTP(err)
		utils.AbortJSONError(c, status, err, message)
		utils.Warn("RequireOfficial: rejected non-official account", map[string]any{
			"account": session.Account.Hex(),
			"path":    c.FullPath(),
		})
		return
	}
	c.Next()
}

// PanelPageHandler handles GET /
func (h *TenderHandler) PanelPageHandler(c *gin.Context) {
	panel, err := h.service.Panel()
	if err != nil {
		helpers.HandleServiceError(c, "PanelPageHandler", err, nil)
		return
	}
	c.HTML(http.StatusOK, view.TemplateName, panel)
}

// PanelHandler handles GET /panel
func (h *TenderHandler) PanelHandler(c *gin.Context) {
	panel, err := h.service.Panel()
	if err != nil {
		helpers.HandleServiceError(c, "PanelHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, panel, "panel rendered successfully")
}

// SessionHandler handles GET /session
func (h *TenderHandler) SessionHandler(c *gin.Context) {
	session, err := h.service.Session()
	if err != nil {
		helpers.HandleServiceError(c, "SessionHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewSessionResponse(session), "session retrieved successfully")
}

// SwitchAccountHandler handles PUT /session/account
func (h *TenderHandler) SwitchAccountHandler(c *gin.Context) {
	var req helpers.SwitchAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SwitchAccountHandler", err)
		return
	}

	addr, err := helpers.ParseAddress(req.Account)
	if err != nil {
		helpers.HandleServiceError(c, "SwitchAccountHandler", err, map[string]any{"account": req.Account})
		return
	}

	session, err := h.service.SwitchAccount(c.Request.Context(), addr)
	if err != nil {
		helpers.HandleServiceError(c, "SwitchAccountHandler", err, map[string]any{"account": req.Account})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSessionResponse(session), "account switched successfully")
	helpers.LogSuccess("SwitchAccountHandler", "account switched successfully", map[string]any{
		"account":     session.Account.Hex(),
		"is_official": session.IsOfficial,
	})
}

// ListTendersHandler handles GET /tenders
func (h *TenderHandler) ListTendersHandler(c *gin.Context) {
	reload, _ := strconv.ParseBool(c.DefaultQuery("reload", "false"))

	tenders := h.service.Tenders()
	if reload {
		var err error
		tenders, err = h.service.LoadTenders(c.Request.Context())
		if err != nil {
			helpers.HandleServiceError(c, "ListTendersHandler", err, nil)
			return
		}
	}

	resp := make([]helpers.TenderResponse, 0, len(tenders))
	for _, t := range tenders {
		resp = append(resp, helpers.NewTenderResponse(t))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "tenders retrieved successfully")
	helpers.LogSuccess("ListTendersHandler", "tenders retrieved successfully", map[string]any{
		"count":  len(resp),
		"reload": reload,
	})
}

// CreateTenderHandler handles POST /tenders
func (h *TenderHandler) CreateTenderHandler(c *gin.Context) {
	var req helpers.CreateTenderRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "CreateTenderHandler", err)
		return
	}

	minBid, err := helpers.ParseWei(req.MinBid, tendererrors.ErrInvalidTender)
	if err != nil {
		helpers.HandleServiceError(c, "CreateTenderHandler", err, map[string]any{"min_bid": req.MinBid})
		return
	}

	if err := h.service.CreateTender(c.Request.Context(), req.Description, minBid); err != nil {
		helpers.HandleServiceError(c, "CreateTenderHandler", err, map[string]any{
			"description": req.Description,
			"min_bid":     req.MinBid,
		})
		return
	}

	if helpers.WantsPanel(c) {
		helpers.RedirectToPanel(c)
	} else {
		utils.JSONResponse(c, http.StatusCreated, gin.H{"description": req.Description, "min_bid": minBid.String()}, "tender created successfully")
	}
	helpers.LogSuccess("CreateTenderHandler", "tender created successfully", map[string]any{
		"description": req.Description,
		"min_bid":     minBid.String(),
	})
}

// ViewBidsHandler handles GET /tenders/:tender_id/bids
func (h *TenderHandler) ViewBidsHandler(c *gin.Context) {
	tenderID, err := helpers.ParseTenderID(c)
	if err != nil {
		helpers.HandleServiceError(c, "ViewBidsHandler", err, nil)
		return
	}
	sorted := c.Query("sort") == "amount"

	bids, err := h.service.ViewBids(c.Request.Context(), tenderID, sorted)
	if err != nil {
		helpers.HandleServiceError(c, "ViewBidsHandler", err, map[string]any{"tender_id": tenderID})
		return
	}

	resp := helpers.BidsResponse{TenderID: tenderID, Sorted: sorted, Bids: make([]helpers.BidResponse, 0, len(bids))}
	for _, b := range bids {
		resp.Bids = append(resp.Bids, helpers.NewBidResponse(b))
	}

	if helpers.WantsPanel(c) {
		helpers.RedirectToPanel(c)
	} else {
		utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	}
	helpers.LogSuccess("ViewBidsHandler", "bids retrieved successfully", map[string]any{
		"tender_id": tenderID,
		"count":     len(bids),
		"sorted":    sorted,
	})
}

// SubmitBidHandler handles POST /tenders/:tender_id/bids
func (h *TenderHandler) SubmitBidHandler(c *gin.Context) {
	tenderID, err := helpers.ParseTenderID(c)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitBidHandler", err, nil)
		return
	}

	var req helpers.SubmitBidRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	amount, err := helpers.ParseWei(req.Amount, tendererrors.ErrInvalidBid)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitBidHandler", err, map[string]any{"tender_id": tenderID, "amount": req.Amount})
		return
	}

	if err := h.service.SubmitBid(c.Request.Context(), tenderID, amount); err != nil {
		helpers.HandleServiceError(c, "SubmitBidHandler", err, map[string]any{
			"tender_id": tenderID,
			"amount":    req.Amount,
		})
		return
	}

	if helpers.WantsPanel(c) {
		helpers.RedirectToPanel(c)
	} else {
		utils.JSONResponse(c, http.StatusCreated, gin.H{"tender_id": tenderID, "amount": amount.String()}, "bid submitted successfully")
	}
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"tender_id": tenderID,
		"amount":    amount.String(),
	})
}

// SelectWinnerHandler handles POST /tenders/:tender_id/winner
func (h *TenderHandler) SelectWinnerHandler(c *gin.Context) {
	tenderID, err := helpers.ParseTenderID(c)
	if err != nil {
		helpers.HandleServiceError(c, "SelectWinnerHandler", err, nil)
		return
	}

	var req helpers.SelectWinnerRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.HandleBindError(c, "SelectWinnerHandler", err)
		return
	}

	bidder, err := helpers.ParseAddress(req.Bidder)
	if err != nil {
		helpers.HandleServiceError(c, "SelectWinnerHandler", err, map[string]any{"tender_id": tenderID, "bidder": req.Bidder})
		return
	}

	if err := h.service.SelectWinner(c.Request.Context(), tenderID, bidder); err != nil {
		helpers.HandleServiceError(c, "SelectWinnerHandler", err, map[string]any{
			"tender_id": tenderID,
			"bidder":    bidder.Hex(),
		})
		return
	}

	message := fmt.Sprintf("winner selected successfully for tender ID %d", tenderID)
	if helpers.WantsPanel(c) {
		helpers.RedirectToPanel(c)
	} else {
		utils.JSONResponse(c, http.StatusOK, gin.H{"tender_id": tenderID, "winner": bidder.Hex()}, message)
	}
	helpers.LogSuccess("SelectWinnerHandler", "winner selected successfully", map[string]any{
		"tender_id": tenderID,
		"winner":    bidder.Hex(),
	})
}
