package handler

import (
	"strconv"
	"time"

	"wager-arena/internal/adapter/http/dto"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
	"wager-arena/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles balance and ledger audit endpoints.
type AccountHandler struct {
	ledgerSvc ports.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledgerSvc ports.LedgerService) *AccountHandler {
	return &AccountHandler{ledgerSvc: ledgerSvc}
}

// GetBalance handles GET /api/v1/accounts/balance.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountID, ok := callerAccountID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return
	}

	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBalanceResponse(balance))
}

// ListEntries handles GET /api/v1/accounts/entries.
func (h *AccountHandler) ListEntries(c *gin.Context) {
	accountID, ok := callerAccountID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.ledgerSvc.ListEntries(c.Request.Context(), accountID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.EntryResponse{
			ID:        e.ID.String(),
			Kind:      string(e.Kind),
			Amount:    e.Amount,
			SessionID: e.SessionID,
			PaymentID: e.PaymentID,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}

	response.OK(c, dto.EntryListResponse{Items: items})
}
