package handler

import (
	"time"

	"wager-arena/internal/adapter/http/dto"
	"wager-arena/internal/adapter/http/middleware"
	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
	"wager-arena/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles the player-facing wager session endpoints.
type SessionHandler struct {
	sessionSvc ports.SessionService
	ledger     ports.LedgerService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionSvc ports.SessionService, ledger ports.LedgerService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc, ledger: ledger}
}

// errorWithCurrentBalance rejects a balance-affecting operation, attaching the
// caller's unchanged balance so the client can verify no funds moved.
func (h *SessionHandler) errorWithCurrentBalance(c *gin.Context, accountID string, err error) {
	balance, berr := h.ledger.GetBalance(c.Request.Context(), accountID)
	if berr != nil {
		response.Error(c, err)
		return
	}
	response.ErrorWithBalance(c, err, toBalanceResponse(balance))
}

// Start handles POST /api/v1/sessions.
func (h *SessionHandler) Start(c *gin.Context) {
	accountID, ok := callerAccountID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return
	}

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	session, balance, err := h.sessionSvc.Start(c.Request.Context(), accountID, req.Stake)
	if err != nil {
		h.errorWithCurrentBalance(c, accountID, err)
		return
	}

	resp := toSessionResponse(session)
	resp.Balance = toBalanceResponse(balance)
	response.Created(c, resp)
}

// Get handles GET /api/v1/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	accountID, ok := callerAccountID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return
	}

	session, err := h.sessionSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	// Players only ever see their own sessions.
	if session.AccountID != accountID {
		response.Error(c, apperror.ErrSessionNotFound())
		return
	}

	response.OK(c, toSessionResponse(session))
}

// CashOut handles POST /api/v1/sessions/:id/cashout.
func (h *SessionHandler) CashOut(c *gin.Context) {
	accountID, ok := callerAccountID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return
	}

	sessionID := c.Param("id")
	session, err := h.sessionSvc.Get(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if session.AccountID != accountID {
		response.Error(c, apperror.ErrSessionNotFound())
		return
	}

	receipt, balance, err := h.sessionSvc.CashOut(c.Request.Context(), sessionID)
	if err != nil {
		h.errorWithCurrentBalance(c, accountID, err)
		return
	}

	response.OK(c, dto.CashoutResponse{
		SessionID:  receipt.SessionID,
		GrossValue: receipt.GrossValue,
		Fee:        receipt.Fee,
		NetAmount:  receipt.NetAmount,
		ROI:        receipt.ROI,
		Balance:    *toBalanceResponse(balance),
	})
}

// ReportValue handles POST /api/v1/engine/sessions/:id/value.
func (h *SessionHandler) ReportValue(c *gin.Context) {
	var req dto.ReportValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.sessionSvc.ReportValue(c.Request.Context(), c.Param("id"), *req.Value); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"acknowledged": true})
}

// EndSession handles POST /api/v1/engine/sessions/:id/end.
func (h *SessionHandler) EndSession(c *gin.Context) {
	var req dto.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	reason, ok := domain.ParseEndReason(req.Reason)
	if !ok {
		response.Error(c, apperror.Validation("unknown end reason"))
		return
	}

	if err := h.sessionSvc.Forfeit(c.Request.Context(), c.Param("id"), reason); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"acknowledged": true})
}

// callerAccountID pulls the authenticated account id set by the JWT middleware.
func callerAccountID(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// toSessionResponse converts domain.Session to DTO.
func toSessionResponse(s *domain.Session) dto.SessionResponse {
	resp := dto.SessionResponse{
		SessionID:    s.ID,
		AccountID:    s.AccountID,
		Stake:        s.Stake,
		CurrentValue: s.CurrentValue,
		State:        string(s.State),
		OpenedAt:     s.OpenedAt.Format(time.RFC3339),
	}
	if s.ClosedAt != nil {
		closed := s.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &closed
	}
	return resp
}

// toBalanceResponse converts domain.Balance to DTO.
func toBalanceResponse(b domain.Balance) *dto.BalanceResponse {
	return &dto.BalanceResponse{
		Available: b.Available,
		Locked:    b.Locked,
		Total:     b.Available + b.Locked,
	}
}
