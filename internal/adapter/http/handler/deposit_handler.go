package handler

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"wager-arena/internal/adapter/http/dto"
	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
	"wager-arena/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderIPNSignature carries the provider's HMAC over the webhook body.
const HeaderIPNSignature = "x-nowpayments-sig"

// DepositHandler handles deposit creation, status reads and the provider
// webhook.
type DepositHandler struct {
	depositSvc ports.DepositService
	verifier   ports.IPNVerifier
	log        zerolog.Logger
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositSvc ports.DepositService, verifier ports.IPNVerifier, log zerolog.Logger) *DepositHandler {
	return &DepositHandler{depositSvc: depositSvc, verifier: verifier, log: log}
}

// CreateDeposit handles POST /api/v1/deposits.
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	accountID, ok := callerAccountID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return
	}

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	payment, err := h.depositSvc.CreateDeposit(c.Request.Context(), accountID, req.Amount, req.PayCurrency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentResponse(payment))
}

// GetPayment handles GET /api/v1/deposits/:id. Reading a non-terminal payment
// triggers a provider poll so a player watching the page sees fresh state; a
// gateway transient falls back to the stored view.
func (h *DepositHandler) GetPayment(c *gin.Context) {
	accountID, ok := callerAccountID(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthenticated())
		return
	}

	payment, err := h.depositSvc.GetPayment(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !payment.Status.IsTerminal() {
		refreshed, err := h.depositSvc.PollAndReconcile(c.Request.Context(), payment.ID)
		if err != nil {
			h.log.Warn().Err(err).Str("payment_id", payment.ID).Msg("provider poll failed, serving stored status")
		} else {
			payment = refreshed
		}
	}

	response.OK(c, toPaymentResponse(payment))
}

// Webhook handles POST /api/v1/payments/webhook. The provider retries until
// it sees a 2xx, so every structurally valid payload is acknowledged with 200
// even when it changes nothing.
func (h *DepositHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	if !h.verifier.Verify(body, c.GetHeader(HeaderIPNSignature)) {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("rejected webhook with bad signature")
		response.Error(c, apperror.ErrInvalidWebhookSignature())
		return
	}

	var req dto.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil || req.PaymentID == "" {
		response.Error(c, apperror.Validation("malformed webhook payload"))
		return
	}

	if _, err := h.depositSvc.RecordStatus(c.Request.Context(), req.PaymentID, req.PaymentStatus); err != nil {
		// A payment id we never issued is acknowledged so the provider
		// stops retrying; everything else is a real failure.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.ErrPaymentNotFound().Code {
			h.log.Warn().Str("payment_id", req.PaymentID).Msg("webhook for unknown payment")
			response.OK(c, gin.H{"acknowledged": true})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"acknowledged": true})
}

// toPaymentResponse converts domain.PendingPayment to DTO.
func toPaymentResponse(p *domain.PendingPayment) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		PaymentID:       p.ID,
		RequestedAmount: p.RequestedAmount,
		Status:          string(p.Status),
		PayAddress:      p.PayAddress,
		PayCurrency:     p.PayCurrency,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.ExpiresAt != nil {
		expires := p.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &expires
	}
	return resp
}
