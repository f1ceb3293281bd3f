package dto

// StartSessionRequest is the request body for starting a wager session.
type StartSessionRequest struct {
	Stake int64 `json:"stake" binding:"required,gt=0"`
}

// ReportValueRequest is the engine's session value update.
type ReportValueRequest struct {
	Value *int64 `json:"value" binding:"required"`
}

// EndSessionRequest is the engine's end-of-session notification.
type EndSessionRequest struct {
	Reason string `json:"reason" binding:"required,safe_id"`
}

// CreateDepositRequest is the request body for initiating a deposit.
type CreateDepositRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	PayCurrency string `json:"pay_currency" binding:"required,min=2,max=10,safe_id"`
}

// WebhookRequest mirrors the payment provider's IPN payload. Only the two
// fields the reconciler needs are bound; the raw body is what gets verified.
type WebhookRequest struct {
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
}

// BalanceResponse is the account balance view.
type BalanceResponse struct {
	Available int64 `json:"available"`
	Locked    int64 `json:"locked"`
	Total     int64 `json:"total"`
}

// SessionResponse is the wager session view.
type SessionResponse struct {
	SessionID    string           `json:"session_id"`
	AccountID    string           `json:"account_id"`
	Stake        int64            `json:"stake"`
	CurrentValue int64            `json:"current_value"`
	State        string           `json:"state"`
	OpenedAt     string           `json:"opened_at"`
	ClosedAt     *string          `json:"closed_at,omitempty"`
	Balance      *BalanceResponse `json:"balance,omitempty"`
}

// CashoutResponse is the cash-out receipt plus the resulting balance.
type CashoutResponse struct {
	SessionID  string          `json:"session_id"`
	GrossValue int64           `json:"gross_value"`
	Fee        int64           `json:"fee"`
	NetAmount  int64           `json:"net_amount"`
	ROI        float64         `json:"roi"`
	Balance    BalanceResponse `json:"balance"`
}

// EntryResponse is one ledger entry in the audit view.
type EntryResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Amount    int64   `json:"amount"`
	SessionID *string `json:"session_id,omitempty"`
	PaymentID *string `json:"payment_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// EntryListResponse wraps the ledger entry list.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
}

// PaymentResponse is the pending payment view returned to the depositor.
type PaymentResponse struct {
	PaymentID       string  `json:"payment_id"`
	RequestedAmount int64   `json:"requested_amount"`
	Status          string  `json:"status"`
	PayAddress      string  `json:"pay_address,omitempty"`
	PayCurrency     string  `json:"pay_currency,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ExpiresAt       *string `json:"expires_at,omitempty"`
}
