package domain

import "time"

// SessionState represents the lifecycle state of a wager session.
type SessionState string

const (
	SessionStateActive    SessionState = "ACTIVE"
	SessionStateCashedOut SessionState = "CASHED_OUT"
	SessionStateForfeited SessionState = "FORFEITED"
)

// EndReason is the engine's explanation for a session-ending event.
type EndReason string

const (
	EndReasonEliminated   EndReason = "eliminated"
	EndReasonDisconnected EndReason = "disconnected"
)

// Session is a single timed play instance. While it is ACTIVE, exactly Stake
// cents are held in the owning account's locked balance on its behalf.
// CurrentValue fluctuates with engine reports and never moves money on its
// own; it only matters at cash-out time.
type Session struct {
	ID           string       `json:"id"` // ULID
	AccountID    string       `json:"account_id"`
	Stake        int64        `json:"stake"`
	CurrentValue int64        `json:"current_value"`
	State        SessionState `json:"state"`
	OpenedAt     time.Time    `json:"opened_at"`
	ClosedAt     *time.Time   `json:"closed_at,omitempty"`
}

// IsTerminal returns true once the session has been cashed out or forfeited.
// There is no transition out of a terminal state.
func (s *Session) IsTerminal() bool {
	return s.State == SessionStateCashedOut || s.State == SessionStateForfeited
}

// ParseEndReason maps an engine-reported reason string to the enum.
func ParseEndReason(raw string) (EndReason, bool) {
	switch EndReason(raw) {
	case EndReasonEliminated:
		return EndReasonEliminated, true
	case EndReasonDisconnected:
		return EndReasonDisconnected, true
	default:
		return "", false
	}
}

// CashoutReceipt summarises a completed cash-out.
type CashoutReceipt struct {
	SessionID  string  `json:"session_id"`
	GrossValue int64   `json:"gross_value"`
	NetAmount  int64   `json:"net_amount"`
	Fee        int64   `json:"fee"`
	ROI        float64 `json:"roi"` // currentValue/stake - 1
}
