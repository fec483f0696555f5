package cashfloat

import (
	"time"

	"github.com/shopspring/decimal"
)

type SetFloatRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Reason   string          `json:"reason"`
	Metadata map[string]any  `json:"metadata"`
}

type TransactionRequest struct {
	ChangeGiven decimal.Decimal `json:"change_given" binding:"required"`
	OrderRef    string          `json:"order_ref"`
	Metadata    map[string]any  `json:"metadata"`
}

type ConfigureResetRequest struct {
	Enabled bool             `json:"enabled"`
	Amount  *decimal.Decimal `json:"amount"`
}

type AuditQuery struct {
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Action   string `form:"action"`
	Limit    int    `form:"limit"`
}

type StateResponse struct {
	CurrentAmount float64 `json:"current_amount"`
	ResetEnabled  bool    `json:"reset_enabled"`
	ResetAmount   float64 `json:"reset_amount"`
	LastResetDate *string `json:"last_reset_date,omitempty"`
}

type AuditEntryResponse struct {
	ID             int64          `json:"id"`
	Action         string         `json:"action"`
	PreviousAmount float64        `json:"previous_amount"`
	NewAmount      float64        `json:"new_amount"`
	Change         float64        `json:"change"`
	Reason         *string        `json:"reason,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Timestamp      string         `json:"timestamp"`
}

func mapStateToResponse(state FloatState) StateResponse {
	resp := StateResponse{
		CurrentAmount: state.CurrentAmount.InexactFloat64(),
		ResetEnabled:  state.ResetEnabled,
		ResetAmount:   state.ResetAmount.InexactFloat64(),
	}
	if state.LastResetDate != nil {
		v := state.LastResetDate.Format("2006-01-02")
		resp.LastResetDate = &v
	}
	return resp
}

func mapAuditToResponse(entries []AuditEntry) []AuditEntryResponse {
	resp := make([]AuditEntryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = AuditEntryResponse{
			ID:             entry.ID,
			Action:         entry.Action,
			PreviousAmount: entry.PreviousAmount.InexactFloat64(),
			NewAmount:      entry.NewAmount.InexactFloat64(),
			Change:         entry.Change.InexactFloat64(),
			Reason:         entry.Reason,
			Metadata:       entry.Metadata,
			Timestamp:      entry.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp
}
