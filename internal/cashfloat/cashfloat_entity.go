package cashfloat

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Audit actions recorded in the ledger trail.
const (
	ActionInitialize  = "initialize"
	ActionSetFloat    = "set_float"
	ActionTransaction = "transaction"
	ActionDailyReset  = "daily_reset"
)

// FloatState is the single cash drawer balance row. Exactly one row exists
// (ID fixed at 1), created explicitly at startup.
type FloatState struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	CurrentAmount decimal.Decimal `gorm:"column:current_amount;type:decimal(12,2);not null"`
	ResetEnabled  bool            `gorm:"column:reset_enabled;not null;default:false"`
	ResetAmount   decimal.Decimal `gorm:"column:reset_amount;type:decimal(12,2);not null"`
	LastResetDate *time.Time      `gorm:"column:last_reset_date;type:date"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (FloatState) TableName() string {
	return "cash_float_state"
}

// stateRowID is the fixed primary key of the singleton row.
const stateRowID int64 = 1

// JSONMap stores free-form audit metadata as a jsonb column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported jsonb source type")
	}
	return json.Unmarshal(raw, m)
}

// AuditEntry is one append-only line of the drawer's history. The bigserial
// id doubles as the append order.
type AuditEntry struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Action         string          `gorm:"column:action;type:varchar(20);not null;index"`
	PreviousAmount decimal.Decimal `gorm:"column:previous_amount;type:decimal(12,2);not null"`
	NewAmount      decimal.Decimal `gorm:"column:new_amount;type:decimal(12,2);not null"`
	Change         decimal.Decimal `gorm:"column:change;type:decimal(12,2);not null"`
	Reason         *string         `gorm:"column:reason;type:text"`
	Metadata       JSONMap         `gorm:"column:metadata;type:jsonb"`
	CreatedAt      time.Time       `gorm:"column:created_at;index"`
}

func (AuditEntry) TableName() string {
	return "cash_float_audit"
}
