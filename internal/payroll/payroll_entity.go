package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record is one payroll run result for a staff member and period. Records
// are write-once: corrections create a new record for a new period rather
// than editing history.
type Record struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID uuid.UUID `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:uq_payroll_staff_period"`
	// Period is the month marker in YYYY-MM form.
	Period string `gorm:"column:period;type:varchar(7);not null;uniqueIndex:uq_payroll_staff_period"`

	BasicPay           decimal.Decimal `gorm:"column:basic_pay;type:decimal(12,2);not null;default:0"`
	OvertimePay        decimal.Decimal `gorm:"column:overtime_pay;type:decimal(12,2);not null;default:0"`
	Allowances         decimal.Decimal `gorm:"column:allowances;type:decimal(12,2);not null;default:0"`
	HolidayPay         decimal.Decimal `gorm:"column:holiday_pay;type:decimal(12,2);not null;default:0"`
	ThirteenthMonthPay decimal.Decimal `gorm:"column:thirteenth_month_pay;type:decimal(12,2);not null;default:0"`

	BonusHoliday     decimal.Decimal `gorm:"column:bonus_holiday;type:decimal(12,2);not null;default:0"`
	BonusPerformance decimal.Decimal `gorm:"column:bonus_performance;type:decimal(12,2);not null;default:0"`
	BonusOther       decimal.Decimal `gorm:"column:bonus_other;type:decimal(12,2);not null;default:0"`

	DeductionLate    decimal.Decimal `gorm:"column:deduction_late;type:decimal(12,2);not null;default:0"`
	DeductionAbsence decimal.Decimal `gorm:"column:deduction_absence;type:decimal(12,2);not null;default:0"`

	TotalHoursWorked decimal.Decimal `gorm:"column:total_hours_worked;type:decimal(8,2);not null;default:0"`
	OvertimeHours    decimal.Decimal `gorm:"column:overtime_hours;type:decimal(8,2);not null;default:0"`

	GrossPay decimal.Decimal `gorm:"column:gross_pay;type:decimal(12,2);not null;default:0"`
	NetPay   decimal.Decimal `gorm:"column:net_pay;type:decimal(12,2);not null;default:0"`

	HolidaysWorked []HolidayWorked `gorm:"foreignKey:RecordID;references:ID"`

	PayslipGeneratedAt *time.Time `gorm:"column:payslip_generated_at;type:timestamptz"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Record) TableName() string {
	return "payroll_records"
}

// HolidayWorked is one line of the per-record holiday breakdown: the hours
// a staff member worked on a single public holiday and the premium paid.
type HolidayWorked struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordID      uuid.UUID       `gorm:"column:record_id;type:uuid;not null;index"`
	HolidayDate   time.Time       `gorm:"column:holiday_date;type:date;not null"`
	HolidayName   string          `gorm:"column:holiday_name;type:varchar(150);not null"`
	HolidayType   string          `gorm:"column:holiday_type;type:varchar(20);not null"`
	HoursWorked   decimal.Decimal `gorm:"column:hours_worked;type:decimal(6,2);not null"`
	PayMultiplier decimal.Decimal `gorm:"column:pay_multiplier;type:decimal(4,2);not null"`
	BonusAmount   decimal.Decimal `gorm:"column:bonus_amount;type:decimal(12,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (HolidayWorked) TableName() string {
	return "payroll_holidays_worked"
}
