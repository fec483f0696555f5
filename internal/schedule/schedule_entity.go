package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Schedule is an administrator-managed payroll schedule definition.
// Semi-monthly cadences carry two payout/cutoff days; the others carry one.
type Schedule struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string          `gorm:"column:name;type:varchar(120);not null"`
	Cadence            string          `gorm:"column:cadence;type:varchar(20);not null"`
	PayoutDay1         int             `gorm:"column:payout_day_1;not null"`
	PayoutDay2         *int            `gorm:"column:payout_day_2"`
	CutoffDay1         int             `gorm:"column:cutoff_day_1;not null"`
	CutoffDay2         *int            `gorm:"column:cutoff_day_2"`
	OvertimeMultiplier decimal.Decimal `gorm:"column:overtime_multiplier;type:decimal(6,2);not null"`
	RegularHoursPerDay int             `gorm:"column:regular_hours_per_day;not null;default:8"`
	WorkDaysPerWeek    int             `gorm:"column:work_days_per_week;not null;default:5"`
	IsActive           bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time       `gorm:"column:created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Schedule) TableName() string {
	return "payroll_schedules"
}

// PayoutDays returns the payout day list in storage order.
func (s *Schedule) PayoutDays() []int {
	days := []int{s.PayoutDay1}
	if s.PayoutDay2 != nil {
		days = append(days, *s.PayoutDay2)
	}
	return days
}

// CutoffDays returns the cutoff day list in storage order.
func (s *Schedule) CutoffDays() []int {
	days := []int{s.CutoffDay1}
	if s.CutoffDay2 != nil {
		days = append(days, *s.CutoffDay2)
	}
	return days
}
