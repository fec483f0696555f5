package staff

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Staff is the pay-relevant profile of an hourly/daily-rate worker. The
// wider HR record (contact details, documents) lives outside this service.
type Staff struct {
	ID                   uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName             string          `gorm:"column:full_name;type:varchar(150);not null"`
	DailyRate            decimal.Decimal `gorm:"column:daily_rate;type:decimal(12,2);not null"`
	BasicSalary          decimal.Decimal `gorm:"column:basic_salary;type:decimal(12,2);not null;default:0"`
	Allowance            decimal.Decimal `gorm:"column:allowance;type:decimal(12,2);not null;default:0"`
	ScheduledHoursPerDay int             `gorm:"column:scheduled_hours_per_day;not null;default:8"`
	ScheduleID           *uuid.UUID      `gorm:"column:schedule_id;type:uuid;index"`
	IsActive             bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt            time.Time       `gorm:"column:created_at"`
	UpdatedAt            time.Time       `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Staff) TableName() string {
	return "staff_profiles"
}
