package timelog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TimeLog is one worked shift for a staff member. TotalHours is stored,
// not derived, so manual corrections from the time clock survive.
type TimeLog struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID    uuid.UUID       `gorm:"column:staff_id;type:uuid;not null;index"`
	ClockIn    time.Time       `gorm:"column:clock_in;type:timestamptz;not null;index"`
	ClockOut   *time.Time      `gorm:"column:clock_out;type:timestamptz"`
	TotalHours decimal.Decimal `gorm:"column:total_hours;type:decimal(6,2);not null;default:0"`
	IsOvertime bool            `gorm:"column:is_overtime;not null;default:false"`
	Notes      *string         `gorm:"column:notes;type:text"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (TimeLog) TableName() string {
	return "time_logs"
}
