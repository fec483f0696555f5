package timelog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timelog_repo.go -destination=mock/timelog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, row *TimeLog) error
	FindByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]TimeLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, row *TimeLog) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]TimeLog, error) {
	var rows []TimeLog
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("clock_in >= ? AND clock_in < ?", from, to).
		Order("clock_in ASC").
		Find(&rows).Error
	return rows, err
}
