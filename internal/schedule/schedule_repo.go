package schedule

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, schedule *Schedule) error
	FindAll(ctx context.Context) ([]Schedule, error)
	FindByID(ctx context.Context, id string) (*Schedule, error)
	Update(ctx context.Context, schedule *Schedule) error
	Delete(ctx context.Context, id string) error
	CountStaffAssigned(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, schedule *Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Schedule, error) {
	var schedule Schedule
	err := r.db.WithContext(ctx).
		First(&schedule, "id = ?", id).Error
	return &schedule, err
}

func (r *repository) Update(ctx context.Context, schedule *Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Schedule{}, "id = ?", id).Error
}

func (r *repository) CountStaffAssigned(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("staff_profiles").
		Where("schedule_id = ?", id).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}
