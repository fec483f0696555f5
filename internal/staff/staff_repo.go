package staff

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, staff *Staff) error
	FindAll(ctx context.Context) ([]Staff, error)
	FindByID(ctx context.Context, id string) (*Staff, error)
	Update(ctx context.Context, staff *Staff) error
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

func (r *repository) Create(ctx context.Context, staff *Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Staff, error) {
	var staff []Staff
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Staff, error) {
	var staff Staff
	err := r.db.WithContext(ctx).
		First(&staff, "id = ?", id).Error
	return &staff, err
}

func (r *repository) Update(ctx context.Context, staff *Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}
