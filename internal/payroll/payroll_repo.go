package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, record *Record) error
	FindAll(ctx context.Context) ([]Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	FindByStaff(ctx context.Context, staffID string) ([]Record, error)
	ExistsForPeriod(ctx context.Context, staffID, period string) (bool, error)
	SumAnnualBasicPay(ctx context.Context, staffID string, year int) (decimal.Decimal, error)
	MarkPayslipGenerated(ctx context.Context, id string, at time.Time) error
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

func (r *repository) Create(ctx context.Context, record *Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Preload("HolidaysWorked").
		Order("period DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var record Record
	err := r.db.WithContext(ctx).
		Preload("HolidaysWorked").
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindByStaff(ctx context.Context, staffID string) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Preload("HolidaysWorked").
		Where("staff_id = ?", staffID).
		Order("period DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) ExistsForPeriod(ctx context.Context, staffID, period string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("staff_id = ? AND period = ?", staffID, period).
		Count(&count).Error
	return count > 0, err
}

// SumAnnualBasicPay totals basic pay across a staff member's records for a
// calendar year, excluding December. December's record is the in-progress
// one during a 13th-month run and is added by the caller.
func (r *repository) SumAnnualBasicPay(ctx context.Context, staffID string, year int) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&Record{}).
		Select("SUM(basic_pay)").
		Where("staff_id = ?", staffID).
		Where("period LIKE ?", fmt.Sprintf("%04d-%%", year)).
		Where("period <> ?", fmt.Sprintf("%04d-12", year)).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *repository) MarkPayslipGenerated(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ?", id).
		Update("payslip_generated_at", at).Error
}
