package staff_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-payops/internal/staff"
	stafferrors "go-payops/internal/staff/errors"
)

type fakeStaffRepository struct {
	createFn   func(ctx context.Context, row *staff.Staff) error
	findAllFn  func(ctx context.Context) ([]staff.Staff, error)
	findByIDFn func(ctx context.Context, id string) (*staff.Staff, error)
	updateFn   func(ctx context.Context, row *staff.Staff) error
}

func (f *fakeStaffRepository) WithTx(tx *gorm.DB) staff.Repository { return f }

func (f *fakeStaffRepository) Create(ctx context.Context, row *staff.Staff) error {
	if f.createFn != nil {
		return f.createFn(ctx, row)
	}
	return nil
}

func (f *fakeStaffRepository) FindAll(ctx context.Context) ([]staff.Staff, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeStaffRepository) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStaffRepository) Update(ctx context.Context, row *staff.Staff) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, row)
	}
	return nil
}

func TestStaffService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStaffRepository{}
	svc := staff.NewService(repo)

	var created *staff.Staff
	repo.createFn = func(ctx context.Context, row *staff.Staff) error {
		created = row
		return nil
	}

	resp, err := svc.Create(ctx, staff.CreateStaffRequest{
		FullName:  "Maria Santos",
		DailyRate: decimal.NewFromInt(500),
	})

	assert.NoError(t, err)
	assert.Equal(t, 500.0, resp.DailyRate)
	assert.Equal(t, 0.0, resp.BasicSalary)
	assert.Equal(t, 8, resp.ScheduledHoursPerDay)
	assert.True(t, resp.IsActive)
	assert.NotNil(t, created)
	assert.Nil(t, created.ScheduleID)
}

func TestStaffService_Create_RejectsNegativeAmounts(t *testing.T) {
	ctx := context.Background()
	svc := staff.NewService(&fakeStaffRepository{})

	_, err := svc.Create(ctx, staff.CreateStaffRequest{
		FullName:  "Maria Santos",
		DailyRate: decimal.NewFromInt(-500),
	})
	assert.ErrorIs(t, err, stafferrors.ErrNegativeRate)

	negative := decimal.NewFromInt(-1)
	_, err = svc.Create(ctx, staff.CreateStaffRequest{
		FullName:  "Maria Santos",
		DailyRate: decimal.NewFromInt(500),
		Allowance: &negative,
	})
	assert.ErrorIs(t, err, stafferrors.ErrNegativeRate)
}

func TestStaffService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStaffRepository{}
	svc := staff.NewService(repo)

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, stafferrors.ErrInvalidStaffID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
	})

	t.Run("found", func(t *testing.T) {
		staffID := uuid.New()
		scheduleID := uuid.New()
		repo.findByIDFn = func(ctx context.Context, id string) (*staff.Staff, error) {
			return &staff.Staff{
				ID:                   staffID,
				FullName:             "Maria Santos",
				DailyRate:            decimal.NewFromInt(500),
				ScheduledHoursPerDay: 8,
				ScheduleID:           &scheduleID,
				IsActive:             true,
			}, nil
		}

		resp, err := svc.GetByID(ctx, staffID.String())
		assert.NoError(t, err)
		assert.Equal(t, staffID.String(), resp.ID)
		if assert.NotNil(t, resp.ScheduleID) {
			assert.Equal(t, scheduleID.String(), *resp.ScheduleID)
		}
	})
}
