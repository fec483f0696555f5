package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	stafferrors "go-payops/internal/staff/errors"
)

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetAll(ctx context.Context) ([]StaffResponse, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error) {
	if req.DailyRate.IsNegative() {
		return StaffResponse{}, stafferrors.ErrNegativeRate
	}

	row := &Staff{
		ID:                   uuid.New(),
		FullName:             req.FullName,
		DailyRate:            req.DailyRate,
		BasicSalary:          decimal.Zero,
		Allowance:            decimal.Zero,
		ScheduledHoursPerDay: 8,
		IsActive:             true,
	}
	if req.BasicSalary != nil {
		if req.BasicSalary.IsNegative() {
			return StaffResponse{}, stafferrors.ErrNegativeRate
		}
		row.BasicSalary = *req.BasicSalary
	}
	if req.Allowance != nil {
		if req.Allowance.IsNegative() {
			return StaffResponse{}, stafferrors.ErrNegativeRate
		}
		row.Allowance = *req.Allowance
	}
	if req.ScheduledHoursPerDay > 0 {
		row.ScheduledHoursPerDay = req.ScheduledHoursPerDay
	}
	if req.ScheduleID != nil && *req.ScheduleID != "" {
		scheduleID, err := uuid.Parse(*req.ScheduleID)
		if err != nil {
			return StaffResponse{}, stafferrors.ErrInvalidStaffID
		}
		row.ScheduleID = &scheduleID
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return StaffResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]StaffResponse, error) {
	staff, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(staff), nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StaffResponse{}, stafferrors.ErrInvalidStaffID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return StaffResponse{}, err
	}

	return mapToResponse(*row), nil
}
