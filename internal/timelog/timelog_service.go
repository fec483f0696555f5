package timelog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	timelogerrors "go-payops/internal/timelog/errors"
)

//go:generate mockgen -source=timelog_service.go -destination=mock/timelog_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTimeLogRequest) (TimeLogResponse, error)
	GetByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]TimeLogResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTimeLogRequest) (TimeLogResponse, error) {
	clockIn, err := time.Parse(time.RFC3339, req.ClockIn)
	if err != nil {
		return TimeLogResponse{}, timelogerrors.ErrInvalidTimestamp
	}

	row := &TimeLog{
		ID:         uuid.New(),
		StaffID:    uuid.MustParse(req.StaffID),
		ClockIn:    clockIn,
		IsOvertime: req.IsOvertime,
		Notes:      req.Notes,
		TotalHours: decimal.Zero,
	}

	if req.ClockOut != nil && *req.ClockOut != "" {
		clockOut, err := time.Parse(time.RFC3339, *req.ClockOut)
		if err != nil {
			return TimeLogResponse{}, timelogerrors.ErrInvalidTimestamp
		}
		if !clockOut.After(clockIn) {
			return TimeLogResponse{}, timelogerrors.ErrInvalidClockTimes
		}
		row.ClockOut = &clockOut
		// Derive hours from the shift span unless explicitly provided.
		row.TotalHours = decimal.NewFromFloat(clockOut.Sub(clockIn).Hours()).Round(2)
	}

	if req.TotalHours != nil {
		if req.TotalHours.IsNegative() {
			return TimeLogResponse{}, timelogerrors.ErrNegativeHours
		}
		row.TotalHours = *req.TotalHours
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return TimeLogResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]TimeLogResponse, error) {
	rows, err := s.repo.FindByStaffAndRange(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}
