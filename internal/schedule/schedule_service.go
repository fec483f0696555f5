package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	scheduleerrors "go-payops/internal/schedule/errors"
	"go-payops/internal/shared/civil"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetAll(ctx context.Context) ([]ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	UpcomingPayout(ctx context.Context, id string, fromDate civil.Date) (UpcomingPayoutResponse, error)
}

type service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error) {
	cadence := Cadence(req.Cadence)
	if err := validateScheduleDays(cadence, req.PayoutDays, req.CutoffDays); err != nil {
		return ScheduleResponse{}, err
	}
	if req.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidOvertimeMultiplier
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	schedule := &Schedule{
		ID:                 uuid.New(),
		Name:               req.Name,
		Cadence:            req.Cadence,
		PayoutDay1:         req.PayoutDays[0],
		CutoffDay1:         req.CutoffDays[0],
		OvertimeMultiplier: req.OvertimeMultiplier,
		RegularHoursPerDay: req.RegularHoursPerDay,
		WorkDaysPerWeek:    req.WorkDaysPerWeek,
		IsActive:           isActive,
	}
	if len(req.PayoutDays) == 2 {
		schedule.PayoutDay2 = &req.PayoutDays[1]
	}
	if len(req.CutoffDays) == 2 {
		schedule.CutoffDay2 = &req.CutoffDays[1]
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return ScheduleResponse{}, err
	}

	return mapToResponse(*schedule), nil
}

func (s *service) GetAll(ctx context.Context) ([]ScheduleResponse, error) {
	schedules, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(schedules), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ScheduleResponse, error) {
	schedule, err := s.findSchedule(ctx, s.repo, id)
	if err != nil {
		return ScheduleResponse{}, err
	}
	return mapToResponse(*schedule), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error) {
	cadence := Cadence(req.Cadence)
	if err := validateScheduleDays(cadence, req.PayoutDays, req.CutoffDays); err != nil {
		return ScheduleResponse{}, err
	}
	if req.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidOvertimeMultiplier
	}

	schedule, err := s.findSchedule(ctx, s.repo, id)
	if err != nil {
		return ScheduleResponse{}, err
	}

	schedule.Name = req.Name
	schedule.Cadence = req.Cadence
	schedule.PayoutDay1 = req.PayoutDays[0]
	schedule.PayoutDay2 = nil
	if len(req.PayoutDays) == 2 {
		schedule.PayoutDay2 = &req.PayoutDays[1]
	}
	schedule.CutoffDay1 = req.CutoffDays[0]
	schedule.CutoffDay2 = nil
	if len(req.CutoffDays) == 2 {
		schedule.CutoffDay2 = &req.CutoffDays[1]
	}
	schedule.OvertimeMultiplier = req.OvertimeMultiplier
	schedule.RegularHoursPerDay = req.RegularHoursPerDay
	schedule.WorkDaysPerWeek = req.WorkDaysPerWeek
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, schedule); err != nil {
		return ScheduleResponse{}, err
	}

	return mapToResponse(*schedule), nil
}

// Delete removes a schedule. It is rejected while any staff profile still
// references the schedule; the count and delete run in one transaction so
// an assignment cannot sneak in between them.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return scheduleerrors.ErrInvalidScheduleID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.findSchedule(ctx, qtx, id); err != nil {
		return err
	}

	assigned, err := qtx.CountStaffAssigned(ctx, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return scheduleerrors.ErrScheduleInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (s *service) UpcomingPayout(ctx context.Context, id string, fromDate civil.Date) (UpcomingPayoutResponse, error) {
	schedule, err := s.findSchedule(ctx, s.repo, id)
	if err != nil {
		return UpcomingPayoutResponse{}, err
	}

	if fromDate.IsZero() {
		fromDate = civil.Today(time.UTC)
	}

	cadence := Cadence(schedule.Cadence)
	next, err := NextPayoutDate(cadence, schedule.PayoutDays(), fromDate)
	if err != nil {
		return UpcomingPayoutResponse{}, err
	}
	cutoff, err := CutoffPeriod(cadence, schedule.CutoffDays(), fromDate)
	if err != nil {
		return UpcomingPayoutResponse{}, err
	}

	return UpcomingPayoutResponse{
		ScheduleID:     schedule.ID.String(),
		NextPayoutDate: next.String(),
		CutoffStart:    cutoff.Start.String(),
		CutoffEnd:      cutoff.End.String(),
	}, nil
}

func (s *service) findSchedule(ctx context.Context, repo Repository, id string) (*Schedule, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, scheduleerrors.ErrInvalidScheduleID
	}

	schedule, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduleerrors.ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func validateScheduleDays(cadence Cadence, payoutDays, cutoffDays []int) error {
	if err := validateDays(cadence, payoutDays); err != nil {
		return err
	}
	if err := validateDays(cadence, cutoffDays); err != nil {
		return err
	}

	limit := 31
	if cadence == CadenceWeekly || cadence == CadenceBiWeekly {
		// weekday index
		limit = 6
	}
	for _, d := range append(append([]int(nil), payoutDays...), cutoffDays...) {
		if d < 0 || d > limit || (limit == 31 && d < 1) {
			return scheduleerrors.ErrInvalidDayValue
		}
	}
	return nil
}
