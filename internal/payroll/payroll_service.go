package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-payops/internal/compensation"
	"go-payops/internal/events"
	"go-payops/internal/holiday"
	kafkaoutbox "go-payops/internal/messaging/kafka"
	payrollerrors "go-payops/internal/payroll/errors"
	"go-payops/internal/schedule"
	"go-payops/internal/shared/civil"
	"go-payops/internal/shared/contextutil"
	"go-payops/internal/staff"
	"go-payops/internal/timelog"
)

// defaultOvertimeMultiplier applies when a staff member has no payroll
// schedule assigned.
var defaultOvertimeMultiplier = decimal.RequireFromString("1.25")

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetByStaff(ctx context.Context, staffID string) ([]PayrollResponse, error)
	GeneratePayslip(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	staffRepo    staff.Repository
	timelogRepo  timelog.Repository
	scheduleRepo schedule.Repository
	holidays     holiday.Service
	outboxRepo   kafkaoutbox.OutboxRepository
}

func NewService(
	db *gorm.DB,
	repo Repository,
	staffRepo staff.Repository,
	timelogRepo timelog.Repository,
	scheduleRepo schedule.Repository,
	holidays holiday.Service,
	outboxRepo kafkaoutbox.OutboxRepository,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		staffRepo:    staffRepo,
		timelogRepo:  timelogRepo,
		scheduleRepo: scheduleRepo,
		holidays:     holidays,
		outboxRepo:   outboxRepo,
	}
}

func (s *service) Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error) {
	period, err := parsePeriod(req.Period)
	if err != nil {
		return PayrollResponse{}, err
	}
	if err := validateAmounts(req); err != nil {
		return PayrollResponse{}, err
	}

	profile, err := s.staffRepo.FindByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrStaffNotFound
		}
		return PayrollResponse{}, err
	}

	// Aggregation window is the period's enclosing calendar month.
	monthStart := period.Time(time.UTC)
	monthEnd := period.AddMonths(1).Time(time.UTC)

	logs, err := s.timelogRepo.FindByStaffAndRange(ctx, req.StaffID, monthStart, monthEnd)
	if err != nil {
		return PayrollResponse{}, err
	}

	record := s.buildRecord(ctx, req, period, profile, logs)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PayrollResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, req.StaffID, req.Period)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		return PayrollResponse{}, payrollerrors.ErrDuplicatePeriod
	}

	if includeFlag(req.IncludeThirteenthMonth) && compensation.IsThirteenthMonthPeriod(period) {
		priorBasic, err := qtx.SumAnnualBasicPay(ctx, req.StaffID, period.Year)
		if err != nil {
			return PayrollResponse{}, err
		}
		record.ThirteenthMonthPay = compensation.ThirteenthMonthPay(priorBasic.Add(record.BasicPay))
		finalizeTotals(record, req.NetPay)
	}

	if err := qtx.Create(ctx, record); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.writeCreatedEvent(ctx, tx, record); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*record), nil
}

// buildRecord assembles the parts of the record that need no transaction:
// hour sums, overtime, holiday premiums, and the base monetary fields.
func (s *service) buildRecord(
	ctx context.Context,
	req CreatePayrollRequest,
	period civil.Date,
	profile *staff.Staff,
	logs []timelog.TimeLog,
) *Record {
	record := &Record{
		ID:      uuid.New(),
		StaffID: profile.ID,
		Period:  req.Period,
	}

	record.BasicPay = valueOr(req.BasicPay, profile.BasicSalary)
	record.Allowances = valueOr(req.Allowances, profile.Allowance)
	record.HolidayPay = valueOr(req.HolidayPay, decimal.Zero)
	record.BonusPerformance = valueOr(req.BonusPerformance, decimal.Zero)
	record.BonusOther = valueOr(req.BonusOther, decimal.Zero)
	record.DeductionLate = valueOr(req.DeductionLate, decimal.Zero)
	record.DeductionAbsence = valueOr(req.DeductionAbsence, decimal.Zero)

	record.TotalHoursWorked, record.OvertimeHours = sumHours(logs)

	if req.OvertimePay != nil {
		record.OvertimePay = *req.OvertimePay
	} else {
		record.OvertimePay = s.deriveOvertimePay(ctx, profile, record.OvertimeHours)
	}

	if includeFlag(req.IncludeHolidayPay) {
		record.HolidaysWorked, record.BonusHoliday = s.aggregateHolidays(ctx, record.ID, period, profile, logs)
	}

	finalizeTotals(record, req.NetPay)
	return record
}

// sumHours totals worked hours across the period and, for entries flagged
// overtime, the hours beyond the fixed eight-hour day.
func sumHours(logs []timelog.TimeLog) (total, overtime decimal.Decimal) {
	threshold := decimal.NewFromInt(compensation.StandardHoursPerDay)
	for _, entry := range logs {
		total = total.Add(entry.TotalHours)
		if entry.IsOvertime {
			excess := entry.TotalHours.Sub(threshold)
			if excess.IsPositive() {
				overtime = overtime.Add(excess)
			}
		}
	}
	return total, overtime
}

func (s *service) deriveOvertimePay(ctx context.Context, profile *staff.Staff, overtimeHours decimal.Decimal) decimal.Decimal {
	if overtimeHours.IsZero() {
		return decimal.Zero
	}

	multiplier := defaultOvertimeMultiplier
	if profile.ScheduleID != nil {
		if sched, err := s.scheduleRepo.FindByID(ctx, profile.ScheduleID.String()); err == nil {
			multiplier = sched.OvertimeMultiplier
		}
	}

	hourly := profile.DailyRate.Div(decimal.NewFromInt(compensation.StandardHoursPerDay))
	return hourly.Mul(overtimeHours).Mul(multiplier).Round(2)
}

// aggregateHolidays matches the month's holidays against time-log entries
// by calendar day and prices the matched hours at the premium rate.
func (s *service) aggregateHolidays(
	ctx context.Context,
	recordID uuid.UUID,
	period civil.Date,
	profile *staff.Staff,
	logs []timelog.TimeLog,
) ([]HolidayWorked, decimal.Decimal) {
	var (
		worked     []HolidayWorked
		totalBonus decimal.Decimal
	)

	for _, h := range s.holidays.Resolve(ctx, period.Year) {
		if h.Date.Month != period.Month {
			continue
		}

		var hours decimal.Decimal
		for _, entry := range logs {
			if civil.DateOf(entry.ClockIn).Equal(h.Date) {
				hours = hours.Add(entry.TotalHours)
			}
		}
		if hours.IsZero() {
			continue
		}

		bonus := compensation.HolidayBonus(profile.DailyRate, h.Type, hours)
		worked = append(worked, HolidayWorked{
			ID:            uuid.New(),
			RecordID:      recordID,
			HolidayDate:   h.Date.Time(time.UTC),
			HolidayName:   h.Name,
			HolidayType:   string(h.Type),
			HoursWorked:   hours,
			PayMultiplier: compensation.PayMultiplier(h.Type),
			BonusAmount:   bonus,
		})
		totalBonus = totalBonus.Add(bonus)
	}

	return worked, totalBonus
}

// finalizeTotals recomputes gross pay and fills net pay only when the
// caller did not supply one.
func finalizeTotals(record *Record, suppliedNet *decimal.Decimal) {
	record.GrossPay = record.BasicPay.
		Add(record.OvertimePay).
		Add(record.Allowances).
		Add(record.HolidayPay).
		Add(record.ThirteenthMonthPay).
		Add(record.BonusHoliday).
		Add(record.BonusPerformance).
		Add(record.BonusOther)

	if suppliedNet != nil {
		record.NetPay = *suppliedNet
		return
	}
	record.NetPay = record.GrossPay.
		Sub(record.DeductionLate).
		Sub(record.DeductionAbsence)
}

func (s *service) writeCreatedEvent(ctx context.Context, tx *gorm.DB, record *Record) error {
	payload, err := json.Marshal(events.PayrollRecordCreatedEvent{
		EventType:  "payroll.record.created",
		RecordID:   record.ID.String(),
		StaffID:    record.StaffID.String(),
		Period:     record.Period,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafkaoutbox.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_record",
		AggregateID:   record.ID.String(),
		EventType:     "payroll.record.created",
		Topic:         events.PayrollRecordCreatedTopic,
		Payload:       payload,
		Status:        kafkaoutbox.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) GetByStaff(ctx context.Context, staffID string) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(staffID); err != nil {
		return nil, payrollerrors.ErrInvalidPayrollID
	}
	records, err := s.repo.FindByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

// GeneratePayslip renders the record's payslip PDF and stamps the record
// on first generation.
func (s *service) GeneratePayslip(ctx context.Context, id string) ([]byte, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.staffRepo.FindByID(ctx, record.StaffID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrStaffNotFound
		}
		return nil, err
	}

	pdf, err := renderPayslip(*record, *profile)
	if err != nil {
		return nil, err
	}

	if record.PayslipGeneratedAt == nil {
		if err := s.repo.MarkPayslipGenerated(ctx, id, time.Now().UTC()); err != nil {
			return nil, err
		}
	}

	return pdf, nil
}

func (s *service) findRecord(ctx context.Context, id string) (*Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayrollID
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

// parsePeriod reads a YYYY-MM month marker as the first day of that month.
func parsePeriod(v string) (civil.Date, error) {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return civil.Date{}, payrollerrors.ErrInvalidPeriod
	}
	return civil.DateOf(t), nil
}

func validateAmounts(req CreatePayrollRequest) error {
	for _, amount := range []*decimal.Decimal{
		req.BasicPay, req.OvertimePay, req.Allowances, req.HolidayPay,
		req.BonusPerformance, req.BonusOther,
		req.DeductionLate, req.DeductionAbsence,
	} {
		if amount != nil && amount.IsNegative() {
			return payrollerrors.ErrNegativeAmount
		}
	}
	return nil
}

func valueOr(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return fallback
}

func includeFlag(v *bool) bool {
	return v == nil || *v
}
