package schedule

import "github.com/shopspring/decimal"

type CreateScheduleRequest struct {
	Name               string          `json:"name" binding:"required"`
	Cadence            string          `json:"cadence" binding:"required,oneof=monthly semi-monthly weekly bi-weekly"`
	PayoutDays         []int           `json:"payout_days" binding:"required,min=1,max=2"`
	CutoffDays         []int           `json:"cutoff_days" binding:"required,min=1,max=2"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier" binding:"required"`
	RegularHoursPerDay int             `json:"regular_hours_per_day" binding:"required,min=1"`
	WorkDaysPerWeek    int             `json:"work_days_per_week" binding:"required,min=1,max=7"`
	IsActive           *bool           `json:"is_active"`
}

type UpdateScheduleRequest struct {
	Name               string          `json:"name" binding:"required"`
	Cadence            string          `json:"cadence" binding:"required,oneof=monthly semi-monthly weekly bi-weekly"`
	PayoutDays         []int           `json:"payout_days" binding:"required,min=1,max=2"`
	CutoffDays         []int           `json:"cutoff_days" binding:"required,min=1,max=2"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier" binding:"required"`
	RegularHoursPerDay int             `json:"regular_hours_per_day" binding:"required,min=1"`
	WorkDaysPerWeek    int             `json:"work_days_per_week" binding:"required,min=1,max=7"`
	IsActive           *bool           `json:"is_active"`
}

type ScheduleResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Cadence            string  `json:"cadence"`
	PayoutDays         []int   `json:"payout_days"`
	CutoffDays         []int   `json:"cutoff_days"`
	OvertimeMultiplier float64 `json:"overtime_multiplier"`
	RegularHoursPerDay int     `json:"regular_hours_per_day"`
	WorkDaysPerWeek    int     `json:"work_days_per_week"`
	IsActive           bool    `json:"is_active"`
}

// UpcomingPayoutResponse pairs the next disbursement date with the cutoff
// period it covers.
type UpcomingPayoutResponse struct {
	ScheduleID     string `json:"schedule_id"`
	NextPayoutDate string `json:"next_payout_date"`
	CutoffStart    string `json:"cutoff_start"`
	CutoffEnd      string `json:"cutoff_end"`
}

func mapToResponse(s Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:                 s.ID.String(),
		Name:               s.Name,
		Cadence:            s.Cadence,
		PayoutDays:         s.PayoutDays(),
		CutoffDays:         s.CutoffDays(),
		OvertimeMultiplier: s.OvertimeMultiplier.InexactFloat64(),
		RegularHoursPerDay: s.RegularHoursPerDay,
		WorkDaysPerWeek:    s.WorkDaysPerWeek,
		IsActive:           s.IsActive,
	}
}

func mapToListResponse(schedules []Schedule) []ScheduleResponse {
	resp := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		resp[i] = mapToResponse(s)
	}
	return resp
}
