package staff

import "github.com/shopspring/decimal"

type CreateStaffRequest struct {
	FullName             string           `json:"full_name" binding:"required"`
	DailyRate            decimal.Decimal  `json:"daily_rate" binding:"required"`
	BasicSalary          *decimal.Decimal `json:"basic_salary"`
	Allowance            *decimal.Decimal `json:"allowance"`
	ScheduledHoursPerDay int              `json:"scheduled_hours_per_day" binding:"omitempty,min=1,max=24"`
	ScheduleID           *string          `json:"schedule_id" binding:"omitempty,uuid"`
}

type StaffResponse struct {
	ID                   string  `json:"id"`
	FullName             string  `json:"full_name"`
	DailyRate            float64 `json:"daily_rate"`
	BasicSalary          float64 `json:"basic_salary"`
	Allowance            float64 `json:"allowance"`
	ScheduledHoursPerDay int     `json:"scheduled_hours_per_day"`
	ScheduleID           *string `json:"schedule_id,omitempty"`
	IsActive             bool    `json:"is_active"`
}

func mapToResponse(s Staff) StaffResponse {
	resp := StaffResponse{
		ID:                   s.ID.String(),
		FullName:             s.FullName,
		DailyRate:            s.DailyRate.InexactFloat64(),
		BasicSalary:          s.BasicSalary.InexactFloat64(),
		Allowance:            s.Allowance.InexactFloat64(),
		ScheduledHoursPerDay: s.ScheduledHoursPerDay,
		IsActive:             s.IsActive,
	}
	if s.ScheduleID != nil {
		v := s.ScheduleID.String()
		resp.ScheduleID = &v
	}
	return resp
}

func mapToListResponse(staff []Staff) []StaffResponse {
	resp := make([]StaffResponse, len(staff))
	for i, s := range staff {
		resp[i] = mapToResponse(s)
	}
	return resp
}
