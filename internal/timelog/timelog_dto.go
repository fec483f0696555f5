package timelog

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTimeLogRequest struct {
	StaffID    string           `json:"staff_id" binding:"required,uuid"`
	ClockIn    string           `json:"clock_in" binding:"required"`
	ClockOut   *string          `json:"clock_out"`
	TotalHours *decimal.Decimal `json:"total_hours"`
	IsOvertime bool             `json:"is_overtime"`
	Notes      *string          `json:"notes"`
}

type TimeLogResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   *string `json:"clock_out,omitempty"`
	TotalHours float64 `json:"total_hours"`
	IsOvertime bool    `json:"is_overtime"`
	Notes      *string `json:"notes,omitempty"`
}

func mapToResponse(row TimeLog) TimeLogResponse {
	resp := TimeLogResponse{
		ID:         row.ID.String(),
		StaffID:    row.StaffID.String(),
		ClockIn:    row.ClockIn.Format(time.RFC3339),
		TotalHours: row.TotalHours.InexactFloat64(),
		IsOvertime: row.IsOvertime,
		Notes:      row.Notes,
	}
	if row.ClockOut != nil {
		v := row.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}

func mapToListResponse(rows []TimeLog) []TimeLogResponse {
	resp := make([]TimeLogResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp
}
