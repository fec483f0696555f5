package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePayrollRequest carries the inputs of one payroll run. Monetary
// fields left out are derived from the staff profile and the period's time
// logs; net_pay in particular is only computed when absent, a supplied
// value is stored as-is.
type CreatePayrollRequest struct {
	StaffID string `json:"staff_id" binding:"required,uuid"`
	Period  string `json:"period" binding:"required"`

	BasicPay    *decimal.Decimal `json:"basic_pay"`
	OvertimePay *decimal.Decimal `json:"overtime_pay"`
	Allowances  *decimal.Decimal `json:"allowances"`
	HolidayPay  *decimal.Decimal `json:"holiday_pay"`

	BonusPerformance *decimal.Decimal `json:"bonus_performance"`
	BonusOther       *decimal.Decimal `json:"bonus_other"`

	DeductionLate    *decimal.Decimal `json:"deduction_late"`
	DeductionAbsence *decimal.Decimal `json:"deduction_absence"`

	NetPay *decimal.Decimal `json:"net_pay"`

	IncludeHolidayPay      *bool `json:"include_holiday_pay"`
	IncludeThirteenthMonth *bool `json:"include_thirteenth_month"`
}

type HolidayWorkedResponse struct {
	Date          string  `json:"date"`
	HolidayName   string  `json:"holiday_name"`
	HolidayType   string  `json:"holiday_type"`
	HoursWorked   float64 `json:"hours_worked"`
	PayMultiplier float64 `json:"pay_multiplier"`
	BonusAmount   float64 `json:"bonus_amount"`
}

type PayrollResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staff_id"`
	Period  string `json:"period"`

	BasicPay           float64 `json:"basic_pay"`
	OvertimePay        float64 `json:"overtime_pay"`
	Allowances         float64 `json:"allowances"`
	HolidayPay         float64 `json:"holiday_pay"`
	ThirteenthMonthPay float64 `json:"thirteenth_month_pay"`

	BonusHoliday     float64 `json:"bonus_holiday"`
	BonusPerformance float64 `json:"bonus_performance"`
	BonusOther       float64 `json:"bonus_other"`

	DeductionLate    float64 `json:"deduction_late"`
	DeductionAbsence float64 `json:"deduction_absence"`

	TotalHoursWorked float64 `json:"total_hours_worked"`
	OvertimeHours    float64 `json:"overtime_hours"`

	GrossPay float64 `json:"gross_pay"`
	NetPay   float64 `json:"net_pay"`

	HolidaysWorked []HolidayWorkedResponse `json:"holidays_worked"`

	PayslipGeneratedAt *string `json:"payslip_generated_at,omitempty"`
}

func mapToResponse(record Record) PayrollResponse {
	resp := PayrollResponse{
		ID:                 record.ID.String(),
		StaffID:            record.StaffID.String(),
		Period:             record.Period,
		BasicPay:           record.BasicPay.InexactFloat64(),
		OvertimePay:        record.OvertimePay.InexactFloat64(),
		Allowances:         record.Allowances.InexactFloat64(),
		HolidayPay:         record.HolidayPay.InexactFloat64(),
		ThirteenthMonthPay: record.ThirteenthMonthPay.InexactFloat64(),
		BonusHoliday:       record.BonusHoliday.InexactFloat64(),
		BonusPerformance:   record.BonusPerformance.InexactFloat64(),
		BonusOther:         record.BonusOther.InexactFloat64(),
		DeductionLate:      record.DeductionLate.InexactFloat64(),
		DeductionAbsence:   record.DeductionAbsence.InexactFloat64(),
		TotalHoursWorked:   record.TotalHoursWorked.InexactFloat64(),
		OvertimeHours:      record.OvertimeHours.InexactFloat64(),
		GrossPay:           record.GrossPay.InexactFloat64(),
		NetPay:             record.NetPay.InexactFloat64(),
		HolidaysWorked:     make([]HolidayWorkedResponse, len(record.HolidaysWorked)),
	}

	for i, hw := range record.HolidaysWorked {
		resp.HolidaysWorked[i] = HolidayWorkedResponse{
			Date:          hw.HolidayDate.Format("2006-01-02"),
			HolidayName:   hw.HolidayName,
			HolidayType:   hw.HolidayType,
			HoursWorked:   hw.HoursWorked.InexactFloat64(),
			PayMultiplier: hw.PayMultiplier.InexactFloat64(),
			BonusAmount:   hw.BonusAmount.InexactFloat64(),
		}
	}

	if record.PayslipGeneratedAt != nil {
		v := record.PayslipGeneratedAt.Format(time.RFC3339)
		resp.PayslipGeneratedAt = &v
	}

	return resp
}

func mapToListResponse(records []Record) []PayrollResponse {
	resp := make([]PayrollResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}
