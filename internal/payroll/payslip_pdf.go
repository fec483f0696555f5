package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"go-payops/internal/staff"
)

// renderPayslip produces the payslip PDF for one payroll record.
func renderPayslip(record Record, profile staff.Staff) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Staff: %s", profile.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", record.Period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hours worked: %s (overtime %s)",
		record.TotalHoursWorked.StringFixed(2), record.OvertimeHours.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)

	earnings := []struct {
		label string
		value string
	}{
		{"Basic pay", record.BasicPay.StringFixed(2)},
		{"Overtime pay", record.OvertimePay.StringFixed(2)},
		{"Allowances", record.Allowances.StringFixed(2)},
		{"Holiday pay", record.HolidayPay.StringFixed(2)},
		{"13th month pay", record.ThirteenthMonthPay.StringFixed(2)},
		{"Holiday bonus", record.BonusHoliday.StringFixed(2)},
		{"Performance bonus", record.BonusPerformance.StringFixed(2)},
		{"Other bonus", record.BonusOther.StringFixed(2)},
	}
	for _, row := range earnings {
		pdf.Cell(80, 7, row.label)
		pdf.CellFormat(40, 7, row.value, "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	if len(record.HolidaysWorked) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Holidays worked")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, hw := range record.HolidaysWorked {
			pdf.Cell(0, 6, fmt.Sprintf("%s  %s (%s): %s h at x%s, bonus %s",
				hw.HolidayDate.Format("2006-01-02"),
				hw.HolidayName,
				hw.HolidayType,
				hw.HoursWorked.StringFixed(2),
				hw.PayMultiplier.String(),
				hw.BonusAmount.StringFixed(2),
			))
			pdf.Ln(6)
		}
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(80, 7, "Late")
	pdf.CellFormat(40, 7, record.DeductionLate.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.Cell(80, 7, "Absence")
	pdf.CellFormat(40, 7, record.DeductionAbsence.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(80, 8, "Gross pay")
	pdf.CellFormat(40, 8, record.GrossPay.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(8)
	pdf.Cell(80, 8, "Net pay")
	pdf.CellFormat(40, 8, record.NetPay.StringFixed(2), "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
