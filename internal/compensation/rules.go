// Package compensation holds the statutory pay rule functions. Everything in
// here is pure: no I/O, no shared state, safe for concurrent use.
package compensation

import (
	"time"

	"github.com/shopspring/decimal"

	"go-payops/internal/shared/civil"
)

// HolidayType classifies a public holiday and determines its pay multiplier.
type HolidayType string

const (
	HolidayTypeRegular HolidayType = "regular"
	HolidayTypeSpecial HolidayType = "special"
	HolidayTypeLocal   HolidayType = "local"
)

// StandardHoursPerDay is the fixed divisor used to derive an hourly rate
// from a daily rate. It is intentionally independent of any staff member's
// configured hours per day.
const StandardHoursPerDay = 8

var (
	one   = decimal.NewFromInt(1)
	eight = decimal.NewFromInt(StandardHoursPerDay)

	multipliers = map[HolidayType]decimal.Decimal{
		HolidayTypeRegular: decimal.RequireFromString("2.0"),
		HolidayTypeSpecial: decimal.RequireFromString("1.3"),
		HolidayTypeLocal:   decimal.RequireFromString("1.3"),
	}
)

// PayMultiplier returns the statutory multiplier for hours worked on a
// holiday of the given type. Unrecognized types fall back to the special
// (lower) multiplier.
func PayMultiplier(t HolidayType) decimal.Decimal {
	if m, ok := multipliers[t]; ok {
		return m
	}
	return multipliers[HolidayTypeSpecial]
}

// HolidayBonus is the premium portion of holiday pay: the amount on top of
// the staff member's ordinary pay for the hours worked.
//
//	(dailyRate / 8) * hoursWorked * (multiplier - 1.0)
func HolidayBonus(dailyRate decimal.Decimal, t HolidayType, hoursWorked decimal.Decimal) decimal.Decimal {
	hourly := dailyRate.Div(eight)
	return hourly.Mul(hoursWorked).Mul(PayMultiplier(t).Sub(one)).Round(2)
}

// TotalHolidayPay is the full pay for hours worked on a holiday, ordinary
// pay and premium combined.
//
//	(dailyRate / 8) * hoursWorked * multiplier
func TotalHolidayPay(dailyRate decimal.Decimal, t HolidayType, hoursWorked decimal.Decimal) decimal.Decimal {
	hourly := dailyRate.Div(eight)
	return hourly.Mul(hoursWorked).Mul(PayMultiplier(t)).Round(2)
}

// ThirteenthMonthPay is one twelfth of the basic pay earned over a calendar
// year.
func ThirteenthMonthPay(annualBasicPaySum decimal.Decimal) decimal.Decimal {
	return annualBasicPaySum.Div(decimal.NewFromInt(12)).Round(2)
}

// IsThirteenthMonthPeriod reports whether the date falls in a 13th-month
// payout period. Only the calendar month matters; any December day counts.
func IsThirteenthMonthPeriod(date civil.Date) bool {
	return date.Month == time.December
}
