package schedule

import (
	"sort"

	scheduleerrors "go-payops/internal/schedule/errors"
	"go-payops/internal/shared/civil"
)

// Cadence names a payroll frequency.
type Cadence string

const (
	CadenceMonthly     Cadence = "monthly"
	CadenceSemiMonthly Cadence = "semi-monthly"
	CadenceWeekly      Cadence = "weekly"
	CadenceBiWeekly    Cadence = "bi-weekly"
)

// Period is an inclusive date range of worked time covered by a payroll run.
type Period struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
}

// NextPayoutDate computes the next disbursement date on or after fromDate.
//
// For weekly cadences payoutDays[0] is a weekday (0 = Sunday). A weekly
// payout landing on fromDate itself counts as today. Bi-weekly pushes the
// weekly result out one more week so payouts land roughly two weeks apart.
func NextPayoutDate(cadence Cadence, payoutDays []int, fromDate civil.Date) (civil.Date, error) {
	if err := validateDays(cadence, payoutDays); err != nil {
		return civil.Date{}, err
	}

	switch cadence {
	case CadenceMonthly:
		target := civil.DateFor(fromDate.Year, fromDate.Month, payoutDays[0])
		if !target.After(fromDate) {
			target = civil.DateFor(fromDate.Year, fromDate.Month+1, payoutDays[0])
		}
		return target, nil

	case CadenceSemiMonthly:
		days := append([]int(nil), payoutDays...)
		sort.Ints(days)
		d0, d1 := days[0], days[1]
		switch {
		case fromDate.Day < d0:
			return civil.DateFor(fromDate.Year, fromDate.Month, d0), nil
		case fromDate.Day < d1:
			return civil.DateFor(fromDate.Year, fromDate.Month, d1), nil
		default:
			return civil.DateFor(fromDate.Year, fromDate.Month+1, d0), nil
		}

	case CadenceWeekly:
		delta := (payoutDays[0] - int(fromDate.Weekday()) + 7) % 7
		return fromDate.AddDays(delta), nil

	case CadenceBiWeekly:
		delta := (payoutDays[0] - int(fromDate.Weekday()) + 7) % 7
		target := fromDate.AddDays(delta)
		if delta <= 7 {
			target = target.AddDays(7)
		}
		return target, nil

	default:
		return civil.Date{}, scheduleerrors.ErrInvalidCadence
	}
}

// CutoffPeriod computes the date range of worked time the payroll run for
// forDate covers.
func CutoffPeriod(cadence Cadence, cutoffDays []int, forDate civil.Date) (Period, error) {
	if err := validateDays(cadence, cutoffDays); err != nil {
		return Period{}, err
	}

	switch cadence {
	case CadenceMonthly:
		c0 := cutoffDays[0]
		return Period{
			Start: civil.DateFor(forDate.Year, forDate.Month, c0),
			End:   civil.DateFor(forDate.Year, forDate.Month+1, c0-1),
		}, nil

	case CadenceSemiMonthly:
		days := append([]int(nil), cutoffDays...)
		sort.Ints(days)
		c0, c1 := days[0], days[1]
		if forDate.Day <= c0 {
			return Period{
				Start: civil.DateFor(forDate.Year, forDate.Month-1, c1+1),
				End:   civil.DateFor(forDate.Year, forDate.Month, c0),
			}, nil
		}
		return Period{
			Start: civil.DateFor(forDate.Year, forDate.Month, c0+1),
			End:   civil.DateFor(forDate.Year, forDate.Month, c1),
		}, nil

	case CadenceWeekly:
		return Period{Start: forDate.AddDays(-6), End: forDate}, nil

	case CadenceBiWeekly:
		return Period{Start: forDate.AddDays(-13), End: forDate}, nil

	default:
		return Period{}, scheduleerrors.ErrInvalidCadence
	}
}

// validateDays checks that the day list matches the cadence's arity.
func validateDays(cadence Cadence, days []int) error {
	switch cadence {
	case CadenceSemiMonthly:
		if len(days) != 2 {
			return scheduleerrors.ErrInvalidDayCount
		}
	case CadenceMonthly, CadenceWeekly, CadenceBiWeekly:
		if len(days) != 1 {
			return scheduleerrors.ErrInvalidDayCount
		}
	default:
		return scheduleerrors.ErrInvalidCadence
	}
	return nil
}
