// Package civil provides a calendar-day value type with defined equality,
// independent of wall-clock time and locale formatting. Day arithmetic
// normalizes overflow the same way time.Date does (e.g. Feb 30 -> Mar 2),
// which the payroll schedule math relies on.
package civil

import (
	"encoding/json"
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar day without a time-of-day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateFor builds a Date, normalizing out-of-range components via the
// time package (day 0 of a month is the last day of the previous month).
func DateFor(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day the instant falls on, in the instant's
// own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in the given location.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// Parse reads a date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date   { return DateOf(d.Time(time.UTC).AddDate(0, 0, n)) }
func (d Date) AddMonths(n int) Date { return DateOf(d.Time(time.UTC).AddDate(0, n, 0)) }

func (d Date) Weekday() time.Weekday { return d.Time(time.UTC).Weekday() }

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool { return other.Before(d) }
func (d Date) Equal(other Date) bool { return d == other }

// DaysUntil returns the number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time(time.UTC).Sub(d.Time(time.UTC)) / (24 * time.Hour))
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string { return d.Time(time.UTC).Format(layout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
