package holiday

import (
	"sort"
	"strings"
	"time"

	"go-payops/internal/compensation"
	"go-payops/internal/shared/civil"
)

// Deterministic fallback generator for Philippine public holidays. Used
// whenever the external feed is unreachable or returns garbage.

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
	htype compensation.HolidayType
}

var fixedHolidays = []fixedHoliday{
	{time.January, 1, "New Year's Day", compensation.HolidayTypeRegular},
	{time.February, 25, "EDSA People Power Revolution Anniversary", compensation.HolidayTypeSpecial},
	{time.April, 9, "Araw ng Kagitingan (Day of Valor)", compensation.HolidayTypeRegular},
	{time.May, 1, "Labor Day", compensation.HolidayTypeRegular},
	{time.June, 12, "Independence Day", compensation.HolidayTypeRegular},
	{time.August, 21, "Ninoy Aquino Day", compensation.HolidayTypeSpecial},
	{time.November, 1, "All Saints' Day", compensation.HolidayTypeSpecial},
	{time.November, 30, "Bonifacio Day", compensation.HolidayTypeRegular},
	{time.December, 8, "Feast of the Immaculate Conception", compensation.HolidayTypeSpecial},
	{time.December, 24, "Christmas Eve", compensation.HolidayTypeSpecial},
	{time.December, 25, "Christmas Day", compensation.HolidayTypeRegular},
	{time.December, 30, "Rizal Day", compensation.HolidayTypeRegular},
	{time.December, 31, "Last Day of the Year", compensation.HolidayTypeSpecial},
}

// Lunar New Year has no cheap closed-form computation, so it is only
// emitted for pre-tabulated years. Years outside the table simply omit it.
var lunarNewYearDates = map[int]civil.Date{
	2024: {Year: 2024, Month: time.February, Day: 10},
	2025: {Year: 2025, Month: time.January, Day: 29},
	2026: {Year: 2026, Month: time.February, Day: 17},
	2027: {Year: 2027, Month: time.February, Day: 6},
	2028: {Year: 2028, Month: time.January, Day: 26},
	2029: {Year: 2029, Month: time.February, Day: 13},
	2030: {Year: 2030, Month: time.February, Day: 3},
}

// Keyword lists used to classify holiday names coming from the external
// feed. Regular keywords are checked first, in order; anything unmatched
// defaults to special, the lower-cost classification. That default is a
// deliberate policy choice, not a bug.
var regularKeywords = []string{
	"new year's day",
	"maundy thursday",
	"good friday",
	"araw ng kagitingan",
	"day of valor",
	"labor day",
	"labour day",
	"independence day",
	"national heroes",
	"bonifacio",
	"christmas day",
	"rizal",
}

var specialKeywords = []string{
	"chinese new year",
	"lunar new year",
	"edsa",
	"black saturday",
	"ninoy aquino",
	"all saints",
	"all souls",
	"immaculate conception",
	"christmas eve",
	"last day of the year",
	"new year's eve",
}

// ClassifyName maps a holiday name to its type, case-insensitively.
func ClassifyName(name string) compensation.HolidayType {
	lower := strings.ToLower(name)
	for _, kw := range regularKeywords {
		if strings.Contains(lower, kw) {
			return compensation.HolidayTypeRegular
		}
	}
	for _, kw := range specialKeywords {
		if strings.Contains(lower, kw) {
			return compensation.HolidayTypeSpecial
		}
	}
	return compensation.HolidayTypeSpecial
}

// EasterSunday computes Easter for a year with the anonymous Gregorian
// (Meeus/Jones/Butcher) algorithm.
func EasterSunday(year int) civil.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	n := (h + l - 7*m + 114) / 31
	p := (h + l - 7*m + 114) % 31
	return civil.DateFor(year, time.Month(n), p+1)
}

// lastMondayOfAugust returns National Heroes Day for the year.
func lastMondayOfAugust(year int) civil.Date {
	d := civil.DateFor(year, time.August, 31)
	for d.Weekday() != time.Monday {
		d = d.AddDays(-1)
	}
	return d
}

// Generate builds the deterministic holiday list for a year, sorted
// ascending by date. When a moveable holiday lands on a fixed one (Holy
// Week around April 9 in 2020, for example) the earlier-tabled entry wins
// so no two entries share a date.
func Generate(year int) []Holiday {
	holidays := make([]Holiday, 0, len(fixedHolidays)+5)
	seen := make(map[civil.Date]bool, len(fixedHolidays)+5)

	add := func(date civil.Date, name string, htype compensation.HolidayType, approximate bool) {
		if seen[date] {
			return
		}
		seen[date] = true
		holidays = append(holidays, Holiday{
			Date:          date,
			Name:          name,
			Type:          htype,
			PayMultiplier: compensation.PayMultiplier(htype),
			IsApproximate: approximate,
			Source:        SourceGenerated,
		})
	}

	for _, fh := range fixedHolidays {
		add(civil.DateFor(year, fh.month, fh.day), fh.name, fh.htype, false)
	}

	easter := EasterSunday(year)
	add(easter.AddDays(-3), "Maundy Thursday", compensation.HolidayTypeRegular, false)
	add(easter.AddDays(-2), "Good Friday", compensation.HolidayTypeRegular, false)
	add(easter.AddDays(-1), "Black Saturday", compensation.HolidayTypeSpecial, false)

	add(lastMondayOfAugust(year), "National Heroes Day", compensation.HolidayTypeRegular, false)

	if date, ok := lunarNewYearDates[year]; ok {
		add(date, "Chinese New Year", compensation.HolidayTypeSpecial, true)
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return holidays
}
