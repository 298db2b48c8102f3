// Package calendar implements approximate conversions between the Gregorian
// calendar and several other calendar systems (Hebrew, Islamic, Hindu), plus
// estimators for movable holidays.
//
// The conversions are deliberately simplified. They use fixed year offsets,
// fixed month-name cycles, and arithmetic leap-year rules rather than
// ephemeris-based computation, so outputs are educational approximations and
// must not be treated as authoritative dates.
//
// Every function in this package is pure and deterministic: the same input
// always yields the same output, and no shared state is read or written, so
// all functions are safe for concurrent use.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a date fails basic validation.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date in the proleptic Gregorian calendar.
//
// Year is unbounded; negative and pre-epoch years are accepted and treated
// proleptically. Month and Day are validated by NewDate.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a validated Date.
//
// Month must be January through December and Day must exist in that month
// (accounting for leap years). Any integer Year is accepted.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %s %d", ErrInvalidDate, day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf returns the Date for a time.Time, discarding the time of day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// monthIndex returns the 0-indexed month (January = 0).
// The conversion arithmetic below is defined over 0-indexed months.
func (d Date) monthIndex() int {
	return int(d.Month) - 1
}

// DayOfYear returns the 1-based ordinal day of the year (Jan 1 = 1).
func (d Date) DayOfYear() int {
	doy := d.Day
	for m := time.January; m < d.Month; m++ {
		doy += DaysInMonth(d.Year, m)
	}
	return doy
}

// monthLengths holds the day count of each Gregorian month in a common year.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in a Gregorian month.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsGregorianLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// formatLongDate renders a time as "March 31, 2024".
// This is the display format shared by the holiday estimators.
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%s %d, %d", t.Month(), t.Day(), t.Year())
}

// cyclePos normalizes year into [0, n), so cycle predicates stay periodic
// for negative (proleptic) years. Go's % operator truncates toward zero,
// which would break periodicity below year 0.
func cyclePos(year, n int) int {
	p := year % n
	if p < 0 {
		p += n
	}
	return p
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
