package calendar

import "time"

// IsGregorianLeapYear reports whether a year is a leap year under the
// proleptic Gregorian rule: divisible by 4, except centuries, except
// centuries divisible by 400.
func IsGregorianLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysInGregorianYear returns 366 for leap years, otherwise 365.
func DaysInGregorianYear(year int) int {
	if IsGregorianLeapYear(year) {
		return 366
	}
	return 365
}

// JulianGregorianOffset returns the cumulative day drift between the Julian
// and Gregorian calendars for dates in the century containing year.
//
// The drift grows by one day per century except in centuries divisible
// by 400, where both calendars agree on the leap day.
func JulianGregorianOffset(year int) int {
	century := floorDiv(year, 100)
	return century - floorDiv(century, 4) - 2
}

// Easter returns the date of Western Easter Sunday for a year, formatted as
// "March 31, 2024".
//
// Uses the Meeus/Jones/Butcher algorithm, valid for all years in the
// Gregorian calendar. The variable names follow the classical formulation.
func Easter(year int) string {
	return formatLongDate(EasterDate(year).Time())
}

// EasterDate returns Easter Sunday as a Date value for callers that need to
// do further arithmetic rather than display.
func EasterDate(year int) Date {
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
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date{Year: year, Month: time.Month(month), Day: day}
}
