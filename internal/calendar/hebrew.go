package calendar

import "fmt"

// hebrewEpochOffset is the fixed offset between Gregorian and Hebrew year
// numbering (5784 begins during Gregorian 2023/2024).
const hebrewEpochOffset = 3760

// hebrewMonths is the fixed 12-name month cycle used by the approximate
// conversion. Leap-year Adar II is not modeled.
var hebrewMonths = [12]string{
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
	"Tishrei", "Cheshvan", "Kislev", "Tevet", "Shevat", "Adar",
}

// IsHebrewLeapYear reports whether a year is a leap year in the 19-year
// Metonic cycle. Leap years occupy positions 3, 6, 8, 11, 14, 17, and 19
// of the cycle (position 19 shows up as remainder 0).
func IsHebrewLeapYear(year int) bool {
	switch cyclePos(year, 19) {
	case 0, 3, 6, 8, 11, 14, 17:
		return true
	}
	return false
}

// MonthsInHebrewYear returns 13 for leap years (which insert Adar II),
// otherwise 12.
func MonthsInHebrewYear(year int) int {
	if IsHebrewLeapYear(year) {
		return 13
	}
	return 12
}

// ToHebrew converts a Gregorian date to an approximate Hebrew date string
// like "15 Tishrei 5785".
//
// The Hebrew year is the Gregorian year plus 3760, bumped by one from
// October onward to approximate the September/October new year. The month
// name is taken from a fixed cycle offset by six months from the Gregorian
// month; the day number is carried over unchanged. This is a rough display
// approximation, not a real Hebrew calendar computation.
func ToHebrew(d Date) string {
	m0 := d.monthIndex()
	hebrewYear := d.Year + hebrewEpochOffset
	if m0 >= 9 {
		hebrewYear++
	}
	return fmt.Sprintf("%d %s %d", d.Day, hebrewMonths[(m0+6)%12], hebrewYear)
}
