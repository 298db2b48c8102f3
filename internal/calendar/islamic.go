package calendar

import (
	"fmt"
	"math"
	"time"
)

// islamicMonths is the 12-month Hijri cycle.
var islamicMonths = [12]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Dhu al-Qidah", "Dhu al-Hijjah",
}

// Ramadan drift model: the lunar year is ~11 days shorter than the solar
// year, so Ramadan regresses by about 11 days annually. Anchored at the
// observed start in 2024.
const (
	ramadanAnchorYear = 2024
	ramadanAnchorDay  = 10 // March 10, 2024
	lunarAnnualDrift  = 11
)

// IsIslamicLeapYear reports whether a year is a leap year in the 30-year
// Hijri cycle. Leap years occupy positions 2, 5, 7, 10, 13, 16, 18, 21,
// 24, 26, and 29.
func IsIslamicLeapYear(year int) bool {
	switch cyclePos(year, 30) {
	case 2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29:
		return true
	}
	return false
}

// DaysInIslamicYear returns 355 for leap years, otherwise 354.
func DaysInIslamicYear(year int) int {
	if IsIslamicLeapYear(year) {
		return 355
	}
	return 354
}

// ToIslamic converts a Gregorian date to an approximate Hijri date string
// like "11 Rabi al-Awwal 1446 AH".
//
// The year applies the mean ratio of solar to lunar year lengths
// (1.030684) to the span since the Hijra epoch (622 CE). The month and day
// slice the Gregorian day-of-year modulo 354 into twelve ~29.5-day
// buckets, approximating lunar month drift without any observation data.
func ToIslamic(d Date) string {
	islamicYear := int(math.Floor(float64(d.Year-622)*1.030684)) + 1

	doy := (d.DayOfYear() - 1) % 354
	month := int(float64(doy) / 29.5)
	if month > 11 {
		month = 11
	}
	day := int(math.Mod(float64(doy), 29.5)) + 1

	return fmt.Sprintf("%d %s %d AH", day, islamicMonths[month], islamicYear)
}

// RamadanStart estimates the first day of Ramadan in a Gregorian year,
// formatted as "March 10, 2024".
//
// The anchor date shifts backward by 11 days for every year past the
// anchor (and forward for years before it); time.Date normalizes the
// resulting out-of-range day into the correct month.
func RamadanStart(year int) string {
	day := ramadanAnchorDay - lunarAnnualDrift*(year-ramadanAnchorYear)
	return formatLongDate(time.Date(year, time.March, day, 0, 0, 0, 0, time.UTC))
}
