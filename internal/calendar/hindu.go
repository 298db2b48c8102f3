package calendar

import (
	"fmt"
	"math"
	"time"
)

// vikramSamvatOffset is the fixed offset between the Gregorian year and the
// Vikram Samvat year number.
const vikramSamvatOffset = 57

// hinduMonths is the fixed 12-name month cycle used by the approximate
// conversion.
var hinduMonths = [12]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha", "Shravana", "Bhadrapada",
	"Ashwin", "Kartik", "Margashirsha", "Pausha", "Magha", "Phalguna",
}

// ToHindu converts a Gregorian date to an approximate Hindu date string
// like "20 Kartik 2081 (Vikram Samvat)".
//
// The month name comes from a fixed cycle offset by ten months from the
// Gregorian month; the day number is carried over unchanged.
func ToHindu(d Date) string {
	vikramYear := d.Year + vikramSamvatOffset
	return fmt.Sprintf("%d %s %d (Vikram Samvat)", d.Day, hinduMonths[(d.monthIndex()+10)%12], vikramYear)
}

// Diwali estimates the date of Diwali in a Gregorian year.
func Diwali(year int) string {
	return festivalEstimate(year, time.October, 15, math.Sin, 15)
}

// Holi estimates the date of Holi in a Gregorian year.
func Holi(year int) string {
	return festivalEstimate(year, time.March, 8, math.Cos, 12)
}

// Navratri estimates the start of Sharad Navratri in a Gregorian year.
func Navratri(year int) string {
	return festivalEstimate(year, time.September, 20, math.Sin, 10)
}

// festivalEstimate perturbs a fixed base date by floor(wave(year) * amp)
// days and formats the result as "October 25, 2024".
//
// Lunisolar festivals move against the Gregorian calendar year to year.
// The sinusoid is not an astronomical model, just a deterministic wobble
// around the base date; it must stay bit-for-bit stable because callers
// display and cache the exact strings.
func festivalEstimate(year int, month time.Month, baseDay int, wave func(float64) float64, amp float64) string {
	offset := int(math.Floor(wave(float64(year)) * amp))
	return formatLongDate(time.Date(year, month, baseDay+offset, 0, 0, 0, 0, time.UTC))
}
