// Package calendar implements the date arithmetic behind every calendar
// view: YYYY-MM-DD day keys, Monday-based weeks and the 42-day month grid.
// Everything here is pure; day identity always goes through ToDateKey so
// grouping and range checks are plain string comparisons.
package calendar

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical day-key format.
const DateKeyLayout = "2006-01-02"

// MonthMatrixDays is the size of a month view: 6 weeks of 7 days.
const MonthMatrixDays = 42

// ToDateKey renders t as a YYYY-MM-DD key from the value's own local
// year/month/day, so the key is stable regardless of time-of-day.
// A zero time falls back to the key for now; calendar rendering must
// keep going even when a record carries no usable date.
func ToDateKey(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into local midnight of that day.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// ValidDateKey reports whether key is a well-formed YYYY-MM-DD date.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// Midnight normalizes t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays returns t shifted by n calendar days. n may be negative.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// StartOfWeek returns the Monday on or before t, at midnight.
// Weeks start on Monday regardless of locale: Sunday goes 6 days back,
// any other day goes Weekday-1 days back.
func StartOfWeek(t time.Time) time.Time {
	t = Midnight(t)
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	return t.AddDate(0, 0, -back)
}

// FirstOfMonth returns the 1st of t's month at midnight.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastOfMonth returns the final day of t's month at midnight.
func LastOfMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, -1)
}

// MonthMatrix returns the 42 consecutive days of t's month view,
// starting at the Monday on or before the 1st. The grid always covers
// the whole month and pads with adjacent-month days on both ends;
// callers tell them apart with SameMonth.
func MonthMatrix(t time.Time) []time.Time {
	start := StartOfWeek(FirstOfMonth(t))
	days := make([]time.Time, MonthMatrixDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

var weekdayNames = []string{
	"domingo",
	"lunes",
	"martes",
	"miércoles",
	"jueves",
	"viernes",
	"sábado",
}

var weekdayShortNames = []string{"D", "L", "M", "X", "J", "V", "S"}

var monthNames = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// WeekdayName returns the Spanish name of t's weekday.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

// WeekdayShort returns the one-letter Spanish weekday abbreviation
// (X for miércoles, as on Spanish calendars).
func WeekdayShort(t time.Time) string {
	return weekdayShortNames[int(t.Weekday())]
}

// MonthName returns the Spanish name of t's month.
func MonthName(t time.Time) string {
	return monthNames[t.Month()]
}

// DisplayFields selects which components FormatDisplay includes.
type DisplayFields struct {
	Weekday bool
	Day     bool
	Month   bool
	Year    bool
}

// FormatDisplay renders t for humans, es-ES style: "lunes, 10 de marzo
// de 2025". Display only; anything that needs exact comparison uses
// ToDateKey instead.
func FormatDisplay(t time.Time, f DisplayFields) string {
	if t.IsZero() {
		t = time.Now()
	}

	var out string
	if f.Weekday {
		out = WeekdayName(t)
	}
	if f.Day {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%d", t.Day())
	}
	if f.Month {
		if out != "" {
			out += " de "
		}
		out += MonthName(t)
	}
	if f.Year {
		if out != "" {
			out += " de "
		}
		out += fmt.Sprintf("%d", t.Year())
	}
	return out
}
