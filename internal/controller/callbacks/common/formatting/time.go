package formatting

import (
	"fmt"
	"time"

	"github.com/luciafdez/clases_bot/internal/calendar"
)

// FormatTimeRange renders an HH:MM pair as "09:00-10:00".
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// FormatDuration renders minutes as "1 h 30 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %d min", hours, mins)
}

// FormatDayHeading renders a day for section headings:
// "lunes, 10 de marzo de 2025".
func FormatDayHeading(t time.Time) string {
	return calendar.FormatDisplay(t, calendar.DisplayFields{
		Weekday: true,
		Day:     true,
		Month:   true,
		Year:    true,
	})
}

// FormatMonthHeading renders "marzo de 2025".
func FormatMonthHeading(t time.Time) string {
	return calendar.FormatDisplay(t, calendar.DisplayFields{Month: true, Year: true})
}
