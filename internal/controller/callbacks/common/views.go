package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common/formatting"
	"github.com/luciafdez/clases_bot/internal/model"
)

// Callback data prefixes shared by the router and the views that
// build the keyboards.
const (
	CalMonth   = "cal_mes:" // cal_mes:2025-03
	CalDay     = "cal_dia:" // cal_dia:2025-03-10
	TogglePago = "pago:"    // pago:<lesson_id>
)

// BuildDayViewText renders the lessons of one day.
func BuildDayViewText(day time.Time, lessons []model.Lesson) string {
	var sb strings.Builder
	sb.WriteString("📅 " + formatting.FormatDayHeading(day) + "\n\n")

	if len(lessons) == 0 {
		sb.WriteString("Sin clases este día.")
		return sb.String()
	}

	for _, l := range lessons {
		sb.WriteString(formatting.FormatLessonLine(l) + "\n")
	}
	sb.WriteString("\n🟢 cobrada · 🔴 pendiente\nToca una clase para cambiar su estado de pago.")
	return sb.String()
}

// BuildDayKeyboard builds one payment-toggle button per lesson.
func BuildDayKeyboard(lessons []model.Lesson) *models.InlineKeyboardMarkup {
	if len(lessons) == 0 {
		return nil
	}

	var buttons [][]models.InlineKeyboardButton
	for _, l := range lessons {
		label := fmt.Sprintf("%s %s", formatting.FormatTimeRange(l.StartTime, l.EndTime), l.StudentName)
		if l.PaymentStatus == model.PaymentStatusPaid {
			label = "🟢 " + label
		} else {
			label = "🔴 " + label
		}
		buttons = append(buttons, []models.InlineKeyboardButton{
			{Text: label, CallbackData: TogglePago + l.ID},
		})
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

// BuildMonthKeyboard builds the month navigation row plus a button per
// week for jumping into a day.
func BuildMonthKeyboard(ref time.Time) *models.InlineKeyboardMarkup {
	// AddDate on day 29-31 overflows into the month after next.
	ref = calendar.FirstOfMonth(ref)
	prev := ref.AddDate(0, -1, 0)
	next := ref.AddDate(0, 1, 0)

	var buttons [][]models.InlineKeyboardButton

	// One row per grid week, one button per day.
	days := calendar.MonthMatrix(ref)
	for week := 0; week < calendar.MonthMatrixDays/7; week++ {
		var row []models.InlineKeyboardButton
		for i := 0; i < 7; i++ {
			day := days[week*7+i]
			label := fmt.Sprintf("%d", day.Day())
			if !calendar.SameMonth(day, ref) {
				label = "·"
			}
			row = append(row, models.InlineKeyboardButton{
				Text:         label,
				CallbackData: CalDay + calendar.ToDateKey(day),
			})
		}
		buttons = append(buttons, row)
	}

	buttons = append(buttons, []models.InlineKeyboardButton{
		{Text: "⬅️ " + calendar.MonthName(prev), CallbackData: CalMonth + prev.Format("2006-01")},
		{Text: calendar.MonthName(next) + " ➡️", CallbackData: CalMonth + next.Format("2006-01")},
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: buttons}
}
