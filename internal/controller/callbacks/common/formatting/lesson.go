package formatting

import (
	"fmt"

	"github.com/luciafdez/clases_bot/internal/model"
)

// FormatConflict renders the lesson blocking a save:
// "Matemáticas (Lucía) de 09:00 a 10:00".
func FormatConflict(lesson *model.Lesson) string {
	return fmt.Sprintf("%s (%s) de %s a %s",
		lesson.Subject, lesson.StudentName, lesson.StartTime, lesson.EndTime)
}

// FormatLessonLine renders one lesson for a day listing.
func FormatLessonLine(lesson model.Lesson) string {
	status := "🔴"
	if lesson.PaymentStatus == model.PaymentStatusPaid {
		status = "🟢"
	}
	return fmt.Sprintf("%s %s  %s - %s", status,
		FormatTimeRange(lesson.StartTime, lesson.EndTime), lesson.Subject, lesson.StudentName)
}
