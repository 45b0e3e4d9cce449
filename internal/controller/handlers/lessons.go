package handlers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common/formatting"
	"github.com/luciafdez/clases_bot/internal/service"
	"go.uber.org/zap"
)

// /nueva 2025-03-10 09:00-10:00 Lucía - Matemáticas
var nuevaRe = regexp.MustCompile(`^/nueva\s+(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2})-(\d{2}:\d{2})\s+(.+)$`)

const nuevaUsage = "Formato:\n/nueva 2025-03-10 09:00-10:00 Lucía - Matemáticas"

// HandleNueva handles /nueva: creates a lesson from one line. The
// overlap check runs on save; a conflict comes back as a message
// naming the lesson in the way, never as an error.
func (h *Handlers) HandleNueva(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	matches := nuevaRe.FindStringSubmatch(strings.TrimSpace(update.Message.Text))
	if matches == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he entendido la clase.\n\n" + nuevaUsage})
		return
	}

	studentName, subject := splitStudentSubject(matches[4])
	if studentName == "" || subject == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ Falta el alumno o la asignatura.\n\n" + nuevaUsage})
		return
	}

	input := service.LessonInput{
		Date:        matches[1],
		StartTime:   matches[2],
		EndTime:     matches[3],
		StudentName: studentName,
		Subject:     subject,
	}

	lesson, err := h.lessonService.Create(ctx, input)
	if err != nil {
		var conflict *service.ConflictError
		switch {
		case errors.As(err, &conflict):
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "⚠️ Ya tienes una clase a esa hora: " + formatting.FormatConflict(&conflict.Lesson),
			})
		case errors.Is(err, service.ErrEndNotAfterStart):
			b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ La hora de fin debe ser posterior a la de inicio."})
		default:
			h.logger.Error("Failed to create lesson", zap.Error(err))
			b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido guardar la clase.\n\n" + nuevaUsage})
		}
		return
	}

	text := fmt.Sprintf("✅ Clase guardada: %s el %s de %s a %s.",
		lesson.Subject, lesson.Date, lesson.StartTime, lesson.EndTime)
	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})

	h.SendDayView(ctx, b, chatID, lesson.Date)
}

// splitStudentSubject splits "Lucía - Matemáticas" on the first " - ".
// Without a separator everything is the student and the subject stays
// empty, which the caller rejects.
func splitStudentSubject(s string) (student, subject string) {
	student, subject, found := strings.Cut(s, " - ")
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(student), strings.TrimSpace(subject)
}
