package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common/formatting"
	"github.com/luciafdez/clases_bot/internal/model"
	"go.uber.org/zap"
)

// HandleStart handles /start: remembers the tutor chat for the daily
// digest and prints the command list.
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if err := h.profileService.SetChatID(ctx, chatID); err != nil {
		h.logger.Error("Failed to save tutor chat", zap.Error(err))
	}

	text := fmt.Sprintf(
		"👋 ¡Hola, %s!\n\n"+
			"Soy tu agenda de clases particulares.\n\n"+
			"Comandos:\n"+
			"/hoy - Clases de hoy\n"+
			"/semana - Clases de esta semana\n"+
			"/mes - Calendario del mes\n"+
			"/clases - Próximas clases\n"+
			"/nueva - Apuntar una clase\n"+
			"/alumnos - Mis alumnos\n"+
			"/ingresos - Resumen de ingresos\n"+
			"/deudas - Clases sin cobrar\n"+
			"/ayuda - Esta ayuda",
		update.Message.From.FirstName,
	)

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
}

// HandleAyuda handles /ayuda.
func (h *Handlers) HandleAyuda(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "📚 Comandos disponibles:\n\n" +
		"/hoy - Clases de hoy\n" +
		"/semana - Clases de esta semana\n" +
		"/mes - Calendario del mes con navegación\n" +
		"/clases - Próximas clases (cambia el estado de pago con los botones)\n" +
		"/nueva 2025-03-10 09:00-10:00 Lucía - Matemáticas - Apuntar una clase\n" +
		"/alumnos - Lista de alumnos\n" +
		"/ingresos - Ingresos de la semana, mes y año, media por hora y proyección anual\n" +
		"/deudas - Clases sin cobrar y total pendiente"

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: update.Message.Chat.ID, Text: text})
}

// HandleHoy handles /hoy: the day view for today.
func (h *Handlers) HandleHoy(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	now := h.Now()
	h.SendDayView(ctx, b, update.Message.Chat.ID, calendar.ToDateKey(now))
}

// HandleSemana handles /semana: all lessons of the current Monday-based
// week, grouped per day.
func (h *Handlers) HandleSemana(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	weekStart := calendar.StartOfWeek(h.Now())
	from := calendar.ToDateKey(weekStart)
	to := calendar.ToDateKey(calendar.AddDays(weekStart, 6))

	lessons, err := h.lessonService.LessonsForRange(ctx, from, to)
	if err != nil {
		h.logger.Error("Failed to load week lessons", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido cargar la semana. Inténtalo de nuevo."})
		return
	}

	byDay := make(map[string][]model.Lesson)
	for _, l := range lessons {
		byDay[l.Date] = append(byDay[l.Date], l)
	}

	var sb strings.Builder
	sb.WriteString("🗓 Esta semana:\n")
	for i := 0; i < 7; i++ {
		day := calendar.AddDays(weekStart, i)
		dayLessons := byDay[calendar.ToDateKey(day)]
		if len(dayLessons) == 0 {
			continue
		}
		sb.WriteString("\n" + formatting.FormatDayHeading(day) + "\n")
		for _, l := range dayLessons {
			sb.WriteString(formatting.FormatLessonLine(l) + "\n")
		}
	}
	if len(lessons) == 0 {
		sb.WriteString("\nSin clases programadas. 🎉")
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: sb.String()})
}

// HandleAlumnos handles /alumnos.
func (h *Handlers) HandleAlumnos(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	students, err := h.studentService.List(ctx)
	if err != nil {
		h.logger.Error("Failed to list students", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido cargar los alumnos."})
		return
	}

	if len(students) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "Todavía no tienes alumnos registrados."})
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Alumnos (%d):\n\n", len(students)))
	for _, s := range students {
		line := "• " + s.Name
		if s.Level != "" {
			line += " - " + s.Level
		}
		if len(s.Subjects) > 0 {
			line += " (" + strings.Join(s.Subjects, ", ") + ")"
		}
		sb.WriteString(line + "\n")
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: sb.String()})
}

// HandleIngresos handles /ingresos: the income dashboard.
func (h *Handlers) HandleIngresos(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	stats, err := h.statsService.Dashboard(ctx, h.Now())
	if err != nil {
		h.logger.Error("Failed to compute dashboard", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido calcular los ingresos."})
		return
	}

	var sb strings.Builder
	sb.WriteString("💶 Ingresos (clases cobradas):\n\n")
	sb.WriteString(fmt.Sprintf("Esta semana: %s (%d clases, %s)\n",
		formatting.FormatPriceShort(stats.Week.AmountCents), stats.Week.Lessons, formatting.FormatDuration(stats.Week.Minutes)))
	sb.WriteString(fmt.Sprintf("Este mes: %s (%d clases, %s)\n",
		formatting.FormatPriceShort(stats.Month.AmountCents), stats.Month.Lessons, formatting.FormatDuration(stats.Month.Minutes)))
	sb.WriteString(fmt.Sprintf("Este año: %s (%d clases, %s)\n",
		formatting.FormatPriceShort(stats.Year.AmountCents), stats.Year.Lessons, formatting.FormatDuration(stats.Year.Minutes)))

	if stats.AverageHourlyRateCents > 0 {
		sb.WriteString(fmt.Sprintf("\nMedia real por hora: %s\n", formatting.FormatPrice(stats.AverageHourlyRateCents)))
	}
	if stats.AnnualProjectionCents > 0 {
		sb.WriteString(fmt.Sprintf("Proyección anual: %s\n", formatting.FormatPriceShort(stats.AnnualProjectionCents)))
	}

	if stats.GoalTarget > 0 {
		sb.WriteString(fmt.Sprintf("\n🎯 Objetivo mensual: %.1f h de %d h (%.0f%%)\n",
			stats.GoalHours, stats.GoalTarget, stats.GoalPercent))
	} else {
		sb.WriteString("\n🎯 Configura tu objetivo mensual de horas para ver el progreso.")
	}

	if stats.Year.AmountCents == 0 && stats.Week.AmountCents == 0 {
		sb.WriteString("\nℹ️ Si tu tarifa por hora está a cero, configúrala para ver importes.")
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: sb.String()})
}

// HandleDeudas handles /deudas: unpaid lessons and the total owed.
func (h *Handlers) HandleDeudas(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	stats, err := h.statsService.Dashboard(ctx, h.Now())
	if err != nil {
		h.logger.Error("Failed to compute dashboard", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido calcular las deudas."})
		return
	}

	unpaid, err := h.lessonService.UnpaidLessons(ctx)
	if err != nil {
		h.logger.Error("Failed to load unpaid lessons", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido cargar las clases sin cobrar."})
		return
	}

	if len(unpaid) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "✅ No tienes clases sin cobrar."})
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔴 Clases sin cobrar (%d):\n\n", len(unpaid)))
	for _, l := range unpaid {
		sb.WriteString(fmt.Sprintf("%s  %s\n", l.Date, formatting.FormatLessonLine(l)))
	}
	sb.WriteString(fmt.Sprintf("\nTotal pendiente: %s", formatting.FormatPrice(stats.Debt.AmountCents)))
	if stats.Debt.AmountCents == 0 {
		sb.WriteString("\nℹ️ Configura la tarifa base para calcular el importe.")
	}

	b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: sb.String()})
}
