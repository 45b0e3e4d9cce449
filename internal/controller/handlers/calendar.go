package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common/formatting"
	"go.uber.org/zap"
)

// HandleMes handles /mes: the month grid image with day buttons and
// month navigation.
func (h *Handlers) HandleMes(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.SendMonthView(ctx, b, update.Message.Chat.ID, h.Now())
}

// SendMonthView renders and sends the month view for ref. Shared with
// the calendar navigation callbacks.
func (h *Handlers) SendMonthView(ctx context.Context, b *bot.Bot, chatID int64, ref time.Time) {
	grid := calendar.MonthMatrix(ref)
	from := calendar.ToDateKey(grid[0])
	to := calendar.ToDateKey(grid[len(grid)-1])

	byDay, err := h.statsService.LessonsPerDay(ctx, from, to)
	if err != nil {
		h.logger.Error("Failed to load month lessons", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido cargar el mes."})
		return
	}

	counts := make(map[string]int, len(byDay))
	for key, lessons := range byDay {
		counts[key] = len(lessons)
	}

	image, err := common.GenerateMonthImage(ref, h.Now(), counts)
	if err != nil {
		h.logger.Error("Failed to render month image", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido dibujar el calendario."})
		return
	}

	b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileUpload{Filename: "mes.png", Data: bytes.NewReader(image)},
		Caption:     "📅 " + formatting.FormatMonthHeading(ref),
		ReplyMarkup: common.BuildMonthKeyboard(ref),
	})
}

// SendDayView sends the day listing with payment-toggle buttons.
func (h *Handlers) SendDayView(ctx context.Context, b *bot.Bot, chatID int64, dateKey string) {
	day, err := calendar.ParseDateKey(dateKey)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ Fecha no válida."})
		return
	}

	lessons, err := h.lessonService.LessonsForDay(ctx, dateKey)
	if err != nil {
		h.logger.Error("Failed to load day lessons", zap.Error(err), zap.String("date", dateKey))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido cargar el día."})
		return
	}

	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   common.BuildDayViewText(day, lessons),
	}
	if keyboard := common.BuildDayKeyboard(lessons); keyboard != nil {
		params.ReplyMarkup = keyboard
	}
	b.SendMessage(ctx, params)
}

// HandleClases handles /clases: the next 7 days of lessons with
// payment-toggle buttons.
func (h *Handlers) HandleClases(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	now := h.Now()
	from := calendar.ToDateKey(now)
	to := calendar.ToDateKey(calendar.AddDays(now, 6))

	lessons, err := h.lessonService.LessonsForRange(ctx, from, to)
	if err != nil {
		h.logger.Error("Failed to load upcoming lessons", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "❌ No he podido cargar las próximas clases."})
		return
	}

	if len(lessons) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "Sin clases en los próximos 7 días."})
		return
	}

	text := fmt.Sprintf("📖 Próximas clases (%s a %s):", from, to)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: common.BuildDayKeyboard(lessons),
	})
}
