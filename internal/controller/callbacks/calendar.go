package callbacks

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/calendar"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks/common"
	"go.uber.org/zap"
)

// handleMonthNav reacts to the prev/next month buttons.
func (h *Handler) handleMonthNav(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	payload, err := common.PayloadAfterPrefix(callback.Data, common.CalMonth)
	if err != nil {
		h.logger.Error("Bad month callback", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Formato no válido")
		return
	}

	ref, err := time.ParseInLocation("2006-01", payload, h.location)
	if err != nil {
		h.logger.Error("Bad month payload", zap.String("payload", payload), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Mes no válido")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.sendMonthView(ctx, b, msg.Chat.ID, ref)
}

// handleDayView reacts to a day button in the month grid.
func (h *Handler) handleDayView(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	payload, err := common.PayloadAfterPrefix(callback.Data, common.CalDay)
	if err != nil {
		h.logger.Error("Bad day callback", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Formato no válido")
		return
	}

	if !calendar.ValidDateKey(payload) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Fecha no válida")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Error")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.sendDayView(ctx, b, msg.Chat.ID, payload)
}
