package controller

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/luciafdez/clases_bot/internal/controller/callbacks"
	"github.com/luciafdez/clases_bot/internal/controller/handlers"
	"github.com/luciafdez/clases_bot/internal/service"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	lessonService *service.LessonService,
	studentService *service.StudentService,
	statsService *service.StatsService,
	profileService *service.ProfileService,
	location *time.Location,
	logger *zap.Logger,
) *BotController {
	cmdHandlers := handlers.NewHandlers(
		lessonService,
		studentService,
		statsService,
		profileService,
		location,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		lessonService,
		location,
		logger,
		cmdHandlers.SendMonthView,
		cmdHandlers.SendDayView,
	)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers wires every command and the callback router.
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/ayuda", bot.MatchTypeExact, c.handlers.HandleAyuda)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/hoy", bot.MatchTypeExact, c.handlers.HandleHoy)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/semana", bot.MatchTypeExact, c.handlers.HandleSemana)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mes", bot.MatchTypeExact, c.handlers.HandleMes)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/clases", bot.MatchTypeExact, c.handlers.HandleClases)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/nueva", bot.MatchTypePrefix, c.handlers.HandleNueva)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/alumnos", bot.MatchTypeExact, c.handlers.HandleAlumnos)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/ingresos", bot.MatchTypeExact, c.handlers.HandleIngresos)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/deudas", bot.MatchTypeExact, c.handlers.HandleDeudas)

	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands installs the command menu.
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "hoy", Description: "📅 Clases de hoy"},
		{Command: "semana", Description: "🗓 Clases de esta semana"},
		{Command: "mes", Description: "📆 Calendario del mes"},
		{Command: "clases", Description: "📖 Próximas clases"},
		{Command: "nueva", Description: "➕ Apuntar una clase"},
		{Command: "alumnos", Description: "👥 Mis alumnos"},
		{Command: "ingresos", Description: "💶 Resumen de ingresos"},
		{Command: "deudas", Description: "🔴 Clases sin cobrar"},
		{Command: "ayuda", Description: "❓ Ayuda"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: commands})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Send implements app.Sender for the background reminder.
func (c *BotController) Send(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	return err
}

// Start runs the long-polling loop until ctx is cancelled.
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot")
	c.bot.Start(ctx)
}
