package controller

import (
	"context"

	"github.com/Freeeeeet/docspot/internal/controller/callbacks"
	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(botInstance *bot.Bot, deps *common.Deps) *BotController {
	return &BotController{
		bot:             botInstance,
		handlers:        handlers.NewHandlers(deps),
		callbackHandler: callbacks.NewHandler(deps),
		logger:          deps.Logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Общие команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypePrefix, c.handlers.HandleLogin)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, c.handlers.HandleLogout)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/whoami", bot.MatchTypeExact, c.handlers.HandleWhoAmI)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Пациент
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/doctors", bot.MatchTypePrefix, c.handlers.HandleDoctors)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myappointments", bot.MatchTypeExact, c.handlers.HandleMyAppointments)

	// Администратор
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/requests", bot.MatchTypeExact, c.handlers.HandleRequests)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypeExact, c.handlers.HandleHistory)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypeExact, c.handlers.HandleStats)

	// Врач
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/inbox", bot.MatchTypeExact, c.handlers.HandleInbox)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/schedule", bot.MatchTypeExact, c.handlers.HandleSchedule)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/today", bot.MatchTypeExact, c.handlers.HandleToday)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Get started"},
		{Command: "help", Description: "❓ Command reference"},
		{Command: "login", Description: "🔑 Log in: /login <role> <name>"},
		{Command: "logout", Description: "🚪 Log out"},
		{Command: "whoami", Description: "👤 Current session"},
		{Command: "doctors", Description: "🔎 Find a doctor (patient)"},
		{Command: "myappointments", Description: "📋 My appointments (patient)"},
		{Command: "requests", Description: "⏳ Pending requests (admin)"},
		{Command: "history", Description: "🗂 Reviewed requests (admin)"},
		{Command: "stats", Description: "📊 Request counters (admin)"},
		{Command: "inbox", Description: "📥 Appointment requests (doctor)"},
		{Command: "schedule", Description: "🗓 My schedule (doctor)"},
		{Command: "today", Description: "📅 Today's appointments (doctor)"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
