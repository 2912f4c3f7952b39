package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.send(ctx, b, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

// sendWithKeyboard отправляет сообщение с inline клавиатурой
func (h *Handlers) sendWithKeyboard(ctx context.Context, b *bot.Bot, chatID int64, text string, markup *models.InlineKeyboardMarkup) {
	h.send(ctx, b, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
}

func (h *Handlers) send(ctx context.Context, b *bot.Bot, params *bot.SendMessageParams) {
	_, err := b.SendMessage(ctx, params)
	if err != nil {
		h.Logger.Error("Failed to send message",
			zap.Any("chat_id", params.ChatID),
			zap.Error(err),
		)
	}
}

// commandArgs возвращает аргументы команды: "/login admin Ann" -> ["admin", "Ann"]
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
