package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseIDFromCallback извлекает ID из callback data
// Например: "approve:123" -> 123
func ParseIDFromCallback(data string) (int64, error) {
	value, err := ParseValueFromCallback(data)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// ParseValueFromCallback возвращает часть callback data после первого ':'
func ParseValueFromCallback(data string) (string, error) {
	_, value, ok := strings.Cut(data, ":")
	if !ok || value == "" {
		return "", fmt.Errorf("invalid callback data format")
	}
	return value, nil
}
