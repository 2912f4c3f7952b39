package callbacks

import (
	"context"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обработчик нажатий на inline кнопки
type Handler struct {
	*common.Deps
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(deps *common.Deps) *Handler {
	return &Handler{Deps: deps}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Debug("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	h.Route(ctx, b, callback)
}

// editMessage заменяет текст сообщения с кнопками
func (h *Handler) editMessage(ctx context.Context, b *bot.Bot, msg *models.Message, text string, markup *models.InlineKeyboardMarkup) {
	params := &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      text,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.EditMessageText(ctx, params); err != nil {
		h.Logger.Error("Failed to edit message",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Int("message_id", msg.ID),
			zap.Error(err))
	}
}

// sendMessage отправляет новое сообщение в чат
func (h *Handler) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		h.Logger.Error("Failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
