package handlers

import (
	"context"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// requireSession проверяет что пользователь залогинен
// Возвращает session и true если OK, nil и false если нет
func (h *Handlers) requireSession(ctx context.Context, b *bot.Bot, update *models.Update) (*model.Session, bool) {
	if update.Message == nil || update.Message.From == nil {
		return nil, false
	}

	session, err := h.CurrentSession(update.Message.From.ID)
	if err != nil {
		h.sendMessage(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return nil, false
	}

	return session, true
}

// requireRole проверяет что у пользователя нужная роль
func (h *Handlers) requireRole(ctx context.Context, b *bot.Bot, update *models.Update, role model.Role) (*model.Session, bool) {
	if update.Message == nil || update.Message.From == nil {
		return nil, false
	}

	session, err := h.RequireRole(update.Message.From.ID, role)
	if err != nil {
		h.Logger.Debug("Role check failed",
			zap.Int64("telegram_id", update.Message.From.ID),
			zap.String("required_role", string(role)),
			zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return nil, false
	}

	return session, true
}
