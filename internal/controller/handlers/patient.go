package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/docspot/internal/controller/common"
	"github.com/Freeeeeet/docspot/internal/controller/formatting"
	"github.com/Freeeeeet/docspot/internal/controller/state"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDoctors обрабатывает /doctors [запрос] - поиск врачей
func (h *Handlers) HandleDoctors(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	query := strings.Join(commandArgs(update.Message.Text), " ")
	h.State.SetData(update.Message.From.ID, state.KeySearchQuery, query)

	text, markup, err := common.DoctorListScreen(ctx, h.Deps, query, model.SpecialtyAll)
	if err != nil {
		h.Logger.Error("Failed to search doctors", zap.String("query", query), zap.Error(err))
		h.sendMessage(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	h.sendWithKeyboard(ctx, b, update.Message.Chat.ID, text, markup)
}

// HandleMyAppointments обрабатывает /myappointments - история заявок пациента
func (h *Handlers) HandleMyAppointments(ctx context.Context, b *bot.Bot, update *models.Update) {
	session, ok := h.requireRole(ctx, b, update, model.RolePatient)
	if !ok {
		return
	}

	entries := h.Projector.PatientHistoryView(session.Identity.DisplayName)
	h.sendMessage(ctx, b, update.Message.Chat.ID, formatting.FormatPatientHistory(entries))
}
