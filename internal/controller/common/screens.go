package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/docspot/internal/controller/formatting"
	"github.com/Freeeeeet/docspot/internal/controller/keyboard"
	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/go-telegram/bot/models"
)

// DoctorListScreen текст и клавиатура поиска врачей
func DoctorListScreen(ctx context.Context, d *Deps, query, specialty string) (string, *models.InlineKeyboardMarkup, error) {
	doctors, err := d.Doctors.SearchDoctors(ctx, query, specialty)
	if err != nil {
		return "", nil, err
	}

	specialties, err := d.Doctors.Specialties(ctx)
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString("🔎 Find a Doctor")
	if query != "" {
		sb.WriteString(fmt.Sprintf(" • \"%s\"", query))
	}
	if specialty != "" && specialty != model.SpecialtyAll {
		sb.WriteString(" • " + specialty)
	}
	sb.WriteString("\n\n")

	kb := keyboard.NewBuilder()
	if len(doctors) == 0 {
		sb.WriteString("No doctors match your search.")
	}
	for _, doc := range doctors {
		sb.WriteString(formatting.FormatDoctor(doc))
		sb.WriteString("\n\n")
		kb.Row(keyboard.Button("📅 Book "+doc.Name, fmt.Sprintf("%s%d", BookDoctor, doc.ID)))
	}

	filters := []models.InlineKeyboardButton{keyboard.Button("All Specialties", FilterSpecialty+model.SpecialtyAll)}
	for _, s := range specialties {
		filters = append(filters, keyboard.Button(s, FilterSpecialty+s))
	}
	kb.Grid(2, filters...)

	return sb.String(), kb.Build(), nil
}

// TimeSlotKeyboard клавиатура выбора времени приёма
func TimeSlotKeyboard() *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(model.DefaultTimeSlots))
	for i, slot := range model.DefaultTimeSlots {
		buttons = append(buttons, keyboard.Button(slot, fmt.Sprintf("%s%d", PickTimeSlot, i)))
	}
	return keyboard.NewBuilder().
		Grid(3, buttons...).
		Row(keyboard.Button("✖️ Cancel", CancelBooking)).
		Build()
}

// AdminReviewKeyboard кнопки одобрения заявки
func AdminReviewKeyboard(requestID int64) *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().Row(
		keyboard.Button("✅ Approve & Send to Doctor", fmt.Sprintf("%s%d", ApproveRequest, requestID)),
		keyboard.Button("🚫 Reject Request", fmt.Sprintf("%s%d", RejectRequest, requestID)),
	).Build()
}

// DoctorReviewKeyboard кнопки решения врача
func DoctorReviewKeyboard(requestID int64) *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().Row(
		keyboard.Button("✅ Accept", fmt.Sprintf("%s%d", AcceptRequest, requestID)),
		keyboard.Button("❌ Decline", fmt.Sprintf("%s%d", DeclineRequest, requestID)),
	).Build()
}
