package formatting

import "github.com/Freeeeeet/docspot/internal/model"

// StatusDisplay представляет отображение статуса заявки
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetStatusDisplay возвращает emoji и текст для статуса заявки
func GetStatusDisplay(status model.AppointmentStatus) StatusDisplay {
	displays := map[model.AppointmentStatus]StatusDisplay{
		model.StatusPendingAdminReview: {"⏳", model.StatusPendingAdminReview.Label()},
		model.StatusApproved:           {"🟡", model.StatusApproved.Label()},
		model.StatusRejected:           {"🚫", model.StatusRejected.Label()},
		model.StatusConfirmed:          {"✅", model.StatusConfirmed.Label()},
		model.StatusDeclined:           {"❌", model.StatusDeclined.Label()},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Unknown"}
}
