package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/Freeeeeet/docspot/internal/service"
)

// FormatRequest форматирует заявку для отображения
func FormatRequest(req *model.AppointmentRequest) string {
	display := GetStatusDisplay(req.Status)

	return fmt.Sprintf(
		"%s Request #%d\n"+
			"👤 Patient: %s\n"+
			"🩺 %s • %s\n"+
			"📅 %s at %s\n"+
			"📝 Reason: %s\n"+
			"📊 Status: %s\n"+
			"🕐 Requested on: %s",
		display.Emoji,
		req.ID,
		req.PatientID,
		req.Specialty,
		req.Location,
		req.RequestedDate,
		req.RequestedTime,
		req.Reason,
		display.Text,
		req.CreatedAt.Format(model.DateLayout),
	)
}

// FormatRequestShort одна строка для списков
func FormatRequestShort(req *model.AppointmentRequest) string {
	display := GetStatusDisplay(req.Status)
	return fmt.Sprintf("%s #%d %s at %s (%s)", display.Emoji, req.ID, req.RequestedDate, req.RequestedTime, req.PatientID)
}

// FormatPendingEntry заявка в очереди администратора с пометкой о пересечениях
func FormatPendingEntry(entry service.AdminPendingEntry) string {
	text := FormatRequest(entry.Request)
	if entry.SlotConflicts > 0 {
		text += fmt.Sprintf("\n⚠️ %d other request(s) for the same doctor and slot", entry.SlotConflicts)
	}
	return text
}

// FormatPatientHistory список заявок пациента
func FormatPatientHistory(entries []service.PatientHistoryEntry) string {
	if len(entries) == 0 {
		return "📭 You have no appointment requests yet.\n\nFind a doctor: /doctors"
	}

	var sb strings.Builder
	sb.WriteString("📋 My Appointments\n\n")
	for _, e := range entries {
		display := GetStatusDisplay(e.Request.Status)
		sb.WriteString(fmt.Sprintf("%s #%d %s • %s at %s\n   %s\n",
			display.Emoji,
			e.Request.ID,
			e.Request.Specialty,
			e.Request.RequestedDate,
			e.Request.RequestedTime,
			e.StatusLabel,
		))
	}
	return sb.String()
}

// FormatRequestList заголовок и короткие строки, либо текст для пустого списка
func FormatRequestList(title, empty string, reqs []*model.AppointmentRequest) string {
	if len(reqs) == 0 {
		return empty
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	for _, req := range reqs {
		sb.WriteString(FormatRequestShort(req))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatAdminHistory одобренные и отклонённые заявки
func FormatAdminHistory(history service.AdminHistory) string {
	return FormatRequestList("🟡 Approved Requests", "No approved requests yet", history.Approved) +
		"\n" +
		FormatRequestList("🚫 Rejected Requests", "No rejected requests yet", history.Rejected)
}

// FormatCounts сводка для администратора
func FormatCounts(c service.Counts) string {
	return fmt.Sprintf(
		"📊 Statistics\n\n"+
			"Total requests: %d\n"+
			"⏳ Pending review: %d\n"+
			"🟡 Approved: %d\n"+
			"🚫 Rejected: %d",
		c.Total, c.Pending, c.Approved, c.Rejected,
	)
}
