package model

import "time"

// AppointmentStatus статус заявки на приём
type AppointmentStatus string

const (
	StatusPendingAdminReview AppointmentStatus = "pending_admin_review" // Ожидает проверки администратором
	StatusApproved           AppointmentStatus = "approved"             // Одобрена администратором, ждёт врача
	StatusRejected           AppointmentStatus = "rejected"             // Отклонена администратором
	StatusConfirmed          AppointmentStatus = "confirmed"            // Подтверждена врачом
	StatusDeclined           AppointmentStatus = "declined"             // Отклонена врачом
)

// AdminDecision решение администратора по заявке
type AdminDecision string

const (
	AdminApprove AdminDecision = "approve"
	AdminReject  AdminDecision = "reject"
)

// DoctorDecision решение врача по одобренной заявке
type DoctorDecision string

const (
	DoctorAccept  DoctorDecision = "accept"
	DoctorDecline DoctorDecision = "decline"
)

// DateLayout формат даты приёма (как в форме записи)
const DateLayout = "2006-01-02"

// DefaultTimeSlots слоты времени, которые предлагаются пациенту при записи
var DefaultTimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
}

// AppointmentRequest заявка пациента на приём к врачу
type AppointmentRequest struct {
	ID            int64             `json:"id"`
	PatientID     string            `json:"patient_id"`
	DoctorID      int64             `json:"doctor_id"`
	Specialty     string            `json:"specialty"` // копия из каталога на момент записи
	Location      string            `json:"location"`  // копия из каталога на момент записи
	RequestedDate string            `json:"requested_date"`
	RequestedTime string            `json:"requested_time"`
	Reason        string            `json:"reason"`
	Status        AppointmentStatus `json:"status"`
	DecidedBy     string            `json:"decided_by,omitempty"` // кто выполнил последний переход
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPendingAdminReview: {StatusApproved, StatusRejected},
	StatusApproved:           {StatusConfirmed, StatusDeclined},
	StatusRejected:           {},
	StatusConfirmed:          {},
	StatusDeclined:           {},
}

// CanTransitionTo проверяет допустим ли переход в новый статус
func (r *AppointmentRequest) CanTransitionTo(next AppointmentStatus) bool {
	for _, s := range transitions[r.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// IsPending checks if request is waiting for an admin
func (r *AppointmentRequest) IsPending() bool {
	return r.Status == StatusPendingAdminReview
}

// IsTerminal checks if no further transition is defined
func (r *AppointmentRequest) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// IsTerminal checks if no further transition is defined for the status
func (s AppointmentStatus) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// IsValid проверяет что статус известен
func (s AppointmentStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// Label возвращает человекочитаемое название статуса для пациента
func (s AppointmentStatus) Label() string {
	switch s {
	case StatusPendingAdminReview:
		return "Pending Admin Approval"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusConfirmed:
		return "Confirmed"
	case StatusDeclined:
		return "Declined"
	default:
		return "Unknown"
	}
}

// Target возвращает статус, в который переводит решение администратора
func (d AdminDecision) Target() (AppointmentStatus, bool) {
	switch d {
	case AdminApprove:
		return StatusApproved, true
	case AdminReject:
		return StatusRejected, true
	}
	return "", false
}

// Target возвращает статус, в который переводит решение врача
func (d DoctorDecision) Target() (AppointmentStatus, bool) {
	switch d {
	case DoctorAccept:
		return StatusConfirmed, true
	case DoctorDecline:
		return StatusDeclined, true
	}
	return "", false
}
