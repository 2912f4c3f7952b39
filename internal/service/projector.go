package service

import (
	"time"

	"github.com/Freeeeeet/docspot/internal/model"
)

// RegistryReader источник снимка заявок для проекций
type RegistryReader interface {
	ListAll() []*model.AppointmentRequest
}

// AdminPendingEntry заявка в очереди администратора.
// SlotConflicts - сколько других активных заявок к тому же врачу на ту же дату и время
type AdminPendingEntry struct {
	Request       *model.AppointmentRequest `json:"request"`
	SlotConflicts int                       `json:"slot_conflicts"`
}

// AdminHistory решённые администратором заявки
type AdminHistory struct {
	Approved []*model.AppointmentRequest `json:"approved"`
	Rejected []*model.AppointmentRequest `json:"rejected"`
}

// PatientHistoryEntry заявка пациента с подписью статуса
type PatientHistoryEntry struct {
	Request     *model.AppointmentRequest `json:"request"`
	StatusLabel string                    `json:"status_label"`
}

// Counts сводные счётчики для админки
type Counts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Projector строит представления реестра для каждой роли.
// Ничего не меняет в реестре; каждый вызов читает один согласованный снимок.
type Projector struct {
	registry RegistryReader
	now      func() time.Time
}

func NewProjector(registry RegistryReader) *Projector {
	return &Projector{
		registry: registry,
		now:      time.Now,
	}
}

// AdminPendingView заявки, ожидающие администратора, в порядке поступления
func (p *Projector) AdminPendingView() []AdminPendingEntry {
	all := p.registry.ListAll()

	var result []AdminPendingEntry
	for _, req := range all {
		if req.Status != model.StatusPendingAdminReview {
			continue
		}
		result = append(result, AdminPendingEntry{
			Request:       req,
			SlotConflicts: countSlotConflicts(all, req),
		})
	}
	return result
}

// countSlotConflicts считает другие не отклонённые заявки на тот же слот врача
func countSlotConflicts(all []*model.AppointmentRequest, req *model.AppointmentRequest) int {
	n := 0
	for _, other := range all {
		if other.ID == req.ID || other.DoctorID != req.DoctorID {
			continue
		}
		if other.RequestedDate != req.RequestedDate || other.RequestedTime != req.RequestedTime {
			continue
		}
		switch other.Status {
		case model.StatusPendingAdminReview, model.StatusApproved, model.StatusConfirmed:
			n++
		}
	}
	return n
}

// AdminHistoryView одобренные и отклонённые администратором заявки
func (p *Projector) AdminHistoryView() AdminHistory {
	history := AdminHistory{
		Approved: []*model.AppointmentRequest{},
		Rejected: []*model.AppointmentRequest{},
	}
	for _, req := range p.registry.ListAll() {
		switch req.Status {
		case model.StatusApproved:
			history.Approved = append(history.Approved, req)
		case model.StatusRejected:
			history.Rejected = append(history.Rejected, req)
		}
	}
	return history
}

// DoctorPendingView одобренные администратором заявки врача, ещё не решённые врачом
func (p *Projector) DoctorPendingView(doctorID int64) []*model.AppointmentRequest {
	return p.filter(func(req *model.AppointmentRequest) bool {
		return req.DoctorID == doctorID && req.Status == model.StatusApproved
	})
}

// DoctorScheduleView подтверждённые приёмы врача
func (p *Projector) DoctorScheduleView(doctorID int64) []*model.AppointmentRequest {
	return p.filter(func(req *model.AppointmentRequest) bool {
		return req.DoctorID == doctorID && req.Status == model.StatusConfirmed
	})
}

// DoctorTodayView подтверждённые приёмы врача на сегодня
func (p *Projector) DoctorTodayView(doctorID int64) []*model.AppointmentRequest {
	today := p.now().Format(model.DateLayout)
	return p.filter(func(req *model.AppointmentRequest) bool {
		return req.DoctorID == doctorID &&
			req.Status == model.StatusConfirmed &&
			req.RequestedDate == today
	})
}

// PatientHistoryView все заявки пациента в любом статусе
func (p *Projector) PatientHistoryView(patientID string) []PatientHistoryEntry {
	var result []PatientHistoryEntry
	for _, req := range p.registry.ListAll() {
		if req.PatientID != patientID {
			continue
		}
		result = append(result, PatientHistoryEntry{
			Request:     req,
			StatusLabel: req.Status.Label(),
		})
	}
	return result
}

// CountsView пересчитывает счётчики по ListAll при каждом вызове
func (p *Projector) CountsView() Counts {
	all := p.registry.ListAll()

	counts := Counts{Total: len(all)}
	for _, req := range all {
		switch req.Status {
		case model.StatusPendingAdminReview:
			counts.Pending++
		case model.StatusApproved:
			counts.Approved++
		case model.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

func (p *Projector) filter(keep func(*model.AppointmentRequest) bool) []*model.AppointmentRequest {
	var result []*model.AppointmentRequest
	for _, req := range p.registry.ListAll() {
		if keep(req) {
			result = append(result, req)
		}
	}
	return result
}
