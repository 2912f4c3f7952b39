package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/docspot/internal/model"
)

// SubmitParams данные новой заявки на приём
type SubmitParams struct {
	PatientID string
	DoctorID  int64
	Specialty string
	Location  string
	Date      string // YYYY-MM-DD
	Time      string
	Reason    string
}

// AppointmentRegistry хранит заявки в памяти и следит за допустимыми переходами статусов.
// Все мутации выполняются под write-локом как одна операция check-and-set.
type AppointmentRegistry struct {
	mu       sync.RWMutex
	nextID   int64
	requests map[int64]*model.AppointmentRequest
	order    []int64 // порядок вставки
	now      func() time.Time
}

// RegistryOption настройка реестра
type RegistryOption func(*AppointmentRegistry)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) RegistryOption {
	return func(r *AppointmentRegistry) {
		r.now = now
	}
}

// NewAppointmentRegistry создаёт пустой реестр
func NewAppointmentRegistry(opts ...RegistryOption) *AppointmentRegistry {
	r := &AppointmentRegistry{
		requests: make(map[int64]*model.AppointmentRequest),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Submit создаёт заявку в статусе PendingAdminReview
func (r *AppointmentRegistry) Submit(p SubmitParams) (*model.AppointmentRequest, error) {
	now := r.now()

	if err := validateSubmit(p, now); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	req := &model.AppointmentRequest{
		ID:            r.nextID,
		PatientID:     strings.TrimSpace(p.PatientID),
		DoctorID:      p.DoctorID,
		Specialty:     p.Specialty,
		Location:      p.Location,
		RequestedDate: strings.TrimSpace(p.Date),
		RequestedTime: strings.TrimSpace(p.Time),
		Reason:        strings.TrimSpace(p.Reason),
		Status:        model.StatusPendingAdminReview,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.requests[req.ID] = req
	r.order = append(r.order, req.ID)

	cp := *req
	return &cp, nil
}

func validateSubmit(p SubmitParams, now time.Time) error {
	if strings.TrimSpace(p.PatientID) == "" {
		return fmt.Errorf("%w: patient is required", model.ErrValidation)
	}
	if p.DoctorID <= 0 {
		return fmt.Errorf("%w: doctor is required", model.ErrValidation)
	}

	date := strings.TrimSpace(p.Date)
	if date == "" {
		return fmt.Errorf("%w: date is required", model.ErrValidation)
	}
	if strings.TrimSpace(p.Time) == "" {
		return fmt.Errorf("%w: time is required", model.ErrValidation)
	}
	if strings.TrimSpace(p.Reason) == "" {
		return fmt.Errorf("%w: reason is required", model.ErrValidation)
	}

	day, err := time.ParseInLocation(model.DateLayout, date, now.Location())
	if err != nil {
		return fmt.Errorf("%w: date %q is not in YYYY-MM-DD format", model.ErrValidation, date)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", model.ErrValidation, date)
	}

	return nil
}

// AdminDecide переводит заявку из PendingAdminReview в Approved или Rejected
func (r *AppointmentRegistry) AdminDecide(id int64, decision model.AdminDecision, actor string) (*model.AppointmentRequest, error) {
	target, ok := decision.Target()
	if !ok {
		return nil, fmt.Errorf("%w: unknown admin decision %q", model.ErrValidation, decision)
	}
	return r.transition(id, model.StatusPendingAdminReview, target, actor)
}

// DoctorDecide переводит заявку из Approved в Confirmed или Declined
func (r *AppointmentRegistry) DoctorDecide(id int64, decision model.DoctorDecision, actor string) (*model.AppointmentRequest, error) {
	target, ok := decision.Target()
	if !ok {
		return nil, fmt.Errorf("%w: unknown doctor decision %q", model.ErrValidation, decision)
	}
	return r.transition(id, model.StatusApproved, target, actor)
}

func (r *AppointmentRegistry) transition(id int64, from, to model.AppointmentStatus, actor string) (*model.AppointmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment request %d", model.ErrNotFound, id)
	}

	if req.Status != from || !req.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: request %d is %s, cannot move to %s",
			model.ErrInvalidTransition, id, req.Status, to)
	}

	req.Status = to
	req.DecidedBy = actor
	req.UpdatedAt = r.now()

	cp := *req
	return &cp, nil
}

// Get возвращает копию заявки по ID
func (r *AppointmentRegistry) Get(id int64) (*model.AppointmentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: appointment request %d", model.ErrNotFound, id)
	}

	cp := *req
	return &cp, nil
}

// ListAll возвращает копии всех заявок по возрастанию CreatedAt (при равенстве - в порядке вставки)
func (r *AppointmentRegistry) ListAll() []*model.AppointmentRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.AppointmentRequest, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.requests[id]
		result = append(result, &cp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

// Len возвращает количество заявок
func (r *AppointmentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
