package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/Freeeeeet/docspot/internal/repository"
	"go.uber.org/zap"
)

// SubmitRequestInput данные формы записи на приём
type SubmitRequestInput struct {
	PatientID string // пусто - берётся имя из сессии
	DoctorID  int64  `validate:"required"`
	Date      string `validate:"required"`
	Time      string `validate:"required"`
	Reason    string `validate:"required"`
}

// BookingService точка входа для презентационного слоя: каждая мутация
// сначала проходит Authorize, затем выполняется реестром
type BookingService struct {
	registry *repository.AppointmentRegistry
	sessions *SessionService
	doctors  *DoctorService
	logger   *zap.Logger
}

func NewBookingService(
	registry *repository.AppointmentRegistry,
	sessions *SessionService,
	doctors *DoctorService,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		registry: registry,
		sessions: sessions,
		doctors:  doctors,
		logger:   logger,
	}
}

// SubmitRequest создаёт заявку пациента на приём
func (s *BookingService) SubmitRequest(ctx context.Context, session *model.Session, in SubmitRequestInput) (*model.AppointmentRequest, error) {
	active, err := s.sessions.Authorize(session, model.OpSubmitRequest)
	if err != nil {
		return nil, err
	}

	if in.PatientID == "" {
		in.PatientID = active.Identity.DisplayName
	}

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown doctor %d", model.ErrValidation, in.DoctorID)
		}
		return nil, err
	}

	req, err := s.registry.Submit(repository.SubmitParams{
		PatientID: in.PatientID,
		DoctorID:  doctor.ID,
		Specialty: doctor.Specialty,
		Location:  doctor.Location,
		Date:      in.Date,
		Time:      in.Time,
		Reason:    in.Reason,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointment request submitted",
		zap.Int64("request_id", req.ID),
		zap.String("patient_id", req.PatientID),
		zap.Int64("doctor_id", req.DoctorID),
		zap.String("date", req.RequestedDate),
		zap.String("time", req.RequestedTime),
	)

	return req, nil
}

// AdminDecide одобряет или отклоняет заявку (только администратор)
func (s *BookingService) AdminDecide(ctx context.Context, session *model.Session, requestID int64, decision model.AdminDecision) (*model.AppointmentRequest, error) {
	active, err := s.sessions.Authorize(session, model.OpAdminDecide)
	if err != nil {
		return nil, err
	}

	req, err := s.registry.AdminDecide(requestID, decision, active.Identity.DisplayName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointment request reviewed by admin",
		zap.Int64("request_id", req.ID),
		zap.String("admin", active.Identity.DisplayName),
		zap.String("status", string(req.Status)),
	)

	return req, nil
}

// DoctorDecide принимает или отклоняет одобренную заявку (только врач).
// Врач, привязанный к справочнику, может решать только свои заявки
func (s *BookingService) DoctorDecide(ctx context.Context, session *model.Session, requestID int64, decision model.DoctorDecision) (*model.AppointmentRequest, error) {
	active, err := s.sessions.Authorize(session, model.OpDoctorDecide)
	if err != nil {
		return nil, err
	}

	if active.Identity.DoctorID != 0 {
		current, err := s.registry.Get(requestID)
		if err != nil {
			return nil, err
		}
		if current.DoctorID != active.Identity.DoctorID {
			return nil, fmt.Errorf("%w: request %d belongs to another doctor", model.ErrUnauthorized, requestID)
		}
	}

	req, err := s.registry.DoctorDecide(requestID, decision, active.Identity.DisplayName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Appointment request decided by doctor",
		zap.Int64("request_id", req.ID),
		zap.Int64("doctor_id", req.DoctorID),
		zap.String("status", string(req.Status)),
	)

	return req, nil
}

// GetByID получает заявку по ID
func (s *BookingService) GetByID(requestID int64) (*model.AppointmentRequest, error) {
	return s.registry.Get(requestID)
}

// ListAll все заявки в порядке создания
func (s *BookingService) ListAll() []*model.AppointmentRequest {
	return s.registry.ListAll()
}
