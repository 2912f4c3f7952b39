package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/docspot/internal/model"
)

// DoctorCatalog источник справочника врачей (Postgres или память)
type DoctorCatalog interface {
	List(ctx context.Context) ([]*model.Doctor, error)
	GetByID(ctx context.Context, id int64) (*model.Doctor, error)
}

type DoctorService struct {
	catalog DoctorCatalog
}

func NewDoctorService(catalog DoctorCatalog) *DoctorService {
	return &DoctorService{catalog: catalog}
}

// ListDoctors возвращает весь справочник
func (s *DoctorService) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

// SearchDoctors ищет врачей по подстроке в имени или специальности (без учёта регистра).
// specialty - точное совпадение, пустая строка или "all" отключают фильтр
func (s *DoctorService) SearchDoctors(ctx context.Context, query, specialty string) ([]*model.Doctor, error) {
	doctors, err := s.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))

	var result []*model.Doctor
	for _, d := range doctors {
		matchesSearch := strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.Specialty), needle)
		matchesSpecialty := specialty == "" || specialty == model.SpecialtyAll || d.Specialty == specialty
		if matchesSearch && matchesSpecialty {
			result = append(result, d)
		}
	}
	return result, nil
}

// Specialties возвращает уникальные специальности в порядке справочника
func (s *DoctorService) Specialties(ctx context.Context) ([]string, error) {
	doctors, err := s.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var result []string
	for _, d := range doctors {
		if !seen[d.Specialty] {
			seen[d.Specialty] = true
			result = append(result, d.Specialty)
		}
	}
	return result, nil
}

// GetDoctor получает врача по ID
func (s *DoctorService) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	if doctor == nil {
		return nil, fmt.Errorf("%w: doctor %d", model.ErrNotFound, id)
	}
	return doctor, nil
}

// FindByName ищет врача по полному имени без учёта регистра и префикса "Dr."
func (s *DoctorService) FindByName(ctx context.Context, name string) (*model.Doctor, error) {
	doctors, err := s.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	want := normalizeDoctorName(name)
	for _, d := range doctors {
		if normalizeDoctorName(d.Name) == want {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: doctor %q", model.ErrNotFound, name)
}

func normalizeDoctorName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "dr.")
	n = strings.TrimPrefix(n, "dr ")
	return strings.Join(strings.Fields(n), " ")
}
