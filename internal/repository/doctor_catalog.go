package repository

import (
	"context"

	"github.com/Freeeeeet/docspot/internal/model"
)

// DefaultDoctors справочник по умолчанию, когда база не настроена
var DefaultDoctors = []model.Doctor{
	{
		ID:              1,
		Name:            "Dr. Sarah Johnson",
		Specialty:       "Cardiology",
		Location:        "Downtown Medical Center",
		ExperienceYears: 15,
		Rating:          4.8,
		Bio:             "Specialized in heart disease prevention and treatment with extensive experience in cardiac surgery.",
	},
	{
		ID:              2,
		Name:            "Dr. Michael Chen",
		Specialty:       "Dermatology",
		Location:        "Westside Clinic",
		ExperienceYears: 10,
		Rating:          4.9,
		Bio:             "Expert in skin conditions, cosmetic dermatology, and dermatological surgery.",
	},
	{
		ID:              3,
		Name:            "Dr. Emily Rodriguez",
		Specialty:       "Pediatrics",
		Location:        "Children's Hospital",
		ExperienceYears: 12,
		Rating:          4.7,
		Bio:             "Dedicated to providing comprehensive healthcare for children and adolescents.",
	},
}

// StaticDoctorCatalog справочник врачей в памяти
type StaticDoctorCatalog struct {
	doctors []model.Doctor
}

// NewStaticDoctorCatalog создаёт справочник из переданного списка (копирует его)
func NewStaticDoctorCatalog(doctors []model.Doctor) *StaticDoctorCatalog {
	cp := make([]model.Doctor, len(doctors))
	copy(cp, doctors)
	return &StaticDoctorCatalog{doctors: cp}
}

// List возвращает копии всех врачей
func (c *StaticDoctorCatalog) List(_ context.Context) ([]*model.Doctor, error) {
	result := make([]*model.Doctor, 0, len(c.doctors))
	for i := range c.doctors {
		d := c.doctors[i]
		result = append(result, &d)
	}
	return result, nil
}

// GetByID возвращает врача по ID, nil если не найден
func (c *StaticDoctorCatalog) GetByID(_ context.Context, id int64) (*model.Doctor, error) {
	for i := range c.doctors {
		if c.doctors[i].ID == id {
			d := c.doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}
