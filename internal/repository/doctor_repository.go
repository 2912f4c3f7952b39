package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/docspot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DoctorRepository справочник врачей в Postgres (только чтение)
type DoctorRepository struct {
	pool *pgxpool.Pool
}

func NewDoctorRepository(pool *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{pool: pool}
}

// List получает всех врачей в порядке ID
func (r *DoctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT id, name, specialty, location, experience_years, rating, bio
		FROM doctors
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var doctors []*model.Doctor
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}

	return doctors, nil
}

// GetByID получает врача по ID, nil если не найден
func (r *DoctorRepository) GetByID(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `
		SELECT id, name, specialty, location, experience_years, rating, bio
		FROM doctors
		WHERE id = $1
	`

	doctor, err := scanDoctor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get doctor by id: %w", err)
	}

	return doctor, nil
}

func scanDoctor(row pgx.Row) (*model.Doctor, error) {
	var doctor model.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Location,
		&doctor.ExperienceYears,
		&doctor.Rating,
		&doctor.Bio,
	)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}
