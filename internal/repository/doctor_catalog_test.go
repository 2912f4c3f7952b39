package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDoctorCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := NewStaticDoctorCatalog(DefaultDoctors)

	t.Run("List keeps catalog order", func(t *testing.T) {
		doctors, err := catalog.List(ctx)
		require.NoError(t, err)
		require.Len(t, doctors, 3)
		assert.Equal(t, "Cardiology", doctors[0].Specialty)
		assert.Equal(t, "Dermatology", doctors[1].Specialty)
		assert.Equal(t, "Pediatrics", doctors[2].Specialty)
	})

	t.Run("GetByID", func(t *testing.T) {
		doctor, err := catalog.GetByID(ctx, DefaultDoctors[1].ID)
		require.NoError(t, err)
		require.NotNil(t, doctor)
		assert.Equal(t, DefaultDoctors[1].Name, doctor.Name)
	})

	t.Run("Unknown id returns nil", func(t *testing.T) {
		doctor, err := catalog.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, doctor)
	})

	t.Run("Returned doctors are copies", func(t *testing.T) {
		doctors, _ := catalog.List(ctx)
		doctors[0].Name = "changed"

		again, _ := catalog.List(ctx)
		assert.Equal(t, DefaultDoctors[0].Name, again[0].Name)
	})
}
