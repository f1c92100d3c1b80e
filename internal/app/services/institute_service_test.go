package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
)

func TestCreateInstitute(t *testing.T) {
	ctx := context.Background()
	institutes := newMemInstituteRepo()
	svc := NewInstituteService(institutes, newMemDepartmentRepo(), false)

	_, err := svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Tech Institute", Location: "Pune", Contact: "555"})
	require.NoError(t, err)

	_, err = svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Tech Institute", Location: "Delhi", Contact: "556"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "Institute already exists")
}

func TestUpdateInstitute(t *testing.T) {
	ctx := context.Background()
	institutes := newMemInstituteRepo()
	svc := NewInstituteService(institutes, newMemDepartmentRepo(), false)

	first, err := svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Tech Institute", Location: "Pune", Contact: "555"})
	require.NoError(t, err)
	second, err := svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Arts College", Location: "Delhi", Contact: "556"})
	require.NoError(t, err)

	t.Run("renaming onto an existing name is rejected", func(t *testing.T) {
		_, err := svc.UpdateInstitute(ctx, second.ID, &dto.UpdateInstituteRequest{Name: first.Name})
		require.Error(t, err)
		assert.EqualError(t, err, "Institute already exists")
	})

	t.Run("empty fields keep stored values", func(t *testing.T) {
		updated, err := svc.UpdateInstitute(ctx, second.ID, &dto.UpdateInstituteRequest{Contact: "777"})
		require.NoError(t, err)
		assert.Equal(t, "Arts College", updated.Name)
		assert.Equal(t, "Delhi", updated.Location)
		assert.Equal(t, "777", updated.Contact)
	})
}

func TestDeleteInstitute(t *testing.T) {
	ctx := context.Background()

	t.Run("restrict policy blocks delete with dependents", func(t *testing.T) {
		institutes := newMemInstituteRepo()
		institutes.departments = 3
		svc := NewInstituteService(institutes, newMemDepartmentRepo(), true)

		inst, err := svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Tech", Location: "Pune", Contact: "555"})
		require.NoError(t, err)

		err = svc.DeleteInstitute(ctx, inst.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("default policy removes the row", func(t *testing.T) {
		institutes := newMemInstituteRepo()
		institutes.departments = 3
		svc := NewInstituteService(institutes, newMemDepartmentRepo(), false)

		inst, err := svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Tech", Location: "Pune", Contact: "555"})
		require.NoError(t, err)
		require.NoError(t, svc.DeleteInstitute(ctx, inst.ID))

		_, err = svc.GetInstituteByID(ctx, inst.ID)
		require.Error(t, err)
		assert.EqualError(t, err, "Institute not found")
	})
}

func TestGetInstituteSummary(t *testing.T) {
	ctx := context.Background()

	institutes := newMemInstituteRepo()
	institutes.events = 6
	institutes.participants = 42
	svc := NewInstituteService(institutes, newMemDepartmentRepo(), false)

	inst, err := svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Tech", Location: "Pune", Contact: "555"})
	require.NoError(t, err)

	summary, err := svc.GetInstituteSummary(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), summary.EventsCount)
	assert.Equal(t, int64(42), summary.ParticipantsCount)
}

func TestGetInstituteDepartments(t *testing.T) {
	ctx := context.Background()

	institutes := newMemInstituteRepo()
	departments := newMemDepartmentRepo()
	svc := NewInstituteService(institutes, departments, false)

	inst, err := svc.CreateInstitute(ctx, &dto.CreateInstituteRequest{Name: "Tech", Location: "Pune", Contact: "555"})
	require.NoError(t, err)

	require.NoError(t, departments.Create(ctx, &models.Department{Name: "CS", InstituteID: inst.ID}))
	require.NoError(t, departments.Create(ctx, &models.Department{Name: "EE", InstituteID: inst.ID}))
	require.NoError(t, departments.Create(ctx, &models.Department{Name: "Other", InstituteID: inst.ID + 1}))

	list, err := svc.GetInstituteDepartments(ctx, inst.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
