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

func newDepartmentFixture(t *testing.T) (*DepartmentService, *models.Institute, *memEventRepo) {
	t.Helper()

	institutes := newMemInstituteRepo()
	institute := &models.Institute{Name: "Tech Institute", Location: "Pune", Contact: "555"}
	require.NoError(t, institutes.Create(context.Background(), institute))

	events := newMemEventRepo()
	return NewDepartmentService(newMemDepartmentRepo(), institutes, events, false), institute, events
}

func TestCreateDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("creates under an existing institute", func(t *testing.T) {
		svc, institute, _ := newDepartmentFixture(t)

		department, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{
			Name: "Computer Science", Hod: "Dr. Rao", ContactEmail: "cs@tech.edu", InstituteID: institute.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, institute.ID, department.InstituteID)
		require.NotNil(t, department.Institute)
		assert.Equal(t, "Tech Institute", department.Institute.Name)
	})

	t.Run("unknown institute", func(t *testing.T) {
		svc, _, _ := newDepartmentFixture(t)

		_, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{
			Name: "CS", Hod: "Dr. Rao", ContactEmail: "cs@tech.edu", InstituteID: 99,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.EqualError(t, err, "Institute not found")
	})

	t.Run("duplicate name within the institute", func(t *testing.T) {
		svc, institute, _ := newDepartmentFixture(t)

		req := &dto.CreateDepartmentRequest{Name: "CS", Hod: "Dr. Rao", ContactEmail: "cs@tech.edu", InstituteID: institute.ID}
		_, err := svc.CreateDepartment(ctx, req)
		require.NoError(t, err)

		_, err = svc.CreateDepartment(ctx, req)
		require.Error(t, err)
		assert.EqualError(t, err, "A department with this name already exists in this institute")
	})
}

func TestUpdateDepartment(t *testing.T) {
	ctx := context.Background()

	svc, institute, _ := newDepartmentFixture(t)
	first, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{
		Name: "CS", Hod: "Dr. Rao", ContactEmail: "cs@tech.edu", InstituteID: institute.ID,
	})
	require.NoError(t, err)
	second, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{
		Name: "EE", Hod: "Dr. Iyer", ContactEmail: "ee@tech.edu", InstituteID: institute.ID,
	})
	require.NoError(t, err)

	t.Run("renaming onto a sibling is rejected", func(t *testing.T) {
		_, err := svc.UpdateDepartment(ctx, second.ID, &dto.UpdateDepartmentRequest{Name: first.Name})
		require.Error(t, err)
		assert.EqualError(t, err, "Another department with this name already exists in this institute")
	})

	t.Run("empty fields keep stored values", func(t *testing.T) {
		updated, err := svc.UpdateDepartment(ctx, second.ID, &dto.UpdateDepartmentRequest{Hod: "Dr. Nair"})
		require.NoError(t, err)
		assert.Equal(t, "EE", updated.Name)
		assert.Equal(t, "Dr. Nair", updated.Hod)
	})
}

func TestGetDepartmentEvents(t *testing.T) {
	ctx := context.Background()

	svc, institute, events := newDepartmentFixture(t)
	department, err := svc.CreateDepartment(ctx, &dto.CreateDepartmentRequest{
		Name: "CS", Hod: "Dr. Rao", ContactEmail: "cs@tech.edu", InstituteID: institute.ID,
	})
	require.NoError(t, err)

	deptID := department.ID
	require.NoError(t, events.Create(ctx, &models.Event{Title: "Hack Night", DepartmentID: &deptID}))
	require.NoError(t, events.Create(ctx, &models.Event{Title: "Open Mic"}))

	list, err := svc.GetDepartmentEvents(ctx, department.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hack Night", list[0].Title)
}
