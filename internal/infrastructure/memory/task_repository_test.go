package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/infrastructure/memory"
)

func timePtr(v time.Time) *time.Time { return &v }

// ListByDueDate compara solo el día calendario: una fecha de consulta con
// hora no-medianoche debe casar con tareas que vencen ese día a cualquier hora.
func TestTaskRepo_ListByDueDate_IgnoraLaHoraDelDia(t *testing.T) {
	repo := memory.NewTaskRepository()
	ctx := context.Background()

	day := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)

	_, err := repo.Create(ctx, &entity.Task{Title: "llamar a Acme", DueDate: timePtr(day.Add(9 * time.Hour))})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Task{Title: "demo técnica", DueDate: timePtr(day.Add(23*time.Hour + 59*time.Minute))})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Task{Title: "seguimiento", DueDate: timePtr(day.AddDate(0, 0, 1))})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Task{Title: "sin fecha"})
	require.NoError(t, err)

	// Consulta a las 15:42, no a medianoche.
	got, err := repo.ListByDueDate(ctx, day.Add(15*time.Hour+42*time.Minute))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "llamar a Acme", got[0].Title)
	assert.Equal(t, "demo técnica", got[1].Title)
}

func TestTaskRepo_Update_PatchParcialPreservaResto(t *testing.T) {
	repo := memory.NewTaskRepository()
	ctx := context.Background()

	due := time.Date(2026, time.April, 2, 10, 0, 0, 0, time.Local)
	created, err := repo.Create(ctx, &entity.Task{
		Title:   "preparar propuesta",
		Status:  entity.TaskStatusPending,
		DueDate: &due,
	})
	require.NoError(t, err)

	status := entity.TaskStatusInProgress
	updated, err := repo.Update(ctx, created.ID, entity.TaskPatch{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, entity.TaskStatusInProgress, updated.Status)
	assert.Equal(t, "preparar propuesta", updated.Title)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(due))
	assert.Nil(t, updated.CompletedAt, "el repositorio no fija CompletedAt por su cuenta")
}

func TestTaskRepo_FiltrosPorLeadEmpresaYAsignado(t *testing.T) {
	repo := memory.NewTaskRepository()
	ctx := context.Background()

	lead, company, user := 7, 3, 11
	_, err := repo.Create(ctx, &entity.Task{Title: "a", LeadID: &lead})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Task{Title: "b", CompanyID: &company, AssignedTo: &user})
	require.NoError(t, err)

	byLead, err := repo.ListByLead(ctx, lead)
	require.NoError(t, err)
	assert.Len(t, byLead, 1)

	byCompany, err := repo.ListByCompany(ctx, company)
	require.NoError(t, err)
	assert.Len(t, byCompany, 1)

	byAssignee, err := repo.ListByAssignee(ctx, user)
	require.NoError(t, err)
	assert.Len(t, byAssignee, 1)
}
