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

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Contrato CRUD
// ──────────────────────────────────────────────────────────────────────────────

// Create debe asignar un id entero positivo y un CreatedAt cercano a ahora.
func TestCompanyRepo_Create_AsignaIDYCreatedAt(t *testing.T) {
	repo := memory.NewCompanyRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Company{Name: "Acme", Market: "Germany"})
	require.NoError(t, err)

	assert.Greater(t, created.ID, 0, "el id debe ser un entero positivo")
	assert.WithinDuration(t, time.Now(), created.CreatedAt, 2*time.Second)
	assert.Equal(t, "Acme", created.Name)
}

// Borrar dos veces el mismo id: la primera devuelve true, la segunda false.
func TestCompanyRepo_DeleteDosVeces_SegundaDevuelveFalse(t *testing.T) {
	repo := memory.NewCompanyRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Company{Name: "Acme", Market: "Germany"})
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok, "el primer delete debe eliminar el registro")

	ok, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "el segundo delete no encuentra nada que borrar")
}

// GetByID de un id nunca creado devuelve (nil, nil), no un error.
func TestLeadRepo_GetByID_Inexistente_DevuelveNilNil(t *testing.T) {
	repo := memory.NewLeadRepository()

	lead, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, lead)
}

// Update de un id inexistente devuelve (nil, nil), nunca panic ni error.
func TestLeadRepo_Update_Inexistente_DevuelveNilNil(t *testing.T) {
	repo := memory.NewLeadRepository()

	updated, err := repo.Update(context.Background(), 42, entity.LeadPatch{FirstName: strPtr("Ana")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Merge superficial en Update
// ──────────────────────────────────────────────────────────────────────────────

// Los campos no incluidos en el patch deben quedar intactos, id incluido.
func TestLeadRepo_Update_CamposNoEnviadosSePreservan(t *testing.T) {
	repo := memory.NewLeadRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Lead{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@acme.io",
		Status:    entity.LeadStatusNew,
		Market:    "Germany",
		Notes:     "conocida en la feria",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, entity.LeadPatch{Status: strPtr(entity.LeadStatusQualified)})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, entity.LeadStatusQualified, updated.Status)
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, "ana@acme.io", updated.Email)
	assert.Equal(t, "conocida en la feria", updated.Notes)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

// Un patch vacío es un no-op que devuelve el registro actual sin cambios.
func TestLeadRepo_Update_PatchVacio_EsNoOp(t *testing.T) {
	repo := memory.NewLeadRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Lead{FirstName: "Ana", LastName: "Ruiz", Email: "ana@acme.io"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, entity.LeadPatch{})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, *created, *updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadRepo_Filtros_PorEmpresaEstadoYMercado(t *testing.T) {
	repo := memory.NewLeadRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.Lead{FirstName: "Ana", LastName: "Ruiz", Email: "a@x.io", CompanyID: intPtr(1), Status: "new", Market: "Germany"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Lead{FirstName: "Bob", LastName: "Lee", Email: "b@x.io", CompanyID: intPtr(2), Status: "won", Market: "USA"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Lead{FirstName: "Eva", LastName: "Kim", Email: "e@x.io", Status: "new", Market: "Germany"})
	require.NoError(t, err)

	byCompany, err := repo.ListByCompany(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "Ana", byCompany[0].FirstName)

	byStatus, err := repo.ListByStatus(ctx, "new")
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byMarket, err := repo.ListByMarket(ctx, "Germany")
	require.NoError(t, err)
	assert.Len(t, byMarket, 2)
}

// List conserva el orden de inserción y los ids crecen monótonamente.
func TestLeadRepo_List_OrdenDeInsercion(t *testing.T) {
	repo := memory.NewLeadRepository()
	ctx := context.Background()

	for _, name := range []string{"uno", "dos", "tres"} {
		_, err := repo.Create(ctx, &entity.Lead{FirstName: name, LastName: "x", Email: name + "@x.io"})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "uno", list[0].FirstName)
	assert.Equal(t, "tres", list[2].FirstName)
	assert.Less(t, list[0].ID, list[1].ID)
	assert.Less(t, list[1].ID, list[2].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Huérfanos: borrar la empresa no toca los leads que la referencian
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCompany_NoLimpiaLasReferenciasDeLosLeads(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	company, err := store.Companies.Create(ctx, &entity.Company{Name: "Acme"})
	require.NoError(t, err)
	lead, err := store.Leads.Create(ctx, &entity.Lead{FirstName: "Ana", LastName: "Ruiz", Email: "a@x.io", CompanyID: &company.ID})
	require.NoError(t, err)

	ok, err := store.Companies.Delete(ctx, company.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// El lead sigue apuntando a la empresa borrada (referencia débil).
	got, err := store.Leads.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.CompanyID)
	assert.Equal(t, company.ID, *got.CompanyID)
}
