package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// Columnas de la tabla leads, en el orden de scanLead.
const leadColumns = `id, first_name, last_name, email, phone, company_id, position, source,
	status, ai_score, notes, assigned_to, market, created_at, last_contacted_at`

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
type LeadRepo struct {
	pool *pgxpool.Pool
}

// NewLeadRepository construye el adaptador de persistencia para leads.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

// List devuelve todos los leads en orden de almacenamiento.
func (r *LeadRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	return r.listWhere(ctx, "", nil)
}

// GetByID obtiene un lead por id; (nil, nil) si no existe.
func (r *LeadRepo) GetByID(ctx context.Context, id int) (*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)
	lead, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// Create persiste un lead nuevo; el id y created_at los asigna la base.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	query := fmt.Sprintf(`
		INSERT INTO leads (first_name, last_name, email, phone, company_id, position, source,
			status, ai_score, notes, assigned_to, market, last_contacted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s`, leadColumns)
	created, err := scanLead(r.pool.QueryRow(ctx, query,
		lead.FirstName, lead.LastName, lead.Email, lead.Phone, lead.CompanyID,
		lead.Position, lead.Source, lead.Status, lead.AIScore, lead.Notes,
		lead.AssignedTo, lead.Market, lead.LastContactedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}
	return created, nil
}

// Update aplica un UPDATE parcial construido solo con las columnas presentes
// en el patch, siempre con placeholders. Un patch vacío devuelve la fila
// actual sin tocarla; (nil, nil) si el id no existe.
func (r *LeadRepo) Update(ctx context.Context, id int, patch entity.LeadPatch) (*entity.Lead, error) {
	b := newUpdateBuilder(id)
	if patch.FirstName != nil {
		b.set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		b.set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		b.set("email", *patch.Email)
	}
	if patch.Phone != nil {
		b.set("phone", *patch.Phone)
	}
	if patch.CompanyID != nil {
		b.set("company_id", *patch.CompanyID)
	}
	if patch.Position != nil {
		b.set("position", *patch.Position)
	}
	if patch.Source != nil {
		b.set("source", *patch.Source)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if patch.AIScore != nil {
		b.set("ai_score", *patch.AIScore)
	}
	if patch.Notes != nil {
		b.set("notes", *patch.Notes)
	}
	if patch.AssignedTo != nil {
		b.set("assigned_to", *patch.AssignedTo)
	}
	if patch.Market != nil {
		b.set("market", *patch.Market)
	}
	if patch.LastContactedAt != nil {
		b.set("last_contacted_at", *patch.LastContactedAt)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	lead, err := scanLead(r.pool.QueryRow(ctx, b.query("leads", leadColumns), b.args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

// Delete elimina un lead e informa si había fila que borrar.
func (r *LeadRepo) Delete(ctx context.Context, id int) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete lead: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByCompany devuelve los leads de una empresa.
func (r *LeadRepo) ListByCompany(ctx context.Context, companyID int) ([]*entity.Lead, error) {
	return r.listWhere(ctx, "WHERE company_id = $1", []any{companyID})
}

// ListByStatus devuelve los leads con un estado dado.
func (r *LeadRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Lead, error) {
	return r.listWhere(ctx, "WHERE status = $1", []any{status})
}

// ListByMarket devuelve los leads de un mercado dado.
func (r *LeadRepo) ListByMarket(ctx context.Context, market string) ([]*entity.Lead, error) {
	return r.listWhere(ctx, "WHERE market = $1", []any{market})
}

func (r *LeadRepo) listWhere(ctx context.Context, where string, args []any) ([]*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads %s ORDER BY id`, leadColumns, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, lead)
	}
	return list, rows.Err()
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone, &l.CompanyID,
		&l.Position, &l.Source, &l.Status, &l.AIScore, &l.Notes,
		&l.AssignedTo, &l.Market, &l.CreatedAt, &l.LastContactedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
