package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.AiInsightRepository = (*AiInsightRepo)(nil)

const insightColumns = `id, type, title, description, action_text, action_url,
	lead_id, company_id, is_read, is_dismissed, created_at`

// AiInsightRepo implementación del puerto AiInsightRepository sobre PostgreSQL.
type AiInsightRepo struct {
	pool *pgxpool.Pool
}

func NewAiInsightRepository(pool *pgxpool.Pool) *AiInsightRepo {
	return &AiInsightRepo{pool: pool}
}

func (r *AiInsightRepo) List(ctx context.Context) ([]*entity.AiInsight, error) {
	return r.listWhere(ctx, "", nil)
}

// GetByID obtiene un insight por id; (nil, nil) si no existe.
func (r *AiInsightRepo) GetByID(ctx context.Context, id int) (*entity.AiInsight, error) {
	query := fmt.Sprintf(`SELECT %s FROM ai_insights WHERE id = $1`, insightColumns)
	insight, err := scanInsight(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insight: %w", err)
	}
	return insight, nil
}

func (r *AiInsightRepo) Create(ctx context.Context, insight *entity.AiInsight) (*entity.AiInsight, error) {
	query := fmt.Sprintf(`
		INSERT INTO ai_insights (type, title, description, action_text, action_url,
			lead_id, company_id, is_read, is_dismissed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, insightColumns)
	created, err := scanInsight(r.pool.QueryRow(ctx, query,
		insight.Type, insight.Title, insight.Description, insight.ActionText,
		insight.ActionURL, insight.LeadID, insight.CompanyID, insight.IsRead,
		insight.IsDismissed,
	))
	if err != nil {
		return nil, fmt.Errorf("insert insight: %w", err)
	}
	return created, nil
}

// Update aplica un UPDATE parcial; patch vacío es un no-op.
func (r *AiInsightRepo) Update(ctx context.Context, id int, patch entity.AiInsightPatch) (*entity.AiInsight, error) {
	b := newUpdateBuilder(id)
	if patch.Type != nil {
		b.set("type", *patch.Type)
	}
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if patch.ActionText != nil {
		b.set("action_text", *patch.ActionText)
	}
	if patch.ActionURL != nil {
		b.set("action_url", *patch.ActionURL)
	}
	if patch.LeadID != nil {
		b.set("lead_id", *patch.LeadID)
	}
	if patch.CompanyID != nil {
		b.set("company_id", *patch.CompanyID)
	}
	if patch.IsRead != nil {
		b.set("is_read", *patch.IsRead)
	}
	if patch.IsDismissed != nil {
		b.set("is_dismissed", *patch.IsDismissed)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	insight, err := scanInsight(r.pool.QueryRow(ctx, b.query("ai_insights", insightColumns), b.args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update insight: %w", err)
	}
	return insight, nil
}

func (r *AiInsightRepo) Delete(ctx context.Context, id int) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ai_insights WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete insight: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *AiInsightRepo) ListByLead(ctx context.Context, leadID int) ([]*entity.AiInsight, error) {
	return r.listWhere(ctx, "WHERE lead_id = $1", []any{leadID})
}

func (r *AiInsightRepo) ListByCompany(ctx context.Context, companyID int) ([]*entity.AiInsight, error) {
	return r.listWhere(ctx, "WHERE company_id = $1", []any{companyID})
}

func (r *AiInsightRepo) listWhere(ctx context.Context, where string, args []any) ([]*entity.AiInsight, error) {
	query := fmt.Sprintf(`SELECT %s FROM ai_insights %s ORDER BY id`, insightColumns, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	defer rows.Close()

	var list []*entity.AiInsight
	for rows.Next() {
		insight, err := scanInsight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		list = append(list, insight)
	}
	return list, rows.Err()
}

func scanInsight(row pgx.Row) (*entity.AiInsight, error) {
	var i entity.AiInsight
	err := row.Scan(
		&i.ID, &i.Type, &i.Title, &i.Description, &i.ActionText, &i.ActionURL,
		&i.LeadID, &i.CompanyID, &i.IsRead, &i.IsDismissed, &i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
