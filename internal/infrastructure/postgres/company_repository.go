package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, industry, size, website, address, city, country,
	market, engagement_score, notes, logo_url, created_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	return r.listWhere(ctx, "", nil)
}

// GetByID obtiene una empresa por id; (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int) (*entity.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE id = $1`, companyColumns)
	company, err := scanCompany(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := fmt.Sprintf(`
		INSERT INTO companies (name, industry, size, website, address, city, country,
			market, engagement_score, notes, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, companyColumns)
	created, err := scanCompany(r.pool.QueryRow(ctx, query,
		company.Name, company.Industry, company.Size, company.Website, company.Address,
		company.City, company.Country, company.Market, company.EngagementScore,
		company.Notes, company.LogoURL,
	))
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return created, nil
}

// Update aplica un UPDATE parcial; patch vacío es un no-op.
func (r *CompanyRepo) Update(ctx context.Context, id int, patch entity.CompanyPatch) (*entity.Company, error) {
	b := newUpdateBuilder(id)
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Industry != nil {
		b.set("industry", *patch.Industry)
	}
	if patch.Size != nil {
		b.set("size", *patch.Size)
	}
	if patch.Website != nil {
		b.set("website", *patch.Website)
	}
	if patch.Address != nil {
		b.set("address", *patch.Address)
	}
	if patch.City != nil {
		b.set("city", *patch.City)
	}
	if patch.Country != nil {
		b.set("country", *patch.Country)
	}
	if patch.Market != nil {
		b.set("market", *patch.Market)
	}
	if patch.EngagementScore != nil {
		b.set("engagement_score", *patch.EngagementScore)
	}
	if patch.Notes != nil {
		b.set("notes", *patch.Notes)
	}
	if patch.LogoURL != nil {
		b.set("logo_url", *patch.LogoURL)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	company, err := scanCompany(r.pool.QueryRow(ctx, b.query("companies", companyColumns), b.args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepo) Delete(ctx context.Context, id int) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *CompanyRepo) ListByMarket(ctx context.Context, market string) ([]*entity.Company, error) {
	return r.listWhere(ctx, "WHERE market = $1", []any{market})
}

func (r *CompanyRepo) ListByIndustry(ctx context.Context, industry string) ([]*entity.Company, error) {
	return r.listWhere(ctx, "WHERE industry = $1", []any{industry})
}

func (r *CompanyRepo) listWhere(ctx context.Context, where string, args []any) ([]*entity.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies %s ORDER BY id`, companyColumns, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, company)
	}
	return list, rows.Err()
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Industry, &c.Size, &c.Website, &c.Address, &c.City,
		&c.Country, &c.Market, &c.EngagementScore, &c.Notes, &c.LogoURL, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
