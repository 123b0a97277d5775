package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"NewsPulse/internal/domain"
	"NewsPulse/internal/ports"
)

// CompanyRepository reads tracked companies.
type CompanyRepository struct {
	db *sql.DB
}

var _ ports.CompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = "id, name, stock_code, industry, active, created_at, updated_at"

func (r *CompanyRepository) Active(ctx context.Context) ([]domain.Company, error) {
	query, args, err := psql.
		Select(companyColumns).
		From("companies").
		Where(sq.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build companies query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.StockCode, &c.Industry, &c.Active,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) ByID(ctx context.Context, id int64) (domain.Company, error) {
	return r.one(ctx, sq.Eq{"id": id})
}

func (r *CompanyRepository) ByName(ctx context.Context, name string) (domain.Company, error) {
	return r.one(ctx, sq.Eq{"name": name})
}

func (r *CompanyRepository) one(ctx context.Context, where sq.Eq) (domain.Company, error) {
	query, args, err := psql.Select(companyColumns).From("companies").Where(where).ToSql()
	if err != nil {
		return domain.Company{}, fmt.Errorf("build company query: %w", err)
	}

	var c domain.Company
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.StockCode, &c.Industry, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Company{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Company{}, fmt.Errorf("query company: %w", err)
	}
	return c, nil
}
