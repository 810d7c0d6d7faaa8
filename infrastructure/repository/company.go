package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/database/postgres"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

const (
	companiesTable = "companies"
)

type CompanyRepository interface {
	GetByID(companyID string) (*domain.Company, error)
	GetBySlug(slug string) (*domain.Company, error)
	ListActive() ([]*domain.Company, error)
	ListByOwner(ownerUserID int) ([]*domain.Company, error)
	Create(company *domain.Company) (*domain.Company, error)
	Update(company *domain.Company) error
	TouchLastSynced(companyID string, syncedAt time.Time) error
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

const companyColumns = "id, name, slug, owner_user_id, currency, stripe_account, sheet_id, sheet_range, active, last_synced_at, created_at, updated_at"

func (r *companyRepository) GetByID(companyID string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns).
		From(companiesTable).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	company, err := r.scanCompany(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	return company, nil
}

func (r *companyRepository) GetBySlug(slug string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns).
		From(companiesTable).
		Where(squirrel.Eq{"slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	company, err := r.scanCompany(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	return company, nil
}

func (r *companyRepository) ListActive() ([]*domain.Company, error) {
	return r.list(squirrel.Eq{"active": true})
}

func (r *companyRepository) ListByOwner(ownerUserID int) ([]*domain.Company, error) {
	return r.list(squirrel.Eq{"owner_user_id": ownerUserID})
}

func (r *companyRepository) list(where squirrel.Eq) ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns).
		From(companiesTable).
		Where(where).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company := &domain.Company{}
		err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Slug,
			&company.OwnerUserID,
			&company.Currency,
			&company.StripeAccount,
			&company.SheetID,
			&company.SheetRange,
			&company.Active,
			&company.LastSyncedAt,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) Create(company *domain.Company) (*domain.Company, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(companiesTable).
		Columns("id", "name", "slug", "owner_user_id", "currency", "stripe_account", "sheet_id", "sheet_range", "active").
		Values(
			company.ID,
			company.Name,
			company.Slug,
			company.OwnerUserID,
			company.Currency,
			company.StripeAccount,
			company.SheetID,
			company.SheetRange,
			company.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar empresa: %w", err)
	}

	return company, nil
}

func (r *companyRepository) Update(company *domain.Company) error {
	queryBuilder := squirrel.
		Update(companiesTable).
		Set("name", company.Name).
		Set("currency", company.Currency).
		Set("stripe_account", company.StripeAccount).
		Set("sheet_id", company.SheetID).
		Set("sheet_range", company.SheetRange).
		Set("active", company.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": company.ID})

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar empresa: %w", err)
	}

	return nil
}

func (r *companyRepository) TouchLastSynced(companyID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update(companiesTable).
		Set("last_synced_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao registrar último sync: %w", err)
	}

	return nil
}

func (r *companyRepository) scanCompany(row *sql.Row) (*domain.Company, error) {
	company := &domain.Company{}
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Slug,
		&company.OwnerUserID,
		&company.Currency,
		&company.StripeAccount,
		&company.SheetID,
		&company.SheetRange,
		&company.Active,
		&company.LastSyncedAt,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return company, nil
}
