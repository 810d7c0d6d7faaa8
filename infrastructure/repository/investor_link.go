package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/database/postgres"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

const (
	investorLinksTable = "investor_links"
)

type InvestorLinkRepository interface {
	GetByToken(token string) (*domain.InvestorLink, error)
	ListByCompanyID(companyID string) ([]*domain.InvestorLink, error)
	Create(link *domain.InvestorLink) (*domain.InvestorLink, error)
	Revoke(token string) error
	IncrementViewCount(token string) error
}

type investorLinkRepository struct {
	conn *postgres.Connection
}

func NewInvestorLinkRepository(conn *postgres.Connection) InvestorLinkRepository {
	return &investorLinkRepository{
		conn: conn,
	}
}

const investorLinkColumns = "id, company_id, token, label, expires_at, revoked, view_count, created_at, updated_at"

func (r *investorLinkRepository) GetByToken(token string) (*domain.InvestorLink, error) {
	query, args, err := squirrel.
		Select(investorLinkColumns).
		From(investorLinksTable).
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	link := &domain.InvestorLink{}
	err = r.conn.QueryRow(query, args...).Scan(
		&link.ID,
		&link.CompanyID,
		&link.Token,
		&link.Label,
		&link.ExpiresAt,
		&link.Revoked,
		&link.ViewCount,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear link de investidor: %w", err)
	}

	return link, nil
}

func (r *investorLinkRepository) ListByCompanyID(companyID string) ([]*domain.InvestorLink, error) {
	query, args, err := squirrel.
		Select(investorLinkColumns).
		From(investorLinksTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("created_at DESC").
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

	links := make([]*domain.InvestorLink, 0)
	for rows.Next() {
		link := &domain.InvestorLink{}
		err := rows.Scan(
			&link.ID,
			&link.CompanyID,
			&link.Token,
			&link.Label,
			&link.ExpiresAt,
			&link.Revoked,
			&link.ViewCount,
			&link.CreatedAt,
			&link.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear link de investidor: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return links, nil
}

func (r *investorLinkRepository) Create(link *domain.InvestorLink) (*domain.InvestorLink, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(investorLinksTable).
		Columns("id", "company_id", "token", "label", "expires_at").
		Values(link.ID, link.CompanyID, link.Token, link.Label, link.ExpiresAt).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar link de investidor: %w", err)
	}

	return link, nil
}

func (r *investorLinkRepository) Revoke(token string) error {
	query, args, err := squirrel.
		Update(investorLinksTable).
		Set("revoked", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao revogar link: %w", err)
	}

	return nil
}

// IncrementViewCount contabiliza uma abertura do link. Best effort: o
// chamador pode ignorar falha aqui sem afetar a visualização.
func (r *investorLinkRepository) IncrementViewCount(token string) error {
	query, args, err := squirrel.
		Update(investorLinksTable).
		Set("view_count", squirrel.Expr("view_count + 1")).
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao incrementar visualizações: %w", err)
	}

	return nil
}
