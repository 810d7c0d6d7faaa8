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
	accessRequestsTable = "access_requests"
)

type AccessRequestRepository interface {
	GetByID(id string) (*domain.AccessRequest, error)
	GetByLinkAndEmail(linkID, email string) (*domain.AccessRequest, error)
	ListByCompanyID(companyID string, status string) ([]*domain.AccessRequest, error)
	Create(request *domain.AccessRequest) (*domain.AccessRequest, error)
	Resolve(id string, status string, resolvedBy int, resolvedAt time.Time) error
}

type accessRequestRepository struct {
	conn *postgres.Connection
}

func NewAccessRequestRepository(conn *postgres.Connection) AccessRequestRepository {
	return &accessRequestRepository{
		conn: conn,
	}
}

const accessRequestColumns = "id, company_id, link_id, email, name, message, status, resolved_by, resolved_at, created_at, updated_at"

func (r *accessRequestRepository) GetByID(id string) (*domain.AccessRequest, error) {
	query, args, err := squirrel.
		Select(accessRequestColumns).
		From(accessRequestsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	request, err := r.scanAccessRequest(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear solicitação de acesso: %w", err)
	}

	return request, nil
}

// GetByLinkAndEmail devolve a solicitação existente de um email para um
// link, usada para deduplicar pedidos repetidos do mesmo investidor.
func (r *accessRequestRepository) GetByLinkAndEmail(linkID, email string) (*domain.AccessRequest, error) {
	query, args, err := squirrel.
		Select(accessRequestColumns).
		From(accessRequestsTable).
		Where(squirrel.Eq{"link_id": linkID, "email": email}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	request, err := r.scanAccessRequest(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear solicitação de acesso: %w", err)
	}

	return request, nil
}

func (r *accessRequestRepository) ListByCompanyID(companyID string, status string) ([]*domain.AccessRequest, error) {
	queryBuilder := squirrel.
		Select(accessRequestColumns).
		From(accessRequestsTable).
		Where(squirrel.Eq{"company_id": companyID})

	if status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": status})
	}

	query, args, err := queryBuilder.
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

	requests := make([]*domain.AccessRequest, 0)
	for rows.Next() {
		request := &domain.AccessRequest{}
		err := rows.Scan(
			&request.ID,
			&request.CompanyID,
			&request.LinkID,
			&request.Email,
			&request.Name,
			&request.Message,
			&request.Status,
			&request.ResolvedBy,
			&request.ResolvedAt,
			&request.CreatedAt,
			&request.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear solicitação de acesso: %w", err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return requests, nil
}

func (r *accessRequestRepository) Create(request *domain.AccessRequest) (*domain.AccessRequest, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(accessRequestsTable).
		Columns("id", "company_id", "link_id", "email", "name", "message", "status").
		Values(
			request.ID,
			request.CompanyID,
			request.LinkID,
			request.Email,
			request.Name,
			request.Message,
			request.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar solicitação de acesso: %w", err)
	}

	return request, nil
}

func (r *accessRequestRepository) Resolve(id string, status string, resolvedBy int, resolvedAt time.Time) error {
	query, args, err := squirrel.
		Update(accessRequestsTable).
		Set("status", status).
		Set("resolved_by", resolvedBy).
		Set("resolved_at", resolvedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao resolver solicitação de acesso: %w", err)
	}

	return nil
}

func (r *accessRequestRepository) scanAccessRequest(row *sql.Row) (*domain.AccessRequest, error) {
	request := &domain.AccessRequest{}
	err := row.Scan(
		&request.ID,
		&request.CompanyID,
		&request.LinkID,
		&request.Email,
		&request.Name,
		&request.Message,
		&request.Status,
		&request.ResolvedBy,
		&request.ResolvedAt,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return request, nil
}
