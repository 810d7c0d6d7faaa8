package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/database/postgres"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

const (
	snapshotsTable = "kpi_snapshots ks"
)

type SnapshotRepository interface {
	GetByCompanyID(companyID string, filters *domain.SnapshotFilters) ([]*domain.SnapshotRow, error)
	GetByCompanyIDAndPeriod(companyID string, period time.Time) (*domain.SnapshotRow, error)
	SaveOrUpdate(row *domain.SnapshotRow) error
	GetSources(companyID string) (map[string]string, error)
	SaveSources(companyID string, sources map[string]string) error
	DeleteOlderThan(companyID string, months int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// GetByCompanyID retorna as linhas de snapshot da empresa em ordem
// cronológica crescente de period_date, opcionalmente filtradas por
// intervalo. A ordenação aqui é o contrato de entrada do builder de séries.
func (r *snapshotRepository) GetByCompanyID(companyID string, filters *domain.SnapshotFilters) ([]*domain.SnapshotRow, error) {
	queryBuilder := squirrel.
		Select("ks.id, ks.company_id, ks.period_date, ks.kpis, ks.source, ks.created_at, ks.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"ks.company_id": companyID})

	if filters != nil && filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"ks.period_date": filters.StartDate.Format("2006-01-02")})
	}

	if filters != nil && filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"ks.period_date": filters.EndDate.Format("2006-01-02")})
	}

	query, args, err := queryBuilder.
		OrderBy("ks.period_date ASC", "ks.created_at ASC").
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

	snapshots := make([]*domain.SnapshotRow, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) GetByCompanyIDAndPeriod(companyID string, period time.Time) (*domain.SnapshotRow, error) {
	query, args, err := squirrel.
		Select("ks.id, ks.company_id, ks.period_date, ks.kpis, ks.source, ks.created_at, ks.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"ks.company_id": companyID, "ks.period_date": period.Format("2006-01-02")}).
		OrderBy("ks.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// SaveOrUpdate grava uma linha de snapshot. Linhas são imutáveis por
// período: um novo sync para o mesmo mês substitui o bag inteiro via
// upsert, nunca mescla valores.
func (r *snapshotRepository) SaveOrUpdate(row *domain.SnapshotRow) error {
	var kpisJSON []byte
	var err error

	if row.KPIs != nil {
		kpisJSON, err = json.Marshal(row.KPIs)
		if err != nil {
			return fmt.Errorf("erro ao serializar KPIs para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("kpi_snapshots").
		Columns("id", "company_id", "period_date", "kpis", "source").
		Values(
			row.ID,
			row.CompanyID,
			row.PeriodDate.Format("2006-01-02"),
			kpisJSON,
			row.Source,
		).
		Suffix(`
			ON CONFLICT (company_id, period_date) DO UPDATE SET
				kpis = EXCLUDED.kpis,
				source = EXCLUDED.source,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetSources retorna o mapeamento métrica → origem da empresa (repassado
// ao dashboard sem transformação).
func (r *snapshotRepository) GetSources(companyID string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("ms.metric, ms.source").
		From("metric_sources ms").
		Where(squirrel.Eq{"ms.company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sources := make(map[string]string)
	for rows.Next() {
		var metric, source string
		if err := rows.Scan(&metric, &source); err != nil {
			return nil, fmt.Errorf("erro ao escanear origem de métrica: %w", err)
		}
		sources[metric] = source
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sources, nil
}

func (r *snapshotRepository) SaveSources(companyID string, sources map[string]string) error {
	for metric, source := range sources {
		query, args, err := squirrel.StatementBuilder.
			Insert("metric_sources").
			Columns("company_id", "metric", "source").
			Values(companyID, metric, source).
			Suffix(`
				ON CONFLICT (company_id, metric) DO UPDATE SET
					source = EXCLUDED.source,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao gravar origem da métrica %s: %w", metric, err)
		}
	}

	return nil
}

func (r *snapshotRepository) DeleteOlderThan(companyID string, months int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, -months, 0).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("kpi_snapshots").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Lt{"period_date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *snapshotRepository) scanSnapshot(row *sql.Row) (*domain.SnapshotRow, error) {
	snapshot := &domain.SnapshotRow{}
	var kpisJSON []byte
	var periodStr string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.CompanyID,
		&periodStr,
		&kpisJSON,
		&snapshot.Source,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.hydrateSnapshot(snapshot, periodStr, kpisJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *snapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.SnapshotRow, error) {
	snapshot := &domain.SnapshotRow{}
	var kpisJSON []byte
	var periodStr string

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.CompanyID,
		&periodStr,
		&kpisJSON,
		&snapshot.Source,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.hydrateSnapshot(snapshot, periodStr, kpisJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *snapshotRepository) hydrateSnapshot(snapshot *domain.SnapshotRow, periodStr string, kpisJSON []byte) error {
	period, err := time.Parse("2006-01-02", periodStr)
	if err != nil {
		return fmt.Errorf("erro ao converter period_date: %w", err)
	}
	snapshot.PeriodDate = period

	if kpisJSON != nil {
		kpis := make(map[string]any)
		if err := json.Unmarshal(kpisJSON, &kpis); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de kpis: %w", err)
		}
		snapshot.KPIs = kpis
	}

	return nil
}
