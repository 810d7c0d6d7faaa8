package snapshotting

import (
	"context"
	"time"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
)

// SeriesRequest agrupa os parâmetros do endpoint de séries. Percent e
// AllowNegative são ponteiros para distinguir "não informado" (usa o
// padrão da métrica) de um override explícito do cliente.
type SeriesRequest struct {
	Metric        string
	MonthsAhead   int
	Percent       *bool
	AllowNegative *bool
	StartDate     *time.Time
	EndDate       *time.Time
}

// RefreshResult resume uma invocação do agente de insights para uma empresa.
type RefreshResult struct {
	CompanyID   string            `json:"company_id"`
	RowsWritten int               `json:"rows_written"`
	Sources     map[string]string `json:"sources,omitempty"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

// Snapshotter define as operações de snapshots e séries do dashboard
type Snapshotter interface {
	// GetSnapshots retorna as linhas brutas e as origens por métrica de uma empresa
	GetSnapshots(companyID string, filters *domain.SnapshotFilters) (*domain.SnapshotResponse, error)

	// GetSeries monta a série densa (com forecast quando solicitado) de uma métrica
	GetSeries(companyID string, req *SeriesRequest) (*domain.SeriesResponse, error)

	// ListMetrics retorna as métricas lógicas presentes no histórico da empresa
	ListMetrics(companyID string) ([]string, error)

	// RefreshCompany invoca o agente de insights e persiste as linhas retornadas
	RefreshCompany(ctx context.Context, companyID string) (*RefreshResult, error)
}
