package snapshotting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/agent"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/charting"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service implementa a interface Snapshotter
type Service struct {
	cfg          *config.Config
	snapshotRepo repository.SnapshotRepository
	companyRepo  repository.CompanyRepository
	agentService agent.AgentIntegrator
}

// NewService cria uma nova instância do serviço de snapshots
func NewService(
	cfg *config.Config,
	snapshotRepo repository.SnapshotRepository,
	companyRepo repository.CompanyRepository,
	agentService agent.AgentIntegrator,
) Snapshotter {
	return &Service{
		cfg:          cfg,
		snapshotRepo: snapshotRepo,
		companyRepo:  companyRepo,
		agentService: agentService,
	}
}

// GetSnapshots retorna as linhas brutas e as origens por métrica de uma empresa.
// As origens são repassadas sem transformação, como vieram da ingestão.
func (s *Service) GetSnapshots(companyID string, filters *domain.SnapshotFilters) (*domain.SnapshotResponse, error) {
	company, err := s.getCompany(companyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.snapshotRepo.GetByCompanyID(company.ID, filters)
	if err != nil {
		logrus.WithError(err).Error("snapshots: erro ao buscar snapshots no banco", map[string]any{
			"companyID": companyID,
		})
		return nil, err
	}

	sources, err := s.snapshotRepo.GetSources(company.ID)
	if err != nil {
		// Origens são metadado auxiliar: a ausência não invalida a resposta
		logrus.WithError(err).Warn("snapshots: erro ao buscar origens das métricas")
		sources = nil
	}

	return &domain.SnapshotResponse{
		OK:      true,
		Rows:    rows,
		Sources: sources,
	}, nil
}

// GetSeries monta a série densa de uma métrica, estendida com forecast
// quando MonthsAhead > 0.
func (s *Service) GetSeries(companyID string, req *SeriesRequest) (*domain.SeriesResponse, error) {
	if req == nil || req.Metric == "" {
		return nil, fmt.Errorf("é necessário informar a métrica")
	}

	company, err := s.getCompany(companyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.snapshotRepo.GetByCompanyID(company.ID, &domain.SnapshotFilters{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshots da empresa %s: %w", companyID, err)
	}

	opts := charting.DefaultSeriesOptions(req.Metric)
	if req.Percent != nil {
		opts.Percent = *req.Percent
	}
	if req.AllowNegative != nil {
		opts.AllowNegative = *req.AllowNegative
	}

	points := charting.BuildDenseSeries(rows, req.Metric, &opts)

	if req.MonthsAhead > 0 {
		forecastOpts := charting.ForecastOptions{
			MonthsAhead:   req.MonthsAhead,
			AllowNegative: opts.AllowNegative,
		}
		points = charting.ExtendWithForecast(points, forecastOpts)
	}

	sources, err := s.snapshotRepo.GetSources(company.ID)
	if err != nil {
		logrus.WithError(err).Warn("series: erro ao buscar origens das métricas")
		sources = nil
	}

	if s.cfg.App.Debug {
		logrus.Debugf("series %s/%s: %s", companyID, req.Metric, utils.PrettyJson(points))
	}

	return &domain.SeriesResponse{
		Metric:      req.Metric,
		Points:      points,
		MonthsAhead: req.MonthsAhead,
		Sources:     sources,
	}, nil
}

// ListMetrics retorna as métricas lógicas que têm ao menos um valor
// aproveitável no histórico da empresa, em ordem alfabética.
func (s *Service) ListMetrics(companyID string) ([]string, error) {
	company, err := s.getCompany(companyID)
	if err != nil {
		return nil, err
	}

	rows, err := s.snapshotRepo.GetByCompanyID(company.ID, nil)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool)
	for _, metric := range domain.KnownMetrics() {
		for _, row := range rows {
			if charting.ExtractKPINumber(row.KPIs, metric.Key) != nil {
				present[metric.Key] = true
				break
			}
		}
	}

	metrics := make([]string, 0, len(present))
	for key := range present {
		metrics = append(metrics, key)
	}
	sort.Strings(metrics)

	return metrics, nil
}

// RefreshCompany invoca o agente de insights para recalcular os snapshots
// da empresa e persiste as linhas retornadas (upsert por período).
func (s *Service) RefreshCompany(ctx context.Context, companyID string) (*RefreshResult, error) {
	company, err := s.getCompany(companyID)
	if err != nil {
		return nil, err
	}

	if !s.agentService.Available(ctx) {
		return nil, fmt.Errorf("o agente de insights está indisponível no momento")
	}

	rows, sources, err := s.agentService.RefreshCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("erro ao invocar o agente de insights para a empresa %s: %w", companyID, err)
	}

	written := 0
	for _, row := range rows {
		if err := s.snapshotRepo.SaveOrUpdate(row); err != nil {
			logrus.WithError(err).Error("refresh: erro ao salvar snapshot", map[string]any{
				"companyID": companyID,
				"period":    row.PeriodDate.Format("2006-01-02"),
			})
			continue
		}
		written++
	}

	if len(sources) > 0 {
		if err := s.snapshotRepo.SaveSources(company.ID, sources); err != nil {
			logrus.WithError(err).Warn("refresh: erro ao salvar origens das métricas")
		}
	}

	now := time.Now().UTC()
	if err := s.companyRepo.TouchLastSynced(company.ID, now); err != nil {
		logrus.WithError(err).Warn("refresh: erro ao atualizar last_synced_at da empresa")
	}

	logrus.Infof("refresh: empresa %s atualizada com %d snapshots", companyID, written)

	return &RefreshResult{
		CompanyID:   company.ID,
		RowsWritten: written,
		Sources:     sources,
		RefreshedAt: now,
	}, nil
}

func (s *Service) getCompany(companyID string) (*domain.Company, error) {
	if companyID == "" {
		return nil, fmt.Errorf("é necessário informar o ID da empresa")
	}

	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa não encontrada: %s", companyID)
	}

	return company, nil
}
