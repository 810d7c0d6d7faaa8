package snapshotting

import (
	"context"
	"testing"
	"time"

	agentmocks "github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/agent/mocks"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository/mocks"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockSnapshotRepository, *mocks.MockCompanyRepository, *agentmocks.MockAgentIntegrator) {
	snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	agentService := agentmocks.NewMockAgentIntegrator(ctrl)

	service := &Service{
		cfg:          &config.Config{},
		snapshotRepo: snapshotRepo,
		companyRepo:  companyRepo,
		agentService: agentService,
	}

	return service, snapshotRepo, companyRepo, agentService
}

func TestService_GetSnapshots(t *testing.T) {
	tests := []struct {
		name      string
		companyID string
		setup     func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository)
		validate  func(t *testing.T, response *domain.SnapshotResponse, err error)
	}{
		{
			name:      "Deve retornar linhas e origens da empresa",
			companyID: "CMP001",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				snapshotRepo.EXPECT().
					GetByCompanyID("CMP001", gomock.Any()).
					Return([]*domain.SnapshotRow{
						{ID: "SNP001", CompanyID: "CMP001", KPIs: map[string]any{"mrr": 10000.0}},
					}, nil)

				snapshotRepo.EXPECT().
					GetSources("CMP001").
					Return(map[string]string{"mrr": "stripe"}, nil)
			},
			validate: func(t *testing.T, response *domain.SnapshotResponse, err error) {
				assert.NoError(t, err)
				assert.True(t, response.OK)
				assert.Len(t, response.Rows, 1)
				assert.Equal(t, "stripe", response.Sources["mrr"])
			},
		},
		{
			name:      "Falha ao buscar origens - deve responder mesmo assim",
			companyID: "CMP001",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				snapshotRepo.EXPECT().
					GetByCompanyID("CMP001", gomock.Any()).
					Return([]*domain.SnapshotRow{}, nil)

				snapshotRepo.EXPECT().
					GetSources("CMP001").
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, response *domain.SnapshotResponse, err error) {
				assert.NoError(t, err)
				assert.True(t, response.OK)
				assert.Nil(t, response.Sources)
			},
		},
		{
			name:      "Empresa inexistente - deve retornar erro",
			companyID: "CMP999",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().GetByID("CMP999").Return(nil, nil)
			},
			validate: func(t *testing.T, response *domain.SnapshotResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, response)
			},
		},
		{
			name:      "ID vazio - deve retornar erro sem consultar o banco",
			companyID: "",
			setup:     func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository) {},
			validate: func(t *testing.T, response *domain.SnapshotResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, response)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, snapshotRepo, companyRepo, _ := newTestService(ctrl)
			tt.setup(snapshotRepo, companyRepo)

			response, err := service.GetSnapshots(tt.companyID, nil)
			tt.validate(t, response, err)
		})
	}
}

func TestService_GetSeries(t *testing.T) {
	rows := []*domain.SnapshotRow{
		{
			ID:         "SNP001",
			CompanyID:  "CMP001",
			PeriodDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			KPIs:       map[string]any{"mrr": 10000.0},
		},
		{
			ID:         "SNP002",
			CompanyID:  "CMP001",
			PeriodDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			KPIs:       map[string]any{"mrr": 12000.0},
		},
	}

	tests := []struct {
		name     string
		req      *SeriesRequest
		setup    func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository)
		validate func(t *testing.T, response *domain.SeriesResponse, err error)
	}{
		{
			name: "Deve densificar a série entre o primeiro e o último período",
			req:  &SeriesRequest{Metric: "mrr"},
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				snapshotRepo.EXPECT().
					GetByCompanyID("CMP001", gomock.Any()).
					Return(rows, nil)

				snapshotRepo.EXPECT().
					GetSources("CMP001").
					Return(map[string]string{"mrr": "stripe"}, nil)
			},
			validate: func(t *testing.T, response *domain.SeriesResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "mrr", response.Metric)
				// Maio, junho (densificado com nil) e julho
				assert.Len(t, response.Points, 3)
				assert.Nil(t, response.Points[1].Value)
				assert.Nil(t, response.Points[1].Forecast)
			},
		},
		{
			name: "Com MonthsAhead - deve estender a série com projeção",
			req:  &SeriesRequest{Metric: "mrr", MonthsAhead: 2},
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				snapshotRepo.EXPECT().
					GetByCompanyID("CMP001", gomock.Any()).
					Return(rows, nil)

				snapshotRepo.EXPECT().
					GetSources("CMP001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, response *domain.SeriesResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, response.Points, 5)
				assert.Nil(t, response.Points[3].Value)
				assert.NotNil(t, response.Points[3].Forecast)
				assert.NotNil(t, response.Points[4].Forecast)
				assert.Equal(t, 2, response.MonthsAhead)
			},
		},
		{
			name:  "Métrica vazia - deve rejeitar sem consultar o banco",
			req:   &SeriesRequest{},
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository) {},
			validate: func(t *testing.T, response *domain.SeriesResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, response)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, snapshotRepo, companyRepo, _ := newTestService(ctrl)
			tt.setup(snapshotRepo, companyRepo)

			response, err := service.GetSeries("CMP001", tt.req)
			tt.validate(t, response, err)
		})
	}
}

func TestService_ListMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, snapshotRepo, companyRepo, _ := newTestService(ctrl)

	companyRepo.EXPECT().
		GetByID("CMP001").
		Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

	snapshotRepo.EXPECT().
		GetByCompanyID("CMP001", nil).
		Return([]*domain.SnapshotRow{
			{
				ID:         "SNP001",
				CompanyID:  "CMP001",
				PeriodDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
				KPIs:       map[string]any{"mrr": 10000.0, "churn": "2.5", "burn": nil},
			},
			{
				ID:         "SNP002",
				CompanyID:  "CMP001",
				PeriodDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				KPIs:       map[string]any{"mrr": 12000.0, "active_customers": 42},
			},
		}, nil)

	metrics, err := service.ListMetrics("CMP001")

	assert.NoError(t, err)
	// burn aparece apenas como null, então não conta
	assert.Equal(t, []string{"active_customers", "churn", "mrr"}, metrics)
}

func TestService_RefreshCompany(t *testing.T) {
	company := &domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}

	tests := []struct {
		name     string
		setup    func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository, agentService *agentmocks.MockAgentIntegrator)
		validate func(t *testing.T, result *RefreshResult, err error)
	}{
		{
			name: "Deve persistir as linhas retornadas pelo agente e contar as gravadas",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository, agentService *agentmocks.MockAgentIntegrator) {
				companyRepo.EXPECT().GetByID("CMP001").Return(company, nil)
				agentService.EXPECT().Available(gomock.Any()).Return(true)

				rows := []*domain.SnapshotRow{
					{ID: "SNP001", CompanyID: "CMP001", PeriodDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
					{ID: "SNP002", CompanyID: "CMP001", PeriodDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
				}
				sources := map[string]string{"mrr": "stripe"}

				agentService.EXPECT().
					RefreshCompany(gomock.Any(), company).
					Return(rows, sources, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(rows[0]).Return(nil)
				snapshotRepo.EXPECT().SaveOrUpdate(rows[1]).Return(assert.AnError)
				snapshotRepo.EXPECT().SaveSources("CMP001", sources).Return(nil)
				companyRepo.EXPECT().TouchLastSynced("CMP001", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *RefreshResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "CMP001", result.CompanyID)
				// Uma das duas gravações falhou
				assert.Equal(t, 1, result.RowsWritten)
				assert.Equal(t, "stripe", result.Sources["mrr"])
			},
		},
		{
			name: "Agente indisponível - deve retornar erro sem gravar nada",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository, agentService *agentmocks.MockAgentIntegrator) {
				companyRepo.EXPECT().GetByID("CMP001").Return(company, nil)
				agentService.EXPECT().Available(gomock.Any()).Return(false)
			},
			validate: func(t *testing.T, result *RefreshResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Erro no agente - deve propagar",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, companyRepo *mocks.MockCompanyRepository, agentService *agentmocks.MockAgentIntegrator) {
				companyRepo.EXPECT().GetByID("CMP001").Return(company, nil)
				agentService.EXPECT().Available(gomock.Any()).Return(true)
				agentService.EXPECT().
					RefreshCompany(gomock.Any(), company).
					Return(nil, nil, assert.AnError)
			},
			validate: func(t *testing.T, result *RefreshResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, snapshotRepo, companyRepo, agentService := newTestService(ctrl)
			tt.setup(snapshotRepo, companyRepo, agentService)

			result, err := service.RefreshCompany(context.Background(), "CMP001")
			tt.validate(t, result, err)
		})
	}
}
