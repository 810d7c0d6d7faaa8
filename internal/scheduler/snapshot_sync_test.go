package scheduler

import (
	"context"
	"testing"
	"time"

	agentmocks "github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/agent/mocks"
	sheetsmocks "github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/sheets/mocks"
	stripemocks "github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/stripe/mocks"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository/mocks"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSnapshotSyncService_processCompany(t *testing.T) {
	stripeAccount := "acct_123"
	sheetID := "sheet-abc"

	tests := []struct {
		name           string
		company        *domain.Company
		agentAvailable bool
		setup          func(
			companyRepo *mocks.MockCompanyRepository,
			snapshotRepo *mocks.MockSnapshotRepository,
			agentService *agentmocks.MockAgentIntegrator,
			stripeService *stripemocks.MockStripeIntegrator,
			sheetsService *sheetsmocks.MockSheetsIntegrator,
		)
	}{
		{
			name: "Agente disponível - deve persistir linhas e origens retornadas pelo agente",
			company: &domain.Company{
				ID:            "CMP001",
				Name:          "Empresa A",
				StripeAccount: &stripeAccount,
				Active:        true,
			},
			agentAvailable: true,
			setup: func(
				companyRepo *mocks.MockCompanyRepository,
				snapshotRepo *mocks.MockSnapshotRepository,
				agentService *agentmocks.MockAgentIntegrator,
				stripeService *stripemocks.MockStripeIntegrator,
				sheetsService *sheetsmocks.MockSheetsIntegrator,
			) {
				rows := []*domain.SnapshotRow{
					{
						ID:         "SNP001",
						CompanyID:  "CMP001",
						PeriodDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
						KPIs:       map[string]any{"mrr": 12000.0},
					},
					{
						ID:         "SNP002",
						CompanyID:  "CMP001",
						PeriodDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
						KPIs:       map[string]any{"mrr": 12600.0},
					},
				}
				sources := map[string]string{"mrr": "stripe"}

				agentService.EXPECT().
					RefreshCompany(gomock.Any(), gomock.Any()).
					Return(rows, sources, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(rows[0]).Return(nil)
				snapshotRepo.EXPECT().SaveOrUpdate(rows[1]).Return(nil)
				snapshotRepo.EXPECT().SaveSources("CMP001", sources).Return(nil)

				snapshotRepo.EXPECT().DeleteOlderThan("CMP001", 36).Return(int64(0), nil)
				companyRepo.EXPECT().TouchLastSynced("CMP001", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Agente indisponível - deve ingerir planilha e marcar origem das métricas",
			company: &domain.Company{
				ID:      "CMP002",
				Name:    "Empresa B",
				SheetID: &sheetID,
				Active:  true,
			},
			agentAvailable: false,
			setup: func(
				companyRepo *mocks.MockCompanyRepository,
				snapshotRepo *mocks.MockSnapshotRepository,
				agentService *agentmocks.MockAgentIntegrator,
				stripeService *stripemocks.MockStripeIntegrator,
				sheetsService *sheetsmocks.MockSheetsIntegrator,
			) {
				rows := []*domain.SnapshotRow{
					{
						ID:         "SNP003",
						CompanyID:  "CMP002",
						PeriodDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
						KPIs:       map[string]any{"churn": 2.5, "burn": 10000.0},
					},
				}

				sheetsService.EXPECT().
					SnapshotRows(gomock.Any(), gomock.Any()).
					Return(rows, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(rows[0]).Return(nil)
				snapshotRepo.EXPECT().
					SaveSources("CMP002", map[string]string{"churn": "sheet", "burn": "sheet"}).
					Return(nil)

				snapshotRepo.EXPECT().DeleteOlderThan("CMP002", 36).Return(int64(2), nil)
				companyRepo.EXPECT().TouchLastSynced("CMP002", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Agente indisponível com Stripe - métricas da Stripe devem sobrescrever as da planilha",
			company: &domain.Company{
				ID:            "CMP003",
				Name:          "Empresa C",
				StripeAccount: &stripeAccount,
				SheetID:       &sheetID,
				Active:        true,
			},
			agentAvailable: false,
			setup: func(
				companyRepo *mocks.MockCompanyRepository,
				snapshotRepo *mocks.MockSnapshotRepository,
				agentService *agentmocks.MockAgentIntegrator,
				stripeService *stripemocks.MockStripeIntegrator,
				sheetsService *sheetsmocks.MockSheetsIntegrator,
			) {
				now := time.Now().UTC()
				currentPeriod := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

				sheetRows := []*domain.SnapshotRow{
					{
						ID:         "SNP004",
						CompanyID:  "CMP003",
						PeriodDate: currentPeriod,
						KPIs:       map[string]any{"mrr": 9000.0, "churn": 3.0},
					},
				}

				sheetsService.EXPECT().
					SnapshotRows(gomock.Any(), gomock.Any()).
					Return(sheetRows, nil)
				snapshotRepo.EXPECT().SaveOrUpdate(sheetRows[0]).Return(nil)

				stripeService.EXPECT().
					SnapshotKPIs(gomock.Any(), gomock.Any()).
					Return(map[string]any{"mrr": 9500.0, "active_customers": 42}, nil)

				snapshotRepo.EXPECT().
					GetByCompanyIDAndPeriod("CMP003", currentPeriod).
					Return(sheetRows[0], nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(row *domain.SnapshotRow) error {
						assert.Equal(t, "CMP003", row.CompanyID)
						assert.Equal(t, 9500.0, row.KPIs["mrr"])
						assert.Equal(t, 42, row.KPIs["active_customers"])
						assert.Equal(t, 3.0, row.KPIs["churn"])
						assert.Equal(t, "stripe", row.Source)
						return nil
					})

				snapshotRepo.EXPECT().
					SaveSources("CMP003", map[string]string{
						"mrr":              "stripe",
						"active_customers": "stripe",
						"churn":            "sheet",
					}).
					Return(nil)

				snapshotRepo.EXPECT().DeleteOlderThan("CMP003", 36).Return(int64(0), nil)
				companyRepo.EXPECT().TouchLastSynced("CMP003", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Agente retorna erro - não deve aplicar retenção nem atualizar last_synced_at",
			company: &domain.Company{
				ID:            "CMP004",
				Name:          "Empresa D",
				StripeAccount: &stripeAccount,
				Active:        true,
			},
			agentAvailable: true,
			setup: func(
				companyRepo *mocks.MockCompanyRepository,
				snapshotRepo *mocks.MockSnapshotRepository,
				agentService *agentmocks.MockAgentIntegrator,
				stripeService *stripemocks.MockStripeIntegrator,
				sheetsService *sheetsmocks.MockSheetsIntegrator,
			) {
				agentService.EXPECT().
					RefreshCompany(gomock.Any(), gomock.Any()).
					Return(nil, nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
			mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
			mockAgentService := agentmocks.NewMockAgentIntegrator(ctrl)
			mockStripeService := stripemocks.NewMockStripeIntegrator(ctrl)
			mockSheetsService := sheetsmocks.NewMockSheetsIntegrator(ctrl)

			service := &SnapshotSyncService{
				config: SnapshotSyncConfig{
					RetentionMonths:   36,
					MaxConcurrentJobs: 1,
				},
				companyRepo:   mockCompanyRepo,
				snapshotRepo:  mockSnapshotRepo,
				agentService:  mockAgentService,
				stripeService: mockStripeService,
				sheetsService: mockSheetsService,
			}

			tt.setup(mockCompanyRepo, mockSnapshotRepo, mockAgentService, mockStripeService, mockSheetsService)

			service.processCompany(context.Background(), tt.company, tt.agentAvailable)
		})
	}
}

func TestSnapshotSyncService_ingestStripeSnapshot(t *testing.T) {
	stripeAccount := "acct_123"
	company := &domain.Company{
		ID:            "CMP001",
		Name:          "Empresa A",
		StripeAccount: &stripeAccount,
		Active:        true,
	}

	now := time.Now().UTC()
	currentPeriod := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(snapshotRepo *mocks.MockSnapshotRepository, stripeService *stripemocks.MockStripeIntegrator)
		sources  map[string]string
		expected map[string]string
		hasError bool
	}{
		{
			name: "Sem snapshot do mês corrente - deve criar uma nova linha",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, stripeService *stripemocks.MockStripeIntegrator) {
				stripeService.EXPECT().
					SnapshotKPIs(gomock.Any(), company).
					Return(map[string]any{"mrr": 5000.0, "arr": 60000.0}, nil)

				snapshotRepo.EXPECT().
					GetByCompanyIDAndPeriod("CMP001", currentPeriod).
					Return(nil, nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(row *domain.SnapshotRow) error {
						assert.NotEmpty(t, row.ID)
						assert.Equal(t, "CMP001", row.CompanyID)
						assert.Equal(t, currentPeriod, row.PeriodDate)
						assert.Equal(t, 5000.0, row.KPIs["mrr"])
						assert.Equal(t, 60000.0, row.KPIs["arr"])
						assert.Equal(t, "stripe", row.Source)
						return nil
					})
			},
			sources:  map[string]string{},
			expected: map[string]string{"mrr": "stripe", "arr": "stripe"},
		},
		{
			name: "Stripe sem KPIs - não deve tocar no repositório",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, stripeService *stripemocks.MockStripeIntegrator) {
				stripeService.EXPECT().
					SnapshotKPIs(gomock.Any(), company).
					Return(map[string]any{}, nil)
			},
			sources:  map[string]string{},
			expected: map[string]string{},
		},
		{
			name: "Erro na Stripe - deve propagar o erro",
			setup: func(snapshotRepo *mocks.MockSnapshotRepository, stripeService *stripemocks.MockStripeIntegrator) {
				stripeService.EXPECT().
					SnapshotKPIs(gomock.Any(), company).
					Return(nil, assert.AnError)
			},
			sources:  map[string]string{},
			expected: map[string]string{},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
			mockStripeService := stripemocks.NewMockStripeIntegrator(ctrl)

			service := &SnapshotSyncService{
				config:        SnapshotSyncConfig{RetentionMonths: 36},
				snapshotRepo:  mockSnapshotRepo,
				stripeService: mockStripeService,
			}

			tt.setup(mockSnapshotRepo, mockStripeService)

			err := service.ingestStripeSnapshot(context.Background(), company, tt.sources)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, tt.sources)
		})
	}
}

func TestSnapshotSyncService_getActiveCompanies(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(companyRepo *mocks.MockCompanyRepository)
		expected int
		hasError bool
	}{
		{
			name: "Deve retornar as empresas ativas do repositório",
			setup: func(companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					ListActive().
					Return([]*domain.Company{
						{ID: "CMP001", Name: "Empresa A", Active: true},
						{ID: "CMP002", Name: "Empresa B", Active: true},
					}, nil)
			},
			expected: 2,
		},
		{
			name: "Deve retornar lista vazia quando não há empresas",
			setup: func(companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					ListActive().
					Return([]*domain.Company{}, nil)
			},
			expected: 0,
		},
		{
			name: "Deve retornar erro quando repository falha",
			setup: func(companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					ListActive().
					Return(nil, assert.AnError)
			},
			expected: 0,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCompanyRepo := mocks.NewMockCompanyRepository(ctrl)
			service := &SnapshotSyncService{
				companyRepo: mockCompanyRepo,
			}

			tt.setup(mockCompanyRepo)

			companies, err := service.getActiveCompanies()

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, companies, tt.expected)
			}
		})
	}
}

func TestSnapshotSyncService_applyRetention(t *testing.T) {
	company := &domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}

	tests := []struct {
		name            string
		retentionMonths int
		setup           func(snapshotRepo *mocks.MockSnapshotRepository)
	}{
		{
			name:            "Retenção configurada - deve remover snapshots antigos",
			retentionMonths: 12,
			setup: func(snapshotRepo *mocks.MockSnapshotRepository) {
				snapshotRepo.EXPECT().
					DeleteOlderThan("CMP001", 12).
					Return(int64(5), nil)
			},
		},
		{
			name:            "Retenção desabilitada - não deve chamar o repositório",
			retentionMonths: 0,
			setup:           func(snapshotRepo *mocks.MockSnapshotRepository) {},
		},
		{
			name:            "Erro no repositório - não deve propagar",
			retentionMonths: 12,
			setup: func(snapshotRepo *mocks.MockSnapshotRepository) {
				snapshotRepo.EXPECT().
					DeleteOlderThan("CMP001", 12).
					Return(int64(0), assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
			service := &SnapshotSyncService{
				config:       SnapshotSyncConfig{RetentionMonths: tt.retentionMonths},
				snapshotRepo: mockSnapshotRepo,
			}

			tt.setup(mockSnapshotRepo)

			service.applyRetention(company)
		})
	}
}
