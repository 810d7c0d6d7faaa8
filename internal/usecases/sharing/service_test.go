package sharing

import (
	"testing"
	"time"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository/mocks"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockInvestorLinkRepository, *mocks.MockAccessRequestRepository, *mocks.MockCompanyRepository, *mocks.MockSnapshotRepository) {
	linkRepo := mocks.NewMockInvestorLinkRepository(ctrl)
	requestRepo := mocks.NewMockAccessRequestRepository(ctrl)
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := &Service{
		linkRepo:     linkRepo,
		requestRepo:  requestRepo,
		companyRepo:  companyRepo,
		snapshotRepo: snapshotRepo,
	}

	return service, linkRepo, requestRepo, companyRepo, snapshotRepo
}

func TestService_CreateLink(t *testing.T) {
	futureDate := time.Now().Add(30 * 24 * time.Hour)
	pastDate := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name     string
		req      *CreateLinkRequest
		setup    func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository)
		validate func(t *testing.T, link *domain.InvestorLink, err error)
	}{
		{
			name: "Deve criar link com token opaco para empresa existente",
			req:  &CreateLinkRequest{CompanyID: "CMP001", Label: "  Rodada Seed  ", ExpiresAt: &futureDate},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				linkRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(link *domain.InvestorLink) (*domain.InvestorLink, error) {
						assert.NotEmpty(t, link.ID)
						assert.NotEmpty(t, link.Token)
						assert.Equal(t, "CMP001", link.CompanyID)
						assert.Equal(t, "Rodada Seed", link.Label)
						return link, nil
					})
			},
			validate: func(t *testing.T, link *domain.InvestorLink, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, link)
				assert.False(t, link.Revoked)
			},
		},
		{
			name:  "Deve rejeitar requisição sem ID da empresa",
			req:   &CreateLinkRequest{Label: "Sem empresa"},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository) {},
			validate: func(t *testing.T, link *domain.InvestorLink, err error) {
				assert.Error(t, err)
				assert.Nil(t, link)
			},
		},
		{
			name: "Deve rejeitar data de expiração no passado",
			req:  &CreateLinkRequest{CompanyID: "CMP001", ExpiresAt: &pastDate},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)
			},
			validate: func(t *testing.T, link *domain.InvestorLink, err error) {
				assert.Error(t, err)
				assert.Nil(t, link)
			},
		},
		{
			name: "Deve rejeitar empresa inexistente",
			req:  &CreateLinkRequest{CompanyID: "CMP999"},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().
					GetByID("CMP999").
					Return(nil, nil)
			},
			validate: func(t *testing.T, link *domain.InvestorLink, err error) {
				assert.Error(t, err)
				assert.Nil(t, link)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, linkRepo, _, companyRepo, _ := newTestService(ctrl)
			tt.setup(linkRepo, companyRepo)

			link, err := service.CreateLink(tt.req)
			tt.validate(t, link, err)
		})
	}
}

func TestService_OpenSharedDashboard(t *testing.T) {
	futureDate := time.Now().Add(24 * time.Hour)
	pastDate := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name     string
		token    string
		setup    func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockSnapshotRepository)
		validate func(t *testing.T, dashboard *domain.SharedDashboard, err error)
	}{
		{
			name:  "Token válido - deve retornar visão pública e contabilizar visualização",
			token: "tok-valido",
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-valido").
					Return(&domain.InvestorLink{ID: "LNK001", CompanyID: "CMP001", Token: "tok-valido", ExpiresAt: &futureDate}, nil)

				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Currency: "USD", Active: true}, nil)

				snapshotRepo.EXPECT().
					GetByCompanyID("CMP001", nil).
					Return([]*domain.SnapshotRow{
						{ID: "SNP001", CompanyID: "CMP001", KPIs: map[string]any{"mrr": 10000.0}},
					}, nil)

				snapshotRepo.EXPECT().
					GetSources("CMP001").
					Return(map[string]string{"mrr": "stripe"}, nil)

				linkRepo.EXPECT().IncrementViewCount("tok-valido").Return(nil)
			},
			validate: func(t *testing.T, dashboard *domain.SharedDashboard, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, dashboard)
				assert.Equal(t, "Empresa A", dashboard.CompanyName)
				assert.Equal(t, "USD", dashboard.Currency)
				assert.Len(t, dashboard.Rows, 1)
				assert.Equal(t, "stripe", dashboard.Sources["mrr"])
			},
		},
		{
			name:  "Token inexistente - deve retornar ErrLinkNotFound",
			token: "tok-inexistente",
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				linkRepo.EXPECT().GetByToken("tok-inexistente").Return(nil, nil)
			},
			validate: func(t *testing.T, dashboard *domain.SharedDashboard, err error) {
				assert.ErrorIs(t, err, ErrLinkNotFound)
				assert.Nil(t, dashboard)
			},
		},
		{
			name:  "Link revogado - deve retornar ErrLinkRevoked",
			token: "tok-revogado",
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-revogado").
					Return(&domain.InvestorLink{ID: "LNK002", CompanyID: "CMP001", Token: "tok-revogado", Revoked: true}, nil)
			},
			validate: func(t *testing.T, dashboard *domain.SharedDashboard, err error) {
				assert.ErrorIs(t, err, ErrLinkRevoked)
				assert.Nil(t, dashboard)
			},
		},
		{
			name:  "Link expirado - deve retornar ErrLinkExpired",
			token: "tok-expirado",
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-expirado").
					Return(&domain.InvestorLink{ID: "LNK003", CompanyID: "CMP001", Token: "tok-expirado", ExpiresAt: &pastDate}, nil)
			},
			validate: func(t *testing.T, dashboard *domain.SharedDashboard, err error) {
				assert.ErrorIs(t, err, ErrLinkExpired)
				assert.Nil(t, dashboard)
			},
		},
		{
			name:  "Empresa desativada - links devem se tornar inacessíveis",
			token: "tok-empresa-inativa",
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-empresa-inativa").
					Return(&domain.InvestorLink{ID: "LNK004", CompanyID: "CMP002", Token: "tok-empresa-inativa"}, nil)

				companyRepo.EXPECT().
					GetByID("CMP002").
					Return(&domain.Company{ID: "CMP002", Name: "Empresa B", Active: false}, nil)
			},
			validate: func(t *testing.T, dashboard *domain.SharedDashboard, err error) {
				assert.ErrorIs(t, err, ErrLinkNotFound)
				assert.Nil(t, dashboard)
			},
		},
		{
			name:  "Falha ao contabilizar visualização - não deve bloquear o acesso",
			token: "tok-valido",
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, companyRepo *mocks.MockCompanyRepository, snapshotRepo *mocks.MockSnapshotRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-valido").
					Return(&domain.InvestorLink{ID: "LNK001", CompanyID: "CMP001", Token: "tok-valido"}, nil)

				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Currency: "BRL", Active: true}, nil)

				snapshotRepo.EXPECT().GetByCompanyID("CMP001", nil).Return([]*domain.SnapshotRow{}, nil)
				snapshotRepo.EXPECT().GetSources("CMP001").Return(nil, assert.AnError)
				linkRepo.EXPECT().IncrementViewCount("tok-valido").Return(assert.AnError)
			},
			validate: func(t *testing.T, dashboard *domain.SharedDashboard, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, dashboard)
				assert.Nil(t, dashboard.Sources)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, linkRepo, _, companyRepo, snapshotRepo := newTestService(ctrl)
			tt.setup(linkRepo, companyRepo, snapshotRepo)

			dashboard, err := service.OpenSharedDashboard(tt.token)
			tt.validate(t, dashboard, err)
		})
	}
}

func TestService_SharedSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, linkRepo, _, companyRepo, snapshotRepo := newTestService(ctrl)

	linkRepo.EXPECT().
		GetByToken("tok-valido").
		Return(&domain.InvestorLink{ID: "LNK001", CompanyID: "CMP001", Token: "tok-valido"}, nil)

	companyRepo.EXPECT().
		GetByID("CMP001").
		Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

	snapshotRepo.EXPECT().
		GetByCompanyID("CMP001", nil).
		Return([]*domain.SnapshotRow{
			{
				ID:         "SNP001",
				CompanyID:  "CMP001",
				PeriodDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				KPIs:       map[string]any{"mrr": 10000.0},
			},
			{
				ID:         "SNP002",
				CompanyID:  "CMP001",
				PeriodDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				KPIs:       map[string]any{"mrr": 12000.0},
			},
		}, nil)

	result, err := service.SharedSeries("tok-valido", "mrr", 3)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "mrr", result.Metric)
	assert.Equal(t, 3, result.MonthsAhead)
	// Junho a agosto observados (com julho densificado) mais 3 meses de projeção
	assert.Len(t, result.Points, 6)

	// Métrica vazia é rejeitada antes de resolver o token
	result, err = service.SharedSeries("tok-valido", "", 0)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_RequestAccess(t *testing.T) {
	message := "Gostaria de acompanhar os números"

	tests := []struct {
		name     string
		token    string
		payload  *AccessRequestPayload
		setup    func(linkRepo *mocks.MockInvestorLinkRepository, requestRepo *mocks.MockAccessRequestRepository, companyRepo *mocks.MockCompanyRepository)
		validate func(t *testing.T, request *domain.AccessRequest, err error)
	}{
		{
			name:    "Deve criar solicitação com email normalizado",
			token:   "tok-valido",
			payload: &AccessRequestPayload{Email: "  Investor@Fund.COM ", Name: " Maria Silva ", Message: &message},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, requestRepo *mocks.MockAccessRequestRepository, companyRepo *mocks.MockCompanyRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-valido").
					Return(&domain.InvestorLink{ID: "LNK001", CompanyID: "CMP001", Token: "tok-valido"}, nil)

				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				requestRepo.EXPECT().
					GetByLinkAndEmail("LNK001", "investor@fund.com").
					Return(nil, nil)

				requestRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(request *domain.AccessRequest) (*domain.AccessRequest, error) {
						assert.NotEmpty(t, request.ID)
						assert.Equal(t, "investor@fund.com", request.Email)
						assert.Equal(t, "Maria Silva", request.Name)
						assert.Equal(t, domain.AccessRequestPending, request.Status)
						return request, nil
					})
			},
			validate: func(t *testing.T, request *domain.AccessRequest, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, request)
			},
		},
		{
			name:    "Solicitação pendente do mesmo email - deve deduplicar",
			token:   "tok-valido",
			payload: &AccessRequestPayload{Email: "investor@fund.com", Name: "Maria Silva"},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, requestRepo *mocks.MockAccessRequestRepository, companyRepo *mocks.MockCompanyRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-valido").
					Return(&domain.InvestorLink{ID: "LNK001", CompanyID: "CMP001", Token: "tok-valido"}, nil)

				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				requestRepo.EXPECT().
					GetByLinkAndEmail("LNK001", "investor@fund.com").
					Return(&domain.AccessRequest{ID: "REQ001", Status: domain.AccessRequestPending}, nil)
			},
			validate: func(t *testing.T, request *domain.AccessRequest, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "REQ001", request.ID)
			},
		},
		{
			name:    "Solicitação anterior já negada - deve permitir novo pedido",
			token:   "tok-valido",
			payload: &AccessRequestPayload{Email: "investor@fund.com", Name: "Maria Silva"},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, requestRepo *mocks.MockAccessRequestRepository, companyRepo *mocks.MockCompanyRepository) {
				linkRepo.EXPECT().
					GetByToken("tok-valido").
					Return(&domain.InvestorLink{ID: "LNK001", CompanyID: "CMP001", Token: "tok-valido"}, nil)

				companyRepo.EXPECT().
					GetByID("CMP001").
					Return(&domain.Company{ID: "CMP001", Name: "Empresa A", Active: true}, nil)

				requestRepo.EXPECT().
					GetByLinkAndEmail("LNK001", "investor@fund.com").
					Return(&domain.AccessRequest{ID: "REQ001", Status: domain.AccessRequestDenied}, nil)

				requestRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(request *domain.AccessRequest) (*domain.AccessRequest, error) {
						return request, nil
					})
			},
			validate: func(t *testing.T, request *domain.AccessRequest, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.NotEqual(t, "REQ001", request.ID)
			},
		},
		{
			name:    "Payload sem email - deve rejeitar",
			token:   "tok-valido",
			payload: &AccessRequestPayload{Name: "Maria Silva"},
			setup: func(linkRepo *mocks.MockInvestorLinkRepository, requestRepo *mocks.MockAccessRequestRepository, companyRepo *mocks.MockCompanyRepository) {
			},
			validate: func(t *testing.T, request *domain.AccessRequest, err error) {
				assert.Error(t, err)
				assert.Nil(t, request)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, linkRepo, requestRepo, companyRepo, _ := newTestService(ctrl)
			tt.setup(linkRepo, requestRepo, companyRepo)

			request, err := service.RequestAccess(tt.token, tt.payload)
			tt.validate(t, request, err)
		})
	}
}

func TestService_ResolveAccessRequest(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		status      string
		setup       func(requestRepo *mocks.MockAccessRequestRepository)
		expectedErr error
	}{
		{
			name:   "Deve aprovar solicitação pendente",
			id:     "REQ001",
			status: domain.AccessRequestApproved,
			setup: func(requestRepo *mocks.MockAccessRequestRepository) {
				requestRepo.EXPECT().
					GetByID("REQ001").
					Return(&domain.AccessRequest{ID: "REQ001", Status: domain.AccessRequestPending}, nil)

				requestRepo.EXPECT().
					Resolve("REQ001", domain.AccessRequestApproved, 42, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:        "Status inválido - deve rejeitar sem consultar o repositório",
			id:          "REQ001",
			status:      "maybe",
			setup:       func(requestRepo *mocks.MockAccessRequestRepository) {},
			expectedErr: ErrInvalidRequestStatus,
		},
		{
			name:   "Solicitação inexistente - deve retornar ErrRequestNotFound",
			id:     "REQ999",
			status: domain.AccessRequestDenied,
			setup: func(requestRepo *mocks.MockAccessRequestRepository) {
				requestRepo.EXPECT().GetByID("REQ999").Return(nil, nil)
			},
			expectedErr: ErrRequestNotFound,
		},
		{
			name:   "Solicitação já resolvida - deve retornar ErrRequestAlreadyResolved",
			id:     "REQ001",
			status: domain.AccessRequestApproved,
			setup: func(requestRepo *mocks.MockAccessRequestRepository) {
				requestRepo.EXPECT().
					GetByID("REQ001").
					Return(&domain.AccessRequest{ID: "REQ001", Status: domain.AccessRequestApproved}, nil)
			},
			expectedErr: ErrRequestAlreadyResolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _, requestRepo, _, _ := newTestService(ctrl)
			tt.setup(requestRepo)

			err := service.ResolveAccessRequest(tt.id, tt.status, 42)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_RevokeLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, linkRepo, _, _, _ := newTestService(ctrl)

	linkRepo.EXPECT().
		GetByToken("tok-valido").
		Return(&domain.InvestorLink{ID: "LNK001", CompanyID: "CMP001", Token: "tok-valido"}, nil)
	linkRepo.EXPECT().Revoke("tok-valido").Return(nil)

	assert.NoError(t, service.RevokeLink("tok-valido"))

	linkRepo.EXPECT().GetByToken("tok-inexistente").Return(nil, nil)
	assert.ErrorIs(t, service.RevokeLink("tok-inexistente"), ErrLinkNotFound)
}
