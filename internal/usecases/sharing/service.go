package sharing

import (
	"fmt"
	"strings"
	"time"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/charting"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
	"github.com/sirupsen/logrus"
)

// CreateLinkRequest é o payload de criação de um link de investidor.
type CreateLinkRequest struct {
	CompanyID string     `json:"company_id"`
	Label     string     `json:"label"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// AccessRequestPayload é o pedido público de acesso feito a partir de um
// link compartilhado.
type AccessRequestPayload struct {
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Message *string `json:"message"`
}

// Sharer define as operações de links de investidor e solicitações de acesso
type Sharer interface {
	CreateLink(req *CreateLinkRequest) (*domain.InvestorLink, error)
	ListLinks(companyID string) ([]*domain.InvestorLink, error)
	RevokeLink(token string) error

	// OpenSharedDashboard resolve um token público em uma visão somente-leitura
	OpenSharedDashboard(token string) (*domain.SharedDashboard, error)

	// SharedSeries monta a série densa de uma métrica através de um link público
	SharedSeries(token, metric string, monthsAhead int) (*domain.SeriesResponse, error)

	RequestAccess(token string, payload *AccessRequestPayload) (*domain.AccessRequest, error)
	ListAccessRequests(companyID string, status string) ([]*domain.AccessRequest, error)
	ResolveAccessRequest(id string, status string, resolvedBy int) error
}

// Service implementa a interface Sharer
type Service struct {
	cfg          *config.Config
	linkRepo     repository.InvestorLinkRepository
	requestRepo  repository.AccessRequestRepository
	companyRepo  repository.CompanyRepository
	snapshotRepo repository.SnapshotRepository
}

// NewService cria uma nova instância do serviço de compartilhamento
func NewService(
	cfg *config.Config,
	linkRepo repository.InvestorLinkRepository,
	requestRepo repository.AccessRequestRepository,
	companyRepo repository.CompanyRepository,
	snapshotRepo repository.SnapshotRepository,
) Sharer {
	return &Service{
		cfg:          cfg,
		linkRepo:     linkRepo,
		requestRepo:  requestRepo,
		companyRepo:  companyRepo,
		snapshotRepo: snapshotRepo,
	}
}

// CreateLink gera um novo link de investidor com token opaco para a empresa.
func (s *Service) CreateLink(req *CreateLinkRequest) (*domain.InvestorLink, error) {
	if req == nil || req.CompanyID == "" {
		return nil, fmt.Errorf("é necessário informar o ID da empresa")
	}

	company, err := s.companyRepo.GetByID(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa não encontrada: %s", req.CompanyID)
	}

	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("a data de expiração não pode estar no passado")
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar token do link: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	link := &domain.InvestorLink{
		ID:        id,
		CompanyID: company.ID,
		Token:     token,
		Label:     strings.TrimSpace(req.Label),
		ExpiresAt: req.ExpiresAt,
	}

	created, err := s.linkRepo.Create(link)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar link de investidor: %w", err)
	}

	logrus.Infof("sharing: link %s criado para a empresa %s", created.ID, company.ID)
	return created, nil
}

// ListLinks retorna todos os links de investidor da empresa, inclusive os
// revogados (o fundador vê o histórico completo).
func (s *Service) ListLinks(companyID string) ([]*domain.InvestorLink, error) {
	if companyID == "" {
		return nil, fmt.Errorf("é necessário informar o ID da empresa")
	}

	return s.linkRepo.ListByCompanyID(companyID)
}

// RevokeLink revoga um link de investidor. Revogação é permanente: o link
// não pode ser reativado, apenas substituído por um novo.
func (s *Service) RevokeLink(token string) error {
	link, err := s.linkRepo.GetByToken(token)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrLinkNotFound
	}

	if err := s.linkRepo.Revoke(token); err != nil {
		return fmt.Errorf("erro ao revogar link: %w", err)
	}

	logrus.Infof("sharing: link %s revogado", link.ID)
	return nil
}

// OpenSharedDashboard resolve um token público em uma visão somente-leitura
// do dashboard da empresa e contabiliza a visualização.
func (s *Service) OpenSharedDashboard(token string) (*domain.SharedDashboard, error) {
	link, company, err := s.resolveLink(token)
	if err != nil {
		return nil, err
	}

	rows, err := s.snapshotRepo.GetByCompanyID(company.ID, nil)
	if err != nil {
		return nil, err
	}

	sources, err := s.snapshotRepo.GetSources(company.ID)
	if err != nil {
		logrus.WithError(err).Warn("sharing: erro ao buscar origens das métricas")
		sources = nil
	}

	// Contabilização best-effort: uma falha aqui não bloqueia o acesso
	if err := s.linkRepo.IncrementViewCount(token); err != nil {
		logrus.WithError(err).Warn("sharing: erro ao contabilizar visualização do link", map[string]any{
			"linkID": link.ID,
		})
	}

	return &domain.SharedDashboard{
		CompanyName: company.Name,
		Currency:    company.Currency,
		Rows:        rows,
		Sources:     sources,
	}, nil
}

// SharedSeries monta a série densa de uma métrica para um link público.
// Usa sempre os padrões da métrica: o investidor não tem overrides.
func (s *Service) SharedSeries(token, metric string, monthsAhead int) (*domain.SeriesResponse, error) {
	if metric == "" {
		return nil, fmt.Errorf("é necessário informar a métrica")
	}

	_, company, err := s.resolveLink(token)
	if err != nil {
		return nil, err
	}

	rows, err := s.snapshotRepo.GetByCompanyID(company.ID, nil)
	if err != nil {
		return nil, err
	}

	opts := charting.DefaultSeriesOptions(metric)
	points := charting.BuildDenseSeries(rows, metric, &opts)

	if monthsAhead > 0 {
		points = charting.ExtendWithForecast(points, charting.DefaultForecastOptions(metric, monthsAhead))
	}

	return &domain.SeriesResponse{
		Metric:      metric,
		Points:      points,
		MonthsAhead: monthsAhead,
	}, nil
}

// RequestAccess registra um pedido público de acesso feito a partir de um
// link compartilhado. Pedidos repetidos do mesmo email no mesmo link são
// deduplicados enquanto o pedido anterior estiver pendente.
func (s *Service) RequestAccess(token string, payload *AccessRequestPayload) (*domain.AccessRequest, error) {
	if payload == nil || payload.Email == "" || payload.Name == "" {
		return nil, fmt.Errorf("é necessário informar email e nome")
	}

	link, company, err := s.resolveLink(token)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	existing, err := s.requestRepo.GetByLinkAndEmail(link.ID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Pending() {
		return existing, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	request := &domain.AccessRequest{
		ID:        id,
		CompanyID: company.ID,
		LinkID:    link.ID,
		Email:     email,
		Name:      strings.TrimSpace(payload.Name),
		Message:   payload.Message,
		Status:    domain.AccessRequestPending,
	}

	created, err := s.requestRepo.Create(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar solicitação de acesso: %w", err)
	}

	logrus.Infof("sharing: solicitação de acesso %s criada para a empresa %s", created.ID, company.ID)
	return created, nil
}

// ListAccessRequests retorna as solicitações de acesso da empresa,
// opcionalmente filtradas por status.
func (s *Service) ListAccessRequests(companyID string, status string) ([]*domain.AccessRequest, error) {
	if companyID == "" {
		return nil, fmt.Errorf("é necessário informar o ID da empresa")
	}

	if status != "" && !validStatus(status) {
		return nil, ErrInvalidRequestStatus
	}

	return s.requestRepo.ListByCompanyID(companyID, status)
}

// ResolveAccessRequest aprova ou nega uma solicitação pendente.
func (s *Service) ResolveAccessRequest(id string, status string, resolvedBy int) error {
	if status != domain.AccessRequestApproved && status != domain.AccessRequestDenied {
		return ErrInvalidRequestStatus
	}

	request, err := s.requestRepo.GetByID(id)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}
	if !request.Pending() {
		return ErrRequestAlreadyResolved
	}

	if err := s.requestRepo.Resolve(id, status, resolvedBy, time.Now().UTC()); err != nil {
		return fmt.Errorf("erro ao resolver solicitação de acesso: %w", err)
	}

	logrus.Infof("sharing: solicitação %s resolvida como %s pelo usuário %d", id, status, resolvedBy)
	return nil
}

// resolveLink valida um token público e retorna o link e a empresa.
func (s *Service) resolveLink(token string) (*domain.InvestorLink, *domain.Company, error) {
	if token == "" {
		return nil, nil, ErrLinkNotFound
	}

	link, err := s.linkRepo.GetByToken(token)
	if err != nil {
		return nil, nil, err
	}
	if link == nil {
		return nil, nil, ErrLinkNotFound
	}

	now := time.Now()
	if link.Revoked {
		return nil, nil, ErrLinkRevoked
	}
	if link.Expired(now) {
		return nil, nil, ErrLinkExpired
	}

	company, err := s.companyRepo.GetByID(link.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil || !company.Active {
		// Empresa desativada torna todos os seus links inacessíveis
		return nil, nil, ErrLinkNotFound
	}

	return link, company, nil
}

func validStatus(status string) bool {
	switch status {
	case domain.AccessRequestPending, domain.AccessRequestApproved, domain.AccessRequestDenied:
		return true
	}
	return false
}
