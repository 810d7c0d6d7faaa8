package companying

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/farah2601/investor-plattform-sub002/infrastructure/integrator/stripe"
	"github.com/farah2601/investor-plattform-sub002/infrastructure/repository"
	"github.com/farah2601/investor-plattform-sub002/internal/config"
	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/pkg/apiErrors"
	"github.com/farah2601/investor-plattform-sub002/pkg/utils"
	"github.com/sirupsen/logrus"
)

// CreateCompanyRequest é o payload de cadastro de uma nova empresa.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	OwnerUserID int    `json:"owner_user_id"`
	Currency    string `json:"currency"`
}

type CompanyService interface {
	GetCompany(companyID string) (*domain.Company, error)
	ListCompanies(ownerUserID int) ([]*domain.Company, error)
	CreateCompany(req *CreateCompanyRequest) (*domain.Company, error)
	UpdateCompany(ctx context.Context, req *domain.UpdateCompanyRequest) (*domain.Company, error)
}

type Service struct {
	companyRepository repository.CompanyRepository
	stripeService     stripe.StripeIntegrator
	cfg               *config.Config
}

func NewService(
	companyRepository repository.CompanyRepository,
	stripeService stripe.StripeIntegrator,
	cfg *config.Config,
) CompanyService {
	return &Service{
		companyRepository: companyRepository,
		stripeService:     stripeService,
		cfg:               cfg,
	}
}

func (s *Service) GetCompany(companyID string) (*domain.Company, error) {
	if companyID == "" {
		return nil, ErrCompanyIDRequired
	}

	company, err := s.companyRepository.GetByID(companyID)
	if err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar empresa no banco de dados")
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	return company, nil
}

// ListCompanies retorna as empresas visíveis para o usuário. Com
// ownerUserID zero (admin), retorna todas as empresas ativas.
func (s *Service) ListCompanies(ownerUserID int) ([]*domain.Company, error) {
	var (
		companies []*domain.Company
		err       error
	)

	if ownerUserID > 0 {
		companies, err = s.companyRepository.ListByOwner(ownerUserID)
	} else {
		companies, err = s.companyRepository.ListActive()
	}
	if err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar empresas no banco de dados")
	}

	return companies, nil
}

func (s *Service) CreateCompany(req *CreateCompanyRequest) (*domain.Company, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	slug, err := s.uniqueSlug(req.Name)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCompanyError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar ID da empresa")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	company := &domain.Company{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		OwnerUserID: req.OwnerUserID,
		Currency:    currency,
		Active:      true,
	}

	created, err := s.companyRepository.Create(company)
	if err != nil {
		return nil, NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar empresa no banco de dados")
	}

	logrus.Infof("companies: empresa %s (%s) criada", created.ID, created.Slug)
	return created, nil
}

// UpdateCompany aplica um patch parcial. Ao conectar uma conta Stripe, a
// conta é validada na API da Stripe antes de persistir.
func (s *Service) UpdateCompany(ctx context.Context, req *domain.UpdateCompanyRequest) (*domain.Company, error) {
	if req == nil || req.ID == "" {
		return nil, ErrCompanyIDRequired
	}

	company, err := s.GetCompany(req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		company.Name = strings.TrimSpace(*req.Name)
	}

	if req.Currency != nil && *req.Currency != "" {
		company.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}

	if req.StripeAccount != nil {
		if *req.StripeAccount == "" {
			// Desconectar a integração
			company.StripeAccount = nil
		} else {
			if err := s.stripeService.ValidateConnection(ctx, *req.StripeAccount); err != nil {
				logrus.WithError(err).Error("companies: conta Stripe inválida", map[string]any{
					"companyID": company.ID,
				})
				return nil, NewCompanyError(ErrStripeValidation, apiErrors.ErrExternalService, fmt.Sprintf("Conta Stripe inválida: %s", *req.StripeAccount))
			}
			company.StripeAccount = req.StripeAccount
		}
	}

	if req.SheetID != nil {
		if *req.SheetID == "" {
			company.SheetID = nil
			company.SheetRange = nil
		} else {
			company.SheetID = req.SheetID
		}
	}

	if req.SheetRange != nil && *req.SheetRange != "" {
		company.SheetRange = req.SheetRange
	}

	if req.Active != nil {
		company.Active = *req.Active
	}

	if err := s.companyRepository.Update(company); err != nil {
		return nil, NewCompanyError(ErrUpdateCompany, apiErrors.ErrDatabaseOperation, "Falha ao atualizar empresa no banco de dados")
	}

	return company, nil
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// uniqueSlug deriva um slug do nome e resolve colisões com sufixo nanoid.
func (s *Service) uniqueSlug(name string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "company"
	}

	existing, err := s.companyRepository.GetBySlug(slug)
	if err != nil {
		return "", NewCompanyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar slug no banco de dados")
	}
	if existing == nil {
		return slug, nil
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", NewCompanyError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar sufixo do slug")
	}

	return fmt.Sprintf("%s-%s", slug, strings.ToLower(suffix)), nil
}
