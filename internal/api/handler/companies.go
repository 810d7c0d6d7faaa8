package handler

import (
	"encoding/json"
	"net/http"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/companying"
	"github.com/farah2601/investor-plattform-sub002/pkg/apiErrors"
	"github.com/farah2601/investor-plattform-sub002/pkg/log"
	"github.com/farah2601/investor-plattform-sub002/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// ListCompanies retorna as empresas visíveis para o usuário logado.
// Administradores veem todas as empresas ativas; fundadores veem as suas.
func ListCompanies(service companying.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		ownerUserID := userClaims.UserID
		if userClaims.UserRoleID == middleware.RoleAdmin {
			ownerUserID = 0
		}

		companies, err := service.ListCompanies(ownerUserID)
		if err != nil {
			logger.WithError(err).Error("companies: failed to list companies")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar empresas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(companies); err != nil {
			logger.WithError(err).Error("companies: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCompany retorna uma empresa pelo ID
func GetCompany(service companying.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("company_id", id).Info("companies: fetching company by ID")

		company, err := service.GetCompany(id)
		if err != nil {
			writeCompanyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logger.WithError(err).Error("companies: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CreateCompany cadastra uma nova empresa pertencente ao usuário logado
func CreateCompany(service companying.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req companying.CreateCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// O dono é sempre quem cria; admins podem criar em nome de outro usuário
		if req.OwnerUserID == 0 || userClaims.UserRoleID != middleware.RoleAdmin {
			req.OwnerUserID = userClaims.UserID
		}

		company, err := service.CreateCompany(&req)
		if err != nil {
			logger.WithError(err).Error("companies: failed to create company")
			writeCompanyError(w, err)
			return
		}

		logger.WithField("company_id", company.ID).Info("companies: company created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logger.WithError(err).Error("companies: failed to encode response")
		}
	})
}

// UpdateCompany aplica um patch parcial na empresa, incluindo conexão e
// desconexão das integrações Stripe e Google Sheets
func UpdateCompany(service companying.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		var req domain.UpdateCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		company, err := service.UpdateCompany(r.Context(), &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("companies: failed to update company")
			writeCompanyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(company); err != nil {
			logger.WithError(err).Error("companies: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// writeCompanyError traduz erros do serviço de empresas para a resposta da API
func writeCompanyError(w http.ResponseWriter, err error) {
	var companyErr *companying.CompanyError
	if errors.As(err, &companyErr) {
		apiErrors.WriteError(w, companyErr.Code, companyErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, companying.ErrCompanyNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, "Empresa não encontrada", nil)

	case errors.Is(err, companying.ErrCompanyIDRequired), errors.Is(err, companying.ErrNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar empresa", nil)
	}
}
