package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/farah2601/investor-plattform-sub002/internal/domain"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/sharing"
	"github.com/farah2601/investor-plattform-sub002/pkg/apiErrors"
	"github.com/farah2601/investor-plattform-sub002/pkg/log"
	"github.com/farah2601/investor-plattform-sub002/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// CreateInvestorLink cria um link compartilhável para a empresa
func CreateInvestorLink(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req sharing.CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.CompanyID = id

		link, err := service.CreateLink(&req)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("sharing: failed to create investor link")

			writeSharingError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"company_id": id,
			"link_id":    link.ID,
		}).Info("sharing: investor link created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(link); err != nil {
			logger.WithError(err).Error("sharing: failed to encode response")
		}
	})
}

// ListInvestorLinks lista os links de investidor da empresa
func ListInvestorLinks(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		links, err := service.ListLinks(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("sharing: failed to list investor links")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar links", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(links); err != nil {
			logger.WithError(err).Error("sharing: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// RevokeInvestorLink revoga permanentemente um link de investidor
func RevokeInvestorLink(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		if err := service.RevokeLink(token); err != nil {
			logger.WithError(err).Error("sharing: failed to revoke investor link")
			writeSharingError(w, err)
			return
		}

		logger.Info("sharing: investor link revoked")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Link revogado com sucesso",
		})
	})
}

// GetSharedDashboard é a rota pública que resolve um token de link em uma
// visão somente-leitura do dashboard
func GetSharedDashboard(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		dashboard, err := service.OpenSharedDashboard(token)
		if err != nil {
			logger.WithError(err).Warn("sharing: failed to open shared dashboard")
			writeSharingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("sharing: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetSharedSeries é a rota pública de séries de métricas de um link
func GetSharedSeries(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro metric é obrigatório", nil)
			return
		}

		monthsAhead := 0
		if monthsAheadStr := r.URL.Query().Get("months_ahead"); monthsAheadStr != "" {
			parsed, err := strconv.Atoi(monthsAheadStr)
			if err != nil || parsed < 0 || parsed > maxMonthsAhead {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro months_ahead inválido", nil)
				return
			}
			monthsAhead = parsed
		}

		response, err := service.SharedSeries(token, metric, monthsAhead)
		if err != nil {
			logger.WithFields(log.Fields{
				"metric": metric,
				"error":  err.Error(),
			}).Warn("sharing: failed to build shared series")

			writeSharingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("sharing: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CreateAccessRequest é a rota pública de pedido de acesso a partir de um link
func CreateAccessRequest(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		var payload sharing.AccessRequestPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		request, err := service.RequestAccess(token, &payload)
		if err != nil {
			logger.WithError(err).Warn("sharing: failed to create access request")
			writeSharingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(request); err != nil {
			logger.WithError(err).Error("sharing: failed to encode response")
		}
	})
}

// ListAccessRequests lista as solicitações de acesso da empresa
func ListAccessRequests(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		status := r.URL.Query().Get("status")

		requests, err := service.ListAccessRequests(id, status)
		if err != nil {
			logger.WithFields(log.Fields{
				"company_id": id,
				"error":      err.Error(),
			}).Error("sharing: failed to list access requests")

			writeSharingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(requests); err != nil {
			logger.WithError(err).Error("sharing: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ResolveAccessRequest aprova ou nega uma solicitação de acesso pendente
func ResolveAccessRequest(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.ResolveAccessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ResolveAccessRequest(id, req.Status, userClaims.UserID); err != nil {
			logger.WithFields(log.Fields{
				"request_id": id,
				"status":     req.Status,
				"error":      err.Error(),
			}).Error("sharing: failed to resolve access request")

			writeSharingError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"request_id": id,
			"status":     req.Status,
		}).Info("sharing: access request resolved")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Solicitação resolvida com sucesso",
			"status":  req.Status,
		})
	})
}

// writeSharingError traduz erros do serviço de compartilhamento para a API
func writeSharingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sharing.ErrLinkNotFound):
		apiErrors.WriteError(w, apiErrors.ErrLinkNotFound, "Link não encontrado", nil)

	case errors.Is(err, sharing.ErrLinkRevoked):
		apiErrors.WriteError(w, apiErrors.ErrLinkRevoked, "Link revogado pelo fundador", nil)

	case errors.Is(err, sharing.ErrLinkExpired):
		apiErrors.WriteError(w, apiErrors.ErrLinkExpired, "Link expirado", nil)

	case errors.Is(err, sharing.ErrRequestNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccessRequestNotFound, "Solicitação de acesso não encontrada", nil)

	case errors.Is(err, sharing.ErrRequestAlreadyResolved), errors.Is(err, sharing.ErrInvalidRequestStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar compartilhamento", nil)
	}
}
