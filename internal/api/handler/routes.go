package handler

import (
	"net/http"

	"github.com/farah2601/investor-plattform-sub002/internal/api/handler/router"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/authenticating"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/companying"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/sharing"
	"github.com/farah2601/investor-plattform-sub002/internal/usecases/snapshotting"
	"github.com/farah2601/investor-plattform-sub002/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Companies(service companying.CompanyService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies",
			Method:      http.MethodGet,
			Handler:     ListCompanies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies",
			Method:      http.MethodPost,
			Handler:     CreateCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodGet,
			Handler:     GetCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
	}
}

func Snapshots(service snapshotting.Snapshotter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/snapshots",
			Method:      http.MethodGet,
			Handler:     GetCompanySnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/series",
			Method:      http.MethodGet,
			Handler:     GetCompanySeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/metrics",
			Method:      http.MethodGet,
			Handler:     ListCompanyMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshCompanySnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
	}
}

// Sharing retorna as rotas de links de investidor e solicitações de acesso.
// As rotas com prefixo /v1/shared/ são públicas: o próprio token do link é
// a credencial.
func Sharing(service sharing.Sharer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/links",
			Method:      http.MethodPost,
			Handler:     CreateInvestorLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
		{
			Path:        "/v1/companies/:id/links",
			Method:      http.MethodGet,
			Handler:     ListInvestorLinks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
		{
			Path:        "/v1/links/:token",
			Method:      http.MethodDelete,
			Handler:     RevokeInvestorLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
		{
			Path:    "/v1/shared/:token",
			Method:  http.MethodGet,
			Handler: GetSharedDashboard(service),
		},
		{
			Path:    "/v1/shared/:token/series",
			Method:  http.MethodGet,
			Handler: GetSharedSeries(service),
		},
		{
			Path:    "/v1/shared/:token/access-requests",
			Method:  http.MethodPost,
			Handler: CreateAccessRequest(service),
		},
		{
			Path:        "/v1/companies/:id/access-requests",
			Method:      http.MethodGet,
			Handler:     ListAccessRequests(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
		{
			Path:        "/v1/access-requests/:id",
			Method:      http.MethodPut,
			Handler:     ResolveAccessRequest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrFounder()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserCompanies retorna as rotas para gerenciamento de empresas vinculadas a usuários
func UserCompanies(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/companies",
			Method:      http.MethodGet,
			Handler:     GetUserCompanies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/companies",
			Method:      http.MethodPut,
			Handler:     UpdateUserCompanies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/companies/link",
			Method:      http.MethodPost,
			Handler:     LinkUserCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/companies/:company_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
