package handler

import (
	"net/http"

	"github.com/vfg2006/backbone-api/internal/api/handler/router"
	"github.com/vfg2006/backbone-api/internal/usecases/analyzing"
	"github.com/vfg2006/backbone-api/internal/usecases/authenticating"
	"github.com/vfg2006/backbone-api/internal/usecases/importing"
	"github.com/vfg2006/backbone-api/pkg/middleware"
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
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Datasets retorna as rotas de importação e inspeção do dataset
func Datasets(importer importing.Importer, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/import",
			Method:      http.MethodPost,
			Handler:     ImportDataset(importer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrPartner()},
		},
		{
			Path:        "/v1/datasets/summary",
			Method:      http.MethodGet,
			Handler:     GetDatasetSummary(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Priorities retorna as rotas da fila de prioridades e da saúde do portfólio
func Priorities(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/priorities",
			Method:      http.MethodGet,
			Handler:     GetPriorityQueue(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/portfolio/health",
			Method:      http.MethodGet,
			Handler:     GetPortfolioHealth(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Companies(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies",
			Method:      http.MethodGet,
			Handler:     ListCompanies(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/health",
			Method:      http.MethodGet,
			Handler:     GetCompanyHealth(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrPartner()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrPartner()},
		},
	}
}
