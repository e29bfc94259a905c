package router

import (
	"github.com/oksasatya/student-portal-api/internal/application"
	"github.com/oksasatya/student-portal-api/internal/container"
	"github.com/oksasatya/student-portal-api/internal/domain/repository"
	pginfra "github.com/oksasatya/student-portal-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/student-portal-api/internal/interface/http"
	"github.com/oksasatya/student-portal-api/internal/router/modules"
)

type AuthModuleDeps struct {
	Repo    repository.UserRepository
	Service *application.Service
	Handler *handlers.AuthHandler
}

func buildAuthDeps() AuthModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := application.NewService(
		repo,
		container.GetTokens(),
		container.GetLogger(),
	)

	handler := handlers.NewAuthHandler(service, container.GetLogger())

	return AuthModuleDeps{Repo: repo, Service: service, Handler: handler}
}

// InitModules initializes all application modules and registers them with the router registry.
// Called once during application startup.
func InitModules(r *Registry) {
	authDeps := buildAuthDeps()
	r.Add(modules.NewAuthModule(authDeps.Handler, authDeps.Repo, container.GetTokens()))
	r.Add(modules.NewHealthModule())
}
