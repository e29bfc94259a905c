package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/student-portal-api/internal/container"
	"github.com/oksasatya/student-portal-api/internal/domain/repository"
	handlers "github.com/oksasatya/student-portal-api/internal/interface/http"
	"github.com/oksasatya/student-portal-api/internal/interface/middleware"
	"github.com/oksasatya/student-portal-api/pkg/helpers"
)

// AuthModule wires the auth handlers and session guard into routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me

type AuthModule struct {
	Handler *handlers.AuthHandler
	Repo    repository.UserRepository
	Tokens  *helpers.TokenManager
}

func NewAuthModule(h *handlers.AuthHandler, repo repository.UserRepository, tokens *helpers.TokenManager) *AuthModule {
	return &AuthModule{Handler: h, Repo: repo, Tokens: tokens}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	allowLocal := middleware.AllowPrivateIP()

	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), allowLocal)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), allowLocal)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Repo, m.Tokens))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), allowLocal))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
