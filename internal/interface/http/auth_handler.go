package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-portal-api/internal/application"
	"github.com/oksasatya/student-portal-api/internal/domain/repository"
	"github.com/oksasatya/student-portal-api/internal/interface/middleware"
	"github.com/oksasatya/student-portal-api/pkg/response"
	"github.com/oksasatya/student-portal-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name            string `json:"name" binding:"required,fullname"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,pwd"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a student account and signs the new student in.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("register failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong on the server", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": res.User, "token": res.Token},
		"registration successful", gin.H{"token_expires_at": res.TokenExpiry})
}

// Login verifies credentials and issues a bearer token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong on the server", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": res.User, "token": res.Token},
		"login successful", gin.H{"token_expires_at": res.TokenExpiry})
}

// Me returns the account the session guard already resolved. The guard did
// the lookup; this is a pass-through, not a second query.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	v, ok := c.Get(middleware.CtxUserKey)
	u, _ := v.(*application.UserView)
	if !ok || u == nil {
		response.Error[any](c, http.StatusUnauthorized, "no token provided", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "profile", nil)
}
