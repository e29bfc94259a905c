package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-portal-api/internal/domain/entity"
	repo "github.com/oksasatya/student-portal-api/internal/domain/repository"
	"github.com/oksasatya/student-portal-api/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service orchestrates registration and login. It holds no cross-request
// state; the repository and the signing secret inside the token manager are
// the only shared handles.
type Service struct {
	Repo   repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Tokens: tokens, Logger: logger}
}

// UserView is the public representation of an account. It deliberately
// has no slot for the password hash, so no serialization can leak it.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ViewOf strips an account down to its public representation.
func ViewOf(u *entity.User) *UserView {
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// AuthResult pairs the public account view with a freshly issued token.
type AuthResult struct {
	User        *UserView
	Token       string
	TokenExpiry time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// NormalizeEmail lowercases and trims an email so lookups and the store's
// uniqueness constraint agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and issues a token for it, so a new student
// lands in the portal already signed in. Duplicate emails surface as
// repository.ErrDuplicateEmail regardless of input casing.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        NormalizeEmail(in.Email),
		PasswordHash: hash,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return s.issue(u)
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password take the same path out, so callers cannot probe which
// emails are registered.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(NormalizeEmail(email))
	if err != nil || u == nil {
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *Service) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.Tokens.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return &AuthResult{User: ViewOf(u), Token: token, TokenExpiry: exp}, nil
}
