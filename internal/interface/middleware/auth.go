package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/student-portal-api/internal/application"
	"github.com/oksasatya/student-portal-api/internal/domain/repository"
	"github.com/oksasatya/student-portal-api/pkg/helpers"
	"github.com/oksasatya/student-portal-api/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "currentUser"
)

// Auth is the session guard: it turns an `Authorization: Bearer <token>`
// header into a resolved account on the Gin context (public view, hash
// stripped), or rejects the request. Every call stands alone; nothing is
// remembered between requests beyond what the token itself encodes.
//
// Rejection reasons are deliberately distinct (unlike login failures):
// a missing header, a bad signature, an expired token, and a token whose
// account has vanished each get their own message.
func Auth(repo repository.UserRepository, tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "no token provided", nil)
			c.Abort()
			return
		}
		claims, err := tokens.Parse(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			response.Error[any](c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}
		// The account may have been removed since the token was minted;
		// a valid signature alone is not enough.
		u, err := repo.GetByID(claims.UserID)
		if err != nil || u == nil {
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				response.Error[any](c, http.StatusInternalServerError, "something went wrong on the server", nil)
				c.Abort()
				return
			}
			response.Error[any](c, http.StatusUnauthorized, "user no longer exists", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, application.ViewOf(u))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
