package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/student-portal-api/internal/domain/entity"
	"github.com/oksasatya/student-portal-api/internal/domain/repository"
	"github.com/oksasatya/student-portal-api/pkg/helpers"
)

type stubRepo struct {
	users map[string]*entity.User
}

func (s *stubRepo) Create(u *entity.User) error { return nil }

func (s *stubRepo) GetByID(id string) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *stubRepo) GetByEmail(email string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func guardedEngine(repo repository.UserRepository, tokens *helpers.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(repo, tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserIDKey)})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	t.Parallel()

	tokens := &helpers.TokenManager{Secret: []byte("s"), TTL: time.Hour}
	r := guardedEngine(&stubRepo{users: map[string]*entity.User{}}, tokens)

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer "} {
		w := doGet(r, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.Equal(t, "no token provided", messageOf(t, w), "header %q", header)
	}
}

func TestAuth_InvalidSignature(t *testing.T) {
	t.Parallel()

	other := &helpers.TokenManager{Secret: []byte("other-secret"), TTL: time.Hour}
	tok, _, err := other.Generate("u1")
	require.NoError(t, err)

	tokens := &helpers.TokenManager{Secret: []byte("current-secret"), TTL: time.Hour}
	r := guardedEngine(&stubRepo{users: map[string]*entity.User{}}, tokens)

	w := doGet(r, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid token", messageOf(t, w))
}

func TestAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	tokens := &helpers.TokenManager{Secret: []byte("s"), TTL: time.Hour}
	expired := &helpers.TokenManager{Secret: []byte("s"), TTL: -1 * time.Minute}
	tok, _, err := expired.Generate("u1")
	require.NoError(t, err)

	r := guardedEngine(&stubRepo{users: map[string]*entity.User{"u1": {ID: "u1"}}}, tokens)

	// expiry wins over the account still existing
	w := doGet(r, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "token expired", messageOf(t, w))
}

func TestAuth_UserGone(t *testing.T) {
	t.Parallel()

	tokens := &helpers.TokenManager{Secret: []byte("s"), TTL: time.Hour}
	tok, _, err := tokens.Generate("deleted-user")
	require.NoError(t, err)

	r := guardedEngine(&stubRepo{users: map[string]*entity.User{}}, tokens)

	w := doGet(r, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "user no longer exists", messageOf(t, w))
}

func TestAuth_Success(t *testing.T) {
	t.Parallel()

	tokens := &helpers.TokenManager{Secret: []byte("s"), TTL: time.Hour}
	tok, _, err := tokens.Generate("u7")
	require.NoError(t, err)

	repo := &stubRepo{users: map[string]*entity.User{
		"u7": {ID: "u7", Name: "Alice Doe", Email: "alice@x.com"},
	}}
	r := guardedEngine(repo, tokens)

	w := doGet(r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "u7", body.UserID)
}

func TestAuth_CaseInsensitiveBearerScheme(t *testing.T) {
	t.Parallel()

	tokens := &helpers.TokenManager{Secret: []byte("s"), TTL: time.Hour}
	tok, _, err := tokens.Generate("u8")
	require.NoError(t, err)

	r := guardedEngine(&stubRepo{users: map[string]*entity.User{"u8": {ID: "u8"}}}, tokens)

	w := doGet(r, "bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
}
