package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func realIPOf(t *testing.T, headers map[string]string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRealIP_CloudflareHeaderWins(t *testing.T) {
	t.Parallel()
	got := realIPOf(t, map[string]string{
		"CF-Connecting-IP": "198.51.100.7",
		"X-Forwarded-For":  "203.0.113.1, 10.0.0.1",
	})
	require.Equal(t, "198.51.100.7", got)
}

func TestRealIP_ForwardedForLeftMost(t *testing.T) {
	t.Parallel()
	got := realIPOf(t, map[string]string{
		"X-Forwarded-For": "203.0.113.1, 10.0.0.1",
	})
	require.Equal(t, "203.0.113.1", got)
}

func TestRealIP_IgnoresUnparseableHeaders(t *testing.T) {
	t.Parallel()
	got := realIPOf(t, map[string]string{
		"CF-Connecting-IP": "not-an-ip",
		"X-Forwarded-For":  "also-not-an-ip",
	})
	require.NotEmpty(t, got)
	require.NotEqual(t, "not-an-ip", got)
}
