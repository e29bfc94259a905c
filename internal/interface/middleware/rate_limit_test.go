package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_NilRedisFailsOpen(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestKeyFuncs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	c.Set("real_ip", "203.0.113.9")

	require.Equal(t, "rl:ip:203.0.113.9", KeyByIP()(c))
	require.Equal(t, "rl:path:/api/auth/login:ip:203.0.113.9", KeyByIPAndPath()(c))
	require.Equal(t, "rl:user:anon:ip:203.0.113.9", KeyByUserID()(c))

	c.Set(CtxUserIDKey, "u1")
	require.Equal(t, "rl:user:u1", KeyByUserID()(c))
}

func TestAllowPrivateIP(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	cases := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"192.168.0.10", true},
		{"203.0.113.9", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set("real_ip", tc.ip)
		require.Equal(t, tc.want, AllowPrivateIP()(c), tc.ip)
	}
}
