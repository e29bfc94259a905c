package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/student-portal-api/internal/container"
	"github.com/oksasatya/student-portal-api/internal/interface/middleware"
	"github.com/oksasatya/student-portal-api/pkg/response"
)

type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/health", rl, func(c *gin.Context) {
		response.Success[any](c, http.StatusOK, nil, "Server is running!", nil)
	})
}
