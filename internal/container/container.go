package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-portal-api/config"
	"github.com/oksasatya/student-portal-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire from these singletons; everything is set once
// at process start and only read afterwards.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenManager *helpers.TokenManager
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetTokens(m *helpers.TokenManager) { tokenManager = m }
func GetTokens() *helpers.TokenManager {
	if tokenManager != nil {
		return tokenManager
	}
	return helpers.DefaultTokenManager()
}
