package app

import (
	"os"

	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on the
// router. DATABASE_URL is required; redis is optional and only disables the
// benefit cache when absent.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(os.Getenv("DATABASE_URL"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			zap.L().Warn("redis unavailable, benefit cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	return registerModules(router, gormDB, redisClient)
}
