package app

import (
	"go-leave/internal/application"
	"go-leave/internal/benefit"
	"go-leave/internal/docs"
	"go-leave/internal/employee"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	benefitRepo := benefit.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- Services ---
	benefitService := benefit.NewService(benefitRepo, rdb)
	employeeService := employee.NewService(employeeRepo)
	applicationService := application.NewServiceWithOutbox(sqlDB, applicationRepo, outboxRepo)

	// --- Handlers ---
	benefitHandler := benefit.NewHandler(benefitService)
	employeeHandler := employee.NewHandler(employeeService)
	applicationHandler := application.NewHandler(applicationService)

	// --- Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(50, 100))

	// --- Routes Registration ---
	api := router.Group("")
	{
		benefit.RegisterRoutes(api, benefitHandler)
		employee.RegisterRoutes(api, employeeHandler)
		application.RegisterRoutes(api, applicationHandler)
	}

	// Artifact produced offline by cmd/docgen.
	router.StaticFile("/api-docs", docs.DefaultArtifactPath)

	return nil
}
