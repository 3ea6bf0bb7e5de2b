package main

import (
	"go-leave/internal/application"
	"go-leave/internal/benefit"
	"go-leave/internal/docs"
	"go-leave/internal/employee"

	"go.uber.org/zap"
)

// Offline, one-shot generator: never runs alongside the server. Any failure
// aborts the whole generation with a non-zero exit.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	doc := docs.Generate(
		benefit.Benefit{},
		employee.Employee{},
		application.Application{},
	)

	if err := docs.WriteFile(doc, docs.DefaultArtifactPath); err != nil {
		logger.Fatal("generate openapi artifact failed", zap.Error(err))
	}

	logger.Info("openapi artifact generated", zap.String("path", docs.DefaultArtifactPath))
}
