package main

import (
	"os"
	"time"

	"go-leave/internal/application"
	"go-leave/internal/benefit"
	"go-leave/internal/employee"
	"go-leave/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)
`

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(os.Getenv("DATABASE_URL"), 5)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if err := migrate(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	if err := seed(db); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	logger.Info("seeding finished")
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&benefit.Benefit{},
		&employee.Employee{},
		&application.Application{},
	); err != nil {
		return err
	}
	return db.Exec(outboxTableDDL).Error
}

func benefitFixtures() []benefit.Benefit {
	return []benefit.Benefit{
		{Name: "Medical Leave"},
		{Name: "Family Leave"},
	}
}

func employeeFixtures() []employee.Employee {
	return []employee.Employee{
		{
			FirstName:   "Jane",
			LastName:    "Smith",
			DateOfBirth: mustParseTime("2014-09-08T08:02:17-05:00"),
			Secret:      "jane-secret",
		},
		{
			// Year 1097 is what the fixture data really carries.
			FirstName:   "John",
			LastName:    "Smith",
			DateOfBirth: mustParseTime("1097-09-08T08:02:17-05:00"),
			Secret:      "john-secret",
		},
	}
}

func seed(db *gorm.DB) error {
	benefits := benefitFixtures()
	for i := range benefits {
		if err := db.Create(&benefits[i]).Error; err != nil {
			return err
		}
	}
	zap.L().Info("seeded benefits", zap.Int("count", len(benefits)))

	employees := employeeFixtures()
	for i := range employees {
		if err := db.Create(&employees[i]).Error; err != nil {
			return err
		}
	}
	zap.L().Info("seeded employees", zap.Int("count", len(employees)))

	return nil
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
