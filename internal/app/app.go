package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-payops/internal/cashfloat"
	"go-payops/internal/config"
	"go-payops/internal/payroll"
	"go-payops/internal/schedule"
	"go-payops/internal/shared/connection"
	"go-payops/internal/staff"
	"go-payops/internal/timelog"
)

// BuildApp wires infrastructure and registers all modules on the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	if err := autoMigrate(gormDB); err != nil {
		return err
	}

	return registerModules(router, gormDB, redisClient, cfg)
}

func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schedule.Schedule{},
		&staff.Staff{},
		&timelog.TimeLog{},
		&payroll.Record{},
		&payroll.HolidayWorked{},
		&cashfloat.FloatState{},
		&cashfloat.AuditEntry{},
	); err != nil {
		return err
	}

	// The outbox table is raw-SQL managed; its retry bookkeeping columns
	// have no entity.
	return db.Exec(`
CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id text,
	aggregate_type text NOT NULL,
	aggregate_id uuid NOT NULL,
	event_type text NOT NULL,
	topic text NOT NULL,
	payload jsonb NOT NULL,
	status text NOT NULL DEFAULT 'pending',
	retry_count int NOT NULL DEFAULT 0,
	error_message text,
	next_retry_at timestamptz,
	processed_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT NOW(),
	updated_at timestamptz NOT NULL DEFAULT NOW()
)`).Error
}
