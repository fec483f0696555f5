package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"go-payops/internal/cashfloat"
	"go-payops/internal/config"
	"go-payops/internal/holiday"
	"go-payops/internal/messaging/kafka"
	"go-payops/internal/middleware"
	"go-payops/internal/payroll"
	"go-payops/internal/schedule"
	"go-payops/internal/scheduler"
	"go-payops/internal/staff"
	"go-payops/internal/timelog"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Repositories ---
	scheduleRepo := schedule.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	timelogRepo := timelog.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	cashRepo := cashfloat.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Holiday resolution ---
	feed := holiday.NewFeedClient(cfg.Holiday.FeedBaseURL, cfg.Holiday.CountryCode, cfg.Holiday.FetchTimeout)
	cacheStore := holiday.NewRedisStore(rdb, cfg.Holiday.CacheTTL)
	cache := holiday.NewCache(cacheStore, nil, cfg.Holiday.CacheTTL)
	holidayService := holiday.NewService(feed, cache, zap.L())

	// --- Services ---
	scheduleService := schedule.NewService(gormDB, scheduleRepo)
	staffService := staff.NewService(staffRepo)
	timelogService := timelog.NewService(timelogRepo)
	payrollService := payroll.NewService(gormDB, payrollRepo, staffRepo, timelogRepo, scheduleRepo, holidayService, outboxRepo)
	cashService := cashfloat.NewService(gormDB, cashRepo)

	// The drawer state is seeded once, explicitly, before any request can
	// reach its handlers.
	if err := cashService.Initialize(context.Background()); err != nil {
		return err
	}

	resetJob := scheduler.New(cashService, cfg.CashFloat.ResetCronSpec, zap.L())
	if err := resetJob.Start(); err != nil {
		return err
	}

	// --- Handlers ---
	scheduleHandler := schedule.NewHandler(scheduleService)
	staffHandler := staff.NewHandler(staffService)
	timelogHandler := timelog.NewHandler(timelogService)
	payrollHandler := payroll.NewHandler(payrollService)
	cashHandler := cashfloat.NewHandler(cashService)
	holidayHandler := holiday.NewHandler(holidayService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		schedule.RegisterRoutes(api, scheduleHandler)
		staff.RegisterRoutes(api, staffHandler)
		timelog.RegisterRoutes(api, timelogHandler)
		payroll.RegisterRoutes(api, payrollHandler, middleware.Idempotency(rdb))
		cashfloat.RegisterRoutes(api, cashHandler)
		holiday.RegisterRoutes(api, holidayHandler)
	}

	return nil
}
