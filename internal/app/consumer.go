package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-payops/internal/config"
	"go-payops/internal/events"
	"go-payops/internal/holiday"
	"go-payops/internal/messaging/kafka"
	"go-payops/internal/messaging/kafka/consumer"
	"go-payops/internal/payroll"
	"go-payops/internal/schedule"
	"go-payops/internal/shared/connection"
	"go-payops/internal/staff"
	"go-payops/internal/timelog"
)

// RunConsumer renders payslips for newly created payroll records until
// interrupted.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	feed := holiday.NewFeedClient(cfg.Holiday.FeedBaseURL, cfg.Holiday.CountryCode, cfg.Holiday.FetchTimeout)
	cache := holiday.NewCache(holiday.NewMemoryStore(), nil, cfg.Holiday.CacheTTL)
	holidayService := holiday.NewService(feed, cache, logger)

	payrollRepo := payroll.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	timelogRepo := timelog.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	payrollService := payroll.NewService(gormDB, payrollRepo, staffRepo, timelogRepo, scheduleRepo, holidayService, outboxRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.PayrollRecordCreatedTopic,
		GroupID:        "go-payops-payslip",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollRecordCreated(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
