package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-payops/internal/events"
	"go-payops/internal/payroll"
)

// ConsumePayrollRecordCreated renders a payslip for every new payroll
// record. Rendering is idempotent: a record that already has a payslip is
// simply re-rendered, so at-least-once delivery is safe.
func ConsumePayrollRecordCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_record")
	log.Info("payroll record consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll record consumer stopped")
				return
			}
			log.Error("fetch payroll record message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRecordCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll record event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if _, err := payrollService.GeneratePayslip(ctx, event.RecordID); err != nil {
			log.Error("generate payslip failed",
				zap.String("record_id", event.RecordID),
				zap.String("staff_id", event.StaffID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll record message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated",
			zap.String("record_id", event.RecordID),
			zap.String("period", event.Period),
		)
	}
}
