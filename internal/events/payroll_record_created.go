package events

import "time"

const PayrollRecordCreatedTopic = "payops.payroll.record.created.v1"

// PayrollRecordCreatedEvent is published through the outbox whenever a
// payroll run persists a new record. The consumer reacts by rendering the
// staff member's payslip.
type PayrollRecordCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RecordID   string    `json:"record_id"`
	StaffID    string    `json:"staff_id"`
	Period     string    `json:"period"`
	OccurredAt time.Time `json:"occurred_at"`
}
