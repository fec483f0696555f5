package cashfloat

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	cashfloaterrors "go-payops/internal/cashfloat/errors"
	"go-payops/internal/shared/civil"
)

// auditCap is the hard retention limit of the trail. Oldest entries are
// discarded after every append; there is no archive.
const auditCap = 100

var seedAmount = decimal.NewFromInt(1000)

//go:generate mockgen -source=cashfloat_service.go -destination=mock/cashfloat_service_mock.go -package=mock
type Service interface {
	// Initialize seeds the singleton drawer state if it does not exist yet.
	// It runs once at process start; handlers receive the service already
	// initialized.
	Initialize(ctx context.Context) error
	GetState(ctx context.Context) (StateResponse, error)
	SetFloat(ctx context.Context, req SetFloatRequest) (StateResponse, error)
	ApplyTransaction(ctx context.Context, req TransactionRequest) (StateResponse, error)
	ConfigureDailyReset(ctx context.Context, req ConfigureResetRequest) (StateResponse, error)
	PerformDailyReset(ctx context.Context) (StateResponse, error)
	// RunScheduledReset is the cron entry point: it resets at most once per
	// calendar day and is a no-op while the reset is disabled.
	RunScheduledReset(ctx context.Context) error
	GetAuditTrail(ctx context.Context, filter AuditFilter) ([]AuditEntryResponse, error)
}

type service struct {
	db   *gorm.DB
	repo Repository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Initialize(ctx context.Context) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err := qtx.GetStateForUpdate(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	state := &FloatState{
		ID:            stateRowID,
		CurrentAmount: seedAmount,
		ResetEnabled:  false,
		ResetAmount:   seedAmount,
	}
	if err := qtx.CreateState(ctx, state); err != nil {
		return err
	}

	if err := s.appendAudit(ctx, qtx, &AuditEntry{
		Action:         ActionInitialize,
		PreviousAmount: decimal.Zero,
		NewAmount:      seedAmount,
		Change:         seedAmount,
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (s *service) GetState(ctx context.Context) (StateResponse, error) {
	state, err := s.repo.GetState(ctx)
	if err != nil {
		return StateResponse{}, err
	}
	return mapStateToResponse(*state), nil
}

func (s *service) SetFloat(ctx context.Context, req SetFloatRequest) (StateResponse, error) {
	if req.Amount.IsNegative() {
		return StateResponse{}, cashfloaterrors.ErrNegativeAmount
	}

	return s.mutate(ctx, func(state *FloatState) (*AuditEntry, error) {
		previous := state.CurrentAmount
		state.CurrentAmount = req.Amount

		var reason *string
		if req.Reason != "" {
			reason = &req.Reason
		}
		return &AuditEntry{
			Action:         ActionSetFloat,
			PreviousAmount: previous,
			NewAmount:      state.CurrentAmount,
			Change:         state.CurrentAmount.Sub(previous),
			Reason:         reason,
			Metadata:       req.Metadata,
		}, nil
	})
}

func (s *service) ApplyTransaction(ctx context.Context, req TransactionRequest) (StateResponse, error) {
	if req.ChangeGiven.IsNegative() {
		return StateResponse{}, cashfloaterrors.ErrNegativeAmount
	}

	return s.mutate(ctx, func(state *FloatState) (*AuditEntry, error) {
		if req.ChangeGiven.GreaterThan(state.CurrentAmount) {
			shortfall := req.ChangeGiven.Sub(state.CurrentAmount)
			return nil, cashfloaterrors.ErrInsufficientFunds.WithDetails(map[string]any{
				"shortfall": shortfall.InexactFloat64(),
			})
		}

		previous := state.CurrentAmount
		next := state.CurrentAmount.Sub(req.ChangeGiven)
		if next.IsNegative() {
			next = decimal.Zero
		}
		state.CurrentAmount = next

		var reason *string
		if req.OrderRef != "" {
			reason = &req.OrderRef
		}
		return &AuditEntry{
			Action:         ActionTransaction,
			PreviousAmount: previous,
			NewAmount:      next,
			Change:         next.Sub(previous),
			Reason:         reason,
			Metadata:       req.Metadata,
		}, nil
	})
}

func (s *service) ConfigureDailyReset(ctx context.Context, req ConfigureResetRequest) (StateResponse, error) {
	if req.Enabled && req.Amount != nil && !req.Amount.IsPositive() {
		return StateResponse{}, cashfloaterrors.ErrInvalidResetAmount
	}

	return s.mutate(ctx, func(state *FloatState) (*AuditEntry, error) {
		state.ResetEnabled = req.Enabled
		// Enabling without a new amount keeps the previously configured one.
		if req.Enabled && req.Amount != nil {
			state.ResetAmount = *req.Amount
		}
		return nil, nil
	})
}

func (s *service) PerformDailyReset(ctx context.Context) (StateResponse, error) {
	return s.mutate(ctx, func(state *FloatState) (*AuditEntry, error) {
		if !state.ResetEnabled {
			return nil, cashfloaterrors.ErrResetDisabled
		}

		previous := state.CurrentAmount
		state.CurrentAmount = state.ResetAmount
		now := time.Now().UTC()
		state.LastResetDate = &now

		return &AuditEntry{
			Action:         ActionDailyReset,
			PreviousAmount: previous,
			NewAmount:      state.CurrentAmount,
			Change:         state.CurrentAmount.Sub(previous),
		}, nil
	})
}

func (s *service) RunScheduledReset(ctx context.Context) error {
	state, err := s.repo.GetState(ctx)
	if err != nil {
		return err
	}
	if !state.ResetEnabled {
		return nil
	}
	if state.LastResetDate != nil &&
		civil.DateOf(*state.LastResetDate).Equal(civil.Today(time.UTC)) {
		return nil
	}

	_, err = s.PerformDailyReset(ctx)
	return err
}

func (s *service) GetAuditTrail(ctx context.Context, filter AuditFilter) ([]AuditEntryResponse, error) {
	entries, err := s.repo.ListAudit(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapAuditToResponse(entries), nil
}

// mutate runs one guarded read-modify-write cycle: lock the state row,
// apply the change, persist, append the audit entry, trim to the cap.
func (s *service) mutate(
	ctx context.Context,
	apply func(state *FloatState) (*AuditEntry, error),
) (StateResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return StateResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	state, err := qtx.GetStateForUpdate(ctx)
	if err != nil {
		return StateResponse{}, err
	}

	entry, err := apply(state)
	if err != nil {
		return StateResponse{}, err
	}

	if err := qtx.SaveState(ctx, state); err != nil {
		return StateResponse{}, err
	}

	if entry != nil {
		if err := s.appendAudit(ctx, qtx, entry); err != nil {
			return StateResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return StateResponse{}, err
	}

	return mapStateToResponse(*state), nil
}

func (s *service) appendAudit(ctx context.Context, repo Repository, entry *AuditEntry) error {
	if err := repo.AppendAudit(ctx, entry); err != nil {
		return err
	}
	return repo.TrimAudit(ctx, auditCap)
}
