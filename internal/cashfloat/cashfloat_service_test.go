package cashfloat_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-payops/internal/cashfloat"
	cashfloaterrors "go-payops/internal/cashfloat/errors"
	"go-payops/internal/shared/apperror"
)

type fakeCashFloatRepository struct {
	withTxFn            func(tx *gorm.DB) cashfloat.Repository
	getStateFn          func(ctx context.Context) (*cashfloat.FloatState, error)
	getStateForUpdateFn func(ctx context.Context) (*cashfloat.FloatState, error)
	createStateFn       func(ctx context.Context, state *cashfloat.FloatState) error
	saveStateFn         func(ctx context.Context, state *cashfloat.FloatState) error
	appendAuditFn       func(ctx context.Context, entry *cashfloat.AuditEntry) error
	trimAuditFn         func(ctx context.Context, keep int) error
	listAuditFn         func(ctx context.Context, filter cashfloat.AuditFilter) ([]cashfloat.AuditEntry, error)
}

func (f *fakeCashFloatRepository) WithTx(tx *gorm.DB) cashfloat.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeCashFloatRepository) GetState(ctx context.Context) (*cashfloat.FloatState, error) {
	if f.getStateFn != nil {
		return f.getStateFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCashFloatRepository) GetStateForUpdate(ctx context.Context) (*cashfloat.FloatState, error) {
	if f.getStateForUpdateFn != nil {
		return f.getStateForUpdateFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCashFloatRepository) CreateState(ctx context.Context, state *cashfloat.FloatState) error {
	if f.createStateFn != nil {
		return f.createStateFn(ctx, state)
	}
	return nil
}

func (f *fakeCashFloatRepository) SaveState(ctx context.Context, state *cashfloat.FloatState) error {
	if f.saveStateFn != nil {
		return f.saveStateFn(ctx, state)
	}
	return nil
}

func (f *fakeCashFloatRepository) AppendAudit(ctx context.Context, entry *cashfloat.AuditEntry) error {
	if f.appendAuditFn != nil {
		return f.appendAuditFn(ctx, entry)
	}
	return nil
}

func (f *fakeCashFloatRepository) TrimAudit(ctx context.Context, keep int) error {
	if f.trimAuditFn != nil {
		return f.trimAuditFn(ctx, keep)
	}
	return nil
}

func (f *fakeCashFloatRepository) ListAudit(ctx context.Context, filter cashfloat.AuditFilter) ([]cashfloat.AuditEntry, error) {
	if f.listAuditFn != nil {
		return f.listAuditFn(ctx, filter)
	}
	return nil, nil
}

type cashFloatServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service cashfloat.Service
	repo    *fakeCashFloatRepository
}

func setupCashFloatServiceTest(t *testing.T) *cashFloatServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := &fakeCashFloatRepository{}
	svc := cashfloat.NewService(gormDB, repo)

	return &cashFloatServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func drawerState(amount int64) *cashfloat.FloatState {
	return &cashfloat.FloatState{
		ID:            1,
		CurrentAmount: decimal.NewFromInt(amount),
		ResetEnabled:  false,
		ResetAmount:   decimal.NewFromInt(1000),
	}
}

func TestCashFloatService_Initialize_SeedsMissingState(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var created *cashfloat.FloatState
	var audit *cashfloat.AuditEntry
	trimmedTo := 0
	deps.repo.createStateFn = func(ctx context.Context, state *cashfloat.FloatState) error {
		created = state
		return nil
	}
	deps.repo.appendAuditFn = func(ctx context.Context, entry *cashfloat.AuditEntry) error {
		audit = entry
		return nil
	}
	deps.repo.trimAuditFn = func(ctx context.Context, keep int) error {
		trimmedTo = keep
		return nil
	}

	err := deps.service.Initialize(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "1000", created.CurrentAmount.String())
	assert.False(t, created.ResetEnabled)
	assert.NotNil(t, audit)
	assert.Equal(t, cashfloat.ActionInitialize, audit.Action)
	assert.Equal(t, "1000", audit.Change.String())
	assert.Equal(t, 100, trimmedTo)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_Initialize_ExistingStateIsLeftAlone(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
		return drawerState(350), nil
	}
	deps.repo.createStateFn = func(ctx context.Context, state *cashfloat.FloatState) error {
		t.Fatal("must not re-seed an existing drawer")
		return nil
	}

	err := deps.service.Initialize(ctx)

	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_SetFloat(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
		return drawerState(1000), nil
	}
	var audit *cashfloat.AuditEntry
	deps.repo.appendAuditFn = func(ctx context.Context, entry *cashfloat.AuditEntry) error {
		audit = entry
		return nil
	}

	resp, err := deps.service.SetFloat(ctx, cashfloat.SetFloatRequest{
		Amount: decimal.NewFromInt(1500),
		Reason: "opening count",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, resp.CurrentAmount)
	assert.NotNil(t, audit)
	assert.Equal(t, cashfloat.ActionSetFloat, audit.Action)
	assert.Equal(t, "1000", audit.PreviousAmount.String())
	assert.Equal(t, "500", audit.Change.String())
	if assert.NotNil(t, audit.Reason) {
		assert.Equal(t, "opening count", *audit.Reason)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_SetFloat_RejectsNegative(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.SetFloat(ctx, cashfloat.SetFloatRequest{
		Amount: decimal.NewFromInt(-5),
	})

	assert.ErrorIs(t, err, cashfloaterrors.ErrNegativeAmount)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_ApplyTransaction(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
		return drawerState(1000), nil
	}
	var audit *cashfloat.AuditEntry
	deps.repo.appendAuditFn = func(ctx context.Context, entry *cashfloat.AuditEntry) error {
		audit = entry
		return nil
	}

	resp, err := deps.service.ApplyTransaction(ctx, cashfloat.TransactionRequest{
		ChangeGiven: decimal.NewFromInt(250),
		OrderRef:    "order-42",
		Metadata:    map[string]any{"register": "front"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 750.0, resp.CurrentAmount)
	assert.NotNil(t, audit)
	assert.Equal(t, cashfloat.ActionTransaction, audit.Action)
	assert.Equal(t, "-250", audit.Change.String())
	assert.Equal(t, "front", audit.Metadata["register"])
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_ApplyTransaction_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
		return drawerState(1000), nil
	}
	deps.repo.saveStateFn = func(ctx context.Context, state *cashfloat.FloatState) error {
		t.Fatal("balance must not change on a rejected transaction")
		return nil
	}

	_, err := deps.service.ApplyTransaction(ctx, cashfloat.TransactionRequest{
		ChangeGiven: decimal.NewFromInt(1200),
	})

	assert.ErrorIs(t, err, cashfloaterrors.ErrInsufficientFunds)
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		details, ok := appErr.Details.(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, 200.0, details["shortfall"])
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_ConfigureDailyReset_KeepsPreviousAmount(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	state := drawerState(800)
	state.ResetAmount = decimal.NewFromInt(2000)
	deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
		return state, nil
	}
	deps.repo.appendAuditFn = func(ctx context.Context, entry *cashfloat.AuditEntry) error {
		t.Fatal("configuring the reset must not write an audit entry")
		return nil
	}

	resp, err := deps.service.ConfigureDailyReset(ctx, cashfloat.ConfigureResetRequest{Enabled: true})

	assert.NoError(t, err)
	assert.True(t, resp.ResetEnabled)
	assert.Equal(t, 2000.0, resp.ResetAmount)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_ConfigureDailyReset_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	zero := decimal.Zero
	_, err := deps.service.ConfigureDailyReset(ctx, cashfloat.ConfigureResetRequest{
		Enabled: true,
		Amount:  &zero,
	})

	assert.ErrorIs(t, err, cashfloaterrors.ErrInvalidResetAmount)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCashFloatService_PerformDailyReset(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		deps := setupCashFloatServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
			return drawerState(300), nil
		}

		_, err := deps.service.PerformDailyReset(ctx)

		assert.ErrorIs(t, err, cashfloaterrors.ErrResetDisabled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("enabled", func(t *testing.T) {
		deps := setupCashFloatServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		state := drawerState(300)
		state.ResetEnabled = true
		state.ResetAmount = decimal.NewFromInt(1500)
		deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
			return state, nil
		}
		var audit *cashfloat.AuditEntry
		deps.repo.appendAuditFn = func(ctx context.Context, entry *cashfloat.AuditEntry) error {
			audit = entry
			return nil
		}

		resp, err := deps.service.PerformDailyReset(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1500.0, resp.CurrentAmount)
		assert.NotNil(t, resp.LastResetDate)
		assert.NotNil(t, audit)
		assert.Equal(t, cashfloat.ActionDailyReset, audit.Action)
		assert.Equal(t, "1200", audit.Change.String())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCashFloatService_RunScheduledReset(t *testing.T) {
	ctx := context.Background()

	t.Run("noop while disabled", func(t *testing.T) {
		deps := setupCashFloatServiceTest(t)
		defer deps.db.Close()

		deps.repo.getStateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
			return drawerState(500), nil
		}

		assert.NoError(t, deps.service.RunScheduledReset(ctx))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("noop when already reset today", func(t *testing.T) {
		deps := setupCashFloatServiceTest(t)
		defer deps.db.Close()

		now := time.Now().UTC()
		state := drawerState(500)
		state.ResetEnabled = true
		state.LastResetDate = &now
		deps.repo.getStateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
			return state, nil
		}

		assert.NoError(t, deps.service.RunScheduledReset(ctx))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("resets when stale", func(t *testing.T) {
		deps := setupCashFloatServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		state := drawerState(500)
		state.ResetEnabled = true
		state.ResetAmount = decimal.NewFromInt(1000)
		state.LastResetDate = &yesterday
		deps.repo.getStateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
			return state, nil
		}
		deps.repo.getStateForUpdateFn = func(ctx context.Context) (*cashfloat.FloatState, error) {
			return state, nil
		}

		assert.NoError(t, deps.service.RunScheduledReset(ctx))
		assert.Equal(t, "1000", state.CurrentAmount.String())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCashFloatService_GetAuditTrail_PassesFilterThrough(t *testing.T) {
	ctx := context.Background()
	deps := setupCashFloatServiceTest(t)
	defer deps.db.Close()

	reason := "shift change"
	deps.repo.listAuditFn = func(ctx context.Context, filter cashfloat.AuditFilter) ([]cashfloat.AuditEntry, error) {
		assert.Equal(t, 10, filter.Limit)
		if assert.NotNil(t, filter.Action) {
			assert.Equal(t, cashfloat.ActionSetFloat, *filter.Action)
		}
		return []cashfloat.AuditEntry{
			{
				ID:             7,
				Action:         cashfloat.ActionSetFloat,
				PreviousAmount: decimal.NewFromInt(1000),
				NewAmount:      decimal.NewFromInt(1500),
				Change:         decimal.NewFromInt(500),
				Reason:         &reason,
				CreatedAt:      time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC),
			},
		}, nil
	}

	action := cashfloat.ActionSetFloat
	entries, err := deps.service.GetAuditTrail(ctx, cashfloat.AuditFilter{Action: &action, Limit: 10})

	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, int64(7), entries[0].ID)
		assert.Equal(t, 500.0, entries[0].Change)
		assert.Equal(t, "2024-06-01T08:00:00Z", entries[0].Timestamp)
	}
}
