package cashfloat_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-payops/internal/cashfloat"
)

func setupCashFloatRepoTest(t *testing.T) (cashfloat.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return cashfloat.NewRepository(gormDB), mock, func() { db.Close() }
}

func auditRows(action string, ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "action", "previous_amount", "new_amount", "change", "reason", "metadata", "created_at",
	})
	base := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	for _, id := range ids {
		rows.AddRow(id, action, "1000.00", "900.00", "-100.00",
			nil, nil, base.Add(time.Duration(id)*time.Minute))
	}
	return rows
}

func TestCashFloatRepository_TrimAudit_KeepsNewest(t *testing.T) {
	ctx := context.Background()
	repo, mock, closeDB := setupCashFloatRepoTest(t)
	defer closeDB()

	// The delete must spare the newest rows, selected by descending id.
	mock.ExpectExec(`DELETE FROM cash_float_audit WHERE id NOT IN \( SELECT id FROM cash_float_audit ORDER BY id DESC LIMIT \$1 \)`).
		WithArgs(100).
		WillReturnResult(sqlmock.NewResult(0, 50))

	err := repo.TrimAudit(ctx, 100)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCashFloatRepository_ListAudit_TailInAppendOrder(t *testing.T) {
	ctx := context.Background()
	repo, mock, closeDB := setupCashFloatRepoTest(t)
	defer closeDB()

	// The store answers newest-first; the repository restores append order.
	mock.ExpectQuery(`SELECT \* FROM "cash_float_audit" ORDER BY id DESC LIMIT`).
		WillReturnRows(auditRows(cashfloat.ActionTransaction, 5, 4))

	entries, err := repo.ListAudit(ctx, cashfloat.AuditFilter{Limit: 2})

	assert.NoError(t, err)
	if assert.Len(t, entries, 2) {
		assert.Equal(t, int64(4), entries[0].ID)
		assert.Equal(t, int64(5), entries[1].ID)
		assert.True(t, entries[0].CreatedAt.Before(entries[1].CreatedAt))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCashFloatRepository_ListAudit_ActionFilter(t *testing.T) {
	ctx := context.Background()
	repo, mock, closeDB := setupCashFloatRepoTest(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT \* FROM "cash_float_audit" WHERE action = \$1 ORDER BY id DESC`).
		WithArgs(cashfloat.ActionSetFloat).
		WillReturnRows(auditRows(cashfloat.ActionSetFloat, 9))

	action := cashfloat.ActionSetFloat
	entries, err := repo.ListAudit(ctx, cashfloat.AuditFilter{Action: &action})

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
