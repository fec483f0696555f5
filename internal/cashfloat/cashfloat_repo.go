package cashfloat

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuditFilter narrows the audit listing. Date bounds are inclusive; Limit
// keeps the last N matches, not the first.
type AuditFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Action   *string
	Limit    int
}

//go:generate mockgen -source=cashfloat_repo.go -destination=mock/cashfloat_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetState(ctx context.Context) (*FloatState, error)
	// GetStateForUpdate loads the singleton row under a FOR UPDATE lock so
	// concurrent mutations serialize instead of overwriting each other.
	GetStateForUpdate(ctx context.Context) (*FloatState, error)
	CreateState(ctx context.Context, state *FloatState) error
	SaveState(ctx context.Context, state *FloatState) error
	AppendAudit(ctx context.Context, entry *AuditEntry) error
	TrimAudit(ctx context.Context, keep int) error
	ListAudit(ctx context.Context, filter AuditFilter) ([]AuditEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetState(ctx context.Context) (*FloatState, error) {
	var state FloatState
	err := r.db.WithContext(ctx).
		First(&state, "id = ?", stateRowID).Error
	return &state, err
}

func (r *repository) GetStateForUpdate(ctx context.Context) (*FloatState, error) {
	var state FloatState
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&state, "id = ?", stateRowID).Error
	return &state, err
}

func (r *repository) CreateState(ctx context.Context, state *FloatState) error {
	return r.db.WithContext(ctx).Create(state).Error
}

func (r *repository) SaveState(ctx context.Context, state *FloatState) error {
	return r.db.WithContext(ctx).Save(state).Error
}

func (r *repository) AppendAudit(ctx context.Context, entry *AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// TrimAudit discards the oldest entries until only keep remain. History
// past the cap is unrecoverable; there is no archive.
func (r *repository) TrimAudit(ctx context.Context, keep int) error {
	return r.db.WithContext(ctx).Exec(`
DELETE FROM cash_float_audit
WHERE id NOT IN (
	SELECT id FROM cash_float_audit ORDER BY id DESC LIMIT ?
)`, keep).Error
}

func (r *repository) ListAudit(ctx context.Context, filter AuditFilter) ([]AuditEntry, error) {
	db := r.db.WithContext(ctx).Model(&AuditEntry{})

	if filter.DateFrom != nil {
		db = db.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		db = db.Where("created_at <= ?", *filter.DateTo)
	}
	if filter.Action != nil && *filter.Action != "" {
		db = db.Where("action = ?", *filter.Action)
	}

	// Tail semantics: fetch the newest N matches, then restore append order.
	db = db.Order("id DESC")
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}

	var entries []AuditEntry
	if err := db.Find(&entries).Error; err != nil {
		return nil, err
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
