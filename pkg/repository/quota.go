package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tubewatch/pkg/domain"
)

// QuotaRepository persists the daily quota counter so a restart doesn't
// forget budget already spent.
type QuotaRepository struct {
	db *sqlx.DB
}

// quotaSQL represents the quota state row for SQL operations
type quotaSQL struct {
	ID      int64      `db:"id"`
	Used    int64      `db:"used"`
	ResetAt *time.Time `db:"reset_at"`
}

// NewQuotaRepository creates a new quota repository
func NewQuotaRepository(database *sqlx.DB) *QuotaRepository {
	return &QuotaRepository{db: database}
}

// GetState loads the persisted quota state, zero state if none was saved yet
func (r *QuotaRepository) GetState(ctx context.Context) (domain.QuotaState, error) {
	var sqlState quotaSQL
	err := r.db.GetContext(ctx, &sqlState, "SELECT * FROM quota_state WHERE id = 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.QuotaState{}, nil
		}
		return domain.QuotaState{}, fmt.Errorf("get quota state: %w", err)
	}

	state := domain.QuotaState{Used: sqlState.Used}
	if sqlState.ResetAt != nil {
		state.ResetAt = *sqlState.ResetAt
	}
	return state, nil
}

// SaveState persists the quota state
func (r *QuotaRepository) SaveState(ctx context.Context, state domain.QuotaState) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quota_state (id, used, reset_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET used = excluded.used, reset_at = excluded.reset_at`,
		state.Used, state.ResetAt.UTC())
	if err != nil {
		return fmt.Errorf("save quota state: %w", err)
	}
	return nil
}
