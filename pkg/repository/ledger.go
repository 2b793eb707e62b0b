package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LedgerRepository reads the dispatch ledger. Entries are only ever written
// inside SourceRepository.AdvanceCheckpoint so that ledger rows and checkpoint
// moves commit together.
type LedgerRepository struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(database *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: database}
}

// HasEntry reports whether the item was already dispatched to the subscription
func (r *LedgerRepository) HasEntry(ctx context.Context, itemID string, subscriptionID int64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM ledger WHERE item_id = ? AND subscription_id = ?", itemID, subscriptionID)
	if err != nil {
		return false, fmt.Errorf("check ledger entry: %w", err)
	}
	return count > 0, nil
}

// CountEntries returns the total number of ledger entries
func (r *LedgerRepository) CountEntries(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM ledger")
	if err != nil {
		return 0, fmt.Errorf("count ledger entries: %w", err)
	}
	return count, nil
}
