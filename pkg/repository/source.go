package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"tubewatch/pkg/domain"
)

// ErrSourceNotFound is returned when a source does not exist
var ErrSourceNotFound = errors.New("source not found")

// SourceRepository handles source and checkpoint database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID                  string     `db:"id"`
	ChannelID           string     `db:"channel_id"`
	Title               string     `db:"title"`
	CheckpointPublished *time.Time `db:"checkpoint_published"`
	CheckpointItem      *string    `db:"checkpoint_item"`
	PendingCursor       string     `db:"pending_cursor"`
	CreatedAt           time.Time  `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// CreateSource inserts a new source with a null checkpoint. Inserting an
// existing source is a no-op so that concurrent subscribes don't race.
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	query := `
		INSERT INTO sources (id, channel_id, title)
		VALUES (:id, :channel_id, :title)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title
	`
	if _, err := r.db.NamedExecContext(ctx, query, r.toSQLSource(src)); err != nil {
		return fmt.Errorf("create source: %w", err)
	}
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id string) (*domain.Source, error) {
	var sqlSrc sourceSQL
	err := r.db.GetContext(ctx, &sqlSrc, "SELECT * FROM sources WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSourceNotFound
		}
		return nil, fmt.Errorf("get source: %w", err)
	}
	return r.toDomainSource(&sqlSrc), nil
}

// ListSources retrieves all sources
func (r *SourceRepository) ListSources(ctx context.Context) ([]*domain.Source, error) {
	var sqlSources []sourceSQL
	err := r.db.SelectContext(ctx, &sqlSources, "SELECT * FROM sources ORDER BY title, id")
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	sources := make([]*domain.Source, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = r.toDomainSource(&s)
	}
	return sources, nil
}

// ListActiveSources retrieves sources with at least one active subscription.
// Sources without subscribers are skipped by the poller and their checkpoints
// stay frozen until someone resubscribes.
func (r *SourceRepository) ListActiveSources(ctx context.Context) ([]*domain.Source, error) {
	query := `
		SELECT s.* FROM sources s
		WHERE EXISTS (
			SELECT 1 FROM subscriptions sub
			WHERE sub.source_id = s.id AND sub.active = 1
		)
		ORDER BY s.id
	`
	var sqlSources []sourceSQL
	err := r.db.SelectContext(ctx, &sqlSources, query)
	if err != nil {
		return nil, fmt.Errorf("list active sources: %w", err)
	}

	sources := make([]*domain.Source, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = r.toDomainSource(&s)
	}
	return sources, nil
}

// AdvanceCheckpoint commits the outcome of one catch-up pass in a single
// transaction: ledger entries for everything dispatched, the new checkpoint
// (nil keeps the current one) and the pending pagination cursor. A crash can
// therefore never separate a ledger write from its checkpoint move.
// Retries on SQLite lock errors.
func (r *SourceRepository) AdvanceCheckpoint(ctx context.Context, sourceID string, cp *domain.Checkpoint, cursor string, entries []domain.LedgerEntry) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("begin transaction: %w", err)}
		}
		defer func() { _ = tx.Rollback() }()

		for _, e := range entries {
			sentAt := e.SentAt
			if sentAt.IsZero() {
				sentAt = time.Now().UTC()
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO ledger (item_id, subscription_id, sent_at) VALUES (?, ?, ?)
				 ON CONFLICT(item_id, subscription_id) DO NOTHING`,
				e.ItemID, e.SubscriptionID, sentAt)
			if err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("insert ledger entry: %w", err)}
			}
		}

		if cp != nil {
			_, err = tx.ExecContext(ctx,
				`UPDATE sources SET checkpoint_published = ?, checkpoint_item = ?, pending_cursor = ? WHERE id = ?`,
				cp.Published.UTC(), cp.ItemID, cursor, sourceID)
		} else {
			_, err = tx.ExecContext(ctx,
				`UPDATE sources SET pending_cursor = ? WHERE id = ?`, cursor, sourceID)
		}
		if err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("update checkpoint: %w", err)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit transaction: %w", err)}
		}
		return nil
	})

	if err != nil {
		var ce *criticalError
		if errors.As(err, &ce) {
			return ce.err
		}
		return fmt.Errorf("advance checkpoint for %s: %w", sourceID, err)
	}
	return nil
}

// toSQLSource converts domain source to SQL representation
func (r *SourceRepository) toSQLSource(src *domain.Source) *sourceSQL {
	sqlSrc := &sourceSQL{
		ID:            src.ID,
		ChannelID:     src.ChannelID,
		Title:         src.Title,
		PendingCursor: src.PendingCursor,
	}
	if src.Checkpoint != nil {
		published := src.Checkpoint.Published.UTC()
		itemID := src.Checkpoint.ItemID
		sqlSrc.CheckpointPublished = &published
		sqlSrc.CheckpointItem = &itemID
	}
	return sqlSrc
}

// toDomainSource converts SQL source to domain representation
func (r *SourceRepository) toDomainSource(sqlSrc *sourceSQL) *domain.Source {
	src := &domain.Source{
		ID:            sqlSrc.ID,
		ChannelID:     sqlSrc.ChannelID,
		Title:         sqlSrc.Title,
		PendingCursor: sqlSrc.PendingCursor,
		CreatedAt:     sqlSrc.CreatedAt,
	}
	if sqlSrc.CheckpointPublished != nil && sqlSrc.CheckpointItem != nil {
		src.Checkpoint = &domain.Checkpoint{
			Published: *sqlSrc.CheckpointPublished,
			ItemID:    *sqlSrc.CheckpointItem,
		}
	}
	return src
}
