package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"tubewatch/pkg/domain"
)

// SubscriptionRepository handles subscription database operations
type SubscriptionRepository struct {
	db *sqlx.DB
}

// subscriptionSQL represents a subscription for SQL operations
type subscriptionSQL struct {
	ID        int64     `db:"id"`
	ChatID    int64     `db:"chat_id"`
	SourceID  string    `db:"source_id"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(database *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: database}
}

// UpsertSubscription creates a subscription or reactivates a previously
// deactivated one. Returns the stored subscription either way; subscribing
// twice is a no-op.
func (r *SubscriptionRepository) UpsertSubscription(ctx context.Context, chatID int64, sourceID string) (*domain.Subscription, error) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO subscriptions (chat_id, source_id, active) VALUES (?, ?, 1)
			 ON CONFLICT(chat_id, source_id) DO UPDATE SET active = 1, updated_at = CURRENT_TIMESTAMP`,
			chatID, sourceID)
		if err != nil && isLockError(err) {
			return err // repeater will retry this
		}
		if err != nil {
			return &criticalError{err: err}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}

	var sqlSub subscriptionSQL
	err = r.db.GetContext(ctx, &sqlSub,
		"SELECT * FROM subscriptions WHERE chat_id = ? AND source_id = ?", chatID, sourceID)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return r.toDomainSubscription(&sqlSub), nil
}

// DeactivateSubscription flips the active flag off. Idempotent: deactivating
// a missing or already inactive subscription reports deactivated=false.
func (r *SubscriptionRepository) DeactivateSubscription(ctx context.Context, chatID int64, sourceID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE subscriptions SET active = 0, updated_at = CURRENT_TIMESTAMP
		 WHERE chat_id = ? AND source_id = ? AND active = 1`,
		chatID, sourceID)
	if err != nil {
		return false, fmt.Errorf("deactivate subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	return rows > 0, nil
}

// GetActiveSubscriptions retrieves active subscriptions for a source
func (r *SubscriptionRepository) GetActiveSubscriptions(ctx context.Context, sourceID string) ([]*domain.Subscription, error) {
	var sqlSubs []subscriptionSQL
	err := r.db.SelectContext(ctx, &sqlSubs,
		"SELECT * FROM subscriptions WHERE source_id = ? AND active = 1 ORDER BY id", sourceID)
	if err != nil {
		return nil, fmt.Errorf("get active subscriptions: %w", err)
	}

	subs := make([]*domain.Subscription, len(sqlSubs))
	for i, s := range sqlSubs {
		subs[i] = r.toDomainSubscription(&s)
	}
	return subs, nil
}

// ListByChat retrieves active subscriptions for a chat
func (r *SubscriptionRepository) ListByChat(ctx context.Context, chatID int64) ([]*domain.Subscription, error) {
	var sqlSubs []subscriptionSQL
	err := r.db.SelectContext(ctx, &sqlSubs,
		"SELECT * FROM subscriptions WHERE chat_id = ? AND active = 1 ORDER BY source_id", chatID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions by chat: %w", err)
	}

	subs := make([]*domain.Subscription, len(sqlSubs))
	for i, s := range sqlSubs {
		subs[i] = r.toDomainSubscription(&s)
	}
	return subs, nil
}

// CountActive returns the number of active subscriptions
func (r *SubscriptionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subscriptions WHERE active = 1")
	if err != nil {
		return 0, fmt.Errorf("count active subscriptions: %w", err)
	}
	return count, nil
}

// toDomainSubscription converts SQL subscription to domain representation
func (r *SubscriptionRepository) toDomainSubscription(s *subscriptionSQL) *domain.Subscription {
	return &domain.Subscription{
		ID:        s.ID,
		ChatID:    s.ChatID,
		SourceID:  s.SourceID,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
