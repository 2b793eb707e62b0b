package domain

import (
	"errors"
	"time"
)

// ErrChatUnreachable marks a delivery failure no retry can fix: the chat is
// gone, the bot was blocked or kicked. The dispatcher skips such destinations
// without burning backoff time.
var ErrChatUnreachable = errors.New("chat unreachable")

// Subscription ties a chat to a source. Subscriptions are deactivated, never
// deleted, so a later resubscribe keeps the same identity and the ledger
// history stays intact.
type Subscription struct {
	ID        int64
	ChatID    int64
	SourceID  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LedgerEntry is the durable fact "item was dispatched to subscription".
// The (ItemID, SubscriptionID) pair is unique; its presence is the
// at-most-once delivery guarantee.
type LedgerEntry struct {
	ItemID         string
	SubscriptionID int64
	SentAt         time.Time
}

// QuotaState is the persisted daily quota counter.
type QuotaState struct {
	Used    int64
	ResetAt time.Time
}
