package domain

import "time"

// Source represents a tracked external content channel, identified by its
// uploads playlist ID. The checkpoint marks the most recent item known to be
// fully processed; it only moves forward in publish order. PendingCursor holds
// an in-progress pagination token when a catch-up was interrupted mid-walk.
type Source struct {
	ID            string // uploads playlist ID (UU...)
	ChannelID     string // channel ID (UC...)
	Title         string
	Checkpoint    *Checkpoint // nil means never polled
	PendingCursor string      // empty means no catch-up in progress
	CreatedAt     time.Time
}

// Checkpoint is the ordering token for a source: publish timestamp with the
// item ID as tie-breaker for items sharing a timestamp.
type Checkpoint struct {
	Published time.Time
	ItemID    string
}

// Before reports whether c orders strictly before other under the source's
// natural publish order.
func (c Checkpoint) Before(other Checkpoint) bool {
	if !c.Published.Equal(other.Published) {
		return c.Published.Before(other.Published)
	}
	return c.ItemID < other.ItemID
}

// Covers reports whether an item with the given token is already accounted
// for by this checkpoint, i.e. the token is at or before the checkpoint.
func (c Checkpoint) Covers(other Checkpoint) bool {
	return !c.Before(other)
}
