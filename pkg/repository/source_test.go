package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubewatch/pkg/domain"
)

func TestSourceOperations(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create and get source", func(t *testing.T) {
		src := &domain.Source{
			ID:        "UUabcdefghijklmnopqrstuv",
			ChannelID: "UCabcdefghijklmnopqrstuv",
			Title:     "Test Channel",
		}

		err := repos.Source.CreateSource(ctx, src)
		require.NoError(t, err)

		retrieved, err := repos.Source.GetSource(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, src.ID, retrieved.ID)
		assert.Equal(t, src.ChannelID, retrieved.ChannelID)
		assert.Equal(t, src.Title, retrieved.Title)
		assert.Nil(t, retrieved.Checkpoint, "new source starts with no checkpoint")
		assert.Empty(t, retrieved.PendingCursor)
		assert.False(t, retrieved.CreatedAt.IsZero())
	})

	t.Run("create existing source keeps checkpoint", func(t *testing.T) {
		src := &domain.Source{ID: "UUexisting00000000000000", ChannelID: "UCexisting00000000000000", Title: "Old Title"}
		require.NoError(t, repos.Source.CreateSource(ctx, src))

		cp := &domain.Checkpoint{Published: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), ItemID: "v10"}
		require.NoError(t, repos.Source.AdvanceCheckpoint(ctx, src.ID, cp, "", nil))

		// second subscribe re-creates the same source with a fresher title
		again := &domain.Source{ID: src.ID, ChannelID: src.ChannelID, Title: "New Title"}
		require.NoError(t, repos.Source.CreateSource(ctx, again))

		retrieved, err := repos.Source.GetSource(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", retrieved.Title)
		require.NotNil(t, retrieved.Checkpoint, "checkpoint must survive re-subscribe")
		assert.Equal(t, "v10", retrieved.Checkpoint.ItemID)
	})

	t.Run("get missing source", func(t *testing.T) {
		_, err := repos.Source.GetSource(ctx, "UUnope000000000000000000")
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("list sources", func(t *testing.T) {
		sources, err := repos.Source.ListSources(ctx)
		require.NoError(t, err)
		assert.Len(t, sources, 2)
	})
}

func TestSourceRepository_ListActiveSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	subscribed := &domain.Source{ID: "UUsub0000000000000000000", ChannelID: "UCsub0000000000000000000", Title: "Subscribed"}
	orphan := &domain.Source{ID: "UUorphan0000000000000000", ChannelID: "UCorphan0000000000000000", Title: "Orphan"}
	require.NoError(t, repos.Source.CreateSource(ctx, subscribed))
	require.NoError(t, repos.Source.CreateSource(ctx, orphan))

	_, err := repos.Subscription.UpsertSubscription(ctx, 100, subscribed.ID)
	require.NoError(t, err)

	active, err := repos.Source.ListActiveSources(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1, "source without subscribers is frozen")
	assert.Equal(t, subscribed.ID, active[0].ID)

	// unsubscribing freezes the source again
	deactivated, err := repos.Subscription.DeactivateSubscription(ctx, 100, subscribed.ID)
	require.NoError(t, err)
	require.True(t, deactivated)

	active, err = repos.Source.ListActiveSources(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSourceRepository_AdvanceCheckpoint(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	src := &domain.Source{ID: "UUadvance000000000000000", ChannelID: "UCadvance000000000000000", Title: "Advance"}
	require.NoError(t, repos.Source.CreateSource(ctx, src))

	sub, err := repos.Subscription.UpsertSubscription(ctx, 42, src.ID)
	require.NoError(t, err)

	t.Run("commits entries checkpoint and cursor together", func(t *testing.T) {
		cp := &domain.Checkpoint{Published: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), ItemID: "v13"}
		entries := []domain.LedgerEntry{
			{ItemID: "v11", SubscriptionID: sub.ID, SentAt: time.Now().UTC()},
			{ItemID: "v12", SubscriptionID: sub.ID, SentAt: time.Now().UTC()},
			{ItemID: "v13", SubscriptionID: sub.ID, SentAt: time.Now().UTC()},
		}

		err := repos.Source.AdvanceCheckpoint(ctx, src.ID, cp, "", entries)
		require.NoError(t, err)

		retrieved, err := repos.Source.GetSource(ctx, src.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved.Checkpoint)
		assert.Equal(t, "v13", retrieved.Checkpoint.ItemID)
		assert.True(t, retrieved.Checkpoint.Published.Equal(cp.Published))
		assert.Empty(t, retrieved.PendingCursor)

		count, err := repos.Ledger.CountEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		sent, err := repos.Ledger.HasEntry(ctx, "v12", sub.ID)
		require.NoError(t, err)
		assert.True(t, sent)
	})

	t.Run("nil checkpoint persists cursor only", func(t *testing.T) {
		err := repos.Source.AdvanceCheckpoint(ctx, src.ID, nil, "PAGE_TOKEN_2", nil)
		require.NoError(t, err)

		retrieved, err := repos.Source.GetSource(ctx, src.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved.Checkpoint)
		assert.Equal(t, "v13", retrieved.Checkpoint.ItemID, "checkpoint untouched")
		assert.Equal(t, "PAGE_TOKEN_2", retrieved.PendingCursor)
	})

	t.Run("duplicate ledger entries are ignored", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			{ItemID: "v13", SubscriptionID: sub.ID, SentAt: time.Now().UTC()},
		}
		err := repos.Source.AdvanceCheckpoint(ctx, src.ID, nil, "", entries)
		require.NoError(t, err)

		count, err := repos.Ledger.CountEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count, "re-dispatch of a recorded pair adds nothing")
	})

	t.Run("zero sent_at defaults to now", func(t *testing.T) {
		entries := []domain.LedgerEntry{{ItemID: "v14", SubscriptionID: sub.ID}}
		err := repos.Source.AdvanceCheckpoint(ctx, src.ID, nil, "", entries)
		require.NoError(t, err)

		sent, err := repos.Ledger.HasEntry(ctx, "v14", sub.ID)
		require.NoError(t, err)
		assert.True(t, sent)
	})
}
