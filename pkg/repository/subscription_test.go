package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubewatch/pkg/domain"
)

func TestSubscriptionOperations(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	src := &domain.Source{ID: "UUchannel000000000000000", ChannelID: "UCchannel000000000000000", Title: "Channel"}
	require.NoError(t, repos.Source.CreateSource(ctx, src))

	t.Run("upsert creates subscription", func(t *testing.T) {
		sub, err := repos.Subscription.UpsertSubscription(ctx, 100, src.ID)
		require.NoError(t, err)
		assert.NotZero(t, sub.ID)
		assert.Equal(t, int64(100), sub.ChatID)
		assert.Equal(t, src.ID, sub.SourceID)
		assert.True(t, sub.Active)
	})

	t.Run("upsert twice is a no-op", func(t *testing.T) {
		first, err := repos.Subscription.UpsertSubscription(ctx, 100, src.ID)
		require.NoError(t, err)

		second, err := repos.Subscription.UpsertSubscription(ctx, 100, src.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID, "same chat and source keep one row")
	})

	t.Run("deactivate and reactivate keeps identity", func(t *testing.T) {
		before, err := repos.Subscription.UpsertSubscription(ctx, 100, src.ID)
		require.NoError(t, err)

		deactivated, err := repos.Subscription.DeactivateSubscription(ctx, 100, src.ID)
		require.NoError(t, err)
		assert.True(t, deactivated)

		// second deactivate is a no-op
		deactivated, err = repos.Subscription.DeactivateSubscription(ctx, 100, src.ID)
		require.NoError(t, err)
		assert.False(t, deactivated)

		after, err := repos.Subscription.UpsertSubscription(ctx, 100, src.ID)
		require.NoError(t, err)
		assert.Equal(t, before.ID, after.ID, "resubscribe reuses the row, ledger history stays valid")
		assert.True(t, after.Active)
	})

	t.Run("deactivate unknown subscription", func(t *testing.T) {
		deactivated, err := repos.Subscription.DeactivateSubscription(ctx, 999, src.ID)
		require.NoError(t, err)
		assert.False(t, deactivated)
	})

	t.Run("get active subscriptions for source", func(t *testing.T) {
		_, err := repos.Subscription.UpsertSubscription(ctx, 200, src.ID)
		require.NoError(t, err)
		_, err = repos.Subscription.UpsertSubscription(ctx, 300, src.ID)
		require.NoError(t, err)

		_, err = repos.Subscription.DeactivateSubscription(ctx, 300, src.ID)
		require.NoError(t, err)

		subs, err := repos.Subscription.GetActiveSubscriptions(ctx, src.ID)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		for _, s := range subs {
			assert.True(t, s.Active)
			assert.NotEqual(t, int64(300), s.ChatID)
		}
	})

	t.Run("list by chat", func(t *testing.T) {
		other := &domain.Source{ID: "UUother00000000000000000", ChannelID: "UCother00000000000000000", Title: "Other"}
		require.NoError(t, repos.Source.CreateSource(ctx, other))
		_, err := repos.Subscription.UpsertSubscription(ctx, 100, other.ID)
		require.NoError(t, err)

		subs, err := repos.Subscription.ListByChat(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, subs, 2)

		subs, err = repos.Subscription.ListByChat(ctx, 300)
		require.NoError(t, err)
		assert.Empty(t, subs, "deactivated subscriptions are not listed")
	})

	t.Run("count active", func(t *testing.T) {
		count, err := repos.Subscription.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
