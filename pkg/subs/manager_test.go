package subs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubewatch/pkg/domain"
	"tubewatch/pkg/subs/mocks"
	"tubewatch/pkg/youtube"
)

func testResolver() *mocks.ChannelResolverMock {
	return &mocks.ChannelResolverMock{
		ResolveChannelFunc: func(ctx context.Context, url string) (*youtube.ChannelInfo, error) {
			return &youtube.ChannelInfo{
				ChannelID:       "UC0123456789abcdefghijAB",
				UploadsPlaylist: "UU0123456789abcdefghijAB",
				Title:           "Test Channel",
			}, nil
		},
	}
}

func TestManager_Subscribe(t *testing.T) {
	t.Run("resolves and stores source and subscription", func(t *testing.T) {
		sources := &mocks.SourceStoreMock{
			CreateSourceFunc: func(ctx context.Context, src *domain.Source) error { return nil },
		}
		subscriptions := &mocks.SubscriptionStoreMock{
			UpsertSubscriptionFunc: func(ctx context.Context, chatID int64, sourceID string) (*domain.Subscription, error) {
				return &domain.Subscription{ID: 1, ChatID: chatID, SourceID: sourceID, Active: true}, nil
			},
		}

		m := NewManager(sources, subscriptions, testResolver())
		src, err := m.Subscribe(context.Background(), 100, "https://www.youtube.com/@test")
		require.NoError(t, err)

		assert.Equal(t, "UU0123456789abcdefghijAB", src.ID)
		assert.Equal(t, "UC0123456789abcdefghijAB", src.ChannelID)
		assert.Equal(t, "Test Channel", src.Title)
		assert.Nil(t, src.Checkpoint, "new source starts unpolled")

		require.Len(t, sources.CreateSourceCalls(), 1)
		require.Len(t, subscriptions.UpsertSubscriptionCalls(), 1)
		assert.Equal(t, int64(100), subscriptions.UpsertSubscriptionCalls()[0].ChatID)
		assert.Equal(t, "UU0123456789abcdefghijAB", subscriptions.UpsertSubscriptionCalls()[0].SourceID)
	})

	t.Run("unresolvable url", func(t *testing.T) {
		resolver := &mocks.ChannelResolverMock{
			ResolveChannelFunc: func(ctx context.Context, url string) (*youtube.ChannelInfo, error) {
				return nil, youtube.ErrNotResolvable
			},
		}
		m := NewManager(&mocks.SourceStoreMock{}, &mocks.SubscriptionStoreMock{}, resolver)

		_, err := m.Subscribe(context.Background(), 100, "https://example.com/nope")
		assert.ErrorIs(t, err, ErrNotResolvable)
	})

	t.Run("resolver transport error is not ErrNotResolvable", func(t *testing.T) {
		resolver := &mocks.ChannelResolverMock{
			ResolveChannelFunc: func(ctx context.Context, url string) (*youtube.ChannelInfo, error) {
				return nil, errors.New("connection refused")
			},
		}
		m := NewManager(&mocks.SourceStoreMock{}, &mocks.SubscriptionStoreMock{}, resolver)

		_, err := m.Subscribe(context.Background(), 100, "https://www.youtube.com/@test")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotResolvable)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		sources := &mocks.SourceStoreMock{
			CreateSourceFunc: func(ctx context.Context, src *domain.Source) error { return errors.New("disk full") },
		}
		m := NewManager(sources, &mocks.SubscriptionStoreMock{}, testResolver())

		_, err := m.Subscribe(context.Background(), 100, "https://www.youtube.com/@test")
		assert.Error(t, err)
	})
}

func TestManager_Unsubscribe(t *testing.T) {
	t.Run("deactivates existing subscription", func(t *testing.T) {
		subscriptions := &mocks.SubscriptionStoreMock{
			DeactivateSubscriptionFunc: func(ctx context.Context, chatID int64, sourceID string) (bool, error) {
				return true, nil
			},
		}
		m := NewManager(&mocks.SourceStoreMock{}, subscriptions, testResolver())

		src, removed, err := m.Unsubscribe(context.Background(), 100, "https://www.youtube.com/@test")
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, "UU0123456789abcdefghijAB", src.ID)
	})

	t.Run("unsubscribe without subscription is harmless", func(t *testing.T) {
		subscriptions := &mocks.SubscriptionStoreMock{
			DeactivateSubscriptionFunc: func(ctx context.Context, chatID int64, sourceID string) (bool, error) {
				return false, nil
			},
		}
		m := NewManager(&mocks.SourceStoreMock{}, subscriptions, testResolver())

		_, removed, err := m.Unsubscribe(context.Background(), 100, "https://www.youtube.com/@test")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("unresolvable url", func(t *testing.T) {
		resolver := &mocks.ChannelResolverMock{
			ResolveChannelFunc: func(ctx context.Context, url string) (*youtube.ChannelInfo, error) {
				return nil, youtube.ErrNotResolvable
			},
		}
		m := NewManager(&mocks.SourceStoreMock{}, &mocks.SubscriptionStoreMock{}, resolver)

		_, _, err := m.Unsubscribe(context.Background(), 100, "gibberish")
		assert.ErrorIs(t, err, ErrNotResolvable)
	})
}

func TestManager_List(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		ListSourcesFunc: func(ctx context.Context) ([]*domain.Source, error) {
			return []*domain.Source{
				{ID: "UUone", Title: "One"},
				{ID: "UUtwo", Title: "Two"},
				{ID: "UUthree", Title: "Three"},
			}, nil
		},
	}
	subscriptions := &mocks.SubscriptionStoreMock{
		ListByChatFunc: func(ctx context.Context, chatID int64) ([]*domain.Subscription, error) {
			return []*domain.Subscription{
				{ID: 1, ChatID: chatID, SourceID: "UUone", Active: true},
				{ID: 2, ChatID: chatID, SourceID: "UUthree", Active: true},
			}, nil
		},
	}

	m := NewManager(sources, subscriptions, testResolver())
	listed, err := m.List(context.Background(), 100)
	require.NoError(t, err)

	require.Len(t, listed, 2)
	assert.Equal(t, "One", listed[0].Title)
	assert.Equal(t, "Three", listed[1].Title)
}

func TestManager_Stats(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		ListSourcesFunc: func(ctx context.Context) ([]*domain.Source, error) {
			return []*domain.Source{{ID: "UUone"}, {ID: "UUtwo"}}, nil
		},
	}
	subscriptions := &mocks.SubscriptionStoreMock{
		CountActiveFunc: func(ctx context.Context) (int64, error) { return 5, nil },
	}

	m := NewManager(sources, subscriptions, testResolver())
	srcCount, subCount, err := m.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), srcCount)
	assert.Equal(t, int64(5), subCount)
}
