package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"tubewatch/pkg/bot/mocks"
	"tubewatch/pkg/domain"
	"tubewatch/pkg/subs"
)

// fakeContext stands in for the poller-provided telebot context, capturing
// outgoing replies. Only the methods the handlers touch are overridden.
type fakeContext struct {
	tele.Context
	payload string
	chatID  int64
	sent    []string
}

func (f *fakeContext) Message() *tele.Message { return &tele.Message{Payload: f.payload} }
func (f *fakeContext) Chat() *tele.Chat       { return &tele.Chat{ID: f.chatID} }
func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, fmt.Sprint(what))
	return nil
}

func testBot(service SubscriptionService, quota QuotaStatus) *Bot {
	return &Bot{service: service, quota: quota, sanitizer: bluemonday.StrictPolicy()}
}

func TestBot_HandleSubscribe(t *testing.T) {
	t.Run("subscribes and confirms with channel title", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{
			SubscribeFunc: func(ctx context.Context, chatID int64, channelURL string) (*domain.Source, error) {
				return &domain.Source{ID: "UUabc", ChannelID: "UCabc", Title: "Test Channel"}, nil
			},
		}
		b := testBot(service, nil)

		c := &fakeContext{payload: "https://www.youtube.com/@test", chatID: 100}
		require.NoError(t, b.handleSubscribe(c))

		require.Len(t, service.SubscribeCalls(), 1)
		assert.Equal(t, int64(100), service.SubscribeCalls()[0].ChatID)
		assert.Equal(t, "https://www.youtube.com/@test", service.SubscribeCalls()[0].ChannelURL)
		require.Len(t, c.sent, 1)
		assert.Contains(t, c.sent[0], "Test Channel")
	})

	t.Run("missing argument replies with usage", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{}
		b := testBot(service, nil)

		c := &fakeContext{payload: "  ", chatID: 100}
		require.NoError(t, b.handleSubscribe(c))

		assert.Empty(t, service.SubscribeCalls())
		require.Len(t, c.sent, 1)
		assert.Contains(t, c.sent[0], "usage:")
	})

	t.Run("unresolvable channel gets a friendly reply", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{
			SubscribeFunc: func(ctx context.Context, chatID int64, channelURL string) (*domain.Source, error) {
				return nil, fmt.Errorf("resolve: %w", subs.ErrNotResolvable)
			},
		}
		b := testBot(service, nil)

		c := &fakeContext{payload: "https://example.com/nope", chatID: 100}
		require.NoError(t, b.handleSubscribe(c))

		require.Len(t, c.sent, 1)
		assert.Contains(t, c.sent[0], "can't find a channel")
	})

	t.Run("internal failure doesn't leak details", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{
			SubscribeFunc: func(ctx context.Context, chatID int64, channelURL string) (*domain.Source, error) {
				return nil, errors.New("sqlite: database is locked")
			},
		}
		b := testBot(service, nil)

		c := &fakeContext{payload: "https://www.youtube.com/@test", chatID: 100}
		require.NoError(t, b.handleSubscribe(c))

		require.Len(t, c.sent, 1)
		assert.NotContains(t, c.sent[0], "sqlite")
	})
}

func TestBot_HandleUnsubscribe(t *testing.T) {
	t.Run("removes subscription", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{
			UnsubscribeFunc: func(ctx context.Context, chatID int64, channelURL string) (*domain.Source, bool, error) {
				return &domain.Source{ID: "UUabc", ChannelID: "UCabc", Title: "Test Channel"}, true, nil
			},
		}
		b := testBot(service, nil)

		c := &fakeContext{payload: "https://www.youtube.com/@test", chatID: 100}
		require.NoError(t, b.handleUnsubscribe(c))

		require.Len(t, c.sent, 1)
		assert.Contains(t, c.sent[0], "unsubscribed from")
	})

	t.Run("not subscribed", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{
			UnsubscribeFunc: func(ctx context.Context, chatID int64, channelURL string) (*domain.Source, bool, error) {
				return &domain.Source{ID: "UUabc"}, false, nil
			},
		}
		b := testBot(service, nil)

		c := &fakeContext{payload: "https://www.youtube.com/@test", chatID: 100}
		require.NoError(t, b.handleUnsubscribe(c))

		require.Len(t, c.sent, 1)
		assert.Contains(t, c.sent[0], "wasn't subscribed")
	})
}

func TestBot_HandleList(t *testing.T) {
	t.Run("lists subscribed channels", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{
			ListFunc: func(ctx context.Context, chatID int64) ([]*domain.Source, error) {
				return []*domain.Source{
					{ID: "UUone", ChannelID: "UCone", Title: "One"},
					{ID: "UUtwo", ChannelID: "UCtwo", Title: "Two"},
				}, nil
			},
		}
		b := testBot(service, nil)

		c := &fakeContext{chatID: 100}
		require.NoError(t, b.handleList(c))

		require.Len(t, c.sent, 1)
		assert.Contains(t, c.sent[0], "following 2 channels")
		assert.Contains(t, c.sent[0], "One")
		assert.Contains(t, c.sent[0], "UCtwo")
	})

	t.Run("empty list suggests subscribing", func(t *testing.T) {
		service := &mocks.SubscriptionServiceMock{
			ListFunc: func(ctx context.Context, chatID int64) ([]*domain.Source, error) { return nil, nil },
		}
		b := testBot(service, nil)

		c := &fakeContext{chatID: 100}
		require.NoError(t, b.handleList(c))

		require.Len(t, c.sent, 1)
		assert.Contains(t, c.sent[0], "/subscribe")
	})
}

func TestBot_HandleStatus(t *testing.T) {
	service := &mocks.SubscriptionServiceMock{
		StatsFunc: func(ctx context.Context) (int64, int64, error) { return 3, 7, nil },
	}
	quota := &mocks.QuotaStatusMock{
		StateFunc:     func() domain.QuotaState { return domain.QuotaState{Used: 1200} },
		BudgetFunc:    func() int64 { return 10000 },
		NextResetFunc: func() time.Time { return time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC) },
	}
	b := testBot(service, quota)

	c := &fakeContext{chatID: 100}
	require.NoError(t, b.handleStatus(c))

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "3 channels")
	assert.Contains(t, c.sent[0], "7 active subscriptions")
	assert.Contains(t, c.sent[0], "1200 of 10000")
}

func TestBot_HandleHelp(t *testing.T) {
	b := testBot(nil, nil)

	c := &fakeContext{chatID: 100}
	require.NoError(t, b.handleHelp(c))

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "/subscribe")
	assert.Contains(t, c.sent[0], "/status")
}

func TestBot_DisplayTitle(t *testing.T) {
	b := testBot(nil, nil)

	assert.Equal(t, "Plain", b.displayTitle(&domain.Source{ChannelID: "UCabc", Title: "Plain"}))
	assert.Equal(t, "Chan",
		b.displayTitle(&domain.Source{ChannelID: "UCabc", Title: `<script>alert("x")</script>Chan`}),
		"script elements are dropped with their content")
	assert.Equal(t, "UCabc", b.displayTitle(&domain.Source{ChannelID: "UCabc"}))
}

func TestBot_PermanentSendErr(t *testing.T) {
	assert.True(t, permanentSendErr(fmt.Errorf("send: %w", tele.ErrBlockedByUser)))
	assert.True(t, permanentSendErr(tele.ErrChatNotFound))
	assert.True(t, permanentSendErr(tele.ErrUserIsDeactivated))
	assert.False(t, permanentSendErr(errors.New("retry after 5")))
	assert.False(t, permanentSendErr(fmt.Errorf("send: %w", context.DeadlineExceeded)))
}

func TestBot_New_EmptyToken(t *testing.T) {
	_, err := New(Config{Token: "  "})
	assert.Error(t, err)
}
