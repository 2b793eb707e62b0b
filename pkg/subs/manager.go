package subs

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"tubewatch/pkg/domain"
	"tubewatch/pkg/youtube"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/subscription_store.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionStore
//go:generate moq -out mocks/channel_resolver.go -pkg mocks -skip-ensure -fmt goimports . ChannelResolver

// ErrNotResolvable is returned when a URL can't be mapped to a tracked source
var ErrNotResolvable = errors.New("source not resolvable")

// SourceStore is the store surface for sources
type SourceStore interface {
	CreateSource(ctx context.Context, src *domain.Source) error
	ListSources(ctx context.Context) ([]*domain.Source, error)
}

// SubscriptionStore is the store surface for subscriptions
type SubscriptionStore interface {
	UpsertSubscription(ctx context.Context, chatID int64, sourceID string) (*domain.Subscription, error)
	DeactivateSubscription(ctx context.Context, chatID int64, sourceID string) (bool, error)
	ListByChat(ctx context.Context, chatID int64) ([]*domain.Subscription, error)
	CountActive(ctx context.Context) (int64, error)
}

// ChannelResolver maps channel URLs to stable source identifiers
type ChannelResolver interface {
	ResolveChannel(ctx context.Context, url string) (*youtube.ChannelInfo, error)
}

// Manager is the mutation surface for subscriptions, driven by chat commands.
// It shares the persistent store with the poll scheduler and nothing else, so
// both sides can run concurrently.
type Manager struct {
	sources  SourceStore
	subs     SubscriptionStore
	resolver ChannelResolver
}

// NewManager creates a subscription manager
func NewManager(sources SourceStore, subscriptions SubscriptionStore, resolver ChannelResolver) *Manager {
	return &Manager{sources: sources, subs: subscriptions, resolver: resolver}
}

// Subscribe resolves the channel URL, upserts the source (with a null
// checkpoint when new, so no historical uploads get announced) and activates
// the chat's subscription. Subscribing twice is a no-op success.
func (m *Manager) Subscribe(ctx context.Context, chatID int64, channelURL string) (*domain.Source, error) {
	info, err := m.resolve(ctx, channelURL)
	if err != nil {
		return nil, err
	}

	src := &domain.Source{
		ID:        info.UploadsPlaylist,
		ChannelID: info.ChannelID,
		Title:     info.Title,
	}
	if err := m.sources.CreateSource(ctx, src); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	if _, err := m.subs.UpsertSubscription(ctx, chatID, src.ID); err != nil {
		return nil, fmt.Errorf("upsert subscription: %w", err)
	}

	lgr.Printf("[INFO] chat %d subscribed to %s (%s)", chatID, src.ID, src.Title)
	return src, nil
}

// Unsubscribe deactivates the chat's subscription to the channel. Returns
// false when there was nothing to deactivate; repeated calls are harmless.
func (m *Manager) Unsubscribe(ctx context.Context, chatID int64, channelURL string) (*domain.Source, bool, error) {
	info, err := m.resolve(ctx, channelURL)
	if err != nil {
		return nil, false, err
	}

	src := &domain.Source{
		ID:        info.UploadsPlaylist,
		ChannelID: info.ChannelID,
		Title:     info.Title,
	}
	deactivated, err := m.subs.DeactivateSubscription(ctx, chatID, src.ID)
	if err != nil {
		return nil, false, fmt.Errorf("deactivate subscription: %w", err)
	}

	if deactivated {
		lgr.Printf("[INFO] chat %d unsubscribed from %s (%s)", chatID, src.ID, src.Title)
	}
	return src, deactivated, nil
}

// List returns the sources the chat is actively subscribed to
func (m *Manager) List(ctx context.Context, chatID int64) ([]*domain.Source, error) {
	subscriptions, err := m.subs.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	byID := make(map[string]*domain.Source)
	sources, err := m.sources.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	for _, src := range sources {
		byID[src.ID] = src
	}

	result := make([]*domain.Source, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if src, ok := byID[sub.SourceID]; ok {
			result = append(result, src)
		}
	}
	return result, nil
}

// Stats reports how many sources are tracked and how many subscriptions are active
func (m *Manager) Stats(ctx context.Context) (sources, subscriptions int64, err error) {
	all, err := m.sources.ListSources(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list sources: %w", err)
	}
	count, err := m.subs.CountActive(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count subscriptions: %w", err)
	}
	return int64(len(all)), count, nil
}

// resolve maps a channel URL to channel info, normalizing resolution
// failures to ErrNotResolvable for the command layer
func (m *Manager) resolve(ctx context.Context, channelURL string) (*youtube.ChannelInfo, error) {
	info, err := m.resolver.ResolveChannel(ctx, channelURL)
	if err != nil {
		if errors.Is(err, youtube.ErrNotResolvable) {
			return nil, fmt.Errorf("%w: %s", ErrNotResolvable, channelURL)
		}
		return nil, fmt.Errorf("resolve channel: %w", err)
	}
	return info, nil
}
