package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	tele "gopkg.in/telebot.v4"

	"tubewatch/pkg/domain"
	"tubewatch/pkg/subs"
)

//go:generate moq -out mocks/subscription_service.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionService
//go:generate moq -out mocks/quota_status.go -pkg mocks -skip-ensure -fmt goimports . QuotaStatus

// SubscriptionService is the command surface for managing subscriptions
type SubscriptionService interface {
	Subscribe(ctx context.Context, chatID int64, channelURL string) (*domain.Source, error)
	Unsubscribe(ctx context.Context, chatID int64, channelURL string) (*domain.Source, bool, error)
	List(ctx context.Context, chatID int64) ([]*domain.Source, error)
	Stats(ctx context.Context) (sources, subscriptions int64, err error)
}

// QuotaStatus exposes the current quota window for the status command
type QuotaStatus interface {
	State() domain.QuotaState
	Budget() int64
	NextReset() time.Time
}

// Bot is the Telegram front-end: it handles subscription commands and doubles
// as the notifier the dispatcher sends announcements through. All outgoing
// messages use HTML parse mode, callers are responsible for sanitizing.
type Bot struct {
	bot       *tele.Bot
	service   SubscriptionService
	quota     QuotaStatus
	sanitizer *bluemonday.Policy

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Config holds bot configuration
type Config struct {
	Token       string
	PollTimeout time.Duration
	Service     SubscriptionService
	Quota       QuotaStatus
}

// New creates a bot connected to the Telegram API
func New(cfg Config) (*Bot, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("telegram token is empty")
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 10 * time.Second
	}

	b, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	res := &Bot{
		bot:       b,
		service:   cfg.Service,
		quota:     cfg.Quota,
		sanitizer: bluemonday.StrictPolicy(),
	}
	res.registerHandlers()
	return res, nil
}

// Start begins long-polling for commands. Blocks until Stop is called or the
// context is cancelled.
func (b *Bot) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		<-ctx.Done()
		b.bot.Stop()
	}()

	lgr.Printf("[INFO] telegram bot started as @%s", b.bot.Me.Username)
	b.bot.Start()
}

// Stop shuts down the long poller
func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	lgr.Printf("[INFO] telegram bot stopped")
}

// SendMessage delivers one announcement to a chat. Implements the notifier
// used by the dispatcher.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := b.bot.Send(&tele.Chat{ID: chatID}, text,
		&tele.SendOptions{ParseMode: tele.ModeHTML, DisableWebPagePreview: false})
	if err != nil {
		if permanentSendErr(err) {
			return fmt.Errorf("send to chat %d: %w: %w", chatID, domain.ErrChatUnreachable, err)
		}
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return nil
}

// permanentSendErr reports telegram failures retrying cannot fix
func permanentSendErr(err error) bool {
	for _, perm := range []error{tele.ErrBlockedByUser, tele.ErrChatNotFound,
		tele.ErrUserIsDeactivated, tele.ErrKickedFromGroup} {
		if errors.Is(err, perm) {
			return true
		}
	}
	return false
}

func (b *Bot) registerHandlers() {
	b.bot.Handle("/start", b.handleHelp)
	b.bot.Handle("/help", b.handleHelp)
	b.bot.Handle("/subscribe", b.handleSubscribe)
	b.bot.Handle("/unsubscribe", b.handleUnsubscribe)
	b.bot.Handle("/list", b.handleList)
	b.bot.Handle("/status", b.handleStatus)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(strings.Join([]string{
		"I announce new YouTube uploads in this chat.",
		"",
		"/subscribe <channel url> - follow a channel",
		"/unsubscribe <channel url> - stop following",
		"/list - channels followed in this chat",
		"/status - quota and tracking stats",
	}, "\n"))
}

func (b *Bot) handleSubscribe(c tele.Context) error {
	ctx, cancel := handlerCtx()
	defer cancel()

	arg := strings.TrimSpace(c.Message().Payload)
	if arg == "" {
		return c.Send("usage: /subscribe <channel url>")
	}

	src, err := b.service.Subscribe(ctx, c.Chat().ID, arg)
	if errors.Is(err, subs.ErrNotResolvable) {
		return c.Send("can't find a channel at that address, try the full channel URL")
	}
	if err != nil {
		lgr.Printf("[WARN] subscribe failed for chat %d: %v", c.Chat().ID, err)
		return c.Send("something went wrong, try again later")
	}

	return c.Send(fmt.Sprintf("subscribed to <b>%s</b>, new uploads will show up here",
		b.displayTitle(src)), tele.ModeHTML)
}

func (b *Bot) handleUnsubscribe(c tele.Context) error {
	ctx, cancel := handlerCtx()
	defer cancel()

	arg := strings.TrimSpace(c.Message().Payload)
	if arg == "" {
		return c.Send("usage: /unsubscribe <channel url>")
	}

	src, removed, err := b.service.Unsubscribe(ctx, c.Chat().ID, arg)
	if errors.Is(err, subs.ErrNotResolvable) {
		return c.Send("can't find a channel at that address, try the full channel URL")
	}
	if err != nil {
		lgr.Printf("[WARN] unsubscribe failed for chat %d: %v", c.Chat().ID, err)
		return c.Send("something went wrong, try again later")
	}
	if !removed {
		return c.Send("this chat wasn't subscribed to that channel")
	}

	return c.Send(fmt.Sprintf("unsubscribed from <b>%s</b>", b.displayTitle(src)), tele.ModeHTML)
}

func (b *Bot) handleList(c tele.Context) error {
	ctx, cancel := handlerCtx()
	defer cancel()

	sources, err := b.service.List(ctx, c.Chat().ID)
	if err != nil {
		lgr.Printf("[WARN] list failed for chat %d: %v", c.Chat().ID, err)
		return c.Send("something went wrong, try again later")
	}
	if len(sources) == 0 {
		return c.Send("no subscriptions in this chat yet, add one with /subscribe")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("following %d channels:\n", len(sources)))
	for _, src := range sources {
		sb.WriteString(fmt.Sprintf("• <b>%s</b> (https://www.youtube.com/channel/%s)\n",
			b.displayTitle(src), src.ChannelID))
	}
	return c.Send(sb.String(), tele.ModeHTML, tele.NoPreview)
}

func (b *Bot) handleStatus(c tele.Context) error {
	ctx, cancel := handlerCtx()
	defer cancel()

	sources, subscriptions, err := b.service.Stats(ctx)
	if err != nil {
		lgr.Printf("[WARN] status failed for chat %d: %v", c.Chat().ID, err)
		return c.Send("something went wrong, try again later")
	}

	state := b.quota.State()
	return c.Send(fmt.Sprintf("tracking %d channels, %d active subscriptions\nquota used: %d of %d, resets %s",
		sources, subscriptions, state.Used, b.quota.Budget(),
		b.quota.NextReset().Format("15:04 MST")))
}

// displayTitle returns a sanitized channel title, falling back to the source
// id when the title was never fetched
func (b *Bot) displayTitle(src *domain.Source) string {
	if title := b.sanitizer.Sanitize(src.Title); title != "" {
		return title
	}
	return src.ChannelID
}

// handlerCtx bounds command handling so a stuck resolution can't hold the
// poller's handler goroutine forever
func handlerCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
