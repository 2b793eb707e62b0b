package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"

	"tubewatch/pkg/domain"
)

// Dispatcher delivers new items to the active subscribers of their source and
// produces the ledger entries recording each delivery. A destination that
// keeps rejecting messages is skipped after bounded retries, an unreachable
// one without retrying at all: the item's
// checkpoint still advances so one broken chat can't dam up the source for
// everyone else, and the absent ledger entry leaves the pair detectable for a
// later resend.
type Dispatcher struct {
	notifier  Notifier
	retries   int
	backoff   time.Duration
	sanitizer *bluemonday.Policy
}

// NewDispatcher creates a notification dispatcher
func NewDispatcher(notifier Notifier, retries int, backoff time.Duration) *Dispatcher {
	if retries <= 0 {
		retries = 3
	}
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	return &Dispatcher{
		notifier:  notifier,
		retries:   retries,
		backoff:   backoff,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Dispatch sends each item to each subscription, oldest item first, skipping
// pairs already in the ledger. Returns entries for the successful sends; the
// caller commits them atomically with the checkpoint advance. Cancellation
// stops the fan-out between sends, the entries accumulated so far are
// returned with the error so they still get recorded.
func (d *Dispatcher) Dispatch(ctx context.Context, src *domain.Source, items []domain.Item, subs []*domain.Subscription, ledger Ledger) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry

	for _, item := range items {
		text := d.formatMessage(src, item)

		for _, sub := range subs {
			if err := ctx.Err(); err != nil {
				return entries, fmt.Errorf("dispatch interrupted: %w", err)
			}

			sent, err := ledger.HasEntry(ctx, item.ID, sub.ID)
			if err != nil {
				return entries, fmt.Errorf("check ledger for item %s: %w", item.ID, err)
			}
			if sent {
				continue
			}

			if err := d.send(ctx, sub.ChatID, text); err != nil {
				lgr.Printf("[WARN] giving up on item %s for chat %d after %d attempts: %v",
					item.ID, sub.ChatID, d.retries, err)
				continue
			}

			entries = append(entries, domain.LedgerEntry{
				ItemID:         item.ID,
				SubscriptionID: sub.ID,
				SentAt:         time.Now().UTC(),
			})
		}
	}

	return entries, nil
}

// send delivers one message with bounded backoff on transient failures.
// Failures the notifier marks unreachable (blocked bot, deleted chat) stop
// the retry loop immediately, retrying those only burns backoff time.
func (d *Dispatcher) send(ctx context.Context, chatID int64, text string) error {
	retrier := repeater.NewBackoff(d.retries, d.backoff, repeater.WithMaxDelay(10*time.Second))
	return retrier.Do(ctx, func() error {
		// an attempt in flight during shutdown finishes, the cancellable
		// ctx still aborts the retry loop between attempts
		return d.notifier.SendMessage(context.WithoutCancel(ctx), chatID, text)
	}, domain.ErrChatUnreachable)
}

// formatMessage builds the announcement text. Titles pass through a strict
// sanitizer because the message is sent in HTML parse mode.
func (d *Dispatcher) formatMessage(src *domain.Source, item domain.Item) string {
	channel := d.sanitizer.Sanitize(src.Title)
	title := d.sanitizer.Sanitize(item.Title)

	var b strings.Builder
	if channel != "" {
		b.WriteString("<b>")
		b.WriteString(channel)
		b.WriteString("</b>\n")
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(item.URL())
	return b.String()
}
