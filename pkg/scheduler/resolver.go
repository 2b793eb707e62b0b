package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tubewatch/pkg/domain"
	"tubewatch/pkg/youtube"
)

// ErrQuotaExhausted signals that the daily API budget is spent. Not an error
// condition needing operator attention; polling resumes after the reset.
var ErrQuotaExhausted = errors.New("daily quota exhausted")

// CatchUp is the outcome of one catch-up pass over a source
type CatchUp struct {
	Items      []domain.Item      // new items, oldest first
	Checkpoint *domain.Checkpoint // new checkpoint, nil to keep the current one
	Cursor     string             // pagination cursor to persist, empty when the walk completed
	Done       bool               // false when stopped at the page cap or on quota denial
}

// Resolver reconciles a source's checkpoint with the external source. It
// walks the reverse-chronological upload pages newest to oldest, collecting
// items published after the checkpoint, and bounds the cost of a single pass
// by the per-cycle page cap and the quota allocator.
type Resolver struct {
	client   SourceClient
	quota    QuotaReserver
	maxPages int
}

// NewResolver creates a catch-up resolver
func NewResolver(client SourceClient, quota QuotaReserver, maxPages int) *Resolver {
	if maxPages <= 0 {
		maxPages = 3
	}
	return &Resolver{client: client, quota: quota, maxPages: maxPages}
}

// Resolve determines the items published since the source's checkpoint.
//
// A nil checkpoint means the source was never polled: one page is fetched,
// its newest item becomes the checkpoint and nothing is emitted, so a fresh
// subscription doesn't flood the chat with historical uploads.
//
// When the walk stops early (page cap or quota denial) the returned cursor
// lets the next pass resume where this one left off; the checkpoint is left
// alone so the gap below the collected items cannot be skipped. On quota
// denial the partial result is returned together with ErrQuotaExhausted.
//
// Cancellation pauses the walk the same way a page cap does, between pages:
// a billed call already in flight runs to completion so its quota unit is
// never wasted.
func (r *Resolver) Resolve(ctx context.Context, src *domain.Source) (*CatchUp, error) {
	if src.Checkpoint == nil {
		return r.bootstrap(ctx, src)
	}

	cp := *src.Checkpoint
	cursor := src.PendingCursor
	seen := make(map[string]bool)
	var collected []domain.Item

	for pages := 0; pages < r.maxPages; pages++ {
		if ctx.Err() != nil {
			return r.result(collected, nil, cursor, false), nil
		}
		if !r.quota.TryReserve(ctx, youtube.PageCost) {
			return r.result(collected, nil, cursor, false), ErrQuotaExhausted
		}

		// the call is billed the moment it is made, shield it from
		// cancellation so the reserved unit always buys a result
		page, err := r.client.ListUploadsPage(context.WithoutCancel(ctx), src.ID, cursor)
		if err != nil {
			return nil, fmt.Errorf("list uploads page: %w", err)
		}

		reached := false
		for _, item := range page.Items {
			if cp.Covers(item.Token()) {
				reached = true
				break
			}
			if !seen[item.ID] {
				seen[item.ID] = true
				collected = append(collected, item)
			}
		}

		if reached || page.NextCursor == "" {
			var next *domain.Checkpoint
			if len(collected) > 0 {
				newest := newestToken(collected)
				next = &newest
			}
			return r.result(collected, next, "", true), nil
		}
		cursor = page.NextCursor
	}

	// page cap hit, persist the cursor and finish the walk next pass
	return r.result(collected, nil, cursor, false), nil
}

// bootstrap handles the first-ever poll of a source: no historical backfill,
// just pin the checkpoint to the newest upload.
func (r *Resolver) bootstrap(ctx context.Context, src *domain.Source) (*CatchUp, error) {
	if ctx.Err() != nil {
		return &CatchUp{Done: false}, nil
	}
	if !r.quota.TryReserve(ctx, youtube.PageCost) {
		return &CatchUp{Done: false}, ErrQuotaExhausted
	}

	page, err := r.client.ListUploadsPage(context.WithoutCancel(ctx), src.ID, "")
	if err != nil {
		return nil, fmt.Errorf("list uploads page: %w", err)
	}

	cu := &CatchUp{Done: true}
	if len(page.Items) > 0 {
		newest := newestToken(page.Items)
		cu.Checkpoint = &newest
	}
	return cu, nil
}

// result orders collected items oldest first with the item ID breaking
// publish-time ties, so emission order is deterministic.
func (r *Resolver) result(items []domain.Item, cp *domain.Checkpoint, cursor string, done bool) *CatchUp {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Token().Before(items[j].Token())
	})
	return &CatchUp{Items: items, Checkpoint: cp, Cursor: cursor, Done: done}
}

// newestToken returns the highest ordering token among items
func newestToken(items []domain.Item) domain.Checkpoint {
	newest := items[0].Token()
	for _, item := range items[1:] {
		if newest.Before(item.Token()) {
			newest = item.Token()
		}
	}
	return newest
}
