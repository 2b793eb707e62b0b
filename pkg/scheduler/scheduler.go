package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"tubewatch/pkg/domain"
	"tubewatch/pkg/youtube"
)

//go:generate moq -out mocks/source_manager.go -pkg mocks -skip-ensure -fmt goimports . SourceManager
//go:generate moq -out mocks/subscription_manager.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionManager
//go:generate moq -out mocks/ledger.go -pkg mocks -skip-ensure -fmt goimports . Ledger
//go:generate moq -out mocks/quota_reserver.go -pkg mocks -skip-ensure -fmt goimports . QuotaReserver
//go:generate moq -out mocks/source_client.go -pkg mocks -skip-ensure -fmt goimports . SourceClient
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// SourceManager is the store surface for sources and checkpoints
type SourceManager interface {
	ListActiveSources(ctx context.Context) ([]*domain.Source, error)
	AdvanceCheckpoint(ctx context.Context, sourceID string, cp *domain.Checkpoint, cursor string, entries []domain.LedgerEntry) error
}

// SubscriptionManager is the store surface for subscriptions
type SubscriptionManager interface {
	GetActiveSubscriptions(ctx context.Context, sourceID string) ([]*domain.Subscription, error)
}

// Ledger is the read surface of the dispatch ledger
type Ledger interface {
	HasEntry(ctx context.Context, itemID string, subscriptionID int64) (bool, error)
}

// QuotaReserver grants or denies budget for billed API calls
type QuotaReserver interface {
	TryReserve(ctx context.Context, cost int64) bool
}

// SourceClient fetches upload pages from the external source
type SourceClient interface {
	ListUploadsPage(ctx context.Context, sourceID, cursor string) (*youtube.UploadsPage, error)
}

// Notifier sends a message to a chat
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Scheduler runs the periodic poll loop: each cycle it picks the sources with
// at least one active subscriber, reconciles them with the external source
// through the resolver and hands new items to the dispatcher. It talks to the
// command-handling path only through the persistent store.
type Scheduler struct {
	sources    SourceManager
	subs       SubscriptionManager
	ledger     Ledger
	quota      QuotaReserver
	resolver   *Resolver
	dispatcher *Dispatcher

	pollInterval time.Duration
	maxWorkers   int

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu        sync.Mutex
	lastCycle time.Time
}

// Config holds scheduler configuration
type Config struct {
	Sources       SourceManager
	Subscriptions SubscriptionManager
	Ledger        Ledger
	Quota         QuotaReserver
	Client        SourceClient
	Notifier      Notifier

	PollInterval    time.Duration
	MaxPagesPerPass int
	MaxWorkers      int
	SendRetries     int
	SendBackoff     time.Duration
}

// maxDrainRounds bounds how many times interrupted catch-ups are resumed
// within one cycle, so a source with a deep backlog cannot monopolize it
const maxDrainRounds = 10

// New creates a scheduler
func New(cfg Config) *Scheduler {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 10 * time.Minute
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 4
	}

	return &Scheduler{
		sources:      cfg.Sources,
		subs:         cfg.Subscriptions,
		ledger:       cfg.Ledger,
		quota:        cfg.Quota,
		resolver:     NewResolver(cfg.Client, cfg.Quota, cfg.MaxPagesPerPass),
		dispatcher:   NewDispatcher(cfg.Notifier, cfg.SendRetries, cfg.SendBackoff),
		pollInterval: cfg.PollInterval,
		maxWorkers:   cfg.MaxWorkers,
	}
}

// Start begins the poll loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.pollWorker(ctx)

	lgr.Printf("[INFO] scheduler started with poll interval %v", s.pollInterval)
}

// Stop gracefully stops the scheduler, waiting for the in-progress source's
// current call to finish so no billed call goes unrecorded
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// LastCycle returns when the last poll cycle completed
func (s *Scheduler) LastCycle() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCycle
}

// pollWorker runs poll cycles on the configured interval
func (s *Scheduler) pollWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// run immediately on start
	s.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

// runCycle polls every source with active subscribers once, then drains
// interrupted catch-ups until they complete or quota runs out
func (s *Scheduler) runCycle(ctx context.Context) {
	exhausted := s.pollRound(ctx, false)

	for round := 0; round < maxDrainRounds && !exhausted && ctx.Err() == nil; round++ {
		if !s.anyPending(ctx) {
			break
		}
		exhausted = s.pollRound(ctx, true)
	}

	if exhausted {
		lgr.Printf("[INFO] quota exhausted, cycle ended early")
	}

	s.mu.Lock()
	s.lastCycle = time.Now()
	s.mu.Unlock()
}

// pollRound processes eligible sources once. With onlyPending set, only
// sources carrying an in-progress pagination cursor are polled, so
// interrupted catch-ups drain without waiting for the next tick.
// Returns true if the quota ran out during the round.
func (s *Scheduler) pollRound(ctx context.Context, onlyPending bool) (exhausted bool) {
	sources, err := s.sources.ListActiveSources(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list active sources: %v", err)
		return false
	}

	if onlyPending {
		pending := sources[:0]
		for _, src := range sources {
			if src.PendingCursor != "" {
				pending = append(pending, src)
			}
		}
		sources = pending
	}

	if len(sources) == 0 {
		return false
	}
	if !onlyPending {
		lgr.Printf("[INFO] polling %d sources", len(sources))
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, src := range sources {
		g.Go(func() error {
			mu.Lock()
			stop := exhausted
			mu.Unlock()
			if stop || gctx.Err() != nil {
				return nil
			}

			if quotaOut := s.pollSource(gctx, src); quotaOut {
				mu.Lock()
				exhausted = true
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()
	return exhausted
}

// pollSource reconciles one source: resolve new items, dispatch them to the
// source's subscribers and commit ledger entries together with the new
// checkpoint. Storage errors leave the source untouched for the next cycle.
// Returns true when the quota ran out.
func (s *Scheduler) pollSource(ctx context.Context, src *domain.Source) (quotaOut bool) {
	cu, err := s.resolver.Resolve(ctx, src)
	if errors.Is(err, ErrQuotaExhausted) {
		quotaOut = true
	} else if err != nil {
		lgr.Printf("[WARN] failed to resolve source %s: %v", src.ID, err)
		return false
	}
	if cu == nil {
		return quotaOut
	}

	// everything below records the outcome of calls already billed, a
	// shutdown mid-source must not abandon it
	commitCtx := context.WithoutCancel(ctx)

	var entries []domain.LedgerEntry
	var dispatchErr error
	if len(cu.Items) > 0 {
		subs, err := s.subs.GetActiveSubscriptions(commitCtx, src.ID)
		if err != nil {
			lgr.Printf("[WARN] failed to get subscribers for source %s: %v", src.ID, err)
			return quotaOut
		}
		entries, dispatchErr = s.dispatcher.Dispatch(ctx, src, cu.Items, subs, s.ledger)
		if dispatchErr != nil {
			lgr.Printf("[WARN] dispatch interrupted for source %s: %v", src.ID, dispatchErr)
		}
	}

	cp, cursor := cu.Checkpoint, cu.Cursor
	if dispatchErr != nil {
		// record what was sent but keep checkpoint and cursor, the next
		// cycle re-runs the pass and the ledger skips delivered pairs
		cp, cursor = nil, src.PendingCursor
	}

	if cp == nil && cursor == src.PendingCursor && len(entries) == 0 {
		return quotaOut // nothing changed, e.g. quota denied before the first page
	}

	if err := s.sources.AdvanceCheckpoint(commitCtx, src.ID, cp, cursor, entries); err != nil {
		lgr.Printf("[ERROR] failed to advance checkpoint for source %s: %v", src.ID, err)
		return quotaOut
	}

	if len(cu.Items) > 0 {
		lgr.Printf("[INFO] source %s: %d new items, %d notifications", src.ID, len(cu.Items), len(entries))
	}
	return quotaOut
}

// anyPending reports whether any active source still carries a cursor
func (s *Scheduler) anyPending(ctx context.Context) bool {
	sources, err := s.sources.ListActiveSources(ctx)
	if err != nil {
		return false
	}
	for _, src := range sources {
		if src.PendingCursor != "" {
			return true
		}
	}
	return false
}
