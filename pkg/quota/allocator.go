package quota

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"tubewatch/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store persists quota state across restarts
type Store interface {
	GetState(ctx context.Context) (domain.QuotaState, error)
	SaveState(ctx context.Context, state domain.QuotaState) error
}

// Allocator owns the daily API budget. Reservation and consumption are the
// same step because the upstream API bills every call regardless of result.
// The counter resets lazily: the first reservation attempted after the
// configured daily boundary zeroes it before evaluating the request, which
// tracks the provider's own reset schedule instead of process wall-clock.
//
// The mutex guards an in-memory counter only; it is never held across
// network or storage calls.
type Allocator struct {
	store       Store
	dailyBudget int64
	resetHour   int
	resetMinute int
	loc         *time.Location

	mu      sync.Mutex
	used    int64
	resetAt time.Time // start of the current quota day

	now func() time.Time // injectable for tests
}

// Config holds quota allocator configuration
type Config struct {
	DailyBudget int64
	ResetHour   int
	ResetMinute int
	Location    *time.Location
}

// NewAllocator creates an allocator and loads persisted state. State saved
// before the most recent reset boundary is discarded.
func NewAllocator(ctx context.Context, store Store, cfg Config) (*Allocator, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	a := &Allocator{
		store:       store,
		dailyBudget: cfg.DailyBudget,
		resetHour:   cfg.ResetHour,
		resetMinute: cfg.ResetMinute,
		loc:         loc,
		now:         time.Now,
	}

	state, err := store.GetState(ctx)
	if err != nil {
		return nil, err
	}

	a.resetAt = a.boundaryBefore(a.now())
	if !state.ResetAt.Before(a.resetAt) {
		a.used = state.Used
		a.resetAt = state.ResetAt
	}
	return a, nil
}

// TryReserve asks for cost units of budget. Granted reservations are consumed
// immediately and persisted; denials change nothing.
func (a *Allocator) TryReserve(ctx context.Context, cost int64) bool {
	a.mu.Lock()

	if boundary := a.boundaryBefore(a.now()); a.resetAt.Before(boundary) {
		lgr.Printf("[INFO] quota reset, %d units used in previous period", a.used)
		a.used = 0
		a.resetAt = boundary
	}

	if a.used+cost > a.dailyBudget {
		a.mu.Unlock()
		return false
	}

	a.used += cost
	state := domain.QuotaState{Used: a.used, ResetAt: a.resetAt}
	a.mu.Unlock()

	// persistence is best effort; a lost write only means a restart
	// undercounts, and the provider enforces the real limit anyway
	if err := a.store.SaveState(ctx, state); err != nil {
		lgr.Printf("[WARN] failed to persist quota state: %v", err)
	}
	return true
}

// State returns a snapshot of the current quota usage
func (a *Allocator) State() domain.QuotaState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return domain.QuotaState{Used: a.used, ResetAt: a.resetAt}
}

// Budget returns the configured daily budget
func (a *Allocator) Budget() int64 {
	return a.dailyBudget
}

// NextReset returns when the current quota period ends
func (a *Allocator) NextReset() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.boundaryBefore(a.now()).AddDate(0, 0, 1)
}

// boundaryBefore returns the most recent daily reset boundary at or before t
func (a *Allocator) boundaryBefore(t time.Time) time.Time {
	t = t.In(a.loc)
	boundary := time.Date(t.Year(), t.Month(), t.Day(), a.resetHour, a.resetMinute, 0, 0, a.loc)
	if boundary.After(t) {
		boundary = boundary.AddDate(0, 0, -1)
	}
	return boundary
}
