package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/cache"
	"github.com/aaravmahajanofficial/papela-rentals/internal/metrics"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
)

// Visitor is everything one browser session owns.
type Visitor struct {
	Cart    *CartStore
	Session *SessionStore

	restoreMu sync.Mutex
	restored  bool

	mu       sync.Mutex
	lastSeen time.Time
}

const restoreTimeout = 5 * time.Second

// ensureRestored loads the persisted identity once. A failed attempt is
// retried on the next request. The load is detached from the request's
// cancellation so a dropped client does not cost the visitor their sign-in.
func (v *Visitor) ensureRestored(ctx context.Context) error {

	v.restoreMu.Lock()
	defer v.restoreMu.Unlock()

	if v.restored {
		return nil
	}

	// signed in while an earlier attempt was failing
	if v.Session.IsAuthenticated() {
		v.restored = true
		return nil
	}

	restoreCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	defer cancel()

	if err := v.Session.Restore(restoreCtx); err != nil {
		return err
	}

	v.restored = true

	return nil
}

func (v *Visitor) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *Visitor) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	return now.Sub(v.lastSeen)
}

// VisitorRegistry maps session ids to visitors, creating them on first use.
type VisitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*Visitor

	credentials repository.CredentialVerifier
	orderRepo   repository.OrderRepository
	storage     cache.Cache
	opts        SessionOptions
	idleTTL     time.Duration
}

func NewVisitorRegistry(credentials repository.CredentialVerifier, orderRepo repository.OrderRepository, storage cache.Cache, opts SessionOptions, idleTTL time.Duration) *VisitorRegistry {

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &VisitorRegistry{
		visitors:    make(map[string]*Visitor),
		credentials: credentials,
		orderRepo:   orderRepo,
		storage:     storage,
		opts:        opts,
		idleTTL:     idleTTL,
	}
}

// Get returns the visitor for sessionID. A new visitor starts with an empty
// cart and whatever identity storage still holds for the session.
func (r *VisitorRegistry) Get(ctx context.Context, sessionID string) *Visitor {

	now := r.opts.Now()

	r.mu.Lock()
	visitor, ok := r.visitors[sessionID]
	if !ok {
		visitor = &Visitor{
			Cart:    NewCartStore(),
			Session: NewSessionStore(sessionID, r.credentials, r.orderRepo, r.storage, r.opts),
		}
		r.visitors[sessionID] = visitor
		metrics.ActiveVisitors.Inc()
	}
	r.mu.Unlock()

	visitor.touch(now)

	// concurrent first requests wait for the same restore
	if err := visitor.ensureRestored(ctx); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to restore session",
			slog.String("session_id", sessionID), slog.String("error", err.Error()))
	}

	return visitor
}

func (r *VisitorRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.visitors)
}

// Prune drops visitors idle for longer than the idle TTL. Their persisted
// identity stays in storage, so a returning visitor is signed in again.
func (r *VisitorRegistry) Prune() int {

	now := r.opts.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0

	for id, visitor := range r.visitors {
		if visitor.idleSince(now) > r.idleTTL {
			delete(r.visitors, id)
			pruned++
		}
	}

	metrics.ActiveVisitors.Sub(float64(pruned))

	return pruned
}

// Run prunes on every tick until ctx is cancelled.
func (r *VisitorRegistry) Run(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pruned := r.Prune(); pruned > 0 {
				slog.Info("Pruned idle visitors", slog.Int("count", pruned), slog.Int("active", r.Len()))
			}
		}
	}
}
