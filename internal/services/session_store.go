package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/cache"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/google/uuid"
)

type SessionOptions struct {
	StoragePrefix string
	AuthLatency   time.Duration
	Now           func() time.Time
}

// SessionStore is one visitor's sign-in state and order history. It is
// either Anonymous (no identity) or Authenticated.
//
// Actions that need an identity are silent no-ops while Anonymous, so
// callers check IsAuthenticated first when they need to report it.
type SessionStore struct {
	mu        sync.RWMutex
	sessionID string
	identity  *models.Identity
	orders    []models.Order

	credentials repository.CredentialVerifier
	orderRepo   repository.OrderRepository
	storage     cache.Cache

	storagePrefix string
	latency       time.Duration
	now           func() time.Time
}

func NewSessionStore(sessionID string, credentials repository.CredentialVerifier, orderRepo repository.OrderRepository, storage cache.Cache, opts SessionOptions) *SessionStore {

	if opts.StoragePrefix == "" {
		opts.StoragePrefix = cache.IdentityKeyPrefix
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &SessionStore{
		sessionID:     sessionID,
		orders:        make([]models.Order, 0),
		credentials:   credentials,
		orderRepo:     orderRepo,
		storage:       storage,
		storagePrefix: opts.StoragePrefix,
		latency:       opts.AuthLatency,
		now:           opts.Now,
	}
}

func (s *SessionStore) SessionID() string {
	return s.sessionID
}

func (s *SessionStore) storageKey() string {
	return cache.Key(s.storagePrefix, s.sessionID)
}

// Login returns a copy of the identity it signed in, or nil when the
// credentials did not match. The error is reserved for infrastructure
// failures; a mismatch leaves the state untouched.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*models.Identity, error) {

	logger := middleware.LoggerFromContext(ctx)

	if err := utils.Wait(ctx, s.latency); err != nil {
		return nil, err
	}

	identity, ok, err := s.credentials.Verify(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}

	if !ok {
		logger.Info("Credentials rejected", slog.String("session_id", s.sessionID))
		return nil, nil
	}

	orders, err := s.orderRepo.ListOrdersByOwner(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	if err := s.storage.Set(ctx, s.storageKey(), identity, 0); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}

	s.mu.Lock()
	s.identity = identity
	s.orders = orders
	s.mu.Unlock()

	logger.Info("Visitor signed in", slog.String("session_id", s.sessionID), slog.String("user_id", identity.ID))

	signedIn := *identity

	return &signedIn, nil
}

// Register mints a fresh identity unless the email belongs to a known
// account, in which case it returns nil. It replaces any identity already
// signed in.
func (s *SessionStore) Register(ctx context.Context, name, email, password string) (*models.Identity, error) {

	logger := middleware.LoggerFromContext(ctx)

	if err := utils.Wait(ctx, s.latency); err != nil {
		return nil, err
	}

	exists, err := s.credentials.Exists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if exists {
		logger.Info("Registration rejected, email in use", slog.String("session_id", s.sessionID))
		return nil, nil
	}

	now := s.now()

	identity := &models.Identity{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Email:     email,
		Name:      name,
		CreatedAt: now.UTC(),
		Preferences: models.Preferences{
			Newsletter:    true,
			Notifications: true,
		},
	}

	if err := s.storage.Set(ctx, s.storageKey(), identity, 0); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}

	s.mu.Lock()
	s.identity = identity
	s.orders = make([]models.Order, 0)
	s.mu.Unlock()

	logger.Info("Visitor registered", slog.String("session_id", s.sessionID), slog.String("user_id", identity.ID))

	registered := *identity

	return &registered, nil
}

func (s *SessionStore) Logout(ctx context.Context) error {

	s.mu.Lock()
	s.identity = nil
	s.orders = make([]models.Order, 0)
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, s.storageKey()); err != nil {
		return fmt.Errorf("failed to remove identity: %w", err)
	}

	return nil
}

// UpdateProfile merges the non-nil fields of patch. ID and CreatedAt never change.
func (s *SessionStore) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}

	updated := *s.identity

	if patch.Name != nil {
		updated.Name = *patch.Name
	}

	if patch.Email != nil {
		updated.Email = *patch.Email
	}

	if patch.AvatarRef != nil {
		updated.AvatarRef = *patch.AvatarRef
	}

	if patch.Preferences != nil {
		updated.Preferences = *patch.Preferences
	}

	if err := s.storage.Set(ctx, s.storageKey(), &updated, 0); err != nil {
		return fmt.Errorf("failed to persist identity: %w", err)
	}

	s.identity = &updated

	return nil
}

// AddOrder assigns id, owner and order date, saves the order and puts it at
// the front of the history. It returns nil, nil while Anonymous.
func (s *SessionStore) AddOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil, nil
	}

	now := s.now()

	order := models.Order{
		ID:                  newOrderID(now),
		OwnerID:             s.identity.ID,
		Items:               append([]models.OrderLine(nil), draft.Items...),
		Total:               draft.Total,
		Status:              draft.Status,
		EventDate:           draft.EventDate,
		DeliveryAddress:     draft.DeliveryAddress,
		OrderDate:           now.UTC(),
		SpecialInstructions: draft.SpecialInstructions,
	}

	if err := s.orderRepo.CreateOrder(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.orders = append([]models.Order{order}, s.orders...)

	created := order

	return &created, nil
}

// newOrderID keeps the millisecond timestamp for ordering and adds a random
// suffix so orders placed in the same millisecond stay distinct.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("order-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

func (s *SessionStore) GetOrderByID(id string) (*models.Order, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil, false
	}

	for _, order := range s.orders {
		if order.ID == id {
			found := order
			return &found, true
		}
	}

	return nil, false
}

// Identity returns a copy of the signed-in identity, or nil.
func (s *SessionStore) Identity() *models.Identity {

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil
	}

	identity := *s.identity

	return &identity
}

func (s *SessionStore) Orders() []models.Order {

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]models.Order, 0, len(s.orders)), s.orders...)
}

func (s *SessionStore) IsAuthenticated() bool {

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.identity != nil
}

func (s *SessionStore) View() *models.SessionView {

	s.mu.RLock()
	defer s.mu.RUnlock()

	view := &models.SessionView{
		IsAuthenticated: s.identity != nil,
		Orders:          append(make([]models.Order, 0, len(s.orders)), s.orders...),
	}

	if s.identity != nil {
		identity := *s.identity
		view.Identity = &identity
	}

	return view
}

// Restore reloads a persisted identity and re-derives its orders. Orders
// placed in an earlier process come back only if the repository kept them.
func (s *SessionStore) Restore(ctx context.Context) error {

	var identity models.Identity

	found, err := s.storage.Get(ctx, s.storageKey(), &identity)
	if err != nil {
		return fmt.Errorf("failed to read identity: %w", err)
	}

	if !found {
		return nil
	}

	orders, err := s.orderRepo.ListOrdersByOwner(ctx, identity.ID)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	s.mu.Lock()
	s.identity = &identity
	s.orders = orders
	s.mu.Unlock()

	return nil
}
