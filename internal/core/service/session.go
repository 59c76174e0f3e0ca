package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jobhive/portal-client/internal/core/domain"
	"github.com/jobhive/portal-client/internal/core/ports"
	"github.com/jobhive/portal-client/internal/metrics"
)

// SessionService is the single source of truth for "who is logged in". It
// owns the in-memory session, persists it through a SessionStorage, and
// notifies subscribers on every state change. The gateway shares the same
// storage and reads the token from it at request time; this service is the
// only writer apart from the gateway's 401/403 teardown.
type SessionService struct {
	storage  ports.SessionStorage
	api      ports.IdentityAPI
	validate *validator.Validate
	log      zerolog.Logger

	mu      sync.Mutex
	user    *domain.User
	token   string
	loading bool
	subs    map[int]func(domain.Session)
	nextSub int
}

func NewSessionService(storage ports.SessionStorage, api ports.IdentityAPI, log zerolog.Logger) *SessionService {
	return &SessionService{
		storage:  storage,
		api:      api,
		validate: validator.New(),
		log:      log,
		loading:  true,
		subs:     make(map[int]func(domain.Session)),
	}
}

// Current returns a snapshot of the session state.
func (s *SessionService) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (s *SessionService) Subscribe(fn func(domain.Session)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Initialize rehydrates the session from durable storage. It runs once per
// process start, before any protected operation: a stored token is verified
// against the identity endpoint, and when that endpoint is unreachable the
// locally mirrored identity is accepted as a stale-but-usable fallback
// rather than logging the user out over a transient network failure. A
// token that can be validated neither remotely nor locally is discarded.
// Loading is false once Initialize returns, on every path.
func (s *SessionService) Initialize(ctx context.Context) domain.Session {
	token, err := s.storage.Get(ctx, domain.TokenKey)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		s.log.Warn().Err(err).Msg("session storage unreadable during rehydration")
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	var user *domain.User
	if token != "" {
		user = s.rehydrateIdentity(ctx)
	}

	s.mu.Lock()
	s.user = user
	if user == nil {
		s.token = ""
	}
	s.loading = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return snap
}

// rehydrateIdentity resolves the stored token to a user record: live fetch
// first, mirror second, teardown last.
func (s *SessionService) rehydrateIdentity(ctx context.Context) *domain.User {
	user, err := s.api.Me(ctx)
	if err == nil {
		s.persistMirror(ctx, user)
		return user
	}

	s.log.Warn().Err(err).Msg("identity fetch failed, trying mirrored identity")

	if mirrored := s.readMirror(ctx); mirrored != nil {
		metrics.IdentityFallbackTotal.WithLabelValues("mirror").Inc()
		return mirrored
	}

	metrics.IdentityFallbackTotal.WithLabelValues("cleared").Inc()
	s.clearStorage(ctx)
	return nil
}

// Login installs a freshly authenticated session, in memory and in durable
// storage together. The caller is expected to have just received user and
// token from a successful login or register call; they are not re-verified.
func (s *SessionService) Login(ctx context.Context, user *domain.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, domain.TokenKey, token); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, domain.UserKey, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Logout clears the session locally. No backend call is made; the token is
// simply forgotten.
func (s *SessionService) Logout(ctx context.Context) {
	s.clearStorage(ctx)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// UpdateProfilePicture merges a new picture URL into the in-memory user and
// re-persists the identity mirror. The server-side update is the caller's
// responsibility and must already have happened.
func (s *SessionService) UpdateProfilePicture(ctx context.Context, url string) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	updated := *s.user
	updated.ProfilePicture = url
	s.user = &updated
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persistMirror(ctx, &updated)
	s.notify(snap)
	return nil
}

func (s *SessionService) persistMirror(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Error().Err(err).Msg("cannot serialize identity mirror")
		return
	}
	if err := s.storage.Set(ctx, domain.UserKey, string(raw)); err != nil {
		s.log.Warn().Err(err).Msg("cannot persist identity mirror")
	}
}

// readMirror parses and narrows the stored identity mirror. A mirror that
// fails structural validation is treated as absent.
func (s *SessionService) readMirror(ctx context.Context) *domain.User {
	raw, err := s.storage.Get(ctx, domain.UserKey)
	if err != nil {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Msg("identity mirror is not valid JSON")
		return nil
	}
	if err := s.validate.Struct(&user); err != nil {
		s.log.Warn().Err(err).Msg("identity mirror failed validation")
		return nil
	}
	return &user
}

func (s *SessionService) clearStorage(ctx context.Context) {
	if err := s.storage.Delete(ctx, domain.TokenKey); err != nil {
		s.log.Warn().Err(err).Msg("cannot clear stored token")
	}
	if err := s.storage.Delete(ctx, domain.UserKey); err != nil {
		s.log.Warn().Err(err).Msg("cannot clear identity mirror")
	}
}

// snapshotLocked builds a Session copy. Callers must hold s.mu.
func (s *SessionService) snapshotLocked() domain.Session {
	var user *domain.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return domain.Session{User: user, Token: s.token, Loading: s.loading}
}

func (s *SessionService) notify(snap domain.Session) {
	s.mu.Lock()
	fns := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
