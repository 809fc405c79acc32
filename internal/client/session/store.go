// Package session holds the single source of truth for who is logged in.
//
// A Store keeps the current account record in memory, mirrors it to durable
// key/value storage under StorageKey, and notifies subscribers on every
// change. New subscribers immediately receive the value in effect.
//
// Responses to concurrent requests may arrive out of order. Callers that
// start a request take a token with Begin and apply its result with Commit;
// a result whose token was superseded by a later Begin, SetCurrent or Clear
// is rejected with ErrStale.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/AndresYusty/cat-frontend/internal/client/repositories/metadata"
	"github.com/AndresYusty/cat-frontend/internal/logging"
)

// StorageKey is the durable key holding the serialized account record.
const StorageKey = "currentUser"

var (
	ErrStale   = errors.New("stale session update")
	ErrNilUser = errors.New("nil user")
)

// Store must be created with New.
type Store struct {
	repo   metadata.Repository
	logger logging.Logger

	// deliverMu serializes state transitions together with their
	// notifications so subscribers see changes in the order they were
	// applied. mu guards the fields below and is never held while calling
	// a subscriber.
	deliverMu sync.Mutex
	mu        sync.Mutex
	current   *models.User
	gen       uint64
	nextSubID uint64
	subs      map[uint64]func(*models.User)
}

func New(repo metadata.Repository, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{
		repo:   repo,
		logger: logger.With("component", "session"),
		subs:   make(map[uint64]func(*models.User)),
	}
}

// Restore loads the persisted record. Absent, malformed or unreadable data
// leaves the session empty; it is never an error.
func (s *Store) Restore(ctx context.Context) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	user := s.load(ctx)
	s.apply(user)
}

func (s *Store) load(ctx context.Context) *models.User {
	raw, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn(ctx, "session storage unreadable, starting empty", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Warn(ctx, "persisted session is malformed, ignoring", "error", err)
		return nil
	}
	if u.Username == "" {
		s.logger.Warn(ctx, "persisted session has no username, ignoring")
		return nil
	}
	return &u
}

// SetCurrent persists user, replaces the in-memory record and notifies all
// subscribers. If persisting fails the session is left unchanged.
func (s *Store) SetCurrent(ctx context.Context, user *models.User) error {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	return s.set(ctx, user)
}

// Begin starts a request generation and returns its token.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Commit behaves like SetCurrent when token is still the latest generation
// and returns ErrStale otherwise.
func (s *Store) Commit(ctx context.Context, token uint64, user *models.User) error {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	latest := s.gen
	s.mu.Unlock()
	if token != latest {
		return ErrStale
	}
	return s.set(ctx, user)
}

func (s *Store) set(ctx context.Context, user *models.User) error {
	if user == nil {
		return ErrNilUser
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, StorageKey, payload); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.logger.Debug(ctx, "session updated", "username", user.Username)
	s.apply(user.Clone())
	return nil
}

// Clear removes the persisted record and empties the session.
func (s *Store) Clear(ctx context.Context) error {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if err := s.repo.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Debug(ctx, "session cleared")
	s.apply(nil)
	return nil
}

// apply installs user, advances the generation and notifies subscribers.
// Callers hold deliverMu.
func (s *Store) apply(user *models.User) {
	s.mu.Lock()
	s.current = user
	s.gen++
	subs := make([]func(*models.User), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user.Clone())
	}
}

// Current returns a copy of the in-memory record, or nil.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Subscribe registers fn for every subsequent change and calls it once right
// away with the current value. fn must not call SetCurrent, Commit, Clear,
// Restore or Subscribe on the same Store. The returned function unsubscribes
// and may be called more than once.
func (s *Store) Subscribe(fn func(*models.User)) func() {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	cur := s.current.Clone()
	s.mu.Unlock()

	fn(cur)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
