// Package session owns the client's authentication state: who is logged in,
// their access token, and the durable copy of both that survives restarts.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	sessionrepo "github.com/dmitrijs2005/userdir/internal/client/repositories/session"
	"github.com/dmitrijs2005/userdir/internal/dbx"
)

// Durable storage keys. KeyUserData holds the JSON-serialized profile.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
)

// ErrNotAuthenticated is returned by UpdateUser when no session is active.
var ErrNotAuthenticated = errors.New("not authenticated")

type Phase string

const (
	// PhaseLoading lasts from construction until Bootstrap completes.
	PhaseLoading Phase = "loading"
	// PhaseAnonymous means no valid session exists.
	PhaseAnonymous Phase = "anonymous"
	// PhaseAuthenticated means user and token are both present.
	PhaseAuthenticated Phase = "authenticated"
)

// Snapshot is an immutable view of the session state. IsAuthenticated is
// derived: it is true iff both user and token are present.
type Snapshot struct {
	User            *models.UserProfile
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

// Store is the single source of truth for the session. It is constructed in
// the loading phase; Bootstrap must be called exactly once at process start.
// Mutations go through the four operations below; everything else reads
// snapshots.
type Store struct {
	mu    sync.RWMutex
	db    *sql.DB
	phase Phase
	user  *models.UserProfile
	token string
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, phase: PhaseLoading}
}

func (s *Store) getRepo() sessionrepo.Repository {
	return sessionrepo.NewSQLiteRepository(s.db)
}

// Bootstrap rehydrates the session from durable storage. It never contacts
// the network: a stored token is trusted as-is and every authenticated
// request is independently authorized server-side. If either key is missing,
// or the stored profile fails to deserialize, both keys are erased and the
// session resolves to anonymous.
func (s *Store) Bootstrap(ctx context.Context) (Snapshot, error) {
	repo := s.getRepo()

	token, err := repo.Get(ctx, KeyAuthToken)
	if err != nil {
		return s.resolveAnonymous(), err
	}
	userData, err := repo.Get(ctx, KeyUserData)
	if err != nil {
		return s.resolveAnonymous(), err
	}

	if len(token) == 0 || len(userData) == 0 {
		s.clearKeys(ctx, repo)
		return s.resolveAnonymous(), nil
	}

	var user models.UserProfile
	if err := json.Unmarshal(userData, &user); err != nil {
		// corrupt durable state: erase it rather than surface a message
		s.clearKeys(ctx, repo)
		return s.resolveAnonymous(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseAuthenticated
	s.user = &user
	s.token = string(token)
	return s.snapshotLocked(), nil
}

// Login persists the token and profile durably, then installs them as the
// current session. Any prior session is overwritten unconditionally. Both
// keys are written in one transaction so a partial session can never be
// persisted.
func (s *Store) Login(ctx context.Context, user *models.UserProfile, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionrepo.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUserData, data)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseAuthenticated
	s.user = user
	s.token = token
	return nil
}

// Logout erases both durable keys and drops the in-memory session. It is
// idempotent.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.getRepo().Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseAnonymous
	s.user = nil
	s.token = ""
	return nil
}

// UpdateUser persists and installs a replacement profile. The token and the
// authenticated flag are untouched. Calling it without an active session is
// a caller error and is rejected.
func (s *Store) UpdateUser(ctx context.Context, user *models.UserProfile) error {
	s.mu.RLock()
	authenticated := s.phase == PhaseAuthenticated
	s.mu.RUnlock()
	if !authenticated {
		return ErrNotAuthenticated
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := s.getRepo().Set(ctx, KeyUserData, data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return nil
}

// Snapshot returns the current session state as a value.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.phase == PhaseAuthenticated,
		IsLoading:       s.phase == PhaseLoading,
	}
}

func (s *Store) clearKeys(ctx context.Context, repo sessionrepo.Repository) {
	_ = repo.Delete(ctx, KeyAuthToken)
	_ = repo.Delete(ctx, KeyUserData)
}

func (s *Store) resolveAnonymous() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseAnonymous
	s.user = nil
	s.token = ""
	return s.snapshotLocked()
}
