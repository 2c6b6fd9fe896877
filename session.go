package login

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SessionManager creates, resolves and tears down sessions. It enforces
// the at-most-one-live-session-per-account policy by reaping prior
// sessions before inserting a new one. Ordering is intra-request only:
// two concurrent logins for the same account race, and the last insert
// wins while the loser holds a dead session identifier.
type SessionManager struct {
	sessions SessionStore
	now      func() time.Time
	logger   *slog.Logger
}

// NewSessionManager returns a new SessionManager.
func NewSessionManager(sessions SessionStore) *SessionManager {
	return &SessionManager{
		sessions: sessions,
		now:      time.Now,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger used for session events.
func (m *SessionManager) WithLogger(logger *slog.Logger) *SessionManager {
	m.logger = logger
	return m
}

// WithClock replaces the time source, mostly for tests.
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// Begin replaces whatever session state exists for the account with a new
// session stored under sessionURI, carrying a fresh public id and the
// given role snapshot. Stale triples under the identifier itself are
// cleared first, then every prior session of the account is reaped, so a
// login from a new identifier also invalidates the old one.
func (m *SessionManager) Begin(ctx context.Context, account *Account, sessionURI string, roles []Role) (string, error) {
	if err := m.sessions.ClearSession(ctx, sessionURI); err != nil {
		return "", fmt.Errorf("clearing stale session state: %w", err)
	}

	if err := m.sessions.DeleteForAccount(ctx, account.URI); err != nil {
		return "", fmt.Errorf("removing previous sessions: %w", err)
	}

	sessionID := uuid.New().String()

	if err := m.sessions.Insert(ctx, sessionURI, account.URI, sessionID, roles); err != nil {
		return "", fmt.Errorf("inserting session: %w", err)
	}

	if err := m.sessions.Touch(ctx, sessionURI, m.now()); err != nil {
		return "", fmt.Errorf("stamping session: %w", err)
	}

	m.logger.Info("session created", "account", account.UUID, "session", sessionID)
	return sessionID, nil
}

// Resolve returns the account bound to the given session identifier.
// Lookup is by identifier equality, never by account.
func (m *SessionManager) Resolve(ctx context.Context, sessionURI string) (*AccountRef, error) {
	ref, err := m.sessions.AccountBySession(ctx, sessionURI)
	if err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}

	if ref == nil {
		return nil, ErrInvalidSession
	}

	return ref, nil
}

// End removes all session state for the account. Current sessions get a
// final modified stamp before deletion, as a last-seen audit signal.
// Ending an account with no sessions is a no-op.
func (m *SessionManager) End(ctx context.Context, accountURI string) error {
	current, err := m.sessions.SessionsForAccount(ctx, accountURI)
	if err != nil {
		return fmt.Errorf("listing current sessions: %w", err)
	}

	for _, sessionURI := range current {
		if err := m.sessions.Touch(ctx, sessionURI, m.now()); err != nil {
			return fmt.Errorf("stamping session before removal: %w", err)
		}
	}

	if err := m.sessions.DeleteForAccount(ctx, accountURI); err != nil {
		return fmt.Errorf("removing sessions: %w", err)
	}

	return nil
}
