package login

import (
	"context"
	"time"

	"github.com/goliatone/go-login/sparql"
)

// StoreClient is the slice of the SPARQL client the store gateways
// consume. It exists so gateways can be exercised against fakes and so
// the privileged client can be decorated (see MeterStoreClient).
type StoreClient interface {
	Query(ctx context.Context, query string) (*sparql.Results, error)
	Update(ctx context.Context, update string) error
}

// AccountStore reads and mutates account state in the users graph.
// Lookups return (nil, nil) when nothing matches; errors are reserved for
// store failures.
type AccountStore interface {
	// ActiveByNickname finds an active account carrying credential
	// material for the lower-cased nickname.
	ActiveByNickname(ctx context.Context, nickname string) (*AccountCredentials, error)

	// InactiveByNickname finds a provisioned account with the given
	// nickname that has no password set yet.
	InactiveByNickname(ctx context.Context, nickname string) (*AccountRef, error)

	// SavePassword persists the hash, salt and normalized nickname onto
	// the account, replacing previous values.
	SavePassword(ctx context.Context, accountURI, nickname, passwordHash, salt string) error

	// Activate transitions the account status inactive -> active and
	// stamps its modified time.
	Activate(ctx context.Context, accountURI string) error

	// Roles returns the account's role set. Empty is a valid result.
	Roles(ctx context.Context, accountURI string) ([]Role, error)
}

// SessionStore reads and mutates session state in the sessions graph,
// which may be a different partition than the users graph.
type SessionStore interface {
	// AccountBySession resolves the account bound to a session
	// identifier, (nil, nil) when no binding exists.
	AccountBySession(ctx context.Context, sessionURI string) (*AccountRef, error)

	// SessionsForAccount lists the session resource URIs currently bound
	// to the account.
	SessionsForAccount(ctx context.Context, accountURI string) ([]string, error)

	// ClearSession removes any session triples stored under the given
	// identifier, whichever account they belong to.
	ClearSession(ctx context.Context, sessionURI string) error

	// DeleteForAccount removes every session bound to the account.
	DeleteForAccount(ctx context.Context, accountURI string) error

	// Insert stores a new session under sessionURI with its public id and
	// the role snapshot taken at login time.
	Insert(ctx context.Context, sessionURI, accountURI, sessionID string, roles []Role) error

	// Touch replaces the session's modified timestamp.
	Touch(ctx context.Context, sessionURI string, at time.Time) error
}
