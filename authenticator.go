package login

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Verifier checks nickname/password pairs against the account store and
// owns the inactive-account activation path.
type Verifier struct {
	accounts AccountStore
	appSalt  string
	logger   *slog.Logger
}

// NewVerifier returns a new Verifier. The application salt is mixed into
// every hash alongside the per-account salt.
func NewVerifier(accounts AccountStore, appSalt string) *Verifier {
	return &Verifier{
		accounts: accounts,
		appSalt:  appSalt,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger used for verification events.
func (v *Verifier) WithLogger(logger *slog.Logger) *Verifier {
	v.logger = logger
	return v
}

// Verify resolves the nickname case-insensitively and checks the password.
// When no active account matches, a provisioned account without a password
// is activated: this first login sets the credentials and flips the status
// to active. Every failure mode surfaces as ErrAuthenticationFailed so the
// caller cannot distinguish unknown nicknames from wrong passwords.
func (v *Verifier) Verify(ctx context.Context, nickname, password string) (*Account, error) {
	nickname = strings.ToLower(strings.TrimSpace(nickname))

	cred, err := v.accounts.ActiveByNickname(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("looking up active account: %w", err)
	}

	if cred != nil {
		if err := ComparePasswordAndHash(password+v.appSalt+cred.Salt, cred.PasswordHash); err != nil {
			v.logger.Info("login rejected", "nickname", nickname)
			return nil, ErrAuthenticationFailed
		}
		return &Account{URI: cred.URI, UUID: cred.UUID, Nickname: nickname}, nil
	}

	ref, err := v.accounts.InactiveByNickname(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("looking up inactive account: %w", err)
	}

	if ref == nil {
		v.logger.Info("login rejected", "nickname", nickname)
		return nil, ErrAuthenticationFailed
	}

	account, err := v.activate(ctx, ref, nickname, password)
	if err != nil {
		return nil, err
	}

	v.logger.Info("account activated on first login", "account", account.UUID)
	return account, nil
}

// activate treats this login as the account's first ever: it generates a
// fresh salt, persists the derived hash, then flips the status.
func (v *Verifier) activate(ctx context.Context, ref *AccountRef, nickname, password string) (*Account, error) {
	salt, err := NewSalt()
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(password + v.appSalt + salt)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if err := v.accounts.SavePassword(ctx, ref.URI, nickname, hash, salt); err != nil {
		return nil, fmt.Errorf("persisting credentials: %w", err)
	}

	if err := v.accounts.Activate(ctx, ref.URI); err != nil {
		return nil, fmt.Errorf("activating account: %w", err)
	}

	return &Account{URI: ref.URI, UUID: ref.UUID, Nickname: nickname}, nil
}
