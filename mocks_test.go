package login_test

import (
	"context"
	"time"

	login "github.com/goliatone/go-login"
	"github.com/stretchr/testify/mock"
)

// MockAccountStore implements login.AccountStore
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) ActiveByNickname(ctx context.Context, nickname string) (*login.AccountCredentials, error) {
	args := m.Called(ctx, nickname)
	cred, _ := args.Get(0).(*login.AccountCredentials)
	return cred, args.Error(1)
}

func (m *MockAccountStore) InactiveByNickname(ctx context.Context, nickname string) (*login.AccountRef, error) {
	args := m.Called(ctx, nickname)
	ref, _ := args.Get(0).(*login.AccountRef)
	return ref, args.Error(1)
}

func (m *MockAccountStore) SavePassword(ctx context.Context, accountURI, nickname, passwordHash, salt string) error {
	args := m.Called(ctx, accountURI, nickname, passwordHash, salt)
	return args.Error(0)
}

func (m *MockAccountStore) Activate(ctx context.Context, accountURI string) error {
	args := m.Called(ctx, accountURI)
	return args.Error(0)
}

func (m *MockAccountStore) Roles(ctx context.Context, accountURI string) ([]login.Role, error) {
	args := m.Called(ctx, accountURI)
	roles, _ := args.Get(0).([]login.Role)
	return roles, args.Error(1)
}

// MockSessionStore implements login.SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) AccountBySession(ctx context.Context, sessionURI string) (*login.AccountRef, error) {
	args := m.Called(ctx, sessionURI)
	ref, _ := args.Get(0).(*login.AccountRef)
	return ref, args.Error(1)
}

func (m *MockSessionStore) SessionsForAccount(ctx context.Context, accountURI string) ([]string, error) {
	args := m.Called(ctx, accountURI)
	uris, _ := args.Get(0).([]string)
	return uris, args.Error(1)
}

func (m *MockSessionStore) ClearSession(ctx context.Context, sessionURI string) error {
	args := m.Called(ctx, sessionURI)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteForAccount(ctx context.Context, accountURI string) error {
	args := m.Called(ctx, accountURI)
	return args.Error(0)
}

func (m *MockSessionStore) Insert(ctx context.Context, sessionURI, accountURI, sessionID string, roles []login.Role) error {
	args := m.Called(ctx, sessionURI, accountURI, sessionID, roles)
	return args.Error(0)
}

func (m *MockSessionStore) Touch(ctx context.Context, sessionURI string, at time.Time) error {
	args := m.Called(ctx, sessionURI, at)
	return args.Error(0)
}
