package login

import (
	"context"
	"fmt"
)

// RoleResolver fetches the authorization roles attached to an account.
type RoleResolver struct {
	accounts AccountStore
}

// NewRoleResolver returns a new RoleResolver.
func NewRoleResolver(accounts AccountStore) *RoleResolver {
	return &RoleResolver{accounts: accounts}
}

// RolesFor returns the account's role set. An empty set means "no
// elevated capabilities" and is not an error; accounts are not required
// to carry roles.
func (r *RoleResolver) RolesFor(ctx context.Context, accountURI string) ([]Role, error) {
	roles, err := r.accounts.Roles(ctx, accountURI)
	if err != nil {
		return nil, fmt.Errorf("fetching roles: %w", err)
	}
	return roles, nil
}
