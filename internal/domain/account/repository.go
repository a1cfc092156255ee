package account

import (
	"context"

	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
)

// Repository persists a new account. Registration of a provider account
// writes the user row and the initial provider profile in one transaction:
// either both commit or neither does.
type Repository interface {
	Register(ctx context.Context, u user.User, p *provider.Provider) (user.User, *provider.Provider, error)
}
