package port

import (
	"context"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

type Authenticator interface {
	// Authenticate resolves a bearer token to a user. Empty or unknown
	// tokens yield an anonymous user, not an error.
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
